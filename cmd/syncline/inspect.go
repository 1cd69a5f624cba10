package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syncline-io/syncline/internal/cli/config"
	"github.com/syncline-io/syncline/internal/cli/ui"
	"github.com/syncline-io/syncline/internal/inspector"
	"github.com/syncline-io/syncline/metadata"
)

var (
	inspectMetadataPath string
	inspectServe        bool
)

func init() {
	inspectCmd.Flags().StringVar(&inspectMetadataPath, "metadata", "metadata.json", "Path to the object metadata JSON file")
	inspectCmd.Flags().BoolVar(&inspectServe, "serve", false, "Serve the inspector HTTP endpoints instead of printing a summary")
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspect object metadata and the entity store",
	Long: `Print a summary of the loaded object metadata, or with --serve start the
read-only inspector HTTP surface over the metadata and the configured entity
store.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		printer := ui.NewPrinter(cmd.OutOrStdout())

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		objects, err := metadata.LoadFile(inspectMetadataPath)
		if err != nil {
			return err
		}

		registry := metadata.NewRegistry()
		for _, object := range objects {
			if err := registry.Register(object); err != nil {
				return err
			}
		}

		if !inspectServe {
			printer.Infof("%d object types loaded from %s", registry.Count(), inspectMetadataPath)
			for _, object := range objects {
				relations := len(object.RelationFields())
				printer.Infof("  %-20s %d fields, %d relations",
					object.NameSingular, len(object.Fields), relations)
			}
			return nil
		}

		entities, closeStore, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		defer logger.Sync()

		srv := inspector.New(registry, entities, logger)
		printer.Successf("inspector listening on %s", cfg.Inspector.Addr)
		return http.ListenAndServe(cfg.Inspector.Addr, srv.Router())
	},
}
