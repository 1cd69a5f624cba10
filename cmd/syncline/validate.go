package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/syncline-io/syncline/internal/cli/config"
	"github.com/syncline-io/syncline/internal/cli/ui"
	"github.com/syncline-io/syncline/metadata"
	"github.com/syncline-io/syncline/record"
	"github.com/syncline-io/syncline/store"
)

var (
	validateMetadataPath string
	validateObjectName   string
	validateInputPath    string
)

func init() {
	validateCmd.Flags().StringVar(&validateMetadataPath, "metadata", "metadata.json", "Path to the object metadata JSON file")
	validateCmd.Flags().StringVar(&validateObjectName, "object", "", "Singular name of the target object type")
	validateCmd.Flags().StringVar(&validateInputPath, "input", "", "Path to the record input JSON file")
	validateCmd.MarkFlagRequired("object")
	validateCmd.MarkFlagRequired("input")
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Compute an optimistic record from a mutation input",
	Long: `Validate a record input against object metadata and print the optimistic
record that would be rendered, resolving relations against the configured
entity store.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		printer := ui.NewPrinter(cmd.OutOrStdout())

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		objects, object, err := loadObject(validateMetadataPath, validateObjectName)
		if err != nil {
			return err
		}

		input, err := loadEntityFile(validateInputPath)
		if err != nil {
			return err
		}

		entities, closeStore, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		out, err := record.ComputeOptimisticRecordFromInput(cmd.Context(), objects, object, input, entities)
		if err != nil {
			printer.Errorf("%v", err)
			return err
		}

		printer.Successf("input is valid for object %q", object.NameSingular)
		return printer.JSON(out)
	},
}

// loadObject loads the metadata file and picks out the target object type.
func loadObject(path, name string) ([]metadata.ObjectMetadataItem, metadata.ObjectMetadataItem, error) {
	objects, err := metadata.LoadFile(path)
	if err != nil {
		return nil, metadata.ObjectMetadataItem{}, err
	}

	object, ok := metadata.FindByNameSingular(objects, name)
	if !ok {
		return nil, metadata.ObjectMetadataItem{}, fmt.Errorf("object %q not found in %s", name, path)
	}
	return objects, object, nil
}

func loadEntityFile(path string) (store.Entity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var entity store.Entity
	if err := json.Unmarshal(data, &entity); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return entity, nil
}
