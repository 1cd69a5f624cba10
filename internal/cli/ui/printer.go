// Package ui provides colored terminal output helpers for the syncline CLI.
package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Printer writes formatted CLI output.
type Printer struct {
	out     io.Writer
	success *color.Color
	failure *color.Color
	info    *color.Color
}

// NewPrinter creates a printer writing to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out:     out,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed, color.Bold),
		info:    color.New(color.FgCyan),
	}
}

// Successf prints a green success line.
func (p *Printer) Successf(format string, args ...any) {
	p.success.Fprintf(p.out, "✓ "+format+"\n", args...)
}

// Errorf prints a red error line.
func (p *Printer) Errorf(format string, args ...any) {
	p.failure.Fprintf(p.out, "✗ "+format+"\n", args...)
}

// Infof prints a cyan informational line.
func (p *Printer) Infof(format string, args ...any) {
	p.info.Fprintf(p.out, format+"\n", args...)
}

// JSON pretty-prints a value as indented JSON.
func (p *Printer) JSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Fprintln(p.out, string(data))
	return nil
}
