package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/foodlens/labelscan/internal/config"
	"github.com/foodlens/labelscan/internal/logger"
)

var version = "1.0.0"

// cfg is set by Execute before any subcommand runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "labelscan",
	Short: "labelscan - extract structured facts from food-label photographs",
	Long: `labelscan reads a photograph of a packaged-food label and produces
structured, machine-usable facts: a barcode value, an ingredient list,
or a nutrition-facts table, in English, Arabic, or mixed text.

Results are printed as JSON on stdout; logs go to stderr.`,
	Version: version,
}

// Execute runs the CLI with the loaded configuration.
func Execute(c *config.Config) {
	cfg = c

	if err := rootCmd.Execute(); err != nil {
		log := logger.WithComponent("cmd")
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printJSON writes any result value as indented JSON on stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
