package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/foodlens/labelscan/internal/barcode"
	"github.com/foodlens/labelscan/internal/logger"
	"github.com/foodlens/labelscan/internal/ocr"
	"github.com/foodlens/labelscan/internal/scan"
)

var scanField string

var scanCmd = &cobra.Command{
	Use:   "scan <image>",
	Short: "Extract a structured field from a food-label image",
	Long: `Scan runs the extraction pipeline on a label photograph and prints
the result for the requested field as JSON.

Field kinds:
  barcode      decode a product barcode (EAN/UPC/Code 128/Code 39/ITF)
  ingredients  OCR plus ingredient-list parsing
  nutrition    OCR plus nutrition-facts parsing
  general      OCR only, raw text with a confidence score`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanField, "field", "general",
		"Field to extract: barcode, ingredients, nutrition, or general")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	field, err := scan.ParseField(scanField)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read image file: %w", err)
	}

	engine := &ocr.Tesseract{TessdataPrefix: cfg.TessdataPrefix}
	extractor := ocr.NewExtractor(engine, logger.WithComponent("ocr"), cfg.OCRConfigs()...)
	decoder := barcode.NewDecoder(logger.WithComponent("barcode"))
	scanner := scan.New(extractor, decoder, logger.WithComponent("scan"))

	result, err := scanner.Scan(data, field)
	if err != nil {
		return err
	}

	return printJSON(result)
}
