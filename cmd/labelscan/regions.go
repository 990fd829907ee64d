package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/foodlens/labelscan/internal/detection"
	"github.com/foodlens/labelscan/internal/imaging"
)

var regionsCmd = &cobra.Command{
	Use:   "regions <image>",
	Short: "Detect candidate text regions in a label image",
	Long: `Regions locates rectangular areas of a label photograph that likely
contain printed text, without running OCR. Useful for cropping before a
targeted scan.`,
	Args: cobra.ExactArgs(1),
	RunE: runRegions,
}

func init() {
	rootCmd.AddCommand(regionsCmd)
}

func runRegions(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read image file: %w", err)
	}

	img, err := imaging.Decode(data)
	if err != nil {
		return err
	}

	regions := detection.DetectTextRegions(img)

	return printJSON(struct {
		Regions []detection.Region `json:"regions"`
		Count   int                `json:"count"`
	}{Regions: regions, Count: len(regions)})
}
