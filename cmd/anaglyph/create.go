package main

import (
	"fmt"

	"github.com/davesmith10/anaglyph/internal/color"
	"github.com/davesmith10/anaglyph/internal/pipeline"
	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an anaglyph image from a photograph",
	RunE:  runCreate,
}

func init() {
	createCmd.Flags().StringP("input", "i", "", "Input image file")
	createCmd.Flags().StringP("output", "o", "", "Output image file (.png, .jpg, .bmp, .tif)")
	addAnaglyphFlags(createCmd)
	createCmd.Flags().Int("quality", 90, "JPEG quality (1-100)")
	createCmd.MarkFlagRequired("input")
	createCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(createCmd)
}

// addAnaglyphFlags registers the offset and coloring flags shared by create
// and transform.
func addAnaglyphFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("offset-x", "x", 0, "Horizontal parallax in pixels (negative shifts left)")
	cmd.Flags().IntP("offset-y", "y", 0, "Vertical parallax in pixels (negative shifts up)")
	cmd.Flags().StringP("coloring", "c", "red-cyan", "Filter pair (see 'anaglyph colorings')")
}

// anaglyphOptions reads the shared flags into pipeline options.
func anaglyphOptions(cmd *cobra.Command) (pipeline.Options, error) {
	offsetX, _ := cmd.Flags().GetInt("offset-x")
	offsetY, _ := cmd.Flags().GetInt("offset-y")
	coloringStr, _ := cmd.Flags().GetString("coloring")

	coloring, err := color.ParseColoring(coloringStr)
	if err != nil {
		return pipeline.Options{}, err
	}
	return pipeline.Options{
		OffsetX:  offsetX,
		OffsetY:  offsetY,
		Coloring: coloring,
	}, nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	quality, _ := cmd.Flags().GetInt("quality")

	opts, err := anaglyphOptions(cmd)
	if err != nil {
		return err
	}
	opts.Quality = quality

	result, err := pipeline.Compose(inputPath, outputPath, opts)
	if err != nil {
		return err
	}

	fmt.Printf("Created %s anaglyph (%s)\n", opts.Coloring, result.Direction)
	fmt.Printf("Input:  %s (%dx%d)\n", inputPath, result.SrcWidth, result.SrcHeight)
	fmt.Printf("Output: %s (%dx%d)\n", outputPath, result.OutWidth, result.OutHeight)

	return nil
}
