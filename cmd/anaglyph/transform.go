package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/davesmith10/anaglyph/internal/pipeline"
	"github.com/spf13/cobra"
)

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Create an anaglyph as raw RGB (raw output + JSON sidecar)",
	RunE:  runTransform,
}

func init() {
	transformCmd.Flags().StringP("input", "i", "", "Input image file")
	transformCmd.Flags().StringP("output", "o", "", "Output raw RGB file")
	addAnaglyphFlags(transformCmd)
	transformCmd.MarkFlagRequired("input")
	transformCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(transformCmd)
}

type transformMeta struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Format    string `json:"format"`
	Direction string `json:"direction"`
	Coloring  string `json:"coloring"`
}

func runTransform(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")

	opts, err := anaglyphOptions(cmd)
	if err != nil {
		return err
	}

	out, result, err := pipeline.Raw(inputPath, opts)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, out.Pixels, 0644); err != nil {
		return fmt.Errorf("writing raw RGB: %w", err)
	}

	// Write JSON sidecar
	meta := transformMeta{
		Width:     out.Width,
		Height:    out.Height,
		Format:    "RGB8",
		Direction: result.Direction.String(),
		Coloring:  opts.Coloring.String(),
	}
	metaJSON, _ := json.MarshalIndent(meta, "", "  ")
	metaPath := strings.TrimSuffix(outputPath, ".raw") + ".json"
	if err := os.WriteFile(metaPath, metaJSON, 0644); err != nil {
		return fmt.Errorf("writing sidecar: %w", err)
	}

	fmt.Printf("Transformed %dx%d → raw RGB %dx%d (%d bytes)\n",
		result.SrcWidth, result.SrcHeight, out.Width, out.Height, len(out.Pixels))
	fmt.Printf("Sidecar: %s\n", metaPath)
	return nil
}
