package main

import (
	"fmt"
	"os"

	"github.com/davesmith10/anaglyph/internal/codec"
	"github.com/davesmith10/anaglyph/internal/ir"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode raw RGB data to an image file",
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().StringP("input", "i", "", "Input raw RGB file")
	encodeCmd.Flags().StringP("output", "o", "", "Output image file (.png, .jpg, .bmp, .tif)")
	encodeCmd.Flags().Int("width", 0, "Image width")
	encodeCmd.Flags().Int("height", 0, "Image height")
	encodeCmd.Flags().Int("quality", 90, "JPEG quality (1-100)")
	encodeCmd.MarkFlagRequired("input")
	encodeCmd.MarkFlagRequired("output")
	encodeCmd.MarkFlagRequired("width")
	encodeCmd.MarkFlagRequired("height")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	quality, _ := cmd.Flags().GetInt("quality")

	pixels, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	img := &ir.RGBImage{Width: width, Height: height, Pixels: pixels}
	if err := img.Validate(); err != nil {
		return err
	}

	if err := codec.EncodeFile(outputPath, img, codec.Options{Quality: quality}); err != nil {
		return err
	}

	fmt.Printf("Encoded %dx%d RGB → %s\n", width, height, outputPath)
	return nil
}
