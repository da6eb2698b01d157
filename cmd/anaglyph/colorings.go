package main

import (
	"fmt"

	"github.com/davesmith10/anaglyph/internal/color"
	"github.com/spf13/cobra"
)

var coloringsCmd = &cobra.Command{
	Use:   "colorings",
	Short: "List the available filter pairs",
	Args:  cobra.NoArgs,
	Run:   runColorings,
}

func init() {
	rootCmd.AddCommand(coloringsCmd)
}

func runColorings(cmd *cobra.Command, args []string) {
	for _, c := range color.All() {
		p := c.Pair()
		fmt.Printf("%-14s left %s  right %s\n", c, rgb8(p.Left), rgb8(p.Right))
	}
}

func rgb8(v [3]float32) string {
	return fmt.Sprintf("(%3.0f,%3.0f,%3.0f)", v[0]*255, v[1]*255, v[2]*255)
}
