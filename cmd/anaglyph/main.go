package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/davesmith10/anaglyph/internal/anaglyph"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "anaglyph",
	Short: "Turn a single photograph into a two-color stereo anaglyph",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			anaglyph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log compositing details to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
