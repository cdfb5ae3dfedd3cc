// Pixelgrid is a terminal pixel-grid editor.
//
// It renders a fixed-size grid of paintable cells, painted with the mouse
// from a fixed color palette, with a clear action and a one-shot CSV
// export. The live grid can optionally be mirrored to viewers over
// WebSocket and announced on the local network via mDNS.
//
// Usage:
//
//	pixelgrid [command] [flags]
//
// Running without arguments launches the interactive editor.
// See 'pixelgrid --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pixelgrid/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pixelgrid",
	Short: "Terminal pixel-grid editor",
	Long: `A terminal pixel-grid editor.

Paint a fixed-size grid of cells with the mouse from a fixed color
palette, clear it, and export the result as CSV or PNG. With --share the
live grid is mirrored to WebSocket viewers on the local network.

If no command is specified, the interactive editor launches.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the editor when no subcommand provided
		return runEdit(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pixelgrid %s (commit: %s)\n", version.Version, version.Commit)
	},
}
