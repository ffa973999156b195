// Package cli provides the deckhand command line interface.
// It is a driving adapter: commands wire flag and config input into the
// core services and print their output.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/brightline-labs/deckhand-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "deckhand",
	Short: "Terminal presenter for facilitator-led training decks",
	Long: `Deckhand presents training decks in the terminal.

A deck is a TOML file describing slides grouped into sections. Deckhand
renders it as an interactive keyboard-driven presentation, projects it
into a facilitator guide, and records poll answers and reflections
locally.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion overrides the reported version (set from main via ldflags).
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}
