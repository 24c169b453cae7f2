// Package cmd wires the CLI surface: the TUI launcher plus the
// inspection and maintenance subcommands.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sthiel/mentiq/internal/store"
)

// snapshotKey is the single slot the interactive session checkpoints
// into. One in-progress attempt exists at a time.
const snapshotKey = "session:current"

var rootCmd = &cobra.Command{
	Use:   "mentiq",
	Short: "Timed IQ-style assessment for your terminal",
	Long:  "Mentiq — a timed, multi-question reasoning assessment that runs entirely in the terminal, with resumable sessions and a local result history.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MENTIQ_DB env var)")
	rootCmd.Flags().String("set", "", "Path to a question set JSON file (default: built-in standard set)")
	rootCmd.Flags().Bool("time-bonus", false, "Award bonus index points for unused time")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then MENTIQ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
