package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Take the assessment",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func init() {
	playCmd.Flags().String("set", "", "Path to a question set JSON file (default: built-in standard set)")
	playCmd.Flags().Bool("time-bonus", false, "Award bonus index points for unused time")
}
