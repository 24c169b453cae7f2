package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sthiel/mentiq/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the in-progress session",
	Long:  "Discard the saved in-progress session. With --all, delete the whole database including result history.",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		yes, _ := cmd.Flags().GetBool("yes")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		if all {
			if !yes {
				return fmt.Errorf("deleting %s removes all history; re-run with --yes to confirm", dbPath)
			}
			if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("delete database: %w", err)
			}
			fmt.Println("All data deleted.")
			return nil
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		if err := st.Snapshots(snapshotKey).Clear(context.Background()); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		fmt.Println("In-progress session discarded.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Delete the whole database, including result history")
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation for --all")
}
