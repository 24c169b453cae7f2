package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sthiel/mentiq/internal/store"
	"github.com/sthiel/mentiq/internal/ui/layout"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "List past results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		rows, err := st.Results().List(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("list results: %w", err)
		}

		if len(rows) == 0 {
			fmt.Println("No results yet. Run: mentiq play")
			return nil
		}

		fmt.Printf("%-17s  %-20s  %5s  %-15s  %7s  %7s  %s\n",
			"Taken", "Set", "Index", "Class", "Score", "Time", "Taker")
		fmt.Println(strings.Repeat("─", 90))

		for _, row := range rows {
			res := row.Result
			setName := row.SetName
			if len(setName) > 20 {
				setName = setName[:17] + "..."
			}
			taker := row.Who.Name
			if row.Expired {
				taker += " (expired)"
			}
			fmt.Printf("%-17s  %-20s  %5d  %-15s  %3d/%-3d  %7s  %s\n",
				row.TakenAt.Local().Format("2006-01-02 15:04"),
				setName,
				res.Index,
				res.Classification,
				res.RawScore, len(res.Answers),
				layout.FormatClock(res.TimeSpentSecs),
				strings.TrimSpace(taker),
			)
		}

		fmt.Printf("\n%d results\n", len(rows))
		return nil
	},
}

func init() {
	resultsCmd.Flags().IntP("limit", "n", 20, "Number of results to show (0 = all)")
}
