package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sthiel/mentiq/internal/app"
	"github.com/sthiel/mentiq/internal/logging"
	"github.com/sthiel/mentiq/internal/question"
	"github.com/sthiel/mentiq/internal/score"
	"github.com/sthiel/mentiq/internal/screens/home"
	"github.com/sthiel/mentiq/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	logger, closeLog := openLogger()
	defer func() { _ = closeLog() }()

	set, err := resolveSet(cmd)
	if err != nil {
		return err
	}

	timeBonus, _ := cmd.Flags().GetBool("time-bonus")

	return app.Run(home.Deps{
		Set:     set,
		Snaps:   st.Snapshots(snapshotKey),
		Results: st.Results(),
		Events:  st.Events(),
		Policy:  score.Policy{TimeBonus: timeBonus},
		Log:     logger,
	})
}

// openLogger sets up file logging. The TUI owns stdout, so log output
// always goes to the data directory.
func openLogger() (zerolog.Logger, func() error) {
	dataDir, err := store.DefaultDataDir()
	if err != nil {
		return zerolog.Nop(), func() error { return nil }
	}
	return logging.New(logging.ConfigFromEnv(dataDir))
}

// resolveSet loads the question set from --set, or the built-in
// standard set when the flag is absent.
func resolveSet(cmd *cobra.Command) (*question.Set, error) {
	if path, _ := cmd.Flags().GetString("set"); path != "" {
		return question.LoadFile(path)
	}
	return question.Standard(), nil
}
