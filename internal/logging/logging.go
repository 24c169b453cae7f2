// Package logging configures the process-wide zerolog logger. The
// terminal UI owns stdout, so logs go to a file in the data directory;
// a disabled logger is returned when the file cannot be opened rather
// than polluting the screen.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// FileName is the log file created next to the database.
const FileName = "mentiq.log"

// Config controls logger construction.
type Config struct {
	// Dir is the directory the log file lives in.
	Dir string

	// Level is the minimum level, parsed from MENTIQ_LOG_LEVEL.
	Level zerolog.Level
}

// ConfigFromEnv builds a Config for the given data directory, reading
// MENTIQ_LOG_LEVEL (debug, info, warn, error; default info).
func ConfigFromEnv(dataDir string) Config {
	cfg := Config{Dir: dataDir, Level: zerolog.InfoLevel}
	if raw := os.Getenv("MENTIQ_LOG_LEVEL"); raw != "" {
		if lvl, err := zerolog.ParseLevel(strings.ToLower(raw)); err == nil {
			cfg.Level = lvl
		}
	}
	return cfg
}

// New opens the log file and returns the logger plus a closer for the
// underlying file. Failures fall back to a disabled logger and a no-op
// closer so callers never branch on logging availability.
func New(cfg Config) (zerolog.Logger, func() error) {
	f, err := os.OpenFile(
		filepath.Join(cfg.Dir, FileName),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		0o644,
	)
	if err != nil {
		return zerolog.Nop(), func() error { return nil }
	}

	log := zerolog.New(f).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
	return log, f.Close
}

// NewWriter builds a logger on an arbitrary writer; tests use this with
// a buffer.
func NewWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
