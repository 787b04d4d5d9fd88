package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dori/tablero/internal/config"
	"github.com/rs/zerolog"
)

// NewLogger builds the application logger writing to w. Console output is
// formatted for humans, anything else gets JSON lines.
func NewLogger(cfg *config.Config, w io.Writer) zerolog.Logger {
	zerolog.TimestampFieldName = "timestamp"

	if cfg.Log.Console {
		cw := zerolog.NewConsoleWriter()
		cw.TimeFormat = time.DateTime
		cw.Out = w
		w = cw
	}

	return zerolog.New(w).
		Level(cfg.LogLevel()).
		With().
		Timestamp().
		Int("pid", os.Getpid()).
		Logger()
}

// openLogOutput returns stderr for console logging, or the log file in the
// data directory. The TUI owns stdout so it is never used.
func openLogOutput(cfg *config.Config) (io.Writer, *os.File, error) {
	if cfg.Log.Console {
		return os.Stderr, nil, nil
	}

	path := filepath.Join(cfg.DataDir, "tablero.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, f, nil
}
