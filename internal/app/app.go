package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dori/tablero/internal/config"
	"github.com/dori/tablero/internal/db"
	"github.com/dori/tablero/internal/notify"
	"github.com/gofrs/flock"
	"github.com/rs/zerolog"
)

// ErrAlreadyRunning is returned when another dashboard holds the lock
var ErrAlreadyRunning = errors.New("another instance of tablero is already running")

// App holds the application state and dependencies
type App struct {
	Config  *config.Config
	DB      *db.DB
	Logger  zerolog.Logger
	Desktop *notify.Desktop

	logFile  *os.File
	lockFile *flock.Flock
}

// Options control how the application starts
type Options struct {
	// Lock takes the single instance lock. Only the dashboard needs it;
	// headless commands may run next to it.
	Lock bool
}

// New creates a new application instance
func New(cfg *config.Config, opts Options) (*App, error) {
	if cfg == nil {
		return nil, errors.New("nil config")
	}

	// Ensure data directory exists
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	w, logFile, err := openLogOutput(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:  cfg,
		Logger:  NewLogger(cfg, w),
		Desktop: notify.NewDesktop(cfg.Notify.Desktop, cfg.Notify.ToastTTL),
		logFile: logFile,
	}

	if opts.Lock {
		if err := app.acquireLock(); err != nil {
			app.closeLog()
			return nil, err
		}
	}

	database, err := db.Open(cfg.DBPath, app.Logger)
	if err != nil {
		app.releaseLock()
		app.closeLog()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	app.DB = database

	app.Logger.Debug().
		Str("db", cfg.DBPath).
		Bool("locked", opts.Lock).
		Msg("application started")

	return app, nil
}

// acquireLock acquires an exclusive file lock to prevent multiple instances
func (a *App) acquireLock() error {
	lockPath := filepath.Join(a.Config.DataDir, "tablero.lock")
	a.lockFile = flock.New(lockPath)

	locked, err := a.lockFile.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}

	if !locked {
		return ErrAlreadyRunning
	}

	return nil
}

// releaseLock releases the file lock
func (a *App) releaseLock() {
	if a.lockFile != nil {
		a.lockFile.Unlock()
	}
}

func (a *App) closeLog() {
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// Close cleans up application resources
func (a *App) Close() error {
	var errs []error

	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	a.releaseLock()
	a.closeLog()

	return errors.Join(errs...)
}
