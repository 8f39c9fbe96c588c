// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/tabwin/tabwin/internal/cli/styles"
	"github.com/tabwin/tabwin/internal/config"
	"github.com/tabwin/tabwin/internal/domain/repository"
	"github.com/tabwin/tabwin/internal/infrastructure/persistence/sqlite"
	"github.com/tabwin/tabwin/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config   *config.Config
	Manager  *config.Manager
	Theme    *styles.Theme
	Sessions repository.SessionStateRepository

	db  *sql.DB
	ctx context.Context
}

// NewApp loads configuration, opens the database and wires the
// repositories CLI commands need.
func NewApp() (*App, error) {
	mgr, cfg := loadConfig()
	theme := styles.NewTheme()

	logLevel := cfg.Logging.Level
	if envLevel := os.Getenv("TABWIN_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
	}
	logger := logging.NewFromConfigValues(logLevel, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	dbPath := cfg.Database.Path
	if dbPath == "" {
		var err error
		dbPath, err = config.GetDatabaseFile()
		if err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}

	db, err := sqlite.NewConnection(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Debug().Str("db_path", dbPath).Msg("database connected")

	return &App{
		Config:   cfg,
		Manager:  mgr,
		Theme:    theme,
		Sessions: sqlite.NewSessionStateRepository(db),
		db:       db,
		ctx:      ctx,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations, falling back to
// defaults when no config file can be read.
func loadConfig() (*config.Manager, *config.Config) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig()
	}
	if err := mgr.Load(); err != nil {
		return nil, config.DefaultConfig()
	}
	return mgr, mgr.Get()
}
