// Package bootstrap prepares the process for opening a tabbed window:
// directories, database, config schema.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tabwin/tabwin/internal/config"
	"github.com/tabwin/tabwin/internal/infrastructure/persistence/sqlite"
	"github.com/tabwin/tabwin/internal/logging"
)

// InitResult holds everything the startup parallel phase produced.
type InitResult struct {
	DB       *sql.DB
	DataDir  string
	CloseDB  func()
	Duration time.Duration
}

// RunParallelInit performs the independent startup steps concurrently:
// resolving XDG directories, opening the session database (which runs
// migrations), and refreshing the generated config schema file. The first
// error cancels the rest.
func RunParallelInit(ctx context.Context) (*InitResult, error) {
	start := time.Now()

	dataDir, err := config.GetDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data directory: %w", err)
	}

	var (
		db      *sql.DB
		closeDB func()
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := config.EnsureDirectories(); err != nil {
			return fmt.Errorf("create directories: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var dbErr error
		db, closeDB, dbErr = OpenDatabase(gctx)
		return dbErr
	})

	g.Go(func() error {
		// Schema regeneration is convenience for editor completion; a
		// failure is not fatal to startup.
		if schemaErr := config.GenerateSchemaFile(); schemaErr != nil {
			logging.FromContext(gctx).Debug().Err(schemaErr).Msg("config schema generation failed")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		if closeDB != nil {
			closeDB()
		}
		return nil, err
	}

	return &InitResult{
		DB:       db,
		DataDir:  dataDir,
		CloseDB:  closeDB,
		Duration: time.Since(start),
	}, nil
}

// OpenDatabase opens and initializes the SQLite database at its XDG path.
func OpenDatabase(ctx context.Context) (*sql.DB, func(), error) {
	dbPath, err := config.GetDatabaseFile()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	db, err := sqlite.NewConnection(ctx, dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize database at %s: %w", dbPath, err)
	}
	cleanup := func() {
		_ = sqlite.Close(db)
	}
	return db, cleanup, nil
}
