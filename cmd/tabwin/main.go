package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/tabwin/tabwin/internal/app/shell"
	"github.com/tabwin/tabwin/internal/bootstrap"
	"github.com/tabwin/tabwin/internal/cli/cmd"
	"github.com/tabwin/tabwin/internal/config"
	"github.com/tabwin/tabwin/internal/domain/entity"
	"github.com/tabwin/tabwin/internal/domain/repository"
	"github.com/tabwin/tabwin/internal/infrastructure/persistence/sqlite"
	"github.com/tabwin/tabwin/internal/logging"
)

// Build-time variables (set via ldflags).
var (
	version = "dev"
	commit  = "unknown"
)

// initialURL holds the URL to open on startup (from the open command).
var initialURL string

// restoreSessionID holds the session ID to restore on startup.
var restoreSessionID string

func main() {
	enableCrashForensics()

	// The GTK main loop must own the process main thread, so the open
	// command bypasses cobra entirely.
	if len(os.Args) > 1 && os.Args[1] == "open" {
		parseOpenArgs(os.Args[2:])
		os.Exit(runGUI())
		return
	}

	cmd.Execute()
}

func parseOpenArgs(args []string) {
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--session" && i+1 < len(args):
			restoreSessionID = args[i+1]
			i++
		case strings.HasPrefix(args[i], "--session="):
			restoreSessionID = strings.TrimPrefix(args[i], "--session=")
		case !strings.HasPrefix(args[i], "-") && initialURL == "":
			initialURL = args[i]
		}
	}
}

func runGUI() int {
	runtime.LockOSThread()
	timer := bootstrap.NewStartupTimer()

	cfgMgr := initConfig()
	cfg := cfgMgr.Get()
	timer.Mark("config")

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	logger.Info().
		Str("version", version).
		Str("commit", commit).
		Msg("starting tabwin")
	ctx := logging.WithContext(context.Background(), logger)
	timer.Mark("logger")

	initResult, err := bootstrap.RunParallelInit(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("initialization failed")
		return 1
	}
	defer initResult.CloseDB()
	timer.MarkDuration("parallel_phase", initResult.Duration)

	sessions := sqlite.NewSessionStateRepository(initResult.DB)

	restore, sessionID := resolveSession(ctx, cfg, sessions)
	timer.Mark("session")

	app, err := shell.New(ctx, cfgMgr, sessions, shell.Options{
		InitialURL: initialURL,
		Restore:    restore,
		SessionID:  sessionID,
		DataDir:    initResult.DataDir,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to create window")
		return 1
	}
	timer.Mark("window")
	timer.Log(ctx)

	setupSignalHandler(ctx, app)

	app.Run()
	return 0
}

// resolveSession picks the session ID for this run and loads the snapshot
// to restore, honoring an explicit --session flag before auto-restore.
func resolveSession(
	ctx context.Context,
	cfg *config.Config,
	sessions repository.SessionStateRepository,
) (*entity.SessionState, entity.SessionID) {
	log := logging.FromContext(ctx)

	if restoreSessionID != "" {
		state, err := sessions.GetSnapshot(ctx, entity.SessionID(restoreSessionID))
		if err != nil || state == nil {
			log.Warn().Err(err).
				Str("session_id", restoreSessionID).
				Msg("requested session not found, starting fresh")
			return nil, entity.SessionID(logging.GenerateSessionID())
		}
		// Restoring continues the same session identity.
		return state, state.SessionID
	}

	sessionID := entity.SessionID(logging.GenerateSessionID())

	if cfg.Session.AutoRestore && initialURL == "" {
		states, err := sessions.ListSnapshots(ctx, 1)
		if err != nil {
			log.Warn().Err(err).Msg("auto-restore: failed to list sessions")
			return nil, sessionID
		}
		if len(states) > 0 && states[0].TabCount() > 0 {
			log.Info().
				Str("session_id", string(states[0].SessionID)).
				Int("tabs", states[0].TabCount()).
				Msg("auto-restore: found last session")
			return states[0], states[0].SessionID
		}
	}

	return nil, sessionID
}

func initConfig() *config.Manager {
	mgr, err := config.NewManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize configuration: %v\n", err)
		os.Exit(1)
	}
	if err := mgr.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := mgr.Watch(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to start config watching: %v\n", err)
	}
	return mgr
}

func setupSignalHandler(ctx context.Context, app *shell.App) {
	log := logging.FromContext(ctx)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		signal.Stop(sigCh)
		log.Info().Str("signal", sig.String()).Msg("received interrupt, quitting")
		app.Quit()
	}()
}
