package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/tabwin/tabwin/internal/domain/entity"
	"github.com/tabwin/tabwin/internal/logging"
)

// SpawnWithSession starts a new detached tabwin instance that restores the
// given session. The spawned process outlives the CLI invocation.
func (a *App) SpawnWithSession(sessionID entity.SessionID) error {
	log := logging.FromContext(a.ctx)

	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("get executable path: %w", err)
	}

	cmd := exec.Command(execPath, "open", "--session", string(sessionID))
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawn session: %w", err)
	}

	if err := cmd.Process.Release(); err != nil {
		log.Warn().Err(err).Msg("failed to release spawned process (non-fatal)")
	}

	log.Info().
		Str("session_id", string(sessionID)).
		Int("pid", cmd.Process.Pid).
		Msg("spawned tabwin with session restoration")

	return nil
}
