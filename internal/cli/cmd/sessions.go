package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tabwin/tabwin/internal/cli/model"
	"github.com/tabwin/tabwin/internal/domain/entity"
)

const defaultSessionsLimit = 20

var (
	sessionsJSON  bool
	sessionsLimit int
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage saved sessions",
	Long: `View, restore, and manage saved window sessions.

Sessions are snapshotted automatically while a window runs. You can
list past sessions and restore one to reopen its tabs.

Run without arguments to open the interactive session browser.`,
	RunE: runSessions,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
}

func runSessions(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	m := model.NewSessionsModel(app.Ctx(), app.Theme, model.SessionsModelConfig{
		Repo:      app.Sessions,
		Spawn:     app.SpawnWithSession,
		MaxListed: app.Config.Session.MaxListedRuns,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// sessions list
var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved sessions",
	Long:  `List all saved sessions with their tab counts and save times.`,
	RunE:  runSessionsList,
}

func init() {
	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsListCmd.Flags().BoolVar(&sessionsJSON, "json", false, "output as JSON")
	sessionsListCmd.Flags().IntVar(&sessionsLimit, "limit", defaultSessionsLimit, "maximum sessions to show")
}

func runSessionsList(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	states, err := app.Sessions.ListSnapshots(app.Ctx(), sessionsLimit)
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}

	if sessionsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(states)
	}

	if len(states) == 0 {
		fmt.Println("No saved sessions found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "SESSION ID\tTABS\tSAVED AT")
	for _, state := range states {
		_, _ = fmt.Fprintf(w, "%s\t%d\t%s\n",
			state.SessionID,
			state.TabCount(),
			state.SavedAt.Local().Format("2006-01-02 15:04:05"),
		)
	}
	return w.Flush()
}

// sessions restore <id>
var sessionsRestoreCmd = &cobra.Command{
	Use:   "restore <session-id>",
	Short: "Restore a saved session",
	Long: `Restore a previously saved session.

This launches a new window with all tabs from the saved session. The
session ID can be found using 'tabwin sessions list'.

You can use a short suffix of the session ID as long as it's unique.

Example:
  tabwin sessions restore 20260830_143022_abc1
  tabwin sessions restore abc1`,
	Args: cobra.ExactArgs(1),
	RunE: runSessionsRestore,
}

func init() {
	sessionsCmd.AddCommand(sessionsRestoreCmd)
}

func runSessionsRestore(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	state, err := findSessionByIDOrSuffix(args[0])
	if err != nil {
		return err
	}
	if state.TabCount() == 0 {
		return fmt.Errorf("session %s has no tabs to restore", state.SessionID)
	}

	if err := app.SpawnWithSession(state.SessionID); err != nil {
		return fmt.Errorf("spawn window: %w", err)
	}

	fmt.Printf("Restoring session %s...\n", state.SessionID)
	return nil
}

// sessions delete <id>
var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a saved session",
	Long: `Delete a saved session snapshot permanently.

You can use a short suffix of the session ID as long as it's unique.

Example:
  tabwin sessions delete 20260830_143022_abc1
  tabwin sessions delete abc1`,
	Args: cobra.ExactArgs(1),
	RunE: runSessionsDelete,
}

func init() {
	sessionsCmd.AddCommand(sessionsDeleteCmd)
}

func runSessionsDelete(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	state, err := findSessionByIDOrSuffix(args[0])
	if err != nil {
		return err
	}

	if err := app.Sessions.DeleteSnapshot(app.Ctx(), state.SessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	fmt.Printf("Session %s deleted.\n", state.SessionID)
	return nil
}

// findSessionByIDOrSuffix finds a session by exact ID or unique suffix.
// Users typically identify sessions by the last few characters (e.g. "dee5").
func findSessionByIDOrSuffix(idOrSuffix string) (*entity.SessionState, error) {
	app := GetApp()
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	states, err := app.Sessions.ListSnapshots(app.Ctx(), 0)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	var matches []*entity.SessionState
	for _, state := range states {
		if string(state.SessionID) == idOrSuffix {
			return state, nil
		}
		if strings.HasSuffix(string(state.SessionID), idOrSuffix) {
			matches = append(matches, state)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no session found matching '%s'", idOrSuffix)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("ambiguous session ID '%s' matches %d sessions - be more specific", idOrSuffix, len(matches))
	}
}
