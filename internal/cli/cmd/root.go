// Package cmd provides Cobra CLI commands for tabwin.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tabwin/tabwin/internal/cli"
)

var (
	app     *cli.App
	rootCmd = &cobra.Command{
		Use:   "tabwin",
		Short: "A tabbed WebKit window with a script-driven control strip",
		Long: `Tabwin - a tabbed window controller for WebKitGTK.

Hosts web pages as tabs inside a single native window. A control strip
rendered as its own web surface drives tab lifecycle over a message
channel: open, close, switch, cycle, and window chrome actions.

Features:
  - Ordered tab strip with neighbor-aware close behavior
  - Background and foreground tab opening, detached popup windows
  - Session snapshots with auto-save and restore
  - Control surface messaging with per-window origin checks

Use 'tabwin open' to launch the graphical window, or explore the
subcommands for session and configuration management.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Commands that never touch the database skip app setup.
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// openCmd is a placeholder for help - actual execution is in main.go,
// which must own the process main thread for the GTK main loop.
var openCmd = &cobra.Command{
	Use:   "open [url]",
	Short: "Open the tabbed window",
	Long: `Open the graphical tabbed window.

If a URL is provided, the first tab navigates to it. Otherwise the
configured start page is opened.

Examples:
  tabwin open                    # Open window on the start page
  tabwin open example.com        # Open window with a first tab on URL
  tabwin open --session abc1     # Restore a saved session`,
	Run: func(_ *cobra.Command, _ []string) {
		// Handled by main.go before cobra runs.
	},
}

func init() {
	openCmd.Flags().String("session", "", "session ID to restore")
	rootCmd.AddCommand(openCmd)
}
