package config

// DefaultConfig returns the default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			DefaultWidth:       1280,
			DefaultHeight:      800,
			MinWidth:           480,
			MinHeight:          320,
			BackgroundColor:    "#1e1e2e",
			ControlStripHeight: 38,
			TitleBarStyle:      "hidden",
		},
		Pages: PagesConfig{
			BlankPage:   "about:blank",
			StartPage:   "tabwin://start",
			ControlPage: "tabwin://controls",
		},
		Database: DatabaseConfig{
			Path: "", // Resolved at load time via XDG
		},
		Session: SessionConfig{
			AutoRestore:        false,
			SnapshotTabs:       true,
			SnapshotIntervalMs: 5000,
			MaxListedRuns:      20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Bookkeeping: BookkeepingConfig{
			LastTabCount: 0,
		},
	}
}
