// Package config provides configuration management for tabwin with Viper integration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// File permission constants
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for tabwin.
type Config struct {
	Window      WindowConfig      `mapstructure:"window" yaml:"window" json:"window"`
	Pages       PagesConfig       `mapstructure:"pages" yaml:"pages" json:"pages"`
	Database    DatabaseConfig    `mapstructure:"database" yaml:"database" json:"database"`
	Session     SessionConfig     `mapstructure:"session" yaml:"session" json:"session"`
	Logging     LoggingConfig     `mapstructure:"logging" yaml:"logging" json:"logging"`
	Bookkeeping BookkeepingConfig `mapstructure:"bookkeeping" yaml:"bookkeeping" json:"bookkeeping"`
}

// WindowConfig holds native window sizing, colors and title-bar options.
type WindowConfig struct {
	DefaultWidth       int    `mapstructure:"default_width" yaml:"default_width" json:"default_width"`
	DefaultHeight      int    `mapstructure:"default_height" yaml:"default_height" json:"default_height"`
	MinWidth           int    `mapstructure:"min_width" yaml:"min_width" json:"min_width"`
	MinHeight          int    `mapstructure:"min_height" yaml:"min_height" json:"min_height"`
	BackgroundColor    string `mapstructure:"background_color" yaml:"background_color" json:"background_color"`
	ControlStripHeight int    `mapstructure:"control_strip_height" yaml:"control_strip_height" json:"control_strip_height"`
	// TitleBarStyle selects the platform title-bar treatment: "native" or "hidden".
	TitleBarStyle string `mapstructure:"title_bar_style" yaml:"title_bar_style" json:"title_bar_style"`
}

// PagesConfig holds the page URLs the controller loads on its own.
type PagesConfig struct {
	// BlankPage is loaded into tabs opened without a URL.
	BlankPage string `mapstructure:"blank_page" yaml:"blank_page" json:"blank_page"`
	// StartPage is loaded into the initial tab when the control surface reports ready.
	StartPage string `mapstructure:"start_page" yaml:"start_page" json:"start_page"`
	// ControlPage is the control-strip UI document.
	ControlPage string `mapstructure:"control_page" yaml:"control_page" json:"control_page"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path" json:"path"`
}

// SessionConfig holds session snapshot behavior.
type SessionConfig struct {
	AutoRestore        bool `mapstructure:"auto_restore" yaml:"auto_restore" json:"auto_restore"`
	SnapshotTabs       bool `mapstructure:"snapshot_tabs" yaml:"snapshot_tabs" json:"snapshot_tabs"`
	SnapshotIntervalMs int  `mapstructure:"snapshot_interval_ms" yaml:"snapshot_interval_ms" json:"snapshot_interval_ms"`
	MaxListedRuns      int  `mapstructure:"max_listed_runs" yaml:"max_listed_runs" json:"max_listed_runs"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// BookkeepingConfig is state tabwin writes back to the config store after
// mutation, e.g. how many tabs the last window had.
type BookkeepingConfig struct {
	LastTabCount int `mapstructure:"last_tab_count" yaml:"last_tab_count" json:"last_tab_count"`
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	// Configure Viper - supports yaml, json, toml automatically
	v.SetConfigName("config")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	v.SetEnvPrefix("TABWIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"window.default_width":         "WINDOW_DEFAULT_WIDTH",
		"window.default_height":        "WINDOW_DEFAULT_HEIGHT",
		"window.min_width":             "WINDOW_MIN_WIDTH",
		"window.min_height":            "WINDOW_MIN_HEIGHT",
		"window.background_color":      "WINDOW_BACKGROUND_COLOR",
		"window.control_strip_height":  "WINDOW_CONTROL_STRIP_HEIGHT",
		"window.title_bar_style":       "WINDOW_TITLE_BAR_STYLE",
		"pages.blank_page":             "PAGES_BLANK_PAGE",
		"pages.start_page":             "PAGES_START_PAGE",
		"pages.control_page":           "PAGES_CONTROL_PAGE",
		"database.path":                "DATABASE_PATH",
		"session.auto_restore":         "SESSION_AUTO_RESTORE",
		"session.snapshot_tabs":        "SESSION_SNAPSHOT_TABS",
		"session.snapshot_interval_ms": "SESSION_SNAPSHOT_INTERVAL_MS",
		"logging.level":                "LOGGING_LEVEL",
		"logging.format":               "LOGGING_FORMAT",
	}

	for key, env := range bindings {
		if err := v.BindEnv(key, "TABWIN_"+env); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", env, err)
		}
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			if err := m.createDefaultConfig(); err != nil {
				return fmt.Errorf("failed to create default config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config, err := m.unmarshal()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) unmarshal() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return nil, fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}

	// Normalize title-bar style; unknown values fall back to native.
	switch strings.ToLower(config.Window.TitleBarStyle) {
	case "hidden":
		config.Window.TitleBarStyle = "hidden"
	default:
		config.Window.TitleBarStyle = "native"
	}

	if config.Window.ControlStripHeight <= 0 {
		config.Window.ControlStripHeight = DefaultConfig().Window.ControlStripHeight
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// Watch starts watching the config file for changes and reloads automatically.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil // Already watching
	}

	m.viper.WatchConfig()
	m.viper.OnConfigChange(func(_ fsnotify.Event) {
		if err := m.reload(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to reload config: %v\n", err)
			return
		}

		m.mu.RLock()
		config := m.config
		callbacks := make([]func(*Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.RUnlock()

		for _, callback := range callbacks {
			callback(config)
		}
	})

	m.watching = true
	return nil
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// reload reloads the configuration.
func (m *Manager) reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}

	config, err := m.unmarshal()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

// PersistTabCount writes the last observed tab count back to the config
// store. Failures are returned but never fatal to the caller.
func (m *Manager) PersistTabCount(count int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.viper.Set("bookkeeping.last_tab_count", count)
	if m.config != nil {
		m.config.Bookkeeping.LastTabCount = count
	}

	if m.viper.ConfigFileUsed() == "" {
		configFile, err := GetConfigFile()
		if err != nil {
			return err
		}
		return m.viper.WriteConfigAs(configFile)
	}
	return m.viper.WriteConfig()
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("window.default_width", defaults.Window.DefaultWidth)
	m.viper.SetDefault("window.default_height", defaults.Window.DefaultHeight)
	m.viper.SetDefault("window.min_width", defaults.Window.MinWidth)
	m.viper.SetDefault("window.min_height", defaults.Window.MinHeight)
	m.viper.SetDefault("window.background_color", defaults.Window.BackgroundColor)
	m.viper.SetDefault("window.control_strip_height", defaults.Window.ControlStripHeight)
	m.viper.SetDefault("window.title_bar_style", defaults.Window.TitleBarStyle)

	m.viper.SetDefault("pages.blank_page", defaults.Pages.BlankPage)
	m.viper.SetDefault("pages.start_page", defaults.Pages.StartPage)
	m.viper.SetDefault("pages.control_page", defaults.Pages.ControlPage)

	m.viper.SetDefault("session.auto_restore", defaults.Session.AutoRestore)
	m.viper.SetDefault("session.snapshot_tabs", defaults.Session.SnapshotTabs)
	m.viper.SetDefault("session.snapshot_interval_ms", defaults.Session.SnapshotIntervalMs)
	m.viper.SetDefault("session.max_listed_runs", defaults.Session.MaxListedRuns)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("bookkeeping.last_tab_count", defaults.Bookkeeping.LastTabCount)
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	defaultConfig := DefaultConfig()

	configData, err := json.MarshalIndent(defaultConfig, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configFile, configData, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created default configuration file: %s\n", configFile)

	if err := GenerateSchemaFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to generate config schema: %v\n", err)
	}
	return nil
}

// ConfigFileUsed returns the path to the configuration file being used.
func (m *Manager) ConfigFileUsed() string {
	return m.viper.ConfigFileUsed()
}

// Global configuration manager instance
var globalManager *Manager
var globalManagerOnce sync.Once

// Init initializes the global configuration manager.
func Init() error {
	var err error
	globalManagerOnce.Do(func() {
		globalManager, err = NewManager()
		if err != nil {
			return
		}
		err = globalManager.Load()
	})
	return err
}

// Get returns the global configuration.
func Get() *Config {
	if globalManager == nil {
		// Return defaults if not initialized
		return DefaultConfig()
	}
	return globalManager.Get()
}

// Watch starts watching the global configuration for changes.
func Watch() error {
	if globalManager == nil {
		return fmt.Errorf("configuration not initialized")
	}
	return globalManager.Watch()
}

// OnConfigChange registers a callback for global configuration changes.
func OnConfigChange(callback func(*Config)) {
	if globalManager == nil {
		return
	}
	globalManager.OnConfigChange(callback)
}

// PersistTabCount writes tab-count bookkeeping through the global manager.
func PersistTabCount(count int) error {
	if globalManager == nil {
		return fmt.Errorf("configuration not initialized")
	}
	return globalManager.PersistTabCount(count)
}
