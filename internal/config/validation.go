// Package config provides validation utilities for configuration values.
package config

import (
	"fmt"
	"strings"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	// Validate window geometry
	if config.Window.DefaultWidth < 1 {
		validationErrors = append(validationErrors, "window.default_width must be positive")
	}
	if config.Window.DefaultHeight < 1 {
		validationErrors = append(validationErrors, "window.default_height must be positive")
	}
	if config.Window.MinWidth < 0 {
		validationErrors = append(validationErrors, "window.min_width must be non-negative")
	}
	if config.Window.MinHeight < 0 {
		validationErrors = append(validationErrors, "window.min_height must be non-negative")
	}
	if config.Window.MinWidth > config.Window.DefaultWidth {
		validationErrors = append(validationErrors, "window.min_width must not exceed window.default_width")
	}
	if config.Window.MinHeight > config.Window.DefaultHeight {
		validationErrors = append(validationErrors, "window.min_height must not exceed window.default_height")
	}
	if config.Window.ControlStripHeight < 1 || config.Window.ControlStripHeight > 256 {
		validationErrors = append(validationErrors, "window.control_strip_height must be between 1 and 256")
	}

	// Validate title bar style
	switch config.Window.TitleBarStyle {
	case "native", "hidden":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("window.title_bar_style must be 'native' or 'hidden' (got: %s)", config.Window.TitleBarStyle))
	}

	// Validate background color (hex notation)
	if config.Window.BackgroundColor != "" && !strings.HasPrefix(config.Window.BackgroundColor, "#") {
		validationErrors = append(validationErrors, fmt.Sprintf("window.background_color must be a hex color (got: %s)", config.Window.BackgroundColor))
	}

	// Validate pages
	if config.Pages.BlankPage == "" {
		validationErrors = append(validationErrors, "pages.blank_page cannot be empty")
	}
	if config.Pages.StartPage == "" {
		validationErrors = append(validationErrors, "pages.start_page cannot be empty")
	}
	if config.Pages.ControlPage == "" {
		validationErrors = append(validationErrors, "pages.control_page cannot be empty")
	}

	// Validate session values
	if config.Session.MaxListedRuns < 0 {
		validationErrors = append(validationErrors, "session.max_listed_runs must be non-negative")
	}

	// Validate logging values
	switch strings.ToLower(config.Logging.Level) {
	case "trace", "debug", "info", "warn", "error", "":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error (got: %s)", config.Logging.Level))
	}
	switch strings.ToLower(config.Logging.Format) {
	case "console", "json", "":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be 'console' or 'json' (got: %s)", config.Logging.Format))
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}
