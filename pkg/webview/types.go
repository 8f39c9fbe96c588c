package webview

import (
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
)

// LoadEvent represents WebKit page load lifecycle events.
type LoadEvent int

const (
	LoadStarted LoadEvent = iota
	LoadRedirected
	LoadCommitted
	LoadFinished
)

// Disposition indicates how a page-initiated navigation request wants its
// target to be presented.
type Disposition int

const (
	// DispositionForegroundTab opens a new tab and selects it.
	DispositionForegroundTab Disposition = iota
	// DispositionBackgroundTab opens a new tab without selecting it.
	DispositionBackgroundTab
	// DispositionNewWindow requests a standalone popup window.
	DispositionNewWindow
)

// WindowFeatures describes the window features requested by a page via
// window.open, as reported by WebKitWindowProperties.
type WindowFeatures struct {
	Width              int
	Height             int
	ToolbarVisible     bool
	LocationbarVisible bool
	MenubarVisible     bool
	Resizable          bool
}

// Classify maps requested window features onto a disposition. Pages that ask
// for a stripped-down chrome-less window get a popup; everything else is a
// tab. Background tabs are requested via user gesture modifiers and decided
// by the caller, so Classify never returns DispositionBackgroundTab.
func (f *WindowFeatures) Classify() Disposition {
	if f == nil {
		return DispositionForegroundTab
	}
	if f.Width > 0 && f.Height > 0 && !f.ToolbarVisible && !f.LocationbarVisible {
		return DispositionNewWindow
	}
	return DispositionForegroundTab
}

// featuresFromProperties copies the window.open feature string WebKit parsed
// into WindowProperties onto the Go-level struct. Nil when WebKit reported
// no properties.
func featuresFromProperties(props *webkit.WindowProperties) *WindowFeatures {
	if props == nil {
		return nil
	}
	f := &WindowFeatures{
		ToolbarVisible:     props.ToolbarVisible(),
		LocationbarVisible: props.LocationbarVisible(),
		MenubarVisible:     props.MenubarVisible(),
		Resizable:          props.Resizable(),
	}
	geom := props.Geometry()
	f.Width = geom.Width()
	f.Height = geom.Height()
	return f
}

// CreateRequest contains information about a page-initiated request for a
// new WebView, delivered by the create signal.
type CreateRequest struct {
	TargetURI     string
	FrameName     string
	IsUserGesture bool
	Features      *WindowFeatures
	ParentID      uint64
}

// Disposition resolves the request to a disposition. A _blank frame name
// without explicit popup features is a foreground tab.
func (r *CreateRequest) Disposition() Disposition {
	d := r.Features.Classify()
	if d == DispositionNewWindow {
		return d
	}
	if r.IsUserGesture {
		return DispositionForegroundTab
	}
	// Non-gesture window.open calls land behind the current tab.
	return DispositionBackgroundTab
}

// Config holds WebView configuration
type Config struct {
	// UserAgent string for the WebView
	UserAgent string

	// EnableJavaScript controls JavaScript execution
	EnableJavaScript bool

	// EnableWebGL controls WebGL support
	EnableWebGL bool

	// HardwareAcceleration controls GPU acceleration
	HardwareAcceleration bool

	// DefaultFontSize in pixels
	DefaultFontSize int

	// MinimumFontSize in pixels
	MinimumFontSize int

	// DataDir is the directory for persistent data (cookies, localStorage, etc.)
	DataDir string
}

// GetDefaultConfig returns a Config with sensible defaults
func GetDefaultConfig() *Config {
	return &Config{
		UserAgent:            "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36",
		EnableJavaScript:     true,
		EnableWebGL:          true,
		HardwareAcceleration: true,
		DefaultFontSize:      16,
		MinimumFontSize:      8,
	}
}
