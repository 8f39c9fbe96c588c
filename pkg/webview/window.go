package webview

import (
	"fmt"
	"sync"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// WindowOptions configures a new top-level window.
type WindowOptions struct {
	Title           string
	Width           int
	Height          int
	MinWidth        int
	MinHeight       int
	BackgroundColor string
	Decorated       bool
}

// Window wraps a GTK4 top-level window with a fixed-position surface
// container. Surfaces are placed at absolute coordinates so the owner can
// stack a full-size page area under a control strip.
type Window struct {
	win   *gtk.Window
	fixed *gtk.Fixed

	destroyed bool
	mu        sync.RWMutex

	onCloseRequest func() bool
	onResize       func(width, height int)
	onFullscreen   func(fullscreen bool)
}

// NewWindow creates a new top-level window with a fixed layout container.
func NewWindow(opts WindowOptions) (*Window, error) {
	InitMainThread()

	gtkWin := gtk.NewWindow()
	if gtkWin == nil {
		return nil, fmt.Errorf("webview: failed to create window")
	}

	gtkWin.SetTitle(opts.Title)
	if opts.Width > 0 && opts.Height > 0 {
		gtkWin.SetDefaultSize(opts.Width, opts.Height)
	}
	gtkWin.SetDecorated(opts.Decorated)

	fixed := gtk.NewFixed()
	if opts.MinWidth > 0 || opts.MinHeight > 0 {
		fixed.SetSizeRequest(opts.MinWidth, opts.MinHeight)
	}
	gtkWin.SetChild(fixed)

	w := &Window{
		win:   gtkWin,
		fixed: fixed,
	}

	if opts.BackgroundColor != "" {
		w.applyBackgroundColor(opts.BackgroundColor)
	}

	w.setupEventHandlers()

	return w, nil
}

// applyBackgroundColor paints the window background to avoid a white flash
// before the first surface renders.
func (w *Window) applyBackgroundColor(color string) {
	rgba := gdk.NewRGBA(0, 0, 0, 1)
	if !rgba.Parse(color) {
		return
	}

	provider := gtk.NewCSSProvider()
	provider.LoadFromString(fmt.Sprintf("window { background-color: %s; }", color))
	gtk.StyleContextAddProviderForDisplay(
		w.win.Display(),
		provider,
		gtk.STYLE_PROVIDER_PRIORITY_APPLICATION,
	)
}

func (w *Window) setupEventHandlers() {
	w.win.ConnectCloseRequest(func() bool {
		w.mu.RLock()
		handler := w.onCloseRequest
		w.mu.RUnlock()
		if handler != nil {
			return handler()
		}
		return false // allow close
	})

	// GTK4 has no resize signal on windows; width/height property changes
	// cover interactive resizing of the default-sized window.
	resizeNotify := func() {
		w.mu.RLock()
		handler := w.onResize
		w.mu.RUnlock()
		if handler != nil {
			width, height := w.ContentSize()
			handler(width, height)
		}
	}
	w.win.Connect("notify::default-width", resizeNotify)
	w.win.Connect("notify::default-height", resizeNotify)
	w.win.Connect("notify::maximized", resizeNotify)

	w.win.Connect("notify::fullscreened", func() {
		w.mu.RLock()
		handler := w.onFullscreen
		w.mu.RUnlock()
		if handler != nil {
			handler(w.win.IsFullscreen())
		}
	})
}

// ContentSize returns the current size of the surface container in pixels.
// Before the window is mapped this falls back to the default size.
func (w *Window) ContentSize() (width, height int) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return 0, 0
	}

	width = w.fixed.AllocatedWidth()
	height = w.fixed.AllocatedHeight()
	if width == 0 || height == 0 {
		width, height = w.win.DefaultSize()
	}
	return width, height
}

// Attach places a widget in the surface container at the given position and
// size. Attaching an already attached widget repositions it.
func (w *Window) Attach(widget gtk.Widgetter, x, y, width, height int) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return ErrWindowDestroyed
	}
	if widget == nil {
		return fmt.Errorf("webview: cannot attach nil widget")
	}

	base := gtk.BaseWidget(widget)
	base.SetSizeRequest(width, height)

	if parent := base.Parent(); parent != nil {
		w.fixed.Move(widget, float64(x), float64(y))
	} else {
		w.fixed.Put(widget, float64(x), float64(y))
	}
	return nil
}

// Detach removes a widget from the surface container.
func (w *Window) Detach(widget gtk.Widgetter) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return ErrWindowDestroyed
	}
	if widget == nil {
		return nil
	}

	if gtk.BaseWidget(widget).Parent() != nil {
		w.fixed.Remove(widget)
	}
	return nil
}

// SetTitle updates the window title.
func (w *Window) SetTitle(title string) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return
	}
	w.win.SetTitle(title)
}

// Show presents the window.
func (w *Window) Show() error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return ErrWindowDestroyed
	}
	w.win.Present()
	return nil
}

// Hide hides the window without destroying it.
func (w *Window) Hide() error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return ErrWindowDestroyed
	}
	w.win.SetVisible(false)
	return nil
}

// Minimize iconifies the window.
func (w *Window) Minimize() error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return ErrWindowDestroyed
	}
	w.win.Minimize()
	return nil
}

// ToggleMaximize maximizes or restores the window.
func (w *Window) ToggleMaximize() error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return ErrWindowDestroyed
	}
	if w.win.IsMaximized() {
		w.win.Unmaximize()
	} else {
		w.win.Maximize()
	}
	return nil
}

// IsMaximized reports whether the window is maximized.
func (w *Window) IsMaximized() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return !w.destroyed && w.win.IsMaximized()
}

// ToggleFullscreen enters or leaves fullscreen.
func (w *Window) ToggleFullscreen() error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return ErrWindowDestroyed
	}
	if w.win.IsFullscreen() {
		w.win.Unfullscreen()
	} else {
		w.win.Fullscreen()
	}
	return nil
}

// IsFullscreen reports whether the window is fullscreen.
func (w *Window) IsFullscreen() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return !w.destroyed && w.win.IsFullscreen()
}

// Close destroys the window.
func (w *Window) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.destroyed {
		return nil
	}
	w.destroyed = true
	w.win.Destroy()
	return nil
}

// IsDestroyed returns true if the window has been closed.
func (w *Window) IsDestroyed() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.destroyed
}

// RegisterCloseRequestHandler registers a handler for window close requests.
// Return true to stop the default close behavior.
func (w *Window) RegisterCloseRequestHandler(handler func() bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onCloseRequest = handler
}

// RegisterResizeHandler registers a handler called with the new content size
// when the window geometry changes.
func (w *Window) RegisterResizeHandler(handler func(width, height int)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onResize = handler
}

// RegisterFullscreenHandler registers a handler for fullscreen state changes.
func (w *Window) RegisterFullscreenHandler(handler func(fullscreen bool)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onFullscreen = handler
}
