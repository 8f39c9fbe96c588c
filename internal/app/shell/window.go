package shell

import (
	"fmt"

	"github.com/tabwin/tabwin/internal/app/browser"
	"github.com/tabwin/tabwin/pkg/webview"
)

// WindowAdapter adapts a webview.Window to the browser.HostWindow port.
type WindowAdapter struct {
	win *webview.Window
}

// NewWindowAdapter wraps an existing window.
func NewWindowAdapter(win *webview.Window) *WindowAdapter {
	return &WindowAdapter{win: win}
}

// Window exposes the underlying window for shell-level wiring.
func (w *WindowAdapter) Window() *webview.Window { return w.win }

func (w *WindowAdapter) ContentSize() (int, int) { return w.win.ContentSize() }

// PlaceSurface positions a surface inside the window's content area.
func (w *WindowAdapter) PlaceSurface(s browser.PageSurface, b browser.Bounds) error {
	surface, ok := s.(*Surface)
	if !ok {
		return fmt.Errorf("shell: cannot place surface of type %T", s)
	}
	return w.win.Attach(surface.View().AsWidget(), b.X, b.Y, b.Width, b.Height)
}

// RemoveSurface detaches a surface from the window.
func (w *WindowAdapter) RemoveSurface(s browser.PageSurface) error {
	surface, ok := s.(*Surface)
	if !ok {
		return fmt.Errorf("shell: cannot remove surface of type %T", s)
	}
	return w.win.Detach(surface.View().AsWidget())
}

func (w *WindowAdapter) SetTitle(title string)   { w.win.SetTitle(title) }
func (w *WindowAdapter) Show() error             { return w.win.Show() }
func (w *WindowAdapter) Close() error            { return w.win.Close() }
func (w *WindowAdapter) Minimize() error         { return w.win.Minimize() }
func (w *WindowAdapter) ToggleMaximize() error   { return w.win.ToggleMaximize() }
func (w *WindowAdapter) ToggleFullscreen() error { return w.win.ToggleFullscreen() }

func (w *WindowAdapter) RegisterCloseRequestHandler(handler func() bool) {
	w.win.RegisterCloseRequestHandler(handler)
}

func (w *WindowAdapter) RegisterResizeHandler(handler func(int, int)) {
	w.win.RegisterResizeHandler(handler)
}
