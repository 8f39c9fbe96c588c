package shell

import (
	"fmt"

	"github.com/tabwin/tabwin/internal/app/browser"
	"github.com/tabwin/tabwin/internal/config"
	"github.com/tabwin/tabwin/pkg/webview"
)

// PageSurfaceFactory creates WebKit-backed page surfaces.
type PageSurfaceFactory struct {
	viewConfig *webview.Config
}

// NewPageSurfaceFactory builds a factory from the application config.
func NewPageSurfaceFactory(cfg *config.Config, dataDir string) *PageSurfaceFactory {
	vc := webview.GetDefaultConfig()
	vc.DataDir = dataDir
	_ = cfg // sizing and colors apply to the window, not individual views
	return &PageSurfaceFactory{viewConfig: vc}
}

// NewPageSurface creates a fresh embedded page surface.
func (f *PageSurfaceFactory) NewPageSurface() (browser.PageSurface, error) {
	view, err := webview.NewWebView(f.viewConfig)
	if err != nil {
		return nil, fmt.Errorf("shell: create webview: %w", err)
	}
	return NewSurface(view), nil
}

// NewControlSurface creates the control-strip surface with the script
// message bridge attached so the control page can reach the channel.
func (f *PageSurfaceFactory) NewControlSurface() (*Surface, error) {
	view, err := webview.NewWebView(f.viewConfig)
	if err != nil {
		return nil, fmt.Errorf("shell: create control webview: %w", err)
	}
	if err := view.AttachMessaging(); err != nil {
		_ = view.Destroy()
		return nil, fmt.Errorf("shell: attach messaging: %w", err)
	}
	return NewSurface(view), nil
}
