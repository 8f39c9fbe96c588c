// Package shell assembles a tabbed window from the GTK/WebKit primitives in
// pkg/webview: it adapts them to the browser package's ports and wires the
// control channel, session persistence and window lifecycle together.
package shell

import (
	"net/url"
	"sync"

	"github.com/tabwin/tabwin/internal/app/browser"
	"github.com/tabwin/tabwin/pkg/webview"
)

// Surface adapts a webview.WebView to the browser.PageSurface port.
type Surface struct {
	view *webview.WebView

	mu       sync.Mutex
	attached bool
}

// NewSurface wraps an existing WebView.
func NewSurface(view *webview.WebView) *Surface {
	return &Surface{view: view}
}

// View exposes the underlying WebView for widget placement.
func (s *Surface) View() *webview.WebView { return s.view }

func (s *Surface) ID() uint64               { return s.view.ID() }
func (s *Surface) LoadURL(url string) error { return s.view.LoadURL(url) }
func (s *Surface) Reload() error            { return s.view.Reload() }
func (s *Surface) StopLoading() error       { return s.view.StopLoading() }
func (s *Surface) GoBack() error            { return s.view.GoBack() }
func (s *Surface) GoForward() error         { return s.view.GoForward() }
func (s *Surface) CanGoBack() bool          { return s.view.CanGoBack() }
func (s *Surface) CanGoForward() bool       { return s.view.CanGoForward() }
func (s *Surface) URL() string              { return s.view.URL() }
func (s *Surface) Title() string            { return s.view.Title() }
func (s *Surface) IsLoading() bool          { return s.view.IsLoading() }

func (s *Surface) InjectScript(script string) error { return s.view.InjectScript(script) }
func (s *Surface) Focus() error                     { return s.view.Focus() }
func (s *Surface) Show() error                      { return s.view.Show() }
func (s *Surface) Hide() error                      { return s.view.Hide() }
func (s *Surface) Destroy() error                   { return s.view.Destroy() }
func (s *Surface) IsDestroyed() bool                { return s.view.IsDestroyed() }

// AttachNavigationHandlers installs the event wiring once. Later calls are
// ignored so repeated loads never duplicate handlers.
func (s *Surface) AttachNavigationHandlers(events browser.PageEvents) {
	s.mu.Lock()
	if s.attached {
		s.mu.Unlock()
		return
	}
	s.attached = true
	s.mu.Unlock()

	if events.OnScriptMessage != nil {
		s.view.RegisterScriptMessageHandler(events.OnScriptMessage)
	}
	if events.OnTitleChanged != nil {
		s.view.RegisterTitleChangedHandler(events.OnTitleChanged)
	}
	if events.OnURLChanged != nil {
		s.view.RegisterURIChangedHandler(events.OnURLChanged)
	}
	if events.OnClose != nil {
		s.view.RegisterCloseHandler(events.OnClose)
	}

	s.view.RegisterLoadChangedHandler(func(ev webview.LoadEvent) {
		switch ev {
		case webview.LoadStarted:
			if events.OnLoadStarted != nil {
				events.OnLoadStarted()
			}
		case webview.LoadRedirected:
			if events.OnURLChanged != nil {
				events.OnURLChanged(s.view.URL())
			}
		case webview.LoadCommitted:
			if events.OnLoadCommitted != nil {
				events.OnLoadCommitted(s.view.URL())
			}
			if events.OnFaviconChanged != nil {
				if favicon := defaultFaviconURL(s.view.URL()); favicon != "" {
					events.OnFaviconChanged(favicon)
				}
			}
		case webview.LoadFinished:
			if events.OnLoadFinished != nil {
				events.OnLoadFinished(s.view.URL())
			}
			if events.OnContentReady != nil {
				events.OnContentReady()
			}
		}
	})

	if events.OnCreate != nil {
		s.view.RegisterCreateHandler(func(req webview.CreateRequest) {
			// The controller opens its own surface for the target.
			events.OnCreate(req.TargetURI, mapDisposition(req.Disposition()))
		})
	}
}

// mapDisposition converts the WebKit-level classification to the
// controller-level one.
func mapDisposition(d webview.Disposition) browser.Disposition {
	switch d {
	case webview.DispositionNewWindow:
		return browser.OpenNewWindow
	case webview.DispositionBackgroundTab:
		return browser.OpenBackgroundTab
	default:
		return browser.OpenForegroundTab
	}
}

// defaultFaviconURL derives the conventional favicon location from a page
// URL. Non-HTTP schemes get no favicon.
func defaultFaviconURL(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return u.Scheme + "://" + u.Host + "/favicon.ico"
}
