package webview

import (
	"fmt"
	"sync"
	"sync/atomic"

	jsc "github.com/diamondburned/gotk4-webkitgtk/pkg/javascriptcore/v6"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// ScriptMessageHandlerName is the window.webkit.messageHandlers entry pages
// use to post messages to the native side.
const ScriptMessageHandlerName = "tabwin"

var (
	viewIDCounter uint64
	viewRegistry  = make(map[uint64]*WebView)
	viewMu        sync.RWMutex
)

// LookupWebView returns a WebView by ID, or nil if not found.
func LookupWebView(id uint64) *WebView {
	viewMu.RLock()
	defer viewMu.RUnlock()
	return viewRegistry[id]
}

// WebView wraps a WebKitGTK WebView with Go-level state tracking.
type WebView struct {
	view *webkit.WebView
	id   uint64

	// State
	config    *Config
	destroyed bool
	uri       string
	title     string
	isLoading bool
	canGoBack bool
	canGoFwd  bool
	mu        sync.RWMutex

	// Event handlers
	onScriptMessage func(json string)
	onLoadChanged   func(LoadEvent)
	onTitleChanged  func(string)
	onURIChanged    func(string)
	onClose         func()
	onCreate        func(CreateRequest)
	onReadyToShow   func()

	messagingAttached bool
}

// NewWebView creates a new WebView with the given configuration
func NewWebView(cfg *Config) (*WebView, error) {
	if cfg == nil {
		cfg = GetDefaultConfig()
	}

	InitMainThread()

	wkView := webkit.NewWebView()
	if wkView == nil {
		return nil, ErrWebViewNotInitialized
	}

	id := atomic.AddUint64(&viewIDCounter, 1)

	wv := &WebView{
		view:   wkView,
		id:     id,
		config: cfg,
	}

	if err := wv.applyConfig(); err != nil {
		return nil, err
	}

	wv.setupEventHandlers()

	viewMu.Lock()
	viewRegistry[id] = wv
	viewMu.Unlock()

	return wv, nil
}

// applyConfig applies the configuration to the WebView settings
func (w *WebView) applyConfig() error {
	settings := w.view.Settings()
	if settings == nil {
		return fmt.Errorf("webview: failed to get settings")
	}

	settings.SetEnableJavascript(w.config.EnableJavaScript)
	settings.SetEnableWebgl(w.config.EnableWebGL)
	settings.SetDefaultFontSize(uint32(w.config.DefaultFontSize))
	settings.SetMinimumFontSize(uint32(w.config.MinimumFontSize))

	if w.config.UserAgent != "" {
		settings.SetUserAgent(w.config.UserAgent)
	}

	if w.config.HardwareAcceleration {
		settings.SetHardwareAccelerationPolicy(webkit.HardwareAccelerationPolicyAlways)
	}

	return nil
}

// setupEventHandlers connects GTK signals to internal handlers
func (w *WebView) setupEventHandlers() {
	// Title changed - connect to notify::title signal
	w.view.Connect("notify::title", func() {
		title := w.view.Title()
		w.mu.Lock()
		w.title = title
		handler := w.onTitleChanged
		w.mu.Unlock()
		if handler != nil {
			handler(title)
		}
	})

	// URI changed - connect to notify::uri signal
	w.view.Connect("notify::uri", func() {
		uri := w.view.URI()
		w.mu.Lock()
		w.uri = uri
		handler := w.onURIChanged
		w.mu.Unlock()
		if handler != nil {
			handler(uri)
		}
	})

	// Load changed - track navigation state as the page moves through the
	// load lifecycle so CanGoBack/CanGoForward never touch GTK off-thread.
	w.view.ConnectLoadChanged(func(event webkit.LoadEvent) {
		w.mu.Lock()
		w.uri = w.view.URI()
		w.canGoBack = w.view.CanGoBack()
		w.canGoFwd = w.view.CanGoForward()

		switch event {
		case webkit.LoadStarted:
			w.isLoading = true
		case webkit.LoadFinished:
			w.isLoading = false
		}
		handler := w.onLoadChanged
		w.mu.Unlock()

		if handler != nil {
			handler(LoadEvent(event))
		}
	})

	// Close (window.close() from page content)
	w.view.ConnectClose(func() {
		w.mu.RLock()
		handler := w.onClose
		w.mu.RUnlock()
		if handler != nil {
			handler()
		}
	})

	// Create signal for page-initiated new views (window.open, _blank targets)
	w.view.ConnectCreate(func(navAction *webkit.NavigationAction) gtk.Widgetter {
		w.mu.RLock()
		handler := w.onCreate
		w.mu.RUnlock()
		if handler == nil {
			return nil // Block popup
		}

		req := CreateRequest{ParentID: w.id}
		if navAction != nil {
			req.FrameName = navAction.FrameName()
			req.IsUserGesture = navAction.IsUserGesture()
			if uriReq := navAction.Request(); uriReq != nil {
				req.TargetURI = uriReq.URI()
			}
		}

		// The requested window features exist only on the view WebKit gets
		// back from this signal, published right before ready-to-show. Hand
		// WebKit a placeholder view, read the features off it there and
		// route the request; the handler opens its own surface and the
		// placeholder is never shown.
		placeholder := webkit.NewWebView()
		placeholder.ConnectReadyToShow(func() {
			req.Features = featuresFromProperties(placeholder.WindowProperties())
			handler(req)
			placeholder.StopLoading()
		})
		return placeholder
	})

	// Ready-to-show for popup display
	w.view.ConnectReadyToShow(func() {
		w.mu.RLock()
		handler := w.onReadyToShow
		w.mu.RUnlock()
		if handler != nil {
			handler()
		}
	})
}

// AttachMessaging wires the script message bridge once per WebView. The page
// posts JSON strings via window.webkit.messageHandlers.tabwin.postMessage and
// a document-start script publishes the view id as window.__tabwin_surface_id.
func (w *WebView) AttachMessaging() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.destroyed {
		return ErrWebViewDestroyed
	}
	if w.messagingAttached {
		return nil // already attached
	}

	ucm := w.view.UserContentManager()
	if ucm == nil {
		return fmt.Errorf("webview: UserContentManager is nil")
	}

	// Connect BEFORE registering the handler to avoid missing early messages.
	ucm.Connect("script-message-received::"+ScriptMessageHandlerName, func(value *jsc.Value) {
		if value == nil {
			return
		}
		raw := value.ToJSON(0)
		if raw == "" {
			return
		}
		w.mu.RLock()
		handler := w.onScriptMessage
		w.mu.RUnlock()
		if handler != nil {
			handler(raw)
		}
	})

	if !ucm.RegisterScriptMessageHandler(ScriptMessageHandlerName, "") {
		return fmt.Errorf("webview: failed to register script message handler %q", ScriptMessageHandlerName)
	}

	// Surface id goes in first so page scripts can tag outgoing messages.
	idScript := fmt.Sprintf("window.__tabwin_surface_id = %d;", w.id)
	ucm.AddScript(webkit.NewUserScript(
		idScript,
		webkit.UserContentInjectTopFrame,
		webkit.UserScriptInjectAtDocumentStart,
		nil,
		nil,
	))

	w.messagingAttached = true
	return nil
}

// LoadURL loads the given URL in the WebView
func (w *WebView) LoadURL(url string) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return ErrWebViewDestroyed
	}

	if url == "" {
		return ErrInvalidURL
	}

	w.view.LoadURI(url)
	return nil
}

// URL returns the current URL
func (w *WebView) URL() string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return ""
	}
	return w.uri
}

// Title returns the current page title
func (w *WebView) Title() string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return ""
	}
	return w.title
}

// IsLoading returns true if a page load is in progress
func (w *WebView) IsLoading() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.isLoading && !w.destroyed
}

// GoBack navigates back in history
func (w *WebView) GoBack() error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return ErrWebViewDestroyed
	}

	w.view.GoBack()
	return nil
}

// GoForward navigates forward in history
func (w *WebView) GoForward() error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return ErrWebViewDestroyed
	}

	w.view.GoForward()
	return nil
}

// CanGoBack returns true if back navigation is possible
func (w *WebView) CanGoBack() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.canGoBack && !w.destroyed
}

// CanGoForward returns true if forward navigation is possible
func (w *WebView) CanGoForward() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.canGoFwd && !w.destroyed
}

// Reload reloads the current page
func (w *WebView) Reload() error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return ErrWebViewDestroyed
	}

	w.view.Reload()
	return nil
}

// StopLoading stops the current load operation
func (w *WebView) StopLoading() error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return ErrWebViewDestroyed
	}

	w.view.StopLoading()
	return nil
}

// Show makes the WebView visible
func (w *WebView) Show() error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return ErrWebViewDestroyed
	}

	w.view.SetVisible(true)
	return nil
}

// Hide makes the WebView invisible
func (w *WebView) Hide() error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return ErrWebViewDestroyed
	}

	w.view.SetVisible(false)
	return nil
}

// Focus moves keyboard focus to the WebView
func (w *WebView) Focus() error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return ErrWebViewDestroyed
	}

	w.view.GrabFocus()
	return nil
}

// InjectScript executes JavaScript in the WebView
func (w *WebView) InjectScript(script string) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.destroyed {
		return ErrWebViewDestroyed
	}

	EvaluateJavascript(w.view, script)
	return nil
}

// Destroy destroys the WebView and releases resources
func (w *WebView) Destroy() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.destroyed {
		return nil
	}

	w.destroyed = true

	viewMu.Lock()
	delete(viewRegistry, w.id)
	viewMu.Unlock()

	// The GTK widget is cleaned up by reference counting once detached.
	return nil
}

// IsDestroyed returns true if the WebView has been destroyed
func (w *WebView) IsDestroyed() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.destroyed
}

// ID returns the unique identifier for this WebView
func (w *WebView) ID() uint64 {
	return w.id
}

// AsWidget returns the WebView as a gtk.Widgetter
func (w *WebView) AsWidget() gtk.Widgetter {
	if w == nil || w.view == nil {
		return nil
	}
	return w.view
}

// Event handler registration methods

// RegisterScriptMessageHandler registers a handler for raw JSON script messages
func (w *WebView) RegisterScriptMessageHandler(handler func(json string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onScriptMessage = handler
}

// RegisterLoadChangedHandler registers a handler for load lifecycle events
func (w *WebView) RegisterLoadChangedHandler(handler func(LoadEvent)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onLoadChanged = handler
}

// RegisterTitleChangedHandler registers a handler for title changes
func (w *WebView) RegisterTitleChangedHandler(handler func(string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onTitleChanged = handler
}

// RegisterURIChangedHandler registers a handler for URI changes
func (w *WebView) RegisterURIChangedHandler(handler func(string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onURIChanged = handler
}

// RegisterCloseHandler registers a handler for close requests
func (w *WebView) RegisterCloseHandler(handler func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onClose = handler
}

// RegisterCreateHandler registers a handler for page-initiated new views.
// The handler is expected to open its own surface for the request; the view
// WebKit receives from the create signal is discarded.
func (w *WebView) RegisterCreateHandler(handler func(CreateRequest)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onCreate = handler
}

// RegisterReadyToShowHandler registers a handler for popup readiness
func (w *WebView) RegisterReadyToShowHandler(handler func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onReadyToShow = handler
}

// RunOnMainThread executes a function on the GTK main thread
func (w *WebView) RunOnMainThread(fn func()) {
	RunOnMainThread(fn)
}
