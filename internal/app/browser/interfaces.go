// Package browser implements the tabbed window controller. It owns the tab
// registry, the active selection, and the placement of page surfaces inside
// the host window. Host primitives (WebKit views, GTK windows) are consumed
// through the PageSurface and HostWindow ports so the controller stays free
// of toolkit types.
package browser

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_browser.go -package=mock_browser

// Disposition classifies how a page-initiated navigation target wants to be
// presented.
type Disposition int

const (
	// OpenForegroundTab opens a new tab and makes it the active selection.
	OpenForegroundTab Disposition = iota
	// OpenBackgroundTab opens a new tab without activating it.
	OpenBackgroundTab
	// OpenNewWindow requests a detached native window.
	OpenNewWindow
)

// PageEvents receives navigation callbacks from a page surface. All fields
// are optional; nil handlers are skipped.
type PageEvents struct {
	// OnURLChanged fires whenever the surface's location changes, including
	// redirects inside an ongoing load.
	OnURLChanged   func(url string)
	OnTitleChanged func(title string)
	// OnFaviconChanged reports the favicon URL for the current page.
	OnFaviconChanged func(faviconURL string)
	OnLoadStarted    func()
	// OnLoadCommitted fires when a top-frame navigation has been accepted
	// and content starts arriving.
	OnLoadCommitted func(url string)
	OnLoadFinished  func(url string)
	// OnContentReady fires once the document is usable; back/forward
	// availability is stable at this point.
	OnContentReady func()
	// OnCreate is invoked when the page requests a new surface
	// (window.open, target=_blank).
	OnCreate func(targetURL string, disposition Disposition)
	// OnClose is invoked when the page calls window.close.
	OnClose func()
	// OnScriptMessage delivers raw JSON posted by page scripts.
	OnScriptMessage func(json string)
}

// PageSurface is a single embeddable web page owned by the host toolkit.
// Implementations must make AttachNavigationHandlers idempotent: only the
// first call installs handlers, repeated calls are ignored.
type PageSurface interface {
	ID() uint64
	LoadURL(url string) error
	Reload() error
	StopLoading() error
	GoBack() error
	GoForward() error
	CanGoBack() bool
	CanGoForward() bool
	URL() string
	Title() string
	IsLoading() bool
	InjectScript(script string) error
	Focus() error
	Show() error
	Hide() error
	Destroy() error
	IsDestroyed() bool
	AttachNavigationHandlers(events PageEvents)
}

// Bounds is a pixel rectangle inside the host window's content area.
type Bounds struct {
	X      int
	Y      int
	Width  int
	Height int
}

// HostWindow is the native top-level window hosting the surfaces.
type HostWindow interface {
	ContentSize() (width, height int)
	PlaceSurface(s PageSurface, b Bounds) error
	RemoveSurface(s PageSurface) error
	SetTitle(title string)
	Show() error
	Close() error
	Minimize() error
	ToggleMaximize() error
	ToggleFullscreen() error
	RegisterCloseRequestHandler(handler func() bool)
	RegisterResizeHandler(handler func(width, height int))
}

// SurfaceFactory creates page surfaces on demand.
type SurfaceFactory interface {
	NewPageSurface() (PageSurface, error)
}
