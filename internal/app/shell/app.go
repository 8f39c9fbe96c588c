package shell

import (
	"context"
	"fmt"

	"github.com/tabwin/tabwin/internal/app/browser"
	"github.com/tabwin/tabwin/internal/app/messaging"
	"github.com/tabwin/tabwin/internal/config"
	"github.com/tabwin/tabwin/internal/domain/entity"
	"github.com/tabwin/tabwin/internal/domain/repository"
	"github.com/tabwin/tabwin/internal/logging"
	"github.com/tabwin/tabwin/pkg/webview"
)

// App is one native tabbed window with its controller, control channel and
// session bookkeeping. Multiple Apps can coexist in one process.
type App struct {
	ctx    context.Context
	cfgMgr *config.Manager
	cfg    *config.Config

	window  *WindowAdapter
	control *Surface
	factory *PageSurfaceFactory
	tabs    *browser.TabbedWindow
	channel *messaging.ControlChannel
	saver   *sessionSaver

	restore *entity.SessionState
}

// Options configures a shell App.
type Options struct {
	// InitialURL overrides the configured start page for the first tab.
	InitialURL string
	// Restore is a session snapshot to reopen instead of the start page.
	Restore *entity.SessionState
	// SessionID identifies this run for snapshot persistence.
	SessionID entity.SessionID
	// DataDir is the WebKit data directory for cookies and local storage.
	DataDir string
}

// New builds the window, control surface, controller and channel. The
// window stays hidden until the control surface reports ready.
func New(ctx context.Context, cfgMgr *config.Manager, sessions repository.SessionStateRepository, opts Options) (*App, error) {
	ctx = logging.WithComponent(ctx, "shell")
	cfg := cfgMgr.Get()

	win, err := webview.NewWindow(webview.WindowOptions{
		Title:           "tabwin",
		Width:           cfg.Window.DefaultWidth,
		Height:          cfg.Window.DefaultHeight,
		MinWidth:        cfg.Window.MinWidth,
		MinHeight:       cfg.Window.MinHeight,
		BackgroundColor: cfg.Window.BackgroundColor,
		Decorated:       cfg.Window.TitleBarStyle == "native",
	})
	if err != nil {
		return nil, fmt.Errorf("shell: create window: %w", err)
	}

	app := &App{
		ctx:     ctx,
		cfgMgr:  cfgMgr,
		cfg:     cfg,
		window:  NewWindowAdapter(win),
		factory: NewPageSurfaceFactory(cfg, opts.DataDir),
		restore: opts.Restore,
	}
	if opts.InitialURL != "" {
		app.cfg.Pages.StartPage = opts.InitialURL
	}

	control, err := app.factory.NewControlSurface()
	if err != nil {
		_ = win.Close()
		return nil, err
	}
	app.control = control

	app.channel = messaging.NewControlChannel(ctx, control, app.window)

	app.saver = newSessionSaver(ctx, sessions, cfgMgr, opts.SessionID, cfg.Session)

	app.tabs = browser.NewTabbedWindow(ctx, app.window, app.factory, browser.Options{
		ControlStripHeight: cfg.Window.ControlStripHeight,
		BlankPage:          cfg.Pages.BlankPage,
		Notifier:           fanNotifier{app.channel, app.saver},
		OpenWindow:         app.openDetachedWindow,
	})

	app.channel.SetController(app.tabs)
	app.channel.SetReadyHandler(app.onControlReady)
	app.channel.Attach()

	app.wireWindowEvents()

	if err := control.LoadURL(cfg.Pages.ControlPage); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("control page load failed")
	}
	app.placeControlStrip()

	return app, nil
}

// Run enters the GTK main loop and blocks until the window closes.
func (a *App) Run() {
	webview.RunMainLoop()
}

// TabbedWindow exposes the controller, mainly for tests and restore flows.
func (a *App) TabbedWindow() *browser.TabbedWindow { return a.tabs }

// Quit saves the final snapshot and stops the main loop. Safe to call from
// a signal handler goroutine.
func (a *App) Quit() {
	a.shutdown()
}

func (a *App) wireWindowEvents() {
	a.window.RegisterResizeHandler(func(int, int) {
		a.placeControlStrip()
		a.tabs.Relayout()
	})

	a.window.Window().RegisterFullscreenHandler(func(bool) {
		a.placeControlStrip()
		a.tabs.Relayout()
	})

	a.window.RegisterCloseRequestHandler(func() bool {
		a.shutdown()
		return false // allow the close to proceed
	})
}

// placeControlStrip pins the control surface to the top edge, full width.
func (a *App) placeControlStrip() {
	width, _ := a.window.ContentSize()
	b := browser.Bounds{X: 0, Y: 0, Width: width, Height: a.cfg.Window.ControlStripHeight}
	if err := a.window.PlaceSurface(a.control, b); err != nil {
		logging.FromContext(a.ctx).Warn().Err(err).Msg("control strip placement failed")
	}
}

// onControlReady reveals the window and opens the initial tab set. Runs
// when the control page reports it is mounted.
func (a *App) onControlReady() {
	log := logging.FromContext(a.ctx)

	if err := a.window.Show(); err != nil {
		log.Warn().Err(err).Msg("window show failed")
	}

	if a.restore != nil && len(a.restore.Tabs) > 0 {
		a.restoreTabs(a.restore)
		return
	}

	if _, err := a.tabs.OpenTab(a.cfg.Pages.StartPage, browser.OpenTabOptions{}); err != nil {
		log.Warn().Err(err).Msg("initial tab open failed")
	}
}

// restoreTabs reopens a saved session's tabs in their stored order.
func (a *App) restoreTabs(state *entity.SessionState) {
	log := logging.FromContext(a.ctx)

	idsByOld := make(map[entity.TabID]entity.TabID, len(state.Tabs))
	for _, snap := range state.Tabs {
		tab, err := a.tabs.OpenTab(snap.URL, browser.OpenTabOptions{Background: true})
		if err != nil {
			log.Warn().Err(err).Str("url", snap.URL).Msg("tab restore failed")
			continue
		}
		idsByOld[snap.ID] = tab.ID
	}

	if newID, ok := idsByOld[state.ActiveTabID]; ok {
		a.tabs.SwitchTo(newID)
	} else if order := a.tabs.Snapshot().Order; len(order) > 0 {
		a.tabs.SwitchTo(order[0])
	}

	log.Info().Int("tabs", len(idsByOld)).Str("session_id", string(state.SessionID)).Msg("session restored")
}

// openDetachedWindow hosts a new-window disposition: a plain undecorated
// popup window with a single surface and no control strip.
func (a *App) openDetachedWindow(url string) {
	log := logging.FromContext(a.ctx)

	win, err := webview.NewWindow(webview.WindowOptions{
		Title:           "tabwin",
		Width:           a.cfg.Window.DefaultWidth / 2,
		Height:          a.cfg.Window.DefaultHeight / 2,
		BackgroundColor: a.cfg.Window.BackgroundColor,
		Decorated:       true,
	})
	if err != nil {
		log.Warn().Err(err).Msg("popup window create failed")
		return
	}

	surface, err := a.factory.NewPageSurface()
	if err != nil {
		log.Warn().Err(err).Msg("popup surface create failed")
		_ = win.Close()
		return
	}

	adapter := NewWindowAdapter(win)
	width, height := adapter.ContentSize()
	if err := adapter.PlaceSurface(surface, browser.Bounds{Width: width, Height: height}); err != nil {
		log.Warn().Err(err).Msg("popup surface placement failed")
	}
	if err := surface.LoadURL(url); err != nil {
		log.Warn().Err(err).Str("url", url).Msg("popup load failed")
	}

	win.RegisterCloseRequestHandler(func() bool {
		_ = surface.Destroy()
		return false
	})

	if err := adapter.Show(); err != nil {
		log.Warn().Err(err).Msg("popup show failed")
	}
}

// shutdown saves the final snapshot, tears the channel down (destroying all
// surfaces) and quits the main loop.
func (a *App) shutdown() {
	log := logging.FromContext(a.ctx)
	log.Info().Msg("window closing")

	a.saver.saveFinal(a.tabs)
	a.channel.Teardown()
	webview.QuitMainLoop()
}

// fanNotifier fans controller notifications out to several receivers.
type fanNotifier []browser.Notifier

func (f fanNotifier) TabOpened(opened entity.Tab, previous *entity.Tab) {
	for _, n := range f {
		n.TabOpened(opened, previous)
	}
}

func (f fanNotifier) TabClosed(id entity.TabID) {
	for _, n := range f {
		n.TabClosed(id)
	}
}

func (f fanNotifier) ActiveTabChanged(id entity.TabID) {
	for _, n := range f {
		n.ActiveTabChanged(id)
	}
}

func (f fanNotifier) RegistryChanged(snap entity.RegistrySnapshot) {
	for _, n := range f {
		n.RegistryChanged(snap)
	}
}
