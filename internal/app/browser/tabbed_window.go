package browser

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/tabwin/tabwin/internal/domain/entity"
	"github.com/tabwin/tabwin/internal/logging"
)

// Notifier receives controller-side tab events. The control channel
// implements it to push updates to the control-panel UI. Events are
// delivered in mutation order after the controller lock is released, so
// implementations may call back into the controller.
type Notifier interface {
	// TabOpened reports a newly opened tab together with the tab that was
	// active before it (nil when the window was empty).
	TabOpened(opened entity.Tab, previous *entity.Tab)
	// TabClosed reports that the tab with the given id has been removed.
	TabClosed(id entity.TabID)
	// ActiveTabChanged reports the new active selection. An empty id means
	// no tab is selected.
	ActiveTabChanged(id entity.TabID)
	// RegistryChanged delivers a full registry snapshot after any mutation.
	RegistryChanged(snap entity.RegistrySnapshot)
}

// Options configures a TabbedWindow.
type Options struct {
	// ControlStripHeight is the height in pixels reserved at the top of the
	// window content area for the control strip.
	ControlStripHeight int
	// BlankPage is loaded into tabs opened without a URL.
	BlankPage string
	// Notifier receives tab events. Nil disables notifications.
	Notifier Notifier
	// OpenWindow is invoked when a page requests a detached native window.
	// Nil means such requests are logged and dropped.
	OpenWindow func(url string)
}

// TabbedWindow multiplexes page surfaces into one host window. It owns the
// tab registry and the id-to-surface mapping; at most one surface is
// attached to the window at a time.
type TabbedWindow struct {
	ctx     context.Context
	window  HostWindow
	factory SurfaceFactory
	opts    Options

	reg      *entity.TabRegistry
	surfaces map[entity.TabID]PageSurface
	activeID entity.TabID
	attached map[entity.TabID]struct{}

	mu sync.RWMutex
}

// OpenTabOptions controls placement and activation of a new tab.
type OpenTabOptions struct {
	// InsertAfterID places the new tab immediately after the given id when
	// it is present; otherwise the tab is appended.
	InsertAfterID entity.TabID
	// Background opens the tab without making it the active selection.
	Background bool
}

// NewTabbedWindow creates a controller for the given host window. The window
// is supplied by the caller and not owned by the controller.
func NewTabbedWindow(ctx context.Context, window HostWindow, factory SurfaceFactory, opts Options) *TabbedWindow {
	tw := &TabbedWindow{
		ctx:      logging.WithComponent(ctx, "browser"),
		window:   window,
		factory:  factory,
		opts:     opts,
		reg:      entity.NewTabRegistry(),
		surfaces: make(map[entity.TabID]PageSurface),
		attached: make(map[entity.TabID]struct{}),
	}

	logging.FromContext(tw.ctx).Debug().
		Int("strip_height", opts.ControlStripHeight).
		Msg("tabbed window controller created")
	return tw
}

// OpenTab creates a new page surface, registers it as a tab and begins
// loading url (or the configured blank page when url is empty). Unless
// opts.Background is set the new tab becomes the active selection.
func (tw *TabbedWindow) OpenTab(url string, opts OpenTabOptions) (*entity.Tab, error) {
	notify := &notifyBatch{notifier: tw.opts.Notifier}
	defer notify.flush()

	tw.mu.Lock()
	defer tw.mu.Unlock()

	log := logging.FromContext(tw.ctx)

	surface, err := tw.factory.NewPageSurface()
	if err != nil {
		return nil, fmt.Errorf("create page surface: %w", err)
	}

	id := surfaceTabID(surface)
	tab := entity.NewTab(id)

	tw.reg.Insert(tab, opts.InsertAfterID)
	tw.surfaces[id] = surface
	tw.attachNavigationHandlersLocked(surface, id)

	if url == "" {
		url = tw.opts.BlankPage
	}
	tab.URL = url
	if url != "" {
		if err := surface.LoadURL(url); err != nil {
			log.Warn().Err(err).Str("url", url).Str("tab_id", string(id)).Msg("initial load failed")
		}
	}

	var previous *entity.Tab
	if prev := tw.reg.Find(tw.activeID); prev != nil {
		prevCopy := *prev
		previous = &prevCopy
	}

	if !opts.Background {
		tw.activateLocked(id, notify)
	}

	log.Info().
		Str("tab_id", string(id)).
		Str("url", url).
		Bool("background", opts.Background).
		Int("open_tabs", tw.reg.Count()).
		Msg("tab opened")

	notify.tabOpened(*tab, previous)
	notify.registryChanged(tw.reg.Snapshot())
	return tab, nil
}

// CloseTab removes the tab and destroys its surface. Closing an unknown id
// is a no-op. When the active tab is closed the neighbor after it in display
// order becomes active, or the neighbor before it when it was last.
func (tw *TabbedWindow) CloseTab(id entity.TabID) {
	notify := &notifyBatch{notifier: tw.opts.Notifier}
	defer notify.flush()

	tw.mu.Lock()
	defer tw.mu.Unlock()

	log := logging.FromContext(tw.ctx)

	if !tw.reg.Has(id) {
		log.Warn().Str("tab_id", string(id)).Msg("close requested for unknown tab")
		return
	}

	var next entity.TabID
	wasActive := id == tw.activeID
	if wasActive {
		next = tw.reg.NeighborAfterClose(id)
	}

	tw.reg.BeginClose(id)

	surface := tw.surfaces[id]
	delete(tw.surfaces, id)
	delete(tw.attached, id)

	if wasActive {
		if surface != nil {
			if err := tw.window.RemoveSurface(surface); err != nil {
				log.Debug().Err(err).Str("tab_id", string(id)).Msg("detach on close failed")
			}
		}
		tw.activeID = ""
		if next != "" {
			tw.activateLocked(next, notify)
		} else {
			notify.activeTabChanged("")
		}
	}

	// Destruction is unconditional: there is no before-unload interception.
	if surface != nil {
		if err := surface.Destroy(); err != nil {
			log.Warn().Err(err).Str("tab_id", string(id)).Msg("surface destroy failed")
		}
	}
	tw.reg.FinishClose(id)

	log.Info().Str("tab_id", string(id)).Int("open_tabs", tw.reg.Count()).Msg("tab closed")

	notify.tabClosed(id)
	notify.registryChanged(tw.reg.Snapshot())
}

// SwitchTo makes id the active selection. It is a no-op when id is unknown
// or already active.
func (tw *TabbedWindow) SwitchTo(id entity.TabID) {
	notify := &notifyBatch{notifier: tw.opts.Notifier}
	defer notify.flush()

	tw.mu.Lock()
	defer tw.mu.Unlock()

	log := logging.FromContext(tw.ctx)

	if !tw.reg.Has(id) {
		log.Warn().Str("tab_id", string(id)).Msg("switch requested for unknown tab")
		return
	}
	if id == tw.activeID {
		log.Debug().Str("tab_id", string(id)).Msg("tab already active")
		return
	}

	tw.activateLocked(id, notify)
}

// NextTab activates the tab after the current one in display order,
// wrapping around. No-op with fewer than two tabs.
func (tw *TabbedWindow) NextTab() {
	tw.cycle(1)
}

// PreviousTab activates the tab before the current one, wrapping around.
func (tw *TabbedWindow) PreviousTab() {
	tw.cycle(-1)
}

func (tw *TabbedWindow) cycle(step int) {
	notify := &notifyBatch{notifier: tw.opts.Notifier}
	defer notify.flush()

	tw.mu.Lock()
	defer tw.mu.Unlock()

	order := tw.reg.Order()
	if len(order) < 2 {
		return
	}
	cur := 0
	for i, id := range order {
		if id == tw.activeID {
			cur = i
			break
		}
	}
	next := (cur + step + len(order)) % len(order)
	tw.activateLocked(order[next], notify)
}

// SetTabField merges the partial fields into the tab's metadata, refreshes
// back/forward availability from the live surface and pushes a registry
// snapshot. Unknown ids are a no-op.
func (tw *TabbedWindow) SetTabField(id entity.TabID, fields entity.TabFields) {
	notify := &notifyBatch{notifier: tw.opts.Notifier}
	defer notify.flush()

	tw.mu.Lock()
	defer tw.mu.Unlock()

	tab := tw.reg.Find(id)
	if tab == nil {
		logging.FromContext(tw.ctx).Debug().Str("tab_id", string(id)).Msg("field update for unknown tab dropped")
		return
	}

	tab.Apply(fields)

	if surface := tw.surfaces[id]; surface != nil && !surface.IsDestroyed() {
		tab.CanGoBack = surface.CanGoBack()
		tab.CanGoForward = surface.CanGoForward()
	}

	notify.registryChanged(tw.reg.Snapshot())
}

// Relayout recomputes the active surface's bounds from the current window
// content size. No-op without an active selection.
func (tw *TabbedWindow) Relayout() {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	tw.relayoutLocked()
}

// ActiveID returns the current active selection, empty when none.
func (tw *TabbedWindow) ActiveID() entity.TabID {
	tw.mu.RLock()
	defer tw.mu.RUnlock()
	return tw.activeID
}

// ActiveSurface returns the surface backing the active selection, nil when
// there is no selection.
func (tw *TabbedWindow) ActiveSurface() PageSurface {
	tw.mu.RLock()
	defer tw.mu.RUnlock()
	if tw.activeID == "" {
		return nil
	}
	return tw.surfaces[tw.activeID]
}

// TabCount returns the number of open tabs.
func (tw *TabbedWindow) TabCount() int {
	tw.mu.RLock()
	defer tw.mu.RUnlock()
	return tw.reg.Count()
}

// Snapshot returns the current registry snapshot.
func (tw *TabbedWindow) Snapshot() entity.RegistrySnapshot {
	tw.mu.RLock()
	defer tw.mu.RUnlock()
	return tw.reg.Snapshot()
}

// SessionState captures the open tabs for persistence.
func (tw *TabbedWindow) SessionState(sessionID entity.SessionID) *entity.SessionState {
	tw.mu.RLock()
	defer tw.mu.RUnlock()
	return entity.SnapshotFromRegistry(sessionID, tw.reg, tw.activeID)
}

// Teardown force-destroys every remaining surface. Called on window close;
// the controller is unusable afterwards.
func (tw *TabbedWindow) Teardown() {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	log := logging.FromContext(tw.ctx)

	for id, surface := range tw.surfaces {
		if surface == nil {
			continue
		}
		if tw.activeID == id {
			if err := tw.window.RemoveSurface(surface); err != nil {
				log.Debug().Err(err).Str("tab_id", string(id)).Msg("detach on teardown failed")
			}
		}
		if err := surface.Destroy(); err != nil {
			log.Warn().Err(err).Str("tab_id", string(id)).Msg("destroy on teardown failed")
		}
	}

	count := len(tw.surfaces)
	tw.surfaces = make(map[entity.TabID]PageSurface)
	tw.attached = make(map[entity.TabID]struct{})
	tw.reg = entity.NewTabRegistry()
	tw.activeID = ""

	log.Info().Int("destroyed", count).Msg("tabbed window torn down")
}

// activateLocked detaches the previous surface, attaches the new one,
// relayouts and focuses it. Caller must hold tw.mu; the selection change is
// queued on notify for delivery after the lock is released.
func (tw *TabbedWindow) activateLocked(id entity.TabID, notify *notifyBatch) {
	log := logging.FromContext(tw.ctx)

	if old := tw.surfaces[tw.activeID]; old != nil && tw.activeID != id {
		if err := tw.window.RemoveSurface(old); err != nil {
			log.Debug().Err(err).Str("tab_id", string(tw.activeID)).Msg("detach failed")
		}
		_ = old.Hide()
	}

	tw.activeID = id
	tw.relayoutLocked()

	if surface := tw.surfaces[id]; surface != nil {
		_ = surface.Show()
		if err := surface.Focus(); err != nil {
			log.Debug().Err(err).Str("tab_id", string(id)).Msg("focus failed")
		}
	}

	log.Debug().Str("tab_id", string(id)).Msg("active selection changed")

	notify.activeTabChanged(id)
}

// relayoutLocked places the active surface below the control strip, spanning
// the remaining content area. Caller must hold tw.mu.
func (tw *TabbedWindow) relayoutLocked() {
	if tw.activeID == "" {
		return
	}
	surface := tw.surfaces[tw.activeID]
	if surface == nil {
		return
	}

	width, height := tw.window.ContentSize()
	pageHeight := height - tw.opts.ControlStripHeight
	if pageHeight < 0 {
		pageHeight = 0
	}

	b := Bounds{X: 0, Y: tw.opts.ControlStripHeight, Width: width, Height: pageHeight}
	if err := tw.window.PlaceSurface(surface, b); err != nil {
		logging.FromContext(tw.ctx).Warn().Err(err).
			Str("tab_id", string(tw.activeID)).
			Msg("surface placement failed")
	}
}

// surfaceTabID derives the stable tab id from the host-assigned surface id.
func surfaceTabID(surface PageSurface) entity.TabID {
	return entity.TabID(strconv.FormatUint(surface.ID(), 10))
}
