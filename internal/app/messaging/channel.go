package messaging

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/tabwin/tabwin/internal/app/browser"
	"github.com/tabwin/tabwin/internal/domain/entity"
	"github.com/tabwin/tabwin/internal/logging"
	"github.com/tabwin/tabwin/pkg/clipboard"
)

// TabController is the controller surface the channel drives. Implemented
// by browser.TabbedWindow.
type TabController interface {
	OpenTab(url string, opts browser.OpenTabOptions) (*entity.Tab, error)
	CloseTab(id entity.TabID)
	SwitchTo(id entity.TabID)
	SetTabField(id entity.TabID, fields entity.TabFields)
	NextTab()
	PreviousTab()
	ActiveID() entity.TabID
	ActiveSurface() browser.PageSurface
	Snapshot() entity.RegistrySnapshot
	Teardown()
}

// ControlChannel is the sole integration point between one tabbed window's
// controller and its control-panel UI surface. Each window owns its own
// channel; inbound messages are checked against the window's own control
// surface so multiple windows never cross-talk.
type ControlChannel struct {
	ctx     context.Context
	control browser.PageSurface
	window  browser.HostWindow

	controller TabController
	onReady    func()

	mu       sync.Mutex
	attached bool
	closed   bool
}

// NewControlChannel creates a channel bound to the given control surface
// and host window. The controller is injected afterwards with SetController
// because controller and channel reference each other.
func NewControlChannel(ctx context.Context, control browser.PageSurface, window browser.HostWindow) *ControlChannel {
	return &ControlChannel{
		ctx:     logging.WithComponent(ctx, "messaging"),
		control: control,
		window:  window,
	}
}

// SetController injects the tab controller.
func (ch *ControlChannel) SetController(c TabController) {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.controller = c
}

// SetReadyHandler registers the callback run when the control UI reports
// ready. The host shell uses it to reveal the window and open initial tabs.
func (ch *ControlChannel) SetReadyHandler(fn func()) {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.onReady = fn
}

// Attach wires the channel to the control surface's script message stream.
// Listener registration is paired with window creation; Teardown releases it.
func (ch *ControlChannel) Attach() {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	if ch.attached || ch.closed {
		return
	}
	ch.attached = true

	ch.control.AttachNavigationHandlers(browser.PageEvents{
		OnScriptMessage: ch.HandleRaw,
	})
}

// HandleRaw processes one raw JSON message from the control surface.
func (ch *ControlChannel) HandleRaw(raw string) {
	log := logging.FromContext(ch.ctx)

	ch.mu.Lock()
	closed := ch.closed
	controller := ch.controller
	ch.mu.Unlock()

	if closed {
		return
	}
	if controller == nil {
		log.Warn().Msg("control message dropped: no controller bound")
		return
	}

	cmd, origin, err := DecodeCommand(raw)
	if err != nil {
		log.Warn().Err(err).Msg("malformed control message dropped")
		return
	}

	// Per-window scoping: only messages originating from this window's own
	// control surface are acted on.
	if origin != ch.control.ID() {
		log.Warn().
			Uint64("origin", origin).
			Uint64("want", ch.control.ID()).
			Msg("control message from foreign surface dropped")
		return
	}

	ch.dispatch(controller, cmd)
}

// dispatch routes a decoded command. The switch is exhaustive over the
// closed command set; UnknownCommand is the checked default.
func (ch *ControlChannel) dispatch(controller TabController, cmd Command) {
	log := logging.FromContext(ch.ctx)

	switch c := cmd.(type) {
	case NewTabCommand:
		if _, err := controller.OpenTab(c.URL, browser.OpenTabOptions{
			InsertAfterID: c.InsertAfterID,
			Background:    c.Background,
		}); err != nil {
			log.Warn().Err(err).Str("url", c.URL).Msg("new-tab command failed")
		}
	case CloseTabCommand:
		controller.CloseTab(c.TabID)
	case SwitchTabCommand:
		controller.SwitchTo(c.TabID)
	case ActionCommand:
		ch.runAction(controller, c)
	case ControlReadyCommand:
		log.Info().Msg("control surface ready")
		ch.mu.Lock()
		ready := ch.onReady
		ch.mu.Unlock()
		if ready != nil {
			ready()
		}
		ch.RegistryChanged(controller.Snapshot())
	case AddressChangedCommand:
		id := c.TabID
		if id == "" {
			id = controller.ActiveID()
		}
		// Stored url only; no navigation happens until the user commits.
		controller.SetTabField(id, entity.TabFields{URL: entity.StringField(c.URL)})
	case UnknownCommand:
		log.Warn().Str("type", c.Type).Msg("unknown control command ignored")
	default:
		log.Warn().Msg("unhandled control command variant")
	}
}

// runAction executes a named action against the active surface or window.
func (ch *ControlChannel) runAction(controller TabController, cmd ActionCommand) {
	log := logging.FromContext(ch.ctx)

	switch cmd.Name {
	case ActionReload:
		ch.withActiveSurface(controller, func(s browser.PageSurface) error { return s.Reload() })
	case ActionStop:
		ch.withActiveSurface(controller, func(s browser.PageSurface) error { return s.StopLoading() })
	case ActionBack:
		ch.withActiveSurface(controller, func(s browser.PageSurface) error {
			if !s.CanGoBack() {
				return nil
			}
			return s.GoBack()
		})
	case ActionForward:
		ch.withActiveSurface(controller, func(s browser.PageSurface) error {
			if !s.CanGoForward() {
				return nil
			}
			return s.GoForward()
		})
	case ActionNextTab:
		controller.NextTab()
	case ActionPreviousTab:
		controller.PreviousTab()
	case ActionCopyURL:
		ch.withActiveSurface(controller, func(s browser.PageSurface) error {
			return clipboard.Copy(s.URL())
		})
	case ActionMinimize:
		if err := ch.window.Minimize(); err != nil {
			log.Warn().Err(err).Msg("minimize failed")
		}
	case ActionToggleMaximize:
		if err := ch.window.ToggleMaximize(); err != nil {
			log.Warn().Err(err).Msg("maximize toggle failed")
		}
	case ActionToggleFullscreen:
		if err := ch.window.ToggleFullscreen(); err != nil {
			log.Warn().Err(err).Msg("fullscreen toggle failed")
		}
	case ActionCloseWindow:
		if err := ch.window.Close(); err != nil {
			log.Warn().Err(err).Msg("window close failed")
		}
	case ActionUnknown:
		log.Warn().Str("action", cmd.Raw).Msg("unknown action ignored")
	}
}

// withActiveSurface runs fn against the active surface with the defensive
// guards the error taxonomy requires: no selection and already-destroyed
// surfaces degrade to logged no-ops.
func (ch *ControlChannel) withActiveSurface(controller TabController, fn func(browser.PageSurface) error) {
	log := logging.FromContext(ch.ctx)

	surface := controller.ActiveSurface()
	if surface == nil {
		log.Warn().Msg("action dropped: no active tab")
		return
	}
	if surface.IsDestroyed() {
		log.Debug().Msg("action dropped: active surface destroyed")
		return
	}
	if err := fn(surface); err != nil {
		log.Warn().Err(err).Msg("surface action failed")
	}
}

// Outbound notifications. ControlChannel implements browser.Notifier.

// TabOpened pushes a tab-opened event with the new tab and the previously
// active one.
func (ch *ControlChannel) TabOpened(opened entity.Tab, previous *entity.Tab) {
	ch.push(map[string]any{
		"type":     "tab-opened",
		"tab":      opened,
		"previous": previous,
	})
}

// TabClosed pushes a tab-closed event.
func (ch *ControlChannel) TabClosed(id entity.TabID) {
	ch.push(map[string]any{"type": "tab-closed", "id": id})
}

// ActiveTabChanged pushes the new active selection; empty id means none.
func (ch *ControlChannel) ActiveTabChanged(id entity.TabID) {
	ch.push(map[string]any{"type": "active-tab-changed", "id": id})
}

// RegistryChanged pushes the full registry snapshot.
func (ch *ControlChannel) RegistryChanged(snap entity.RegistrySnapshot) {
	ch.push(map[string]any{
		"type":     "registry-snapshot",
		"tabsById": snap.TabsByID,
		"order":    snap.Order,
	})
}

// push delivers an event into the control surface's dispatcher.
func (ch *ControlChannel) push(payload any) {
	log := logging.FromContext(ch.ctx)

	ch.mu.Lock()
	closed := ch.closed
	ch.mu.Unlock()
	if closed || ch.control.IsDestroyed() {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		log.Warn().Err(err).Msg("event marshal failed")
		return
	}

	script := "window.__tabwin && window.__tabwin.dispatch(" + string(data) + ");"
	if err := ch.control.InjectScript(script); err != nil {
		log.Warn().Err(err).Msg("event push failed")
	}
}

// Teardown stops message handling, destroys every remaining page surface
// through the controller and releases the control surface. Safe to call
// more than once.
func (ch *ControlChannel) Teardown() {
	ch.mu.Lock()
	if ch.closed {
		ch.mu.Unlock()
		return
	}
	ch.closed = true
	controller := ch.controller
	ch.mu.Unlock()

	log := logging.FromContext(ch.ctx)

	if controller != nil {
		controller.Teardown()
	}
	if err := ch.control.Destroy(); err != nil {
		log.Warn().Err(err).Msg("control surface destroy failed")
	}

	log.Info().Msg("control channel torn down")
}
