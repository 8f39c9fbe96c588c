package browser

import (
	"github.com/tabwin/tabwin/internal/domain/entity"
	"github.com/tabwin/tabwin/internal/logging"
)

// attachNavigationHandlersLocked wires the surface's lifecycle events to tab
// metadata updates and new-target handling. Guarded so repeated loads on the
// same surface never install duplicate handlers. Caller must hold tw.mu.
func (tw *TabbedWindow) attachNavigationHandlersLocked(surface PageSurface, id entity.TabID) {
	if _, ok := tw.attached[id]; ok {
		logging.FromContext(tw.ctx).Debug().
			Str("tab_id", string(id)).
			Msg("navigation handlers already attached")
		return
	}
	tw.attached[id] = struct{}{}

	surface.AttachNavigationHandlers(PageEvents{
		OnLoadStarted: func() {
			tw.SetTabField(id, entity.TabFields{IsLoading: entity.BoolField(true)})
		},
		OnLoadCommitted: func(url string) {
			tw.SetTabField(id, entity.TabFields{
				URL:  entity.StringField(url),
				Href: entity.StringField(url),
			})
		},
		OnURLChanged: func(url string) {
			tw.SetTabField(id, entity.TabFields{Href: entity.StringField(url)})
		},
		OnTitleChanged: func(title string) {
			tw.SetTabField(id, entity.TabFields{Title: entity.StringField(title)})
		},
		OnFaviconChanged: func(faviconURL string) {
			tw.SetTabField(id, entity.TabFields{Favicon: entity.StringField(faviconURL)})
		},
		OnLoadFinished: func(url string) {
			tw.SetTabField(id, entity.TabFields{
				Href:      entity.StringField(url),
				IsLoading: entity.BoolField(false),
			})
		},
		OnContentReady: func() {
			// Empty merge still refreshes back/forward availability.
			tw.SetTabField(id, entity.TabFields{})
		},
		OnCreate: func(targetURL string, disposition Disposition) {
			tw.handleCreateRequest(id, targetURL, disposition)
		},
		OnClose: func() {
			tw.CloseTab(id)
		},
	})
}

// handleCreateRequest routes a page-initiated new-target request based on
// its disposition.
func (tw *TabbedWindow) handleCreateRequest(sourceID entity.TabID, targetURL string, disposition Disposition) {
	log := logging.FromContext(tw.ctx)

	switch disposition {
	case OpenNewWindow:
		if tw.opts.OpenWindow == nil {
			log.Warn().Str("url", targetURL).Msg("new-window request dropped: no window delegate")
			return
		}
		tw.opts.OpenWindow(targetURL)
	case OpenForegroundTab:
		if _, err := tw.OpenTab(targetURL, OpenTabOptions{InsertAfterID: sourceID}); err != nil {
			log.Warn().Err(err).Str("url", targetURL).Msg("foreground tab open failed")
		}
	case OpenBackgroundTab:
		if _, err := tw.OpenTab(targetURL, OpenTabOptions{InsertAfterID: sourceID, Background: true}); err != nil {
			log.Warn().Err(err).Str("url", targetURL).Msg("background tab open failed")
		}
	default:
		log.Warn().Int("disposition", int(disposition)).Msg("unknown disposition dropped")
	}
}
