package messaging

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tabwin/tabwin/internal/app/browser"
	mock_browser "github.com/tabwin/tabwin/internal/app/browser/mocks"
	"github.com/tabwin/tabwin/internal/domain/entity"
)

type openCall struct {
	url  string
	opts browser.OpenTabOptions
}

type fieldCall struct {
	id     entity.TabID
	fields entity.TabFields
}

// fakeController records controller calls issued by the channel.
type fakeController struct {
	opened    []openCall
	closed    []entity.TabID
	switched  []entity.TabID
	fields    []fieldCall
	nextCalls int
	prevCalls int
	teardowns int

	activeID entity.TabID
	active   browser.PageSurface
	snap     entity.RegistrySnapshot
}

func (f *fakeController) OpenTab(url string, opts browser.OpenTabOptions) (*entity.Tab, error) {
	f.opened = append(f.opened, openCall{url: url, opts: opts})
	return entity.NewTab("1"), nil
}

func (f *fakeController) CloseTab(id entity.TabID) { f.closed = append(f.closed, id) }
func (f *fakeController) SwitchTo(id entity.TabID) { f.switched = append(f.switched, id) }
func (f *fakeController) NextTab()                 { f.nextCalls++ }
func (f *fakeController) PreviousTab()             { f.prevCalls++ }
func (f *fakeController) ActiveID() entity.TabID   { return f.activeID }
func (f *fakeController) Teardown()                { f.teardowns++ }

func (f *fakeController) SetTabField(id entity.TabID, fields entity.TabFields) {
	f.fields = append(f.fields, fieldCall{id: id, fields: fields})
}

func (f *fakeController) ActiveSurface() browser.PageSurface { return f.active }

func (f *fakeController) Snapshot() entity.RegistrySnapshot { return f.snap }

const controlSurfaceID = uint64(7)

func newTestChannel(t *testing.T) (*ControlChannel, *fakeController, *mock_browser.MockPageSurface, *mock_browser.MockHostWindow) {
	t.Helper()
	ctrl := gomock.NewController(t)
	control := mock_browser.NewMockPageSurface(ctrl)
	control.EXPECT().ID().Return(controlSurfaceID).AnyTimes()
	control.EXPECT().IsDestroyed().Return(false).AnyTimes()
	window := mock_browser.NewMockHostWindow(ctrl)

	ch := NewControlChannel(context.Background(), control, window)
	controller := &fakeController{activeID: "2"}
	ch.SetController(controller)
	return ch, controller, control, window
}

func TestDecodeCommand_Variants(t *testing.T) {
	cmd, origin, err := DecodeCommand(`{"type":"new-tab","surfaceId":7,"url":"https://x.test","after":"3","background":true}`)
	require.NoError(t, err)
	require.Equal(t, controlSurfaceID, origin)
	require.Equal(t, NewTabCommand{URL: "https://x.test", InsertAfterID: "3", Background: true}, cmd)

	cmd, _, err = DecodeCommand(`{"type":"close-tab","surfaceId":7,"tabId":"4"}`)
	require.NoError(t, err)
	require.Equal(t, CloseTabCommand{TabID: "4"}, cmd)

	cmd, _, err = DecodeCommand(`{"type":"switch-tab","surfaceId":7,"tabId":"4"}`)
	require.NoError(t, err)
	require.Equal(t, SwitchTabCommand{TabID: "4"}, cmd)

	cmd, _, err = DecodeCommand(`{"type":"action","surfaceId":7,"action":"reload"}`)
	require.NoError(t, err)
	require.Equal(t, ActionCommand{Name: ActionReload, Raw: "reload"}, cmd)

	cmd, _, err = DecodeCommand(`{"type":"control-ready","surfaceId":7}`)
	require.NoError(t, err)
	require.Equal(t, ControlReadyCommand{}, cmd)

	cmd, _, err = DecodeCommand(`{"type":"address-changed","surfaceId":7,"url":"https://typed.test"}`)
	require.NoError(t, err)
	require.Equal(t, AddressChangedCommand{URL: "https://typed.test"}, cmd)

	cmd, _, err = DecodeCommand(`{"type":"teleport","surfaceId":7}`)
	require.NoError(t, err)
	require.Equal(t, UnknownCommand{Type: "teleport"}, cmd)
}

func TestDecodeCommand_MalformedJSON(t *testing.T) {
	_, _, err := DecodeCommand(`{"type":`)
	require.Error(t, err)
}

func TestParseAction_UnknownName(t *testing.T) {
	require.Equal(t, ActionUnknown, ParseAction("explode"))
	require.Equal(t, ActionBack, ParseAction("back"))
}

func TestHandleRaw_DispatchesTabCommands(t *testing.T) {
	ch, controller, _, _ := newTestChannel(t)

	ch.HandleRaw(`{"type":"new-tab","surfaceId":7,"url":"https://x.test"}`)
	ch.HandleRaw(`{"type":"close-tab","surfaceId":7,"tabId":"3"}`)
	ch.HandleRaw(`{"type":"switch-tab","surfaceId":7,"tabId":"4"}`)

	require.Equal(t, []openCall{{url: "https://x.test"}}, controller.opened)
	require.Equal(t, []entity.TabID{"3"}, controller.closed)
	require.Equal(t, []entity.TabID{"4"}, controller.switched)
}

func TestHandleRaw_ForeignOriginDropped(t *testing.T) {
	ch, controller, _, _ := newTestChannel(t)

	// surfaceId 99 does not match this window's control surface.
	ch.HandleRaw(`{"type":"close-tab","surfaceId":99,"tabId":"3"}`)
	require.Empty(t, controller.closed)
}

func TestHandleRaw_UnknownCommandIgnored(t *testing.T) {
	ch, controller, _, _ := newTestChannel(t)

	ch.HandleRaw(`{"type":"teleport","surfaceId":7}`)
	require.Empty(t, controller.opened)
	require.Empty(t, controller.closed)
	require.Empty(t, controller.switched)
}

func TestHandleRaw_ControlReadyRunsHandlerAndPushesSnapshot(t *testing.T) {
	ch, controller, control, _ := newTestChannel(t)
	controller.snap = entity.RegistrySnapshot{Order: []entity.TabID{"1"}}

	ready := 0
	ch.SetReadyHandler(func() { ready++ })

	control.EXPECT().InjectScript(gomock.Any()).DoAndReturn(func(script string) error {
		require.Contains(t, script, `"registry-snapshot"`)
		require.Contains(t, script, `"order":["1"]`)
		return nil
	})

	ch.HandleRaw(`{"type":"control-ready","surfaceId":7}`)
	require.Equal(t, 1, ready)
}

func TestHandleRaw_AddressChangedTargetsActiveTab(t *testing.T) {
	ch, controller, _, _ := newTestChannel(t)

	ch.HandleRaw(`{"type":"address-changed","surfaceId":7,"url":"https://typed.test"}`)

	require.Len(t, controller.fields, 1)
	require.Equal(t, entity.TabID("2"), controller.fields[0].id)
	require.NotNil(t, controller.fields[0].fields.URL)
	require.Equal(t, "https://typed.test", *controller.fields[0].fields.URL)
	// Stored url only: no navigation fields are touched.
	require.Nil(t, controller.fields[0].fields.Href)
}

func TestAction_ReloadHitsActiveSurface(t *testing.T) {
	ch, controller, _, _ := newTestChannel(t)

	ctrl := gomock.NewController(t)
	active := mock_browser.NewMockPageSurface(ctrl)
	active.EXPECT().IsDestroyed().Return(false)
	active.EXPECT().Reload().Return(nil)
	controller.active = active

	ch.HandleRaw(`{"type":"action","surfaceId":7,"action":"reload"}`)
}

func TestAction_BackGuardedByAvailability(t *testing.T) {
	ch, controller, _, _ := newTestChannel(t)

	ctrl := gomock.NewController(t)
	active := mock_browser.NewMockPageSurface(ctrl)
	active.EXPECT().IsDestroyed().Return(false)
	active.EXPECT().CanGoBack().Return(false)
	// No GoBack expectation: the guard must short-circuit.
	controller.active = active

	ch.HandleRaw(`{"type":"action","surfaceId":7,"action":"back"}`)
}

func TestAction_NoActiveTabIsNoop(t *testing.T) {
	ch, controller, _, _ := newTestChannel(t)
	controller.active = nil

	ch.HandleRaw(`{"type":"action","surfaceId":7,"action":"reload"}`)
}

func TestAction_DestroyedSurfaceIsNoop(t *testing.T) {
	ch, controller, _, _ := newTestChannel(t)

	ctrl := gomock.NewController(t)
	active := mock_browser.NewMockPageSurface(ctrl)
	active.EXPECT().IsDestroyed().Return(true)
	controller.active = active

	ch.HandleRaw(`{"type":"action","surfaceId":7,"action":"stop"}`)
}

func TestAction_WindowChromeRouted(t *testing.T) {
	ch, _, _, window := newTestChannel(t)

	window.EXPECT().Minimize().Return(nil)
	window.EXPECT().ToggleMaximize().Return(nil)
	window.EXPECT().ToggleFullscreen().Return(nil)

	ch.HandleRaw(`{"type":"action","surfaceId":7,"action":"minimize"}`)
	ch.HandleRaw(`{"type":"action","surfaceId":7,"action":"maximize"}`)
	ch.HandleRaw(`{"type":"action","surfaceId":7,"action":"fullscreen"}`)
}

func TestAction_TabCycling(t *testing.T) {
	ch, controller, _, _ := newTestChannel(t)

	ch.HandleRaw(`{"type":"action","surfaceId":7,"action":"next-tab"}`)
	ch.HandleRaw(`{"type":"action","surfaceId":7,"action":"prev-tab"}`)

	require.Equal(t, 1, controller.nextCalls)
	require.Equal(t, 1, controller.prevCalls)
}

func TestAction_UnknownNameIgnored(t *testing.T) {
	ch, controller, _, _ := newTestChannel(t)
	controller.active = nil

	// Unknown names are logged and skipped without touching the surface.
	ch.HandleRaw(`{"type":"action","surfaceId":7,"action":"explode"}`)
}

func TestNotifier_PushesDispatchedEvents(t *testing.T) {
	ch, _, control, _ := newTestChannel(t)

	var scripts []string
	control.EXPECT().InjectScript(gomock.Any()).DoAndReturn(func(script string) error {
		scripts = append(scripts, script)
		return nil
	}).Times(3)

	ch.ActiveTabChanged("2")
	ch.TabClosed("3")
	ch.TabOpened(entity.Tab{ID: "4", URL: "https://x.test"}, nil)

	require.Contains(t, scripts[0], `"active-tab-changed"`)
	require.Contains(t, scripts[0], `"id":"2"`)
	require.Contains(t, scripts[1], `"tab-closed"`)
	require.Contains(t, scripts[2], `"tab-opened"`)
	require.Contains(t, scripts[2], `"url":"https://x.test"`)
	for _, s := range scripts {
		require.True(t, strings.HasPrefix(s, "window.__tabwin && window.__tabwin.dispatch("))
	}
}

func TestRegistryChanged_IncludesMergedFields(t *testing.T) {
	ch, _, control, _ := newTestChannel(t)

	var pushed string
	control.EXPECT().InjectScript(gomock.Any()).DoAndReturn(func(script string) error {
		pushed = script
		return nil
	})

	snap := entity.RegistrySnapshot{
		TabsByID: map[entity.TabID]entity.Tab{
			"1": {ID: "1", URL: "https://x.test", Title: "X", Favicon: "https://x.test/favicon.ico"},
		},
		Order: []entity.TabID{"1"},
	}
	ch.RegistryChanged(snap)

	require.Contains(t, pushed, `"title":"X"`)
	require.Contains(t, pushed, `"favicon":"https://x.test/favicon.ico"`)
	require.Contains(t, pushed, `"url":"https://x.test"`)
}

func TestTeardown_StopsHandlingAndDestroysSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	control := mock_browser.NewMockPageSurface(ctrl)
	control.EXPECT().ID().Return(controlSurfaceID).AnyTimes()
	control.EXPECT().Destroy().Return(nil).Times(1)
	window := mock_browser.NewMockHostWindow(ctrl)

	ch := NewControlChannel(context.Background(), control, window)
	controller := &fakeController{}
	ch.SetController(controller)

	ch.Teardown()
	// Second teardown is a no-op.
	ch.Teardown()
	require.Equal(t, 1, controller.teardowns)

	// Messages after teardown are dropped.
	ch.HandleRaw(`{"type":"close-tab","surfaceId":7,"tabId":"1"}`)
	require.Empty(t, controller.closed)
}

func TestAttach_RegistersScriptMessageHandlerOnce(t *testing.T) {
	ch, controller, control, _ := newTestChannel(t)

	var events browser.PageEvents
	control.EXPECT().AttachNavigationHandlers(gomock.Any()).Do(func(ev browser.PageEvents) {
		events = ev
	}).Times(1)

	ch.Attach()
	ch.Attach()

	require.NotNil(t, events.OnScriptMessage)
	events.OnScriptMessage(`{"type":"switch-tab","surfaceId":7,"tabId":"9"}`)
	require.Equal(t, []entity.TabID{"9"}, controller.switched)
}
