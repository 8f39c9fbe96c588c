package browser

import (
	"errors"

	"github.com/tabwin/tabwin/internal/domain/entity"
)

// fakeSurface is an in-memory PageSurface for controller tests.
type fakeSurface struct {
	id        uint64
	url       string
	title     string
	loading   bool
	destroyed bool
	canBack   bool
	canFwd    bool

	events      PageEvents
	attachCalls int
	loadedURLs  []string
	focusCalls  int
	showCalls   int
	hideCalls   int
}

func (s *fakeSurface) ID() uint64 { return s.id }

func (s *fakeSurface) LoadURL(url string) error {
	if s.destroyed {
		return errors.New("surface destroyed")
	}
	s.url = url
	s.loadedURLs = append(s.loadedURLs, url)
	return nil
}

func (s *fakeSurface) Reload() error      { return nil }
func (s *fakeSurface) StopLoading() error { s.loading = false; return nil }
func (s *fakeSurface) GoBack() error      { return nil }
func (s *fakeSurface) GoForward() error   { return nil }
func (s *fakeSurface) CanGoBack() bool    { return s.canBack }
func (s *fakeSurface) CanGoForward() bool { return s.canFwd }
func (s *fakeSurface) URL() string        { return s.url }
func (s *fakeSurface) Title() string      { return s.title }
func (s *fakeSurface) IsLoading() bool    { return s.loading }

func (s *fakeSurface) InjectScript(string) error { return nil }
func (s *fakeSurface) Focus() error              { s.focusCalls++; return nil }
func (s *fakeSurface) Show() error               { s.showCalls++; return nil }
func (s *fakeSurface) Hide() error               { s.hideCalls++; return nil }

func (s *fakeSurface) Destroy() error {
	s.destroyed = true
	return nil
}

func (s *fakeSurface) IsDestroyed() bool { return s.destroyed }

func (s *fakeSurface) AttachNavigationHandlers(events PageEvents) {
	s.attachCalls++
	s.events = events
}

// fireTitle simulates a title-update event from the host primitive.
func (s *fakeSurface) fireTitle(title string) {
	s.title = title
	if s.events.OnTitleChanged != nil {
		s.events.OnTitleChanged(title)
	}
}

func (s *fakeSurface) fireLoadStarted() {
	s.loading = true
	if s.events.OnLoadStarted != nil {
		s.events.OnLoadStarted()
	}
}

func (s *fakeSurface) fireLoadFinished(url string) {
	s.loading = false
	s.url = url
	if s.events.OnLoadFinished != nil {
		s.events.OnLoadFinished(url)
	}
}

func (s *fakeSurface) fireCreate(url string, d Disposition) {
	if s.events.OnCreate != nil {
		s.events.OnCreate(url, d)
	}
}

// fakeWindow is an in-memory HostWindow.
type fakeWindow struct {
	width  int
	height int

	placed      map[uint64]Bounds
	placeCalls  int
	removeCalls int
}

func newFakeWindow(width, height int) *fakeWindow {
	return &fakeWindow{width: width, height: height, placed: make(map[uint64]Bounds)}
}

func (w *fakeWindow) ContentSize() (int, int) { return w.width, w.height }

func (w *fakeWindow) PlaceSurface(s PageSurface, b Bounds) error {
	w.placeCalls++
	w.placed[s.ID()] = b
	return nil
}

func (w *fakeWindow) RemoveSurface(s PageSurface) error {
	w.removeCalls++
	delete(w.placed, s.ID())
	return nil
}

func (w *fakeWindow) SetTitle(string)                         {}
func (w *fakeWindow) Show() error                             { return nil }
func (w *fakeWindow) Close() error                            { return nil }
func (w *fakeWindow) Minimize() error                         { return nil }
func (w *fakeWindow) ToggleMaximize() error                   { return nil }
func (w *fakeWindow) ToggleFullscreen() error                 { return nil }
func (w *fakeWindow) RegisterCloseRequestHandler(func() bool) {}
func (w *fakeWindow) RegisterResizeHandler(func(int, int))    {}

// fakeFactory hands out fakeSurfaces with increasing ids starting at 1.
type fakeFactory struct {
	nextID  uint64
	created []*fakeSurface
	err     error
}

func (f *fakeFactory) NewPageSurface() (PageSurface, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	s := &fakeSurface{id: f.nextID}
	f.created = append(f.created, s)
	return s, nil
}

// recordingNotifier captures controller notifications.
type recordingNotifier struct {
	opened        []entity.Tab
	openedPrev    []*entity.Tab
	closed        []entity.TabID
	activeChanges []entity.TabID
	snapshots     []entity.RegistrySnapshot
}

func (n *recordingNotifier) TabOpened(opened entity.Tab, previous *entity.Tab) {
	n.opened = append(n.opened, opened)
	n.openedPrev = append(n.openedPrev, previous)
}

func (n *recordingNotifier) TabClosed(id entity.TabID) {
	n.closed = append(n.closed, id)
}

func (n *recordingNotifier) ActiveTabChanged(id entity.TabID) {
	n.activeChanges = append(n.activeChanges, id)
}

func (n *recordingNotifier) RegistryChanged(snap entity.RegistrySnapshot) {
	n.snapshots = append(n.snapshots, snap)
}

func (n *recordingNotifier) lastSnapshot() entity.RegistrySnapshot {
	if len(n.snapshots) == 0 {
		return entity.RegistrySnapshot{}
	}
	return n.snapshots[len(n.snapshots)-1]
}
