package shell

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabwin/tabwin/internal/app/browser"
	"github.com/tabwin/tabwin/internal/config"
	"github.com/tabwin/tabwin/internal/domain/entity"
	"github.com/tabwin/tabwin/pkg/webview"
)

func TestDefaultFaviconURL(t *testing.T) {
	assert.Equal(t, "https://x.test/favicon.ico", defaultFaviconURL("https://x.test/some/page?q=1"))
	assert.Equal(t, "http://x.test:8080/favicon.ico", defaultFaviconURL("http://x.test:8080/"))
	assert.Empty(t, defaultFaviconURL("about:blank"))
	assert.Empty(t, defaultFaviconURL("tabwin://controls"))
	assert.Empty(t, defaultFaviconURL("::not a url::"))
}

func TestMapDisposition(t *testing.T) {
	assert.Equal(t, browser.OpenForegroundTab, mapDisposition(webview.DispositionForegroundTab))
	assert.Equal(t, browser.OpenBackgroundTab, mapDisposition(webview.DispositionBackgroundTab))
	assert.Equal(t, browser.OpenNewWindow, mapDisposition(webview.DispositionNewWindow))
}

func TestStateFromSnapshot_PreservesOrderAndActive(t *testing.T) {
	snap := entity.RegistrySnapshot{
		TabsByID: map[entity.TabID]entity.Tab{
			"1": {ID: "1", URL: "https://a.test", Title: "A"},
			"2": {ID: "2", URL: "https://b.test", Title: "B"},
		},
		Order: []entity.TabID{"2", "1"},
	}

	state := stateFromSnapshot("run-9", snap, "1")
	require.Equal(t, entity.SessionID("run-9"), state.SessionID)
	require.Equal(t, entity.TabID("1"), state.ActiveTabID)
	require.Len(t, state.Tabs, 2)
	require.Equal(t, entity.TabID("2"), state.Tabs[0].ID)
	require.Equal(t, 0, state.Tabs[0].Position)
	require.Equal(t, entity.TabID("1"), state.Tabs[1].ID)
	require.Equal(t, 1, state.Tabs[1].Position)
}

func TestSessionSaver_DisabledWithoutRepo(t *testing.T) {
	s := newSessionSaver(context.Background(), nil, nil, "run-1", config.SessionConfig{SnapshotTabs: true})
	require.False(t, s.enabled)

	// Must be safe to call with persistence disabled.
	s.RegistryChanged(entity.RegistrySnapshot{Order: []entity.TabID{"1"}})
	s.saveFinal(nil)
}

// memorySessionRepo records saved snapshots.
type memorySessionRepo struct {
	mu    sync.Mutex
	saved []*entity.SessionState
}

func (r *memorySessionRepo) SaveSnapshot(_ context.Context, state *entity.SessionState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, state)
	return nil
}

func (r *memorySessionRepo) GetSnapshot(context.Context, entity.SessionID) (*entity.SessionState, error) {
	return nil, nil
}

func (r *memorySessionRepo) ListSnapshots(context.Context, int) ([]*entity.SessionState, error) {
	return nil, nil
}

func (r *memorySessionRepo) DeleteSnapshot(context.Context, entity.SessionID) error {
	return nil
}

func (r *memorySessionRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.saved)
}

func TestSessionSaver_DebouncesRegistryPushes(t *testing.T) {
	repo := &memorySessionRepo{}
	s := newSessionSaver(context.Background(), repo, nil, "run-1",
		config.SessionConfig{SnapshotTabs: true, SnapshotIntervalMs: 60000})

	s.ActiveTabChanged("2")
	s.RegistryChanged(entity.RegistrySnapshot{
		TabsByID: map[entity.TabID]entity.Tab{"1": {ID: "1"}},
		Order:    []entity.TabID{"1"},
	})
	s.RegistryChanged(entity.RegistrySnapshot{
		TabsByID: map[entity.TabID]entity.Tab{"1": {ID: "1"}, "2": {ID: "2"}},
		Order:    []entity.TabID{"1", "2"},
	})

	// Pushes only stage the snapshot; nothing is written synchronously.
	require.Zero(t, repo.count())

	s.flush()
	require.Equal(t, 1, repo.count())
	require.Equal(t, []entity.TabID{"1", "2"}, []entity.TabID{repo.saved[0].Tabs[0].ID, repo.saved[0].Tabs[1].ID})
	require.Equal(t, entity.TabID("2"), repo.saved[0].ActiveTabID)

	// Nothing staged, nothing written.
	s.flush()
	require.Equal(t, 1, repo.count())
}

func TestSessionSaver_TimerWritesStagedSnapshot(t *testing.T) {
	repo := &memorySessionRepo{}
	s := newSessionSaver(context.Background(), repo, nil, "run-1",
		config.SessionConfig{SnapshotTabs: true, SnapshotIntervalMs: 10})

	s.RegistryChanged(entity.RegistrySnapshot{
		TabsByID: map[entity.TabID]entity.Tab{"1": {ID: "1"}},
		Order:    []entity.TabID{"1"},
	})

	require.Eventually(t, func() bool { return repo.count() == 1 },
		time.Second, 5*time.Millisecond)
}

func TestSessionSaver_FinalSaveFlushesStagedState(t *testing.T) {
	repo := &memorySessionRepo{}
	s := newSessionSaver(context.Background(), repo, nil, "run-1",
		config.SessionConfig{SnapshotTabs: true, SnapshotIntervalMs: 60000})

	s.RegistryChanged(entity.RegistrySnapshot{
		TabsByID: map[entity.TabID]entity.Tab{"1": {ID: "1", URL: "https://a.test"}},
		Order:    []entity.TabID{"1"},
	})

	s.saveFinal(nil)
	require.Equal(t, 1, repo.count())
	require.Equal(t, "https://a.test", repo.saved[0].Tabs[0].URL)

	// The debounce was canceled with the staged state consumed.
	s.saveFinal(nil)
	require.Equal(t, 1, repo.count())
}
