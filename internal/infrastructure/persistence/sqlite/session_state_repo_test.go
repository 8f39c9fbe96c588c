package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabwin/tabwin/internal/domain/entity"
	"github.com/tabwin/tabwin/internal/domain/repository"
	"github.com/tabwin/tabwin/internal/infrastructure/persistence/sqlite"
	"github.com/tabwin/tabwin/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func openTestRepo(t *testing.T) (context.Context, repository.SessionStateRepository) {
	t.Helper()
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "tabwin.db")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return ctx, sqlite.NewSessionStateRepository(db)
}

func sampleState(id entity.SessionID, savedAt time.Time) *entity.SessionState {
	return &entity.SessionState{
		Version:   entity.SessionStateVersion,
		SessionID: id,
		Tabs: []entity.TabSnapshot{
			{ID: "1", URL: "https://a.test", Title: "A", Position: 0},
			{ID: "2", URL: "https://b.test", Title: "B", Position: 1},
		},
		ActiveTabID: "2",
		SavedAt:     savedAt,
	}
}

func TestSessionStateRepository_SaveAndGet(t *testing.T) {
	ctx, repo := openTestRepo(t)

	savedAt := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	state := sampleState("20260830_100000_ab12", savedAt)
	require.NoError(t, repo.SaveSnapshot(ctx, state))

	got, err := repo.GetSnapshot(ctx, state.SessionID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, state.SessionID, got.SessionID)
	assert.Equal(t, entity.TabID("2"), got.ActiveTabID)
	require.Len(t, got.Tabs, 2)
	assert.Equal(t, "https://a.test", got.Tabs[0].URL)
	assert.Equal(t, 1, got.Tabs[1].Position)
}

func TestSessionStateRepository_SaveReplacesExisting(t *testing.T) {
	ctx, repo := openTestRepo(t)

	savedAt := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	state := sampleState("session-1", savedAt)
	require.NoError(t, repo.SaveSnapshot(ctx, state))

	state.Tabs = state.Tabs[:1]
	state.ActiveTabID = "1"
	state.SavedAt = savedAt.Add(time.Minute)
	require.NoError(t, repo.SaveSnapshot(ctx, state))

	got, err := repo.GetSnapshot(ctx, "session-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.Tabs, 1)
	assert.Equal(t, entity.TabID("1"), got.ActiveTabID)
}

func TestSessionStateRepository_GetMissingReturnsNil(t *testing.T) {
	ctx, repo := openTestRepo(t)

	got, err := repo.GetSnapshot(ctx, "never-saved")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStateRepository_SaveNilState(t *testing.T) {
	ctx, repo := openTestRepo(t)
	require.Error(t, repo.SaveSnapshot(ctx, nil))
}

func TestSessionStateRepository_ListNewestFirst(t *testing.T) {
	ctx, repo := openTestRepo(t)

	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SaveSnapshot(ctx, sampleState("older", base)))
	require.NoError(t, repo.SaveSnapshot(ctx, sampleState("newer", base.Add(time.Hour))))

	states, err := repo.ListSnapshots(ctx, 0)
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.Equal(t, entity.SessionID("newer"), states[0].SessionID)
	assert.Equal(t, entity.SessionID("older"), states[1].SessionID)

	limited, err := repo.ListSnapshots(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, entity.SessionID("newer"), limited[0].SessionID)
}

func TestSessionStateRepository_Delete(t *testing.T) {
	ctx, repo := openTestRepo(t)

	savedAt := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SaveSnapshot(ctx, sampleState("doomed", savedAt)))
	require.NoError(t, repo.DeleteSnapshot(ctx, "doomed"))

	got, err := repo.GetSnapshot(ctx, "doomed")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting again is a no-op.
	require.NoError(t, repo.DeleteSnapshot(ctx, "doomed"))
}
