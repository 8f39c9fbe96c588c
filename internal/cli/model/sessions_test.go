package model

import (
	"context"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabwin/tabwin/internal/cli/styles"
	"github.com/tabwin/tabwin/internal/domain/entity"
)

func testState(id string, tabCount int) *entity.SessionState {
	tabs := make([]entity.TabSnapshot, 0, tabCount)
	for i := 0; i < tabCount; i++ {
		tabs = append(tabs, entity.TabSnapshot{
			ID:       entity.TabID(fmt.Sprintf("%d", i+1)),
			URL:      fmt.Sprintf("https://site-%d.test", i+1),
			Title:    fmt.Sprintf("Tab %d", i+1),
			Position: i,
		})
	}
	return &entity.SessionState{
		Version:     entity.SessionStateVersion,
		SessionID:   entity.SessionID(id),
		Tabs:        tabs,
		ActiveTabID: "1",
		SavedAt:     time.Now().Add(-time.Hour),
	}
}

func TestSessionsModelNavigationStaysInBounds(t *testing.T) {
	theme := styles.NewTheme()
	m := NewSessionsModel(context.Background(), theme, SessionsModelConfig{})
	m.sessions = []*entity.SessionState{testState("a", 1), testState("b", 2)}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = updated.(SessionsModel)
	require.Equal(t, 1, m.selectedIdx)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = updated.(SessionsModel)
	assert.Equal(t, 1, m.selectedIdx, "down at bottom stays put")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	m = updated.(SessionsModel)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	m = updated.(SessionsModel)
	assert.Equal(t, 0, m.selectedIdx, "up at top stays put")
}

func TestSessionsModelExpandToggles(t *testing.T) {
	theme := styles.NewTheme()
	m := NewSessionsModel(context.Background(), theme, SessionsModelConfig{})
	m.sessions = []*entity.SessionState{testState("a", 3)}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(SessionsModel)
	require.Equal(t, 0, m.expandedIdx)

	view := m.View()
	assert.Contains(t, view, "Tab 1")
	assert.Contains(t, view, "active")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(SessionsModel)
	assert.Equal(t, -1, m.expandedIdx)
}

func TestSessionsModelDeleteAsksForConfirmation(t *testing.T) {
	theme := styles.NewTheme()
	m := NewSessionsModel(context.Background(), theme, SessionsModelConfig{})
	m.sessions = []*entity.SessionState{testState("doomed", 1)}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m = updated.(SessionsModel)
	require.NotNil(t, m.confirm)
	assert.Contains(t, m.confirm.View(), "doomed")

	// Esc cancels without deleting.
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(SessionsModel)
	assert.Nil(t, m.confirm)
	assert.Nil(t, cmd)
}

func TestSessionsModelRestoreUsesSpawner(t *testing.T) {
	theme := styles.NewTheme()
	var spawned entity.SessionID
	m := NewSessionsModel(context.Background(), theme, SessionsModelConfig{
		Spawn: func(id entity.SessionID) error {
			spawned = id
			return nil
		},
	})
	m.sessions = []*entity.SessionState{testState("restore-me", 1)}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	require.NotNil(t, cmd)

	msg := cmd()
	restored, ok := msg.(sessionRestoredMsg)
	require.True(t, ok)
	assert.NoError(t, restored.err)
	assert.Equal(t, entity.SessionID("restore-me"), spawned)
}

func TestRelativeTime(t *testing.T) {
	assert.Equal(t, "just now", relativeTime(time.Now()))
	assert.Equal(t, "5m ago", relativeTime(time.Now().Add(-5*time.Minute)))
	assert.Equal(t, "3h ago", relativeTime(time.Now().Add(-3*time.Hour)))
	assert.Equal(t, "2d ago", relativeTime(time.Now().Add(-49*time.Hour)))
	assert.Equal(t, "1w ago", relativeTime(time.Now().Add(-8*24*time.Hour)))
}
