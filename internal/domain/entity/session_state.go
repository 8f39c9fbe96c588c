package entity

import "time"

// SessionID identifies one run of a tabbed window.
type SessionID string

// SessionStateVersion is the current schema version for session state.
// Increment when making breaking changes to the serialization format.
const SessionStateVersion = 1

// SessionState is a snapshot of a tabbed window, serialized to JSON and
// stored in the database so a later run can restore the same tab set.
type SessionState struct {
	Version     int           `json:"version"`
	SessionID   SessionID     `json:"session_id"`
	Tabs        []TabSnapshot `json:"tabs"`
	ActiveTabID TabID         `json:"active_tab_id"`
	SavedAt     time.Time     `json:"saved_at"`
}

// TabSnapshot captures the restorable state of a single tab.
type TabSnapshot struct {
	ID       TabID  `json:"id"`
	URL      string `json:"url"`
	Title    string `json:"title"`
	Position int    `json:"position"`
}

// TabCount returns the number of tabs in the snapshot.
func (s *SessionState) TabCount() int {
	return len(s.Tabs)
}

// SnapshotFromRegistry creates a SessionState from a live registry plus the
// current active selection.
func SnapshotFromRegistry(sessionID SessionID, reg *TabRegistry, activeID TabID) *SessionState {
	state := &SessionState{
		Version:     SessionStateVersion,
		SessionID:   sessionID,
		Tabs:        []TabSnapshot{},
		ActiveTabID: activeID,
		SavedAt:     time.Now(),
	}
	if reg == nil {
		return state
	}

	for i, id := range reg.Order() {
		tab := reg.Find(id)
		if tab == nil {
			continue
		}
		state.Tabs = append(state.Tabs, TabSnapshot{
			ID:       tab.ID,
			URL:      tab.URL,
			Title:    tab.Title,
			Position: i,
		})
	}
	return state
}
