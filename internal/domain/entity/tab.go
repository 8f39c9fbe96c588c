// Package entity defines domain entities for the tabbed window.
package entity

// TabID uniquely identifies a tab. IDs are assigned by the host surface
// primitive at creation time and are never reused for another surface.
type TabID string

// Tab represents one embedded page surface plus its display metadata,
// shown in the control strip.
type Tab struct {
	ID           TabID  `json:"id"`
	URL          string `json:"url"`
	Href         string `json:"href"`
	Title        string `json:"title"`
	Favicon      string `json:"favicon"`
	IsLoading    bool   `json:"isLoading"`
	CanGoBack    bool   `json:"canGoBack"`
	CanGoForward bool   `json:"canGoForward"`
}

// NewTab creates a tab with default (empty/false) metadata.
func NewTab(id TabID) *Tab {
	return &Tab{ID: id}
}

// TabFields is a partial update for a Tab. Nil fields are left untouched,
// so successive merges never lose previously set values.
type TabFields struct {
	URL       *string
	Href      *string
	Title     *string
	Favicon   *string
	IsLoading *bool
}

// Apply merges the non-nil fields into the tab.
func (t *Tab) Apply(f TabFields) {
	if f.URL != nil {
		t.URL = *f.URL
	}
	if f.Href != nil {
		t.Href = *f.Href
	}
	if f.Title != nil {
		t.Title = *f.Title
	}
	if f.Favicon != nil {
		t.Favicon = *f.Favicon
	}
	if f.IsLoading != nil {
		t.IsLoading = *f.IsLoading
	}
}

// String helpers for building TabFields literals.
func StringField(s string) *string { return &s }

// BoolField returns a pointer suitable for TabFields booleans.
func BoolField(b bool) *bool { return &b }

// TabRegistry holds the ordered id sequence (display order) and the
// id-to-metadata mapping. During close an entry is tombstoned (nil value)
// until removal completes; the order sequence only ever contains open tabs.
type TabRegistry struct {
	order []TabID
	byID  map[TabID]*Tab
}

// NewTabRegistry creates an empty registry.
func NewTabRegistry() *TabRegistry {
	return &TabRegistry{
		order: make([]TabID, 0),
		byID:  make(map[TabID]*Tab),
	}
}

// Insert adds the tab to the registry. The id is placed immediately after
// afterID when that id is present in the order; otherwise it is appended.
func (r *TabRegistry) Insert(tab *Tab, afterID TabID) {
	r.byID[tab.ID] = tab

	if afterID != "" {
		for i, id := range r.order {
			if id == afterID {
				r.order = append(r.order[:i+1], append([]TabID{tab.ID}, r.order[i+1:]...)...)
				return
			}
		}
	}
	r.order = append(r.order, tab.ID)
}

// Find returns the tab for id, or nil if absent or tombstoned.
func (r *TabRegistry) Find(id TabID) *Tab {
	return r.byID[id]
}

// Has reports whether id is an open (non-tombstoned) tab.
func (r *TabRegistry) Has(id TabID) bool {
	return r.byID[id] != nil
}

// NeighborAfterClose returns the id that should become active when id is
// closed: the neighbor immediately after it in order, unless id is last, in
// which case the neighbor immediately before it. Empty when id is absent or
// is the only tab.
func (r *TabRegistry) NeighborAfterClose(id TabID) TabID {
	for i, cur := range r.order {
		if cur != id {
			continue
		}
		if i+1 < len(r.order) {
			return r.order[i+1]
		}
		if i > 0 {
			return r.order[i-1]
		}
		return ""
	}
	return ""
}

// BeginClose removes id from the order sequence and tombstones its metadata
// entry. Returns false if id is not an open tab.
func (r *TabRegistry) BeginClose(id TabID) bool {
	if r.byID[id] == nil {
		return false
	}
	for i, cur := range r.order {
		if cur == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.byID[id] = nil
	return true
}

// FinishClose drops the tombstoned entry once surface teardown completed.
func (r *TabRegistry) FinishClose(id TabID) {
	if tab, ok := r.byID[id]; ok && tab == nil {
		delete(r.byID, id)
	}
}

// Order returns a copy of the display order.
func (r *TabRegistry) Order() []TabID {
	out := make([]TabID, len(r.order))
	copy(out, r.order)
	return out
}

// Count returns the number of open tabs.
func (r *TabRegistry) Count() int {
	return len(r.order)
}

// RegistrySnapshot is the serialized registry pushed to the control surface
// after any tab mutation.
type RegistrySnapshot struct {
	TabsByID map[TabID]Tab `json:"tabsById"`
	Order    []TabID       `json:"order"`
}

// Snapshot copies the open tabs and the display order. Tombstoned entries
// are excluded.
func (r *TabRegistry) Snapshot() RegistrySnapshot {
	snap := RegistrySnapshot{
		TabsByID: make(map[TabID]Tab, len(r.order)),
		Order:    r.Order(),
	}
	for id, tab := range r.byID {
		if tab != nil {
			snap.TabsByID[id] = *tab
		}
	}
	return snap
}
