package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTabRegistry_InsertAppendsByDefault(t *testing.T) {
	r := NewTabRegistry()
	r.Insert(NewTab("1"), "")
	r.Insert(NewTab("2"), "")

	require.Equal(t, []TabID{"1", "2"}, r.Order())
	require.Equal(t, 2, r.Count())
}

func TestTabRegistry_InsertAfterExistingID(t *testing.T) {
	r := NewTabRegistry()
	r.Insert(NewTab("1"), "")
	r.Insert(NewTab("2"), "")
	r.Insert(NewTab("3"), "1")

	require.Equal(t, []TabID{"1", "3", "2"}, r.Order())
}

func TestTabRegistry_InsertAfterMissingIDAppends(t *testing.T) {
	r := NewTabRegistry()
	r.Insert(NewTab("1"), "")
	r.Insert(NewTab("2"), "missing")

	require.Equal(t, []TabID{"1", "2"}, r.Order())
}

func TestTabRegistry_OrderContainsExactlyOpenTabs(t *testing.T) {
	r := NewTabRegistry()
	r.Insert(NewTab("1"), "")
	r.Insert(NewTab("2"), "")
	r.Insert(NewTab("3"), "")

	require.True(t, r.BeginClose("2"))
	// Tombstoned: out of order, still mapped until FinishClose.
	require.Equal(t, []TabID{"1", "3"}, r.Order())
	require.False(t, r.Has("2"))
	require.Nil(t, r.Find("2"))

	r.FinishClose("2")
	for _, id := range r.Order() {
		require.NotNil(t, r.Find(id))
	}

	seen := map[TabID]struct{}{}
	for _, id := range r.Order() {
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s in order", id)
		seen[id] = struct{}{}
	}
}

func TestTabRegistry_BeginCloseAbsentIsNoop(t *testing.T) {
	r := NewTabRegistry()
	r.Insert(NewTab("1"), "")

	require.False(t, r.BeginClose("nope"))
	require.Equal(t, []TabID{"1"}, r.Order())

	// Double close is also a no-op.
	require.True(t, r.BeginClose("1"))
	require.False(t, r.BeginClose("1"))
}

func TestTabRegistry_NeighborAfterClose(t *testing.T) {
	r := NewTabRegistry()
	r.Insert(NewTab("1"), "")
	r.Insert(NewTab("2"), "")
	r.Insert(NewTab("3"), "")

	// Middle tab: neighbor after wins.
	require.Equal(t, TabID("3"), r.NeighborAfterClose("2"))
	// Last tab: neighbor before.
	require.Equal(t, TabID("2"), r.NeighborAfterClose("3"))
	// First tab: neighbor after.
	require.Equal(t, TabID("2"), r.NeighborAfterClose("1"))

	require.True(t, r.BeginClose("2"))
	require.True(t, r.BeginClose("3"))
	// Only tab left: nothing to activate.
	require.Equal(t, TabID(""), r.NeighborAfterClose("1"))
	require.Equal(t, TabID(""), r.NeighborAfterClose("missing"))
}

func TestTab_ApplyMergesWithoutFieldLoss(t *testing.T) {
	tab := NewTab("1")
	tab.Apply(TabFields{URL: StringField("https://x.test"), IsLoading: BoolField(true)})
	tab.Apply(TabFields{Title: StringField("X")})

	require.Equal(t, "https://x.test", tab.URL)
	require.Equal(t, "X", tab.Title)
	require.True(t, tab.IsLoading)

	tab.Apply(TabFields{IsLoading: BoolField(false), Favicon: StringField("https://x.test/favicon.ico")})
	require.Equal(t, "https://x.test", tab.URL)
	require.Equal(t, "X", tab.Title)
	require.False(t, tab.IsLoading)
	require.Equal(t, "https://x.test/favicon.ico", tab.Favicon)
}

func TestTabRegistry_SnapshotExcludesTombstones(t *testing.T) {
	r := NewTabRegistry()
	r.Insert(NewTab("1"), "")
	r.Insert(NewTab("2"), "")
	r.Find("1").Apply(TabFields{Title: StringField("one")})

	require.True(t, r.BeginClose("2"))
	snap := r.Snapshot()

	require.Equal(t, []TabID{"1"}, snap.Order)
	require.Len(t, snap.TabsByID, 1)
	require.Equal(t, "one", snap.TabsByID["1"].Title)

	// Snapshot holds copies, not aliases.
	r.Find("1").Apply(TabFields{Title: StringField("changed")})
	require.Equal(t, "one", snap.TabsByID["1"].Title)
}
