package engine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrypster/kinship/pkg/types"
)

// TestSnapshotBuilder_AssignsIDs tests UUID assignment for persons without one
func TestSnapshotBuilder_AssignsIDs(t *testing.T) {
	b := NewSnapshotBuilder()

	p := &types.Person{FirstName: "Ada", Living: true}
	id := b.AddPerson(p)
	require.NotEmpty(t, id)
	assert.Equal(t, id, p.ID)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)

	q := &types.Person{ID: "fixed", FirstName: "Ben", Living: true}
	assert.Equal(t, "fixed", b.AddPerson(q))
}

// TestSnapshotBuilder_EdgeConsistency tests that parent-child edges appear in
// both directions and spouse edges are symmetric
func TestSnapshotBuilder_EdgeConsistency(t *testing.T) {
	snap := newTestTree(t)

	assert.True(t, snap.Parents["gus"].Has("carl"))
	assert.True(t, snap.Children["carl"].Has("gus"))

	assert.True(t, snap.Spouses["al"].Has("bea"))
	assert.True(t, snap.Spouses["bea"].Has("al"))
}

// TestSnapshot_SkipsUnknownIDs tests that adjacency entries referencing persons
// absent from the lookup never surface through the accessors
func TestSnapshot_SkipsUnknownIDs(t *testing.T) {
	snap := newTestTree(t)
	snap.Parents["gus"].Add("ghost1")
	snap.Children["gus"].Add("ghost2")
	snap.Spouses["gus"] = NewIDSet("ghost3")

	assert.NotContains(t, snap.parentsOf("gus"), "ghost1")
	assert.NotContains(t, snap.childrenOf("gus"), "ghost2")
	assert.Empty(t, snap.spousesOf("gus"))
}

// TestSnapshot_SortedAccessors tests deterministic neighbor ordering
func TestSnapshot_SortedAccessors(t *testing.T) {
	snap := newTestTree(t)

	assert.Equal(t, []string{"carl", "eve"}, snap.parentsOf("gus"))
	assert.Equal(t, []string{"gus", "hana"}, snap.childrenOf("carl"))
}

// TestIDSet tests the set primitive
func TestIDSet(t *testing.T) {
	s := NewIDSet("b", "a")
	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("c"))

	s.Add("c")
	assert.Equal(t, []string{"a", "b", "c"}, s.Sorted())
}
