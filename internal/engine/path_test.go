package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrypster/kinship/pkg/types"
)

// TestFindRelationshipPath_Self tests the identical-person case
func TestFindRelationshipPath_Self(t *testing.T) {
	snap := newTestTree(t)

	path := FindRelationshipPath(snap, "gus", "gus", NamerOptions{})
	require.NotNil(t, path)
	assert.Equal(t, 0, path.Distance)
	assert.Equal(t, "self", path.Relationship)
	require.Len(t, path.People, 1)
	assert.Empty(t, path.Edges)
}

// TestFindRelationshipPath_DirectRelations tests single-hop paths and their labels
func TestFindRelationshipPath_DirectRelations(t *testing.T) {
	snap := newTestTree(t)

	tests := []struct {
		name  string
		from  string
		to    string
		label string
	}{
		{"father", "gus", "carl", "father"},
		{"mother", "gus", "eve", "mother"},
		{"son", "carl", "gus", "son"},
		{"daughter", "carl", "hana", "daughter"},
		{"wife", "carl", "eve", "wife"},
		{"husband", "eve", "carl", "husband"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := FindRelationshipPath(snap, tt.from, tt.to, NamerOptions{})
			require.NotNil(t, path)
			assert.Equal(t, 1, path.Distance)
			assert.Equal(t, tt.label, path.Relationship)
		})
	}
}

// TestFindRelationshipPath_Grandparents tests two-hop ancestor paths
func TestFindRelationshipPath_Grandparents(t *testing.T) {
	snap := newTestTree(t)

	path := FindRelationshipPath(snap, "gus", "al", NamerOptions{})
	require.NotNil(t, path)
	assert.Equal(t, 2, path.Distance)
	assert.Equal(t, "grandfather", path.Relationship)

	path = FindRelationshipPath(snap, "al", "gus", NamerOptions{})
	require.NotNil(t, path)
	assert.Equal(t, 2, path.Distance)
	assert.Equal(t, "grandson", path.Relationship)
}

// TestFindRelationshipPath_Siblings tests the up-then-down sibling path
func TestFindRelationshipPath_Siblings(t *testing.T) {
	snap := newTestTree(t)

	path := FindRelationshipPath(snap, "gus", "hana", NamerOptions{})
	require.NotNil(t, path)
	assert.Equal(t, 2, path.Distance)
	assert.Equal(t, "sister", path.Relationship)
}

// TestFindRelationshipPath_GreatGrandchild tests three-hop descendant paths
func TestFindRelationshipPath_GreatGrandchild(t *testing.T) {
	snap := newTestTree(t)

	path := FindRelationshipPath(snap, "al", "jon", NamerOptions{})
	require.NotNil(t, path)
	assert.Equal(t, 3, path.Distance)
	assert.Equal(t, "great-grandson", path.Relationship)
	assert.Equal(t, []types.EdgeKind{types.EdgeChild, types.EdgeChild, types.EdgeChild}, path.Edges)
}

// TestFindRelationshipPath_Cousins tests the equal up/down cousin path
func TestFindRelationshipPath_Cousins(t *testing.T) {
	snap := newTestTree(t)

	path := FindRelationshipPath(snap, "gus", "ivy", NamerOptions{})
	require.NotNil(t, path)
	assert.Equal(t, 4, path.Distance)
	assert.Equal(t, "cousin", path.Relationship)
}

// TestFindRelationshipPath_RelativeByMarriage tests spouse-edge paths
func TestFindRelationshipPath_RelativeByMarriage(t *testing.T) {
	snap := newTestTree(t)

	// gus to finn runs through dora's marriage.
	path := FindRelationshipPath(snap, "gus", "finn", NamerOptions{})
	require.NotNil(t, path)
	assert.Equal(t, "relative by marriage", path.Relationship)
}

// TestFindRelationshipPath_EdgeSequenceMatchesPeople tests path structure invariants
func TestFindRelationshipPath_EdgeSequenceMatchesPeople(t *testing.T) {
	snap := newTestTree(t)

	path := FindRelationshipPath(snap, "jon", "kay", NamerOptions{})
	require.NotNil(t, path)
	assert.Len(t, path.People, path.Distance+1)
	assert.Len(t, path.Edges, path.Distance)
	assert.Equal(t, "jon", path.People[0].ID)
	assert.Equal(t, "kay", path.People[len(path.People)-1].ID)
}

// TestFindRelationshipPath_Unreachable tests disconnected persons and unknown IDs
func TestFindRelationshipPath_Unreachable(t *testing.T) {
	snap := newTestTree(t)
	b := NewSnapshotBuilder()
	b.AddPerson(&types.Person{ID: "lone", FirstName: "Lone", Living: true})
	lone := b.Build()
	snap.People["lone"] = lone.People["lone"]

	assert.Nil(t, FindRelationshipPath(snap, "gus", "lone", NamerOptions{}))
	assert.Nil(t, FindRelationshipPath(snap, "gus", "nobody", NamerOptions{}))
	assert.Nil(t, FindRelationshipPath(snap, "nobody", "gus", NamerOptions{}))
}

// TestFindRelationshipPath_MarriageLoop tests cycle safety across spouse edges
func TestFindRelationshipPath_MarriageLoop(t *testing.T) {
	snap := newTestTree(t)

	// Spouse edges form loops (al=bea with shared children); the
	// search must terminate and still find every pair.
	path := FindRelationshipPath(snap, "bea", "eve", NamerOptions{})
	require.NotNil(t, path)
	assert.Positive(t, path.Distance)
}

// TestFindRelationshipPath_CyclicData tests termination on malformed adjacency data
func TestFindRelationshipPath_CyclicData(t *testing.T) {
	snap := newCyclicTree(t)

	path := FindRelationshipPath(snap, "a", "c", NamerOptions{})
	require.NotNil(t, path)
	assert.Equal(t, 1, path.Distance)
}
