package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cousinIDs projects the cousin list to person IDs in order.
func cousinIDs(cousins []Cousin) []string {
	ids := make([]string, 0, len(cousins))
	for _, c := range cousins {
		ids = append(ids, c.Person.ID)
	}
	return ids
}

// TestCalculateCousinDegree_FirstCousins tests the canonical first-cousin pair
func TestCalculateCousinDegree_FirstCousins(t *testing.T) {
	snap := newTestTree(t)

	cd := CalculateCousinDegree(snap, "gus", "ivy")
	require.NotNil(t, cd)
	assert.Equal(t, 1, cd.Degree)
	assert.Equal(t, 0, cd.Removal)
}

// TestCalculateCousinDegree_OnceRemoved tests a first cousin's child
func TestCalculateCousinDegree_OnceRemoved(t *testing.T) {
	snap := newTestTree(t)

	// jon is gus's son; ivy is gus's first cousin.
	cd := CalculateCousinDegree(snap, "jon", "ivy")
	require.NotNil(t, cd)
	assert.Equal(t, 1, cd.Degree)
	assert.Equal(t, 1, cd.Removal)

	// Symmetric in degree and removal.
	reverse := CalculateCousinDegree(snap, "ivy", "jon")
	require.NotNil(t, reverse)
	assert.Equal(t, *cd, *reverse)
}

// TestCalculateCousinDegree_NilCases tests identical persons, siblings, and direct lineage
func TestCalculateCousinDegree_NilCases(t *testing.T) {
	snap := newTestTree(t)

	assert.Nil(t, CalculateCousinDegree(snap, "gus", "gus"), "identical persons")
	assert.Nil(t, CalculateCousinDegree(snap, "gus", "hana"), "siblings are not cousins")
	assert.Nil(t, CalculateCousinDegree(snap, "gus", "carl"), "child-parent")
	assert.Nil(t, CalculateCousinDegree(snap, "al", "jon"), "ancestor-descendant")
	assert.Nil(t, CalculateCousinDegree(snap, "gus", "finn"), "no shared chain ancestor")
	assert.Nil(t, CalculateCousinDegree(snap, "gus", "nobody"), "unknown person")
}

// TestFindCousins_FirstDegree tests first-cousin discovery and exclusions
func TestFindCousins_FirstDegree(t *testing.T) {
	snap := newTestTree(t)

	cousins := FindCousins(snap, "gus", 1)
	require.Equal(t, []string{"ivy"}, cousinIDs(cousins))
	assert.Equal(t, 1, cousins[0].Degree)
	assert.Equal(t, 0, cousins[0].Removal)

	// Self, siblings, parents, and grandparents never appear.
	for _, excluded := range []string{"gus", "hana", "carl", "eve", "al", "bea"} {
		assert.NotContains(t, cousinIDs(cousins), excluded)
	}
}

// TestFindCousins_BothSides tests that a person with cousins through both of
// their grandparent couples finds all of them
func TestFindCousins_BothSides(t *testing.T) {
	snap := newTestTree(t)

	// ivy's first cousins are gus and hana, children of her mother's brother.
	cousins := FindCousins(snap, "ivy", 1)
	assert.Equal(t, []string{"gus", "hana"}, cousinIDs(cousins))
}

// TestFindCousins_SortOrder tests the removal-then-name ordering
func TestFindCousins_SortOrder(t *testing.T) {
	snap := newTestTree(t)

	cousins := FindCousins(snap, "ivy", 1)
	require.Len(t, cousins, 2)
	// Equal removal, so full name decides: Gus Stone before Hana Stone.
	assert.Equal(t, "Gus Stone", cousins[0].Person.FullName())
	assert.Equal(t, "Hana Stone", cousins[1].Person.FullName())
}

// TestFindCousins_DegenerateDegrees tests degrees below 1 and unknown persons
func TestFindCousins_DegenerateDegrees(t *testing.T) {
	snap := newTestTree(t)

	assert.Empty(t, FindCousins(snap, "gus", 0))
	assert.Empty(t, FindCousins(snap, "gus", -1))
	assert.Empty(t, FindCousins(snap, "nobody", 1))
}

// TestFindCousins_NoMatchingDegree tests a degree the tree cannot produce
func TestFindCousins_NoMatchingDegree(t *testing.T) {
	snap := newTestTree(t)

	assert.Empty(t, FindCousins(snap, "gus", 2))
}

// TestFindCousins_CyclicData tests termination on malformed cyclic data
func TestFindCousins_CyclicData(t *testing.T) {
	snap := newCyclicTree(t)

	assert.NotPanics(t, func() {
		FindCousins(snap, "a", 1)
		CalculateCousinDegree(snap, "a", "b")
	})
}
