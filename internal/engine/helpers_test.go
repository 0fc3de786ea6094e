// Package engine tests use a shared three-generation fixture family:
//
//	al ═ bea              (deceased)
//	├── carl ═ eve        (carl deceased)
//	│   ├── gus ── jon
//	│   └── hana
//	└── dora ═ finn
//	    └── ivy ── kay
//
// gus and ivy are first cousins; jon is ivy's first cousin once
// removed; hana is gus's sister.
package engine

import (
	"testing"

	"github.com/scrypster/kinship/pkg/types"
)

// personSpec describes one fixture person.
type personSpec struct {
	id     string
	first  string
	last   string
	gender types.Gender
	living bool
}

// newTestTree builds the fixture family snapshot.
func newTestTree(t *testing.T) *Snapshot {
	t.Helper()

	b := NewSnapshotBuilder()
	for _, spec := range []personSpec{
		{"al", "Albert", "Stone", types.GenderMale, false},
		{"bea", "Beatrice", "Stone", types.GenderFemale, false},
		{"carl", "Carl", "Stone", types.GenderMale, false},
		{"eve", "Eve", "Stone", types.GenderFemale, true},
		{"dora", "Dora", "Reed", types.GenderFemale, true},
		{"finn", "Finn", "Reed", types.GenderMale, true},
		{"gus", "Gus", "Stone", types.GenderMale, true},
		{"hana", "Hana", "Stone", types.GenderFemale, true},
		{"ivy", "Ivy", "Reed", types.GenderFemale, true},
		{"jon", "Jon", "Stone", types.GenderMale, true},
		{"kay", "Kay", "Reed", types.GenderFemale, true},
	} {
		b.AddPerson(&types.Person{
			ID:        spec.id,
			FirstName: spec.first,
			LastName:  spec.last,
			Gender:    spec.gender,
			Living:    spec.living,
		})
	}

	b.AddSpouse("al", "bea")
	b.AddSpouse("carl", "eve")
	b.AddSpouse("dora", "finn")

	for _, edge := range [][2]string{
		{"al", "carl"}, {"bea", "carl"},
		{"al", "dora"}, {"bea", "dora"},
		{"carl", "gus"}, {"eve", "gus"},
		{"carl", "hana"}, {"eve", "hana"},
		{"dora", "ivy"}, {"finn", "ivy"},
		{"gus", "jon"},
		{"ivy", "kay"},
	} {
		b.AddParentChild(edge[0], edge[1])
	}

	return b.Build()
}

// newCyclicTree builds malformed adjacency data where a, b, and c form
// a parent cycle: b is a's parent, c is b's parent, a is c's parent.
func newCyclicTree(t *testing.T) *Snapshot {
	t.Helper()

	b := NewSnapshotBuilder()
	for _, id := range []string{"a", "b", "c"} {
		b.AddPerson(&types.Person{ID: id, FirstName: id, Living: true})
	}
	b.AddParentChild("b", "a")
	b.AddParentChild("c", "b")
	b.AddParentChild("a", "c")
	return b.Build()
}

// ancestorIDs projects the ancestor list to person IDs in order.
func ancestorIDs(ancestors []Ancestor) []string {
	ids := make([]string, 0, len(ancestors))
	for _, a := range ancestors {
		ids = append(ids, a.Person.ID)
	}
	return ids
}

// descendantIDs projects the descendant list to person IDs in order.
func descendantIDs(descendants []Descendant) []string {
	ids := make([]string, 0, len(descendants))
	for _, d := range descendants {
		ids = append(ids, d.Person.ID)
	}
	return ids
}
