// Package engine implements the Kinship relationship engine: ancestor
// and descendant collection, common-ancestor search, cousin
// derivation, and relationship path finding over an immutable family
// graph snapshot.
//
// Every operation is a synchronous pure function of its inputs. The
// engine never mutates the snapshot, performs no I/O, and degrades to
// empty or nil results instead of returning errors. Calls are safe to
// issue concurrently against the same snapshot.
package engine

import (
	"sort"

	"github.com/google/uuid"

	"github.com/scrypster/kinship/pkg/types"
)

// IDSet is a set of person identifiers.
type IDSet map[string]struct{}

// NewIDSet builds a set from the given identifiers.
func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id into the set.
func (s IDSet) Add(id string) {
	s[id] = struct{}{}
}

// Sorted returns the set's members in ascending order.
// Traversals visit neighbors in this order so that results are
// deterministic across runs.
func (s IDSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Snapshot is an immutable view of a family graph: a person lookup
// plus three set-keyed adjacency maps. The caller owns the snapshot
// and must keep the adjacency maps mutually consistent (every
// parent-child edge present in both Parents and Children). The engine
// does not verify consistency; adjacency entries referencing a person
// absent from People are silently skipped.
type Snapshot struct {
	// People maps person ID to the person record.
	People map[string]*types.Person

	// Parents maps a person to the set of their parents' IDs.
	Parents map[string]IDSet

	// Children maps a person to the set of their children's IDs.
	Children map[string]IDSet

	// Spouses maps a person to the set of their spouses' IDs.
	Spouses map[string]IDSet

	// Limits bounds every traversal over this snapshot. MaxPersons
	// caps the persons any single query records; MaxGenerations is the
	// depth fallback for queries that set no cutoff of their own. Zero
	// fields select the engine defaults.
	Limits TraversalLimits
}

// NewSnapshot returns an empty snapshot with all maps allocated.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		People:   make(map[string]*types.Person),
		Parents:  make(map[string]IDSet),
		Children: make(map[string]IDSet),
		Spouses:  make(map[string]IDSet),
	}
}

// Person returns the person with the given ID, or nil if the ID is
// absent from the lookup.
func (s *Snapshot) Person(id string) *types.Person {
	return s.People[id]
}

// queryLimits builds the normalized limits for one query: the per-call
// generation cutoff when set, otherwise the snapshot-level fallback,
// combined with the snapshot-level person cap.
func (s *Snapshot) queryLimits(maxGenerations int) TraversalLimits {
	limits := TraversalLimits{
		MaxGenerations: maxGenerations,
		MaxPersons:     s.Limits.MaxPersons,
	}
	if limits.MaxGenerations <= 0 {
		limits.MaxGenerations = s.Limits.MaxGenerations
	}
	limits.Normalize()
	return limits
}

// parentsOf returns the known parents of id in sorted order.
// Parents absent from the person lookup are skipped.
func (s *Snapshot) parentsOf(id string) []string {
	return s.knownSorted(s.Parents[id])
}

// childrenOf returns the known children of id in sorted order.
func (s *Snapshot) childrenOf(id string) []string {
	return s.knownSorted(s.Children[id])
}

// spousesOf returns the known spouses of id in sorted order.
func (s *Snapshot) spousesOf(id string) []string {
	return s.knownSorted(s.Spouses[id])
}

func (s *Snapshot) knownSorted(set IDSet) []string {
	if len(set) == 0 {
		return nil
	}
	ids := make([]string, 0, len(set))
	for id := range set {
		if _, ok := s.People[id]; ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// SnapshotBuilder assembles a consistent Snapshot. It maintains both
// directions of every parent-child edge and the symmetry of spouse
// edges, so snapshots it produces always satisfy the consistency
// obligation documented on Snapshot.
type SnapshotBuilder struct {
	snap *Snapshot
}

// NewSnapshotBuilder creates an empty builder.
func NewSnapshotBuilder() *SnapshotBuilder {
	return &SnapshotBuilder{snap: NewSnapshot()}
}

// AddPerson registers a person. When the person has no ID, a fresh
// UUID is assigned and written back to the record. Returns the
// person's ID.
func (b *SnapshotBuilder) AddPerson(p *types.Person) string {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	b.snap.People[p.ID] = p
	return p.ID
}

// AddParentChild records parentID as a parent of childID, in both
// directions.
func (b *SnapshotBuilder) AddParentChild(parentID, childID string) {
	addEdge(b.snap.Parents, childID, parentID)
	addEdge(b.snap.Children, parentID, childID)
}

// AddSpouse records a symmetric spouse edge between the two persons.
func (b *SnapshotBuilder) AddSpouse(id1, id2 string) {
	addEdge(b.snap.Spouses, id1, id2)
	addEdge(b.snap.Spouses, id2, id1)
}

// Build returns the assembled snapshot. The builder must not be used
// after Build.
func (b *SnapshotBuilder) Build() *Snapshot {
	return b.snap
}

func addEdge(m map[string]IDSet, from, to string) {
	set, ok := m[from]
	if !ok {
		set = make(IDSet)
		m[from] = set
	}
	set.Add(to)
}
