// This file implements upward traversal: ancestor collection with
// generation and lineage tracking.
package engine

import (
	"sort"

	"github.com/scrypster/kinship/pkg/types"
)

// Ancestor is one ancestor of a query person, tagged with how far up
// the tree it sits and which lineage it belongs to.
type Ancestor struct {
	// Person is the ancestor's record.
	Person *types.Person

	// Generation is the distance in pure-parent hops from the query
	// person: 1 for a parent, 2 for a grandparent, and so on. For a
	// person reachable through paths of different lengths (a diamond
	// pedigree) this is the shortest distance, because collection is
	// breadth-first.
	Generation int

	// Lineage classifies the ancestor by their own gender: paternal
	// for male, maternal for female, both for other or unknown.
	Lineage types.Lineage
}

// AncestorOptions controls ancestor collection.
type AncestorOptions struct {
	// MaxGenerations stops the traversal from expanding past this
	// depth. Zero means no caller-imposed limit.
	MaxGenerations int

	// LineageFilter, when set to paternal or maternal, retains only
	// ancestors whose lineage equals the requested value or is both.
	// Any other value retains everything.
	LineageFilter types.Lineage
}

// FindAncestors collects every ancestor of the person with the given
// ID, breadth-first through all parents at every level, each ancestor
// recorded exactly once. The result is sorted ascending by generation,
// ties broken by person ID.
//
// An unknown start ID, or a person with no recorded parents, yields an
// empty result. Parents referenced by the adjacency map but absent
// from the person lookup are skipped. Cyclic adjacency data terminates
// via the visited set.
func FindAncestors(snap *Snapshot, id string, opts AncestorOptions) []Ancestor {
	result := make([]Ancestor, 0)
	if snap.Person(id) == nil {
		return result
	}

	limits := snap.queryLimits(opts.MaxGenerations)

	type queueItem struct {
		id    string
		depth int
	}

	queue := []queueItem{{id, 0}}
	recorded := make(map[string]*Ancestor)
	visited := NewIDSet(id)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if !limits.AllowsDepth(current.depth) {
			continue
		}

		for _, parentID := range snap.parentsOf(current.id) {
			parent := snap.Person(parentID)
			discovered := parent.DefaultLineage()

			if entry, ok := recorded[parentID]; ok {
				// Reached again through another path: merge the
				// lineage, keep the first (shortest) generation.
				// Lineage derives from the ancestor's own gender, so
				// this merge never changes the recorded value; it is
				// not live multi-path logic.
				entry.Lineage = types.MergeLineage(entry.Lineage, discovered)
				continue
			}
			if visited.Has(parentID) {
				continue
			}
			if !limits.AllowsMore(len(recorded)) {
				return finishAncestors(recorded, opts.LineageFilter)
			}

			visited.Add(parentID)
			recorded[parentID] = &Ancestor{
				Person:     parent,
				Generation: current.depth + 1,
				Lineage:    discovered,
			}
			queue = append(queue, queueItem{parentID, current.depth + 1})
		}
	}

	return finishAncestors(recorded, opts.LineageFilter)
}

// finishAncestors materializes the recorded entries, applies the
// lineage filter, and sorts by (generation, person ID).
func finishAncestors(recorded map[string]*Ancestor, filter types.Lineage) []Ancestor {
	selective := filter == types.LineagePaternal || filter == types.LineageMaternal
	result := make([]Ancestor, 0, len(recorded))
	for _, entry := range recorded {
		if selective && entry.Lineage != filter && entry.Lineage != types.LineageBoth {
			continue
		}
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Generation != result[j].Generation {
			return result[i].Generation < result[j].Generation
		}
		return result[i].Person.ID < result[j].Person.ID
	})
	return result
}

// AncestorsAtGeneration returns the ancestors sitting at exactly the
// given generation. A generation below 1 yields an empty result.
func AncestorsAtGeneration(snap *Snapshot, id string, generation int) []Ancestor {
	result := make([]Ancestor, 0)
	if generation < 1 {
		return result
	}
	for _, a := range FindAncestors(snap, id, AncestorOptions{MaxGenerations: generation}) {
		if a.Generation == generation {
			result = append(result, a)
		}
	}
	return result
}

// CountAncestors returns the number of ancestors of the person,
// optionally cut off at maxGenerations (zero means no cutoff).
func CountAncestors(snap *Snapshot, id string, maxGenerations int) int {
	return len(FindAncestors(snap, id, AncestorOptions{MaxGenerations: maxGenerations}))
}

// AncestorsByGeneration buckets the person's ancestors by generation.
func AncestorsByGeneration(snap *Snapshot, id string, opts AncestorOptions) map[int][]Ancestor {
	buckets := make(map[int][]Ancestor)
	for _, a := range FindAncestors(snap, id, opts) {
		buckets[a.Generation] = append(buckets[a.Generation], a)
	}
	return buckets
}
