// This file implements downward traversal: descendant collection with
// generation tracking and living/deceased filtering, plus the combined
// all-relatives query.
package engine

import (
	"sort"

	"github.com/scrypster/kinship/pkg/types"
)

// Descendant is one descendant of a query person.
type Descendant struct {
	// Person is the descendant's record.
	Person *types.Person

	// Generation is the distance in pure-child hops from the query
	// person: 1 for a child, 2 for a grandchild, and so on. Shortest
	// distance wins for persons reachable through multiple paths.
	Generation int
}

// DescendantOptions controls descendant collection. The living filter
// is a tri-state: setting only IncludeLiving keeps living persons,
// setting only IncludeDeceased keeps deceased persons, and setting
// both or neither disables filtering entirely.
type DescendantOptions struct {
	// MaxGenerations stops the traversal from expanding past this
	// depth. Zero means no caller-imposed limit.
	MaxGenerations int

	// IncludeLiving selects living descendants.
	IncludeLiving bool

	// IncludeDeceased selects deceased descendants.
	IncludeDeceased bool
}

// keeps reports whether the tri-state living filter retains p.
func (o DescendantOptions) keeps(p *types.Person) bool {
	if o.IncludeLiving == o.IncludeDeceased {
		return true
	}
	if o.IncludeLiving {
		return p.Living
	}
	return !p.Living
}

// FindDescendants collects every descendant of the person with the
// given ID, breadth-first through all children at every level, each
// descendant recorded exactly once. The result is sorted ascending by
// generation, ties broken by person ID.
//
// An unknown start ID, or a person with no recorded children, yields
// an empty result. Children referenced by the adjacency map but absent
// from the person lookup are skipped.
func FindDescendants(snap *Snapshot, id string, opts DescendantOptions) []Descendant {
	result := make([]Descendant, 0)
	if snap.Person(id) == nil {
		return result
	}

	limits := snap.queryLimits(opts.MaxGenerations)

	type queueItem struct {
		id    string
		depth int
	}

	queue := []queueItem{{id, 0}}
	visited := NewIDSet(id)
	recorded := 0

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if !limits.AllowsDepth(current.depth) {
			continue
		}

		for _, childID := range snap.childrenOf(current.id) {
			if visited.Has(childID) {
				continue
			}
			if !limits.AllowsMore(recorded) {
				return sortDescendants(result)
			}

			visited.Add(childID)
			recorded++
			child := snap.Person(childID)
			if opts.keeps(child) {
				result = append(result, Descendant{
					Person:     child,
					Generation: current.depth + 1,
				})
			}
			// Filtered-out persons still propagate the traversal so
			// their own descendants are reached.
			queue = append(queue, queueItem{childID, current.depth + 1})
		}
	}

	return sortDescendants(result)
}

func sortDescendants(result []Descendant) []Descendant {
	sort.Slice(result, func(i, j int) bool {
		if result[i].Generation != result[j].Generation {
			return result[i].Generation < result[j].Generation
		}
		return result[i].Person.ID < result[j].Person.ID
	})
	return result
}

// DescendantsAtGeneration returns the descendants sitting at exactly
// the given generation. A generation below 1 yields an empty result.
func DescendantsAtGeneration(snap *Snapshot, id string, generation int) []Descendant {
	result := make([]Descendant, 0)
	if generation < 1 {
		return result
	}
	for _, d := range FindDescendants(snap, id, DescendantOptions{MaxGenerations: generation}) {
		if d.Generation == generation {
			result = append(result, d)
		}
	}
	return result
}

// CountDescendants returns the number of descendants of the person,
// optionally cut off at maxGenerations (zero means no cutoff).
func CountDescendants(snap *Snapshot, id string, maxGenerations int) int {
	return len(FindDescendants(snap, id, DescendantOptions{MaxGenerations: maxGenerations}))
}

// DescendantsByGeneration buckets the person's descendants by
// generation.
func DescendantsByGeneration(snap *Snapshot, id string, opts DescendantOptions) map[int][]Descendant {
	buckets := make(map[int][]Descendant)
	for _, d := range FindDescendants(snap, id, opts) {
		buckets[d.Generation] = append(buckets[d.Generation], d)
	}
	return buckets
}

// Relatives is the union of a person's ancestors and descendants.
type Relatives struct {
	// Ancestors holds every ancestor, sorted by generation.
	Ancestors []Ancestor

	// Descendants holds every descendant, sorted by generation.
	Descendants []Descendant

	// Total is the combined count.
	Total int
}

// FindAllRelatives unions an unfiltered ancestor query and an
// unfiltered descendant query for the person.
func FindAllRelatives(snap *Snapshot, id string) Relatives {
	ancestors := FindAncestors(snap, id, AncestorOptions{})
	descendants := FindDescendants(snap, id, DescendantOptions{})
	return Relatives{
		Ancestors:   ancestors,
		Descendants: descendants,
		Total:       len(ancestors) + len(descendants),
	}
}
