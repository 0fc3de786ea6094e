// This file implements common-ancestor search: the nearest single
// common ancestor and the complete set of common ancestors.
package engine

import (
	"sort"

	"github.com/scrypster/kinship/pkg/types"
)

// CommonAncestor is a shared ancestor of two query persons with the
// distance from each.
type CommonAncestor struct {
	// Ancestor is the shared ancestor's record.
	Ancestor *types.Person

	// Distance1 is the generation distance from the first query person.
	Distance1 int

	// Distance2 is the generation distance from the second query person.
	Distance2 int
}

// ancestorDistances builds the shortest-distance map of every ancestor
// of id, including id itself at distance 0. Layered breadth-first
// expansion guarantees the first-assigned distance is the true
// shortest; the visited property of the map keeps cyclic input finite.
func ancestorDistances(snap *Snapshot, id string) map[string]int {
	distances := map[string]int{id: 0}
	limits := snap.queryLimits(0)

	frontier := []string{id}
	depth := 0
	for len(frontier) > 0 && limits.AllowsDepth(depth) {
		var next []string
		for _, current := range frontier {
			for _, parentID := range snap.parentsOf(current) {
				if _, ok := distances[parentID]; ok {
					continue
				}
				if !limits.AllowsMore(len(distances)) {
					return distances
				}
				distances[parentID] = depth + 1
				next = append(next, parentID)
			}
		}
		frontier = next
		depth++
	}
	return distances
}

// FindCommonAncestor returns the first common ancestor discovered by
// expanding outward from person b against the full ancestor-distance
// map of person a. Identical persons short-circuit to distances (0, 0).
//
// Because the search stops at the first intersection, the result is
// the common ancestor nearest to b — not necessarily the ancestor
// minimizing the combined distance. FindAllCommonAncestors sorts by
// combined distance and its first element is the global nearest.
//
// Returns nil for unknown IDs or when no shared ancestor exists.
func FindCommonAncestor(snap *Snapshot, id1, id2 string) *CommonAncestor {
	p1, p2 := snap.Person(id1), snap.Person(id2)
	if p1 == nil || p2 == nil {
		return nil
	}
	if id1 == id2 {
		return &CommonAncestor{Ancestor: p1, Distance1: 0, Distance2: 0}
	}

	fromA := ancestorDistances(snap, id1)

	limits := snap.queryLimits(0)

	visited := NewIDSet(id2)
	frontier := []string{id2}
	depth := 0
	for len(frontier) > 0 && limits.AllowsDepth(depth) {
		// Check the current layer before expanding further, so the
		// nearest-to-b intersection wins; sorted frontier order keeps
		// same-layer ties deterministic.
		sort.Strings(frontier)
		for _, current := range frontier {
			if d1, ok := fromA[current]; ok {
				return &CommonAncestor{
					Ancestor:  snap.Person(current),
					Distance1: d1,
					Distance2: depth,
				}
			}
		}

		var next []string
		for _, current := range frontier {
			for _, parentID := range snap.parentsOf(current) {
				if visited.Has(parentID) {
					continue
				}
				if !limits.AllowsMore(len(visited)) {
					return nil
				}
				visited.Add(parentID)
				next = append(next, parentID)
			}
		}
		frontier = next
		depth++
	}
	return nil
}

// FindAllCommonAncestors returns every shared ancestor of the two
// persons with both distances, sorted ascending by combined distance,
// ties broken by Distance1, then Distance2, then ancestor ID. The
// first element is the true globally-nearest common ancestor.
//
// Returns an empty result for unknown IDs or disjoint pedigrees.
func FindAllCommonAncestors(snap *Snapshot, id1, id2 string) []CommonAncestor {
	result := make([]CommonAncestor, 0)
	if snap.Person(id1) == nil || snap.Person(id2) == nil {
		return result
	}

	fromA := ancestorDistances(snap, id1)
	fromB := ancestorDistances(snap, id2)

	for id, d1 := range fromA {
		d2, ok := fromB[id]
		if !ok {
			continue
		}
		result = append(result, CommonAncestor{
			Ancestor:  snap.Person(id),
			Distance1: d1,
			Distance2: d2,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.Distance1+a.Distance2 != b.Distance1+b.Distance2 {
			return a.Distance1+a.Distance2 < b.Distance1+b.Distance2
		}
		if a.Distance1 != b.Distance1 {
			return a.Distance1 < b.Distance1
		}
		if a.Distance2 != b.Distance2 {
			return a.Distance2 < b.Distance2
		}
		return a.Ancestor.ID < b.Ancestor.ID
	})
	return result
}
