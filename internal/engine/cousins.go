// This file implements cousin derivation: Nth-degree cousin discovery
// via ancestor fan-out and descendant fan-in, and the direct cousin
// degree/removal computation.
package engine

import (
	"sort"

	"github.com/scrypster/kinship/pkg/types"
)

// Cousin is one cousin of a query person.
type Cousin struct {
	// Person is the cousin's record.
	Person *types.Person

	// Degree is the cousin degree: first cousins share a grandparent.
	Degree int

	// Removal is the generation offset between the two persons
	// relative to their shared ancestor.
	Removal int
}

// CousinDegree is the degree/removal pair computed for two persons.
type CousinDegree struct {
	Degree  int
	Removal int
}

// ancestorsAtExactDepth returns the IDs of ancestors sitting at
// exactly depth generations up, branching through every parent at
// every level. Layered expansion with a visited set; a person first
// reached at a shallower layer is not reported at a deeper one.
func ancestorsAtExactDepth(snap *Snapshot, id string, depth int) []string {
	limits := snap.queryLimits(0)

	visited := NewIDSet(id)
	frontier := []string{id}
	for layer := 0; layer < depth && len(frontier) > 0; layer++ {
		var next []string
		for _, current := range frontier {
			for _, parentID := range snap.parentsOf(current) {
				if visited.Has(parentID) || !limits.AllowsMore(len(visited)) {
					continue
				}
				visited.Add(parentID)
				next = append(next, parentID)
			}
		}
		frontier = next
	}
	sort.Strings(frontier)
	return frontier
}

// descendantsWithin returns the IDs of every descendant of id
// reachable within maxDepth generations down — cumulative depth, not
// exact depth. The start person is not included.
func descendantsWithin(snap *Snapshot, id string, maxDepth int) []string {
	limits := snap.queryLimits(0)

	type queueItem struct {
		id    string
		depth int
	}

	var found []string
	visited := NewIDSet(id)
	queue := []queueItem{{id, 0}}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current.depth >= maxDepth {
			continue
		}
		for _, childID := range snap.childrenOf(current.id) {
			if visited.Has(childID) || !limits.AllowsMore(len(visited)) {
				continue
			}
			visited.Add(childID)
			found = append(found, childID)
			queue = append(queue, queueItem{childID, current.depth + 1})
		}
	}
	sort.Strings(found)
	return found
}

// firstParent returns the lexicographically smallest known parent of
// id, or "" when the person has no known parents. This is the fixed
// "first parent" used by the single-chain walks below.
func firstParent(snap *Snapshot, id string) string {
	parents := snap.parentsOf(id)
	if len(parents) == 0 {
		return ""
	}
	return parents[0]
}

// singleChainDistances walks the single-parent chain upward from id
// (first parent only at every step) and returns distance by ancestor
// ID, including id itself at 0. Multi-parent pedigrees are therefore
// only partially covered; this is a documented limitation of the
// cousin computation. FindAllCommonAncestors performs the exact
// all-parent computation.
func singleChainDistances(snap *Snapshot, id string) map[string]int {
	distances := map[string]int{id: 0}
	limits := snap.queryLimits(0)

	current := id
	depth := 0
	for limits.AllowsDepth(depth) {
		parent := firstParent(snap, current)
		if parent == "" {
			break
		}
		if _, seen := distances[parent]; seen {
			break
		}
		depth++
		distances[parent] = depth
		current = parent
	}
	return distances
}

// CalculateCousinDegree computes the cousin degree and removal for two
// persons via a single-parent-chain walk from each side.
//
// Returns nil for identical persons, unknown IDs, direct-lineage pairs
// (either distance to the shared ancestor is 0), pairs whose chains
// never intersect, and computed degrees below 1 (siblings are not
// cousins).
func CalculateCousinDegree(snap *Snapshot, id1, id2 string) *CousinDegree {
	if id1 == id2 {
		return nil
	}
	if snap.Person(id1) == nil || snap.Person(id2) == nil {
		return nil
	}

	fromA := singleChainDistances(snap, id1)
	fromB := singleChainDistances(snap, id2)

	// Walk b's chain outward so the first intersection is the shared
	// ancestor nearest to b.
	d1, d2 := -1, -1
	for depth := 0; ; depth++ {
		id, ok := chainMemberAt(fromB, depth)
		if !ok {
			break
		}
		if dist, shared := fromA[id]; shared {
			d1, d2 = dist, depth
			break
		}
	}
	if d1 < 0 {
		return nil
	}
	if d1 == 0 || d2 == 0 {
		return nil
	}

	degree := d1
	if d2 < degree {
		degree = d2
	}
	degree--
	if degree < 1 {
		return nil
	}

	removal := d1 - d2
	if removal < 0 {
		removal = -removal
	}
	return &CousinDegree{Degree: degree, Removal: removal}
}

// chainMemberAt finds the chain member at the given distance. A
// single-parent chain has at most one member per distance.
func chainMemberAt(chain map[string]int, depth int) (string, bool) {
	for id, d := range chain {
		if d == depth {
			return id, true
		}
	}
	return "", false
}

// inDirectLineage reports whether candidate lies on the person's own
// ancestral chain or anywhere in their descendant subtree. The
// ancestor side follows a single parent per step while the descendant
// side covers every branch; the asymmetry is deliberate and matches
// the chain walk used for degree computation.
func inDirectLineage(snap *Snapshot, id, candidate string) bool {
	if _, ok := singleChainDistances(snap, id)[candidate]; ok {
		return true
	}
	for _, descID := range descendantsWithin(snap, id, DefaultMaxGenerations) {
		if descID == candidate {
			return true
		}
	}
	return false
}

// FindCousins returns the person's cousins of exactly the requested
// degree. Candidates are gathered by fanning out to the ancestors at
// exactly degree+1 generations up and collecting all descendants of
// each within degree+1 generations down, then filtered: self, direct
// lineage, and candidates whose computed degree differs from the
// request are dropped. The result is sorted by removal ascending, then
// by full name.
//
// A degree below 1, or an unknown person ID, yields an empty result.
func FindCousins(snap *Snapshot, id string, degree int) []Cousin {
	result := make([]Cousin, 0)
	if degree < 1 || snap.Person(id) == nil {
		return result
	}

	claimed := NewIDSet(id)
	for _, ancestorID := range ancestorsAtExactDepth(snap, id, degree+1) {
		for _, candidateID := range descendantsWithin(snap, ancestorID, degree+1) {
			if claimed.Has(candidateID) {
				continue
			}
			claimed.Add(candidateID)

			if inDirectLineage(snap, id, candidateID) {
				continue
			}
			cd := CalculateCousinDegree(snap, id, candidateID)
			if cd == nil || cd.Degree != degree {
				continue
			}
			result = append(result, Cousin{
				Person:  snap.Person(candidateID),
				Degree:  cd.Degree,
				Removal: cd.Removal,
			})
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Removal != result[j].Removal {
			return result[i].Removal < result[j].Removal
		}
		ni, nj := result[i].Person.FullName(), result[j].Person.FullName()
		if ni != nj {
			return ni < nj
		}
		return result[i].Person.ID < result[j].Person.ID
	})
	return result
}
