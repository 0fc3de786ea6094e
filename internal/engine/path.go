// This file implements shortest relationship path finding across
// parent, child, and spouse edges.
package engine

import (
	"github.com/scrypster/kinship/pkg/types"
)

// RelationshipPath is the shortest hop path between two persons
// together with its classified relationship label.
type RelationshipPath struct {
	// People is the ordered person sequence from the first query
	// person to the second.
	People []*types.Person

	// Edges is the ordered edge-kind sequence connecting People;
	// Edges[i] connects People[i] to People[i+1].
	Edges []types.EdgeKind

	// Relationship is the classified human label for the path.
	Relationship string

	// Distance is the number of edges in the path.
	Distance int
}

// neighbor is one outgoing hop during path search.
type neighbor struct {
	id   string
	kind types.EdgeKind
}

// neighborsOf lists a person's parents, children, and spouses as
// equal-weight hops, each group in sorted ID order.
func neighborsOf(snap *Snapshot, id string) []neighbor {
	var out []neighbor
	for _, pid := range snap.parentsOf(id) {
		out = append(out, neighbor{pid, types.EdgeParent})
	}
	for _, cid := range snap.childrenOf(id) {
		out = append(out, neighbor{cid, types.EdgeChild})
	}
	for _, sid := range snap.spousesOf(id) {
		out = append(out, neighbor{sid, types.EdgeSpouse})
	}
	return out
}

// FindRelationshipPath finds the shortest path from id1 to id2 where
// parents, children, and spouses all count as single hops, and
// classifies it. Shortest means fewest hops, not closest genealogical
// relationship. The visited set makes the search terminate on marriage
// loops and cyclic adjacency data.
//
// Identical IDs yield distance 0 with the label "self". Unknown IDs
// and unreachable pairs yield nil.
func FindRelationshipPath(snap *Snapshot, id1, id2 string, opts NamerOptions) *RelationshipPath {
	p1, p2 := snap.Person(id1), snap.Person(id2)
	if p1 == nil || p2 == nil {
		return nil
	}
	if id1 == id2 {
		return &RelationshipPath{
			People:       []*types.Person{p1},
			Edges:        []types.EdgeKind{},
			Relationship: labelSelf,
			Distance:     0,
		}
	}

	limits := snap.queryLimits(0)

	visited := NewIDSet(id1)
	cameFrom := make(map[string]pathStep)
	queue := []string{id1}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, n := range neighborsOf(snap, current) {
			if visited.Has(n.id) {
				continue
			}
			if !limits.AllowsMore(len(visited)) {
				return nil
			}
			visited.Add(n.id)
			cameFrom[n.id] = pathStep{prev: current, kind: n.kind}
			if n.id == id2 {
				return reconstructPath(snap, id1, id2, cameFrom, opts)
			}
			queue = append(queue, n.id)
		}
	}
	return nil
}

// pathStep records how a person was first reached during path search.
type pathStep struct {
	prev string
	kind types.EdgeKind
}

// reconstructPath walks the predecessor map back from the target and
// assembles the path, its edge sequence, and its label.
func reconstructPath(snap *Snapshot, id1, id2 string, cameFrom map[string]pathStep, opts NamerOptions) *RelationshipPath {
	var ids []string
	var kinds []types.EdgeKind
	for current := id2; current != id1; {
		s := cameFrom[current]
		ids = append(ids, current)
		kinds = append(kinds, s.kind)
		current = s.prev
	}
	ids = append(ids, id1)

	// Reverse into source-to-target order.
	people := make([]*types.Person, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		people = append(people, snap.Person(ids[i]))
	}
	edges := make([]types.EdgeKind, 0, len(kinds))
	for i := len(kinds) - 1; i >= 0; i-- {
		edges = append(edges, kinds[i])
	}

	return &RelationshipPath{
		People:       people,
		Edges:        edges,
		Relationship: CalculateRelationshipName(snap, people, edges, opts),
		Distance:     len(edges),
	}
}
