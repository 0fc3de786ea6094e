// This file implements the relationship namer: an ordered,
// first-match-wins decision table that converts an edge-kind sequence
// into a human relationship label.
package engine

import (
	"github.com/scrypster/kinship/pkg/types"
)

// Shared relationship labels.
const (
	labelSelf               = "self"
	labelUnknown            = "unknown"
	labelRelativeByMarriage = "relative by marriage"
	labelCousin             = "cousin"
	labelDistantRelative    = "distant relative"
)

// NamerOptions controls relationship labeling.
type NamerOptions struct {
	// NeutralLabels replaces gender-coded labels (father/mother,
	// uncle/aunt, ...) with neutral terms (parent, parent's sibling,
	// ...). When unset, a person whose gender is other or unknown
	// receives the female-coded label; that fallback is preserved from
	// the original labeling behavior rather than resolved here.
	NeutralLabels bool
}

// gendered picks the label variant for the target person's gender.
// Male selects the male label; every other gender, including unknown,
// selects the female label unless neutral labels are requested.
func gendered(opts NamerOptions, g types.Gender, male, female, neutral string) string {
	if opts.NeutralLabels {
		return neutral
	}
	if g == types.GenderMale {
		return male
	}
	return female
}

// runCounts returns the length of the leading contiguous run of
// parent edges and the length of the contiguous run of child edges
// immediately following it.
func runCounts(edges []types.EdgeKind) (up, down int) {
	i := 0
	for i < len(edges) && edges[i] == types.EdgeParent {
		up++
		i++
	}
	for i < len(edges) && edges[i] == types.EdgeChild {
		down++
		i++
	}
	return up, down
}

// shareParent reports whether the two persons have at least one
// common parent.
func shareParent(snap *Snapshot, id1, id2 string) bool {
	p2 := snap.Parents[id2]
	for _, pid := range snap.parentsOf(id1) {
		if p2.Has(pid) {
			return true
		}
	}
	return false
}

// CalculateRelationshipName classifies a relationship path's edge-kind
// sequence into a human label. Rules are evaluated in a fixed order
// and the first match wins; earlier rules preempt later ones that
// would otherwise match the same edge pattern.
func CalculateRelationshipName(snap *Snapshot, people []*types.Person, edges []types.EdgeKind, opts NamerOptions) string {
	if len(people) == 0 {
		return labelUnknown
	}
	if len(people) == 1 {
		return labelSelf
	}

	target := people[len(people)-1]
	up, down := runCounts(edges)

	if len(edges) == 1 {
		switch edges[0] {
		case types.EdgeParent:
			return gendered(opts, target.Gender, "father", "mother", "parent")
		case types.EdgeChild:
			return gendered(opts, target.Gender, "son", "daughter", "child")
		case types.EdgeSpouse:
			return gendered(opts, target.Gender, "husband", "wife", "spouse")
		}
	}

	if up == 1 && down == 1 && len(edges) == 2 {
		return gendered(opts, target.Gender, "brother", "sister", "sibling")
	}
	if up == 2 && down == 0 && len(edges) == 2 {
		return gendered(opts, target.Gender, "grandfather", "grandmother", "grandparent")
	}
	if up == 0 && down == 2 && len(edges) == 2 {
		return gendered(opts, target.Gender, "grandson", "granddaughter", "grandchild")
	}
	if up == 3 && down == 0 && len(edges) == 3 {
		return gendered(opts, target.Gender, "great-grandfather", "great-grandmother", "great-grandparent")
	}
	if up == 0 && down == 3 && len(edges) == 3 {
		return gendered(opts, target.Gender, "great-grandson", "great-granddaughter", "great-grandchild")
	}
	if up == 1 && down == 1 && len(edges) == 3 {
		return gendered(opts, target.Gender, "uncle", "aunt", "parent's sibling")
	}
	// Retained in its original position even though the sibling rule
	// above claims the [parent, child] pattern first.
	if len(edges) == 2 && len(people) == 3 && edges[0] == types.EdgeParent && edges[1] == types.EdgeChild &&
		shareParent(snap, people[1].ID, people[2].ID) {
		return gendered(opts, target.Gender, "nephew", "niece", "sibling's child")
	}
	for _, e := range edges {
		if e == types.EdgeSpouse {
			return labelRelativeByMarriage
		}
	}
	if up >= 1 && down >= 1 && up == down {
		return labelCousin
	}
	return labelDistantRelative
}
