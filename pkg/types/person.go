// Package types defines the core data structures for the Kinship
// relationship engine: persons, genders, lineages, and the edge kinds
// that connect persons in a family graph.
package types

import (
	"strings"
	"time"
)

// Gender represents a person's recorded gender.
// An empty string means the gender is unknown.
type Gender string

// Gender constants
const (
	// GenderMale indicates a recorded male gender.
	GenderMale Gender = "male"

	// GenderFemale indicates a recorded female gender.
	GenderFemale Gender = "female"

	// GenderOther indicates a recorded gender outside male/female.
	GenderOther Gender = "other"

	// GenderUnknown indicates no gender was recorded.
	GenderUnknown Gender = ""
)

// Lineage classifies an ancestor relative to a descendant.
type Lineage string

// Lineage constants
const (
	// LineagePaternal indicates the ancestor is male.
	LineagePaternal Lineage = "paternal"

	// LineageMaternal indicates the ancestor is female.
	LineageMaternal Lineage = "maternal"

	// LineageBoth indicates an ancestor whose gender is unknown, or one
	// whose classification merged paternal and maternal discoveries.
	LineageBoth Lineage = "both"
)

// EdgeKind identifies one kind of family-graph edge.
type EdgeKind string

// Edge kind constants
const (
	// EdgeParent is a hop from a person to one of their parents.
	EdgeParent EdgeKind = "parent"

	// EdgeChild is a hop from a person to one of their children.
	EdgeChild EdgeKind = "child"

	// EdgeSpouse is a hop from a person to one of their spouses.
	EdgeSpouse EdgeKind = "spouse"
)

// Person represents a single individual in the family graph.
// Persons are immutable for the duration of an engine call; they are
// owned by the caller and never mutated by the engine.
type Person struct {
	// Core identification fields
	ID        string `json:"id"`         // Unique, stable identifier
	FirstName string `json:"first_name"` // Given name
	LastName  string `json:"last_name"`  // Family name

	// Demographic fields
	Gender    Gender     `json:"gender,omitempty"`     // male, female, other, or empty for unknown
	BirthDate *time.Time `json:"birth_date,omitempty"` // Optional date of birth
	DeathDate *time.Time `json:"death_date,omitempty"` // Optional date of death
	Living    bool       `json:"living"`               // True if the person is alive

	// Additional context
	PhotoURL string `json:"photo_url,omitempty"` // Optional photo reference
}

// FullName returns the person's display name: first and last name
// joined by a space, with empty components omitted.
func (p *Person) FullName() string {
	parts := make([]string, 0, 2)
	if p.FirstName != "" {
		parts = append(parts, p.FirstName)
	}
	if p.LastName != "" {
		parts = append(parts, p.LastName)
	}
	return strings.Join(parts, " ")
}

// DefaultLineage returns the lineage classification implied by the
// person's own gender: paternal for male, maternal for female, and
// both when the gender is other or unknown.
func (p *Person) DefaultLineage() Lineage {
	switch p.Gender {
	case GenderMale:
		return LineagePaternal
	case GenderFemale:
		return LineageMaternal
	default:
		return LineageBoth
	}
}

// MergeLineage combines an already-recorded lineage with a newly
// discovered one. Differing specific lineages merge to both; both
// absorbs everything.
func MergeLineage(recorded, discovered Lineage) Lineage {
	if recorded == discovered {
		return recorded
	}
	return LineageBoth
}
