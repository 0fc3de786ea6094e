// Package treeio loads family tree documents into engine snapshots.
// It is the single boundary where the list-keyed wire representation
// of a tree is adapted to the set-keyed adjacency maps the engine
// owns; everything past this package works in sets.
package treeio

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/scrypster/kinship/internal/engine"
	"github.com/scrypster/kinship/pkg/types"
)

// Document is the YAML wire form of a family tree.
type Document struct {
	Persons []PersonRecord `yaml:"persons"`
	Edges   []EdgeRecord   `yaml:"edges"`
	Unions  [][]string     `yaml:"unions"`
}

// PersonRecord is one person entry in a tree document.
type PersonRecord struct {
	ID        string `yaml:"id"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Gender    string `yaml:"gender"`
	BirthDate string `yaml:"birth_date"` // YYYY-MM-DD
	DeathDate string `yaml:"death_date"` // YYYY-MM-DD
	Living    bool   `yaml:"living"`
	PhotoURL  string `yaml:"photo_url"`
}

// EdgeRecord is one parent-child entry in a tree document.
type EdgeRecord struct {
	Parent string `yaml:"parent"`
	Child  string `yaml:"child"`
}

// dateLayout is the date format accepted in tree documents.
const dateLayout = "2006-01-02"

// Parse decodes a YAML tree document and assembles a snapshot.
// Duplicate person IDs, unknown genders, malformed dates, and edges or
// unions referencing undeclared persons are errors: this is the system
// boundary, and the engine past it assumes consistent input.
func Parse(data []byte) (*engine.Snapshot, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode tree document: %w", err)
	}

	builder := engine.NewSnapshotBuilder()
	declared := make(map[string]bool)

	for i, rec := range doc.Persons {
		person, err := rec.toPerson()
		if err != nil {
			return nil, fmt.Errorf("person %d: %w", i, err)
		}
		if person.ID != "" && declared[person.ID] {
			return nil, fmt.Errorf("person %d: duplicate id %q", i, person.ID)
		}
		declared[builder.AddPerson(person)] = true
	}

	for i, edge := range doc.Edges {
		if !declared[edge.Parent] {
			return nil, fmt.Errorf("edge %d: unknown parent %q", i, edge.Parent)
		}
		if !declared[edge.Child] {
			return nil, fmt.Errorf("edge %d: unknown child %q", i, edge.Child)
		}
		builder.AddParentChild(edge.Parent, edge.Child)
	}

	for i, union := range doc.Unions {
		if len(union) != 2 {
			return nil, fmt.Errorf("union %d: expected exactly two persons, got %d", i, len(union))
		}
		for _, id := range union {
			if !declared[id] {
				return nil, fmt.Errorf("union %d: unknown person %q", i, id)
			}
		}
		builder.AddSpouse(union[0], union[1])
	}

	return builder.Build(), nil
}

// Load reads and parses the tree document at path.
func Load(path string) (*engine.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree file: %w", err)
	}
	snap, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return snap, nil
}

// toPerson validates and converts a wire record.
func (r PersonRecord) toPerson() (*types.Person, error) {
	gender, err := parseGender(r.Gender)
	if err != nil {
		return nil, err
	}
	birth, err := parseDate(r.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("birth_date: %w", err)
	}
	death, err := parseDate(r.DeathDate)
	if err != nil {
		return nil, fmt.Errorf("death_date: %w", err)
	}
	return &types.Person{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Gender:    gender,
		BirthDate: birth,
		DeathDate: death,
		Living:    r.Living,
		PhotoURL:  r.PhotoURL,
	}, nil
}

func parseGender(s string) (types.Gender, error) {
	switch types.Gender(s) {
	case types.GenderMale, types.GenderFemale, types.GenderOther, types.GenderUnknown:
		return types.Gender(s), nil
	default:
		return types.GenderUnknown, fmt.Errorf("invalid gender %q", s)
	}
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return &t, nil
}
