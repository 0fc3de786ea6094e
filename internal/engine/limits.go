// This file implements traversal limits, the backstop that keeps a
// query over malformed (cyclic) or pathologically wide input from
// growing without bound.
package engine

// Default and maximum traversal limit values.
const (
	// DefaultMaxGenerations is the generation cap applied when a
	// caller does not set one. Real pedigrees never approach it.
	DefaultMaxGenerations = 500

	// DefaultMaxPersons is the cap on persons recorded by a single
	// traversal. Combined with visited sets it guarantees termination
	// on cyclic adjacency data.
	DefaultMaxPersons = 100000
)

// TraversalLimits bounds a single traversal. The zero value means
// "use defaults"; call Normalize before use.
//
// There is deliberately no timeout and no context here: every engine
// operation is a synchronous pure function, and callers needing
// bounded latency enforce it through MaxGenerations.
type TraversalLimits struct {
	// MaxGenerations limits traversal depth. Zero or negative selects
	// DefaultMaxGenerations.
	MaxGenerations int

	// MaxPersons limits the total number of persons recorded. Zero or
	// negative selects DefaultMaxPersons.
	MaxPersons int
}

// Normalize replaces unset or invalid fields with defaults.
func (l *TraversalLimits) Normalize() {
	if l.MaxGenerations <= 0 {
		l.MaxGenerations = DefaultMaxGenerations
	}
	if l.MaxPersons <= 0 {
		l.MaxPersons = DefaultMaxPersons
	}
}

// AllowsDepth reports whether a traversal may expand past the given
// depth (in generations from the start person).
func (l *TraversalLimits) AllowsDepth(depth int) bool {
	return depth < l.MaxGenerations
}

// AllowsMore reports whether a traversal that has recorded the given
// number of persons may record another.
func (l *TraversalLimits) AllowsMore(recorded int) bool {
	return recorded < l.MaxPersons
}
