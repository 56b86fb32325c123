package instance

import (
	"errors"
)

// Sentinel errors returned by this package.
var (
	// ErrInvalidInstance is returned for malformed documents and for
	// descriptions the matroid constructors reject.
	ErrInvalidInstance = errors.New("instance: invalid instance")

	// ErrUnknownKind is returned for a matroid kind other than graphic or transversal.
	ErrUnknownKind = errors.New("instance: unknown matroid kind")

	// ErrTooFewVertices is returned by a generator asked for a graph below its minimum size.
	ErrTooFewVertices = errors.New("instance: too few vertices")

	// ErrUnexpectedSize is returned by Check when a solution size differs from Expected.
	ErrUnexpectedSize = errors.New("instance: unexpected solution size")
)

// Kind names a matroid representation.
type Kind string

// Supported kinds.
const (
	KindGraphic     Kind = "graphic"
	KindTransversal Kind = "transversal"
)

// Matroid describes one matroid.
//   - graphic: Vertices and Edges (pairs of endpoints); element i is Edges[i].
//   - transversal: Sets, an ordered family of element ids.
type Matroid struct {
	Kind     Kind    `yaml:"kind" json:"kind"`
	Vertices int     `yaml:"vertices,omitempty" json:"vertices,omitempty"`
	Edges    [][]int `yaml:"edges,omitempty,flow" json:"edges,omitempty"`
	Sets     [][]int `yaml:"sets,omitempty,flow" json:"sets,omitempty"`
}

// Instance is one matroid intersection problem.
type Instance struct {
	Name     string  `yaml:"name,omitempty" json:"name,omitempty"`
	Ground   []int   `yaml:"ground,omitempty,flow" json:"ground,omitempty"`
	M1       Matroid `yaml:"m1" json:"m1"`
	M2       Matroid `yaml:"m2" json:"m2"`
	Expected *int    `yaml:"expected,omitempty" json:"expected,omitempty"`
}
