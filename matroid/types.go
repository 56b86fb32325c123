// Package matroid defines the independence-oracle contract shared by every
// matroid representation, plus sentinel errors for building and querying them.
package matroid

import (
	"errors"
	"sort"
)

// Sentinel errors for oracle construction.
var (
	// ErrInvalidVertexCount is returned by NewGraphic for a negative vertex count.
	ErrInvalidVertexCount = errors.New("matroid: invalid vertex count")

	// ErrVertexOutOfRange is returned by NewGraphic when an edge endpoint is outside [0,n).
	ErrVertexOutOfRange = errors.New("matroid: vertex out of range")

	// ErrNegativeElement is returned by NewTransversal when a set holds a negative id.
	ErrNegativeElement = errors.New("matroid: negative element id")
)

// Sentinel errors for Circuit queries. Both signal that the caller broke the
// Circuit precondition; a correct augmenting-path search never sees them.
var (
	// ErrNotIndependent is returned when the base subset is itself dependent.
	ErrNotIndependent = errors.New("matroid: subset is not independent")

	// ErrNotDependent is returned when adding the element keeps the subset
	// independent, so no circuit exists.
	ErrNotDependent = errors.New("matroid: element does not create a circuit")

	// ErrElementOutOfRange is returned when an element id is unknown to the oracle.
	ErrElementOutOfRange = errors.New("matroid: element out of range")
)

// Oracle answers independence and circuit queries for one matroid.
//
// Implementations must be pure: the answer depends only on the receiver's
// construction-time state and the arguments, so concurrent queries are safe.
// A subset is a set of distinct element ids; order carries no meaning.
type Oracle interface {
	// Contains reports whether e is a valid element id for this matroid.
	Contains(e int) bool

	// IsIndependent reports whether subset is independent.
	IsIndependent(subset []int) bool

	// Circuit returns the unique circuit of subset ∪ {e}, ascending, e included.
	// Precondition: subset is independent and subset ∪ {e} is not.
	Circuit(subset []int, e int) ([]int, error)
}

// Ranker is implemented by oracles that can compute the rank of a subset
// faster than the generic greedy scan.
type Ranker interface {
	Rank(subset []int) int
}

// Rank returns the size of a maximum independent subset of subset in o.
//
// If o implements Ranker its method is used; otherwise the greedy scan adds
// each element whose addition keeps the running set independent, which is
// exact for any matroid.
//
// Complexity: O(|subset|) oracle calls for the greedy path.
func Rank(o Oracle, subset []int) int {
	if r, ok := o.(Ranker); ok {
		return r.Rank(subset)
	}

	var basis []int
	for _, e := range subset {
		basis = append(basis, e)
		if !o.IsIndependent(basis) {
			basis = basis[:len(basis)-1]
		}
	}

	return len(basis)
}

// sortedCopy returns an ascending copy of s.
func sortedCopy(s []int) []int {
	out := append([]int(nil), s...)
	sort.Ints(out)

	return out
}
