// Package intersect defines the result types, sentinel errors and tunable
// options of the matroid intersection engine.
package intersect

import (
	"errors"
)

// Sentinel errors for invalid input.
var (
	// ErrNilOracle is returned when either matroid oracle is nil.
	ErrNilOracle = errors.New("intersect: oracle is nil")

	// ErrInvalidGroundSet is returned for negative or repeated element ids,
	// or a current/solution set that is not a subset of the ground set.
	ErrInvalidGroundSet = errors.New("intersect: invalid ground set")

	// ErrElementOutOfRange is returned when an oracle does not know a ground element.
	ErrElementOutOfRange = errors.New("intersect: element unknown to oracle")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("intersect: invalid option supplied")
)

// Sentinel errors for internal defects. Neither should ever surface on
// correct oracles; both mean the returned solution cannot be trusted, so no
// result is returned alongside them.
var (
	// ErrIterationLimit is returned when augmentation does not stop within
	// the iteration cap.
	ErrIterationLimit = errors.New("intersect: iteration limit exceeded")

	// ErrInvariantViolation is returned when an augmentation breaks
	// independence, fails to grow the solution by one, or an oracle rejects a
	// Circuit query the search is entitled to make.
	ErrInvariantViolation = errors.New("intersect: invariant violation")
)

// Path is an augmenting path of the exchange digraph.
//   - Vertices: path order, starting at an M1-extendable element and ending
//     at an M2-extendable one.
//   - Add: path vertices outside the current solution, in path order.
//   - Remove: path vertices inside the current solution, in path order.
//
// Applying a path grows the solution by exactly one: len(Add) = len(Remove)+1.
type Path struct {
	Vertices []int
	Add      []int
	Remove   []int
}

// Len returns the number of arcs on the path.
func (p *Path) Len() int { return len(p.Vertices) - 1 }

// Iteration is one record of the algorithm trace.
//   - Number:   1-based iteration counter.
//   - Added:    elements inserted by this iteration's augmentation.
//   - Removed:  elements deleted by this iteration's augmentation.
//   - Solution: ascending snapshot of the solution after the iteration.
//   - Terminal: set only on the final record, emitted when no augmenting path exists.
type Iteration struct {
	Number   int   `json:"iteration" yaml:"iteration"`
	Added    []int `json:"added" yaml:"added"`
	Removed  []int `json:"removed" yaml:"removed"`
	Solution []int `json:"solution" yaml:"solution"`
	Terminal bool  `json:"terminal" yaml:"terminal"`
}

// Result holds the outcome of Intersect.
//   - Solution: ascending maximum common independent set.
//   - Trace: one record per augmentation, then one terminal record.
type Result struct {
	Solution []int       `json:"solution" yaml:"solution"`
	Trace    []Iteration `json:"trace" yaml:"trace"`
}

// Augmentations returns the number of augmenting iterations (terminal record excluded).
func (r *Result) Augmentations() int {
	n := 0
	for _, it := range r.Trace {
		if !it.Terminal {
			n++
		}
	}

	return n
}

// Report is the outcome of Verify.
//   - Witness: the first ground element (ascending) that could be added to
//     the solution in both matroids, or -1 when the solution is maximal.
type Report struct {
	IndependentInM1 bool `json:"independentInM1" yaml:"independentInM1"`
	IndependentInM2 bool `json:"independentInM2" yaml:"independentInM2"`
	Maximal         bool `json:"maximal" yaml:"maximal"`
	Witness         int  `json:"witness" yaml:"witness"`
}

// OK reports whether the solution is independent in both matroids and maximal.
func (r Report) OK() bool {
	return r.IndependentInM1 && r.IndependentInM2 && r.Maximal
}
