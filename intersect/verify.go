package intersect

import (
	"github.com/katalvlaran/matroid/matroid"
)

// Verify checks that solution is independent in m1 and m2 and that no other
// ground element can be added to it in both matroids at once.
// It performs no mutation and never modifies its arguments.
//
// Errors: ErrNilOracle, ErrInvalidGroundSet, ErrElementOutOfRange, and
// ErrInvalidGroundSet when solution is not a subset of ground.
//
// Complexity: O(|ground|) independence queries per oracle.
func Verify(m1, m2 matroid.Oracle, solution, ground []int) (Report, error) {
	gs, err := newGroundSet(m1, m2, ground)
	if err != nil {
		return Report{}, err
	}
	in, err := gs.subset(solution)
	if err != nil {
		return Report{}, err
	}

	members := elements(in)
	r := Report{
		IndependentInM1: m1.IsIndependent(members),
		IndependentInM2: m2.IsIndependent(members),
		Maximal:         true,
		Witness:         -1,
	}
	probe := make([]int, len(members)+1)
	copy(probe, members)
	for _, e := range gs.elems {
		if in.Bit(e) == 1 {
			continue
		}
		probe[len(members)] = e
		if m1.IsIndependent(probe) && m2.IsIndependent(probe) {
			r.Maximal = false
			r.Witness = e
			break
		}
	}

	return r, nil
}
