package intersect

import (
	"fmt"
	"sort"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/matroid/matroid"
)

// groundSet is a validated, ascending ground set plus the size of the dense
// id universe [0, max+1) its bit sets are built over.
type groundSet struct {
	elems    []int
	universe int
}

// newGroundSet checks both oracles and every element, and returns the
// normalized ground set.
func newGroundSet(m1, m2 matroid.Oracle, ground []int) (groundSet, error) {
	if m1 == nil || m2 == nil {
		return groundSet{}, ErrNilOracle
	}

	elems := append([]int(nil), ground...)
	sort.Ints(elems)
	for i, e := range elems {
		if e < 0 {
			return groundSet{}, fmt.Errorf("%w: negative element %d", ErrInvalidGroundSet, e)
		}
		if i > 0 && e == elems[i-1] {
			return groundSet{}, fmt.Errorf("%w: duplicate element %d", ErrInvalidGroundSet, e)
		}
		if !m1.Contains(e) {
			return groundSet{}, fmt.Errorf("%w: %d in M1", ErrElementOutOfRange, e)
		}
		if !m2.Contains(e) {
			return groundSet{}, fmt.Errorf("%w: %d in M2", ErrElementOutOfRange, e)
		}
	}

	universe := 0
	if len(elems) > 0 {
		universe = elems[len(elems)-1] + 1
	}

	return groundSet{elems: elems, universe: universe}, nil
}

// subset converts s into a bit set over the universe, rejecting repeats and
// ids outside the ground set.
func (g groundSet) subset(s []int) (bits.Bits, error) {
	member := g.membership(g.elems)
	out := bits.New(g.universe)
	for _, e := range s {
		if e < 0 || e >= g.universe || member.Bit(e) == 0 {
			return out, fmt.Errorf("%w: %d is not a ground element", ErrInvalidGroundSet, e)
		}
		if out.Bit(e) == 1 {
			return out, fmt.Errorf("%w: duplicate element %d", ErrInvalidGroundSet, e)
		}
		out.SetBit(e, 1)
	}

	return out, nil
}

// membership returns the bit set of s; every id must be < universe.
func (g groundSet) membership(s []int) bits.Bits {
	b := bits.New(g.universe)
	for _, e := range s {
		b.SetBit(e, 1)
	}

	return b
}

// elements lists the ones of b ascending; never nil.
func elements(b bits.Bits) []int {
	out := []int{}
	b.IterateOnes(func(n int) bool {
		out = append(out, n)
		return true
	})

	return out
}
