package intersect

import (
	"context"
	"fmt"

	"github.com/soniakeys/bits"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/matroid/matroid"
)

// candidate classifies one element e ∉ I for the current solution I.
type candidate struct {
	source   bool      // I+e independent in M1
	sink     bool      // I+e independent in M2
	circuit1 bits.Bits // C1(I,e), only when !source
	circuit2 bits.Bits // C2(I,e), only when !sink
}

// finder holds what stays fixed across the iterations of one run.
type finder struct {
	m1, m2  matroid.Oracle
	ground  groundSet
	ctx     context.Context
	workers int
}

// search is the mutable state of one BFS over the exchange digraph.
// It is built from scratch per iteration and discarded afterwards.
type search struct {
	*finder
	in      bits.Bits   // membership of I
	members []int       // I, ascending
	outside []int       // ground \ I, ascending
	cands   []candidate // indexed by element id
	visited bits.Bits
	parent  []int // predecessor on the BFS tree, -1 for seeds
	queue   []int
}

// FindAugmentingPath returns a shortest augmenting path for current in the
// exchange digraph of m1 and m2, or nil when none exists (current is then a
// maximum common independent set).
//
// current must be a subset of ground and independent in both oracles.
// Only WithContext and WithWorkers are meaningful here.
func FindAugmentingPath(m1, m2 matroid.Oracle, current, ground []int, opts ...Option) (*Path, error) {
	o := resolve(opts)
	if o.err != nil {
		return nil, o.err
	}
	gs, err := newGroundSet(m1, m2, ground)
	if err != nil {
		return nil, err
	}
	in, err := gs.subset(current)
	if err != nil {
		return nil, err
	}
	members := elements(in)
	if !m1.IsIndependent(members) || !m2.IsIndependent(members) {
		return nil, fmt.Errorf("%w: current set is not a common independent set", ErrInvalidGroundSet)
	}

	f := &finder{m1: m1, m2: m2, ground: gs, ctx: o.Ctx, workers: o.Workers}

	return f.find(in)
}

// find runs one iteration's search.
//
// Steps:
//  1. Classify every e ∉ I as source/sink and collect its fundamental
//     circuits (parallel across candidates, bounded by workers).
//  2. No sources → no path.
//  3. BFS from all sources in ascending order; a vertex is marked visited
//     when first discovered and expanded at most once.
//  4. The first dequeued sink ends the search; its BFS-tree path is the
//     shortest augmenting path.
func (f *finder) find(in bits.Bits) (*Path, error) {
	s := &search{
		finder:  f,
		in:      in,
		members: elements(in),
		cands:   make([]candidate, f.ground.universe),
		visited: bits.New(f.ground.universe),
		parent:  make([]int, f.ground.universe),
	}
	for _, e := range f.ground.elems {
		if in.Bit(e) == 0 {
			s.outside = append(s.outside, e)
		}
	}

	// 1) classification
	if err := s.classify(); err != nil {
		return nil, err
	}

	// 2) seeds
	for _, e := range s.outside {
		if s.cands[e].source {
			s.discover(e, -1)
		}
	}
	if len(s.queue) == 0 {
		return nil, nil
	}

	// 3) BFS
	for len(s.queue) > 0 {
		if err := f.ctx.Err(); err != nil {
			return nil, err
		}
		curr := s.queue[0]
		s.queue = s.queue[1:]

		// 4) sink reached
		if s.in.Bit(curr) == 0 && s.cands[curr].sink {
			return s.path(curr), nil
		}
		s.expand(curr)
	}

	return nil, nil
}

// classify fills s.cands for every element outside I.
// Each goroutine writes only its own slot of s.cands.
func (s *search) classify() error {
	g, ctx := errgroup.WithContext(s.ctx)
	g.SetLimit(s.workers)
	for _, e := range s.outside {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := s.candidateFor(e)
			if err != nil {
				return err
			}
			s.cands[e] = c

			return nil
		})
	}

	return g.Wait()
}

// candidateFor asks both oracles about I+e.
func (s *search) candidateFor(e int) (candidate, error) {
	probe := make([]int, 0, len(s.members)+1)
	probe = append(append(probe, s.members...), e)

	c := candidate{
		source: s.m1.IsIndependent(probe),
		sink:   s.m2.IsIndependent(probe),
	}
	if !c.source {
		cyc, err := s.m1.Circuit(s.members, e)
		if err != nil {
			return c, fmt.Errorf("%w: M1 circuit for %d: %w", ErrInvariantViolation, e, err)
		}
		if c.circuit1, err = s.circuitBits(cyc, e); err != nil {
			return c, fmt.Errorf("M1 circuit for %d: %w", e, err)
		}
	}
	if !c.sink {
		cyc, err := s.m2.Circuit(s.members, e)
		if err != nil {
			return c, fmt.Errorf("%w: M2 circuit for %d: %w", ErrInvariantViolation, e, err)
		}
		if c.circuit2, err = s.circuitBits(cyc, e); err != nil {
			return c, fmt.Errorf("M2 circuit for %d: %w", e, err)
		}
	}

	return c, nil
}

// circuitBits turns an oracle circuit for I+e into a bit set. The circuit
// must contain e and otherwise only members of I.
func (s *search) circuitBits(cyc []int, e int) (bits.Bits, error) {
	hasE := false
	for _, x := range cyc {
		switch {
		case x == e:
			hasE = true
		case x < 0 || x >= s.ground.universe || s.in.Bit(x) == 0:
			return bits.Bits{}, fmt.Errorf("%w: element %d of %v is not in the current solution", ErrInvariantViolation, x, cyc)
		}
	}
	if !hasE {
		return bits.Bits{}, fmt.Errorf("%w: %v does not contain %d", ErrInvariantViolation, cyc, e)
	}

	return s.ground.membership(cyc), nil
}

// expand enqueues every undiscovered out-neighbour of curr.
//
//	curr ∈ I: curr → x for x ∉ I with curr ∈ C1(I,x), i.e. I−curr+x ∈ M1.
//	curr ∉ I: curr → y for y ∈ I with y ∈ C2(I,curr), i.e. I−y+curr ∈ M2.
//
// Sources have no C1 and are discovered as seeds, so they are never targets
// of the first rule; curr ∉ I is not a sink here, so C2(I,curr) exists.
func (s *search) expand(curr int) {
	if s.in.Bit(curr) == 1 {
		for _, x := range s.outside {
			c := &s.cands[x]
			if s.visited.Bit(x) == 0 && !c.source && c.circuit1.Bit(curr) == 1 {
				s.discover(x, curr)
			}
		}
		return
	}

	c := &s.cands[curr]
	for _, y := range s.members {
		if s.visited.Bit(y) == 0 && c.circuit2.Bit(y) == 1 {
			s.discover(y, curr)
		}
	}
}

// discover marks v visited, records its parent and enqueues it.
func (s *search) discover(v, parent int) {
	s.visited.SetBit(v, 1)
	s.parent[v] = parent
	s.queue = append(s.queue, v)
}

// path rebuilds the BFS-tree path ending at end and splits it into the
// elements to add and to remove.
func (s *search) path(end int) *Path {
	var rev []int
	for v := end; v != -1; v = s.parent[v] {
		rev = append(rev, v)
	}

	p := &Path{
		Vertices: make([]int, 0, len(rev)),
		Add:      []int{},
		Remove:   []int{},
	}
	for i := len(rev) - 1; i >= 0; i-- {
		v := rev[i]
		p.Vertices = append(p.Vertices, v)
		if s.in.Bit(v) == 1 {
			p.Remove = append(p.Remove, v)
		} else {
			p.Add = append(p.Add, v)
		}
	}

	return p
}
