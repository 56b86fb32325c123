package instance

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/matroid/matroid"
)

// Problem is an Instance turned into oracles, ready for intersect.Intersect.
type Problem struct {
	M1, M2 matroid.Oracle
	Ground []int
}

// Build constructs both oracles and resolves the ground set.
//
// Without an explicit ground the edge indices of the first graphic matroid
// are used; with two transversal matroids, every element named by either
// family. Constructor errors are wrapped in ErrInvalidInstance.
func (in *Instance) Build() (*Problem, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	m1, err := in.M1.Oracle()
	if err != nil {
		return nil, fmt.Errorf("m1: %w", err)
	}
	m2, err := in.M2.Oracle()
	if err != nil {
		return nil, fmt.Errorf("m2: %w", err)
	}

	p := &Problem{M1: m1, M2: m2, Ground: append([]int(nil), in.Ground...)}
	if in.Ground == nil {
		p.Ground = in.defaultGround()
	}

	return p, nil
}

// Oracle builds the matroid the description names.
func (m Matroid) Oracle() (matroid.Oracle, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}

	var (
		o   matroid.Oracle
		err error
	)
	switch m.Kind {
	case KindGraphic:
		o, err = matroid.NewGraphic(m.Vertices, m.edgeList())
	case KindTransversal:
		o, err = matroid.NewTransversal(m.Sets)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInstance, err)
	}

	return o, nil
}

func (m Matroid) edgeList() []matroid.Edge {
	out := make([]matroid.Edge, len(m.Edges))
	for i, e := range m.Edges {
		out[i] = matroid.Edge{U: e[0], V: e[1]}
	}

	return out
}

func (in *Instance) defaultGround() []int {
	for _, m := range []Matroid{in.M1, in.M2} {
		if m.Kind == KindGraphic {
			g := make([]int, len(m.Edges))
			for i := range g {
				g[i] = i
			}
			return g
		}
	}

	seen := make(map[int]bool)
	g := []int{}
	for _, fam := range [][][]int{in.M1.Sets, in.M2.Sets} {
		for _, s := range fam {
			for _, e := range s {
				if !seen[e] {
					seen[e] = true
					g = append(g, e)
				}
			}
		}
	}
	sort.Ints(g)

	return g
}

// SolutionEdges returns the endpoint pairs of solution in the first graphic
// matroid of the instance, or nil when neither matroid is graphic. Ids
// outside the edge list are skipped.
func (in *Instance) SolutionEdges(solution []int) [][2]int {
	for _, m := range []Matroid{in.M1, in.M2} {
		if m.Kind != KindGraphic {
			continue
		}
		out := make([][2]int, 0, len(solution))
		for _, e := range solution {
			if e >= 0 && e < len(m.Edges) {
				out = append(out, [2]int{m.Edges[e][0], m.Edges[e][1]})
			}
		}
		return out
	}

	return nil
}

// Check compares a solution size with Expected. Instances without an
// expected size accept any size.
func (in *Instance) Check(size int) error {
	if in.Expected == nil || *in.Expected == size {
		return nil
	}

	return fmt.Errorf("%w: %s: got %d, want %d", ErrUnexpectedSize, in.Name, size, *in.Expected)
}
