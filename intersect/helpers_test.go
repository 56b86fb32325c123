package intersect_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matroid/matroid"
)

// instance is a graphic/transversal pair over the edge indices of the graph.
type instance struct {
	name  string
	n     int
	edges []matroid.Edge
	sets  [][]int
}

// build returns both oracles and the ground set 0..len(edges)-1.
func (in instance) build(t testing.TB) (*matroid.Graphic, *matroid.Transversal, []int) {
	t.Helper()
	g, err := matroid.NewGraphic(in.n, in.edges)
	require.NoError(t, err, in.name)
	tm, err := matroid.NewTransversal(in.sets)
	require.NoError(t, err, in.name)
	ground := make([]int, len(in.edges))
	for i := range ground {
		ground[i] = i
	}

	return g, tm, ground
}

func edges(pairs ...[2]int) []matroid.Edge {
	out := make([]matroid.Edge, len(pairs))
	for i, p := range pairs {
		out[i] = matroid.Edge{U: p[0], V: p[1]}
	}

	return out
}

// catalog holds small graph/family pairs covering paths, cycles, stars,
// trees, wheels, ladders and prisms against partition-like families.
var catalog = []instance{
	{"path P4", 4, edges([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}), [][]int{{0, 1}, {1, 2}, {2, 3}}},
	{"triangle K3", 3, edges([2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2}), [][]int{{0}, {1}, {2}}},
	{"bipartite K2,3", 5, edges([2]int{0, 2}, [2]int{0, 3}, [2]int{0, 4}, [2]int{1, 2}, [2]int{1, 3}, [2]int{1, 4}), [][]int{{0, 1, 2}, {3, 4, 5}}},
	{"square C4", 4, edges([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0}), [][]int{{0, 1}, {1, 2}, {2, 3}, {0, 3}}},
	{"star S4", 5, edges([2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{0, 4}), [][]int{{0}, {0, 1}, {0, 2}, {0, 3}}},
	{"two triangles", 6, edges([2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2}, [2]int{3, 4}, [2]int{4, 5}, [2]int{3, 5}), [][]int{{0, 3}, {1, 4}, {2, 5}}},
	{"pentagon C5", 5, edges([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 0}), [][]int{{0, 1}, {2, 3}, {4}}},
	{"pentagon with chord", 5, edges([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 0}, [2]int{0, 2}), [][]int{{0}, {1}, {2}, {3, 4, 5}}},
	{"bridged triangles", 7, edges([2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 5}, [2]int{3, 5}), [][]int{{0, 1, 2}, {3}, {4, 5, 6}}},
	{"complete K4", 4, edges([2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{1, 2}, [2]int{1, 3}, [2]int{2, 3}), [][]int{{0, 1, 2}, {3, 4, 5}}},
	{"disjoint paths", 6, edges([2]int{0, 1}, [2]int{1, 2}, [2]int{3, 4}, [2]int{4, 5}), [][]int{{0, 1}, {2, 3}, {1, 2}, {3, 4}}},
	{"binary tree", 7, edges([2]int{0, 1}, [2]int{0, 2}, [2]int{1, 3}, [2]int{1, 4}, [2]int{2, 5}, [2]int{2, 6}), [][]int{{0}, {1, 2}, {3, 4, 5, 6}}},
	{"wheel W4", 5, edges([2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{0, 4}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 1}), [][]int{{0, 1, 2, 3}, {4, 5, 6, 7}}},
	{"ladder 2x3", 6, edges([2]int{0, 1}, [2]int{1, 2}, [2]int{3, 4}, [2]int{4, 5}, [2]int{0, 3}, [2]int{1, 4}, [2]int{2, 5}), [][]int{{0, 1, 2}, {3, 4, 5, 6}}},
	{"prism", 6, edges([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{3, 4}, [2]int{4, 5}, [2]int{5, 3}, [2]int{0, 3}, [2]int{1, 4}, [2]int{2, 5}), [][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}}},
}

// bruteMaxCommon enumerates every subset of ground and returns the size of
// the largest one independent in both oracles.
func bruteMaxCommon(m1, m2 matroid.Oracle, ground []int) int {
	best := 0
	for mask := uint(0); mask < 1<<uint(len(ground)); mask++ {
		var s []int
		for i, e := range ground {
			if mask&(1<<uint(i)) != 0 {
				s = append(s, e)
			}
		}
		if len(s) > best && m1.IsIndependent(s) && m2.IsIndependent(s) {
			best = len(s)
		}
	}

	return best
}

// randomInstance draws a multigraph with m edges on n vertices and k random
// sets over the edge indices.
func randomInstance(r *rand.Rand, n, m, k int) instance {
	in := instance{name: fmt.Sprintf("random n=%d m=%d k=%d", n, m, k), n: n}
	for i := 0; i < m; i++ {
		in.edges = append(in.edges, matroid.Edge{U: r.Intn(n), V: r.Intn(n)})
	}
	in.sets = make([][]int, k)
	for i := range in.sets {
		for e := 0; e < m; e++ {
			if r.Intn(3) == 0 {
				in.sets[i] = append(in.sets[i], e)
			}
		}
	}

	return in
}

// uniform is the uniform matroid U(k): any set of at most k elements is
// independent. It stands in for a third oracle kind in tests.
type uniform struct {
	k, size int
}

func (u uniform) Contains(e int) bool             { return e >= 0 && e < u.size }
func (u uniform) IsIndependent(subset []int) bool { return len(subset) <= u.k }
func (u uniform) Circuit(subset []int, e int) ([]int, error) {
	if len(subset) < u.k {
		return nil, matroid.ErrNotDependent
	}
	out := append(append([]int(nil), subset...), e)

	return out, nil
}

// liar claims every pair is dependent yet refuses to name a circuit.
type liar struct{}

func (liar) Contains(e int) bool                  { return e >= 0 }
func (liar) IsIndependent(subset []int) bool      { return len(subset) <= 1 }
func (liar) Circuit(_ []int, _ int) ([]int, error) { return nil, matroid.ErrNotDependent }

// stray claims every pair is dependent and answers Circuit with whatever
// circuit returns, valid or not.
type stray struct {
	circuit func(subset []int, e int) []int
}

func (stray) Contains(e int) bool             { return e >= 0 }
func (stray) IsIndependent(subset []int) bool { return len(subset) <= 1 }

func (o stray) Circuit(subset []int, e int) ([]int, error) {
	return o.circuit(subset, e), nil
}

// applyIteration returns prev with added inserted and removed deleted, ascending.
func applyIteration(prev, added, removed []int) []int {
	set := make(map[int]bool)
	for _, e := range prev {
		set[e] = true
	}
	for _, e := range added {
		set[e] = true
	}
	for _, e := range removed {
		delete(set, e)
	}
	out := []int{}
	for e := 0; len(out) < len(set); e++ {
		if set[e] {
			out = append(out, e)
		}
	}

	return out
}
