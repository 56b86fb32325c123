package matroid_test

import (
	"math/bits"

	"github.com/katalvlaran/matroid/matroid"
)

// subsetOf decodes mask into the ground elements whose positions are set.
func subsetOf(ground []int, mask uint) []int {
	out := make([]int, 0, bits.OnesCount(mask))
	for i, e := range ground {
		if mask&(1<<uint(i)) != 0 {
			out = append(out, e)
		}
	}

	return out
}

// bruteForest reports whether the edges form a forest by counting:
// a graph is a forest iff |E| = |V_touched| − components.
func bruteForest(n int, edges []matroid.Edge, subset []int) bool {
	adj := make(map[int][]int)
	for _, e := range subset {
		u, v := edges[e].U, edges[e].V
		if u == v {
			return false
		}
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}
	seen := make(map[int]bool)
	components := 0
	for start := range adj {
		if seen[start] {
			continue
		}
		components++
		stack := []int{start}
		seen[start] = true
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, w := range adj[u] {
				if !seen[w] {
					seen[w] = true
					stack = append(stack, w)
				}
			}
		}
	}

	return len(subset) == len(adj)-components
}

// bruteMatchable tries every assignment of subset elements to distinct sets.
func bruteMatchable(sets [][]int, subset []int) bool {
	used := make([]bool, len(sets))
	var assign func(i int) bool
	assign = func(i int) bool {
		if i == len(subset) {
			return true
		}
		for s, members := range sets {
			if used[s] || !contains(members, subset[i]) {
				continue
			}
			used[s] = true
			if assign(i + 1) {
				return true
			}
			used[s] = false
		}

		return false
	}

	return assign(0)
}

func contains(s []int, x int) bool {
	for _, y := range s {
		if y == x {
			return true
		}
	}

	return false
}

func without(s []int, x int) []int {
	out := make([]int, 0, len(s))
	for _, y := range s {
		if y != x {
			out = append(out, y)
		}
	}

	return out
}

func with(s []int, x int) []int {
	return append(append([]int(nil), s...), x)
}

// k4Edges are the six edges of the complete graph on four vertices.
var k4Edges = []matroid.Edge{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
