package instance

import (
	"fmt"
)

// Generator names and minimum sizes, used as error context.
const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	methodCycle             = "Cycle"
	methodPath              = "Path"
	methodStar              = "Star"
	methodWheel             = "Wheel"
	methodPrism             = "Prism"
	methodLadder            = "Ladder"

	minCompleteNodes = 1
	minCycleNodes    = 3
	minPathNodes     = 2
	minStarNodes     = 2
	minWheelNodes    = 4 // rim cycle of n-1 ≥ 3
	minPrismSide     = 3
	minLadderRungs   = 2
)

func tooFew(method string, n, min int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
}

func graphic(n int, edges [][]int) Matroid {
	return Matroid{Kind: KindGraphic, Vertices: n, Edges: edges}
}

// Complete returns Kₙ. Edges (i,j) for i<j in lexicographic order.
func Complete(n int) (Matroid, error) {
	if n < minCompleteNodes {
		return Matroid{}, tooFew(methodComplete, n, minCompleteNodes)
	}
	edges := make([][]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, []int{i, j})
		}
	}

	return graphic(n, edges), nil
}

// CompleteBipartite returns K_{n1,n2} with parts [0,n1) and [n1,n1+n2).
// Edges are emitted part-1 vertex first, ascending.
func CompleteBipartite(n1, n2 int) (Matroid, error) {
	if n1 < 1 || n2 < 1 {
		return Matroid{}, fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ 1): %w",
			methodCompleteBipartite, n1, n2, ErrTooFewVertices)
	}
	edges := make([][]int, 0, n1*n2)
	for u := 0; u < n1; u++ {
		for v := n1; v < n1+n2; v++ {
			edges = append(edges, []int{u, v})
		}
	}

	return graphic(n1+n2, edges), nil
}

// Cycle returns Cₙ: edges (i,i+1) for i<n-1, then the closing edge (n-1,0).
func Cycle(n int) (Matroid, error) {
	if n < minCycleNodes {
		return Matroid{}, tooFew(methodCycle, n, minCycleNodes)
	}
	m := ring(0, n)
	m.Vertices = n

	return m, nil
}

// Path returns Pₙ: edges (i,i+1) for i<n-1.
func Path(n int) (Matroid, error) {
	if n < minPathNodes {
		return Matroid{}, tooFew(methodPath, n, minPathNodes)
	}
	edges := make([][]int, 0, n-1)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, []int{i, i + 1})
	}

	return graphic(n, edges), nil
}

// Star returns a star on n vertices with hub 0: edges (0,i) for 0<i<n.
func Star(n int) (Matroid, error) {
	if n < minStarNodes {
		return Matroid{}, tooFew(methodStar, n, minStarNodes)
	}

	return graphic(n, spokes(0, 1, n)), nil
}

// Wheel returns Wₙ: hub 0 with spokes to the rim 1..n-1, then the rim cycle
// (1,2),…,(n-2,n-1),(n-1,1).
func Wheel(n int) (Matroid, error) {
	if n < minWheelNodes {
		return Matroid{}, tooFew(methodWheel, n, minWheelNodes)
	}
	edges := spokes(0, 1, n)
	edges = append(edges, ring(1, n).Edges...)

	return graphic(n, edges), nil
}

// Prism returns the n-prism: the cycle on [0,n), the cycle on [n,2n), then
// the rungs (i,n+i).
func Prism(n int) (Matroid, error) {
	if n < minPrismSide {
		return Matroid{}, tooFew(methodPrism, n, minPrismSide)
	}
	edges := ring(0, n).Edges
	edges = append(edges, ring(n, 2*n).Edges...)
	edges = append(edges, rungs(n)...)

	return graphic(2*n, edges), nil
}

// Ladder returns the 2×n ladder: the rail path on [0,n), the rail path on
// [n,2n), then the rungs (i,n+i).
func Ladder(n int) (Matroid, error) {
	if n < minLadderRungs {
		return Matroid{}, tooFew(methodLadder, n, minLadderRungs)
	}
	var edges [][]int
	for base := 0; base <= n; base += n {
		for i := base; i+1 < base+n; i++ {
			edges = append(edges, []int{i, i + 1})
		}
	}
	edges = append(edges, rungs(n)...)

	return graphic(2*n, edges), nil
}

// Partition returns the transversal description of the partition matroid
// in which element i belongs to block labels[i]; a negative label leaves the
// element in no block. Blocks are numbered 0..max(labels).
func Partition(labels []int) Matroid {
	top := -1
	for _, l := range labels {
		if l > top {
			top = l
		}
	}
	sets := make([][]int, top+1)
	for i := range sets {
		sets[i] = []int{}
	}
	for e, l := range labels {
		if l >= 0 {
			sets[l] = append(sets[l], e)
		}
	}

	return Matroid{Kind: KindTransversal, Sets: sets}
}

// ring returns the cycle through lo..hi-1; Vertices is left for the caller.
func ring(lo, hi int) Matroid {
	edges := make([][]int, 0, hi-lo)
	for i := lo; i+1 < hi; i++ {
		edges = append(edges, []int{i, i + 1})
	}
	edges = append(edges, []int{hi - 1, lo})

	return Matroid{Kind: KindGraphic, Edges: edges}
}

func spokes(hub, lo, hi int) [][]int {
	edges := make([][]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		edges = append(edges, []int{hub, i})
	}

	return edges
}

func rungs(n int) [][]int {
	edges := make([][]int, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, []int{i, n + i})
	}

	return edges
}
