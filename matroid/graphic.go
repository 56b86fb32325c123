package matroid

import (
	"fmt"

	"github.com/katalvlaran/matroid/dsu"
)

// Edge is an undirected edge between vertices U and V.
type Edge struct {
	U, V int
}

// Graphic is the cycle matroid of an undirected multigraph: element i is
// edges[i], and a set of elements is independent iff its edges form a forest.
type Graphic struct {
	n     int
	edges []Edge
}

var (
	_ Oracle = (*Graphic)(nil)
	_ Ranker = (*Graphic)(nil)
)

// NewGraphic validates the edge list and returns the graphic matroid on n vertices.
// Self-loops and parallel edges are accepted; a self-loop is a one-element circuit.
//
// Errors: ErrInvalidVertexCount for n < 0, ErrVertexOutOfRange for an endpoint outside [0,n).
func NewGraphic(n int, edges []Edge) (*Graphic, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVertexCount, n)
	}
	for i, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("%w: edge %d (%d,%d) with n=%d", ErrVertexOutOfRange, i, e.U, e.V, n)
		}
	}

	return &Graphic{n: n, edges: append([]Edge(nil), edges...)}, nil
}

// VertexCount returns the number of vertices.
func (g *Graphic) VertexCount() int { return g.n }

// Edges returns a copy of the edge list; index i is element i.
func (g *Graphic) Edges() []Edge { return append([]Edge(nil), g.edges...) }

// Edge returns the endpoints of element e.
func (g *Graphic) Edge(e int) (Edge, error) {
	if !g.Contains(e) {
		return Edge{}, fmt.Errorf("%w: %d", ErrElementOutOfRange, e)
	}

	return g.edges[e], nil
}

// Contains reports whether e indexes an edge.
func (g *Graphic) Contains(e int) bool { return e >= 0 && e < len(g.edges) }

// IsIndependent reports whether the edges of subset form a forest.
// A fresh forest is built per call; the first edge whose endpoints are
// already joined closes a cycle.
//
// Complexity: O(n + |subset|·α(n)).
func (g *Graphic) IsIndependent(subset []int) bool {
	d := dsu.New(g.n)
	for _, e := range subset {
		if !g.Contains(e) {
			return false
		}
		if !d.Union(g.edges[e].U, g.edges[e].V) {
			return false
		}
	}

	return true
}

// Rank returns the size of a spanning forest of subset.
func (g *Graphic) Rank(subset []int) int {
	d := dsu.New(g.n)
	rank := 0
	for _, e := range subset {
		if g.Contains(e) && d.Union(g.edges[e].U, g.edges[e].V) {
			rank++
		}
	}

	return rank
}

// Circuit returns the cycle closed by edge e in the forest of subset.
//
// Steps:
//  1. Validate e and build connectivity of subset; a cycle in subset itself
//     is ErrNotIndependent, disjoint endpoints of e are ErrNotDependent.
//  2. BFS over subset's edges from e.U until e.V is reached, recording for
//     each vertex the edge it was discovered through.
//  3. Walk the recorded edges back from e.V to e.U; they plus e form the cycle.
//
// Complexity: O(n + |subset|).
func (g *Graphic) Circuit(subset []int, e int) ([]int, error) {
	if !g.Contains(e) {
		return nil, fmt.Errorf("%w: %d", ErrElementOutOfRange, e)
	}

	// 1) connectivity and precondition
	d := dsu.New(g.n)
	adj := make([][]int, g.n) // vertex → incident subset edges
	for _, f := range subset {
		if !g.Contains(f) {
			return nil, fmt.Errorf("%w: %d", ErrElementOutOfRange, f)
		}
		ed := g.edges[f]
		if !d.Union(ed.U, ed.V) {
			return nil, fmt.Errorf("%w: edge %d closes a cycle", ErrNotIndependent, f)
		}
		adj[ed.U] = append(adj[ed.U], f)
		adj[ed.V] = append(adj[ed.V], f)
	}
	src, dst := g.edges[e].U, g.edges[e].V
	if !d.Connected(src, dst) {
		return nil, fmt.Errorf("%w: edge %d joins separate trees", ErrNotDependent, e)
	}

	// 2) BFS over the forest
	via := make([]int, g.n) // via[v] = edge v was discovered through
	for i := range via {
		via[i] = -1
	}
	visited := make([]bool, g.n)
	visited[src] = true
	queue := []int{src}
	for len(queue) > 0 && !visited[dst] {
		u := queue[0]
		queue = queue[1:]
		for _, f := range adj[u] {
			w := g.other(f, u)
			if visited[w] {
				continue
			}
			visited[w] = true
			via[w] = f
			queue = append(queue, w)
		}
	}

	// 3) walk back dst → src
	cycle := []int{e}
	for v := dst; v != src; {
		f := via[v]
		cycle = append(cycle, f)
		v = g.other(f, v)
	}

	return sortedCopy(cycle), nil
}

// other returns the endpoint of edge f opposite to v.
func (g *Graphic) other(f, v int) int {
	if g.edges[f].U == v {
		return g.edges[f].V
	}

	return g.edges[f].U
}
