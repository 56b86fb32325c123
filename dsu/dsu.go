package dsu

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is the panic value cause for an index outside [0, n).
var ErrIndexOutOfRange = errors.New("dsu: index out of range")

// ErrNegativeSize is the panic value cause for New with n < 0.
var ErrNegativeSize = errors.New("dsu: negative size")

// DisjointSet is a union–find forest over [0, n).
// The zero value is an empty forest; use New to size it.
type DisjointSet struct {
	parent []int
	rank   []int
	count  int // number of components
}

// New returns a forest of n singleton components.
func New(n int) *DisjointSet {
	if n < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeSize, n))
	}
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Len returns the number of indices managed by the forest.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Count returns the current number of components.
func (d *DisjointSet) Count() int { return d.count }

// Find returns the root of x's component.
//
// Two passes: the first walks up to the root, the second repoints every node
// on the walked path directly at it. Iterative, so deep chains built before
// compression cannot overflow the stack.
func (d *DisjointSet) Find(x int) int {
	d.check(x)

	// 1) locate the root
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}

	// 2) compress the path x → root
	for x != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root
}

// Union merges the components of x and y by rank.
// It reports whether a merge happened (false when already joined).
func (d *DisjointSet) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}

	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
	d.count--

	return true
}

// Connected reports whether x and y share a component.
func (d *DisjointSet) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}

func (d *DisjointSet) check(x int) {
	if x < 0 || x >= len(d.parent) {
		panic(fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, x, len(d.parent)))
	}
}
