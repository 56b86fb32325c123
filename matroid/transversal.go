package matroid

import (
	"fmt"
	"sort"
)

// Transversal is the transversal matroid of a family of sets: a subset of
// elements is independent iff its members can be matched to pairwise
// distinct sets that contain them.
//
// Elements are the left side of a bipartite graph, set indices the right
// side. An element contained in no set is a loop.
type Transversal struct {
	sets   [][]int       // sets[i] ascending, duplicates removed
	member map[int][]int // element → ascending indices of the sets holding it
}

var (
	_ Oracle = (*Transversal)(nil)
	_ Ranker = (*Transversal)(nil)
)

// NewTransversal builds the matroid of the given set family.
// Duplicate ids inside one set are collapsed.
//
// Errors: ErrNegativeElement for a negative id.
func NewTransversal(sets [][]int) (*Transversal, error) {
	t := &Transversal{
		sets:   make([][]int, len(sets)),
		member: make(map[int][]int),
	}
	for i, s := range sets {
		uniq := sortedCopy(s)
		out := uniq[:0]
		for _, x := range uniq {
			if x < 0 {
				return nil, fmt.Errorf("%w: %d in set %d", ErrNegativeElement, x, i)
			}
			if len(out) > 0 && x == out[len(out)-1] {
				continue
			}
			out = append(out, x)
			t.member[x] = append(t.member[x], i)
		}
		t.sets[i] = out
	}

	return t, nil
}

// SetCount returns the number of sets in the family.
func (t *Transversal) SetCount() int { return len(t.sets) }

// Sets returns a copy of the (normalized) set family.
func (t *Transversal) Sets() [][]int {
	out := make([][]int, len(t.sets))
	for i, s := range t.sets {
		out[i] = append([]int(nil), s...)
	}

	return out
}

// Elements returns the ascending union of all sets.
func (t *Transversal) Elements() []int {
	out := make([]int, 0, len(t.member))
	for x := range t.member {
		out = append(out, x)
	}
	sort.Ints(out)

	return out
}

// Contains reports whether e is a valid element id. Any non-negative id is
// valid; ids outside every set are loops.
func (t *Transversal) Contains(e int) bool { return e >= 0 }

// IsIndependent reports whether subset can be matched into distinct sets.
// A repeated id is dependent, as in Graphic.
//
// Complexity: O(|subset|·(|subset| + Σ|member|)) for Kuhn's algorithm.
func (t *Transversal) IsIndependent(subset []int) bool {
	m := t.newMatching()
	seen := make(map[int]bool, len(subset))
	for _, x := range subset {
		if x < 0 || seen[x] || !m.augment(x) {
			return false
		}
		seen[x] = true
	}

	return true
}

// Rank returns the size of a maximum matching of subset.
func (t *Transversal) Rank(subset []int) int {
	m := t.newMatching()
	seen := make(map[int]bool, len(subset))
	rank := 0
	for _, x := range subset {
		if x < 0 || seen[x] {
			continue
		}
		seen[x] = true
		if m.augment(x) {
			rank++
		}
	}

	return rank
}

// Circuit returns the unique circuit of subset ∪ {e}.
//
// Steps:
//  1. Match every element of subset (failure is ErrNotIndependent).
//  2. Try to augment e; success means e is addable, ErrNotDependent.
//  3. Search alternating paths from e: a set holding the current element
//     leads to the element matched to it. Every element reached this way can
//     give up its set along the path so that e gets matched, hence lies on the
//     circuit; no other element can. The first layer is the set of elements
//     directly occupying a set of e.
func (t *Transversal) Circuit(subset []int, e int) ([]int, error) {
	if !t.Contains(e) {
		return nil, fmt.Errorf("%w: %d", ErrElementOutOfRange, e)
	}

	// 1) maximum matching of subset
	m := t.newMatching()
	for _, x := range subset {
		if x < 0 {
			return nil, fmt.Errorf("%w: %d", ErrElementOutOfRange, x)
		}
		if !m.augment(x) {
			return nil, fmt.Errorf("%w: element %d cannot be matched", ErrNotIndependent, x)
		}
	}

	// 2) e must be blocked
	if m.probe(e) {
		return nil, fmt.Errorf("%w: element %d can be matched", ErrNotDependent, e)
	}

	// 3) alternating reachability from e
	seenSet := make(map[int]bool)
	circuit := []int{e}
	queue := []int{e}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		for _, s := range t.member[x] {
			if seenSet[s] {
				continue
			}
			seenSet[s] = true
			y, ok := m.owner[s]
			if !ok {
				// A free set here would be an augmenting path, ruled out in step 2.
				return nil, fmt.Errorf("%w: set %d is free", ErrNotDependent, s)
			}
			circuit = append(circuit, y)
			queue = append(queue, y)
		}
	}

	return sortedCopy(circuit), nil
}

// matching is the per-call state of Kuhn's algorithm.
type matching struct {
	t       *Transversal
	owner   map[int]int // set index → matched element
	visited map[int]bool
}

func (t *Transversal) newMatching() *matching {
	return &matching{t: t, owner: make(map[int]int)}
}

// augment tries to match x, reassigning already matched elements along an
// augmenting path. The visited marker is reset per attempt.
func (m *matching) augment(x int) bool {
	m.visited = make(map[int]bool)

	return m.try(x)
}

// probe reports whether x could be matched without keeping the result.
func (m *matching) probe(x int) bool {
	saved := make(map[int]int, len(m.owner))
	for s, y := range m.owner {
		saved[s] = y
	}
	ok := m.augment(x)
	m.owner = saved

	return ok
}

func (m *matching) try(x int) bool {
	for _, s := range m.t.member[x] {
		if m.visited[s] {
			continue
		}
		m.visited[s] = true

		y, taken := m.owner[s]
		if !taken || m.try(y) {
			m.owner[s] = x
			return true
		}
	}

	return false
}
