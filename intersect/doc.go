// Package intersect provides the augmenting-path algorithm for matroid
// intersection: given two matroid oracles over one ground set it returns a
// maximum-cardinality set independent in both, together with a trace of how
// it was grown.
//
// What
//
//   - Intersect(m1, m2, ground, opts...) starts from I = ∅ and repeats:
//     find a shortest augmenting path, apply it, record it. When no path is
//     left it appends a terminal record and returns.
//   - FindAugmentingPath(m1, m2, current, ground, opts...) exposes one
//     iteration of the search for callers that drive the loop themselves.
//   - Verify(m1, m2, solution, ground) re-checks feasibility and maximality.
//
// The exchange digraph
//
//	Built fresh for every iteration from the current solution I:
//	  S = { e ∉ I : I+e independent in M1 }   (sources)
//	  T = { e ∉ I : I+e independent in M2 }   (sinks)
//	  y → x   for y ∈ I, x ∉ I when I−y+x is independent in M1
//	  x → y   for x ∉ I, y ∈ I when I−y+x is independent in M2
//	Arcs are read off fundamental circuits: for x ∉ S, I−y+x ∈ M1 exactly
//	when y lies on C1(I,x), and symmetrically for M2. A breadth-first search
//	from all of S to the first vertex in T yields a shortest path, and
//	swapping along a shortest path always gives a common independent set
//	one element larger. No path means I is maximum.
//
// Determinism
//
//	The ground set is sorted, sources are seeded in ascending order and
//	neighbours are scanned in ascending order, so the solution and the trace
//	are fully reproducible, also with WithWorkers(n > 1).
//
// Options
//
//   - WithContext(ctx):      abandon a run between iterations and oracle queries.
//   - WithWorkers(n):        classify candidates on up to n goroutines.
//   - WithMaxIterations(n):  safety cap on augmentations (default len(ground)).
//   - WithLogger(l):         logrus logger for per-iteration debug entries.
//   - WithOnIteration(fn):   hook receiving each trace record.
//
// Errors
//
//   - ErrNilOracle, ErrInvalidGroundSet, ErrElementOutOfRange  bad input.
//   - ErrOptionViolation                                       bad option.
//   - ErrInvariantViolation, ErrIterationLimit                 defect in an oracle or the engine.
//
// Complexity (r = min rank, m = |ground|, Q = cost of one oracle query)
//
//   - Time:   O(r · m · Q) oracle work plus O(r · m · |I|) for the BFS.
//   - Memory: O(m²/64) per iteration for the circuit bit sets.
package intersect
