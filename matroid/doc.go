// Package matroid provides independence oracles for two concrete matroid
// representations behind one interface, Oracle.
//
// What
//
//   - Graphic: ground set = edge indices of an undirected multigraph;
//     independent sets are forests. Independence uses a fresh dsu forest per
//     query; Circuit walks the unique forest path between the endpoints of
//     the probe edge.
//   - Transversal: ground set = elements of a family of sets; independent
//     sets are partial transversals (matchable into distinct sets).
//     Independence runs Kuhn's augmenting-path matching; Circuit follows
//     alternating paths out of the blocked element.
//   - Rank: generic greedy rank for any Oracle, with a Ranker fast path that
//     both concrete types implement.
//
// Why
//
//	The intersection engine only ever asks two questions: "is this set
//	independent?" and "which elements does e conflict with?". Keeping those
//	behind Oracle lets new matroid kinds plug in without touching the engine.
//
// Statelessness
//
//	No query retains matching or union–find state; every call rebuilds what it
//	needs from the immutable construction-time data. That makes oracles safe
//	to share across goroutines.
//
// Errors
//
//   - ErrInvalidVertexCount, ErrVertexOutOfRange, ErrNegativeElement at construction.
//   - ErrNotIndependent, ErrNotDependent when Circuit's precondition does not hold.
//   - ErrElementOutOfRange for ids the oracle does not know.
package matroid
