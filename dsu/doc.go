// Package dsu provides a dense disjoint-set (union–find) forest over the
// integer indices [0, n).
//
// What
//
//   - New(n) creates n singleton components.
//   - Find(x) returns the canonical root of x and repoints every node it
//     walked through directly at that root (full path compression).
//   - Union(x, y) links the two roots by rank: the shallower tree goes under
//     the deeper one, ties attach y's root under x's and bump x's rank.
//   - Connected, Count and Len are read helpers on top of Find.
//
// Why
//
//	Cycle detection in the graphic matroid oracle asks "are u and v already in
//	one component?" once per edge. With both heuristics every operation runs
//	in amortized O(α(n)).
//
// Errors
//
//	Indices are trusted. An index outside [0, n) or a negative size is a
//	programming error and panics with an error wrapping ErrIndexOutOfRange or
//	ErrNegativeSize; there is nothing for a caller to recover from.
//
// Complexity
//
//   - Time:   O(n) for New, amortized O(α(n)) for Find/Union.
//   - Memory: O(n) (parent and rank slices).
package dsu
