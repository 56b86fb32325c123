// Package instance describes matroid intersection problems as data: two
// matroid descriptions, an optional ground set and an optional expected
// answer. Instances are read from YAML (or JSON) documents and turned into
// oracles with Build.
//
// File format:
//
//	name: triangle
//	ground: [0, 1, 2]      # optional; defaults to the graphic edge indices
//	m1: {kind: graphic, vertices: 3, edges: [[0,1],[1,2],[0,2]]}
//	m2: {kind: transversal, sets: [[0],[1],[2]]}
//	expected: 2            # optional
//
// A stream may hold several documents separated by "---"; ParseAll and Load
// return them in order. Unknown fields are rejected.
//
// The generators (Complete, Cycle, Path, Star, Wheel, Prism, Ladder,
// CompleteBipartite) emit graphic descriptions with a fixed, documented
// edge order, so transversal families can refer to edges by index.
// Partition builds a transversal family from one block label per element.
package instance
