// Package matroid is the module root for matroid intersection: given two
// matroids over one ground set, find a largest set independent in both.
//
// What is in the module?
//
//	• Oracles:        graphic (forests of a multigraph) and transversal (partial
//	                  transversals of a set family) matroids, behind one interface
//	• Intersection:   shortest augmenting paths in the exchange digraph, with a
//	                  full per-iteration trace and an independent verifier
//	• Instances:      YAML/JSON problem files, graph generators, a small catalog
//	• Command line:   matroidx solve | verify | catalog
//
// Packages:
//
//	dsu/            disjoint-set forest with path compression and union by rank
//	matroid/        Oracle interface, Graphic and Transversal oracles, Rank
//	intersect/      Intersect, FindAugmentingPath, Verify and their options
//	instance/       instance files, generators (Complete, Cycle, Wheel, …), Catalog
//	internal/cli/   cobra commands behind cmd/matroidx
//
// Quick ASCII example:
//
//	    0───1        edges 0:(0,1) 1:(1,2) 2:(0,2)
//	     \ /         sets  {0} {1} {2}
//	      2
//
//	The triangle admits forests of two edges and every edge has its own set,
//	so a maximum common independent set has size 2, e.g. {0,1}.
//
//	go install github.com/katalvlaran/matroid/cmd/matroidx@latest
package matroid
