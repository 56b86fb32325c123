package instance

// Catalog returns fifteen small graphic/transversal instances with their
// maximum common independent set sizes. Each call returns fresh values.
//
// Ground sets default to the edge indices, so the families refer to edges.
func Catalog() []*Instance {
	return []*Instance{
		pair("path P4", must(Path(4)), sets([]int{0, 1}, []int{1, 2}, []int{2, 3}), 3),
		pair("triangle K3", must(Cycle(3)), Partition([]int{0, 1, 2}), 2),
		pair("bipartite K2,3", must(CompleteBipartite(2, 3)), Partition([]int{0, 0, 0, 1, 1, 1}), 2),
		pair("square C4", must(Cycle(4)), sets([]int{0, 1}, []int{1, 2}, []int{2, 3}, []int{0, 3}), 3),
		pair("star S4", must(Star(5)), sets([]int{0}, []int{0, 1}, []int{0, 2}, []int{0, 3}), 4),
		pair("two triangles", graphic(6, [][]int{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}}),
			sets([]int{0, 3}, []int{1, 4}, []int{2, 5}), 3),
		pair("pentagon C5", must(Cycle(5)), Partition([]int{0, 0, 1, 1, 2}), 3),
		pair("pentagon with chord", graphic(5, [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, {0, 2}}),
			Partition([]int{0, 1, 2, 3, 3, 3}), 4),
		pair("bridged triangles", graphic(7, [][]int{{0, 1}, {1, 2}, {0, 2}, {2, 3}, {3, 4}, {4, 5}, {3, 5}}),
			Partition([]int{0, 0, 0, 1, 2, 2, 2}), 3),
		pair("complete K4", must(Complete(4)), Partition([]int{0, 0, 0, 1, 1, 1}), 2),
		pair("disjoint paths", graphic(6, [][]int{{0, 1}, {1, 2}, {3, 4}, {4, 5}}),
			sets([]int{0, 1}, []int{2, 3}, []int{1, 2}, []int{3, 4}), 4),
		pair("binary tree", graphic(7, [][]int{{0, 1}, {0, 2}, {1, 3}, {1, 4}, {2, 5}, {2, 6}}),
			Partition([]int{0, 1, 1, 2, 2, 2, 2}), 3),
		pair("wheel W4", must(Wheel(5)), Partition([]int{0, 0, 0, 0, 1, 1, 1, 1}), 2),
		pair("ladder 2x3", must(Ladder(3)), Partition([]int{0, 0, 0, 1, 1, 1, 1}), 2),
		pair("prism", must(Prism(3)), Partition([]int{0, 0, 0, 1, 1, 1, 2, 2, 2}), 3),
	}
}

func pair(name string, m1, m2 Matroid, expected int) *Instance {
	return &Instance{Name: name, M1: m1, M2: m2, Expected: &expected}
}

func sets(s ...[]int) Matroid {
	return Matroid{Kind: KindTransversal, Sets: s}
}

// must unwraps a generator called with constant, valid sizes.
func must(m Matroid, err error) Matroid {
	if err != nil {
		panic(err)
	}

	return m
}
