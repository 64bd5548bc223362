package circuit

// Merge is one row of a single-linkage dendrogram: the clusters Left and
// Right joined at Distance into a cluster of Size points.
type Merge struct {
	Left     int
	Right    int
	Distance uint64
	Size     int
}

// Linkage converts spanning tree edges, in the order they were applied, into
// a single-linkage dendrogram. Points keep their index as cluster ID; the
// cluster created by row k gets ID n+k, the same scheme scipy's linkage
// output uses.
func Linkage(tree []Edge, n int) []Merge {
	if len(tree) == 0 {
		return nil
	}

	uf := NewUnionFind(n)
	label := make([]int, n)
	for i := range label {
		label[i] = i
	}

	result := make([]Merge, 0, len(tree))
	for k, e := range tree {
		a, b := uf.Find(e.U), uf.Find(e.V)
		result = append(result, Merge{
			Left:     label[a],
			Right:    label[b],
			Distance: e.Distance,
			Size:     uf.Size(a) + uf.Size(b),
		})
		root, _ := uf.Union(a, b)
		label[root] = n + k
	}
	return result
}
