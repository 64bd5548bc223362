package circuit

// UnionFind implements a disjoint-set data structure with path compression
// and union by size over the elements 0..n-1. It tracks the number of
// distinct components so connectivity can be checked in O(1).
type UnionFind struct {
	parent     []int
	size       []int
	components int
}

// NewUnionFind creates a UnionFind with n singleton components.
func NewUnionFind(n int) *UnionFind {
	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = -1 // -1 means "is a root"
		size[i] = 1
	}
	return &UnionFind{
		parent:     parent,
		size:       size,
		components: n,
	}
}

// Find returns the root of the set containing x, with path compression.
func (uf *UnionFind) Find(x int) int {
	// Walk to the root.
	root := x
	for uf.parent[root] != -1 {
		root = uf.parent[root]
	}
	// Path compression: point all nodes along the path directly to root.
	for uf.parent[x] != -1 {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// Union merges the sets containing x and y by attaching the smaller tree
// under the larger. It returns the resulting root and whether two distinct
// sets were merged; joining already-joined elements is a no-op.
func (uf *UnionFind) Union(x, y int) (root int, merged bool) {
	rootX := uf.Find(x)
	rootY := uf.Find(y)
	if rootX == rootY {
		return rootX, false
	}

	// Attach smaller to larger.
	if uf.size[rootX] < uf.size[rootY] {
		rootX, rootY = rootY, rootX
	}
	uf.parent[rootY] = rootX
	uf.size[rootX] += uf.size[rootY]
	uf.components--
	return rootX, true
}

// Connected reports whether x and y are in the same set.
func (uf *UnionFind) Connected(x, y int) bool {
	return uf.Find(x) == uf.Find(y)
}

// Size returns the number of elements in the set containing x.
func (uf *UnionFind) Size(x int) int {
	return uf.size[uf.Find(x)]
}

// Components returns the number of distinct sets.
func (uf *UnionFind) Components() int { return uf.components }
