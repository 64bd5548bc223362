package circuit

import "fmt"

// SpanResult describes how the point set became a single component.
type SpanResult struct {
	// Terminal is the edge whose union left exactly one component.
	Terminal Edge
	// Applied is the number of edges consumed from the ranker, including
	// edges whose endpoints were already connected.
	Applied int
	// Tree holds the edges that merged two components, in the order they were
	// applied. It is a minimum spanning tree with n-1 edges ending in Terminal.
	Tree []Edge
}

// ConnectAll applies edges from r closest first to a UnionFind over n points
// and stops as soon as a single component remains. Edges whose endpoints are
// already connected are consumed as no-ops.
//
// If visit is non-nil it is called after every applied edge with the
// component count at that point.
//
// n must be at least 2 (*DegenerateInputError otherwise). r must cover
// every pair of the n points; running out of edges before the points are
// connected is a programming error and panics.
func ConnectAll(r *Ranker, n int, visit func(e Edge, components int)) (*SpanResult, error) {
	if n < 2 {
		return nil, &DegenerateInputError{Points: n}
	}

	uf := NewUnionFind(n)
	tree := make([]Edge, 0, n-1)
	applied := 0

	for {
		e, ok := r.Pop()
		if !ok {
			panic(fmt.Sprintf("circuit: edges exhausted with %d components left after %d edges",
				uf.Components(), applied))
		}
		applied++

		if _, merged := uf.Union(e.U, e.V); merged {
			tree = append(tree, e)
		}
		if visit != nil {
			visit(e, uf.Components())
		}
		if uf.Components() == 1 {
			return &SpanResult{Terminal: e, Applied: applied, Tree: tree}, nil
		}
	}
}

// Linkage returns the single-linkage dendrogram of the spanning tree.
func (r *SpanResult) Linkage() []Merge {
	return Linkage(r.Tree, len(r.Tree)+1)
}
