package circuit

import (
	"cmp"
	"slices"
)

// Ranker hands out edges closest first.
//
// Edges with equal distance are ordered by U, then V. The order is therefore
// a total order and every run over the same edges yields the same sequence,
// regardless of the order the edges were generated in.
type Ranker struct {
	edges []Edge
	next  int
}

// NewRanker sorts edges in place and returns a Ranker over them. The caller
// must not modify edges afterwards.
func NewRanker(edges []Edge) *Ranker {
	slices.SortFunc(edges, compareEdges)
	return &Ranker{edges: edges}
}

func compareEdges(a, b Edge) int {
	if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
		return c
	}
	if c := cmp.Compare(a.U, b.U); c != 0 {
		return c
	}
	return cmp.Compare(a.V, b.V)
}

// Pop removes and returns the closest remaining edge. ok is false once the
// ranker is exhausted.
func (r *Ranker) Pop() (e Edge, ok bool) {
	if r.next >= len(r.edges) {
		return Edge{}, false
	}
	e = r.edges[r.next]
	r.next++
	return e, true
}

// Peek returns the closest remaining edge without consuming it.
func (r *Ranker) Peek() (e Edge, ok bool) {
	if r.next >= len(r.edges) {
		return Edge{}, false
	}
	return r.edges[r.next], true
}

// Len returns the number of edges not yet consumed.
func (r *Ranker) Len() int { return len(r.edges) - r.next }

// Consumed returns the number of edges popped so far.
func (r *Ranker) Consumed() int { return r.next }

// Total returns the number of edges the ranker was built with.
func (r *Ranker) Total() int { return len(r.edges) }
