package circuit

import (
	"cmp"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
)

// GroupSet holds the groups built by budgeted grouping. Groups live in an
// arena addressed by index; a nil slot marks a group absorbed by a merge,
// so indices of surviving groups never shift.
//
// Placement is two-phase. Place puts an edge into the first group that
// already holds either endpoint and never merges eagerly, so two groups can
// temporarily share a point. Reconcile then merges overlapping groups until
// no two groups share a point.
type GroupSet struct {
	groups []*roaring.Bitmap
	live   int
	merges int
}

// NewGroupSet returns an empty GroupSet.
func NewGroupSet() *GroupSet {
	return &GroupSet{}
}

// Place adds both endpoints of e to the first group, in arena order, that
// contains either of them, or starts a new group {U, V} if none does. It
// returns the index of the group that received the edge.
func (gs *GroupSet) Place(e Edge) (index int, created bool) {
	u, v := uint32(e.U), uint32(e.V)
	for i, g := range gs.groups {
		if g == nil {
			continue
		}
		if g.Contains(u) || g.Contains(v) {
			g.Add(u)
			g.Add(v)
			return i, false
		}
	}
	gs.groups = append(gs.groups, roaring.BitmapOf(u, v))
	gs.live++
	return len(gs.groups) - 1, true
}

// Reconcile merges any two groups sharing a member, repeating until no pair
// of groups overlaps. Every merge removes one group, so the loop ends after
// at most Len()-1 merges. It returns the number of merges performed.
func (gs *GroupSet) Reconcile() int {
	merged := 0
	for changed := true; changed; {
		changed = false
		for i, a := range gs.groups {
			if a == nil {
				continue
			}
			for j := i + 1; j < len(gs.groups); j++ {
				b := gs.groups[j]
				if b == nil || !a.Intersects(b) {
					continue
				}
				a.Or(b)
				gs.groups[j] = nil
				gs.live--
				merged++
				changed = true
			}
		}
	}
	gs.merges += merged
	return merged
}

// Disjoint reports whether no two groups share a member.
func (gs *GroupSet) Disjoint() bool {
	for i, a := range gs.groups {
		if a == nil {
			continue
		}
		for _, b := range gs.groups[i+1:] {
			if b != nil && a.Intersects(b) {
				return false
			}
		}
	}
	return true
}

// Len returns the number of live groups.
func (gs *GroupSet) Len() int { return gs.live }

// Merges returns the total number of merges performed by Reconcile.
func (gs *GroupSet) Merges() int { return gs.merges }

// Groups returns the members of every live group, largest group first.
// Groups of equal size are ordered by their smallest member.
func (gs *GroupSet) Groups() [][]int {
	live := make([]*roaring.Bitmap, 0, gs.live)
	for _, g := range gs.groups {
		if g != nil {
			live = append(live, g)
		}
	}
	slices.SortFunc(live, func(a, b *roaring.Bitmap) int {
		if c := cmp.Compare(b.GetCardinality(), a.GetCardinality()); c != 0 {
			return c
		}
		return cmp.Compare(a.Minimum(), b.Minimum())
	})

	out := make([][]int, len(live))
	for i, g := range live {
		members := make([]int, 0, g.GetCardinality())
		it := g.Iterator()
		for it.HasNext() {
			members = append(members, int(it.Next()))
		}
		out[i] = members
	}
	return out
}

// Sizes returns the member count of every live group, largest first.
func (gs *GroupSet) Sizes() []int {
	sizes := make([]int, 0, gs.live)
	for _, g := range gs.groups {
		if g != nil {
			sizes = append(sizes, int(g.GetCardinality()))
		}
	}
	slices.SortFunc(sizes, func(a, b int) int { return cmp.Compare(b, a) })
	return sizes
}

// ConnectBudget consumes the budget closest edges from r into a new GroupSet
// and reconciles it. It fails with *BudgetError if budget is below 1 or
// larger than the number of edges left in r.
func ConnectBudget(r *Ranker, budget int) (*GroupSet, error) {
	if budget < 1 || budget > r.Len() {
		return nil, &BudgetError{Budget: budget, Available: r.Len()}
	}

	gs := NewGroupSet()
	for range budget {
		e, _ := r.Pop()
		gs.Place(e)
	}
	gs.Reconcile()
	return gs, nil
}
