package circuit

import (
	"cmp"
	"slices"
)

// DefaultLargestGroups is the number of groups whose sizes are multiplied
// by the budgeted grouping answer.
const DefaultLargestGroups = 3

// ProductOfLargest multiplies the count largest values of sizes. It fails
// with *InsufficientGroupsError if sizes holds fewer than count values.
// sizes is not modified.
func ProductOfLargest(sizes []int, count int) (int, error) {
	if len(sizes) < count {
		return 0, &InsufficientGroupsError{Need: count, Have: len(sizes)}
	}
	sorted := slices.Clone(sizes)
	slices.SortFunc(sorted, func(a, b int) int { return cmp.Compare(b, a) })

	product := 1
	for _, s := range sorted[:count] {
		product *= s
	}
	return product, nil
}

// TerminalProduct multiplies the X coordinates of the two endpoints of e.
func TerminalProduct(points Points, e Edge) int {
	return points.At(e.U).X * points.At(e.V).X
}
