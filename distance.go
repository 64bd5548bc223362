package circuit

import "math"

// DistanceMetric computes the distance between two points. Implementations
// must be symmetric and safe for concurrent use.
type DistanceMetric interface {
	Distance(a, b Point) uint64
}

// DistanceFunc adapts a plain function into a DistanceMetric.
type DistanceFunc func(a, b Point) uint64

func (f DistanceFunc) Distance(a, b Point) uint64 { return f(a, b) }

// EuclideanMetric computes the Euclidean distance truncated to an integer:
// floor(sqrt(dx²+dy²+dz²)). Distinct pairs may share a distance after
// truncation.
type EuclideanMetric struct{}

func (EuclideanMetric) Distance(a, b Point) uint64 {
	return isqrt(sumOfSquares(a, b))
}

// SquaredEuclideanMetric computes dx²+dy²+dz² without the root. It ranks
// pairs exactly, with no ties introduced by truncation.
type SquaredEuclideanMetric struct{}

func (SquaredEuclideanMetric) Distance(a, b Point) uint64 {
	return sumOfSquares(a, b)
}

// ManhattanMetric computes the L1 (city-block) distance.
type ManhattanMetric struct{}

func (ManhattanMetric) Distance(a, b Point) uint64 {
	return absDiff(a.X, b.X) + absDiff(a.Y, b.Y) + absDiff(a.Z, b.Z)
}

// ChebyshevMetric computes the L-infinity distance.
type ChebyshevMetric struct{}

func (ChebyshevMetric) Distance(a, b Point) uint64 {
	return max(absDiff(a.X, b.X), absDiff(a.Y, b.Y), absDiff(a.Z, b.Z))
}

func absDiff(a, b int) uint64 {
	if a > b {
		return uint64(a - b)
	}
	return uint64(b - a)
}

func sumOfSquares(a, b Point) uint64 {
	dx := absDiff(a.X, b.X)
	dy := absDiff(a.Y, b.Y)
	dz := absDiff(a.Z, b.Z)
	return dx*dx + dy*dy + dz*dz
}

// isqrt returns floor(sqrt(x)). The float estimate can be off by one for
// large x, so it is corrected in integer arithmetic.
func isqrt(x uint64) uint64 {
	r := uint64(math.Sqrt(float64(x)))
	for r*r > x {
		r--
	}
	for (r+1)*(r+1) <= x {
		r++
	}
	return r
}

// Edge is a candidate connection between points U and V, U < V.
type Edge struct {
	U, V     int
	Distance uint64
}

// PairCount returns n(n-1)/2, the number of unordered pairs of n points.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// rowOffset is the index of edge (i, i+1) in the row-major pair layout used
// by ComputeEdges.
func rowOffset(i, n int) int {
	return i*n - i*(i+1)/2
}

// ComputeEdges computes every unordered pair (i, j), i < j, in row-major
// order: (0,1), (0,2), ..., (0,n-1), (1,2), ...
func ComputeEdges(points Points, metric DistanceMetric) []Edge {
	n := points.Len()
	result := make([]Edge, PairCount(n))
	computeRows(result, points, metric, 0, n)
	return result
}

// computeRows fills the edges whose first index lies in [start, end).
func computeRows(result []Edge, points Points, metric DistanceMetric, start, end int) {
	n := points.Len()
	for i := start; i < end; i++ {
		k := rowOffset(i, n)
		for j := i + 1; j < n; j++ {
			result[k] = Edge{U: i, V: j, Distance: metric.Distance(points[i], points[j])}
			k++
		}
	}
}
