package circuit

import "golang.org/x/sync/errgroup"

// blocksPerWorker oversplits the rows so a slow block does not leave the
// other workers idle.
const blocksPerWorker = 4

// ComputeEdgesParallel computes the same edges as ComputeEdges using up to
// numWorkers goroutines. If numWorkers <= 1 it falls back to the sequential
// ComputeEdges.
//
// Rows are split into contiguous blocks holding roughly the same number of
// pairs. Each block writes its own range of the result, so no synchronization
// is needed for writes and the output is identical to ComputeEdges.
func ComputeEdgesParallel(points Points, metric DistanceMetric, numWorkers int) []Edge {
	n := points.Len()
	if numWorkers <= 1 || n <= 2 {
		return ComputeEdges(points, metric)
	}

	result := make([]Edge, PairCount(n))

	var g errgroup.Group
	g.SetLimit(numWorkers)
	for _, b := range rowBlocks(n, numWorkers*blocksPerWorker) {
		g.Go(func() error {
			computeRows(result, points, metric, b[0], b[1])
			return nil
		})
	}
	// Workers never fail; Wait only joins them.
	_ = g.Wait()
	return result
}

// rowBlocks splits rows [0, n-1) into at most blocks contiguous [start, end)
// ranges with roughly equal pair counts. Row i holds n-1-i pairs.
func rowBlocks(n, blocks int) [][2]int {
	total := PairCount(n)
	if total == 0 {
		return nil
	}
	target := max((total+blocks-1)/blocks, 1)

	var (
		out   [][2]int
		start int
		acc   int
	)
	for i := 0; i < n-1; i++ {
		acc += n - 1 - i
		if acc >= target {
			out = append(out, [2]int{start, i + 1})
			start = i + 1
			acc = 0
		}
	}
	if start < n-1 {
		out = append(out, [2]int{start, n - 1})
	}
	return out
}
