// Package circuit groups junction points in 3D integer space by proximity.
//
// Every unordered pair of points becomes an edge weighted by the truncated
// Euclidean distance between them. Edges are ranked closest first and then
// consumed by one of two connectivity strategies:
//
//   - Groups connects a fixed budget of the closest pairs, reconciles any
//     groups that ended up sharing a point, and reports the group sizes.
//   - Span keeps connecting pairs until every point belongs to a single
//     component, and reports the edge that completed it.
//
// Basic usage:
//
//	points, err := circuit.ReadPoints(r)
//	cfg := circuit.DefaultConfig()
//	cfg.Budget = 10
//	product, err := circuit.Solve(points, circuit.ModeGroups, cfg)
//
// # Distances
//
// The default EuclideanMetric computes floor(sqrt(dx²+dy²+dz²)) with an exact
// integer square root. Two different pairs can share a truncated distance;
// the Ranker breaks such ties by the lower point index first, so a run over
// the same input always consumes edges in the same order.
//
// # Concurrency
//
// Only edge generation runs in parallel (see ComputeEdgesParallel). Ranking,
// grouping and spanning keep sequential state and run on the calling
// goroutine.
package circuit
