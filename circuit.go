package circuit

import (
	"fmt"
	"runtime"
	"time"
)

// DefaultBudget is the number of closest edges grouped by default.
const DefaultBudget = 1000

// Config controls a solve.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Budget is the number of closest edges consumed by Groups before
	// overlapping groups are reconciled. Must be >= 1 and no larger than
	// the number of pairs. Ignored by Span. Default: 1000.
	Budget int

	// Metric is the distance function used to rank pairs.
	// Built-in: EuclideanMetric, SquaredEuclideanMetric, ManhattanMetric,
	// ChebyshevMetric. Use DistanceFunc to wrap a custom function.
	// Default: EuclideanMetric.
	Metric DistanceMetric

	// Workers controls the number of goroutines computing pairwise distances.
	// 0 means use runtime.NumCPU(). Default: 0 (auto).
	Workers int

	// Logger receives stage diagnostics. nil discards them.
	Logger *Logger

	// Metrics records pipeline counters. nil records nothing.
	Metrics *Metrics
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Budget: DefaultBudget,
		Metric: EuclideanMetric{},
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.Workers < 0 {
		return fmt.Errorf("circuit: Workers must be >= 0 (0 means runtime.NumCPU()), got %d", cfg.Workers)
	}
	if cfg.Budget < 0 {
		return fmt.Errorf("circuit: Budget must be >= 0, got %d", cfg.Budget)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Metric == nil {
		cfg.Metric = EuclideanMetric{}
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Logger == nil {
		cfg.Logger = NoopLogger()
	}
}

// GroupResult is the outcome of budgeted grouping.
type GroupResult struct {
	// Groups lists the members of each group, largest first.
	Groups [][]int
	// Sizes lists the size of each group, largest first.
	Sizes []int
	// Merges is the number of reconcile merges that were needed.
	Merges int
}

// Product multiplies the sizes of the three largest groups.
func (r *GroupResult) Product() (int, error) {
	return ProductOfLargest(r.Sizes, DefaultLargestGroups)
}

// Groups connects the cfg.Budget closest pairs of points and returns the
// reconciled groups.
func Groups(points Points, cfg Config) (*GroupResult, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	r, err := rankEdges(points, cfg)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	gs, err := ConnectBudget(r, cfg.Budget)
	if err != nil {
		return nil, err
	}
	cfg.Metrics.observeStage(stageGroup, start)
	cfg.Metrics.observeApplied(ModeGroups, r.Consumed())
	cfg.Metrics.observeMerges(gs.Merges())
	cfg.Logger.LogGroups(cfg.Budget, gs.Len(), gs.Merges())

	return &GroupResult{
		Groups: gs.Groups(),
		Sizes:  gs.Sizes(),
		Merges: gs.Merges(),
	}, nil
}

// Span connects pairs closest first until all points form one component
// and returns the edge that completed it.
func Span(points Points, cfg Config) (*SpanResult, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	r, err := rankEdges(points, cfg)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := ConnectAll(r, points.Len(), nil)
	if err != nil {
		return nil, err
	}
	cfg.Metrics.observeStage(stageSpan, start)
	cfg.Metrics.observeApplied(ModeSpan, result.Applied)
	cfg.Logger.LogSpan(result)
	return result, nil
}

// Solve runs the pipeline for mode and reduces the outcome to one integer:
// the product of the three largest group sizes for ModeGroups, or the product
// of the X coordinates of the terminal edge for ModeSpan.
func Solve(points Points, mode Mode, cfg Config) (result int, err error) {
	applyDefaults(&cfg)
	defer func() {
		cfg.Metrics.observeSolve(mode, err)
		cfg.Logger.LogSolve(mode, result, err)
	}()

	switch mode {
	case ModeGroups:
		gr, err := Groups(points, cfg)
		if err != nil {
			return 0, err
		}
		return gr.Product()
	case ModeSpan:
		sr, err := Span(points, cfg)
		if err != nil {
			return 0, err
		}
		return TerminalProduct(points, sr.Terminal), nil
	default:
		return 0, fmt.Errorf("circuit: invalid mode %q", mode)
	}
}

// rankEdges computes every pairwise edge and ranks it.
func rankEdges(points Points, cfg Config) (*Ranker, error) {
	n := points.Len()
	if n < 2 {
		return nil, &DegenerateInputError{Points: n}
	}

	begin := time.Now()
	edges := ComputeEdgesParallel(points, cfg.Metric, cfg.Workers)
	cfg.Metrics.observeStage(stageEdges, begin)
	cfg.Metrics.observeEdges(n, len(edges))

	start := time.Now()
	r := NewRanker(edges)
	cfg.Metrics.observeStage(stageRank, start)
	cfg.Logger.LogEdges(n, len(edges), cfg.Workers, time.Since(begin))
	return r, nil
}
