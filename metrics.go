package circuit

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline stage labels for Metrics.StageDuration.
const (
	stageEdges = "edges"
	stageRank  = "rank"
	stageGroup = "group"
	stageSpan  = "span"
)

// Metrics collects pipeline counters. A nil *Metrics records nothing.
type Metrics struct {
	// Points is the size of the most recent point set.
	Points prometheus.Gauge
	// EdgesGenerated counts edges produced by the distance stage.
	EdgesGenerated prometheus.Counter
	// EdgesApplied counts edges consumed by grouping or spanning.
	EdgesApplied *prometheus.CounterVec
	// GroupMerges counts merges performed while reconciling groups.
	GroupMerges prometheus.Counter
	// StageDuration measures each pipeline stage in seconds.
	StageDuration *prometheus.HistogramVec
	// Solves counts Solve calls by mode and outcome.
	Solves *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Points: f.NewGauge(prometheus.GaugeOpts{
			Name: "circuit_points",
			Help: "Number of points in the most recent solve",
		}),
		EdgesGenerated: f.NewCounter(prometheus.CounterOpts{
			Name: "circuit_edges_generated_total",
			Help: "Total number of pairwise edges computed",
		}),
		EdgesApplied: f.NewCounterVec(prometheus.CounterOpts{
			Name: "circuit_edges_applied_total",
			Help: "Total number of ranked edges consumed",
		}, []string{"mode"}),
		GroupMerges: f.NewCounter(prometheus.CounterOpts{
			Name: "circuit_group_merges_total",
			Help: "Total number of overlapping groups merged",
		}),
		StageDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "circuit_stage_duration_seconds",
			Help:    "Duration of pipeline stages in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"stage"}),
		Solves: f.NewCounterVec(prometheus.CounterOpts{
			Name: "circuit_solves_total",
			Help: "Total number of solves by mode and outcome",
		}, []string{"mode", "outcome"}),
	}
}

func (m *Metrics) observeStage(stage string, start time.Time) {
	if m == nil {
		return
	}
	m.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

func (m *Metrics) observeEdges(points, edges int) {
	if m == nil {
		return
	}
	m.Points.Set(float64(points))
	m.EdgesGenerated.Add(float64(edges))
}

func (m *Metrics) observeApplied(mode Mode, applied int) {
	if m == nil {
		return
	}
	m.EdgesApplied.WithLabelValues(string(mode)).Add(float64(applied))
}

func (m *Metrics) observeMerges(merges int) {
	if m == nil {
		return
	}
	m.GroupMerges.Add(float64(merges))
}

func (m *Metrics) observeSolve(mode Mode, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.Solves.WithLabelValues(string(mode), outcome).Inc()
}
