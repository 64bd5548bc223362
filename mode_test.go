package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := map[string]Mode{
		"groups": ModeGroups,
		"1":      ModeGroups,
		"span":   ModeSpan,
		"2":      ModeSpan,
	}
	for name, want := range tests {
		got, err := ParseMode(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseMode("3")
	assert.EqualError(t, err, `circuit: invalid mode "3"`)
}

func TestMetricByName(t *testing.T) {
	tests := map[string]DistanceMetric{
		"euclidean": EuclideanMetric{},
		"squared":   SquaredEuclideanMetric{},
		"manhattan": ManhattanMetric{},
		"chebyshev": ChebyshevMetric{},
	}
	require.Len(t, MetricNames, len(tests))
	for _, name := range MetricNames {
		got, err := MetricByName(name)
		require.NoError(t, err, name)
		assert.IsType(t, tests[name], got, name)
	}

	_, err := MetricByName("cosine")
	assert.Error(t, err)
}
