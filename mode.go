package circuit

import "fmt"

// Mode selects which connectivity question Solve answers.
type Mode string

const (
	// ModeGroups connects Config.Budget closest pairs and multiplies the sizes
	// of the three largest resulting groups.
	ModeGroups Mode = "groups"
	// ModeSpan connects pairs until all points form one component and
	// multiplies the X coordinates of the final pair.
	ModeSpan Mode = "span"
)

// ParseMode resolves a mode name. "1" and "2" are accepted as aliases for
// groups and span.
func ParseMode(name string) (Mode, error) {
	switch name {
	case string(ModeGroups), "1":
		return ModeGroups, nil
	case string(ModeSpan), "2":
		return ModeSpan, nil
	default:
		return "", fmt.Errorf("circuit: invalid mode %q", name)
	}
}

// MetricNames lists the names accepted by MetricByName.
var MetricNames = []string{"euclidean", "squared", "manhattan", "chebyshev"}

// MetricByName resolves a built-in metric from its name.
func MetricByName(name string) (DistanceMetric, error) {
	switch name {
	case "euclidean":
		return EuclideanMetric{}, nil
	case "squared":
		return SquaredEuclideanMetric{}, nil
	case "manhattan":
		return ManhattanMetric{}, nil
	case "chebyshev":
		return ChebyshevMetric{}, nil
	default:
		return nil, fmt.Errorf("circuit: unknown metric %q", name)
	}
}
