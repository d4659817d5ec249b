package hamming

import (
	"fmt"
	"strings"
)

// Metric selects one of the sequence distances.
type Metric int

const (
	// MetricHamming is the raw Hamming distance of equal-length sequences.
	MetricHamming Metric = iota
	// MetricNormalized is the normalized distance in [0, 1].
	MetricNormalized
	// MetricSimilarity is 1 minus the normalized distance.
	MetricSimilarity
)

func (m Metric) String() string {
	switch m {
	case MetricHamming:
		return "Hamming"
	case MetricNormalized:
		return "Normalized"
	case MetricSimilarity:
		return "Similarity"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// ParseMetric returns the metric named s, ignoring case.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hamming":
		return MetricHamming, nil
	case "normalized":
		return MetricNormalized, nil
	case "similarity":
		return MetricSimilarity, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMetric, s)
	}
}

// Func is a distance function over strings.
type Func func(a, b string) (float64, error)

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricHamming:
		return func(a, b string) (float64, error) {
			d, err := DistanceString(a, b)
			if err != nil {
				return 0, err
			}
			return float64(d), nil
		}, nil
	case MetricNormalized:
		return func(a, b string) (float64, error) {
			return NormalizedDistanceString(a, b), nil
		}, nil
	case MetricSimilarity:
		return func(a, b string) (float64, error) {
			return NormalizedSimilarityString(a, b), nil
		}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMetric, m)
	}
}
