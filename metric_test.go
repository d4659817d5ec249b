package hamming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricString(t *testing.T) {
	assert.Equal(t, "Hamming", MetricHamming.String())
	assert.Equal(t, "Normalized", MetricNormalized.String())
	assert.Equal(t, "Similarity", MetricSimilarity.String())
	assert.Equal(t, "Unknown(42)", Metric(42).String())
}

func TestParseMetric(t *testing.T) {
	for _, m := range []Metric{MetricHamming, MetricNormalized, MetricSimilarity} {
		got, err := ParseMetric(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := ParseMetric("  SIMILARITY ")
	require.NoError(t, err)
	assert.Equal(t, MetricSimilarity, got)

	_, err = ParseMetric("levenshtein")
	assert.ErrorIs(t, err, ErrUnsupportedMetric)
}

func TestProvider(t *testing.T) {
	tests := []struct {
		metric   Metric
		a, b     string
		expected float64
	}{
		{MetricHamming, "karolin", "kathrin", 3},
		{MetricNormalized, "ab", "abc", 1.0 / 3},
		{MetricSimilarity, "ab", "abc", 2.0 / 3},
		{MetricSimilarity, "", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.metric.String(), func(t *testing.T) {
			fn, err := Provider(tt.metric)
			require.NoError(t, err)

			got, err := fn(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}

	t.Run("LengthMismatch", func(t *testing.T) {
		fn, err := Provider(MetricHamming)
		require.NoError(t, err)

		_, err = fn("abc", "ab")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("Unsupported", func(t *testing.T) {
		fn, err := Provider(Metric(99))
		assert.Nil(t, fn)
		assert.ErrorIs(t, err, ErrUnsupportedMetric)
	})
}
