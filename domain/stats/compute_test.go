package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeEmptySample(t *testing.T) {
	result := Compute(nil)
	require.NotNil(t, result)
	assert.True(t, result.Empty())
	assert.Empty(t, result.Ordered())

	assert.True(t, Compute([]float64{}).Empty())
}

func TestComputeEvenSample(t *testing.T) {
	result := Compute([]float64{4, 1, 3, 2})

	require.Len(t, result, len(MetricOrder))
	assert.Equal(t, 4, result.Count())
	assert.InDelta(t, 2.5, result[MetricMean], 1e-12)
	assert.InDelta(t, 2.5, result[MetricMedian], 1e-12)
	assert.InDelta(t, 1.25, result[MetricVariance], 1e-12)
	assert.InDelta(t, math.Sqrt(1.25), result[MetricStdDev], 1e-12)
	assert.Equal(t, 1.0, result[MetricMin])
	assert.Equal(t, 4.0, result[MetricMax])
	assert.InDelta(t, 1.75, result[MetricP25], 1e-12)
	assert.InDelta(t, 3.25, result[MetricP75], 1e-12)
	assert.Equal(t, 3.0, result[MetricRange])
}

func TestComputeOddSample(t *testing.T) {
	result := Compute([]float64{3, 1, 2})

	assert.Equal(t, 3, result.Count())
	assert.Equal(t, 2.0, result[MetricMedian])
	assert.InDelta(t, 1.5, result[MetricP25], 1e-12)
	assert.InDelta(t, 2.5, result[MetricP75], 1e-12)
	assert.InDelta(t, 2.0/3.0, result[MetricVariance], 1e-12)
}

func TestComputeSingleValue(t *testing.T) {
	result := Compute([]float64{7.5})

	for _, name := range []string{MetricMean, MetricMedian, MetricMin, MetricMax, MetricP25, MetricP75} {
		assert.Equal(t, 7.5, result[name], name)
	}
	assert.Equal(t, 0.0, result[MetricStdDev])
	assert.Equal(t, 0.0, result[MetricVariance])
	assert.Equal(t, 0.0, result[MetricRange])
}

func TestComputeDoesNotReorderInput(t *testing.T) {
	sample := []float64{9, -1, 4, 0}
	Compute(sample)
	assert.Equal(t, []float64{9, -1, 4, 0}, sample)
}

func TestComputeMinNotAboveMax(t *testing.T) {
	samples := [][]float64{
		{1},
		{-5, 5},
		{0.1, 0.2, 0.3, -100, 1e9},
		{2, 2, 2, 2},
	}

	for _, sample := range samples {
		result := Compute(sample)
		assert.LessOrEqual(t, result[MetricMin], result[MetricMax])
		assert.Equal(t, len(sample), result.Count())
		assert.InDelta(t, result[MetricMax]-result[MetricMin], result[MetricRange], 1e-9)
	}
}

func TestPercentileInterpolation(t *testing.T) {
	sorted := []float64{10, 20, 30, 40, 50}

	tests := []struct {
		p        float64
		expected float64
	}{
		{0, 10},
		{25, 20},
		{50, 30},
		{60, 34},
		{100, 50},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, Percentile(sorted, tt.p), 1e-12, "p=%v", tt.p)
	}
	assert.True(t, math.IsNaN(Percentile(nil, 50)))
}

func TestOrderedAndLabels(t *testing.T) {
	result := Compute([]float64{1, 2})
	ordered := result.Ordered()

	require.Len(t, ordered, len(MetricOrder))
	for i, metric := range ordered {
		assert.Equal(t, MetricOrder[i], metric.Name)
	}

	assert.Equal(t, "N", Metric{Name: MetricCount}.Label())
	assert.Equal(t, "Desvio padrão", Metric{Name: MetricStdDev}.Label())
	assert.Equal(t, "Percentil 25", Metric{Name: MetricP25}.Label())
	assert.Equal(t, "Mínimo", Metric{Name: MetricMin}.Label())
	assert.True(t, ordered[0].IsCount())
}

func TestSummary(t *testing.T) {
	summary := Compute([]float64{1, 2, 3, 4, 5}).Summary()
	assert.Equal(t, Summary{Min: 1, Q1: 2, Median: 3, Q3: 4, Max: 5}, summary)
}
