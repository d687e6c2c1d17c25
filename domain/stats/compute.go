package stats

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

// Compute returns the descriptive statistics of sample.
// The sample is not modified; an empty sample yields an empty Result.
func Compute(sample []float64) Result {
	result := Result{}
	if len(sample) == 0 {
		return result
	}

	data := stats.Float64Data(sample)

	// montanaflynn only errors on empty input, which is handled above
	mean, _ := stats.Mean(data)
	median, _ := stats.Median(data)
	variance, _ := stats.PopulationVariance(data)
	stdDev, _ := stats.StandardDeviationPopulation(data)
	min, _ := stats.Min(data)
	max, _ := stats.Max(data)

	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	sort.Float64s(sorted)

	result[MetricCount] = float64(len(sample))
	result[MetricMean] = mean
	result[MetricMedian] = median
	result[MetricStdDev] = stdDev
	result[MetricVariance] = variance
	result[MetricMin] = min
	result[MetricMax] = max
	result[MetricP25] = Percentile(sorted, 25)
	result[MetricP75] = Percentile(sorted, 75)
	result[MetricRange] = max - min

	return result
}

// Percentile interpolates linearly between the order statistics of an
// already sorted sample. The position of the p-th percentile is (n-1)*p/100.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}

	p = math.Max(0, math.Min(100, p))
	pos := float64(n-1) * p / 100
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}

	frac := pos - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}
