package chart

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Histogram is a binned frequency count with a kernel density curve scaled
// to the same axis as the counts
type Histogram struct {
	Dividers []float64
	Counts   []float64
	Density  []float64
}

// Centers returns the midpoint of every bin
func (h Histogram) Centers() []float64 {
	centers := make([]float64, len(h.Counts))
	for i := range centers {
		centers[i] = (h.Dividers[i] + h.Dividers[i+1]) / 2
	}
	return centers
}

// NewHistogram bins the finite values of sample with Sturges' rule and
// evaluates a Gaussian KDE (Silverman bandwidth) at the bin centers. NaN and
// infinite values are left out; with no finite value the histogram is empty.
func NewHistogram(sample []float64) Histogram {
	sorted := finiteValues(sample)
	sort.Float64s(sorted)

	n := len(sorted)
	if n == 0 {
		return Histogram{}
	}
	bins := int(math.Ceil(math.Log2(float64(n)) + 1))
	if bins < 1 {
		bins = 1
	}

	lo, hi := sorted[0], sorted[n-1]
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	dividers := make([]float64, bins+1)
	floats.Span(dividers, lo, hi)
	// the last divider is exclusive in stat.Histogram
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, dividers, sorted, nil)

	h := Histogram{Dividers: dividers, Counts: counts}
	binWidth := (hi - lo) / float64(bins)
	bandwidth := silvermanBandwidth(sorted)

	centers := h.Centers()
	h.Density = make([]float64, len(centers))
	for i, x := range centers {
		h.Density[i] = kde(sorted, bandwidth, x) * float64(n) * binWidth
	}

	return h
}

// silvermanBandwidth returns 0.9 * min(sd, IQR/1.34) * n^(-1/5)
func silvermanBandwidth(sorted []float64) float64 {
	n := float64(len(sorted))
	sd := stat.StdDev(sorted, nil)
	iqr := stat.Quantile(0.75, stat.Empirical, sorted, nil) - stat.Quantile(0.25, stat.Empirical, sorted, nil)

	spread := sd
	if iqr > 0 && iqr/1.34 < spread {
		spread = iqr / 1.34
	}
	if spread <= 0 || math.IsNaN(spread) {
		return 1
	}
	return 0.9 * spread * math.Pow(n, -0.2)
}

// kde evaluates the Gaussian kernel density estimate at x
func kde(sample []float64, bandwidth, x float64) float64 {
	sum := 0.0
	for _, xi := range sample {
		sum += distuv.Normal{Mu: xi, Sigma: bandwidth}.Prob(x)
	}
	return sum / float64(len(sample))
}

// finiteValues returns a copy of sample without NaN and infinite values
func finiteValues(sample []float64) []float64 {
	finite := make([]float64, 0, len(sample))
	for _, v := range sample {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	return finite
}
