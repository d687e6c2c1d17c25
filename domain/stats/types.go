package stats

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Metric names, in display order
const (
	MetricCount    = "n"
	MetricMean     = "média"
	MetricMedian   = "mediana"
	MetricStdDev   = "desvio_padrão"
	MetricVariance = "variância"
	MetricMin      = "mínimo"
	MetricMax      = "máximo"
	MetricP25      = "percentil_25"
	MetricP75      = "percentil_75"
	MetricRange    = "amplitude"
)

// MetricOrder is the fixed key set of a non-empty Result
var MetricOrder = []string{
	MetricCount,
	MetricMean,
	MetricMedian,
	MetricStdDev,
	MetricVariance,
	MetricMin,
	MetricMax,
	MetricP25,
	MetricP75,
	MetricRange,
}

// Result maps metric name to value. An empty Result means "nothing to report".
type Result map[string]float64

// Metric is a single named value of a Result
type Metric struct {
	Name  string
	Value float64
}

// Summary is the five-number view used by box plots
type Summary struct {
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Empty reports whether the result carries no statistics
func (r Result) Empty() bool {
	return len(r) == 0
}

// Count returns the sample size
func (r Result) Count() int {
	return int(r[MetricCount])
}

// Ordered returns the metrics in MetricOrder, skipping absent keys
func (r Result) Ordered() []Metric {
	metrics := make([]Metric, 0, len(r))
	for _, name := range MetricOrder {
		if value, ok := r[name]; ok {
			metrics = append(metrics, Metric{Name: name, Value: value})
		}
	}
	return metrics
}

// Summary extracts the five-number summary
func (r Result) Summary() Summary {
	return Summary{
		Min:    r[MetricMin],
		Q1:     r[MetricP25],
		Median: r[MetricMedian],
		Q3:     r[MetricP75],
		Max:    r[MetricMax],
	}
}

// Label renders the metric name for humans: "desvio_padrão" -> "Desvio padrão"
func (m Metric) Label() string {
	name := strings.ReplaceAll(m.Name, "_", " ")
	first, size := utf8.DecodeRuneInString(name)
	if first == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(name[size:])
}

// IsCount reports whether the metric holds an integral count
func (m Metric) IsCount() bool {
	return m.Name == MetricCount
}
