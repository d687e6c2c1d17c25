package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"time"

	"tabstat/domain/core"
	"tabstat/domain/stats"
)

// ValuesHeader is the single column header of an export file
const ValuesHeader = "Valores"

// Writer exports a sample and its statistics as a one-column CSV file:
// the raw values first, then one "<metric>: <value>" line per metric.
type Writer struct {
	Decimals int
}

// NewWriter creates a writer using four decimal places for metrics
func NewWriter() *Writer {
	return &Writer{Decimals: 4}
}

// Write streams the export to w
func (ew *Writer) Write(w io.Writer, sample []float64, result stats.Result) error {
	if len(sample) == 0 {
		return core.ErrNothingToExport
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{ValuesHeader}); err != nil {
		return err
	}

	for _, value := range sample {
		if err := writer.Write([]string{strconv.FormatFloat(value, 'f', -1, 64)}); err != nil {
			return err
		}
	}

	for _, line := range ew.MetricLines(result) {
		if err := writer.Write([]string{line}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// MetricLines renders each metric as "<name>: <value>" in display order
func (ew *Writer) MetricLines(result stats.Result) []string {
	ordered := result.Ordered()
	lines := make([]string, len(ordered))
	for i, metric := range ordered {
		lines[i] = fmt.Sprintf("%s: %.*f", metric.Name, ew.Decimals, metric.Value)
	}
	return lines
}

// Save writes dir/prefix_YYYYMMDD_HHMMSS.csv and returns its path. A file
// that could not be fully written is removed.
func (ew *Writer) Save(dir, prefix string, at time.Time, sample []float64, result stats.Result) (string, error) {
	if len(sample) == 0 {
		return "", core.ErrNothingToExport
	}

	path := filepath.Join(dir, core.ArtifactName(prefix, "csv", at))
	if err := core.WriteArtifact(path, func(w io.Writer) error {
		return ew.Write(w, sample, result)
	}); err != nil {
		return "", fmt.Errorf("failed to save export: %w", err)
	}
	return path, nil
}
