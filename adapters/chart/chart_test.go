package chart

import (
	"bytes"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tabstat/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestNewHistogramCountsEveryValue(t *testing.T) {
	sample := []float64{5, 1, 3, 3, 9, 2, 8, 7, 3, 4}
	h := NewHistogram(sample)

	// Sturges: ceil(log2(10) + 1) = 5
	require.Len(t, h.Counts, 5)
	require.Len(t, h.Dividers, 6)
	require.Len(t, h.Density, 5)
	assert.Equal(t, float64(len(sample)), floats.Sum(h.Counts))
	assert.Equal(t, 1.0, h.Dividers[0])
	assert.Greater(t, h.Dividers[5], 9.0)

	for _, d := range h.Density {
		assert.Greater(t, d, 0.0)
	}
}

func TestNewHistogramConstantSample(t *testing.T) {
	h := NewHistogram([]float64{2, 2, 2})

	assert.Equal(t, 3.0, floats.Sum(h.Counts))
	assert.Equal(t, 1.5, h.Dividers[0])
	for _, d := range h.Density {
		assert.False(t, d != d, "density must not be NaN")
	}
}

func TestHistogramCenters(t *testing.T) {
	h := Histogram{Dividers: []float64{0, 2, 4}, Counts: []float64{1, 1}}
	assert.Equal(t, []float64{1, 3}, h.Centers())
}

func TestNewBox(t *testing.T) {
	b := NewBox([]float64{1, 2, 3, 4, 100})

	assert.Equal(t, 1.0, b.LowerWhisker)
	assert.Equal(t, 2.0, b.Q1)
	assert.Equal(t, 3.0, b.Median)
	assert.Equal(t, 4.0, b.Q3)
	assert.Equal(t, 4.0, b.UpperWhisker)
	assert.Equal(t, []float64{100}, b.Outliers)
}

func TestNewBoxNoOutliers(t *testing.T) {
	b := NewBox([]float64{1, 2, 3})
	assert.Equal(t, 1.0, b.LowerWhisker)
	assert.Equal(t, 3.0, b.UpperWhisker)
	assert.Empty(t, b.Outliers)
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer().Render(&buf, []float64{3, 1, 4, 1, 5, 9, 2, 6}))

	html := buf.String()
	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "Temporal dos Valores")
	assert.Contains(t, html, "Posi")
	assert.Contains(t, html, "Diagrama de Caixa")
	assert.Contains(t, html, "Densidade (KDE)")
}

func TestRenderNeedsTwoValues(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer().Render(&buf, []float64{1})
	assert.ErrorIs(t, err, core.ErrNotEnoughData)
	assert.Zero(t, buf.Len())
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	at := time.Date(2023, time.October, 15, 18, 5, 59, 0, time.Local)

	path, err := NewRenderer().Save(dir, "analise_grafica", at, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "analise_grafica_20231015_180559.html"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	_, err = NewRenderer().Save(dir, "analise_grafica", at, nil)
	assert.ErrorIs(t, err, core.ErrNotEnoughData)
}

func TestNewHistogramSkipsNonFinite(t *testing.T) {
	h := NewHistogram([]float64{1, math.NaN(), 3, math.Inf(1), math.Inf(-1), 2})

	assert.Equal(t, 3.0, floats.Sum(h.Counts))
	assert.Equal(t, 1.0, h.Dividers[0])
	for _, d := range h.Dividers {
		assert.False(t, math.IsNaN(d) || math.IsInf(d, 0))
	}

	assert.Empty(t, NewHistogram([]float64{math.NaN()}).Counts)
}

func TestNewBoxSkipsNonFinite(t *testing.T) {
	b := NewBox([]float64{1, 2, math.NaN(), 3, math.Inf(1), 4, 100})

	assert.Equal(t, 1.0, b.LowerWhisker)
	assert.Equal(t, 3.0, b.Median)
	assert.Equal(t, 4.0, b.UpperWhisker)
	assert.Equal(t, []float64{100}, b.Outliers)
}

func TestRenderNonFiniteValues(t *testing.T) {
	samples := map[string][]float64{
		"nan":      {1, math.NaN(), 3},
		"plus inf": {1, math.Inf(1), 3},
		"neg inf":  {math.Inf(-1), 1, 3},
		"mixed":    {math.NaN(), 2, math.Inf(1), 5, math.Inf(-1)},
	}

	for name, sample := range samples {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NotPanics(t, func() {
				require.NoError(t, NewRenderer().Render(&buf, sample))
			})
			assert.Contains(t, buf.String(), "Diagrama de Caixa")
		})
	}
}

func TestRenderNeedsTwoFiniteValues(t *testing.T) {
	err := NewRenderer().Render(io.Discard, []float64{1, math.NaN(), math.Inf(1)})
	assert.ErrorIs(t, err, core.ErrNotEnoughData)

	dir := t.TempDir()
	at := time.Date(2023, time.October, 15, 18, 5, 59, 0, time.Local)
	_, err = NewRenderer().Save(dir, "analise_grafica", at, []float64{math.NaN(), math.NaN()})
	assert.ErrorIs(t, err, core.ErrNotEnoughData)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	_, err := NewRenderer().Save(dir, "analise_grafica", time.Now(), []float64{1, 2, 3})
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NoDirExists(t, dir)
}
