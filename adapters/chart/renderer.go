package chart

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"time"

	"tabstat/domain/core"
	"tabstat/domain/stats"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// MinSampleSize is the smallest number of finite values worth plotting
const MinSampleSize = 2

// Renderer draws a sample as a line plot, a histogram with density overlay
// and a box plot on a single HTML page
type Renderer struct {
	Title  string
	Width  string
	Height string
}

// NewRenderer creates a renderer with the default page title and sizes
func NewRenderer() *Renderer {
	return &Renderer{
		Title:  "Análise Visual dos Dados",
		Width:  "600px",
		Height: "400px",
	}
}

// Render writes the chart page for sample to w. The line chart shows every
// position, leaving gaps for NaN and infinite values; the histogram and the
// box plot only use the finite values.
func (r *Renderer) Render(w io.Writer, sample []float64) error {
	if err := checkPlottable(sample); err != nil {
		return err
	}

	page := components.NewPage()
	page.AddCharts(
		r.lineChart(sample),
		r.histogramChart(sample),
		r.boxPlotChart(sample),
	)
	return page.Render(w)
}

// Save writes dir/prefix_YYYYMMDD_HHMMSS.html and returns its path. A file
// that could not be fully rendered is removed.
func (r *Renderer) Save(dir, prefix string, at time.Time, sample []float64) (string, error) {
	if err := checkPlottable(sample); err != nil {
		return "", err
	}

	path := filepath.Join(dir, core.ArtifactName(prefix, "html", at))
	if err := core.WriteArtifact(path, func(w io.Writer) error {
		return r.Render(w, sample)
	}); err != nil {
		return "", fmt.Errorf("failed to save charts: %w", err)
	}
	return path, nil
}

func checkPlottable(sample []float64) error {
	if n := len(finiteValues(sample)); n < MinSampleSize {
		return fmt.Errorf("%w: %d finite value(s), need at least %d to plot", core.ErrNotEnoughData, n, MinSampleSize)
	}
	return nil
}

func (r *Renderer) globalOpts(title, xName, yName string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: r.Title,
			Width:     r.Width,
			Height:    r.Height,
		}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: r.Title}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Name: xName}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName}),
	}
}

// lineChart plots values in collection order
func (r *Renderer) lineChart(sample []float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(r.globalOpts("Série Temporal dos Valores", "Posição na Sequência", "Valor")...)

	positions := make([]string, len(sample))
	points := make([]opts.LineData, len(sample))
	for i, v := range sample {
		positions[i] = strconv.Itoa(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			// echarts renders "-" as a gap
			points[i] = opts.LineData{Value: "-"}
			continue
		}
		points[i] = opts.LineData{Value: v}
	}

	line.SetXAxis(positions).AddSeries("Valor", points,
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: true}))
	return line
}

// histogramChart plots bin frequencies with the KDE curve on top
func (r *Renderer) histogramChart(sample []float64) *charts.Bar {
	h := NewHistogram(sample)

	labels := make([]string, len(h.Counts))
	for i, center := range h.Centers() {
		labels[i] = strconv.FormatFloat(center, 'g', 4, 64)
	}

	bars := make([]opts.BarData, len(h.Counts))
	for i, c := range h.Counts {
		bars[i] = opts.BarData{Value: c}
	}

	density := make([]opts.LineData, len(h.Density))
	for i, d := range h.Density {
		density[i] = opts.LineData{Value: d}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(r.globalOpts("Distribuição de Frequências", "Valor", "Frequência")...)
	bar.SetXAxis(labels).AddSeries("Frequência", bars)

	curve := charts.NewLine()
	curve.SetXAxis(labels).AddSeries("Densidade (KDE)", density,
		charts.WithLineChartOpts(opts.LineChart{Smooth: true}))
	bar.Overlap(curve)

	return bar
}

// boxPlotChart plots the five-number summary with 1.5 IQR whiskers
func (r *Renderer) boxPlotChart(sample []float64) *charts.BoxPlot {
	box := charts.NewBoxPlot()
	box.SetGlobalOptions(r.globalOpts("Diagrama de Caixa (Boxplot)", "", "Valores")...)

	b := NewBox(sample)
	box.SetXAxis([]string{"Valores"}).AddSeries("Valores", []opts.BoxPlotData{
		{Value: []float64{b.LowerWhisker, b.Q1, b.Median, b.Q3, b.UpperWhisker}},
	})
	return box
}

// Box is a box-and-whisker summary. Whiskers reach the most extreme values
// inside 1.5 IQR of the quartiles; values beyond them are outliers.
type Box struct {
	LowerWhisker float64
	Q1           float64
	Median       float64
	Q3           float64
	UpperWhisker float64
	Outliers     []float64
}

// NewBox summarizes the finite values of sample using the statistics engine
// quartiles
func NewBox(sample []float64) Box {
	sample = finiteValues(sample)
	summary := stats.Compute(sample).Summary()
	iqr := summary.Q3 - summary.Q1
	lowFence := summary.Q1 - 1.5*iqr
	highFence := summary.Q3 + 1.5*iqr

	b := Box{
		LowerWhisker: summary.Max,
		Q1:           summary.Q1,
		Median:       summary.Median,
		Q3:           summary.Q3,
		UpperWhisker: summary.Min,
	}
	for _, v := range sample {
		if v < lowFence || v > highFence {
			b.Outliers = append(b.Outliers, v)
			continue
		}
		if v < b.LowerWhisker {
			b.LowerWhisker = v
		}
		if v > b.UpperWhisker {
			b.UpperWhisker = v
		}
	}
	return b
}
