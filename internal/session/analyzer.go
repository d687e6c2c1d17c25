package session

import (
	"context"
	"time"

	"tabstat/adapters/chart"
	"tabstat/domain/stats"
	"tabstat/internal"
	"tabstat/internal/collector"
	"tabstat/internal/config"
	"tabstat/internal/console"
	"tabstat/internal/report"

	"github.com/fatih/color"
)

// ChartSaver persists the charts of a sample
type ChartSaver interface {
	Save(dir, prefix string, at time.Time, sample []float64) (string, error)
}

// ExportSaver persists a sample and its statistics
type ExportSaver interface {
	Save(dir, prefix string, at time.Time, sample []float64, result stats.Result) (string, error)
}

// Outcome describes what an analysis session produced
type Outcome struct {
	Sample     []float64
	Result     stats.Result
	ChartPath  string
	ExportPath string
}

// Analyzer runs the interactive collect, analyze, plot and export session
type Analyzer struct {
	console  *console.Console
	charts   ChartSaver
	exporter ExportSaver
	cfg      config.AnalyzeConfig
	logger   *internal.Logger
	now      func() time.Time
}

// NewAnalyzer wires an analyzer session
func NewAnalyzer(con *console.Console, charts ChartSaver, exporter ExportSaver, cfg config.AnalyzeConfig, logger *internal.Logger) *Analyzer {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Analyzer{
		console:  con,
		charts:   charts,
		exporter: exporter,
		cfg:      cfg,
		logger:   logger.With("Analyzer"),
		now:      time.Now,
	}
}

// Run executes one session. An empty sample is a valid outcome with an
// empty Result; nothing is plotted or exported in that case.
func (a *Analyzer) Run(ctx context.Context) (*Outcome, error) {
	out := a.console.Out()
	a.printIntro()

	c := collector.New(a.console, collector.ExporterFunc(a.export), a.logger)
	sample, err := c.Run(ctx)
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{Sample: sample, Result: stats.Compute(sample)}
	a.logger.Debug("collected %d values, collector state %s", len(sample), c.State())

	report.Statistics(out, outcome.Result)

	if !outcome.Result.Empty() {
		if len(sample) >= chart.MinSampleSize {
			if err := a.offerCharts(outcome); err != nil {
				return outcome, err
			}
		}
		if err := a.offerExport(outcome); err != nil {
			return outcome, err
		}
	}

	report.Banner(out, "Processo concluído!")
	return outcome, nil
}

func (a *Analyzer) offerCharts(outcome *Outcome) error {
	ok, err := a.console.Confirm("Deseja gerar os gráficos?")
	if err != nil || !ok {
		return err
	}

	path, err := a.charts.Save(a.cfg.ChartDir, a.cfg.ChartPrefix, a.now(), outcome.Sample)
	if err != nil {
		a.logger.Error("chart rendering failed: %v", err)
		a.console.Printf("%s\n", color.RedString("Falha ao gerar gráficos: %v", err))
		return nil
	}

	outcome.ChartPath = path
	a.console.Printf("Gráficos salvos como '%s'\n", path)
	return nil
}

func (a *Analyzer) offerExport(outcome *Outcome) error {
	ok, err := a.console.Confirm("Deseja exportar os dados?")
	if err != nil || !ok {
		return err
	}

	path, err := a.export(outcome.Sample)
	if err != nil {
		a.console.Printf("%s\n", color.RedString("Falha ao exportar: %v", err))
		return nil
	}

	outcome.ExportPath = path
	a.console.Printf("\nDados exportados para '%s'\n", path)
	a.console.Printf("Total de valores: %d\n", len(outcome.Sample))
	a.console.Println("Estatísticas incluídas no arquivo")
	return nil
}

// export is shared by the in-collection export command and the final prompt
func (a *Analyzer) export(sample []float64) (string, error) {
	return a.exporter.Save(a.cfg.ExportDir, a.cfg.ExportPrefix, a.now(), sample, stats.Compute(sample))
}

func (a *Analyzer) printIntro() {
	report.Banner(a.console.Out(), "ANALISADOR ESTATÍSTICO COM VISUALIZAÇÃO GRÁFICA")
	a.console.Println("Este programa permite:")
	a.console.Println("- Coletar números via entrada interativa")
	a.console.Println("- Calcular diversas estatísticas descritivas")
	a.console.Println("- Visualizar os dados através de múltiplos gráficos")
	a.console.Println("- Exportar resultados para arquivos")
}
