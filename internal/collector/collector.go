package collector

import (
	"context"
	"strconv"
	"strings"

	"tabstat/internal"
	"tabstat/internal/console"
	"tabstat/internal/report"

	"github.com/fatih/color"
)

// State is the position of the collection loop
type State int

const (
	// StateCollecting: no value accepted yet
	StateCollecting State = iota
	// StateIdleWithData: at least one value, not exported since the last one
	StateIdleWithData
	// StateExported: the current sample has been exported
	StateExported
	// StateStopped: the operator ended collection
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateCollecting:
		return "collecting"
	case StateIdleWithData:
		return "idle-with-data"
	case StateExported:
		return "exported"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

// Exporter persists the sample collected so far and returns where it went
type Exporter interface {
	Export(sample []float64) (string, error)
}

// ExporterFunc adapts a function to Exporter
type ExporterFunc func(sample []float64) (string, error)

func (f ExporterFunc) Export(sample []float64) (string, error) { return f(sample) }

// Command reacts to a control token
type Command func(c *Collector)

// Collector accumulates numbers typed by the operator and dispatches the
// control tokens sair/stop, exportar/export and help/ajuda
type Collector struct {
	console  *console.Console
	exporter Exporter
	logger   *internal.Logger
	commands map[string]Command

	state  State
	sample []float64
}

// New creates a collector reading from con. exporter may be nil, in which
// case the export command only reports that exporting is unavailable.
func New(con *console.Console, exporter Exporter, logger *internal.Logger) *Collector {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	c := &Collector{
		console:  con,
		exporter: exporter,
		logger:   logger.With("Collector"),
		state:    StateCollecting,
	}
	c.commands = map[string]Command{
		"sair":     stopCommand,
		"stop":     stopCommand,
		"exportar": exportCommand,
		"export":   exportCommand,
		"help":     helpCommand,
		"ajuda":    helpCommand,
	}
	return c
}

// State returns the current state
func (c *Collector) State() State {
	return c.state
}

// Sample returns a copy of the values collected so far
func (c *Collector) Sample() []float64 {
	return append([]float64(nil), c.sample...)
}

// Run reads input until a stop token, end of input or cancellation and
// returns the collected sample. Several values may be pasted on one line.
func (c *Collector) Run(ctx context.Context) ([]float64, error) {
	c.printUsage()

	for c.state != StateStopped {
		if err := ctx.Err(); err != nil {
			return c.Sample(), err
		}

		line, ok, err := c.console.ReadLine("Número: ")
		if err != nil {
			return c.Sample(), err
		}
		if !ok {
			c.logger.Debug("input closed, ending collection with %d values", len(c.sample))
			c.state = StateStopped
			break
		}

		for _, token := range strings.Fields(line) {
			c.Handle(token)
			if c.state == StateStopped {
				break
			}
		}
	}

	return c.Sample(), nil
}

// Handle processes a single token: a control command or a number
func (c *Collector) Handle(token string) {
	if cmd, ok := c.commands[strings.ToLower(token)]; ok {
		cmd(c)
		return
	}

	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		c.console.Printf("%s\n", color.YellowString("Entrada ignorada: '%s' não é um número válido", token))
		return
	}

	c.sample = append(c.sample, value)
	c.state = StateIdleWithData
	c.console.Printf("%s\n", color.GreenString("✓ Adicionado: %v", value))
}

func stopCommand(c *Collector) {
	c.state = StateStopped
}

func exportCommand(c *Collector) {
	if len(c.sample) == 0 {
		c.console.Println("\nNenhum dado para exportar!")
		return
	}
	if c.exporter == nil {
		c.console.Println("\nExportação indisponível.")
		return
	}

	path, err := c.exporter.Export(c.Sample())
	if err != nil {
		c.logger.Error("export failed: %v", err)
		c.console.Printf("%s\n", color.RedString("Falha ao exportar: %v", err))
		return
	}

	c.state = StateExported
	c.console.Printf("\nDados exportados para '%s'\n", path)
	c.console.Printf("Total de valores: %d\n", len(c.sample))
	c.console.Println("Estatísticas incluídas no arquivo")
}

func helpCommand(c *Collector) {
	c.console.Println("\nComandos disponíveis:")
	c.console.Println("  sair     - Termina a coleta de dados")
	c.console.Println("  exportar - Exporta os dados coletados")
	c.console.Println("  help     - Mostra esta ajuda")
}

func (c *Collector) printUsage() {
	out := c.console.Out()
	report.Banner(out, "COLETA DE DADOS")
	c.console.Println("Digite números (um por linha). Para finalizar, digite:")
	c.console.Println("  - 'sair': Termina a coleta")
	c.console.Println("  - 'exportar': Mostra opções de exportação")
	c.console.Println("  - 'help': Mostra esta mensagem novamente")
	c.console.Println("\nDica: Você pode colar múltiplos valores de uma vez!")
	report.Rule(out)
}
