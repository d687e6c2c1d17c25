package pipeline

import (
	"context"

	"tabstat/adapters/excel"
	"tabstat/domain/core"
	"tabstat/domain/format"
	"tabstat/domain/table"
	"tabstat/internal"
	"tabstat/internal/config"
	"tabstat/internal/errors"
)

// Loader reads a complete table or fails
type Loader interface {
	ReadTable(sheet string) (*table.Table, error)
}

// Saver writes a table
type Saver interface {
	WriteTable(t *table.Table) error
}

// Options describes one formatting run. Empty column names skip that step.
type Options struct {
	Input          string
	Output         string
	Sheet          string
	DropColumns    []string
	PlaceColumn    string
	CurrencyColumn string
	Exceptions     format.ExceptionSet
}

// OptionsFromConfig builds run options from the table configuration
func OptionsFromConfig(cfg config.TableConfig) Options {
	return Options{
		Input:          cfg.InputFile,
		Output:         cfg.OutputFile,
		Sheet:          cfg.Sheet,
		DropColumns:    cfg.DropColumns,
		PlaceColumn:    cfg.PlaceColumn,
		CurrencyColumn: cfg.CurrencyColumn,
		Exceptions:     format.NewExceptionSet(cfg.PlaceExceptions...),
	}
}

// Outcome reports what a run did
type Outcome struct {
	Table             *table.Table
	Removed           []string
	PlaceFormatted    bool
	CurrencyFormatted bool
	Output            string
}

// Pipeline loads a spreadsheet, drops columns, formats the place-name and
// currency columns and saves the result
type Pipeline struct {
	logger    *internal.Logger
	newLoader func(path string) Loader
	newSaver  func(path, sheet string) Saver
}

// New creates a pipeline backed by the excel adapters
func New(logger *internal.Logger) *Pipeline {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Pipeline{
		logger: logger.With("Pipeline"),
		newLoader: func(path string) Loader {
			return excel.NewDataReader(path, logger)
		},
		newSaver: func(path, sheet string) Saver {
			return excel.NewDataWriter(path, sheet, logger)
		},
	}
}

// Load reads the input table, turning any failure into a single AppError
func (p *Pipeline) Load(opts Options) (*table.Table, error) {
	if opts.Input == "" {
		return nil, errors.InvalidInput("input file is required")
	}
	t, err := p.newLoader(opts.Input).ReadTable(opts.Sheet)
	if err != nil {
		return nil, errors.Wrapf(classify(err), "failed to load %s", opts.Input)
	}
	return t, nil
}

// Run executes load, transform and save. On any failure nothing is written
// and the single returned error describes the cause.
func (p *Pipeline) Run(ctx context.Context, opts Options) (*Outcome, error) {
	if opts.Output == "" {
		return nil, errors.InvalidInput("output file is required")
	}

	t, err := p.Load(opts)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	outcome, err := p.Transform(t, opts)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := p.newSaver(opts.Output, opts.Sheet).WriteTable(outcome.Table); err != nil {
		return nil, errors.Wrapf(classify(err), "failed to save %s", opts.Output)
	}
	outcome.Output = opts.Output

	p.logger.Info("%s -> %s: removed %v, place formatted %t, currency formatted %t",
		opts.Input, opts.Output, outcome.Removed, outcome.PlaceFormatted, outcome.CurrencyFormatted)
	return outcome, nil
}

// Transform applies column removal and formatting to t without touching it
func (p *Pipeline) Transform(t *table.Table, opts Options) (*Outcome, error) {
	result, removed := table.RemoveColumns(t, opts.DropColumns)
	if len(removed) < len(opts.DropColumns) {
		p.logger.Debug("requested %v, removed %v", opts.DropColumns, removed)
	}

	outcome := &Outcome{Removed: removed}

	if opts.PlaceColumn != "" {
		exceptions := opts.Exceptions
		if exceptions == nil {
			exceptions = format.DefaultExceptions()
		}
		mapped, found, err := table.MapColumn(result, opts.PlaceColumn, func(c table.Cell) (table.Cell, error) {
			return format.PlaceName(c, exceptions), nil
		})
		if err != nil {
			return nil, errors.WithCode(errors.CodeInvalidInput, err)
		}
		if !found {
			p.logger.Warn("place column %q not found, skipping", opts.PlaceColumn)
		}
		result, outcome.PlaceFormatted = mapped, found
	}

	if opts.CurrencyColumn != "" {
		mapped, found, err := table.MapColumn(result, opts.CurrencyColumn, func(c table.Cell) (table.Cell, error) {
			if c == nil {
				return nil, nil
			}
			return format.CurrencyString(*c)
		})
		if err != nil {
			return nil, errors.Wrap(errors.WithCode(errors.CodeInvalidInput, err), "failed to format currency column")
		}
		if !found {
			p.logger.Warn("currency column %q not found, skipping", opts.CurrencyColumn)
		}
		result, outcome.CurrencyFormatted = mapped, found
	}

	outcome.Table = result
	return outcome, nil
}

// classify attaches an error code matching the domain sentinel in err
func classify(err error) error {
	switch {
	case core.IsNotFoundError(err):
		return errors.WithCode(errors.CodeNotFound, err)
	case core.IsValidationError(err), core.IsEmptyDataError(err):
		return errors.WithCode(errors.CodeInvalidInput, err)
	default:
		return errors.WithCode(errors.CodeIOError, err)
	}
}
