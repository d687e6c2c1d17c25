package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"tabstat/adapters/chart"
	"tabstat/adapters/export"
	"tabstat/domain/table"
	"tabstat/internal"
	"tabstat/internal/config"
	"tabstat/internal/console"
	"tabstat/internal/pipeline"
	"tabstat/internal/report"
	"tabstat/internal/session"
	"tabstat/internal/testkit"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once the root command has loaded
// the environment
type app struct {
	cfg    *config.Config
	logger *internal.Logger
	logOut io.Writer
}

func main() {
	a := &app{logOut: os.Stderr}

	rootCmd := &cobra.Command{
		Use:           "tabstat",
		Short:         "Descriptive statistics and spreadsheet clean-up",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}

	rootCmd.AddCommand(
		newAnalyzeCmd(a),
		newFormatCmd(a),
		newDropCmd(a),
		newDemoCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Erro:", err)
		os.Exit(1)
	}
}

func (a *app) load() error {
	// .env is optional; any other failure is reported once the logger exists
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	level, ok := internal.ParseLogLevel(cfg.LogLevel)
	a.cfg = cfg
	a.logger = internal.NewLoggerTo(a.logOut, level)
	if !ok {
		a.logger.Warn("unknown LOG_LEVEL %q, using INFO", cfg.LogLevel)
	}
	if envErr != nil && !stderrors.Is(envErr, os.ErrNotExist) {
		a.logger.Debug("failed to load .env, using system environment: %v", envErr)
	}
	return nil
}

func newAnalyzeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Collect numbers interactively and report their statistics",
		Long: `Reads one number per line until 'sair' (or 'stop') is entered, then
prints descriptive statistics and offers to render charts and export the data.

Artifacts are written to TABSTAT_CHART_DIR and TABSTAT_EXPORT_DIR (default: .).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer := session.NewAnalyzer(
				console.Stdio(),
				chart.NewRenderer(),
				export.NewWriter(),
				a.cfg.Analyze,
				a.logger,
			)
			_, err := analyzer.Run(cmd.Context())
			return err
		},
	}
	return cmd
}

func newFormatCmd(a *app) *cobra.Command {
	var (
		input, output, sheet, rules  string
		placeColumn, currencyColumn  string
		dropColumns, placeExceptions []string
	)

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Drop columns and format place names and prices in a spreadsheet",
		Long: `Loads an .xlsx or .csv table, removes the configured columns, capitalizes
the place-name column and renders the currency column as "R$ 1.234,50".

Flags override TABSTAT_* environment variables; --rules overrides both with a
YAML rules file.

Example: tabstat format --input viagens.xlsx --output viagens_tratado.xlsx --drop TICKET`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rules != "" {
				if err := a.cfg.ApplyRulesFile(rules); err != nil {
					return err
				}
			}

			tc := &a.cfg.Table
			flags := cmd.Flags()
			if flags.Changed("input") {
				tc.InputFile = input
			}
			if flags.Changed("output") {
				tc.OutputFile = output
			}
			if flags.Changed("sheet") {
				tc.Sheet = sheet
			}
			if flags.Changed("drop") {
				tc.DropColumns = dropColumns
			}
			if flags.Changed("place-column") {
				tc.PlaceColumn = placeColumn
			}
			if flags.Changed("currency-column") {
				tc.CurrencyColumn = currencyColumn
			}
			if flags.Changed("exceptions") {
				tc.PlaceExceptions = placeExceptions
			}

			if err := tc.ValidateFiles(); err != nil {
				return err
			}
			return a.runPipeline(cmd, pipeline.OptionsFromConfig(*tc))
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Input spreadsheet (.xlsx or .csv)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output spreadsheet (.xlsx or .csv)")
	cmd.Flags().StringVar(&sheet, "sheet", config.DefaultSheet, "Sheet to read and write (default: first sheet, written as Sheet1)")
	cmd.Flags().StringSliceVar(&dropColumns, "drop", nil, "Columns to remove (comma separated)")
	cmd.Flags().StringVar(&placeColumn, "place-column", config.DefaultPlaceColumn, "Column holding place names (empty to skip)")
	cmd.Flags().StringVar(&currencyColumn, "currency-column", config.DefaultCurrencyColumn, "Column holding prices (empty to skip)")
	cmd.Flags().StringSliceVar(&placeExceptions, "exceptions", nil, "Words kept lower case in place names")
	cmd.Flags().StringVar(&rules, "rules", "", "YAML rules file")

	return cmd
}

func newDropCmd(a *app) *cobra.Command {
	var input, output, sheet string

	cmd := &cobra.Command{
		Use:   "drop [columns...]",
		Short: "Remove columns from a spreadsheet",
		Long: `Removes the named columns and saves the rest unchanged. Names that are not
present are ignored.

Example: tabstat drop price ticket --input passageiros.csv --output sem_preco.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tc := config.TableConfig{InputFile: input, OutputFile: output, Sheet: sheet}
			if err := tc.ValidateFiles(); err != nil {
				return err
			}
			return a.runPipeline(cmd, pipeline.Options{
				Input:       input,
				Output:      output,
				Sheet:       sheet,
				DropColumns: args,
			})
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Input spreadsheet (.xlsx or .csv)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output spreadsheet (.xlsx or .csv)")
	cmd.Flags().StringVar(&sheet, "sheet", config.DefaultSheet, "Sheet to read and write (default: first sheet, written as Sheet1)")

	return cmd
}

func (a *app) runPipeline(cmd *cobra.Command, opts pipeline.Options) error {
	outcome, err := pipeline.New(a.logger).Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	report.Table(w, outcome.Table)
	if len(outcome.Removed) > 0 {
		fmt.Fprintf(w, "Colunas removidas: %v\n", outcome.Removed)
	}
	fmt.Fprintf(w, "Planilha salva em '%s'\n", outcome.Output)
	return nil
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Show column removal on a built-in passenger table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			original := testkit.PassengerTable()

			fmt.Fprintln(w, "Tabela original:")
			report.Table(w, original)

			trimmed, _ := table.RemoveColumns(original, []string{"price"})
			fmt.Fprintln(w, "\nTabela sem a coluna 'price':")
			report.Table(w, trimmed)
			return nil
		},
	}
}
