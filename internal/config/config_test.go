package config

import (
	"os"
	"path/filepath"
	"testing"

	"tabstat/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LOG_LEVEL", "TABSTAT_RULES", "TABSTAT_INPUT", "TABSTAT_OUTPUT", "TABSTAT_SHEET",
		"TABSTAT_DROP_COLUMNS", "TABSTAT_PLACE_COLUMN", "TABSTAT_CURRENCY_COLUMN",
		"TABSTAT_PLACE_EXCEPTIONS", "TABSTAT_EXPORT_DIR", "TABSTAT_EXPORT_PREFIX",
		"TABSTAT_CHART_DIR", "TABSTAT_CHART_PREFIX",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Empty(t, cfg.Table.Sheet, "empty sheet selects the first worksheet")
	assert.Equal(t, []string{"TICKET"}, cfg.Table.DropColumns)
	assert.Equal(t, "TRAVEL", cfg.Table.PlaceColumn)
	assert.Equal(t, "PRICE", cfg.Table.CurrencyColumn)
	assert.Equal(t, DefaultPlaceExceptions, cfg.Table.PlaceExceptions)
	assert.Equal(t, ".", cfg.Analyze.ExportDir)
	assert.Equal(t, "dados_exportados", cfg.Analyze.ExportPrefix)
	assert.Equal(t, "analise_grafica", cfg.Analyze.ChartPrefix)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("TABSTAT_INPUT", "in.xlsx")
	t.Setenv("TABSTAT_DROP_COLUMNS", "TICKET, price ,,")
	t.Setenv("TABSTAT_PLACE_EXCEPTIONS", "de,of")
	t.Setenv("TABSTAT_EXPORT_DIR", "/tmp/out")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "in.xlsx", cfg.Table.InputFile)
	assert.Equal(t, []string{"TICKET", "price"}, cfg.Table.DropColumns)
	assert.Equal(t, []string{"de", "of"}, cfg.Table.PlaceExceptions)
	assert.Equal(t, "/tmp/out", cfg.Analyze.ExportDir)
}

func TestLoadWithRulesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "rules.yaml")
	rules := "input: viagens.xlsx\noutput: tratado.csv\ndrop_columns: []\nplace_column: CIDADE\n"
	require.NoError(t, os.WriteFile(path, []byte(rules), 0o644))
	t.Setenv("TABSTAT_RULES", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "viagens.xlsx", cfg.Table.InputFile)
	assert.Equal(t, "tratado.csv", cfg.Table.OutputFile)
	assert.Empty(t, cfg.Table.DropColumns)
	assert.Equal(t, "CIDADE", cfg.Table.PlaceColumn)
	assert.Equal(t, "PRICE", cfg.Table.CurrencyColumn)
}

func TestLoadMissingRulesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("TABSTAT_RULES", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, errors.CodeIOError, errors.GetCode(err))
}

func TestApplyRulesRejectsUnknownFields(t *testing.T) {
	cfg := &Config{}
	err := cfg.ApplyRules([]byte("colunas: [a]\n"))
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))

	assert.NoError(t, cfg.ApplyRules(nil))
}

func TestValidateFiles(t *testing.T) {
	cfg := TableConfig{}
	err := cfg.ValidateFiles()
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))

	cfg.InputFile = "in.xlsx"
	assert.Error(t, cfg.ValidateFiles())

	cfg.OutputFile = "out.xlsx"
	assert.NoError(t, cfg.ValidateFiles())
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b c"}, SplitList(" a , b c ,"))
	assert.Empty(t, SplitList(""))
}
