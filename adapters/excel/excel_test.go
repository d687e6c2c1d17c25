package excel

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"tabstat/domain/core"
	"tabstat/domain/table"
	"tabstat/internal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func quietLogger() *internal.Logger {
	return internal.NewLoggerTo(&bytes.Buffer{}, internal.LogLevelError)
}

func travelTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.FromRows(
		[]string{"NAME", "PRICE", "TRAVEL", "TICKET"},
		[][]string{
			{"João", "100", "são paulo", "A123"},
			{"Maria", "150.5", "rio de janeiro", "007"},
			{"Pedro", "", "belo horizonte", "C789"},
		},
	)
	require.NoError(t, err)
	return tbl
}

func TestDetectFileType(t *testing.T) {
	ft, err := DetectFileType("data/Viagens.XLSX")
	require.NoError(t, err)
	assert.Equal(t, FileTypeXLSX, ft)

	ft, err = DetectFileType("out.csv")
	require.NoError(t, err)
	assert.Equal(t, FileTypeCSV, ft)

	_, err = DetectFileType("notes.txt")
	assert.ErrorIs(t, err, core.ErrUnsupportedInput)
}

func TestExcelRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viagens.xlsx")
	original := travelTable(t)

	require.NoError(t, NewDataWriter(path, "", quietLogger()).WriteTable(original))

	loaded, err := NewDataReader(path, quietLogger()).ReadTable("Sheet1")
	require.NoError(t, err)

	assert.Equal(t, original.Names(), loaded.Names())
	assert.Equal(t, original.Rows(), loaded.Rows())
	assert.Nil(t, loaded.Row(2)[1])
}

func TestExcelWriterStoresNumbersAsNumbers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viagens.xlsx")
	require.NoError(t, NewDataWriter(path, "Dados", quietLogger()).WriteTable(travelTable(t)))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Dados"}, f.GetSheetList())

	priceType, err := f.GetCellType("Dados", "B2")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, priceType)
	assert.NotEqual(t, excelize.CellTypeInlineString, priceType)

	ticket, err := f.GetCellValue("Dados", "D3")
	require.NoError(t, err)
	assert.Equal(t, "007", ticket)
}

func TestReadFirstSheetWhenUnnamed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viagens.xlsx")
	require.NoError(t, NewDataWriter(path, "Planilha", quietLogger()).WriteTable(travelTable(t)))

	loaded, err := NewDataReader(path, quietLogger()).ReadTable("")
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Len())
}

func TestCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viagens.csv")
	original := travelTable(t)

	require.NoError(t, NewDataWriter(path, "", quietLogger()).WriteTable(original))

	loaded, err := NewDataReader(path, quietLogger()).ReadTable("ignored")
	require.NoError(t, err)
	assert.Equal(t, original.Names(), loaded.Names())
	assert.Equal(t, original.Rows(), loaded.Rows())
}

func TestCSVReaderHandlesBOMAndRaggedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.csv")
	content := "\ufeffname, price\nJoão,100,extra\nMaria\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	loaded, err := NewDataReader(path, quietLogger()).ReadTable("")
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "price"}, loaded.Names())
	assert.Equal(t, [][]string{{"João", "100"}, {"Maria", ""}}, loaded.Rows())
}

func TestReaderFailures(t *testing.T) {
	dir := t.TempDir()

	_, err := NewDataReader(filepath.Join(dir, "missing.xlsx"), quietLogger()).ReadTable("Sheet1")
	assert.ErrorIs(t, err, core.ErrFileNotFound)

	_, err = NewDataReader(filepath.Join(dir, "data.json"), quietLogger()).ReadTable("")
	assert.ErrorIs(t, err, core.ErrUnsupportedInput)

	broken := filepath.Join(dir, "broken.xlsx")
	require.NoError(t, os.WriteFile(broken, []byte("not a workbook"), 0o644))
	_, err = NewDataReader(broken, quietLogger()).ReadTable("Sheet1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open Excel file")

	empty := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, err = NewDataReader(empty, quietLogger()).ReadTable("")
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	dup := filepath.Join(dir, "dup.csv")
	require.NoError(t, os.WriteFile(dup, []byte("a,a\n1,2\n"), 0o644))
	_, err = NewDataReader(dup, quietLogger()).ReadTable("")
	assert.ErrorIs(t, err, core.ErrDuplicateColumn)
}

func TestReaderMissingSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viagens.xlsx")
	require.NoError(t, NewDataWriter(path, "", quietLogger()).WriteTable(travelTable(t)))

	tbl, err := NewDataReader(path, quietLogger()).ReadTable("Resumo")
	assert.Nil(t, tbl)
	assert.ErrorIs(t, err, core.ErrSheetNotFound)
	assert.Contains(t, err.Error(), "Sheet1")
}
