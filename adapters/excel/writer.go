package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"tabstat/domain/table"
	"tabstat/internal"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// DataWriter saves a table to an Excel or CSV file
type DataWriter struct {
	filePath string
	sheet    string
	logger   *internal.Logger
}

// NewDataWriter creates a writer for filePath. sheet names the worksheet of
// xlsx output and defaults to Sheet1.
func NewDataWriter(filePath, sheet string, logger *internal.Logger) *DataWriter {
	if sheet == "" {
		sheet = defaultSheet
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &DataWriter{filePath: filePath, sheet: sheet, logger: logger.With("DataWriter")}
}

// WriteTable writes t, replacing any existing file
func (w *DataWriter) WriteTable(t *table.Table) error {
	fileType, err := DetectFileType(w.filePath)
	if err != nil {
		return err
	}

	switch fileType {
	case FileTypeCSV:
		err = w.writeCSV(t)
	default:
		err = w.writeExcel(t)
	}
	if err != nil {
		return err
	}

	w.logger.Info("%s written (%d columns, %d rows)", w.filePath, t.Width(), t.Len())
	return nil
}

func (w *DataWriter) writeExcel(t *table.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if w.sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, w.sheet); err != nil {
			return fmt.Errorf("failed to name sheet %q: %w", w.sheet, err)
		}
	}

	names := t.Names()
	if len(names) > 0 {
		header := make([]interface{}, len(names))
		for i, name := range names {
			header[i] = name
		}
		if err := f.SetSheetRow(w.sheet, "A1", &header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}

		bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return fmt.Errorf("failed to create header style: %w", err)
		}
		last, err := excelize.CoordinatesToCellName(len(names), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(w.sheet, "A1", last, bold); err != nil {
			return fmt.Errorf("failed to style header: %w", err)
		}
	}

	for i := 0; i < t.Len(); i++ {
		cells := t.Row(i)
		values := make([]interface{}, len(cells))
		for j, cell := range cells {
			values[j] = excelValue(cell)
		}
		start, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(w.sheet, start, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(w.filePath); err != nil {
		return fmt.Errorf("failed to save Excel file %s: %w", w.filePath, err)
	}
	return nil
}

func (w *DataWriter) writeCSV(t *table.Table) error {
	file, err := os.Create(w.filePath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file %s: %w", w.filePath, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(t.Names()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := writer.WriteAll(t.Rows()); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return file.Close()
}

// excelValue stores canonical numbers as numeric cells and everything else
// as text, so "100" stays a number while "007" or "A123" stay strings.
func excelValue(cell table.Cell) interface{} {
	if cell == nil {
		return nil
	}
	if v, err := strconv.ParseFloat(*cell, 64); err == nil && strconv.FormatFloat(v, 'f', -1, 64) == *cell {
		return v
	}
	return *cell
}
