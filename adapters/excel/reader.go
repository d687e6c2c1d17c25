package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"tabstat/domain/core"
	"tabstat/domain/table"
	"tabstat/internal"

	"github.com/xuri/excelize/v2"
)

const utf8BOM = "\ufeff"

// DataReader loads a table from an Excel or CSV file
type DataReader struct {
	filePath string
	logger   *internal.Logger
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(filePath string, logger *internal.Logger) *DataReader {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &DataReader{filePath: filePath, logger: logger.With("DataReader")}
}

// ReadTable reads the whole file into a table. For workbooks sheet selects
// the worksheet; an empty sheet means the first one. CSV files ignore sheet.
// Either the complete table or an error is returned, never a partial table.
func (r *DataReader) ReadTable(sheet string) (*table.Table, error) {
	fileType, err := DetectFileType(r.filePath)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(r.filePath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", core.ErrFileNotFound, r.filePath)
		}
		return nil, fmt.Errorf("failed to access %s: %w", r.filePath, err)
	}

	r.logger.Debug("Starting to read %s file: %s", fileType, r.filePath)

	var rows [][]string
	switch fileType {
	case FileTypeCSV:
		rows, err = r.readCSVRows()
	default:
		rows, err = r.readExcelRows(sheet)
	}
	if err != nil {
		return nil, err
	}

	return r.processRows(rows)
}

// readExcelRows reads raw cell values of one worksheet
func (r *DataReader) readExcelRows(sheet string) ([][]string, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file %s: %w", r.filePath, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if sheet == "" && len(sheets) > 0 {
		sheet = sheets[0]
	}
	if !containsString(sheets, sheet) {
		return nil, fmt.Errorf("%w: %q in %s (available: %s)",
			core.ErrSheetNotFound, sheet, r.filePath, strings.Join(sheets, ", "))
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	r.logger.Debug("Sheet %s read in %.2fms (%d rows)", sheet,
		float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	return rows, nil
}

// readCSVRows reads every record of a CSV file
func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file %s: %w", r.filePath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file %s: %w", r.filePath, err)
	}

	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], utf8BOM)
	}
	return rows, nil
}

// processRows turns the header row and data rows into a table
func (r *DataReader) processRows(rows [][]string) (*table.Table, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: %s has no header row", core.ErrInvalidInput, r.filePath)
	}

	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
		if headers[i] == "" {
			headers[i] = fmt.Sprintf("Unnamed: %d", i)
		}
	}

	dataRows := rows[1:]
	for i, row := range dataRows {
		for j, cell := range row {
			row[j] = strings.TrimSpace(cell)
		}
		dataRows[i] = row
	}

	t, err := table.FromRows(headers, dataRows)
	if err != nil {
		return nil, fmt.Errorf("invalid table in %s: %w", r.filePath, err)
	}

	r.logger.Info("%s loaded (%d columns, %d rows)", r.filePath, t.Width(), t.Len())
	return t, nil
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
