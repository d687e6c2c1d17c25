package excel

import (
	"fmt"
	"path/filepath"
	"strings"

	"tabstat/domain/core"
)

// FileType is the on-disk table format
type FileType string

const (
	FileTypeXLSX FileType = "xlsx"
	FileTypeCSV  FileType = "csv"
)

// DetectFileType maps a path extension to a FileType
func DetectFileType(path string) (FileType, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		return FileTypeXLSX, nil
	case ".csv":
		return FileTypeCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", core.ErrUnsupportedInput, ext)
	}
}
