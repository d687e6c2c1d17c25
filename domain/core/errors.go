package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound       = errors.New("resource not found")
	ErrColumnNotFound = fmt.Errorf("%w: column", ErrNotFound)
	ErrSheetNotFound  = fmt.Errorf("%w: sheet", ErrNotFound)
	ErrFileNotFound   = fmt.Errorf("%w: file", ErrNotFound)

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrRaggedColumns   = errors.New("columns have different lengths")
	ErrDuplicateColumn = errors.New("duplicate column name")
	ErrNotNumeric      = fmt.Errorf("%w: value is not numeric", ErrInvalidInput)

	// Data volume errors
	ErrEmptySample      = errors.New("sample is empty")
	ErrNotEnoughData    = errors.New("not enough data")
	ErrNothingToExport  = fmt.Errorf("%w: nothing to export", ErrEmptySample)
	ErrUnsupportedInput = errors.New("unsupported file type")
)

// Error constructors with context
func NewNotFoundError(resource string, name string) error {
	return fmt.Errorf("%w: %s %q", ErrNotFound, resource, name)
}

func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

func NewCellError(column string, row int, err error) error {
	return fmt.Errorf("column %q row %d: %w", column, row, err)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrRaggedColumns) ||
		errors.Is(err, ErrDuplicateColumn) ||
		errors.Is(err, ErrUnsupportedInput)
}

func IsEmptyDataError(err error) bool {
	return errors.Is(err, ErrEmptySample) ||
		errors.Is(err, ErrNotEnoughData)
}
