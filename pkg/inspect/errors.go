package inspect

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable spreadsheet.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// FileAccessError reports a workbook that could not be opened.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// SheetError represents a failure while reading one sheet.
type SheetError struct {
	SheetName string
	Component string // "rows"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName, component string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
