// Package parser reads sheet contents from spreadsheet files.
package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/OrryLee/mission-scheduling-system/pkg/inspect/models"
	"github.com/xuri/excelize/v2"
)

// SheetData is the tabular view of a sheet: the first row is the header,
// every following row is data.
type SheetData struct {
	// Header holds one name per column.
	Header []string
	// Rows holds the data rows padded to the header width.
	Rows []models.CellRow
	// Raw is the sheet as returned by the decoder, header included.
	Raw [][]string
}

// ReadSheet reads a sheet's displayed cell values.
// Blank header cells are named "Unnamed: <index>" with a 0-based index.
func ReadSheet(f *excelize.File, sheetName string) (*SheetData, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	data := &SheetData{
		Header: make([]string, width),
		Raw:    rows,
	}

	for colIdx := range data.Header {
		var name string
		if len(rows) > 0 && colIdx < len(rows[0]) {
			name = strings.TrimSpace(rows[0][colIdx])
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", colIdx)
		}
		data.Header[colIdx] = name
	}

	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		values := make([]string, width)
		copy(values, rows[rowIdx])
		data.Rows = append(data.Rows, models.CellRow{
			R:      rowIdx + 1, // 1-based row index
			Values: values,
		})
	}

	return data, nil
}

// Column returns the trimmed non-empty values of a column in row order.
func (d *SheetData) Column(colIdx int) []string {
	var values []string
	for _, row := range d.Rows {
		if colIdx >= len(row.Values) {
			continue
		}
		if v := strings.TrimSpace(row.Values[colIdx]); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for finite decimals, or the original string.
// Words such as "NaN" and "Infinity" stay text.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, ok := parseFinite(s); ok {
		return f
	}
	// Return as string
	return s
}

// parseFinite parses s as a float, rejecting NaN and infinities.
func parseFinite(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
