package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	// DensityMin is the minimum share of non-empty cells in the bounding box.
	DensityMin float64
	// CoverageMin is the minimum share of bounding-box rows holding any value.
	CoverageMin float64
	// MinNonemptyCells is the minimum number of non-empty cells.
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		CoverageMin:      0.2,
		MinNonemptyCells: 3,
	}
}

// DetectTables returns the A1-style range (e.g. "A1:D10") of the populated
// region of a sheet when it is dense enough to be a table.
func DetectTables(rows [][]string, params TableDetectionParams) []string {
	b, ok := dataBounds(rows)
	if !ok {
		return nil
	}

	nonEmpty, populatedRows := 0, 0
	for rowIdx := b.minRow; rowIdx <= b.maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		hasData := false
		for colIdx := b.minCol; colIdx <= b.maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				nonEmpty++
				hasData = true
			}
		}
		if hasData {
			populatedRows++
		}
	}

	if nonEmpty < params.MinNonemptyCells {
		return nil
	}

	height := b.maxRow - b.minRow + 1
	width := b.maxCol - b.minCol + 1
	if float64(nonEmpty)/float64(height*width) < params.DensityMin {
		return nil
	}
	if float64(populatedRows)/float64(height) < params.CoverageMin {
		return nil
	}

	return []string{RangeRef(b.minRow+1, b.minCol+1, b.maxRow+1, b.maxCol+1)}
}

// RangeRef formats 1-based, inclusive coordinates as an A1-style range.
func RangeRef(r1, c1, r2, c2 int) string {
	start, _ := excelize.CoordinatesToCellName(c1, r1)
	end, _ := excelize.CoordinatesToCellName(c2, r2)
	return fmt.Sprintf("%s:%s", start, end)
}

// bounds is a 0-based, inclusive bounding box.
type bounds struct {
	minRow, maxRow, minCol, maxCol int
}

// dataBounds finds the bounding box of non-empty cells.
func dataBounds(rows [][]string) (bounds, bool) {
	b := bounds{minRow: -1, maxRow: -1, minCol: -1, maxCol: -1}

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if b.minRow < 0 {
				b.minRow = rowIdx
			}
			b.maxRow = rowIdx
			if b.minCol < 0 || colIdx < b.minCol {
				b.minCol = colIdx
			}
			if colIdx > b.maxCol {
				b.maxCol = colIdx
			}
		}
	}

	return b, b.minRow >= 0
}
