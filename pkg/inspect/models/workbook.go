// Package models defines the data structures of a spreadsheet inspection report.
package models

// WorkbookReport is the structural report for one workbook.
type WorkbookReport struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Path is the path the workbook was opened from.
	Path string `json:"path"`
	// PreviewLimit is the maximum number of data rows kept per sheet preview.
	// It is 0 when AllRows is set.
	PreviewLimit int `json:"preview_limit"`
	// AllRows is set when every data row is kept in the previews.
	AllRows bool `json:"all_rows,omitempty"`
	// Sheets holds one report per sheet, in workbook order.
	Sheets []SheetReport `json:"sheets"`
}

// SheetNames returns the sheet names in workbook order.
func (w *WorkbookReport) SheetNames() []string {
	names := make([]string, len(w.Sheets))
	for i, s := range w.Sheets {
		names[i] = s.Name
	}
	return names
}
