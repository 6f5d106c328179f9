package models

// SheetReport holds the structural diagnostics of a single sheet.
type SheetReport struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// RowCount is the number of data rows, excluding the header row.
	RowCount int `json:"row_count"`
	// ColumnCount is the width of the widest row.
	ColumnCount int `json:"column_count"`
	// Columns profiles each column in sheet order.
	Columns []ColumnProfile `json:"columns,omitempty"`
	// Preview contains the first data rows.
	Preview []CellRow `json:"preview,omitempty"`
	// TableCandidates contains cell ranges likely representing tables.
	TableCandidates []string `json:"table_candidates,omitempty"`
	// PrintAreas contains user-defined print areas.
	PrintAreas []PrintArea `json:"print_areas,omitempty"`
	// Error describes why the sheet could not be read.
	Error string `json:"error,omitempty"`
	// Err is the underlying read failure, nil on success.
	Err error `json:"-"`
}

// ColumnNames returns the column names in sheet order.
func (s *SheetReport) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// PrintArea is a user-defined print range in 1-based, inclusive coordinates.
type PrintArea struct {
	R1 int `json:"r1"`
	C1 int `json:"c1"`
	R2 int `json:"r2"`
	C2 int `json:"c2"`
}
