package models

// CellRow represents a single data row.
type CellRow struct {
	// R is the row index in the sheet (1-based).
	R int `json:"r"`
	// Values holds one display value per column; missing cells are empty strings.
	Values []string `json:"values"`
}
