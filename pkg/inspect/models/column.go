package models

// ValueType is the inferred type of a column's values.
type ValueType string

const (
	TypeInt64    ValueType = "int64"
	TypeFloat64  ValueType = "float64"
	TypeBool     ValueType = "bool"
	TypeDateTime ValueType = "datetime"
	TypeObject   ValueType = "object"
)

// Numeric reports whether values of this type are numbers.
func (t ValueType) Numeric() bool {
	return t == TypeInt64 || t == TypeFloat64
}

// NumericSummary holds basic statistics of a numeric column.
type NumericSummary struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
}

// ColumnProfile describes one column of a sheet.
type ColumnProfile struct {
	// Name is the header cell text, or "Unnamed: <index>" for blank headers.
	Name string `json:"name"`
	// Type is inferred from the non-empty data values.
	Type ValueType `json:"type"`
	// NonEmpty is the number of non-empty data values.
	NonEmpty int `json:"non_empty"`
	// Samples holds the first non-empty values.
	Samples []string `json:"samples"`
	// Summary is set for numeric columns when summaries are enabled.
	Summary *NumericSummary `json:"summary,omitempty"`
}
