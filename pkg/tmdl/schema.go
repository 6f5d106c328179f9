// Package tmdl generates TMDL semantic model definitions from a schema description.
package tmdl

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed schema.yaml
var defaultSchemaYAML []byte

// LogicalType is the SharePoint-side type of a list column.
type LogicalType string

const (
	TypeText     LogicalType = "text"
	TypeNumber   LogicalType = "number"
	TypeDateTime LogicalType = "datetime"
	TypeBoolean  LogicalType = "boolean"
	TypeChoice   LogicalType = "choice"
)

// FilterDirection is the cross-filtering behavior of a relationship.
type FilterDirection string

const (
	OneToMany      FilterDirection = "oneToMany"
	BothDirections FilterDirection = "bothDirections"
)

// Column describes a single table column.
type Column struct {
	// Name is the column name in the model.
	Name string `yaml:"name"`
	// Type is the logical type of the source column.
	Type LogicalType `yaml:"type"`
	// Source is the source column name. Defaults to Name.
	Source string `yaml:"source,omitempty"`
	// Expression makes the column calculated. Calculated columns have no source.
	Expression string `yaml:"expression,omitempty"`
}

// SourceColumn returns the source column name, falling back to Name.
func (c Column) SourceColumn() string {
	if c.Source != "" {
		return c.Source
	}
	return c.Name
}

// Calculated reports whether the column is derived from an expression.
func (c Column) Calculated() bool {
	return c.Expression != ""
}

// Table describes a table imported from a SharePoint list.
type Table struct {
	// Name is the table name in the model.
	Name string `yaml:"name"`
	// List is the SharePoint list title. Defaults to Name.
	List string `yaml:"list,omitempty"`
	// Columns are rendered in order.
	Columns []Column `yaml:"columns"`
}

// ListTitle returns the SharePoint list title, falling back to Name.
func (t Table) ListTitle() string {
	if t.List != "" {
		return t.List
	}
	return t.Name
}

// ColumnRef points at a column of a table.
type ColumnRef struct {
	Table  string `yaml:"table"`
	Column string `yaml:"column"`
}

func (r ColumnRef) String() string {
	return fmt.Sprintf("%s[%s]", r.Table, r.Column)
}

// Relationship links two table columns.
type Relationship struct {
	// Name defaults to From.Column.
	Name        string          `yaml:"name,omitempty"`
	From        ColumnRef       `yaml:"from"`
	To          ColumnRef       `yaml:"to"`
	CrossFilter FilterDirection `yaml:"cross_filter"`
}

// DisplayName returns the relationship name, falling back to the source column.
func (r Relationship) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.From.Column
}

// Measure is a named DAX aggregate.
type Measure struct {
	Name        string `yaml:"name"`
	Expression  string `yaml:"expression"`
	Format      string `yaml:"format,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// DateTable configures the synthetic calendar table.
type DateTable struct {
	// Name is the table name. Defaults to DateTable.
	Name string `yaml:"name"`
	// Start is the first calendar day (YYYY-MM-DD).
	Start string `yaml:"start"`
	// End is the last calendar day (YYYY-MM-DD).
	End string `yaml:"end"`
}

// Model holds model-level metadata.
type Model struct {
	Name    string `yaml:"name"`
	Culture string `yaml:"culture"`
}

// Schema is the complete description of a semantic model.
type Schema struct {
	Model         Model          `yaml:"model"`
	Tables        []Table        `yaml:"tables"`
	DateTable     DateTable      `yaml:"date_table"`
	Relationships []Relationship `yaml:"relationships"`
	Measures      []Measure      `yaml:"measures"`
}

// Table returns the business table with the given name.
func (s *Schema) Table(name string) (Table, bool) {
	for _, t := range s.Tables {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}

// TableNames returns the business table names followed by the date table name.
func (s *Schema) TableNames() []string {
	names := make([]string, 0, len(s.Tables)+1)
	for _, t := range s.Tables {
		names = append(names, t.Name)
	}
	return append(names, s.DateTable.Name)
}

// applyDefaults fills optional model and date table settings.
func (s *Schema) applyDefaults() {
	if s.Model.Name == "" {
		s.Model.Name = "MissionSchedulingModel"
	}
	if s.Model.Culture == "" {
		s.Model.Culture = "en-US"
	}
	if s.DateTable.Name == "" {
		s.DateTable.Name = "DateTable"
	}
	if s.DateTable.Start == "" {
		s.DateTable.Start = "2024-01-01"
	}
	if s.DateTable.End == "" {
		s.DateTable.End = "2026-12-31"
	}
}

// ParseSchema decodes a YAML schema and applies defaults.
// The result is not validated; Generate validates before rendering.
func ParseSchema(r io.Reader) (*Schema, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Schema
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	s.applyDefaults()
	return &s, nil
}

// LoadSchema reads a schema file from disk.
func LoadSchema(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schema: %w", err)
	}
	defer f.Close()

	return ParseSchema(f)
}

// DefaultSchema returns the built-in Mission Scheduling schema.
func DefaultSchema() *Schema {
	s, err := ParseSchema(bytes.NewReader(defaultSchemaYAML))
	if err != nil {
		panic(fmt.Sprintf("tmdl: embedded schema: %v", err))
	}
	return s
}
