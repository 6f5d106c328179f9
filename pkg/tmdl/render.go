package tmdl

import (
	"fmt"
	"strings"
)

// DateTimeFormat is the display format attached to every dateTime column.
const DateTimeFormat = "mm/dd/yyyy h:mm AM/PM"

// StorageType maps a logical column type to its TMDL data type.
// Unrecognized types are stored as strings.
func StorageType(t LogicalType) string {
	switch LogicalType(strings.ToLower(string(t))) {
	case TypeNumber:
		return "int64"
	case TypeDateTime:
		return "dateTime"
	case TypeBoolean:
		return "boolean"
	default:
		return "string"
	}
}

// columnBlock holds the properties of a rendered column.
// Exactly one of expression and sourceColumn is set.
type columnBlock struct {
	name         string
	dataType     string
	lineageTag   string
	summarizeBy  string
	expression   string
	sourceColumn string
	formatString string
}

func (b columnBlock) write(sb *strings.Builder) {
	fmt.Fprintf(sb, "  column %s\n", b.name)
	fmt.Fprintf(sb, "    dataType: %s\n", b.dataType)
	fmt.Fprintf(sb, "    lineageTag: %s\n", b.lineageTag)
	fmt.Fprintf(sb, "    summarizeBy: %s", b.summarizeBy)
	if b.expression != "" {
		fmt.Fprintf(sb, "\n    expression: %s", b.expression)
	} else {
		fmt.Fprintf(sb, "\n    sourceColumn: %s", b.sourceColumn)
	}
	if b.formatString != "" {
		fmt.Fprintf(sb, "\n    formatString: %s", b.formatString)
	}
}

// RenderColumn renders a column declaration without a trailing newline.
func RenderColumn(c Column) string {
	dataType := StorageType(c.Type)

	b := columnBlock{
		name:        c.Name,
		dataType:    dataType,
		lineageTag:  LineageTag(c.Name, "column"),
		summarizeBy: "none",
	}
	// Numeric columns are summed by default regardless of what they hold.
	if dataType == "int64" {
		b.summarizeBy = "sum"
	}
	if c.Calculated() {
		b.expression = c.Expression
	} else {
		b.sourceColumn = c.SourceColumn()
	}
	if dataType == "dateTime" {
		b.formatString = DateTimeFormat
	}

	var sb strings.Builder
	b.write(&sb)
	return sb.String()
}

// ListItemsURL returns the SharePoint REST endpoint listing the items of a list.
func ListItemsURL(siteURL, list string) string {
	return fmt.Sprintf("%s/_api/web/lists/getbytitle('%s')/items", strings.TrimRight(siteURL, "/"), list)
}

// RenderTable renders a table with its columns and an import partition
// reading the table's SharePoint list.
func RenderTable(t Table, siteURL string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "table %s\n", t.Name)
	fmt.Fprintf(&sb, "  lineageTag: %s\n\n", LineageTag(t.Name, "table"))

	for _, c := range t.Columns {
		sb.WriteString(RenderColumn(c))
		sb.WriteString("\n\n")
	}

	fmt.Fprintf(&sb, "  partition %s\n", t.Name)
	sb.WriteString("    mode: import\n")
	sb.WriteString("    source:\n")
	sb.WriteString("      type: web\n")
	fmt.Fprintf(&sb, "      url: \"%s\"\n\n", ListItemsURL(siteURL, t.ListTitle()))

	return sb.String()
}

// RenderRelationships renders the relationship section.
func RenderRelationships(rels []Relationship) string {
	var sb strings.Builder

	sb.WriteString("// Relationships\n")
	for _, r := range rels {
		fmt.Fprintf(&sb, "relationship %s from %s to %s\n", r.DisplayName(), r.From, r.To)
		fmt.Fprintf(&sb, "  crossFilteringBehavior: %s\n\n", r.CrossFilter)
	}

	return sb.String()
}

// RenderMeasures renders the measure section.
func RenderMeasures(measures []Measure) string {
	var sb strings.Builder

	sb.WriteString("// Measures\n")
	for _, m := range measures {
		if m.Description != "" {
			fmt.Fprintf(&sb, "/// %s\n", m.Description)
		}
		fmt.Fprintf(&sb, "measure '%s' = %s\n", m.Name, m.Expression)
		fmt.Fprintf(&sb, "  lineageTag: %s", LineageTag(m.Name, "measure"))
		if m.Format != "" {
			fmt.Fprintf(&sb, "\n  formatString: %s", m.Format)
		}
		sb.WriteString("\n\n")
	}

	return sb.String()
}
