package tmdl

import (
	"fmt"
	"os"
	"strings"
)

// DefaultOutputFile is the file name written when no output path is configured.
const DefaultOutputFile = "mission_scheduling_generated.tmdl"

// renderHeader renders the model declaration and its fixed options.
func renderHeader(m Model) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "model %s\n", m.Name)
	fmt.Fprintf(&sb, "  culture: %s\n", m.Culture)
	sb.WriteString("  defaultPowerBIDataSourceVersion: powerBI_V3\n")
	fmt.Fprintf(&sb, "  sourceQueryCulture: %s\n", m.Culture)
	sb.WriteString("  dataAccessOptions\n")
	sb.WriteString("    legacyRedirects\n")
	sb.WriteString("    returnErrorValuesAsNull\n\n")

	return sb.String()
}

// renderAnnotations renders the trailing model annotations.
func renderAnnotations(tableNames []string) string {
	quoted := make([]string, len(tableNames))
	for i, name := range tableNames {
		quoted[i] = `"` + name + `"`
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "annotation PBI_QueryOrder = [%s]\n\n", strings.Join(quoted, ", "))
	sb.WriteString("annotation PBI_ProTooling = [\"DevMode\"]\n")
	return sb.String()
}

// Generate validates the schema and renders the complete model document:
// header, business tables, date table, relationships, measures and annotations.
// The output depends only on its inputs.
func Generate(s *Schema, siteURL string) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}

	var sb strings.Builder

	sb.WriteString(renderHeader(s.Model))

	for _, t := range s.Tables {
		sb.WriteString(RenderTable(t, siteURL))
	}

	dateTable, err := RenderDateTable(s.DateTable)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	sb.WriteString(dateTable)

	sb.WriteString(RenderRelationships(s.Relationships))
	sb.WriteString(RenderMeasures(s.Measures))
	sb.WriteString(renderAnnotations(s.TableNames()))

	return sb.String(), nil
}

// WriteFile writes the document to path, replacing any existing content.
func WriteFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write model: %w", err)
	}
	return nil
}
