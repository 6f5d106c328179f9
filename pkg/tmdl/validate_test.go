package tmdl

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSchemaIsValid(t *testing.T) {
	s := DefaultSchema()

	require.NoError(t, s.Validate())
	assert.Len(t, s.Tables, 4)
	assert.Len(t, s.Relationships, 3)
	assert.Len(t, s.Measures, 5)
	assert.Equal(t, "MissionSchedulingModel", s.Model.Name)
	assert.Equal(t, "DateTable", s.DateTable.Name)
}

func TestValidateRejectsDanglingRelationship(t *testing.T) {
	s := DefaultSchema()
	s.Relationships[0].To.Column = "Missing_Column"

	err := s.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSchema)
	assert.ErrorIs(t, err, ErrUnknownReference)

	var refErr *ReferenceError
	require.True(t, errors.As(err, &refErr))
	assert.Equal(t, "relationship Personnel_DOD_ID", refErr.Object)
	assert.Equal(t, "Personnel_Roster[Missing_Column]", refErr.Ref)
}

func TestValidateRejectsRelationshipToUnknownTable(t *testing.T) {
	s := DefaultSchema()
	s.DateTable.Name = "Calendar"

	err := s.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownReference)
	assert.Contains(t, err.Error(), "DateTable[Date]")
}

func TestValidateRejectsDanglingMeasureReferences(t *testing.T) {
	tests := []struct {
		name string
		expr string
		ref  string
	}{
		{"unknown column", `CALCULATE(COUNTROWS(Mission_Calendar), Mission_Calendar[State] = "Active")`, "Mission_Calendar[State]"},
		{"unknown table", "COUNTROWS(Missions)", "Missions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSchema()
			s.Measures = append(s.Measures, Measure{Name: "Broken", Expression: tt.expr})

			err := s.Validate()
			require.Error(t, err)

			var refErr *ReferenceError
			require.True(t, errors.As(err, &refErr))
			assert.Equal(t, "measure 'Broken'", refErr.Object)
			assert.Equal(t, tt.ref, refErr.Ref)
		})
	}
}

func TestValidateRejectsDanglingColumnExpression(t *testing.T) {
	s := DefaultSchema()
	s.Tables[0].Columns = append(s.Tables[0].Columns, Column{
		Name:       "Initials",
		Type:       TypeText,
		Expression: "LEFT(Personnel_Roster[Middle_Name], 1)",
	})

	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "column Personnel_Roster[Initials] references Personnel_Roster[Middle_Name]")
}

func TestValidateRejectsDuplicates(t *testing.T) {
	s := DefaultSchema()
	s.Tables = append(s.Tables, s.Tables[1])
	s.Tables[0].Columns = append(s.Tables[0].Columns, Column{Name: "Unit", Type: TypeText})
	s.Measures = append(s.Measures, s.Measures[0])

	err := s.Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, `duplicate table "Mission_Calendar"`)
	assert.Contains(t, msg, `duplicate column "Unit" in Personnel_Roster`)
	assert.Contains(t, msg, `duplicate measure "Total Missions"`)
}

func TestValidateRejectsLineageTagCollisions(t *testing.T) {
	s := DefaultSchema()
	log := &s.Tables[3]
	require.Equal(t, "Conflict_Log", log.Name)
	log.Columns = append(log.Columns,
		Column{Name: "Resolution__Notes", Type: TypeText},
		Column{Name: "RESOLUTION_NOTES", Type: TypeText},
	)
	s.Tables = append(s.Tables, Table{Name: "Date", Columns: []Column{{Name: "Day", Type: TypeDateTime}}})
	s.Measures = append(s.Measures, Measure{Name: "Total_Missions", Expression: "COUNTROWS(Mission_Calendar)"})

	err := s.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSchema)

	var dup *DuplicateError
	require.True(t, errors.As(err, &dup))

	msg := err.Error()
	assert.Contains(t, msg, `duplicate column lineage tag "resolution-notes-column" in Conflict_Log`)
	assert.Contains(t, msg, `duplicate table lineage tag "date-table"`)
	assert.Contains(t, msg, `duplicate measure lineage tag "total-missions-measure"`)
	assert.NotContains(t, msg, "resolution--notes-column")
}

func TestValidateFieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Schema)
		field  string
	}{
		{"missing model name", func(s *Schema) { s.Model.Name = "" }, "Model"},
		{"no tables", func(s *Schema) { s.Tables = nil }, "Tables"},
		{"bad table name", func(s *Schema) { s.Tables[0].Name = "Personnel Roster" }, "Tables"},
		{"missing column type", func(s *Schema) { s.Tables[0].Columns[0].Type = "" }, "Tables"},
		{"bad cross filter", func(s *Schema) { s.Relationships[0].CrossFilter = "manyToMany" }, "Relationships"},
		{"empty measure expression", func(s *Schema) { s.Measures[0].Expression = "" }, "Measures"},
		{"bad date", func(s *Schema) { s.DateTable.Start = "2024/01/01" }, "DateTable"},
		{"reversed dates", func(s *Schema) { s.DateTable.Start, s.DateTable.End = s.DateTable.End, s.DateTable.Start }, "DateTable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSchema()
			tt.mutate(s)

			err := s.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSchema)
			assert.True(t, strings.Contains(err.Error(), tt.field), "error %q should mention %s", err, tt.field)
		})
	}
}

func TestUnknownLogicalTypeIsAccepted(t *testing.T) {
	s := DefaultSchema()
	s.Tables[0].Columns[0].Type = "person"

	assert.NoError(t, s.Validate())
}
