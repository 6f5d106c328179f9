package parser

import (
	"testing"

	"github.com/OrryLee/mission-scheduling-system/pkg/inspect/models"
	"github.com/stretchr/testify/assert"
)

func TestDetectTables(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want []string
	}{
		{"empty", nil, nil},
		{
			name: "offset block",
			rows: [][]string{
				{},
				{"", "ID", "Name"},
				{"", "1", "Alpha"},
				{"", "2", "Bravo"},
			},
			want: []string{"B2:C4"},
		},
		{
			name: "too few cells",
			rows: [][]string{{"only"}, {"two"}},
			want: nil,
		},
		{
			name: "too sparse",
			rows: func() [][]string {
				rows := make([][]string, 30)
				rows[0] = []string{"a", "b"}
				rows[29] = make([]string, 30)
				rows[29][29] = "z"
				return rows
			}(),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectTables(tt.rows, DefaultTableParams()))
		})
	}
}

func TestParseAreaRef(t *testing.T) {
	tests := []struct {
		ref       string
		wantSheet string
		wantArea  models.PrintArea
		wantOK    bool
	}{
		{"'Mission Calendar'!$A$1:$D$10", "Mission Calendar", models.PrintArea{R1: 1, C1: 1, R2: 10, C2: 4}, true},
		{"Sheet1!$B$2:$C$3", "Sheet1", models.PrintArea{R1: 2, C1: 2, R2: 3, C2: 3}, true},
		{"$A$1:$B$2", "", models.PrintArea{R1: 1, C1: 1, R2: 2, C2: 2}, true},
		{"Sheet1!$A$1", "", models.PrintArea{}, false},
		{"", "", models.PrintArea{}, false},
	}

	for _, tt := range tests {
		sheet, area, ok := parseAreaRef(tt.ref)
		assert.Equal(t, tt.wantOK, ok, "parseAreaRef(%q)", tt.ref)
		if tt.wantOK {
			assert.Equal(t, tt.wantSheet, sheet, "parseAreaRef(%q)", tt.ref)
			assert.Equal(t, tt.wantArea, area, "parseAreaRef(%q)", tt.ref)
		}
	}
}

func TestAreaRef(t *testing.T) {
	assert.Equal(t, "A1:D10", AreaRef(models.PrintArea{R1: 1, C1: 1, R2: 10, C2: 4}))
}
