package parser

import (
	"strings"

	"github.com/OrryLee/mission-scheduling-system/pkg/inspect/models"
	"github.com/xuri/excelize/v2"
)

// printAreaName is the reserved defined name Excel uses for print areas.
const printAreaName = "_xlnm.Print_Area"

// ExtractPrintAreas returns the print areas of a workbook keyed by sheet name.
func ExtractPrintAreas(f *excelize.File) map[string][]models.PrintArea {
	result := make(map[string][]models.PrintArea)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		for _, ref := range strings.Split(dn.RefersTo, ",") {
			sheet, area, ok := parseAreaRef(ref)
			if !ok {
				continue
			}
			// A sheet-scoped name may omit the sheet in its reference.
			if sheet == "" && dn.Scope != "" && dn.Scope != "Workbook" {
				sheet = dn.Scope
			}
			if sheet != "" {
				result[sheet] = append(result[sheet], area)
			}
		}
	}

	return result
}

// parseAreaRef parses 'Sheet Name'!$A$1:$D$10 (sheet optional).
func parseAreaRef(ref string) (string, models.PrintArea, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", models.PrintArea{}, false
	}

	var sheet string
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheet = strings.Trim(ref[:idx], "'")
		ref = ref[idx+1:]
	}

	parts := strings.Split(strings.ReplaceAll(ref, "$", ""), ":")
	if len(parts) != 2 {
		return "", models.PrintArea{}, false
	}
	c1, r1, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return "", models.PrintArea{}, false
	}
	c2, r2, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return "", models.PrintArea{}, false
	}

	return sheet, models.PrintArea{R1: r1, C1: c1, R2: r2, C2: c2}, true
}

// AreaRef formats a print area as an A1-style range.
func AreaRef(a models.PrintArea) string {
	return RangeRef(a.R1, a.C1, a.R2, a.C2)
}
