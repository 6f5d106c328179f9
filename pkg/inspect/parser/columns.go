package parser

import (
	"strings"
	"time"

	"github.com/OrryLee/mission-scheduling-system/pkg/inspect/models"
	"github.com/montanaflynn/stats"
)

// dateLayouts are the displayed date formats recognized as datetime values,
// including excelize's renderings of the built-in date number formats.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01-02-06",
	"1/2/06",
	"1/2/06 15:04",
	"1/2/2006",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
	"2-Jan-06",
	"02-Jan-06",
}

// ProfileParams controls column profiling.
type ProfileParams struct {
	// Samples is the maximum number of sample values kept per column.
	Samples int
	// Summaries enables numeric summaries for numeric columns.
	Summaries bool
}

// DefaultProfileParams returns default profiling parameters.
func DefaultProfileParams() ProfileParams {
	return ProfileParams{
		Samples:   3,
		Summaries: true,
	}
}

// ProfileColumns profiles every column of a sheet.
func ProfileColumns(data *SheetData, params ProfileParams) []models.ColumnProfile {
	profiles := make([]models.ColumnProfile, len(data.Header))
	for colIdx, name := range data.Header {
		values := data.Column(colIdx)

		p := models.ColumnProfile{
			Name:     name,
			Type:     InferType(values),
			NonEmpty: len(values),
			Samples:  values[:min(max(params.Samples, 0), len(values))],
		}
		if params.Summaries && p.Type.Numeric() {
			p.Summary = summarize(values)
		}
		profiles[colIdx] = p
	}
	return profiles
}

// InferType returns the narrowest type all values conform to.
// Columns without values are reported as object.
func InferType(values []string) models.ValueType {
	if len(values) == 0 {
		return models.TypeObject
	}

	allInt, allNumber, allBool, allDate := true, true, true, true
	for _, v := range values {
		switch parseValue(v).(type) {
		case int64:
		case float64:
			allInt = false
		default:
			allInt, allNumber = false, false
		}
		if !isBool(v) {
			allBool = false
		}
		if allDate && !isDate(v) {
			allDate = false
		}
	}

	switch {
	case allInt:
		return models.TypeInt64
	case allNumber:
		return models.TypeFloat64
	case allBool:
		return models.TypeBool
	case allDate:
		return models.TypeDateTime
	default:
		return models.TypeObject
	}
}

func isBool(s string) bool {
	return strings.EqualFold(s, "true") || strings.EqualFold(s, "false")
}

func isDate(s string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// summarize computes min, max, mean and median of numeric values.
// Returns nil if no value parses as a finite number.
func summarize(values []string) *models.NumericSummary {
	data := make(stats.Float64Data, 0, len(values))
	for _, v := range values {
		if f, ok := parseFinite(v); ok {
			data = append(data, f)
		}
	}
	if data.Len() == 0 {
		return nil
	}

	// Errors only occur for empty input.
	minVal, _ := stats.Min(data)
	maxVal, _ := stats.Max(data)
	mean, _ := stats.Mean(data)
	median, _ := stats.Median(data)

	return &models.NumericSummary{
		Min:    minVal,
		Max:    maxVal,
		Mean:   mean,
		Median: median,
	}
}
