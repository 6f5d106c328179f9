package inspect

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/OrryLee/mission-scheduling-system/pkg/inspect/models"
	"github.com/OrryLee/mission-scheduling-system/pkg/inspect/parser"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/montanaflynn/stats"
)

const (
	heavyRule = "=================================================="
	lightRule = "------------------------------"
)

// writeHeader writes the banner that opens every report.
func writeHeader(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "Analyzing Excel file: %s\n", path)
	_, _ = fmt.Fprintln(w, heavyRule)
}

// WriteReport writes the text report of an inspected workbook.
func WriteReport(w io.Writer, report *models.WorkbookReport) {
	writeHeader(w, report.Path)
	_, _ = fmt.Fprintf(w, "Number of sheets: %d\n", len(report.Sheets))
	_, _ = fmt.Fprintf(w, "Sheet names: %s\n", list(report.SheetNames()))
	_, _ = fmt.Fprintln(w)

	for i := range report.Sheets {
		writeSheet(w, report, &report.Sheets[i])
	}
}

func writeSheet(w io.Writer, report *models.WorkbookReport, s *models.SheetReport) {
	_, _ = fmt.Fprintf(w, "SHEET: %s\n", s.Name)
	_, _ = fmt.Fprintln(w, lightRule)

	if s.Err != nil || s.Error != "" {
		_, _ = fmt.Fprintf(w, "Error reading sheet: %s\n", s.Error)
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, heavyRule)
		return
	}

	_, _ = fmt.Fprintf(w, "Dimensions: %d rows x %d columns\n", s.RowCount, s.ColumnCount)
	_, _ = fmt.Fprintf(w, "Columns: %s\n", list(s.ColumnNames()))
	_, _ = fmt.Fprintln(w)

	_, _ = fmt.Fprintln(w, "Data types:")
	for _, c := range s.Columns {
		_, _ = fmt.Fprintf(w, "  %s: %s\n", c.Name, c.Type)
	}
	_, _ = fmt.Fprintln(w)

	if report.AllRows {
		_, _ = fmt.Fprintln(w, "All rows:")
	} else {
		_, _ = fmt.Fprintf(w, "First %d rows:\n", report.PreviewLimit)
	}
	writePreview(w, s)
	_, _ = fmt.Fprintln(w)

	_, _ = fmt.Fprintln(w, "Sample data by column:")
	for _, c := range s.Columns {
		if len(c.Samples) == 0 {
			_, _ = fmt.Fprintf(w, "  %s: [No data]\n", c.Name)
			continue
		}
		_, _ = fmt.Fprintf(w, "  %s: %s\n", c.Name, list(c.Samples))
	}
	_, _ = fmt.Fprintln(w)

	if hasSummary(s.Columns) {
		_, _ = fmt.Fprintln(w, "Numeric summary:")
		for _, c := range s.Columns {
			if c.Summary == nil {
				continue
			}
			_, _ = fmt.Fprintf(w, "  %s: min=%s max=%s mean=%s median=%s\n",
				c.Name,
				formatFloat(c.Summary.Min),
				formatFloat(c.Summary.Max),
				formatFloat(round(c.Summary.Mean)),
				formatFloat(c.Summary.Median))
		}
		_, _ = fmt.Fprintln(w)
	}

	if len(s.TableCandidates) > 0 || len(s.PrintAreas) > 0 {
		if len(s.TableCandidates) > 0 {
			_, _ = fmt.Fprintf(w, "Table candidates: %s\n", list(s.TableCandidates))
		}
		if len(s.PrintAreas) > 0 {
			refs := make([]string, len(s.PrintAreas))
			for i, a := range s.PrintAreas {
				refs[i] = parser.AreaRef(a)
			}
			_, _ = fmt.Fprintf(w, "Print areas: %s\n", list(refs))
		}
		_, _ = fmt.Fprintln(w)
	}

	_, _ = fmt.Fprintln(w, heavyRule)
}

// writePreview renders the header and preview rows as a table, with the
// sheet row number in the first column.
func writePreview(w io.Writer, s *models.SheetReport) {
	if len(s.Preview) == 0 {
		_, _ = fmt.Fprintln(w, "(no data rows)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault

	header := make(table.Row, 0, len(s.Columns)+1)
	header = append(header, "Row")
	for _, name := range s.ColumnNames() {
		header = append(header, name)
	}
	t.AppendHeader(header)

	for _, r := range s.Preview {
		row := make(table.Row, 0, len(r.Values)+1)
		row = append(row, r.R)
		for _, v := range r.Values {
			row = append(row, v)
		}
		t.AppendRow(row)
	}

	t.Render()
}

func hasSummary(columns []models.ColumnProfile) bool {
	for _, c := range columns {
		if c.Summary != nil {
			return true
		}
	}
	return false
}

func list(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}

func round(v float64) float64 {
	r, err := stats.Round(v, 2)
	if err != nil {
		return v
	}
	return r
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
