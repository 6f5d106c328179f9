package tmdl

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout is the layout of DateTable.Start and DateTable.End.
const dateLayout = "2006-01-02"

// dateTableTag is the fixed lineage tag of the calendar table.
const dateTableTag = "date-table"

// dateColumn is a column of the calendar table. Every column except Date is
// derived from Date, with expr formatted against the table name.
type dateColumn struct {
	name       string
	dataType   string
	lineageTag string
	expr       string
}

var dateColumns = []dateColumn{
	{name: "Date", dataType: "dateTime", lineageTag: "date-column"},
	{name: "Year", dataType: "int64", lineageTag: "year-column", expr: "YEAR(%s[Date])"},
	{name: "Month", dataType: "int64", lineageTag: "month-column", expr: "MONTH(%s[Date])"},
	{name: "MonthName", dataType: "string", lineageTag: "month-name-column", expr: `FORMAT(%s[Date], "MMMM")`},
	{name: "Quarter", dataType: "int64", lineageTag: "quarter-column", expr: "QUARTER(%s[Date])"},
	{name: "WeekOfYear", dataType: "int64", lineageTag: "week-of-year-column", expr: "WEEKNUM(%s[Date])"},
	{name: "DayOfWeek", dataType: "int64", lineageTag: "day-of-week-column", expr: "WEEKDAY(%s[Date])"},
	{name: "DayName", dataType: "string", lineageTag: "day-name-column", expr: `FORMAT(%s[Date], "dddd")`},
	{name: "IsWeekend", dataType: "boolean", lineageTag: "is-weekend-column", expr: "%s[DayOfWeek] IN {1, 7}"},
}

// DateColumns returns the column names of the calendar table in declaration order.
func DateColumns() []string {
	names := make([]string, len(dateColumns))
	for i, c := range dateColumns {
		names[i] = c.name
	}
	return names
}

// Range returns the parsed first and last day of the calendar.
func (d DateTable) Range() (start, end time.Time, err error) {
	start, err = time.Parse(dateLayout, d.Start)
	if err != nil {
		return start, end, fmt.Errorf("date table start: %w", err)
	}
	end, err = time.Parse(dateLayout, d.End)
	if err != nil {
		return start, end, fmt.Errorf("date table end: %w", err)
	}
	return start, end, nil
}

// daxDate formats t as a DAX DATE() call.
func daxDate(t time.Time) string {
	return fmt.Sprintf("DATE(%d, %d, %d)", t.Year(), int(t.Month()), t.Day())
}

// RenderDateTable renders the calendar table and its calculated partition.
func RenderDateTable(d DateTable) (string, error) {
	start, end, err := d.Range()
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "table %s\n", d.Name)
	fmt.Fprintf(&sb, "  lineageTag: %s\n", dateTableTag)
	sb.WriteString("  dataCategory: Time\n\n")

	for _, c := range dateColumns {
		b := columnBlock{
			name:        c.name,
			dataType:    c.dataType,
			lineageTag:  c.lineageTag,
			summarizeBy: "none",
		}
		if c.expr != "" {
			b.expression = fmt.Sprintf(c.expr, d.Name)
		} else {
			b.sourceColumn = c.name
			b.formatString = "mm/dd/yyyy"
		}
		b.write(&sb)
		sb.WriteString("\n\n")
	}

	fmt.Fprintf(&sb, "  partition %s\n", d.Name)
	sb.WriteString("    mode: import\n")
	sb.WriteString("    source:\n")
	sb.WriteString("      type: calculated\n")
	sb.WriteString("      expression:\n")
	sb.WriteString("        ADDCOLUMNS(\n")
	fmt.Fprintf(&sb, "          CALENDAR(%s, %s),\n", daxDate(start), daxDate(end))
	sb.WriteString("          \"Date\", [Date]\n")
	sb.WriteString("        )\n\n")

	return sb.String(), nil
}
