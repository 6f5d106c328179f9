// Package inspect reports the structure of spreadsheet workbooks.
package inspect

import "github.com/rs/zerolog"

// Mode represents the inspection depth.
type Mode string

const (
	// ModeLight reports columns, types, samples and the preview only.
	ModeLight Mode = "light"
	// ModeStandard adds numeric summaries, table candidates and print areas.
	ModeStandard Mode = "standard"
	// ModeVerbose is standard with every data row in the preview.
	ModeVerbose Mode = "verbose"
)

// ParseMode returns the mode named s, or false if there is none.
func ParseMode(s string) (Mode, bool) {
	switch m := Mode(s); m {
	case ModeLight, ModeStandard, ModeVerbose:
		return m, true
	}
	return "", false
}

// Options configures inspection behavior.
type Options struct {
	// Mode specifies the inspection depth (light, standard, verbose).
	Mode Mode
	// PreviewRows is the number of data rows shown per sheet.
	// Ignored in verbose mode.
	PreviewRows int
	// SampleValues is the number of non-empty sample values kept per column.
	SampleValues int
	// IncludeLayout specifies whether to include table candidates and print areas.
	// If nil, defaults to false for light mode, true otherwise.
	IncludeLayout *bool
	// Logger receives progress and per-sheet warnings.
	Logger zerolog.Logger
}

// DefaultOptions returns default inspection options.
func DefaultOptions() Options {
	return Options{
		Mode:         ModeStandard,
		PreviewRows:  5,
		SampleValues: 3,
		Logger:       zerolog.Nop(),
	}
}

// ShouldIncludeLayout returns whether to include table candidates and print areas.
func (o Options) ShouldIncludeLayout() bool {
	if o.IncludeLayout != nil {
		return *o.IncludeLayout
	}
	return o.Mode != ModeLight
}

// ShouldIncludeSummary returns whether to compute numeric column summaries.
func (o Options) ShouldIncludeSummary() bool {
	return o.Mode != ModeLight
}

// previewLimit returns the number of preview rows for a sheet with rowCount data rows.
func (o Options) previewLimit(rowCount int) int {
	if o.Mode == ModeVerbose {
		return rowCount
	}
	return min(max(o.PreviewRows, 0), rowCount)
}
