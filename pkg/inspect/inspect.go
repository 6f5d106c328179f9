package inspect

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/OrryLee/mission-scheduling-system/pkg/inspect/models"
	"github.com/OrryLee/mission-scheduling-system/pkg/inspect/parser"
	"github.com/xuri/excelize/v2"
)

// Inspect opens a workbook and reports the structure of every sheet.
// A sheet that cannot be read is reported with its error and does not
// stop the inspection.
func Inspect(path string, opts Options) (*models.WorkbookReport, error) {
	log := opts.Logger.With().Str("file", path).Logger()

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &FileAccessError{Path: path, Err: ErrFileNotFound}
		}
		return nil, &FileAccessError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &FileAccessError{Path: path, Err: fmt.Errorf("%w: is a directory", ErrInvalidFormat)}
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: fmt.Errorf("%w: %v", ErrInvalidFormat, err)}
	}
	defer f.Close()

	report := &models.WorkbookReport{
		BookName:     filepath.Base(path),
		Path:         path,
		PreviewLimit: max(opts.PreviewRows, 0),
	}
	if opts.Mode == ModeVerbose {
		report.PreviewLimit = 0
		report.AllRows = true
	}

	profile := parser.ProfileParams{
		Samples:   opts.SampleValues,
		Summaries: opts.ShouldIncludeSummary(),
	}
	layout := opts.ShouldIncludeLayout()

	for _, sheetName := range f.GetSheetList() {
		sheet := models.SheetReport{Name: sheetName}

		data, err := parser.ReadSheet(f, sheetName)
		if err != nil {
			serr := NewSheetError(sheetName, "rows", err)
			sheet.Err = serr
			sheet.Error = serr.Error()
			report.Sheets = append(report.Sheets, sheet)
			log.Warn().Err(err).Str("sheet", sheetName).Msg("sheet could not be read")
			continue
		}

		sheet.RowCount = len(data.Rows)
		sheet.ColumnCount = len(data.Header)
		sheet.Columns = parser.ProfileColumns(data, profile)
		sheet.Preview = data.Rows[:opts.previewLimit(len(data.Rows))]
		if layout {
			sheet.TableCandidates = parser.DetectTables(data.Raw, parser.DefaultTableParams())
		}

		log.Debug().
			Str("sheet", sheetName).
			Int("rows", sheet.RowCount).
			Int("columns", sheet.ColumnCount).
			Msg("sheet inspected")
		report.Sheets = append(report.Sheets, sheet)
	}

	if layout {
		areas := parser.ExtractPrintAreas(f)
		for i := range report.Sheets {
			report.Sheets[i].PrintAreas = areas[report.Sheets[i].Name]
		}
	}

	log.Info().Int("sheets", len(report.Sheets)).Msg("workbook inspected")
	return report, nil
}
