package inspect

import (
	"fmt"
	"io"

	"github.com/OrryLee/mission-scheduling-system/pkg/inspect/models"
	"github.com/goccy/go-json"
)

// Outcome is the result of analyzing one workbook. Exactly one of Report
// and Err is set.
type Outcome struct {
	Path   string
	Report *models.WorkbookReport
	Err    error
}

// Analyze inspects a workbook and captures the result.
func Analyze(path string, opts Options) Outcome {
	report, err := Inspect(path, opts)
	return Outcome{Path: path, Report: report, Err: err}
}

// OK reports whether the workbook was opened and inspected.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Render writes the text report, or the failure message when the workbook
// could not be analyzed.
func (o Outcome) Render(w io.Writer) {
	if o.OK() {
		WriteReport(w, o.Report)
		return
	}
	writeHeader(w, o.Path)
	_, _ = fmt.Fprintf(w, "Error analyzing file: %v\n", o.Err)
}

type outcomeJSON struct {
	Path   string                 `json:"path"`
	Report *models.WorkbookReport `json:"report,omitempty"`
	Error  string                 `json:"error,omitempty"`
}

// RenderJSON writes the outcome as a JSON document.
func (o Outcome) RenderJSON(w io.Writer, pretty bool) error {
	doc := outcomeJSON{Path: o.Path, Report: o.Report}
	if o.Err != nil {
		doc.Error = o.Err.Error()
	}

	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
