package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// summary describes a completed generation run.
type summary struct {
	Output    string
	Model     string
	SiteURL   string
	Generated time.Time
}

type styles struct {
	Success lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		Success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		Label:   r.NewStyle().Bold(true),
		Value:   r.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

// writeSummary prints the generated file, model, site and timestamp.
// Styling is dropped when w is not a terminal.
func writeSummary(w io.Writer, s summary) {
	st := newStyles(lipgloss.NewRenderer(w))

	_, _ = fmt.Fprintf(w, "%s %s\n", st.Success.Render("TMDL model generated:"), st.Value.Render(s.Output))
	_, _ = fmt.Fprintf(w, "%s %s\n", st.Label.Render("Model:"), s.Model)
	_, _ = fmt.Fprintf(w, "%s %s\n", st.Label.Render("SharePoint:"), s.SiteURL)
	_, _ = fmt.Fprintf(w, "%s %s\n", st.Label.Render("Generated:"), s.Generated.Format(time.DateTime))
}
