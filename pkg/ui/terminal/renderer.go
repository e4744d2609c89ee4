// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/docflow/pkg/display"
	"github.com/arthur-debert/docflow/pkg/ui/styles"
)

// Renderer provides rich terminal output using the style registry
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderReport renders the decisions grouped by outcome color, then a
// field table of the resulting document.
func (r *Renderer) RenderReport(report *display.Report) error {
	var b strings.Builder

	b.WriteString(styles.GetStyle("Header").Render("Workflows for " + report.Trigger))
	b.WriteString("\n")

	for _, d := range report.Decisions {
		style := "NotMatched"
		switch {
		case d.Matched:
			style = "Matched"
		case d.Outcome == "no applicable trigger type":
			style = "Skipped"
		}
		b.WriteString(styles.GetStyle(style).Render(d.Summary))
		b.WriteString("\n")
		if d.Detail != "" {
			b.WriteString("  ")
			b.WriteString(styles.GetStyle("Muted").Render(d.Detail))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	if !report.HasMatches() {
		b.WriteString(styles.GetStyle("Warning").Render("No workflow matched."))
		b.WriteString("\n")
		_, err := io.WriteString(r.output, b.String())
		return err
	}

	applied := make([]string, 0, len(report.Applied))
	for _, name := range report.Applied {
		applied = append(applied, styles.GetStyle("Workflow").Render(name))
	}
	b.WriteString(styles.GetStyle("SubHeader").Render("Applied"))
	b.WriteString(" ")
	b.WriteString(strings.Join(applied, ", "))
	b.WriteString("\n")

	for _, c := range report.Changes {
		value := styles.GetStyle("Value").Render(c.Value)
		switch {
		case c.Cleared:
			value = styles.GetStyle("Cleared").Render(c.Value + " (cleared)")
		case c.Changed:
			value = styles.GetStyle("Changed").Render(c.Value)
		}
		b.WriteString(styles.GetStyle("Field").Render(c.Field))
		b.WriteString(value)
		b.WriteString("\n")
	}

	for _, e := range report.Errors {
		b.WriteString(styles.GetStyle("Warning").Render("! " + e.Message))
		b.WriteString("\n")
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderList renders a titled bullet list
func (r *Renderer) RenderList(title string, items []string) error {
	var b strings.Builder
	b.WriteString(styles.GetStyle("SubHeader").Render(title))
	b.WriteString("\n")
	for _, item := range items {
		b.WriteString(styles.GetStyle("Warning").Render("  • " + item))
		b.WriteString("\n")
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error with terminal formatting
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintln(r.output, styles.GetStyle("Error").Render("Error: "+err.Error()))
	return err2
}

// RenderMessage renders a simple message with terminal formatting
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.GetStyle("Info").Render(msg))
	return err
}
