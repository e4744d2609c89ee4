// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/docflow/pkg/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderReport prints each decision as its two trace lines, then the
// resulting fields.
func (r *Renderer) RenderReport(report *display.Report) error {
	w := &errWriter{w: r.output}

	w.printf("Trigger: %s\n", report.Trigger)
	for _, d := range report.Decisions {
		w.printf("%s\n", d.Summary)
		if d.Detail != "" {
			w.printf("%s\n", d.Detail)
		}
	}

	if !report.HasMatches() {
		w.printf("\nNo workflow matched.\n")
		return w.err
	}

	w.printf("\nApplied: ")
	for i, name := range report.Applied {
		if i > 0 {
			w.printf(", ")
		}
		w.printf("%s", name)
	}
	w.printf("\n")

	for _, c := range report.Changes {
		marker := " "
		switch {
		case c.Cleared:
			marker = "-"
		case c.Changed:
			marker = "*"
		}
		w.printf("%s %-16s %s\n", marker, c.Field, c.Value)
	}

	for _, e := range report.Errors {
		w.printf("Warning: %s\n", e.Message)
	}
	return w.err
}

// RenderList renders a title followed by one item per line
func (r *Renderer) RenderList(title string, items []string) error {
	w := &errWriter{w: r.output}
	w.printf("%s\n", title)
	for _, item := range items {
		w.printf("  - %s\n", item)
	}
	return w.err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// errWriter keeps the first write error so callers can print freely
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
