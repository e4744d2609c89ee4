// Package ui provides a unified interface for rendering run reports in
// different formats. It supports terminal (rich), text (plain), and JSON.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/docflow/pkg/display"
	"github.com/arthur-debert/docflow/pkg/ui/json"
	"github.com/arthur-debert/docflow/pkg/ui/terminal"
	"github.com/arthur-debert/docflow/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderReport renders the decisions and resulting fields of one run
	RenderReport(report *display.Report) error

	// RenderList renders a titled list, such as validation warnings
	RenderList(title string, items []string) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// It detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		// Not a file, so not a terminal
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
