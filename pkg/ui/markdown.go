package ui

import (
	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders job summary content for a terminal
type MarkdownRenderer struct {
	Style string // "dark", "light", "notty", "auto", or a style file path
	Width int    // word wrap width, 0 disables wrapping
}

// NewMarkdownRenderer creates a renderer with terminal auto-detection
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{Style: "auto"}
}

// Render returns content rendered for the terminal. Plain formats and
// render failures return content unchanged.
func (r *MarkdownRenderer) Render(content string, format Format) string {
	if format != FormatTerminal {
		return content
	}

	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
