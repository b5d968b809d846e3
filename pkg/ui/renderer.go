package ui

import (
	"encoding/json"
	"fmt"
	"io"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders a KeyValues record, Markdown content or any
	// other value
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// KeyValues is a flat record such as the runner information
type KeyValues map[string]string

// Markdown is job summary content to preview
type Markdown string

// NewRenderer creates a renderer for format. FormatAuto is resolved
// against output first.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format.Resolve(output) {
	case FormatTerminal:
		return &styledRenderer{output: output, format: FormatTerminal, markdown: NewMarkdownRenderer()}, nil
	case FormatText:
		return &styledRenderer{output: output, format: FormatText, markdown: NewMarkdownRenderer()}, nil
	case FormatJSON:
		encoder := json.NewEncoder(output)
		encoder.SetIndent("", "  ")
		return &jsonRenderer{encoder: encoder}, nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

// styledRenderer writes human-readable output, styled only for terminals
type styledRenderer struct {
	output   io.Writer
	format   Format
	markdown *MarkdownRenderer
}

func (r *styledRenderer) RenderResult(result interface{}) error {
	var out string
	switch v := result.(type) {
	case KeyValues:
		out = RenderKeyValues(v, r.format)
	case Markdown:
		out = r.markdown.Render(string(v), r.format)
	default:
		out = fmt.Sprintf("%+v\n", result)
	}
	_, err := io.WriteString(r.output, out)
	return err
}

func (r *styledRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, RenderError(err, r.format))
	return werr
}

func (r *styledRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// jsonRenderer provides JSON output for machine consumption
type jsonRenderer struct {
	encoder *json.Encoder
}

func (r *jsonRenderer) RenderResult(result interface{}) error {
	if md, ok := result.(Markdown); ok {
		return r.encoder.Encode(map[string]string{"content": string(md)})
	}
	return r.encoder.Encode(result)
}

func (r *jsonRenderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]string{"error": err.Error()})
}

func (r *jsonRenderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
