package ui_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/arthur-debert/stepkit/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatString(t *testing.T) {
	assert.Equal(t, "auto", ui.FormatAuto.String())
	assert.Equal(t, "term", ui.FormatTerminal.String())
	assert.Equal(t, "text", ui.FormatText.String())
	assert.Equal(t, "json", ui.FormatJSON.String())
	assert.Equal(t, "unknown", ui.Format(999).String())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{"auto", ui.FormatAuto, false},
		{"", ui.FormatAuto, false},
		{"term", ui.FormatTerminal, false},
		{"terminal", ui.FormatTerminal, false},
		{"TEXT", ui.FormatText, false},
		{"plain", ui.FormatText, false},
		{"json", ui.FormatJSON, false},
		{"yaml", ui.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatResolve(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, ui.FormatText, ui.FormatAuto.Resolve(&buf))
	assert.Equal(t, ui.FormatJSON, ui.FormatJSON.Resolve(&buf))
}

func TestRenderError(t *testing.T) {
	err := errors.New("boom")
	assert.Equal(t, "Error: boom", ui.RenderError(err, ui.FormatText))
	assert.Contains(t, ui.RenderError(err, ui.FormatTerminal), "Error: boom")
}

func TestRenderKeyValues(t *testing.T) {
	out := ui.RenderKeyValues(map[string]string{"os": "Linux", "debug": ""}, ui.FormatText)
	lines := strings.Split(strings.TrimSpace(out), "\n")

	require.Len(t, lines, 2)
	assert.Equal(t, "debug  -", lines[0])
	assert.Equal(t, "os     Linux", lines[1])
}

func TestMarkdownRendererPlain(t *testing.T) {
	r := ui.NewMarkdownRenderer()
	content := "<h1>x</h1>\n"
	assert.Equal(t, content, r.Render(content, ui.FormatText))
}
