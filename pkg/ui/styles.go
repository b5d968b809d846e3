package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"})
	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#93C5FD"})
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
)

// RenderError formats err for stderr
func RenderError(err error, format Format) string {
	msg := fmt.Sprintf("Error: %v", err)
	if format != FormatTerminal {
		return msg
	}
	return errorStyle.Render(msg)
}

// RenderKeyValues renders one "key: value" line per entry, sorted by key.
// Empty values are shown as "-".
func RenderKeyValues(values map[string]string, format Format) string {
	keys := make([]string, 0, len(values))
	width := 0
	for k := range values {
		keys = append(keys, k)
		if len(k) > width {
			width = len(k)
		}
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		label := fmt.Sprintf("%-*s", width, k)
		value := values[k]
		if format == FormatTerminal {
			label = keyStyle.Render(label)
			if value == "" {
				value = mutedStyle.Render("-")
			}
		} else if value == "" {
			value = "-"
		}
		b.WriteString(label)
		b.WriteString("  ")
		b.WriteString(value)
		b.WriteByte('\n')
	}
	return b.String()
}
