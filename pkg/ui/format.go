// Package ui renders stepkit's human-facing output: error messages on
// stderr, the job summary preview and runner information. Protocol
// output on stdout never goes through this package.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto detects the format from the output's terminal capabilities
	FormatAuto Format = iota
	// FormatTerminal renders styled terminal output
	FormatTerminal
	// FormatText renders plain text without styling
	FormatText
	// FormatJSON renders machine-readable JSON
	FormatJSON
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, fmt.Errorf("unknown format: %s", s)
	}
}

// Resolve replaces FormatAuto with the format detected for w.
func (f Format) Resolve(w io.Writer) Format {
	if f != FormatAuto {
		return f
	}
	file, ok := w.(*os.File)
	if !ok {
		return FormatText
	}
	return DetectFormat(file)
}

// DetectFormat determines the output format from environment and terminal capabilities
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	// Runner logs are never a terminal, but guard against piping locally too
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}

	if termenv.NewOutput(output).ColorProfile() == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}
