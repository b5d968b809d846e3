// Package annotation maps user-facing annotation metadata onto the
// property names runners expect on error, warning and notice commands.
package annotation

import (
	"github.com/arthur-debert/stepkit/pkg/command"
)

// Properties attaches a source location and title to an annotation.
// Zero values are unset and are not serialized.
type Properties struct {
	Title       string
	File        string
	StartLine   int
	EndLine     int
	StartColumn int
	EndColumn   int
}

// IsZero reports whether no field is set.
func (p Properties) IsZero() bool {
	return p == Properties{}
}

// ToCommandProperties renames the fields to their wire names
// (title, file, line, endLine, col, endColumn) keeping only set values.
// A zero Properties maps to nil.
func ToCommandProperties(p Properties) command.Properties {
	if p.IsZero() {
		return nil
	}

	var out command.Properties
	if p.Title != "" {
		out = append(out, command.Property{Key: "title", Value: p.Title})
	}
	if p.File != "" {
		out = append(out, command.Property{Key: "file", Value: p.File})
	}
	if p.StartLine != 0 {
		out = append(out, command.Property{Key: "line", Value: p.StartLine})
	}
	if p.EndLine != 0 {
		out = append(out, command.Property{Key: "endLine", Value: p.EndLine})
	}
	if p.StartColumn != 0 {
		out = append(out, command.Property{Key: "col", Value: p.StartColumn})
	}
	if p.EndColumn != 0 {
		out = append(out, command.Property{Key: "endColumn", Value: p.EndColumn})
	}
	return out
}
