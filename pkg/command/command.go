package command

import (
	"strings"

	"github.com/arthur-debert/stepkit/pkg/coerce"
)

// MissingName replaces an empty command name.
const MissingName = "missing.command"

// Well-known command names.
const (
	NameError     = "error"
	NameWarning   = "warning"
	NameNotice    = "notice"
	NameDebug     = "debug"
	NameSetEnv    = "set-env"
	NameSetOutput = "set-output"
	NameSaveState = "save-state"
	NameAddMask   = "add-mask"
	NameAddPath   = "add-path"
	NameEcho      = "echo"
	NameGroup     = "group"
	NameEndGroup  = "endgroup"
)

// Property is one key/value pair of a command.
type Property struct {
	Key   string
	Value any
}

// Properties is an ordered set of command properties. Order is
// preserved on serialization.
type Properties []Property

// Set replaces the value of key or appends it when absent.
func (p Properties) Set(key string, value any) Properties {
	for i := range p {
		if p[i].Key == key {
			p[i].Value = value
			return p
		}
	}
	return append(p, Property{Key: key, Value: value})
}

// Get returns the value stored for key.
func (p Properties) Get(key string) (any, bool) {
	for _, prop := range p {
		if prop.Key == key {
			return prop.Value, true
		}
	}
	return nil, false
}

// Command is a single message for the runner.
type Command struct {
	Name       string
	Properties Properties
	Message    any
}

// String renders the command line without the trailing EOL.
func (c Command) String() string {
	name := c.Name
	if name == "" {
		name = MissingName
	}

	var b strings.Builder
	b.WriteString("::")
	b.WriteString(name)

	first := true
	for _, prop := range c.Properties {
		if coerce.IsFalsy(prop.Value) {
			continue
		}
		val := coerce.ToCommandValue(prop.Value)
		if val == "" {
			continue
		}
		if first {
			b.WriteByte(' ')
			first = false
		} else {
			b.WriteByte(',')
		}
		b.WriteString(prop.Key)
		b.WriteByte('=')
		b.WriteString(EscapeProperty(val))
	}

	b.WriteString("::")
	b.WriteString(EscapeData(coerce.ToCommandValue(c.Message)))
	return b.String()
}

// '%' is replaced first so later substitutions are not double-escaped.
var (
	dataEscaper = strings.NewReplacer(
		"%", "%25",
		"\r", "%0D",
		"\n", "%0A",
	)
	propertyEscaper = strings.NewReplacer(
		"%", "%25",
		"\r", "%0D",
		"\n", "%0A",
		":", "%3A",
		",", "%2C",
	)
)

// EscapeData escapes a command message.
func EscapeData(s string) string {
	return dataEscaper.Replace(s)
}

// EscapeProperty escapes a command property value.
func EscapeProperty(s string) string {
	return propertyEscaper.Replace(s)
}
