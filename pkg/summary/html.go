package summary

import (
	"strings"
)

type attr struct {
	key   string
	value string
}

// wrap renders <tag attrs>content</tag>. Empty content renders the
// opening tag alone, which is also how void elements are produced.
func wrap(tag, content string, attrs ...attr) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(tag)
	for _, a := range attrs {
		b.WriteByte(' ')
		b.WriteString(a.key)
		b.WriteString(`="`)
		b.WriteString(a.value)
		b.WriteByte('"')
	}
	b.WriteByte('>')
	if content == "" {
		return b.String()
	}
	b.WriteString(content)
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
	return b.String()
}

// optional returns attrs for the non-empty values only.
func optional(pairs ...attr) []attr {
	var out []attr
	for _, p := range pairs {
		if p.value != "" {
			out = append(out, p)
		}
	}
	return out
}
