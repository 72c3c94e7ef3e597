package text

import (
	"strings"
)

// 🛡️ TemplateLiteralEscaper escapes a body for a JavaScript template literal.
//
// Bare backticks, bare ${ and a dangling trailing backslash are escaped. Anything
// already written as an escape pair is copied as is, so a body taken out of a
// template literal escapes to itself.
type TemplateLiteralEscaper struct{}

// NewTemplateLiteralEscaper creates a new TemplateLiteralEscaper
func NewTemplateLiteralEscaper() *TemplateLiteralEscaper {
	return &TemplateLiteralEscaper{}
}

// Escape implements Escaper.Escape
func (e *TemplateLiteralEscaper) Escape(body string) string {
	var b strings.Builder
	b.Grow(len(body) + 8)

	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c == '\\':
			if i+1 == len(body) {
				b.WriteString(`\\`)
				continue
			}
			b.WriteByte(c)
			b.WriteByte(body[i+1])
			i++
		case c == '`':
			b.WriteString("\\`")
		case c == '$' && i+1 < len(body) && body[i+1] == '{':
			b.WriteString(`\$`)
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}
