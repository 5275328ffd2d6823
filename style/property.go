package style

import "strings"

// Property is a raw value for a CSS property. For example, with
//
//     -fx-opacity: 42%
//
// a property value of "42%" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient helpers for converters.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return strings.EqualFold(p.Trimmed(), "initial")
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return strings.EqualFold(p.Trimmed(), "inherit")
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p.Trimmed() == ""
}

// Trimmed returns the raw value without surrounding white space.
func (p Property) Trimmed() string {
	return strings.TrimSpace(string(p))
}

// Fields splits a property value into white-space separated fields.
// Quoted strings ('…' or "…") are kept together as a single field,
// with the quotes removed.
func (p Property) Fields() []string {
	var fields []string
	var b strings.Builder
	var quote rune
	flush := func() {
		if b.Len() > 0 {
			fields = append(fields, b.String())
			b.Reset()
		}
	}
	for _, r := range string(p) {
		switch {
		case quote != 0 && r == quote:
			quote = 0
			flush()
		case quote != 0:
			b.WriteRune(r)
		case r == '"' || r == '\'':
			flush()
			quote = r
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
		default:
			b.WriteRune(r)
		}
	}
	flush()
	return fields
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}
