package adoc

import "strings"

// Attrs is a parsed AsciiDoc attribute list, as found between the brackets
// of an image macro or a block declaration.
type Attrs map[string]string

// Has reports whether the attribute list contains a non-empty value for key.
func (a Attrs) Has(key string) bool {
	v, ok := a[key]
	return ok && v != ""
}

// ParseAttrs parses an attribute string such as
//
//	Alt text, width=100, title="a, b"
//
// into a key/value map. Parts are split on ',' outside double quotes. A part
// containing '=' is a key=value pair with surrounding quotes stripped from
// the value; the first unkeyed part is the alt/caption text, stored under
// "alt". Surrounding brackets, if present, are removed first.
func ParseAttrs(attrString string) Attrs {
	attrs := make(Attrs)

	attrString = strings.Trim(attrString, "[]")
	if attrString == "" {
		return attrs
	}

	var parts []string
	var current strings.Builder
	inQuotes := false

	for _, char := range attrString {
		switch {
		case char == '"':
			inQuotes = !inQuotes
			current.WriteRune(char)
		case char == ',' && !inQuotes:
			parts = append(parts, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(char)
		}
	}
	if current.Len() > 0 {
		parts = append(parts, strings.TrimSpace(current.String()))
	}

	for i, part := range parts {
		if key, value, found := strings.Cut(part, "="); found {
			value = strings.Trim(strings.TrimSpace(value), `"`)
			attrs[strings.TrimSpace(key)] = value
		} else if i == 0 {
			attrs["alt"] = part
		}
	}

	return attrs
}
