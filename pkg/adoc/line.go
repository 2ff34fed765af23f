package adoc

import "strings"

// blockMarkers maps each block delimiter to its block name.
//
//nolint:gochecknoglobals // Fixed marker table is intentional package state
var blockMarkers = map[string]string{
	"----": "listing",
	"====": "example",
	"****": "sidebar",
	"....": "literal",
	"____": "quote",
	"|===": "table",
	"////": "comment",
	"++++": "passthrough",
}

// admonitionMarkers are the call-out paragraph prefixes.
//
//nolint:gochecknoglobals // Fixed marker table is intentional package state
var admonitionMarkers = []string{"NOTE:", "TIP:", "IMPORTANT:", "WARNING:", "CAUTION:"}

// HeadingLevel returns the heading level of a line: the count of leading '='
// characters followed immediately by a non-'=' character. A line consisting
// entirely of '=' characters is a legacy heading underline, never a heading,
// and yields 0.
func HeadingLevel(line string) int {
	level := 0
	for level < len(line) && line[level] == '=' {
		level++
	}
	if level == 0 || level == len(line) {
		return 0
	}
	return level
}

// IsHeading reports whether the line is a heading in the strict sense used
// by the hierarchy and top-level checks: one or more '=' characters followed
// by whitespace.
func IsHeading(line string) bool {
	level := HeadingLevel(line)
	if level == 0 {
		return false
	}
	c := line[level]
	return c == ' ' || c == '\t'
}

// BlockDelimiter reports whether the stripped line is one of the fixed block
// delimiter markers, returning the marker on success. Block detection takes
// precedence over heading-underline suppression: a line like "====" is a
// delimiter even where it could pass for an underline.
func BlockDelimiter(line string) (string, bool) {
	stripped := strings.TrimSpace(line)
	if _, ok := blockMarkers[stripped]; ok {
		return stripped, true
	}
	return "", false
}

// MarkerName returns the block name for a delimiter marker ("listing",
// "example", ...), or "block" for an unknown marker.
func MarkerName(marker string) string {
	if name, ok := blockMarkers[marker]; ok {
		return name
	}
	return "block"
}

// IsListMarker reports whether the line begins (after indentation) with a
// list marker character: '*', '-', or '.'.
func IsListMarker(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return false
	}
	switch trimmed[0] {
	case '*', '-', '.':
		return true
	default:
		return false
	}
}

// IsAdmonition reports whether the stripped line starts with an admonition
// marker such as "NOTE:" or "WARNING:".
func IsAdmonition(line string) bool {
	stripped := strings.TrimSpace(line)
	for _, marker := range admonitionMarkers {
		if strings.HasPrefix(stripped, marker) {
			return true
		}
	}
	return false
}

// IsBlank reports whether the line contains only whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
