// Package adoc provides line-oriented segmentation primitives for AsciiDoc
// documents: line classification, block-delimiter pairing, and table
// extraction. It deliberately does not build a syntax tree; rules classify
// lines and line ranges well enough to validate structure, not to render.
package adoc

import "strings"

// Document is an ordered sequence of source lines for one file.
// Lines are 0-indexed internally; findings report them 1-based.
type Document struct {
	// Path is the source file path, empty for in-memory documents.
	Path string

	// Lines holds the raw source lines without line terminators.
	Lines []string
}

// New creates a Document from raw file content. Content is split on "\n";
// a trailing "\r" on each line (CRLF input) is stripped.
func New(path string, content []byte) *Document {
	return &Document{
		Path:  path,
		Lines: SplitLines(string(content)),
	}
}

// FromLines creates a Document from pre-split lines.
func FromLines(path string, lines []string) *Document {
	return &Document{Path: path, Lines: lines}
}

// SplitLines splits content into lines, tolerating CRLF line endings.
// A trailing newline does not produce a final empty line, matching the
// semantics of strings.Split followed by dropping the empty tail.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}

	lines := strings.Split(content, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.Lines)
}

// Line returns the content of a 1-based line number, or "" if out of range.
func (d *Document) Line(n int) string {
	if n < 1 || n > len(d.Lines) {
		return ""
	}
	return d.Lines[n-1]
}
