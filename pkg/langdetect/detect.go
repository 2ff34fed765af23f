// Package langdetect classifies file content before linting. It uses
// go-enry to weed out binary files and files whose content clearly
// belongs to another markup or programming language, so the runner does
// not lint a misnamed tarball or source file.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

const langAsciiDoc = "AsciiDoc"

// IsBinary reports whether content looks like binary data.
func IsBinary(content []byte) bool {
	return enry.IsBinary(content)
}

// IsAsciiDoc reports whether content is plausibly AsciiDoc text. Detection
// is permissive: plain prose with no markers still passes, since a valid
// AsciiDoc file can be marker-free. Only binary data and content enry
// confidently attributes to a different language are rejected.
func IsAsciiDoc(filename string, content []byte) bool {
	if enry.IsBinary(content) {
		return false
	}

	if lang := enry.GetLanguage(filename, content); lang != "" && lang != langAsciiDoc {
		// enry leans heavily on the extension; a .adoc file only ever
		// classifies away from AsciiDoc when the content is unambiguous.
		if !hasAsciiDocMarkers(content) {
			return false
		}
	}

	return true
}

// hasAsciiDocMarkers scans the first lines of content for constructs
// specific to AsciiDoc.
func hasAsciiDocMarkers(content []byte) bool {
	const sniffLines = 50

	lines := bytes.Split(content, []byte("\n"))
	if len(lines) > sniffLines {
		lines = lines[:sniffLines]
	}

	for _, raw := range lines {
		line := strings.TrimRight(string(raw), "\r")
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "= "), strings.HasPrefix(line, "== "):
			return true
		case isAttributeEntry(trimmed):
			return true
		case trimmed == "----", trimmed == "====", trimmed == "|===", trimmed == "////":
			return true
		case strings.Contains(line, "image::"), strings.Contains(line, "include::"):
			return true
		}
	}

	return false
}

// isAttributeEntry matches document attribute lines like ":toc:" or
// ":author: Jane Doe".
func isAttributeEntry(line string) bool {
	if !strings.HasPrefix(line, ":") {
		return false
	}
	rest := line[1:]
	end := strings.Index(rest, ":")
	if end <= 0 {
		return false
	}
	name := rest[:end]
	for _, r := range name {
		if r == ' ' || r == '\t' {
			return false
		}
	}
	return true
}
