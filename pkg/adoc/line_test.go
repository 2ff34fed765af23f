package adoc_test

import (
	"testing"

	"github.com/yaklabco/adoclint/pkg/adoc"
)

func TestHeadingLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		expected int
	}{
		{"document title", "= Title", 1},
		{"section", "== Section", 2},
		{"subsection", "=== Subsection", 3},
		{"deep nesting", "===== Deep", 5},
		{"no markers", "plain text", 0},
		{"empty line", "", 0},
		{"underline only", "====", 0},
		{"single equals only", "=", 0},
		{"missing space still counts", "==Section", 2},
		{"equals mid-line", "a = b", 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := adoc.HeadingLevel(testCase.line); got != testCase.expected {
				t.Errorf("HeadingLevel(%q) = %d, want %d", testCase.line, got, testCase.expected)
			}
		})
	}
}

func TestIsHeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		expected bool
	}{
		{"title with space", "= Title", true},
		{"section with space", "== Section", true},
		{"tab separator", "==\tSection", true},
		{"missing space", "==Section", false},
		{"underline", "====", false},
		{"plain text", "text", false},
		{"empty", "", false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := adoc.IsHeading(testCase.line); got != testCase.expected {
				t.Errorf("IsHeading(%q) = %v, want %v", testCase.line, got, testCase.expected)
			}
		})
	}
}

func TestBlockDelimiter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		line       string
		wantMarker string
		wantOK     bool
	}{
		{"listing", "----", "----", true},
		{"example", "====", "====", true},
		{"sidebar", "****", "****", true},
		{"literal", "....", "....", true},
		{"quote", "____", "____", true},
		{"table", "|===", "|===", true},
		{"comment", "////", "////", true},
		{"passthrough", "++++", "++++", true},
		{"indented delimiter", "  ----  ", "----", true},
		{"too short", "---", "", false},
		{"too long", "-----", "", false},
		{"text", "hello", "", false},
		{"empty", "", "", false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			marker, ok := adoc.BlockDelimiter(testCase.line)
			if ok != testCase.wantOK || marker != testCase.wantMarker {
				t.Errorf("BlockDelimiter(%q) = (%q, %v), want (%q, %v)",
					testCase.line, marker, ok, testCase.wantMarker, testCase.wantOK)
			}
		})
	}
}

func TestMarkerName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		marker   string
		expected string
	}{
		{"----", "listing"},
		{"====", "example"},
		{"****", "sidebar"},
		{"....", "literal"},
		{"____", "quote"},
		{"|===", "table"},
		{"////", "comment"},
		{"++++", "passthrough"},
		{"????", "block"},
	}

	for _, testCase := range tests {
		if got := adoc.MarkerName(testCase.marker); got != testCase.expected {
			t.Errorf("MarkerName(%q) = %q, want %q", testCase.marker, got, testCase.expected)
		}
	}
}

func TestIsListMarker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		expected bool
	}{
		{"asterisk", "* item", true},
		{"bare asterisk", "*", true},
		{"dash", "- item", true},
		{"numbered", ". item", true},
		{"indented", "  * item", true},
		{"no marker", "item", false},
		{"empty", "", false},
		{"blank", "   ", false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := adoc.IsListMarker(testCase.line); got != testCase.expected {
				t.Errorf("IsListMarker(%q) = %v, want %v", testCase.line, got, testCase.expected)
			}
		})
	}
}

func TestIsAdmonition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		expected bool
	}{
		{"note", "NOTE: remember this", true},
		{"tip", "TIP: do it this way", true},
		{"important", "IMPORTANT: really", true},
		{"warning", "WARNING: careful", true},
		{"caution", "CAUTION: hot", true},
		{"indented note", "  NOTE: indented", true},
		{"lowercase", "note: not one", false},
		{"mid-line", "a NOTE: aside", false},
		{"plain", "text", false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := adoc.IsAdmonition(testCase.line); got != testCase.expected {
				t.Errorf("IsAdmonition(%q) = %v, want %v", testCase.line, got, testCase.expected)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line     string
		expected bool
	}{
		{"", true},
		{"   ", true},
		{"\t", true},
		{"x", false},
		{"  x  ", false},
	}

	for _, testCase := range tests {
		if got := adoc.IsBlank(testCase.line); got != testCase.expected {
			t.Errorf("IsBlank(%q) = %v, want %v", testCase.line, got, testCase.expected)
		}
	}
}
