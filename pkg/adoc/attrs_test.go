package adoc_test

import (
	"testing"

	"github.com/yaklabco/adoclint/pkg/adoc"
)

func TestParseAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected adoc.Attrs
	}{
		{
			name:     "empty",
			input:    "",
			expected: adoc.Attrs{},
		},
		{
			name:     "alt only",
			input:    "Diagram of the system",
			expected: adoc.Attrs{"alt": "Diagram of the system"},
		},
		{
			name:     "alt with dimensions",
			input:    "Logo, 200, 100",
			expected: adoc.Attrs{"alt": "Logo"},
		},
		{
			name:     "keyed values",
			input:    "Alt text, width=100, height=200",
			expected: adoc.Attrs{"alt": "Alt text", "width": "100", "height": "200"},
		},
		{
			name:     "quoted value with comma",
			input:    `Alt, title="a, b"`,
			expected: adoc.Attrs{"alt": "Alt", "title": "a, b"},
		},
		{
			name:     "brackets stripped",
			input:    "[Alt text]",
			expected: adoc.Attrs{"alt": "Alt text"},
		},
		{
			name:     "key only first position is not alt",
			input:    "width=50",
			expected: adoc.Attrs{"width": "50"},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			attrs := adoc.ParseAttrs(testCase.input)

			if len(attrs) != len(testCase.expected) {
				t.Fatalf("ParseAttrs(%q) = %v, want %v", testCase.input, attrs, testCase.expected)
			}
			for key, want := range testCase.expected {
				if got := attrs[key]; got != want {
					t.Errorf("attrs[%q] = %q, want %q", key, got, want)
				}
			}
		})
	}
}

func TestAttrsHas(t *testing.T) {
	t.Parallel()

	attrs := adoc.Attrs{"alt": "text", "title": ""}

	if !attrs.Has("alt") {
		t.Error("expected Has(alt) to be true")
	}
	if attrs.Has("title") {
		t.Error("expected empty value to not count")
	}
	if attrs.Has("missing") {
		t.Error("expected missing key to not count")
	}
}
