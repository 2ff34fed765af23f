package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/adoclint/pkg/adoc"
	"github.com/yaklabco/adoclint/pkg/config"
	"github.com/yaklabco/adoclint/pkg/lint"
	"github.com/yaklabco/adoclint/pkg/reporter"
	"github.com/yaklabco/adoclint/pkg/runner"
)

// sampleResult builds a two-file run: one file with findings, one skipped.
func sampleResult() *runner.Result {
	findings := []lint.Finding{
		{
			RuleID:   "HEAD002",
			Message:  "Missing space after ==",
			Severity: config.SeverityError,
			Position: lint.Position{Line: 3},
			FilePath: "docs/bad.adoc",
			Context:  "==Broken",
		},
		{
			RuleID:   "WS001",
			Message:  "Line contains trailing whitespace",
			Severity: config.SeverityWarning,
			Position: lint.Position{Line: 5},
			FilePath: "docs/bad.adoc",
			Context:  "text   ",
		},
	}

	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "docs/bad.adoc",
				Result: &lint.DocumentResult{
					Doc:      adoc.FromLines("docs/bad.adoc", nil),
					Findings: findings,
				},
			},
			{
				Path:       "docs/blob.adoc",
				Skipped:    true,
				SkipReason: "content is not AsciiDoc",
			},
		},
		Stats: runner.Stats{
			FilesDiscovered: 2,
			FilesProcessed:  1,
			FilesSkipped:    1,
			FindingsTotal:   2,
			FilesWithIssues: 1,
			FindingsBySeverity: map[string]int{
				"error":   1,
				"warning": 1,
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected reporter.Format
		wantErr  bool
	}{
		{"", reporter.FormatConsole, false},
		{"console", reporter.FormatConsole, false},
		{"plain", reporter.FormatPlain, false},
		{"text", reporter.FormatPlain, false},
		{"json", reporter.FormatJSON, false},
		{"html", reporter.FormatHTML, false},
		{"xml", "", true},
	}

	for _, testCase := range tests {
		t.Run(testCase.input, func(t *testing.T) {
			format, err := reporter.ParseFormat(testCase.input)
			if testCase.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, format)
		})
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := reporter.New(reporter.Options{Format: "yaml"})
	assert.Error(t, err)
}

func TestConsoleReporter(t *testing.T) {
	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{
		Writer:      &buf,
		Format:      reporter.FormatConsole,
		Color:       "never",
		ShowContext: true,
		ShowSummary: true,
	})
	require.NoError(t, err)

	count, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	out := buf.String()
	assert.Contains(t, out, "docs/bad.adoc (2 issues)")
	assert.Contains(t, out, "line 3")
	assert.Contains(t, out, "error")
	assert.Contains(t, out, "Missing space after ==")
	assert.Contains(t, out, "(HEAD002)")
	assert.Contains(t, out, "==Broken")
	assert.Contains(t, out, "2 issues (1 errors, 1 warnings) in 1 file, 1 skipped")

	// Skipped files are not listed.
	assert.NotContains(t, out, "blob.adoc")
}

func TestConsoleReporter_NoFiles(t *testing.T) {
	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{
		Writer:      &buf,
		Format:      reporter.FormatConsole,
		Color:       "never",
		ShowSummary: true,
	})
	require.NoError(t, err)

	count, err := rep.Report(context.Background(), &runner.Result{})
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Contains(t, buf.String(), "No files to check.")
}

func TestConsoleReporter_NoContext(t *testing.T) {
	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{
		Writer: &buf,
		Format: reporter.FormatConsole,
		Color:  "never",
	})
	require.NoError(t, err)

	_, err = rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "==Broken")
}

func TestPlainFormatIsConsoleWithoutColor(t *testing.T) {
	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{
		Writer: &buf,
		Format: reporter.FormatPlain,
		Color:  "always",
	})
	require.NoError(t, err)

	_, err = rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)

	// Plain output never carries ANSI escapes even with color requested.
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{
		Writer: &buf,
		Format: reporter.FormatJSON,
	})
	require.NoError(t, err)

	count, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "1.0.0", output.Version)
	require.Len(t, output.Files, 2)

	first := output.Files[0]
	assert.Equal(t, "docs/bad.adoc", first.Path)
	require.Len(t, first.Findings, 2)
	assert.Equal(t, "HEAD002", first.Findings[0].RuleID)
	assert.Equal(t, "error", first.Findings[0].Severity)
	assert.Equal(t, 3, first.Findings[0].Line)

	assert.True(t, output.Files[1].Skipped)

	assert.Equal(t, 2, output.Summary.TotalIssues)
	assert.Equal(t, 1, output.Summary.FilesWithIssues)
	assert.Equal(t, 1, output.Summary.FilesSkipped)
	assert.Equal(t, 1, output.Summary.BySeverity["error"])
	assert.Equal(t, 1, output.Summary.BySeverity["warning"])
}

func TestJSONReporter_Compact(t *testing.T) {
	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{
		Writer:  &buf,
		Format:  reporter.FormatJSON,
		Compact: true,
	})
	require.NoError(t, err)

	_, err = rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)

	// Compact output is a single line plus the trailing newline.
	assert.NotContains(t, strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestJSONReporter_EmptyResult(t *testing.T) {
	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{
		Writer: &buf,
		Format: reporter.FormatJSON,
	})
	require.NoError(t, err)

	count, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, count)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	assert.NotNil(t, output.Files)
	assert.Empty(t, output.Files)
}

func TestHTMLReporter(t *testing.T) {
	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{
		Writer: &buf,
		Format: reporter.FormatHTML,
	})
	require.NoError(t, err)

	count, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	out := buf.String()
	assert.Contains(t, out, "<title>AsciiDoc Lint Results</title>")
	assert.Contains(t, out, "<h1>AsciiDoc Lint Results</h1>")
	assert.Contains(t, out, "<td>error</td>")
	assert.Contains(t, out, "<td>HEAD002</td>")
	assert.Contains(t, out, "<td>docs/bad.adoc</td>")
	assert.Contains(t, out, "<td>line 3</td>")
	assert.Contains(t, out, "<td>Missing space after ==</td>")
}

func TestHTMLReporter_EscapesContent(t *testing.T) {
	result := &runner.Result{
		Files: []runner.FileOutcome{{
			Path: "x.adoc",
			Result: &lint.DocumentResult{
				Findings: []lint.Finding{{
					RuleID:   "WS001",
					Message:  "<script>alert(1)</script>",
					Severity: config.SeverityWarning,
					Position: lint.Position{Line: 1},
				}},
			},
		}},
		Stats: runner.Stats{FindingsTotal: 1},
	}

	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{
		Writer: &buf,
		Format: reporter.FormatHTML,
	})
	require.NoError(t, err)

	_, err = rep.Report(context.Background(), result)
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "<script>")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}

func TestReporterWorkingDirRelativizesPaths(t *testing.T) {
	result := sampleResult()
	result.Files[0].Path = "/work/docs/bad.adoc"
	result.Files[0].Result.Findings[0].FilePath = "/work/docs/bad.adoc"

	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{
		Writer:     &buf,
		Format:     reporter.FormatConsole,
		Color:      "never",
		WorkingDir: "/work",
	})
	require.NoError(t, err)

	_, err = rep.Report(context.Background(), result)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "docs/bad.adoc")
	assert.NotContains(t, buf.String(), "/work/docs/bad.adoc")
}
