package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/adoclint/pkg/adoc"
	"github.com/yaklabco/adoclint/pkg/config"
	"github.com/yaklabco/adoclint/pkg/lint"
)

// maxConsecutiveBlanks is the number of consecutive blank lines tolerated
// before the whitespace rule complains.
const maxConsecutiveBlanks = 2

// WhitespaceRule checks for proper whitespace usage: blank-line runs,
// list-marker spacing, trailing whitespace, tabs, heading padding, and
// admonition spacing.
type WhitespaceRule struct {
	lint.BaseRule
}

// NewWhitespaceRule creates a new whitespace rule.
func NewWhitespaceRule() *WhitespaceRule {
	return &WhitespaceRule{
		BaseRule: lint.NewBaseRule(
			"WS001",
			"whitespace",
			"Whitespace usage: blank lines, list markers, tabs, and padding",
			config.SeverityWarning,
			[]string{"whitespace"},
		),
	}
}

// Check scans the document line by line. The consecutive-blank-line counter
// is a local, so two documents checked back to back cannot contaminate each
// other.
func (r *WhitespaceRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding
	lines := ctx.Doc.Lines
	blankRun := 0

	warn := func(lineIdx int, message string) {
		findings = append(findings, lint.Finding{
			RuleID:   r.ID(),
			Message:  message,
			Severity: config.SeverityWarning,
			Position: lint.Position{Line: lineIdx + 1},
			Context:  lines[lineIdx],
		})
	}

	for i, line := range lines {
		if ctx.Cancelled() {
			return findings, ctx.Ctx.Err()
		}

		if adoc.IsBlank(line) {
			blankRun++
			if blankRun > maxConsecutiveBlanks {
				warn(i, "Too many consecutive empty lines")
			}
		} else {
			blankRun = 0
		}

		// Block delimiters like "----" share their first character with
		// list markers and are handled by the block rules.
		if _, isDelim := adoc.BlockDelimiter(line); !isDelim && adoc.IsListMarker(line) {
			trimmed := strings.TrimLeft(line, " \t")
			if len(trimmed) == 1 || trimmed[1] != ' ' {
				warn(i, fmt.Sprintf("Missing space after the marker '%c'", trimmed[0]))
			}
		}

		if strings.TrimRight(line, " \t") != line {
			warn(i, "Line contains trailing whitespace")
		}

		if strings.Contains(line, "\t") {
			warn(i, "Line contains tabs (use spaces instead)")
		}

		if level := adoc.HeadingLevel(line); level > 0 {
			if line[level] != ' ' {
				warn(i, "Missing space after "+strings.Repeat("=", level))
			}
			if i > 0 && !adoc.IsBlank(lines[i-1]) {
				warn(i, "Section title should be preceded by a blank line")
			}
			if i < len(lines)-1 && !adoc.IsBlank(lines[i+1]) {
				warn(i, "Section title should be followed by a blank line")
			}
		}

		if adoc.IsAdmonition(line) && i > 0 && !adoc.IsBlank(lines[i-1]) {
			warn(i, "Admonition block should be preceded by a blank line")
		}
	}

	return findings, nil
}
