package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/adoclint/pkg/config"
	"github.com/yaklabco/adoclint/pkg/lint"
)

// FormatFinding formats a single finding for terminal output.
func (s *Styles) FormatFinding(finding *lint.Finding, showContext bool) string {
	var builder strings.Builder

	location := s.Location.Render(finding.Position.String())
	severity := s.FormatSeverity(finding.Severity)

	ruleDisplay := ""
	if finding.RuleID != "" {
		ruleDisplay = "  " + s.RuleID.Render("("+finding.RuleID+")")
	}

	// Main line: location  severity  message  (rule-id)
	builder.WriteString(fmt.Sprintf("  %s  %s  %s%s\n",
		location,
		severity,
		s.Message.Render(finding.Message),
		ruleDisplay,
	))

	if showContext && finding.Context != "" {
		builder.WriteString(s.FormatSourceContext(finding.Context, finding.Position.Column))
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// FormatSourceContext formats the source line with a caret marker.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	// Indent to align with finding output
	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Error.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount > 0 {
		word := "issues"
		if issueCount == 1 {
			word = "issue"
		}
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", issueCount, word))
	}
	return header
}
