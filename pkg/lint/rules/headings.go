package rules

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/yaklabco/adoclint/pkg/adoc"
	"github.com/yaklabco/adoclint/pkg/config"
	"github.com/yaklabco/adoclint/pkg/lint"
)

// HeadingHierarchyRule checks that heading levels increment by at most one.
type HeadingHierarchyRule struct {
	lint.BaseRule
}

// NewHeadingHierarchyRule creates a new heading hierarchy rule.
func NewHeadingHierarchyRule() *HeadingHierarchyRule {
	return &HeadingHierarchyRule{
		BaseRule: lint.NewBaseRule(
			"HEAD001",
			"heading-hierarchy",
			"Heading levels should only increment by one level at a time",
			config.SeverityError,
			[]string{"headings"},
		),
	}
}

// Check flags every heading whose level exceeds the previous heading's
// level by more than one. The first heading sets the baseline and is never
// flagged. Heading underlines and block delimiters never count as headings.
func (r *HeadingHierarchyRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding
	prevLevel := 0

	for i, line := range ctx.Doc.Lines {
		if ctx.Cancelled() {
			return findings, ctx.Ctx.Err()
		}

		if !adoc.IsHeading(line) {
			continue
		}
		level := adoc.HeadingLevel(line)

		if prevLevel > 0 && level > prevLevel+1 {
			findings = append(findings, lint.Finding{
				RuleID:   r.ID(),
				Message:  fmt.Sprintf("Heading level skipped: found h%d after h%d", level, prevLevel),
				Severity: config.SeverityError,
				Position: lint.Position{Line: i + 1},
				Context:  line,
			})
		}
		prevLevel = level
	}

	return findings, nil
}

// HeadingFormatRule checks heading format: a space after the '=' markers
// and an uppercase first letter.
type HeadingFormatRule struct {
	lint.BaseRule
}

// NewHeadingFormatRule creates a new heading format rule.
func NewHeadingFormatRule() *HeadingFormatRule {
	return &HeadingFormatRule{
		BaseRule: lint.NewBaseRule(
			"HEAD002",
			"heading-format",
			"Headings need a space after the markers and an uppercase start",
			config.SeverityError,
			[]string{"headings", "style"},
		),
	}
}

// Check emits an error for a missing space after the '=' run and a warning
// for heading text starting lowercase. Empty heading text produces no case
// finding; a line of bare '=' characters is an underline, not a heading.
func (r *HeadingFormatRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	for i, line := range ctx.Doc.Lines {
		if ctx.Cancelled() {
			return findings, ctx.Ctx.Err()
		}

		level := adoc.HeadingLevel(line)
		if level == 0 {
			continue
		}

		rest := line[level:]
		if !strings.HasPrefix(rest, " ") && !strings.HasPrefix(rest, "\t") {
			findings = append(findings, lint.Finding{
				RuleID:   r.ID(),
				Message:  fmt.Sprintf("Missing space after %s", strings.Repeat("=", level)),
				Severity: config.SeverityError,
				Position: lint.Position{Line: i + 1},
				Context:  line,
			})
		}

		text := strings.TrimSpace(rest)
		if text != "" {
			first := []rune(text)[0]
			if unicode.IsLower(first) {
				findings = append(findings, lint.Finding{
					RuleID:   r.ID(),
					Message:  "Heading should start with uppercase letter",
					Severity: config.SeverityWarning,
					Position: lint.Position{Line: i + 1},
					Context:  line,
				})
			}
		}
	}

	return findings, nil
}

// SingleTopLevelRule checks that a document has at most one level-1 heading.
type SingleTopLevelRule struct {
	lint.BaseRule
}

// NewSingleTopLevelRule creates a new single top-level heading rule.
func NewSingleTopLevelRule() *SingleTopLevelRule {
	return &SingleTopLevelRule{
		BaseRule: lint.NewBaseRule(
			"HEAD003",
			"single-top-level-heading",
			"Documents should have only one top-level heading",
			config.SeverityError,
			[]string{"headings"},
		),
	}
}

// Check remembers the first level-1 heading and flags every subsequent one,
// citing the first heading's location and text.
func (r *SingleTopLevelRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding
	firstLine := 0
	firstText := ""

	for i, line := range ctx.Doc.Lines {
		if ctx.Cancelled() {
			return findings, ctx.Ctx.Err()
		}

		if !adoc.IsHeading(line) || adoc.HeadingLevel(line) != 1 {
			continue
		}

		if firstLine == 0 {
			firstLine = i + 1
			firstText = strings.TrimSpace(line)
			continue
		}

		findings = append(findings, lint.Finding{
			RuleID: r.ID(),
			Message: fmt.Sprintf(
				"Multiple top-level headings found. First heading at line %d: '%s'",
				firstLine, firstText),
			Severity: config.SeverityError,
			Position: lint.Position{Line: i + 1},
			Context:  line,
		})
	}

	return findings, nil
}
