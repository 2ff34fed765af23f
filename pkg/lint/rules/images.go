package rules

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/yaklabco/adoclint/pkg/adoc"
	"github.com/yaklabco/adoclint/pkg/config"
	"github.com/yaklabco/adoclint/pkg/lint"
)

// minAltLength is the default minimum alt-text length before the rule
// considers it too short. Overridable via the min_alt_length option.
const minAltLength = 5

// Image macro patterns. Block macros use two colons, inline macros one.
//
//nolint:gochecknoglobals // Compiled once at package init
var (
	blockImagePattern  = regexp.MustCompile(`^image::([^\[]+)(?:\[(.*)\])?`)
	inlineImagePattern = regexp.MustCompile(`image:([^\[]+)(?:\[(.*?)\])?`)
)

// remoteSchemes are URL schemes exempt from file existence checks.
//
//nolint:gochecknoglobals // Fixed scheme list is intentional package state
var remoteSchemes = []string{"http://", "https://", "ftp://"}

// ImageAttributesRule checks image macros for alt text, required block
// attributes, and existence of local image files.
type ImageAttributesRule struct {
	lint.BaseRule
}

// NewImageAttributesRule creates a new image attributes rule.
func NewImageAttributesRule() *ImageAttributesRule {
	return &ImageAttributesRule{
		BaseRule: lint.NewBaseRule(
			"IMG001",
			"image-attributes",
			"Image macros need alt text and resolvable local targets",
			config.SeverityWarning,
			[]string{"images"},
		),
	}
}

// Check scans each line for block and inline image macros. A line matching
// the block form is not re-scanned for inline macros ("image::" contains
// "image:").
func (r *ImageAttributesRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	for i, line := range ctx.Doc.Lines {
		if ctx.Cancelled() {
			return findings, ctx.Ctx.Err()
		}

		if m := blockImagePattern.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			findings = append(findings, r.checkImage(ctx, m[1], m[2], "block", i, line)...)
			continue
		}

		for _, m := range inlineImagePattern.FindAllStringSubmatch(line, -1) {
			findings = append(findings, r.checkImage(ctx, m[1], m[2], "inline", i, line)...)
		}
	}

	return findings, nil
}

// checkImage validates one image occurrence: target existence and
// attribute completeness.
func (r *ImageAttributesRule) checkImage(
	ctx *lint.RuleContext,
	target, attrString, kind string,
	lineIdx int,
	line string,
) []lint.Finding {
	var findings []lint.Finding

	finding := func(message string, severity config.Severity) lint.Finding {
		return lint.Finding{
			RuleID:   r.ID(),
			Message:  message,
			Severity: severity,
			Position: lint.Position{Line: lineIdx + 1},
			Context:  line,
		}
	}

	target = strings.TrimSpace(target)
	attrs := adoc.ParseAttrs(attrString)

	if !isRemoteTarget(target) && ctx.Exists != nil {
		path := target
		if !filepath.IsAbs(path) && ctx.Doc.Path != "" {
			path = filepath.Join(filepath.Dir(ctx.Doc.Path), path)
		}
		if !ctx.Exists(path) {
			findings = append(findings,
				finding(fmt.Sprintf("Image file not found: %s", target), config.SeverityWarning))
		}
	}

	minAlt := ctx.OptionInt("min_alt_length", minAltLength)
	switch {
	case attrs["alt"] == "":
		findings = append(findings,
			finding(fmt.Sprintf("Missing alt text for %s image: %s", kind, target), config.SeverityWarning))
	case len(attrs["alt"]) < minAlt:
		findings = append(findings,
			finding(fmt.Sprintf("Alt text too short for %s image: %s", kind, target), config.SeverityInfo))
	}

	if kind == "block" && len(attrs) == 0 {
		findings = append(findings,
			finding(fmt.Sprintf("Missing required attributes for block image: %s", target), config.SeverityWarning))
	}

	return findings
}

// isRemoteTarget reports whether the image target is a network URL.
func isRemoteTarget(target string) bool {
	for _, scheme := range remoteSchemes {
		if strings.HasPrefix(target, scheme) {
			return true
		}
	}
	return false
}
