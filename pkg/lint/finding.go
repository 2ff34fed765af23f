// Package lint provides the finding model, rule engine, and registry for
// adoclint.
package lint

import (
	"fmt"

	"github.com/yaklabco/adoclint/pkg/config"
)

// Position is a 1-based source location. A zero Column means "unset":
// findings anchored to a whole line carry no column.
type Position struct {
	Line   int
	Column int
}

// String renders the position as "line N" or "line N, column M".
func (p Position) String() string {
	if p.Column > 0 {
		return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
	}
	return fmt.Sprintf("line %d", p.Line)
}

// Finding represents a single reported rule violation. It is an immutable
// value; equality is structural.
type Finding struct {
	// RuleID is the identifier of the rule that produced this finding
	// (e.g. "HEAD001"). Empty for synthetic findings such as read errors.
	RuleID string

	// Message is the human-readable description of the violation.
	Message string

	// Severity indicates the importance of the finding.
	Severity config.Severity

	// Position is the 1-based source location.
	Position Position

	// FilePath is the path of the file the finding belongs to, if known.
	FilePath string

	// Context carries the raw source line the finding refers to.
	Context string
}

// NewFinding constructs a Finding with a severity given as a raw string.
// Unrecognized severities degrade to warning.
func NewFinding(ruleID, message, severity string, pos Position) Finding {
	return Finding{
		RuleID:   ruleID,
		Message:  message,
		Severity: config.ParseSeverity(severity),
		Position: pos,
	}
}
