package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/adoclint/pkg/adoc"
	"github.com/yaklabco/adoclint/pkg/config"
	"github.com/yaklabco/adoclint/pkg/lint"
)

// UnterminatedBlockRule checks for delimited blocks that are never closed.
type UnterminatedBlockRule struct {
	lint.BaseRule
}

// NewUnterminatedBlockRule creates a new unterminated block rule.
func NewUnterminatedBlockRule() *UnterminatedBlockRule {
	return &UnterminatedBlockRule{
		BaseRule: lint.NewBaseRule(
			"BLOCK001",
			"unterminated-block",
			"Delimited blocks must be terminated by a matching delimiter",
			config.SeverityError,
			[]string{"blocks"},
		),
	}
}

// Check reports one error per block whose opening delimiter has no matching
// close, anchored at the opening line.
func (r *UnterminatedBlockRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	for _, block := range adoc.ScanBlocks(ctx.Doc.Lines) {
		if ctx.Cancelled() {
			return findings, ctx.Ctx.Err()
		}
		if block.Terminated() {
			continue
		}

		findings = append(findings, lint.Finding{
			RuleID:   r.ID(),
			Message:  fmt.Sprintf("Unterminated %s block starting", adoc.MarkerName(block.Marker)),
			Severity: config.SeverityError,
			Position: lint.Position{Line: block.OpenLine + 1},
			Context:  ctx.Doc.Lines[block.OpenLine],
		})
	}

	return findings, nil
}

// BlockSpacingRule checks for blank lines around delimited blocks.
type BlockSpacingRule struct {
	lint.BaseRule
}

// NewBlockSpacingRule creates a new block spacing rule.
func NewBlockSpacingRule() *BlockSpacingRule {
	return &BlockSpacingRule{
		BaseRule: lint.NewBaseRule(
			"BLOCK002",
			"block-spacing",
			"Delimited blocks should be surrounded by blank lines",
			config.SeverityWarning,
			[]string{"blocks", "whitespace"},
		),
	}
}

// Check warns when an opening delimiter is preceded, or a closing delimiter
// followed, by a non-blank line. Heading lines do not count as non-blank
// for this adjacency check.
func (r *BlockSpacingRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding
	lines := ctx.Doc.Lines

	for _, block := range adoc.ScanBlocks(lines) {
		if ctx.Cancelled() {
			return findings, ctx.Ctx.Err()
		}

		if block.OpenLine > 0 {
			prev := strings.TrimSpace(lines[block.OpenLine-1])
			if prev != "" && !strings.HasPrefix(prev, "=") {
				findings = append(findings, lint.Finding{
					RuleID:   r.ID(),
					Message:  "Block should be preceded by a blank line",
					Severity: config.SeverityWarning,
					Position: lint.Position{Line: block.OpenLine + 1},
					Context:  lines[block.OpenLine],
				})
			}
		}

		if block.Terminated() && block.CloseLine+1 < len(lines) {
			next := strings.TrimSpace(lines[block.CloseLine+1])
			if next != "" && !strings.HasPrefix(next, "=") {
				findings = append(findings, lint.Finding{
					RuleID:   r.ID(),
					Message:  "Block should be followed by a blank line",
					Severity: config.SeverityWarning,
					Position: lint.Position{Line: block.CloseLine + 2},
					Context:  lines[block.CloseLine+1],
				})
			}
		}
	}

	return findings, nil
}
