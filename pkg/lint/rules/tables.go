package rules

import (
	"fmt"
	"slices"
	"strings"

	"github.com/yaklabco/adoclint/pkg/adoc"
	"github.com/yaklabco/adoclint/pkg/config"
	"github.com/yaklabco/adoclint/pkg/lint"
)

// TableFormatRule checks visual table formatting: column separator alignment
// across rows and the blank line after the header row.
type TableFormatRule struct {
	lint.BaseRule
}

// NewTableFormatRule creates a new table format rule.
func NewTableFormatRule() *TableFormatRule {
	return &TableFormatRule{
		BaseRule: lint.NewBaseRule(
			"TABLE001",
			"table-format",
			"Tables keep column separators aligned and headers separated",
			config.SeverityWarning,
			[]string{"tables"},
		),
	}
}

// Check extracts every table region and runs the alignment and header
// separator checks on each.
func (r *TableFormatRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	for _, table := range adoc.ExtractTables(ctx.Doc.Lines) {
		if ctx.Cancelled() {
			return findings, ctx.Ctx.Err()
		}
		findings = append(findings, r.checkAlignment(table)...)
		findings = append(findings, r.checkHeaderSeparator(table)...)
	}

	return findings, nil
}

// checkAlignment compares the '|' byte offsets of each content row against
// the first row that has any. Only the first misaligned row per table is
// reported; once a table drifts, every later row differs too.
func (r *TableFormatRule) checkAlignment(table *adoc.Table) []lint.Finding {
	var reference []int

	for _, row := range table.ContentRows() {
		if strings.TrimSpace(row.Text) == "" {
			continue
		}
		offsets := adoc.CellOffsets(row.Text)
		if len(offsets) == 0 {
			continue
		}
		if reference == nil {
			reference = offsets
			continue
		}
		if !slices.Equal(offsets, reference) {
			return []lint.Finding{{
				RuleID:   r.ID(),
				Message:  "Column alignment is inconsistent with previous rows",
				Severity: config.SeverityWarning,
				Position: lint.Position{Line: row.LineIndex + 1},
				Context:  row.Text,
			}}
		}
	}

	return nil
}

// checkHeaderSeparator finds the first content row carrying cells and
// requires the line after it to be blank.
func (r *TableFormatRule) checkHeaderSeparator(table *adoc.Table) []lint.Finding {
	rows := table.ContentRows()

	for i, row := range rows {
		if !strings.Contains(row.Text, "|") {
			continue
		}
		if i+1 >= len(rows) {
			return nil
		}
		next := rows[i+1]
		if strings.TrimSpace(next.Text) != "" {
			return []lint.Finding{{
				RuleID:   r.ID(),
				Message:  "Header row should be followed by an empty line",
				Severity: config.SeverityWarning,
				Position: lint.Position{Line: next.LineIndex + 1},
				Context:  next.Text,
			}}
		}
		return nil
	}

	return nil
}

// TableStructureRule checks structural consistency: every row has the same
// cell count and tables are not empty.
type TableStructureRule struct {
	lint.BaseRule
}

// NewTableStructureRule creates a new table structure rule.
func NewTableStructureRule() *TableStructureRule {
	return &TableStructureRule{
		BaseRule: lint.NewBaseRule(
			"TABLE002",
			"table-structure",
			"Tables have uniform column counts and at least one row",
			config.SeverityError,
			[]string{"tables"},
		),
	}
}

// Check validates cell counts per table. The first row carrying cells sets
// the expected count; every later divergence is reported.
func (r *TableStructureRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	for _, table := range adoc.ExtractTables(ctx.Doc.Lines) {
		if ctx.Cancelled() {
			return findings, ctx.Ctx.Err()
		}

		expected := -1
		contentRows := 0

		for _, row := range table.ContentRows() {
			if !adoc.IsRowLine(row.Text) {
				continue
			}
			contentRows++
			count := len(adoc.SplitCells(row.Text))

			if expected < 0 {
				expected = count
				continue
			}
			if count != expected {
				findings = append(findings, lint.Finding{
					RuleID:   r.ID(),
					Message:  fmt.Sprintf("Inconsistent column count. Expected %d, found %d", expected, count),
					Severity: config.SeverityError,
					Position: lint.Position{Line: row.LineIndex + 1},
					Context:  row.Text,
				})
			}
		}

		if contentRows == 0 {
			findings = append(findings, lint.Finding{
				RuleID:   r.ID(),
				Message:  "Empty table",
				Severity: config.SeverityWarning,
				Position: lint.Position{Line: table.StartLine() + 1},
				Context:  table.Rows[0].Text,
			})
		}
	}

	return findings, nil
}

// TableContentRule checks cell content for complex constructs that need an
// explicit cell style, currently lists without an "a|" or "l|" declaration.
type TableContentRule struct {
	lint.BaseRule
}

// NewTableContentRule creates a new table content rule.
func NewTableContentRule() *TableContentRule {
	return &TableContentRule{
		BaseRule: lint.NewBaseRule(
			"TABLE003",
			"table-content",
			"Complex cell content carries the proper cell style declaration",
			config.SeverityWarning,
			[]string{"tables"},
		),
	}
}

// Check scans every table row for cells whose content starts with a list
// marker but lacks the a or l style. At most one finding is emitted per
// physical row; a correctly declared list cell does not suppress a later
// undeclared one on the same row.
func (r *TableContentRule) Check(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	for _, table := range adoc.ExtractTables(ctx.Doc.Lines) {
		if ctx.Cancelled() {
			return findings, ctx.Ctx.Err()
		}

		for _, row := range table.ContentRows() {
			if !adoc.IsRowLine(row.Text) {
				continue
			}

			for _, cell := range adoc.SplitCells(row.Text) {
				if !startsWithListMarker(cell.Text) {
					continue
				}
				if cell.Style == "a" || cell.Style == "l" {
					continue
				}
				findings = append(findings, lint.Finding{
					RuleID:   r.ID(),
					Message:  "List in table cell requires 'a|' or 'l|' declaration",
					Severity: config.SeverityWarning,
					Position: lint.Position{Line: row.LineIndex + 1},
					Context:  row.Text,
				})
				break
			}
		}
	}

	return findings, nil
}

// startsWithListMarker reports whether cell text begins with a bullet
// list marker.
func startsWithListMarker(text string) bool {
	trimmed := strings.TrimLeft(text, " \t")
	return trimmed != "" && (trimmed[0] == '*' || trimmed[0] == '-')
}
