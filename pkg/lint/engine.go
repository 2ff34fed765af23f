package lint

import (
	"context"
	"fmt"

	"github.com/yaklabco/adoclint/pkg/adoc"
	"github.com/yaklabco/adoclint/pkg/config"
)

// DocumentResult contains the results of linting a single document.
type DocumentResult struct {
	// Doc is the document that was checked.
	Doc *adoc.Document

	// Findings contains all violations found, sorted by position.
	Findings []Finding

	// RuleErrors contains any internal errors from rule execution, keyed
	// by rule ID. A failing rule never aborts the run.
	RuleErrors map[string]error
}

// HasFindings returns true if any findings were produced.
func (dr *DocumentResult) HasFindings() bool {
	return len(dr.Findings) > 0
}

// Engine coordinates rule execution over documents.
type Engine struct {
	// Registry holds all available rules.
	Registry *Registry

	// Exists is the filesystem existence collaborator handed to rules.
	Exists ExistsFunc
}

// NewEngine creates a new Engine with the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{Registry: registry}
}

// LintDocument runs every enabled rule against a document, applies resolved
// severities, and returns the findings stable-sorted by (line, column).
func (e *Engine) LintDocument(
	ctx context.Context,
	doc *adoc.Document,
	cfg *config.Config,
) (*DocumentResult, error) {
	resolved := ResolveRules(e.Registry, cfg)

	result := &DocumentResult{
		Doc:        doc,
		RuleErrors: make(map[string]error),
	}

	for _, rr := range resolved {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("linting cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := NewRuleContext(ctx, doc, cfg, rr.Config)
		ruleCtx.Exists = e.Exists

		findings, err := rr.Rule.Check(ruleCtx)
		if err != nil {
			result.RuleErrors[rr.Rule.ID()] = err
			continue
		}

		for i := range findings {
			if rr.Severity != nil {
				findings[i].Severity = *rr.Severity
			}
			if findings[i].FilePath == "" {
				findings[i].FilePath = doc.Path
			}
			if findings[i].RuleID == "" {
				findings[i].RuleID = rr.Rule.ID()
			}
		}

		result.Findings = append(result.Findings, findings...)
	}

	SortFindings(result.Findings)

	return result, nil
}
