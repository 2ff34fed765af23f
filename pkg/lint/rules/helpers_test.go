package rules_test

import (
	"context"
	"testing"

	"github.com/yaklabco/adoclint/pkg/adoc"
	"github.com/yaklabco/adoclint/pkg/lint"
)

// checkLines runs a rule against an in-memory document and fails the test on
// internal rule errors.
func checkLines(t *testing.T, rule lint.Rule, lines []string) []lint.Finding {
	t.Helper()

	doc := adoc.FromLines("test.adoc", lines)
	ctx := lint.NewRuleContext(context.Background(), doc, nil, nil)

	findings, err := rule.Check(ctx)
	if err != nil {
		t.Fatalf("%s.Check() error = %v", rule.ID(), err)
	}
	return findings
}

// assertLines verifies that findings sit on the expected 1-based lines, in
// order.
func assertLines(t *testing.T, findings []lint.Finding, lines ...int) {
	t.Helper()

	if len(findings) != len(lines) {
		t.Fatalf("expected %d findings, got %d: %+v", len(lines), len(findings), findings)
	}
	for i, want := range lines {
		if findings[i].Position.Line != want {
			t.Errorf("finding %d on line %d, want %d: %+v",
				i, findings[i].Position.Line, want, findings[i])
		}
	}
}
