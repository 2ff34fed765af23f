package lint

import "github.com/yaklabco/adoclint/pkg/config"

// Rule defines the interface all lint rules implement.
//
// Rules must be stateless: any per-document scan state (open-delimiter maps,
// blank-line counters) lives in locals of Check, never in instance fields.
// This lets a single rule instance be reused across documents and goroutines
// without reset ceremony or cross-document leakage.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g. "HEAD001").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity for this rule.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags for this rule.
	Tags() []string

	// Check executes the rule against the document in ctx and returns
	// findings. Errors signal internal rule failures, not violations.
	Check(ctx *RuleContext) ([]Finding, error)
}
