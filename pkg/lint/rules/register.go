package rules

import "github.com/yaklabco/adoclint/pkg/lint"

// All returns a fresh instance of every built-in rule.
func All() []lint.Rule {
	return []lint.Rule{
		NewHeadingHierarchyRule(),
		NewHeadingFormatRule(),
		NewSingleTopLevelRule(),
		NewUnterminatedBlockRule(),
		NewBlockSpacingRule(),
		NewWhitespaceRule(),
		NewImageAttributesRule(),
		NewTableFormatRule(),
		NewTableStructureRule(),
		NewTableContentRule(),
	}
}

// RegisterAll registers every built-in rule with the given registry.
func RegisterAll(registry *lint.Registry) {
	for _, rule := range All() {
		registry.Register(rule)
	}
}

//nolint:gochecknoinits // Built-in rules self-register with the default registry
func init() {
	RegisterAll(lint.DefaultRegistry)
}
