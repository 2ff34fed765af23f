package configloader

import (
	"fmt"

	"github.com/yaklabco/adoclint/pkg/config"
	"github.com/yaklabco/adoclint/pkg/lint"
)

// ValidationError is a fatal configuration problem.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Message)
}

// ValidationWarning is a non-fatal configuration problem.
type ValidationWarning struct {
	Field   string
	Message string
}

// ValidationResult aggregates validation output.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// Valid reports whether the configuration has no fatal problems.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks a configuration for problems. Unknown rule IDs and
// unknown severities in per-rule config are warnings; a malformed
// severity_default is an error because it silently changes every rule.
func Validate(cfg *config.Config, registry *lint.Registry) *ValidationResult {
	result := &ValidationResult{}

	if cfg == nil {
		return result
	}

	if cfg.SeverityDefault != "" && !config.Severity(cfg.SeverityDefault).IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "severity_default",
			Message: fmt.Sprintf("unknown severity %q (valid: error, warning, info)", cfg.SeverityDefault),
		})
	}

	for key, ruleCfg := range cfg.Rules {
		if _, ok := registry.Get(key); !ok {
			result.Warnings = append(result.Warnings, ValidationWarning{
				Field:   "rules." + key,
				Message: fmt.Sprintf("unknown rule %q", key),
			})
		}

		if ruleCfg.Severity != nil && !config.Severity(*ruleCfg.Severity).IsValid() {
			result.Warnings = append(result.Warnings, ValidationWarning{
				Field:   "rules." + key + ".severity",
				Message: fmt.Sprintf("unknown severity %q, falling back to warning", *ruleCfg.Severity),
			})
		}
	}

	if cfg.Format != "" {
		switch cfg.Format {
		case config.FormatConsole, config.FormatPlain, config.FormatJSON, config.FormatHTML:
		default:
			result.Errors = append(result.Errors, ValidationError{
				Field:   "format",
				Message: fmt.Sprintf("unknown format %q (valid: console, plain, json, html)", cfg.Format),
			})
		}
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Message: "must be zero or positive",
		})
	}

	return result
}
