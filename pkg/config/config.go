// Package config defines core configuration types for adoclint.
// These types are pure data structures with no dependency on the config
// loader or the CLI.
package config

import "strings"

// Severity represents the severity level of a lint finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// ParseSeverity converts a string to a Severity, case-insensitively.
// Unrecognized values degrade to SeverityWarning rather than failing.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return SeverityError
	case "warning", "warn":
		return SeverityWarning
	case "info":
		return SeverityInfo
	default:
		return SeverityWarning
	}
}

// IsValid returns true if the severity is one of the known levels.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// Equals compares the severity with a raw string, case-insensitively.
func (s Severity) Equals(raw string) bool {
	return strings.EqualFold(string(s), raw)
}

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled  *bool          `yaml:"enabled"`
	Severity *string        `yaml:"severity"`
	Options  map[string]any `yaml:"options"`
}

// OutputFormat specifies the output format for findings.
type OutputFormat string

const (
	FormatConsole OutputFormat = "console"
	FormatPlain   OutputFormat = "plain"
	FormatJSON    OutputFormat = "json"
	FormatHTML    OutputFormat = "html"
)

// Config is the root configuration structure for adoclint.
type Config struct {
	// SeverityDefault is applied to rules that configure no severity of
	// their own. Empty means "use each rule's default".
	SeverityDefault string `yaml:"severity_default"`

	// Rules contains per-rule configuration keyed by rule ID.
	Rules map[string]RuleConfig `yaml:"rules"`

	// Ignore contains glob patterns for files to skip during discovery.
	Ignore []string `yaml:"ignore"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Jobs specifies the number of parallel workers (0 = auto).
	Jobs int `yaml:"-"`

	// EnableRules contains rule IDs to explicitly enable.
	EnableRules []string `yaml:"-"`

	// DisableRules contains rule IDs to explicitly disable.
	DisableRules []string `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rules:  make(map[string]RuleConfig),
		Format: FormatConsole,
		Jobs:   0,
	}
}
