package runner

import (
	"github.com/yaklabco/adoclint/pkg/config"
	"github.com/yaklabco/adoclint/pkg/lint"
)

// FileOutcome wraps a per-file lint result with resolved path metadata.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result contains the lint result for this file. For files that could
	// not be read it carries a single synthetic error finding.
	Result *lint.DocumentResult

	// Skipped is set when content sniffing ruled the file out.
	Skipped bool

	// SkipReason explains why the file was skipped.
	SkipReason string

	// Error is set if the file could not be processed.
	Error error
}

// Findings returns the findings for this file, nil when the file was
// skipped or produced none.
func (o FileOutcome) Findings() []lint.Finding {
	if o.Result == nil {
		return nil
	}
	return o.Result.Findings
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully linted.
	FilesProcessed int

	// FilesSkipped is the number of files skipped by content sniffing.
	FilesSkipped int

	// FilesErrored is the number of files that could not be read.
	FilesErrored int

	// FindingsTotal is the total number of findings across all files.
	FindingsTotal int

	// FindingsBySeverity maps severity levels to counts.
	FindingsBySeverity map[string]int

	// FilesWithIssues is the number of files with at least one finding.
	FilesWithIssues int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any findings with error severity occurred.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FindingsBySeverity[string(config.SeverityError)] > 0
}

// HasIssues reports whether any findings were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.FindingsTotal > 0
}

// Report flattens the per-file outcomes into a single report, preserving
// the deterministic file order.
func (r *Result) Report() *lint.Report {
	report := &lint.Report{}
	for _, outcome := range r.Files {
		for _, finding := range outcome.Findings() {
			report.Add(finding)
		}
	}
	return report
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		FindingsBySeverity: make(map[string]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	switch {
	case outcome.Error != nil:
		r.Stats.FilesErrored++
	case outcome.Skipped:
		r.Stats.FilesSkipped++
	default:
		r.Stats.FilesProcessed++
	}

	findings := outcome.Findings()
	if len(findings) > 0 {
		r.Stats.FilesWithIssues++
	}
	r.Stats.FindingsTotal += len(findings)

	for _, finding := range findings {
		severity := string(finding.Severity)
		if severity == "" {
			severity = string(config.SeverityWarning)
		}
		r.Stats.FindingsBySeverity[severity]++
	}
}
