package lint

import "sort"

// Report is an ordered collection of findings across one or more files.
type Report struct {
	// Findings holds all findings in report order.
	Findings []Finding
}

// NewReport creates an empty Report.
func NewReport() *Report {
	return &Report{}
}

// Add appends findings to the report.
func (r *Report) Add(findings ...Finding) {
	r.Findings = append(r.Findings, findings...)
}

// Len returns the number of findings.
func (r *Report) Len() int {
	return len(r.Findings)
}

// HasFindings reports whether the report contains any findings.
func (r *Report) HasFindings() bool {
	return len(r.Findings) > 0
}

// ExitCode returns the process exit status for the report: 0 if empty,
// 1 otherwise.
func (r *Report) ExitCode() int {
	if len(r.Findings) == 0 {
		return 0
	}
	return 1
}

// FileFindings groups the findings of one file.
type FileFindings struct {
	// Path is the file path; empty for findings without a file.
	Path string

	// Findings are the file's findings in report order.
	Findings []Finding
}

// ByFile groups findings by file path, preserving the insertion order of
// each path's first appearance.
func (r *Report) ByFile() []FileFindings {
	index := make(map[string]int)
	var groups []FileFindings

	for _, f := range r.Findings {
		idx, ok := index[f.FilePath]
		if !ok {
			idx = len(groups)
			index[f.FilePath] = idx
			groups = append(groups, FileFindings{Path: f.FilePath})
		}
		groups[idx].Findings = append(groups[idx].Findings, f)
	}

	return groups
}

// SortFindings stable-sorts findings by ascending line number, ties broken
// by column (0 = unset sorts first) and original emission order.
func SortFindings(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Position.Line != findings[j].Position.Line {
			return findings[i].Position.Line < findings[j].Position.Line
		}
		return findings[i].Position.Column < findings[j].Position.Column
	})
}
