package reporter

import (
	"bufio"
	"context"
	"fmt"
	"html/template"

	"github.com/yaklabco/adoclint/pkg/runner"
)

// htmlPage is the template for the standalone HTML report.
//
//nolint:gochecknoglobals // Parsed once at package init
var htmlPage = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>AsciiDoc Lint Results</title>
    <style>
        table { border-collapse: collapse; width: 100%; }
        th, td { padding: 8px; text-align: left; border: 1px solid #ddd; }
        th { background-color: #f2f2f2; }
        tr:nth-child(even) { background-color: #f9f9f9; }
        tr:hover { background-color: #f5f5f5; }
    </style>
</head>
<body>
    <h1>AsciiDoc Lint Results</h1>
    <table>
        <tr>
            <th>Severity</th>
            <th>Rule ID</th>
            <th>File</th>
            <th>Location</th>
            <th>Message</th>
        </tr>
{{- range .Rows}}
        <tr>
            <td>{{.Severity}}</td>
            <td>{{.RuleID}}</td>
            <td>{{.File}}</td>
            <td>{{.Location}}</td>
            <td>{{.Message}}</td>
        </tr>
{{- end}}
    </table>
</body>
</html>
`))

// htmlRow is one table row in the HTML report.
type htmlRow struct {
	Severity string
	RuleID   string
	File     string
	Location string
	Message  string
}

// htmlData is the template input.
type htmlData struct {
	Rows []htmlRow
}

// HTMLReporter renders results as a standalone HTML page with one table
// row per finding.
type HTMLReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewHTMLReporter creates a new HTML reporter.
func NewHTMLReporter(opts Options) *HTMLReporter {
	return &HTMLReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *HTMLReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	data := htmlData{}

	if result != nil {
		for _, file := range result.Files {
			for _, finding := range file.Findings() {
				data.Rows = append(data.Rows, htmlRow{
					Severity: string(finding.Severity),
					RuleID:   finding.RuleID,
					File:     displayPath(r.opts.WorkingDir, file.Path),
					Location: finding.Position.String(),
					Message:  finding.Message,
				})
			}
		}
	}

	if err := htmlPage.Execute(r.bw, data); err != nil {
		return 0, fmt.Errorf("render HTML: %w", err)
	}

	return len(data.Rows), nil
}
