package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/adoclint/internal/ui/pretty"
	"github.com/yaklabco/adoclint/pkg/runner"
)

// ConsoleReporter formats results as styled terminal output grouped by
// file. With color forced off it doubles as the plain text format.
type ConsoleReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewConsoleReporter creates a new console reporter.
func NewConsoleReporter(opts Options) *ConsoleReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &ConsoleReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *ConsoleReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var total int

	for _, file := range result.Files {
		if file.Skipped {
			continue
		}

		findings := file.Findings()
		if len(findings) == 0 {
			continue
		}

		path := displayPath(r.opts.WorkingDir, file.Path)
		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(findings)))

		for i := range findings {
			fmt.Fprint(r.bw, r.styles.FormatFinding(&findings[i], r.opts.ShowContext))
			total++
		}

		fmt.Fprintln(r.bw)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}
