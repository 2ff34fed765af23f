package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/adoclint/pkg/adoc"
	"github.com/yaklabco/adoclint/pkg/config"
	"github.com/yaklabco/adoclint/pkg/fsutil"
	"github.com/yaklabco/adoclint/pkg/langdetect"
	"github.com/yaklabco/adoclint/pkg/lint"
)

// Runner orchestrates multi-file linting using a lint.Engine.
type Runner struct {
	// Engine runs the rule set against each document.
	Engine *lint.Engine
}

// New creates a new Runner with the given engine.
func New(engine *lint.Engine) *Runner {
	return &Runner{Engine: engine}
}

// Run discovers files under opts.Paths and lints them concurrently.
// It returns a deterministic collection of FileOutcome values and
// aggregate stats.
//
// The runner:
//   - Discovers files matching the options criteria
//   - Lints files concurrently using a worker pool
//   - Aggregates results into a single Result with statistics
//   - Respects context cancellation
//
// A file that cannot be read does not abort the run: the outcome carries
// the error plus a synthetic error-severity finding so reporters surface
// it alongside lint results.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; key outcomes by path and rebuild in
	// discovery order.
	outcomes := make(map[string]FileOutcome, len(files))

	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker lints files from workCh and sends outcomes to outCh.
func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome, opts Options) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.lintFile(ctx, path, opts)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// lintFile reads, classifies, and lints a single file.
func (r *Runner) lintFile(ctx context.Context, path string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = err
		outcome.Result = &lint.DocumentResult{
			Doc: &adoc.Document{Path: path},
			Findings: []lint.Finding{{
				Message:  fmt.Sprintf("Cannot read file: %v", err),
				Severity: config.SeverityError,
				Position: lint.Position{Line: 1},
				FilePath: path,
			}},
		}
		return outcome
	}

	if opts.SniffContent && !langdetect.IsAsciiDoc(path, content) {
		outcome.Skipped = true
		outcome.SkipReason = "content is not AsciiDoc"
		return outcome
	}

	doc := adoc.New(path, content)

	dr, err := r.Engine.LintDocument(ctx, doc, opts.Config)
	if err != nil {
		outcome.Error = err
	}
	outcome.Result = dr

	return outcome
}
