package cli

import (
	"errors"

	"github.com/yaklabco/adoclint/internal/configloader"
	"github.com/yaklabco/adoclint/pkg/fsutil"
	"github.com/yaklabco/adoclint/pkg/runner"
)

// Exit codes for adoclint.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitLintIssues indicates lint completed and found issues.
	ExitLintIssues = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code based on the run result.
// Any finding, regardless of severity, fails the run.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil {
		return ExitSuccess
	}
	if result.HasIssues() {
		return ExitLintIssues
	}
	return ExitSuccess
}

// ExitCodeForError maps an error from command execution to an exit code.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, ErrLintIssuesFound) {
		return ExitLintIssues
	}
	if errors.Is(err, ErrConfigLoad) {
		return ExitConfigError
	}
	var validationErr *configloader.ValidationError
	if errors.As(err, &validationErr) {
		return ExitConfigError
	}
	if errors.Is(err, fsutil.ErrNotFound) ||
		errors.Is(err, fsutil.ErrPermissionDenied) ||
		errors.Is(err, fsutil.ErrIsDirectory) {
		return ExitIOError
	}
	return ExitInvalidUsage
}
