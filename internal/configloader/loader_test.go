package configloader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/adoclint/pkg/config"
)

// isolatedWorkDir returns a directory whose project config search cannot
// escape into the surrounding filesystem.
func isolatedWorkDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))
	return dir
}

func isolatedLoadOptions(t *testing.T) LoadOptions {
	t.Helper()
	return LoadOptions{
		WorkingDir:         isolatedWorkDir(t),
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
		Registry:           testRegistry(),
	}
}

func TestLoadDefaults(t *testing.T) {
	result, err := Load(context.Background(), isolatedLoadOptions(t))
	require.NoError(t, err)

	assert.Equal(t, config.FormatConsole, result.Config.Format)
	assert.Equal(t, 0, result.Config.Jobs)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoadExplicitPath(t *testing.T) {
	opts := isolatedLoadOptions(t)
	opts.ExplicitPath = filepath.Join(t.TempDir(), "lint.yml")
	writeTestFile(t, opts.ExplicitPath, `
severity_default: error
ignore:
  - "build/**"
rules:
  WS001:
    enabled: false
`)

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, "error", result.Config.SeverityDefault)
	assert.Equal(t, []string{"build/**"}, result.Config.Ignore)
	require.Contains(t, result.Config.Rules, "WS001")
	assert.False(t, *result.Config.Rules["WS001"].Enabled)
	assert.Equal(t, []string{opts.ExplicitPath}, result.LoadedFrom)
	assert.Equal(t, opts.ExplicitPath, result.Paths.Explicit)
}

func TestLoadExplicitPathMissing(t *testing.T) {
	opts := isolatedLoadOptions(t)
	opts.ExplicitPath = filepath.Join(t.TempDir(), "nope.yml")

	_, err := Load(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load explicit config")
}

func TestLoadProjectConfigDiscovered(t *testing.T) {
	opts := isolatedLoadOptions(t)
	projectConfig := filepath.Join(opts.WorkingDir, ".adoclint.yml")
	writeTestFile(t, projectConfig, "severity_default: info\n")

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, "info", result.Config.SeverityDefault)
	assert.Equal(t, []string{projectConfig}, result.LoadedFrom)
	assert.Equal(t, projectConfig, result.Paths.Project)
}

func TestLoadCLIConfigWins(t *testing.T) {
	opts := isolatedLoadOptions(t)
	opts.ExplicitPath = filepath.Join(t.TempDir(), "lint.yml")
	writeTestFile(t, opts.ExplicitPath, "severity_default: info\n")
	opts.CLIConfig = &config.Config{
		SeverityDefault: "error",
		Format:          config.FormatJSON,
	}

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, "error", result.Config.SeverityDefault)
	assert.Equal(t, config.FormatJSON, result.Config.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ADOCLINT_JOBS", "9")
	t.Setenv("ADOCLINT_FORMAT", "plain")

	opts := isolatedLoadOptions(t)
	opts.IgnoreEnv = false

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 9, result.Config.Jobs)
	assert.Equal(t, config.FormatPlain, result.Config.Format)
}

func TestLoadEnvBeatenByCLI(t *testing.T) {
	t.Setenv("ADOCLINT_FORMAT", "plain")

	opts := isolatedLoadOptions(t)
	opts.IgnoreEnv = false
	opts.CLIConfig = &config.Config{Format: config.FormatHTML}

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, config.FormatHTML, result.Config.Format)
}

func TestLoadValidationFailure(t *testing.T) {
	opts := isolatedLoadOptions(t)
	opts.ExplicitPath = filepath.Join(t.TempDir(), "lint.yml")
	writeTestFile(t, opts.ExplicitPath, "severity_default: fatal\n")

	_, err := Load(context.Background(), opts)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "severity_default", validationErr.Field)
}

func TestLoadUnknownRuleWarns(t *testing.T) {
	opts := isolatedLoadOptions(t)
	opts.ExplicitPath = filepath.Join(t.TempDir(), "lint.yml")
	writeTestFile(t, opts.ExplicitPath, `
rules:
  BOGUS42:
    enabled: true
`)

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "BOGUS42")
}

func TestWriteConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adoclint.yml")
	cfg := &config.Config{
		SeverityDefault: "warning",
		Ignore:          []string{"vendor/**"},
	}

	require.NoError(t, WriteConfig(cfg, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# adoclint configuration")

	loaded, err := loadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "warning", loaded.SeverityDefault)
	assert.Equal(t, []string{"vendor/**"}, loaded.Ignore)
}
