package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/adoclint/pkg/runner"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("setup mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("= Title\n"), 0o644); err != nil {
			t.Fatalf("setup write: %v", err)
		}
	}
}

func TestDiscover_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "readme.adoc")

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{filepath.Join(dir, "readme.adoc")},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 1 || files[0] != filepath.Join(dir, "readme.adoc") {
		t.Errorf("unexpected files %v", files)
	}
}

func TestDiscover_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir,
		"readme.adoc",
		"docs/guide.adoc",
		"docs/api.asciidoc",
		"docs/legacy.asc",
		"src/main.go",
		"notes.txt",
	)

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	expected := []string{
		filepath.Join(dir, "docs/api.asciidoc"),
		filepath.Join(dir, "docs/guide.adoc"),
		filepath.Join(dir, "docs/legacy.asc"),
		filepath.Join(dir, "readme.adoc"),
	}

	if len(files) != len(expected) {
		t.Fatalf("expected %d files, got %d: %v", len(expected), len(files), files)
	}
	for i, want := range expected {
		if files[i] != want {
			t.Errorf("file %d: got %s, want %s", i, files[i], want)
		}
	}
}

func TestDiscover_ExplicitFileBypassesExtensionFilter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "notes.txt")

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{filepath.Join(dir, "notes.txt")},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 1 {
		t.Errorf("explicitly named file should be included, got %v", files)
	}
}

func TestDiscover_ExcludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir,
		"keep.adoc",
		"build/generated.adoc",
		"docs/draft.adoc",
	)

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:        []string{"."},
		WorkingDir:   dir,
		ExcludeGlobs: []string{"build/**", "draft.adoc"},
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 1 || files[0] != filepath.Join(dir, "keep.adoc") {
		t.Errorf("unexpected files %v", files)
	}
}

func TestDiscover_HiddenEntriesSkipped(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir,
		"visible.adoc",
		".hidden.adoc",
		".git/objects/stash.adoc",
	)

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 1 || files[0] != filepath.Join(dir, "visible.adoc") {
		t.Errorf("unexpected files %v", files)
	}
}

func TestDiscover_Deduplicates(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "doc.adoc")

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{".", "doc.adoc"},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 1 {
		t.Errorf("expected path to appear once, got %v", files)
	}
}

func TestDiscover_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"does-not-exist"},
		WorkingDir: t.TempDir(),
	})
	if err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestDiscover_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Discover(ctx, runner.Options{
		Paths:      []string{"."},
		WorkingDir: t.TempDir(),
	})
	if err == nil {
		t.Fatal("expected cancellation error")
	}
}

func TestDefaultExtensions(t *testing.T) {
	t.Parallel()

	extensions := runner.DefaultExtensions()
	want := []string{".adoc", ".asciidoc", ".asc"}

	if len(extensions) != len(want) {
		t.Fatalf("unexpected extensions %v", extensions)
	}
	for i, ext := range want {
		if extensions[i] != ext {
			t.Errorf("extension %d: got %s, want %s", i, extensions[i], ext)
		}
	}
}
