package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/adoclint/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.adoc")
	if err := os.WriteFile(path, []byte("= Title\n"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	content, info, err := fsutil.ReadFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(content) != "= Title\n" {
		t.Errorf("unexpected content %q", content)
	}
	if info.Path != path {
		t.Errorf("unexpected info path %q", info.Path)
	}
	if info.Size != int64(len(content)) {
		t.Errorf("unexpected size %d", info.Size)
	}
}

func TestReadFile_NotFound(t *testing.T) {
	t.Parallel()

	_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing.adoc"))

	if !errors.Is(err, fsutil.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestReadFile_Directory(t *testing.T) {
	t.Parallel()

	_, _, err := fsutil.ReadFile(context.Background(), t.TempDir())

	if !errors.Is(err, fsutil.ErrIsDirectory) {
		t.Errorf("expected ErrIsDirectory, got %v", err)
	}
}

func TestReadFile_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := fsutil.ReadFile(ctx, "anything")

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "present.png")
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if !fsutil.FileExists(path) {
		t.Error("expected existing file to be found")
	}
	if fsutil.FileExists(filepath.Join(dir, "absent.png")) {
		t.Error("expected missing file to not be found")
	}
	if fsutil.FileExists(dir) {
		t.Error("expected directory to not count as a file")
	}
}
