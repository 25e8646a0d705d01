package taskfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"mdtask/internal/taskfile"
)

func TestAppend_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.md")

	if err := taskfile.Append(path, "- [ ] First task"); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "- [ ] First task\n" {
		t.Errorf("expected single line with trailing newline, got %q", string(data))
	}
}

func TestAppend_PreservesExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.md")
	prior := "# My tasks\n- [ ] Old task\n"
	if err := os.WriteFile(path, []byte(prior), 0644); err != nil {
		t.Fatal(err)
	}

	if err := taskfile.Append(path, "- [ ] New task"); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := prior + "- [ ] New task\n"
	if string(data) != want {
		t.Errorf("expected %q, got %q", want, string(data))
	}
}

func TestAppend_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes", "tasks.md")

	if err := taskfile.Append(path, "- [ ] Nested task"); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("file must exist after append: %v", err)
	}
}

func TestAppend_SequentialAppendsKeepOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.md")

	for _, line := range []string{"- [ ] one", "- [ ] two", "- [ ] three"} {
		if err := taskfile.Append(path, line); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "- [ ] one\n- [ ] two\n- [ ] three\n"
	if string(data) != want {
		t.Errorf("expected %q, got %q", want, string(data))
	}
}

func TestAppend_PathIsDirectory(t *testing.T) {
	dir := t.TempDir()

	err := taskfile.Append(dir, "- [ ] nope")
	if err == nil {
		t.Error("expected an error when the target path is a directory")
	}
}

func TestAppend_ParentCannotBeCreated(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	err := taskfile.Append(filepath.Join(blocker, "tasks.md"), "- [ ] nope")
	if err == nil {
		t.Error("expected an error when the parent directory cannot be created")
	}
}
