package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIsWatchedFile(t *testing.T) {
	tests := map[string]bool{
		"levels/caves.ldtk": true,
		"settings.yaml":     true,
		"SETTINGS.YML":      true,
		"notes.txt":         false,
		"caves.ldtk~":       false,
	}
	for path, want := range tests {
		if got := isWatchedFile(path); got != want {
			t.Errorf("isWatchedFile(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestWatcherReportsLevelWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	level := filepath.Join(dir, "caves.ldtk")
	if err := os.WriteFile(level, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if got != level {
			t.Fatalf("event = %q, want %q", got, level)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if _, ok := <-w.Events; ok {
		t.Fatal("Events should be closed")
	}
}
