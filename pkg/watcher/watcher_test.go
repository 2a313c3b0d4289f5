package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchTriggersDebouncedCallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.stl")
	if err := os.WriteFile(path, []byte("solid a\nendsolid a\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	fw, err := NewFileWatcher(50*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	defer fw.Close()

	changed := make(chan string, 10)
	if err := fw.Watch(path, func(p string) { changed <- p }); err != nil {
		t.Fatalf("failed to watch: %v", err)
	}
	fw.Start()

	// Several writes in quick succession collapse into one callback
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("solid b\nendsolid b\n"), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
	}

	abs, _ := filepath.Abs(path)
	select {
	case got := <-changed:
		if got != abs {
			t.Errorf("expected callback for %s, got %s", abs, got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change callback")
	}

	select {
	case <-changed:
		t.Error("expected writes to be debounced into one callback")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestOtherFilesInDirectoryAreIgnored(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.stl")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	fw, err := NewFileWatcher(10*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	defer fw.Close()

	changed := make(chan string, 10)
	if err := fw.Watch(path, func(p string) { changed <- p }); err != nil {
		t.Fatalf("failed to watch: %v", err)
	}
	fw.Start()

	if err := os.WriteFile(filepath.Join(dir, "other.stl"), nil, 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	select {
	case p := <-changed:
		t.Errorf("unexpected callback for %s", p)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestUnwatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.stl")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	fw, err := NewFileWatcher(10*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	defer fw.Close()

	if err := fw.Watch(path, func(string) {}); err != nil {
		t.Fatalf("failed to watch: %v", err)
	}
	if err := fw.Unwatch(path); err != nil {
		t.Fatalf("failed to unwatch: %v", err)
	}
	if len(fw.callbacks) != 0 || len(fw.dirs) != 0 {
		t.Errorf("expected no watches left, got %d files / %d dirs", len(fw.callbacks), len(fw.dirs))
	}
	// Unwatching twice is harmless
	if err := fw.Unwatch(path); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
