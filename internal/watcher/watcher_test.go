package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitChange(t *testing.T, ch <-chan struct{}, timeout time.Duration) bool {
	t.Helper()
	select {
	case <-ch:
		return true
	case <-time.After(timeout):
		return false
	}
}

func TestDetectsModification(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	os.WriteFile(path, []byte("[general]\nlanguage = \"en\"\n"), 0600)

	changed := make(chan struct{}, 8)
	w := New(path, 25*time.Millisecond, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	// Different size so coarse mtime resolution cannot hide the edit.
	os.WriteFile(path, []byte("[general]\nlanguage = \"nl\"\nrefresh_minutes = 30\n"), 0600)

	if !waitChange(t, changed, 2*time.Second) {
		t.Error("modification not detected")
	}
}

func TestDetectsCreation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	changed := make(chan struct{}, 8)
	w := New(path, 25*time.Millisecond, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	os.WriteFile(path, []byte("[account]\n"), 0600)

	if !waitChange(t, changed, 2*time.Second) {
		t.Error("creation not detected")
	}
}

func TestDetectsRenameReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	os.WriteFile(path, []byte("a = 1\n"), 0600)

	changed := make(chan struct{}, 8)
	w := New(path, 25*time.Millisecond, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	// The editor dance: write a sibling, rename over the target.
	tmp := filepath.Join(dir, "config.toml.new")
	os.WriteFile(tmp, []byte("a = 2\nb = 3\n"), 0600)
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("rename: %v", err)
	}

	if !waitChange(t, changed, 2*time.Second) {
		t.Error("rename-replace not detected")
	}
}

func TestIgnoresUntouchedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	os.WriteFile(path, []byte("a = 1\n"), 0600)

	changed := make(chan struct{}, 8)
	w := New(path, 25*time.Millisecond, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if waitChange(t, changed, 200*time.Millisecond) {
		t.Error("change fired without an edit")
	}
}

func TestIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	os.WriteFile(path, []byte("a = 1\n"), 0600)

	changed := make(chan struct{}, 8)
	w := New(path, 25*time.Millisecond, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1\n"), 0600)

	if waitChange(t, changed, 200*time.Millisecond) {
		t.Error("sibling file edit should not fire")
	}
}

func TestStopTerminates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	w := New(path, 25*time.Millisecond, func() {})
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}
