package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNew_NilCallback(t *testing.T) {
	if _, err := New("basket.csv", nil); err == nil {
		t.Error("New with nil callback should fail, got nil error")
	}
}

func TestWatcher_FiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "basket.csv")
	if err := os.WriteFile(path, []byte("items\nbread,milk\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	changed := make(chan struct{}, 1)
	w, err := New(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("items\nbread,milk\nbeer,diaper\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite test file: %v", err)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change callback within 5s of writing the watched file")
	}
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "basket.csv")
	if err := os.WriteFile(path, []byte("items\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	changed := make(chan struct{}, 1)
	w, err := New(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	sibling := filepath.Join(dir, "other.csv")
	if err := os.WriteFile(sibling, []byte("items\n"), 0644); err != nil {
		t.Fatalf("failed to write sibling file: %v", err)
	}

	select {
	case <-changed:
		t.Error("callback fired for a sibling file")
	case <-time.After(time.Second):
	}
}

func TestWatcher_StopReturns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "basket.csv")
	if err := os.WriteFile(path, []byte("items\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	w, err := New(path, func() {})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- w.Stop() }()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Stop returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return within 5s")
	}
}
