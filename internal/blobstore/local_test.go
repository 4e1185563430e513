package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalPut(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocal(dir)
	if err != nil {
		t.Fatalf("NewLocal failed: %v", err)
	}

	url, err := store.Put(context.Background(), "abc123.jpg", "image/jpeg", strings.NewReader("fake image bytes"))
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if url != "/uploads/abc123.jpg" {
		t.Errorf("expected /uploads/abc123.jpg, got %s", url)
	}

	data, err := os.ReadFile(filepath.Join(dir, "abc123.jpg"))
	if err != nil {
		t.Fatalf("failed to read stored blob: %v", err)
	}
	if string(data) != "fake image bytes" {
		t.Errorf("blob content mismatch: %q", data)
	}
}

func TestLocalPutStripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocal(dir)
	if err != nil {
		t.Fatalf("NewLocal failed: %v", err)
	}

	url, err := store.Put(context.Background(), "../escape.jpg", "image/jpeg", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if url != "/uploads/escape.jpg" {
		t.Errorf("expected key flattened to base name, got %s", url)
	}
	if _, err := os.Stat(filepath.Join(dir, "escape.jpg")); err != nil {
		t.Errorf("expected blob inside the store directory: %v", err)
	}
}
