package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func exerciseProvider(t *testing.T, p Provider) {
	t.Helper()

	if _, ok, err := p.Get("missing"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}
	if err := p.Set("k", `[1,2]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := p.Set("k", `[3]`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, ok, err := p.Get("k")
	if err != nil || !ok || v != `[3]` {
		t.Fatalf("expected [3], got %q ok=%v err=%v", v, ok, err)
	}
	if err := p.Remove("k"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := p.Get("k"); ok {
		t.Fatal("key should be gone")
	}
	if err := p.Remove("k"); err != nil {
		t.Fatalf("removing a missing key should succeed: %v", err)
	}
}

func TestMemory(t *testing.T) {
	exerciseProvider(t, NewMemory())
}

func TestFile(t *testing.T) {
	f, err := OpenFile(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	exerciseProvider(t, f)
}

func TestFilePersistsAcrossOpens(t *testing.T) {
	dir := t.TempDir()
	f, err := OpenFile(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := f.Set("history", "[]"); err != nil {
		t.Fatalf("set: %v", err)
	}

	again, err := OpenFile(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if v, ok, _ := again.Get("history"); !ok || v != "[]" {
		t.Fatalf("expected persisted value, got %q", v)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("expected a single file, got %d", len(entries))
	}
}

func TestFileRejectsBadInput(t *testing.T) {
	if _, err := OpenFile(" "); err == nil {
		t.Fatal("expected error for empty dir")
	}
	f, err := OpenFile(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := f.Set("../escape", "x"); err == nil {
		t.Fatal("expected error for key with path separator")
	}
}
