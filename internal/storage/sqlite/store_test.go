package sqlite

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/kiliankoe/wingscore/internal/storage"
)

func openTempStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wingscore.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestSetGetRemove(t *testing.T) {
	store, _ := openTempStore(t)

	if _, ok, err := store.Get("wingspan_game_history"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}
	if err := store.Set("wingspan_game_history", `[{"id":"a"}]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set("wingspan_game_history", `[]`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, ok, err := store.Get("wingspan_game_history")
	if err != nil || !ok || v != `[]` {
		t.Fatalf("expected [], got %q ok=%v err=%v", v, ok, err)
	}
	if err := store.Remove("wingspan_game_history"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := store.Get("wingspan_game_history"); ok {
		t.Fatal("key should be gone")
	}
}

func TestReopenKeepsDataAndSkipsMigrations(t *testing.T) {
	store, path := openTempStore(t)
	if err := store.Set("k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	again, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer again.Close()
	if v, ok, _ := again.Get("k"); !ok || v != "v" {
		t.Fatalf("expected persisted value, got %q", v)
	}
}

func TestClosedStore(t *testing.T) {
	store, _ := openTempStore(t)
	_ = store.Close()
	if err := store.Set("k", "v"); !errors.Is(err, storage.ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestExtractUpMigration(t *testing.T) {
	got := extractUpMigration("-- +migrate Up\nCREATE TABLE t (id INT);\n-- +migrate Down\nDROP TABLE t;")
	if got != "\nCREATE TABLE t (id INT);\n" {
		t.Fatalf("unexpected up section %q", got)
	}
}
