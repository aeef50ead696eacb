package history

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "results.txt")

	first := rec("g1", 55)
	first.StartPlayerName = "Alice"
	if err := Export(first, path, false); err != nil {
		t.Fatalf("export: %v", err)
	}
	if err := Export(rec("g2", 61), path, false); err != nil {
		t.Fatalf("second export: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	out := string(b)
	for _, want := range []string{"Wingspan Game g1", "Start player: Alice", "- Alice: 55 points (winner)", "birds 55", "Wingspan Game g2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in export:\n%s", want, out)
		}
	}
	if strings.Index(out, "g1") > strings.Index(out, "g2") {
		t.Fatal("second export should be appended after the first")
	}
	if strings.Contains(out, "(revised)") {
		t.Fatal("new games should not be marked as revised")
	}
}

func TestExportRevision(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")
	if err := Export(rec("g1", 55), path, false); err != nil {
		t.Fatalf("export: %v", err)
	}
	if err := Export(rec("g1", 58), path, true); err != nil {
		t.Fatalf("revised export: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	out := string(b)
	if strings.Count(out, "Wingspan Game g1 (revised)") != 1 || strings.Count(out, "Wingspan Game g1\n") != 1 {
		t.Fatalf("expected one original and one revised block:\n%s", out)
	}
	if !strings.Contains(out, "Played: ") {
		t.Fatalf("expected play date line:\n%s", out)
	}
}

func TestExportKeepsUnparsableDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")
	r := rec("g1", 1)
	r.Date = "sometime"
	if err := Export(r, path, false); err != nil {
		t.Fatalf("export: %v", err)
	}
	b, _ := os.ReadFile(path)
	if !strings.Contains(string(b), "Played: sometime") {
		t.Fatalf("expected raw date in export:\n%s", b)
	}
}
