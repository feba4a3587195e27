package journal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLogAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conversion_log.txt")
	j := Open(path)
	j.now = func() time.Time { return time.Date(2026, time.March, 5, 9, 4, 7, 0, time.UTC) }

	if err := j.Log("Processed book.pdf"); err != nil {
		t.Fatalf("Log() error: %v", err)
	}
	if err := j.Logf("Attempt %d/%d failed for %s: %s", 1, 3, "book.pdf", "boom"); err != nil {
		t.Fatalf("Logf() error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "Mar/05 09:04:07 ----- Processed book.pdf\n-----\n" +
		"Mar/05 09:04:07 ----- Attempt 1/3 failed for book.pdf: boom\n-----\n"
	if string(b) != want {
		t.Errorf("log content = %q, want %q", b, want)
	}
}

func TestLogReopenKeepsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	if err := Open(path).Log("first"); err != nil {
		t.Fatal(err)
	}
	if err := Open(path).Log("second"); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(b); got == 0 {
		t.Fatal("empty log")
	}
	if n := strings.Count(string(b), "-----\n"); n != 2 {
		t.Errorf("expected 2 entry terminators, got %d in %q", n, b)
	}
}

func TestLogMissingDir(t *testing.T) {
	j := Open(filepath.Join(t.TempDir(), "nope", "log.txt"))
	if err := j.Log("x"); err == nil {
		t.Error("expected error writing into a missing directory")
	}
}
