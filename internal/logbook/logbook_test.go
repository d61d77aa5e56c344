package logbook

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestAppendAndTail(t *testing.T) {
	book, err := New(filepath.Join(t.TempDir(), "logs", "app.log"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	book.Info("first %d", 1)
	book.Warn("second")
	book.Error("third")

	lines := book.Tail(10)
	if len(lines) != 3 {
		t.Fatalf("tail = %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[0], "INFO") || !strings.Contains(lines[0], "first 1") {
		t.Fatalf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "WARN") {
		t.Fatalf("second line = %q", lines[1])
	}
	if !strings.Contains(lines[2], "ERROR") {
		t.Fatalf("third line = %q", lines[2])
	}
}

func TestTailKeepsMostRecent(t *testing.T) {
	book, err := New(filepath.Join(t.TempDir(), "app.log"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	for i := 0; i < 10; i++ {
		book.Info("entry %d", i)
	}
	lines := book.Tail(3)
	if len(lines) != 3 {
		t.Fatalf("tail = %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[2], "entry 9") {
		t.Fatalf("last tail line = %q, want entry 9", lines[2])
	}
}

func TestNilLogbookIsSafe(t *testing.T) {
	var book *Logbook
	book.Info("ignored")
	book.Warn("ignored")
	book.Error("ignored")
	if lines := book.Tail(5); lines != nil {
		t.Fatalf("nil tail = %v, want nil", lines)
	}
	if book.Path() != "" {
		t.Fatalf("nil path = %q, want empty", book.Path())
	}
}

func TestTailMissingFileReturnsNil(t *testing.T) {
	book, err := New(filepath.Join(t.TempDir(), "never-written.log"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if lines := book.Tail(5); lines != nil {
		t.Fatalf("tail of missing file = %v, want nil", lines)
	}
}
