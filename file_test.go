package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFileMove(t *testing.T) {
	tests := []struct {
		start, end, dest int
		expect           []string
		dot              int
	}{
		{start: 1, end: 2, dest: 4, expect: []string{"C", "D", "A", "B"}, dot: 4},
		{start: 3, end: 4, dest: 0, expect: []string{"C", "D", "A", "B"}, dot: 2},
		{start: 4, end: 4, dest: 1, expect: []string{"A", "D", "B", "C"}, dot: 2},
		{start: 2, end: 2, dest: 3, expect: []string{"A", "C", "B", "D"}, dot: 3},
	}
	for _, test := range tests {
		f := file{lines: []string{"A", "B", "C", "D"}}
		dot := f.move(test.start, test.end, test.dest)
		if diff := cmp.Diff(test.expect, f.lines); diff != "" {
			t.Errorf("%d,%dm%d mismatch (-want +got):\n%s", test.start, test.end, test.dest, diff)
		}
		if dot != test.dot {
			t.Errorf("%d,%dm%d: expected dot %d, got %d", test.start, test.end, test.dest, test.dot, dot)
		}
	}
}

func TestFileYank(t *testing.T) {
	f := file{lines: []string{"A", "B", "C"}}
	if n := f.yank(1, 2, 3); n != 2 {
		t.Fatalf("expected 2 lines copied, got %d", n)
	}
	if diff := cmp.Diff([]string{"A", "B", "C", "A", "B"}, f.lines); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	f = file{lines: []string{"A", "B", "C"}}
	f.yank(3, 3, 0)
	if diff := cmp.Diff([]string{"C", "A", "B", "C"}, f.lines); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	// The copied block may straddle its own destination.
	f = file{lines: []string{"A", "B", "C"}}
	f.yank(1, 3, 2)
	if diff := cmp.Diff([]string{"A", "B", "A", "B", "C", "C"}, f.lines); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFileJoin(t *testing.T) {
	f := file{lines: []string{"A", "B", "C", "D"}}
	f.join(2, 3)
	if diff := cmp.Diff([]string{"A", "BC", "D"}, f.lines); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFileDelete(t *testing.T) {
	f := file{lines: []string{"A", "B", "C", "D"}}
	f.delete(2, 3)
	if diff := cmp.Diff([]string{"A", "D"}, f.lines); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if siz := f.size(); siz != 4 {
		t.Errorf("expected size 4, got %d", siz)
	}
}

func TestReadWriteLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	lines := []string{"Line 1", "Line 2", ""}

	siz, err := writeLines(path, lines, false)
	if err != nil {
		t.Fatal(err)
	}
	if siz != 15 {
		t.Errorf("expected 15 bytes written, got %d", siz)
	}
	got, n, err := readLines(path)
	if err != nil {
		t.Fatal(err)
	}
	if n != siz {
		t.Errorf("expected %d bytes read, got %d", siz, n)
	}
	if diff := cmp.Diff(lines, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	if _, err := writeLines(path, []string{"Line 3"}, true); err != nil {
		t.Fatal(err)
	}
	got, _, err = readLines(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"Line 1", "Line 2", "", "Line 3"}, got); diff != "" {
		t.Errorf("append mismatch (-want +got):\n%s", diff)
	}
}

func TestReadLinesNoTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(path, []byte("one\ntwo"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, n, err := readLines(path)
	if err != nil {
		t.Fatal(err)
	}
	if n != 7 {
		t.Errorf("expected 7 bytes read, got %d", n)
	}
	if diff := cmp.Diff([]string{"one", "two"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestReadLinesEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	got, n, err := readLines(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 || n != 0 {
		t.Errorf("expected no lines, got %q (%d bytes)", got, n)
	}
}

func TestReadLinesMissing(t *testing.T) {
	_, _, err := readLines(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, ErrCannotOpenFile) {
		t.Fatalf("expected %v, got %v", ErrCannotOpenFile, err)
	}
}

func TestWriteLinesBadPath(t *testing.T) {
	_, err := writeLines(filepath.Join(t.TempDir(), "no", "such", "dir"), []string{"x"}, false)
	if !errors.Is(err, ErrCannotWriteFile) {
		t.Fatalf("expected %v, got %v", ErrCannotWriteFile, err)
	}
}
