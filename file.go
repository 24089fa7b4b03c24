package main

import (
	"bufio"
	"errors"
	"io"
	"os"
	"slices"
	"strings"
)

type file struct {
	dirty bool     // modified state
	lines []string // file content
	path  string   // full file path to the file
}

// size returns the number of bytes the buffer occupies on disk, one
// newline included per line.
func (f *file) size() int {
	var siz int
	for _, ln := range f.lines {
		siz += len(ln) + 1
	}
	return siz
}

// append inserts lines after the line dest (0 means before the first line).
func (f *file) append(dest int, lines []string) {
	f.lines = slices.Insert(f.lines, dest, lines...)
}

// yank copies the lines start to end after dest and returns the number
// of lines copied.
func (f *file) yank(start, end, dest int) int {
	buf := slices.Clone(f.lines[start-1 : end])
	f.append(dest, buf)
	return len(buf)
}

// delete removes the lines start to end.
func (f *file) delete(start, end int) {
	f.lines = slices.Delete(f.lines, start-1, end)
}

// join replaces the lines start to end with their concatenation.
func (f *file) join(start, end int) {
	joined := strings.Join(f.lines[start-1:end], "")
	f.lines = slices.Replace(f.lines, start-1, end, joined)
}

// move relocates the lines start to end after dest and returns the
// address of the last moved line. dest must lie outside [start, end].
func (f *file) move(start, end, dest int) int {
	buf := slices.Clone(f.lines[start-1 : end])
	f.delete(start, end)
	if dest > end {
		dest -= len(buf)
	}
	f.append(dest, buf)
	return dest + len(buf)
}

// readLines reads the file at path and splits it into lines. The
// returned size is the number of bytes read.
func readLines(path string) ([]string, int, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, 0, ErrCannotOpenFile
	}
	defer fp.Close()
	var (
		lines []string
		siz   int
		r     = bufio.NewReader(fp)
	)
	for {
		ln, err := r.ReadString('\n')
		siz += len(ln)
		if ln != "" {
			lines = append(lines, strings.TrimSuffix(ln, "\n"))
		}
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, siz, ErrCannotReadFile
		}
	}
	return lines, siz, nil
}

// writeLines writes lines to path, each terminated by a newline, and
// returns the number of bytes written. When app is set the lines are
// appended to the file instead of replacing its content.
func writeLines(path string, lines []string, app bool) (int, error) {
	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if app {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	fp, err := os.OpenFile(path, flags, 0o666)
	if err != nil {
		return 0, ErrCannotWriteFile
	}
	w := bufio.NewWriter(fp)
	var siz int
	for _, ln := range lines {
		n, err := w.WriteString(ln + "\n")
		siz += n
		if err != nil {
			fp.Close()
			return siz, err
		}
	}
	if err := w.Flush(); err != nil {
		fp.Close()
		return siz, err
	}
	return siz, fp.Close()
}
