package main

import (
	"bufio"
	"io"
)

// maxLineSize is the longest line the input reader accepts.
const maxLineSize = 1 << 20

// input reads lines from a reader on its own goroutine so the run loop
// can wait for a line and a signal at the same time.
type input struct {
	lines chan string
	done  chan struct{}
	err   error // valid once lines is closed
}

func readInput(r io.Reader) *input {
	in := &input{
		lines: make(chan string),
		done:  make(chan struct{}),
	}
	go in.scan(r)
	return in
}

func (in *input) scan(r io.Reader) {
	defer close(in.lines)
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), maxLineSize)
	for s.Scan() {
		select {
		case in.lines <- s.Text():
		case <-in.done:
			return
		}
	}
	in.err = s.Err()
}

// close stops the reader goroutine once it tries to deliver the next
// line.
func (in *input) close() { close(in.done) }
