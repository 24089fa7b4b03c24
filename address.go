package main

import (
	"fmt"
	"strconv"
)

type addrKind int

const (
	addrCurrent addrKind = iota // .
	addrLast                    // $
	addrNumbered                // n
	addrOffset                  // +n, -n
)

// address is a request for a line. It is resolved against the buffer
// only when a command runs.
type address struct {
	kind addrKind
	n    int
}

var (
	currentLine = address{kind: addrCurrent}
	lastLine    = address{kind: addrLast}
)

func numbered(n int) address { return address{kind: addrNumbered, n: n} }
func offset(n int) address   { return address{kind: addrOffset, n: n} }

func (a address) String() string {
	switch a.kind {
	case addrCurrent:
		return "."
	case addrLast:
		return "$"
	case addrOffset:
		return fmt.Sprintf("%+d", a.n)
	}
	return strconv.Itoa(a.n)
}

// addrRange is an optional pair of addresses. A nil bound takes the
// default of the command it belongs to.
type addrRange struct {
	start, end *address
	sep        byte // ',' or ';', 0 when absent
}

func (r addrRange) empty() bool { return r.start == nil && r.end == nil }

// single returns the one address a single-address command operates on,
// preferring the second address over the first.
func (r addrRange) single() *address {
	if r.end != nil {
		return r.end
	}
	return r.start
}

func parseAddress(s string) (address, error) {
	switch s {
	case ".":
		return currentLine, nil
	case "$":
		return lastLine, nil
	case "":
		return address{}, ErrInvalidAddress
	}
	if s[0] == '+' || s[0] == '-' {
		if !isDigits(s[1:]) {
			return address{}, ErrInvalidAddress
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return address{}, ErrNumberOutOfRange
		}
		return offset(n), nil
	}
	if !isDigits(s) {
		return address{}, ErrInvalidAddress
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return address{}, ErrNumberOutOfRange
	}
	return numbered(n), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// resolve returns the line number addr refers to, relative to the line
// dot. Line zero is accepted only when zero is set.
func (ed *Editor) resolve(addr address, dot int, zero bool) (int, error) {
	var (
		n  int
		lo = 1
	)
	if zero {
		lo = 0
	}
	switch addr.kind {
	case addrCurrent:
		n = dot
	case addrLast:
		n = len(ed.lines)
	case addrNumbered:
		n = addr.n
	case addrOffset:
		n = dot + addr.n
	}
	if n < lo || n > len(ed.lines) {
		return -1, ErrInvalidAddress
	}
	return n, nil
}

// resolveRange turns r into a pair of line numbers. When r carries no
// addresses the default pair first, second is checked and returned.
func (ed *Editor) resolveRange(r addrRange, first, second int) (int, int, error) {
	var err error
	switch {
	case r.empty():
		if first < 1 || first > second || second > len(ed.lines) {
			return -1, -1, ErrInvalidAddress
		}
		return first, second, nil
	case r.end == nil:
		if first, err = ed.resolve(*r.start, ed.dot, false); err != nil {
			return -1, -1, err
		}
		return first, first, nil
	case r.start == nil:
		first = 1
	default:
		if first, err = ed.resolve(*r.start, ed.dot, false); err != nil {
			return -1, -1, err
		}
	}
	dot := ed.dot
	if r.sep == ';' && r.start != nil {
		dot = first
	}
	if second, err = ed.resolve(*r.end, dot, false); err != nil {
		return -1, -1, err
	}
	if first > second {
		return -1, -1, ErrInvalidAddress
	}
	return first, second, nil
}

// resolveOpt resolves addr, falling back to the line def when addr is
// nil.
func (ed *Editor) resolveOpt(addr *address, def int, zero bool) (int, error) {
	if addr == nil {
		n := numbered(def)
		addr = &n
	}
	return ed.resolve(*addr, ed.dot, zero)
}
