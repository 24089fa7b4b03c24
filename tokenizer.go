package main

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// commands lists every letter that terminates the address portion of a
// command line.
const commands = "acdefhHijlmnpPqQrstwWz="

// suffixes lists the characters that may directly follow a command
// letter: print flags, the write-quit flag, destination address
// characters and the pattern delimiter.
const suffixes = "pnlq0123456789.$+-/"

const patternDelim = '/'

type tokenKind int

const (
	tokAddress tokenKind = iota
	tokSeparator
	tokCommand
	tokSuffix
	tokArgument
)

func (k tokenKind) String() string {
	switch k {
	case tokAddress:
		return "address"
	case tokSeparator:
		return "separator"
	case tokCommand:
		return "command"
	case tokSuffix:
		return "suffix"
	case tokArgument:
		return "argument"
	}
	return fmt.Sprintf("tokenKind(%d)", int(k))
}

// token is a lexical unit of a command line. It carries no resolved
// meaning; the parser decides what an address or suffix refers to.
type token struct {
	kind tokenKind
	text string
}

func (t token) String() string { return fmt.Sprintf("%s(%q)", t.kind, t.text) }

// tokenize splits a trimmed command line into tokens. An empty line
// yields no tokens.
func tokenize(line string) ([]token, error) {
	var toks []token
	idx := strings.IndexAny(line, commands)
	addr := line
	if idx >= 0 {
		addr = line[:idx]
	}
	toks = appendAddress(toks, addr)
	if idx < 0 {
		return toks, nil
	}

	r, w := utf8.DecodeRuneInString(line[idx:])
	toks = append(toks, token{kind: tokCommand, text: string(r)})
	rest := line[idx+w:]
	if rest == "" {
		return toks, nil
	}

	next, _ := utf8.DecodeRuneInString(rest)
	switch {
	case next == ' ' || next == '\t':
		if arg := strings.TrimSpace(rest); arg != "" {
			toks = append(toks, token{kind: tokArgument, text: arg})
		}
	case next == patternDelim:
		toks = append(toks, token{kind: tokSuffix, text: rest})
	case strings.ContainsRune(suffixes, next):
		suffix, arg, _ := strings.Cut(rest, " ")
		toks = append(toks, token{kind: tokSuffix, text: suffix})
		if arg = strings.TrimSpace(arg); arg != "" {
			toks = append(toks, token{kind: tokArgument, text: arg})
		}
	default:
		return nil, fmt.Errorf("%w: unexpected %q after command %q", ErrSyntax, next, r)
	}
	return toks, nil
}

// appendAddress splits the address portion of a command line on the
// first separator.
func appendAddress(toks []token, addr string) []token {
	i := strings.IndexAny(addr, ",;")
	if i < 0 {
		if addr = strings.TrimSpace(addr); addr != "" {
			toks = append(toks, token{kind: tokAddress, text: addr})
		}
		return toks
	}
	if left := strings.TrimSpace(addr[:i]); left != "" {
		toks = append(toks, token{kind: tokAddress, text: left})
	}
	toks = append(toks, token{kind: tokSeparator, text: addr[i : i+1]})
	if right := strings.TrimSpace(addr[i+1:]); right != "" {
		toks = append(toks, token{kind: tokAddress, text: right})
	}
	return toks
}
