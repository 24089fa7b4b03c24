package main

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	var (
		addr = func(s string) token { return token{kind: tokAddress, text: s} }
		sep  = func(s string) token { return token{kind: tokSeparator, text: s} }
		cmd  = func(s string) token { return token{kind: tokCommand, text: s} }
		suf  = func(s string) token { return token{kind: tokSuffix, text: s} }
		arg  = func(s string) token { return token{kind: tokArgument, text: s} }
	)
	tests := []struct {
		input  string
		expect []token
	}{
		{input: "", expect: nil},
		{input: "1", expect: []token{addr("1")}},
		{input: "1,", expect: []token{addr("1"), sep(",")}},
		{input: ",$", expect: []token{sep(","), addr("$")}},
		{input: ",", expect: []token{sep(",")}},
		{input: "2;+1p", expect: []token{addr("2"), sep(";"), addr("+1"), cmd("p")}},
		{input: "1,$pn", expect: []token{addr("1"), sep(","), addr("$"), cmd("p"), suf("n")}},
		{input: "1 , 2p", expect: []token{addr("1"), sep(","), addr("2"), cmd("p")}},
		{input: "p", expect: []token{cmd("p")}},
		{input: "pn", expect: []token{cmd("p"), suf("n")}},
		{input: "p file.txt", expect: []token{cmd("p"), arg("file.txt")}},
		{input: "w  file.txt ", expect: []token{cmd("w"), arg("file.txt")}},
		{input: "wq out.txt", expect: []token{cmd("w"), suf("q"), arg("out.txt")}},
		{input: "1,2m4", expect: []token{addr("1"), sep(","), addr("2"), cmd("m"), suf("4")}},
		{input: "m$p", expect: []token{cmd("m"), suf("$p")}},
		{input: "s/foo bar/baz/g", expect: []token{cmd("s"), suf("/foo bar/baz/g")}},
		{input: "-3d", expect: []token{addr("-3"), cmd("d")}},
		{input: "z10", expect: []token{cmd("z"), suf("10")}},
		{input: "=", expect: []token{cmd("=")}},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			toks, err := tokenize(test.input)
			if err != nil {
				t.Fatalf("expected no error, got %q", err)
			}
			if diff := cmp.Diff(test.expect, toks, cmp.AllowUnexported(token{})); diff != "" {
				t.Errorf("tokenize(%q) mismatch (-want +got):\n%s", test.input, diff)
			}
		})
	}
}

func TestTokenizeSyntaxError(t *testing.T) {
	for _, input := range []string{"pfile.txt", "1dx", "w!ls", "e#"} {
		t.Run(input, func(t *testing.T) {
			if _, err := tokenize(input); !errors.Is(err, ErrSyntax) {
				t.Fatalf("expected error %q, got %v", ErrSyntax, err)
			}
		})
	}
}
