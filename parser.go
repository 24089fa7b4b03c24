package main

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const addressChars = "0123456789.$+-"

// parse turns the tokens of one command line into a command.
func parse(toks []token) (command, error) {
	var (
		rng      addrRange
		first    bool // the next address is the second one
		letter   rune
		suf, arg string
	)
	for _, tok := range toks {
		switch tok.kind {
		case tokAddress:
			addr, err := parseAddress(tok.text)
			if err != nil {
				return nil, err
			}
			if !first {
				rng.start = &addr
				first = true
			} else {
				rng.end = &addr
			}
		case tokSeparator:
			rng.sep = tok.text[0]
			first = true
		case tokCommand:
			letter, _ = utf8.DecodeRuneInString(tok.text)
		case tokSuffix:
			suf = tok.text
		case tokArgument:
			arg = tok.text
		}
	}
	if rng.sep != 0 && rng.empty() {
		start, end := numbered(1), lastLine
		rng.start, rng.end = &start, &end
	}
	if letter == 0 {
		if rng.empty() {
			return noopCmd{}, nil
		}
		return jumpCmd{addr: *rng.single()}, nil
	}
	return parseCommand(letter, rng, suf, arg)
}

func parseCommand(r rune, rng addrRange, suf, arg string) (command, error) {
	var (
		b   = cmdBase{rng: rng}
		err error
	)
	switch r {
	case 'e', 'f', 'h', 'H', 'P', 'q', 'Q':
		if !rng.empty() {
			return nil, ErrUnexpectedAddress
		}
	}
	switch r {
	case 'p', 'n', 'l', 'd', 'j':
		if arg != "" {
			return nil, ErrUnexpectedCmdSuffix
		}
		if b.cs, err = printSuffix(suf); err != nil {
			return nil, err
		}
		switch r {
		case 'p':
			b.cs |= suffixPrint
			return printCmd{b}, nil
		case 'n':
			b.cs |= suffixEnumerate
			return printCmd{b}, nil
		case 'l':
			b.cs |= suffixList
			return printCmd{b}, nil
		case 'd':
			return deleteCmd{b}, nil
		}
		return joinCmd{b}, nil

	case 'a', 'i', 'c', 'h', 'H', 'P', 'q', 'Q':
		if suf != "" || arg != "" {
			return nil, ErrUnexpectedCmdSuffix
		}
		switch r {
		case 'a':
			return appendCmd{cmdBase: b, after: rng.single()}, nil
		case 'i':
			return insertCmd{cmdBase: b, before: rng.single()}, nil
		case 'c':
			return changeCmd{b}, nil
		case 'h':
			return helpCmd{b}, nil
		case 'H':
			return verboseCmd{b}, nil
		case 'P':
			return promptCmd{b}, nil
		}
		return quitCmd{cmdBase: b, force: r == 'Q'}, nil

	case 'w', 'W':
		if suf != "" && (r == 'W' || suf != "q") {
			return nil, ErrUnexpectedCmdSuffix
		}
		return writeCmd{cmdBase: b, path: arg, app: r == 'W', quit: suf == "q"}, nil

	case 'e', 'f', 'r':
		if suf != "" {
			return nil, ErrUnexpectedCmdSuffix
		}
		switch r {
		case 'e':
			return editCmd{cmdBase: b, path: arg}, nil
		case 'f':
			return filenameCmd{cmdBase: b, path: arg}, nil
		}
		return readCmd{cmdBase: b, after: rng.single(), path: arg}, nil

	case 'm', 't':
		dst := suf
		if dst == "" {
			dst = arg
		} else if arg != "" {
			return nil, ErrUnexpectedCmdSuffix
		}
		addr, cs, err := parseDestination(dst)
		if err != nil {
			return nil, err
		}
		b.cs = cs
		if r == 'm' {
			return moveCmd{cmdBase: b, dest: addr}, nil
		}
		return transferCmd{cmdBase: b, dest: addr}, nil

	case 's':
		if suf == "" {
			suf = arg
		} else if arg != "" && suf[0] != patternDelim {
			return nil, ErrUnexpectedCmdSuffix
		}
		if suf != "" && suf[0] != patternDelim {
			if b.cs, err = printSuffix(suf); err != nil {
				return nil, err
			}
			suf = ""
		}
		return substituteCmd{cmdBase: b, arg: suf}, nil

	case '=':
		if suf != "" || arg != "" {
			return nil, ErrUnexpectedCmdSuffix
		}
		return lineNumberCmd{cmdBase: b, addr: rng.single()}, nil

	case 'z':
		if arg != "" {
			return nil, ErrUnexpectedCmdSuffix
		}
		i := 0
		for i < len(suf) && suf[i] >= '0' && suf[i] <= '9' {
			i++
		}
		var count int
		if i > 0 {
			if count, err = strconv.Atoi(suf[:i]); err != nil {
				return nil, ErrNumberOutOfRange
			}
		}
		if b.cs, err = printSuffix(suf[i:]); err != nil {
			return nil, err
		}
		return scrollCmd{cmdBase: b, addr: rng.single(), count: count}, nil
	}
	return nil, ErrUnknownCmd
}

// printSuffix parses a run of print flags.
func printSuffix(s string) (suffix, error) {
	var cs suffix
	for _, r := range s {
		switch r {
		case 'p':
			cs |= suffixPrint
		case 'n':
			cs |= suffixEnumerate
		case 'l':
			cs |= suffixList
		default:
			return 0, ErrInvalidCmdSuffix
		}
	}
	return cs, nil
}

// parseDestination splits the destination address of m and t from any
// trailing print flags.
func parseDestination(s string) (address, suffix, error) {
	i := 0
	for i < len(s) && strings.IndexByte(addressChars, s[i]) >= 0 {
		i++
	}
	if i == 0 {
		return address{}, 0, ErrDestinationExpected
	}
	addr, err := parseAddress(s[:i])
	if err != nil {
		return address{}, 0, err
	}
	cs, err := printSuffix(s[i:])
	if err != nil {
		return address{}, 0, err
	}
	return addr, cs, nil
}
