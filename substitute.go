package main

import (
	"regexp"
	"strings"
)

// substitution is a parsed s command argument.
type substitution struct {
	re      *regexp.Regexp
	replace string
	global  bool
	cs      suffix
}

// parseSubstitution parses "/pattern/replacement[/flags]". An empty
// argument repeats the previous substitution, an empty pattern reuses
// the previous pattern and a replacement of "%" the previous
// replacement.
func (ed *Editor) parseSubstitution(arg string) (substitution, error) {
	if arg == "" {
		if ed.re == nil {
			return substitution{}, ErrNoPreviousSub
		}
		return substitution{re: ed.re, replace: ed.replace, global: ed.global}, nil
	}
	if arg[0] != patternDelim {
		return substitution{}, ErrInvalidPatternDelim
	}
	search, rest, ok := cutDelim(arg[1:], patternDelim)
	if !ok {
		return substitution{}, ErrInvalidPatternDelim
	}
	replace, flags, _ := cutDelim(rest, patternDelim)

	var (
		sub substitution
		err error
	)
	if search == "" {
		if ed.re == nil {
			return substitution{}, ErrNoPrevPattern
		}
		sub.re = ed.re
	} else if sub.re, err = regexp.Compile(search); err != nil {
		return substitution{}, err
	}
	if replace == "%" {
		if ed.re == nil {
			return substitution{}, ErrNoPreviousSub
		}
		replace = ed.replace
	}
	if maxBackref(replace) > sub.re.NumSubexp() {
		return substitution{}, ErrNumberOutOfRange
	}
	sub.replace = replace
	for _, r := range flags {
		switch r {
		case 'g':
			sub.global = true
		case 'p':
			sub.cs |= suffixPrint
		case 'n':
			sub.cs |= suffixEnumerate
		case 'l':
			sub.cs |= suffixList
		default:
			return substitution{}, ErrInvalidCmdSuffix
		}
	}
	return sub, nil
}

// apply substitutes the first match in ln, or every match when the
// substitution is global. It reports whether anything matched.
func (sub substitution) apply(ln string) (string, bool) {
	n := 1
	if sub.global {
		n = -1
	}
	matches := sub.re.FindAllStringSubmatchIndex(ln, n)
	if matches == nil {
		return ln, false
	}
	var (
		sb   strings.Builder
		last int
	)
	for _, m := range matches {
		sb.WriteString(ln[last:m[0]])
		expand(&sb, sub.replace, ln, m)
		last = m[1]
	}
	sb.WriteString(ln[last:])
	return sb.String(), true
}

// expand writes the replacement template for the match m of src. '&'
// stands for the whole match and \1 to \9 for a parenthesized group.
// Any other escaped character is written literally.
func expand(sb *strings.Builder, tmpl, src string, m []int) {
	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		switch {
		case c == '&':
			sb.WriteString(src[m[0]:m[1]])
		case c == '\\' && i+1 < len(tmpl):
			i++
			c = tmpl[i]
			if c >= '1' && c <= '9' {
				g := int(c - '0')
				if 2*g+1 < len(m) && m[2*g] >= 0 {
					sb.WriteString(src[m[2*g]:m[2*g+1]])
				}
				continue
			}
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
}

// maxBackref returns the highest group referenced in tmpl.
func maxBackref(tmpl string) int {
	var n int
	for i := 0; i+1 < len(tmpl); i++ {
		if tmpl[i] != '\\' {
			continue
		}
		i++
		if c := tmpl[i]; c >= '1' && c <= '9' {
			n = max(n, int(c-'0'))
		}
	}
	return n
}

// cutDelim splits s around the first delim that is not escaped by a
// backslash. Escaped delimiters are unescaped in the part before it.
func cutDelim(s string, delim byte) (before, after string, found bool) {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s) && s[i+1] == delim:
			sb.WriteByte(delim)
			i++
		case s[i] == '\\' && i+1 < len(s):
			sb.WriteString(s[i : i+2])
			i++
		case s[i] == delim:
			return sb.String(), s[i+1:], true
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String(), "", false
}
