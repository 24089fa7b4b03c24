package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// Ed is limited to displaying these error messages with the exception
// of regular expression and I/O errors.
var (
	ErrDefault             = errors.New("?") // descriptive error message, don't you think?
	ErrCannotOpenFile      = errors.New("cannot open input file")
	ErrCannotReadFile      = errors.New("cannot read input file")
	ErrCannotWriteFile     = errors.New("cannot write file")
	ErrDestinationExpected = errors.New("destination expected")
	ErrFileModified        = errors.New("warning: buffer modified")
	ErrInterrupt           = errors.New("interrupt")
	ErrInvalidAddress      = errors.New("invalid address")
	ErrInvalidCmdSuffix    = errors.New("invalid command suffix")
	ErrInvalidDestination  = errors.New("invalid destination")
	ErrInvalidPatternDelim = errors.New("invalid pattern delimiter")
	ErrNoFileName          = errors.New("no current filename")
	ErrNoMatch             = errors.New("no match")
	ErrNoPrevPattern       = errors.New("no previous pattern")
	ErrNoPreviousSub       = errors.New("no previous substitution")
	ErrNumberOutOfRange    = errors.New("number out of range")
	ErrSyntax              = errors.New("syntax error")
	ErrUnexpectedAddress   = errors.New("unexpected address")
	ErrUnexpectedCmdSuffix = errors.New("unexpected command suffix")
	ErrUnknownCmd          = errors.New("unknown command")
)

const (
	DefaultHangupFile = "ed.hup"
	DefaultPrompt     = "*"
	DefaultScroll     = 22
)

// mode decides how a line of input is interpreted.
type mode int

const (
	modeCommand mode = iota // lines are commands
	modeInput               // lines are text
)

// action tells the caller of Dispatch how to carry on.
type action int

const (
	actionContinue action = iota
	actionQuit
	actionUnknown // nothing to do; the caller prints "?"
)

type Editor struct {
	file

	dot  int  // current address
	mode mode // command or input
	ins  int  // insertion point while in input mode

	re      *regexp.Regexp // previous regex
	replace string         // previous replacement text
	global  bool           // previous substitution replaced every match
	scroll  int            // previous scroll value
	err     error          // previous error

	prompt  bool   // state for rendering the prompt
	up      string // user prompt
	verbose bool   // toggle verbose errors
	silent  bool   // suppress diagnostics
	script  bool   // stdin is not a terminal
	lc      int    // line count (script mode)
	hup     string // file written on SIGHUP

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

type Option func(*Editor)

func WithStdin(stdin io.Reader) Option {
	return func(ed *Editor) { ed.stdin = stdin }
}

func WithStdout(stdout io.Writer) Option {
	return func(ed *Editor) { ed.stdout = stdout }
}

func WithStderr(stderr io.Writer) Option {
	return func(ed *Editor) { ed.stderr = stderr }
}

func WithSilent(t bool) Option {
	return func(ed *Editor) { ed.silent = t }
}

func WithVerbose(t bool) Option {
	return func(ed *Editor) { ed.verbose = t }
}

// WithScript overrides the terminal check done by NewEditor.
func WithScript(t bool) Option {
	return func(ed *Editor) { ed.script = t }
}

func WithPrompt(prompt string) Option {
	return func(ed *Editor) {
		ed.up = prompt
		ed.prompt = ed.up != ""
	}
}

// WithScroll sets the number of lines the z command prints by default.
func WithScroll(n int) Option {
	return func(ed *Editor) {
		if n > 0 {
			ed.scroll = n
		}
	}
}

func WithHangupFile(path string) Option {
	return func(ed *Editor) {
		if path != "" {
			ed.hup = path
		}
	}
}

// WithFile loads path into the buffer and remembers it as the current
// file name, even when it cannot be read.
func WithFile(path string) Option {
	return func(ed *Editor) {
		ed.path = path
		lines, _, err := readLines(path)
		if err != nil {
			ed.err = err
			ed.errorln(err)
			return
		}
		ed.lines = lines
		ed.dot = len(lines)
	}
}

func NewEditor(opts ...Option) *Editor {
	ed := &Editor{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		hup:    DefaultHangupFile,
		scroll: DefaultScroll,
	}
	ed.script = !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd())
	for _, opt := range opts {
		opt(ed)
	}
	return ed
}

// Dispatch interprets one line of input according to the current mode.
// A failure is remembered as the last error before it is returned.
func (ed *Editor) Dispatch(line string) (action, error) {
	if ed.mode == modeInput {
		ed.input(line)
		return actionContinue, nil
	}
	act, err := ed.dispatch(strings.TrimSpace(line))
	if err != nil {
		ed.err = err
		logger.WithError(err).WithField("line", line).Debug("command failed")
	}
	return act, err
}

func (ed *Editor) dispatch(line string) (action, error) {
	toks, err := tokenize(line)
	if err != nil {
		return actionContinue, err
	}
	logger.WithField("tokens", toks).Trace("tokenized")
	cmd, err := parse(toks)
	if err != nil {
		return actionContinue, err
	}
	logger.WithFields(logrus.Fields{
		"cmd": fmt.Sprintf("%T", cmd),
		"dot": ed.dot,
	}).Debug("parsed")
	return ed.exec(cmd)
}

// input handles a line of text while in input mode.
func (ed *Editor) input(line string) {
	if line == "." {
		ed.mode = modeCommand
		if ed.dot == 0 && len(ed.lines) > 0 {
			ed.dot = 1
		}
		return
	}
	ed.file.append(ed.ins, []string{line})
	ed.ins++
	ed.dot = ed.ins
	ed.dirty = true
}

// Prompt returns the prompt to show before reading the next line. It
// is empty in input mode or when the prompt is turned off.
func (ed *Editor) Prompt() string {
	if ed.mode == modeInput || !ed.prompt {
		return ""
	}
	return ed.up
}

// LastError returns the most recent failure, if any.
func (ed *Editor) LastError() error { return ed.err }

// Size returns the number of bytes the buffer would occupy on disk.
func (ed *Editor) Size() int { return ed.file.size() }

func (ed *Editor) doPrompt() {
	if p := ed.Prompt(); p != "" {
		fmt.Fprint(ed.stdout, p)
	}
}

func (ed *Editor) errorln(err error) {
	if !ed.verbose {
		fmt.Fprintln(ed.stderr, ErrDefault)
		return
	}
	if ed.script {
		fmt.Fprintf(ed.stderr, "script, line %d: %s\n", ed.lc, err)
		return
	}
	fmt.Fprintln(ed.stderr, err)
}

// printSize reports a byte count unless diagnostics are suppressed.
func (ed *Editor) printSize(n int) {
	if !ed.silent {
		fmt.Fprintln(ed.stdout, n)
	}
}
