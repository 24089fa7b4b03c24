package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/sirupsen/logrus"
)

// listWidth is the column at which the l command folds long lines.
const listWidth = 72

// exec runs cmd against the buffer.
func (ed *Editor) exec(cmd command) (action, error) {
	switch c := cmd.(type) {
	case noopCmd:
		return ed.cmdNone()
	case jumpCmd:
		return actionContinue, ed.cmdJump(c)
	case quitCmd:
		return ed.cmdQuit(c)
	case helpCmd:
		return actionContinue, ed.cmdHelp()
	case verboseCmd:
		return actionContinue, ed.cmdVerbose()
	case promptCmd:
		return actionContinue, ed.cmdPrompt()
	case printCmd:
		return actionContinue, ed.cmdPrint(c)
	case deleteCmd:
		return actionContinue, ed.cmdDelete(c)
	case writeCmd:
		return ed.cmdWrite(c)
	case insertCmd:
		return actionContinue, ed.cmdInsert(c)
	case appendCmd:
		return actionContinue, ed.cmdAppend(c)
	case changeCmd:
		return actionContinue, ed.cmdChange(c)
	case editCmd:
		return actionContinue, ed.cmdEdit(c)
	case readCmd:
		return actionContinue, ed.cmdRead(c)
	case moveCmd:
		return actionContinue, ed.cmdMove(c)
	case transferCmd:
		return actionContinue, ed.cmdTransfer(c)
	case joinCmd:
		return actionContinue, ed.cmdJoin(c)
	case substituteCmd:
		return actionContinue, ed.cmdSubstitute(c)
	case filenameCmd:
		return actionContinue, ed.cmdFilename(c)
	case lineNumberCmd:
		return actionContinue, ed.cmdLineNumber(c)
	case scrollCmd:
		return actionContinue, ed.cmdScroll(c)
	}
	panic(fmt.Sprintf("exec: unhandled command %T", cmd))
}

func (ed *Editor) cmdNone() (action, error) {
	if ed.dot >= len(ed.lines) {
		return actionUnknown, nil
	}
	return actionContinue, ed.display(ed.dot+1, ed.dot+1, suffixPrint)
}

func (ed *Editor) cmdJump(c jumpCmd) error {
	n, err := ed.resolve(c.addr, ed.dot, false)
	if err != nil {
		return err
	}
	return ed.display(n, n, suffixPrint)
}

func (ed *Editor) cmdQuit(c quitCmd) (action, error) {
	if !c.force && ed.dirty {
		ed.dirty = false
		return actionContinue, ErrFileModified
	}
	return actionQuit, nil
}

func (ed *Editor) cmdHelp() error {
	if ed.err != nil {
		fmt.Fprintln(ed.stdout, ed.err)
	}
	return nil
}

func (ed *Editor) cmdVerbose() error {
	ed.verbose = !ed.verbose
	if ed.verbose {
		return ed.cmdHelp()
	}
	return nil
}

func (ed *Editor) cmdPrompt() error {
	ed.prompt = !ed.prompt
	if ed.up == "" {
		ed.up = DefaultPrompt
	}
	return nil
}

func (ed *Editor) cmdPrint(c printCmd) error {
	first, second, err := ed.resolveRange(c.rng, ed.dot, ed.dot)
	if err != nil {
		return err
	}
	return ed.display(first, second, c.cs)
}

func (ed *Editor) cmdDelete(c deleteCmd) error {
	first, second, err := ed.resolveRange(c.rng, ed.dot, ed.dot)
	if err != nil {
		return err
	}
	ed.delete(first, second)
	if len(ed.lines) == 0 {
		return nil
	}
	return ed.display(ed.dot, ed.dot, c.cs)
}

func (ed *Editor) cmdWrite(c writeCmd) (action, error) {
	path, err := ed.validatePath(c.path)
	if err != nil {
		return actionContinue, err
	}
	lines := ed.lines
	if !c.rng.empty() {
		first, second, err := ed.resolveRange(c.rng, 1, len(ed.lines))
		if err != nil {
			return actionContinue, err
		}
		lines = ed.lines[first-1 : second]
	}
	logger.WithFields(logrus.Fields{"path": path, "lines": len(lines), "append": c.app}).Debug("write")
	siz, err := writeLines(path, lines, c.app)
	if err != nil {
		return actionContinue, err
	}
	ed.path = path
	ed.dirty = false
	ed.printSize(siz)
	if c.quit {
		return actionQuit, nil
	}
	return actionContinue, nil
}

func (ed *Editor) cmdInsert(c insertCmd) error {
	n, err := ed.resolveOpt(c.before, ed.dot, true)
	if err != nil {
		return err
	}
	ed.dot = n
	ed.ins = max(n-1, 0)
	ed.mode = modeInput
	return nil
}

func (ed *Editor) cmdAppend(c appendCmd) error {
	n, err := ed.resolveOpt(c.after, ed.dot, true)
	if err != nil {
		return err
	}
	ed.dot = n
	ed.ins = n
	ed.mode = modeInput
	return nil
}

func (ed *Editor) cmdChange(c changeCmd) error {
	first, second, err := ed.resolveRange(c.rng, ed.dot, ed.dot)
	if err != nil {
		return err
	}
	ed.delete(first, second)
	ed.ins = first - 1
	ed.mode = modeInput
	return nil
}

func (ed *Editor) cmdEdit(c editCmd) error {
	path, err := ed.validatePath(c.path)
	if err != nil {
		return err
	}
	lines, siz, err := readLines(path)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{"path": path, "lines": len(lines)}).Debug("edit")
	ed.file = file{lines: lines, path: path}
	ed.dot = len(lines)
	ed.printSize(siz)
	return nil
}

func (ed *Editor) cmdRead(c readCmd) error {
	path, err := ed.validatePath(c.path)
	if err != nil {
		return err
	}
	after, err := ed.resolveOpt(c.after, ed.dot, true)
	if err != nil {
		return err
	}
	lines, siz, err := readLines(path)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{"path": path, "after": after, "lines": len(lines)}).Debug("read")
	ed.file.append(after, lines)
	ed.dot = after + len(lines)
	ed.dirty = true
	if ed.path == "" {
		ed.path = path
	}
	ed.printSize(siz)
	return nil
}

func (ed *Editor) cmdMove(c moveCmd) error {
	first, second, err := ed.resolveRange(c.rng, ed.dot, ed.dot)
	if err != nil {
		return err
	}
	dest, err := ed.resolve(c.dest, ed.dot, true)
	if err != nil {
		return err
	}
	if first <= dest && dest <= second {
		return ErrInvalidDestination
	}
	logger.WithFields(logrus.Fields{"first": first, "second": second, "dest": dest}).Debug("move")
	ed.dot = ed.file.move(first, second, dest)
	ed.dirty = true
	return ed.display(ed.dot, ed.dot, c.cs)
}

func (ed *Editor) cmdTransfer(c transferCmd) error {
	first, second, err := ed.resolveRange(c.rng, ed.dot, ed.dot)
	if err != nil {
		return err
	}
	dest, err := ed.resolve(c.dest, ed.dot, true)
	if err != nil {
		return err
	}
	ed.dot = dest + ed.file.yank(first, second, dest)
	ed.dirty = true
	return ed.display(ed.dot, ed.dot, c.cs)
}

func (ed *Editor) cmdJoin(c joinCmd) error {
	first, second, err := ed.resolveRange(c.rng, ed.dot, ed.dot+1)
	if err != nil {
		return err
	}
	if first != second {
		ed.file.join(first, second)
		ed.dirty = true
	}
	ed.dot = first
	return ed.display(ed.dot, ed.dot, c.cs)
}

func (ed *Editor) cmdSubstitute(c substituteCmd) error {
	first, second, err := ed.resolveRange(c.rng, ed.dot, ed.dot)
	if err != nil {
		return err
	}
	sub, err := ed.parseSubstitution(c.arg)
	if err != nil {
		return err
	}
	ed.re, ed.replace, ed.global = sub.re, sub.replace, sub.global

	var (
		changed = make(map[int]string)
		last    int
	)
	for i := first; i <= second; i++ {
		if ln, ok := sub.apply(ed.lines[i-1]); ok {
			changed[i] = ln
			last = i
		}
	}
	if last == 0 {
		return ErrNoMatch
	}
	for i, ln := range changed {
		ed.lines[i-1] = ln
	}
	ed.dirty = true
	return ed.display(last, last, c.cs|sub.cs|suffixPrint)
}

func (ed *Editor) cmdFilename(c filenameCmd) error {
	if c.path != "" {
		ed.path = c.path
	}
	if ed.path == "" {
		return ErrNoFileName
	}
	fmt.Fprintln(ed.stdout, ed.path)
	return nil
}

func (ed *Editor) cmdLineNumber(c lineNumberCmd) error {
	n, err := ed.resolveOpt(c.addr, len(ed.lines), true)
	if err != nil {
		return err
	}
	fmt.Fprintln(ed.stdout, n)
	return nil
}

func (ed *Editor) cmdScroll(c scrollCmd) error {
	start, err := ed.resolveOpt(c.addr, ed.dot+1, false)
	if err != nil {
		return err
	}
	if c.count > 0 {
		ed.scroll = c.count
	}
	end := min(start+ed.scroll-1, len(ed.lines))
	return ed.display(start, end, c.cs|suffixPrint)
}

func (ed *Editor) validatePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	if ed.path == "" {
		return "", ErrNoFileName
	}
	return ed.path, nil
}

// delete removes the lines start to end and moves dot to the line that
// took their place, or to the new last line.
func (ed *Editor) delete(start, end int) {
	ed.file.delete(start, end)
	ed.dot = min(start, len(ed.lines))
	ed.dirty = true
}

// display prints the lines start to end according to flags and leaves
// dot on end. Nothing is printed when flags is zero.
func (ed *Editor) display(start, end int, flags suffix) error {
	if flags == 0 {
		return nil
	}
	if start < 1 || end > len(ed.lines) {
		return ErrInvalidAddress
	}
	for n := start; n <= end; n++ {
		var ln string
		if flags&suffixEnumerate > 0 {
			ln = fmt.Sprintf("%d\t", n)
		}
		if flags&suffixList > 0 {
			ln += listLine(ed.lines[n-1])
		} else {
			ln += ed.lines[n-1]
		}
		fmt.Fprintln(ed.stdout, ln)
	}
	ed.dot = end
	return nil
}

// listLine renders s unambiguously: non-printable characters are
// escaped, the end of the line is marked with '$' and lines wider than
// listWidth columns are folded with a trailing '\'.
func listLine(s string) string {
	var (
		sb  strings.Builder
		col int
	)
	for _, r := range s {
		var esc string
		switch r {
		case '$':
			esc = `\$`
		case '\'':
			esc = "'"
		default:
			q := strconv.QuoteRuneToGraphic(r)
			esc = q[1 : len(q)-1]
		}
		w := runewidth.StringWidth(esc)
		if col+w >= listWidth {
			sb.WriteString("\\\n")
			col = 0
		}
		sb.WriteString(esc)
		col += w
	}
	sb.WriteByte('$')
	return sb.String()
}
