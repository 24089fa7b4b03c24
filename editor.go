package main

import (
	"fmt"
	"os"
	"os/signal"
)

// Run reads and dispatches lines until the editor quits or the input
// ends. An error is returned only when the input cannot be read.
func (ed *Editor) Run() error {
	sigch := make(chan os.Signal, 1)
	notifySignals(sigch)
	defer signal.Stop(sigch)
	return ed.run(sigch)
}

func (ed *Editor) run(sigch <-chan os.Signal) error {
	in := readInput(ed.stdin)
	defer in.close()
	for {
		ed.doPrompt()
		select {
		case sig := <-sigch:
			logger.WithField("signal", sig).Debug("received signal")
			if ed.handleSignal(sig) {
				return nil
			}
		case ln, ok := <-in.lines:
			if !ok {
				if in.err != nil {
					return in.err
				}
				_, err := ed.exec(quitCmd{force: true})
				return err
			}
			ed.lc++
			act, err := ed.Dispatch(ln)
			switch {
			case err != nil:
				ed.errorln(err)
			case act == actionQuit:
				return nil
			case act == actionUnknown:
				fmt.Fprintln(ed.stderr, ErrDefault)
			}
		}
	}
}

// interrupt reports an interrupted command line. The editor stays in
// its current mode.
func (ed *Editor) interrupt() {
	ed.err = ErrInterrupt
	fmt.Fprintf(ed.stdout, "\n%s\n", ErrDefault)
}

// hangup saves a modified buffer to the hangup file.
func (ed *Editor) hangup() {
	if !ed.dirty {
		return
	}
	if _, err := writeLines(ed.hup, ed.lines, false); err != nil {
		logger.WithError(err).WithField("path", ed.hup).Error("cannot save buffer on hangup")
	}
}
