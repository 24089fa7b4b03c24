//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package main

import (
	"os"
	"os/signal"
	"syscall"
)

func notifySignals(ch chan<- os.Signal) {
	signal.Notify(ch, syscall.SIGINT, syscall.SIGHUP, syscall.SIGQUIT)
}

// handleSignal reacts to sig and reports whether the editor should exit.
func (ed *Editor) handleSignal(sig os.Signal) bool {
	switch sig {
	case syscall.SIGINT:
		ed.interrupt()
	case syscall.SIGHUP:
		ed.hangup()
		return true
	case syscall.SIGQUIT:
		// ignore
	}
	if ed.verbose && ed.err != nil {
		ed.errorln(ed.err)
	}
	return false
}
