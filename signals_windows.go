package main

import (
	"os"
	"os/signal"
)

func notifySignals(ch chan<- os.Signal) {
	signal.Notify(ch, os.Interrupt)
}

func (ed *Editor) handleSignal(sig os.Signal) bool {
	if sig == os.Interrupt {
		ed.interrupt()
	}
	return false
}
