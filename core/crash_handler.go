package core

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/termsprite/terminal"
)

// HandleCrash restores the terminal and reports the panic before exiting.
// The report is written only after the emergency reset, and uses \r\n line
// endings because the tty may still be switching out of raw mode.
func HandleCrash(r any) {
	if r == nil {
		return
	}

	terminal.EmergencyReset(os.Stdout)
	os.Stdout.Sync()

	fmt.Fprintf(os.Stderr, "\r\npanic: %v\r\n\r\n%s\r\n", r, debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Recover funnels a recovered panic through HandleCrash. Deferred at the
// top of any goroutine that draws to the terminal.
func Recover() {
	if r := recover(); r != nil {
		HandleCrash(r)
	}
}

// Go runs fn on a new goroutine guarded by Recover, so a crash on a worker
// still leaves the terminal usable
func Go(fn func()) {
	go func() {
		defer Recover()
		fn()
	}()
}
