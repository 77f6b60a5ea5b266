//go:build unix

package terminal

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Size reported when the winsize ioctl fails (pipe, size-less pty)
const (
	fallbackCols = 80
	fallbackRows = 24
)

// unixBackend drives a POSIX tty: raw mode via termios, size via the
// winsize ioctl, resize notification via SIGWINCH
type unixBackend struct {
	out   *os.File
	inFd  int
	outFd int

	saved *term.State

	winchStop chan struct{}
	winchDone chan struct{}
}

func newBackend() Backend {
	return &unixBackend{
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
	}
}

func (b *unixBackend) Init() error {
	if !term.IsTerminal(b.inFd) {
		return fmt.Errorf("stdin is not a terminal")
	}
	saved, err := term.MakeRaw(b.inFd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	b.saved = saved
	return nil
}

func (b *unixBackend) Fini() {
	if b.winchStop != nil {
		close(b.winchStop)
		<-b.winchDone
		b.winchStop = nil
	}
	if b.saved != nil {
		term.Restore(b.inFd, b.saved)
		b.saved = nil
	}
}

func (b *unixBackend) Size() (int, int) {
	ws, err := unix.IoctlGetWinsize(b.outFd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return fallbackCols, fallbackRows
	}
	return int(ws.Col), int(ws.Row)
}

func (b *unixBackend) Write(p []byte) error {
	_, err := b.out.Write(p)
	return err
}

func (b *unixBackend) SetResizeHandler(handler func(width, height int)) {
	b.winchStop = make(chan struct{})
	b.winchDone = make(chan struct{})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)

	go func() {
		defer close(b.winchDone)
		defer signal.Stop(sigCh)
		for {
			select {
			case <-sigCh:
				handler(b.Size())
			case <-b.winchStop:
				return
			}
		}
	}()
}

// resetTerminalMode re-enables echo and canonical input on the controlling
// tty. Crash path only: the saved termios state may be unreachable there,
// and /dev/tty works even when stdin was redirected. Errors are ignored.
func resetTerminalMode() {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	tio, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return
	}
	tio.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	tio.Iflag |= unix.ICRNL
	unix.IoctlSetTermios(fd, unix.TCSETS, tio)
}
