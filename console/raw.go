//go:build !windows

package console

import (
	"os"
	"syscall"

	"golang.org/x/term"
)

// Raw is a scoped raw-mode stdin console. Open switches the terminal
// into a mode that exposes keystrokes immediately and makes reads
// non-blocking; Close restores the previous state. Callers must Close
// on every exit path, including error and cancellation.
type Raw struct {
	fd       int
	oldState *term.State
	nonblock bool
}

// Open acquires stdin in raw, non-blocking mode.
func Open() (raw *Raw, err error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		err = ErrNotTerminal
		return
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return
	}

	if err = syscall.SetNonblock(fd, true); err != nil {
		_ = term.Restore(fd, oldState)
		return
	}

	raw = &Raw{fd: fd, oldState: oldState, nonblock: true}
	return
}

// Poll reads one pending character without blocking. A "no data"
// outcome is an ordinary immediate return, never a wait.
func (r *Raw) Poll() (key uint8, ok bool) {
	var buf [1]byte
	n, err := syscall.Read(r.fd, buf[:])
	if err != nil || n == 0 {
		return
	}

	key = buf[0]
	ok = true
	return
}

// Close restores the terminal to its pre-Open state.
func (r *Raw) Close() (err error) {
	if r.nonblock {
		_ = syscall.SetNonblock(r.fd, false)
		r.nonblock = false
	}
	if r.oldState != nil {
		err = term.Restore(r.fd, r.oldState)
		r.oldState = nil
	}

	return
}
