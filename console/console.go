// Package console provides non-blocking keystroke sources for the
// machine's interrupt controller: a scoped raw-terminal console for
// interactive runs, and a scripted buffer for tests.
package console

// Buffer is a scripted keystroke source. Poll pops keys in the order
// they were queued.
type Buffer struct {
	Keys []uint8
}

// Poll returns the next queued key, if any. Never blocks.
func (b *Buffer) Poll() (key uint8, ok bool) {
	if len(b.Keys) == 0 {
		return
	}

	key = b.Keys[0]
	b.Keys = b.Keys[1:]
	ok = true
	return
}
