//go:build windows

package console

// Raw is unavailable on Windows; the machine runs without a keyboard
// source there.
type Raw struct{}

func Open() (raw *Raw, err error) {
	err = ErrUnsupported
	return
}

func (r *Raw) Poll() (key uint8, ok bool) {
	return
}

func (r *Raw) Close() (err error) {
	return
}
