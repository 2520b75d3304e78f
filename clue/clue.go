// Package clue runs a clue payload on a fresh machine and extracts the
// room identifier its output spells.
package clue

import (
	"io"
	"regexp"
	"strconv"

	"github.com/wishingwell/ls8/cpu"
)

// MAX_CYCLES bounds a decode run. Payloads are a few dozen
// instructions; anything still running after this many is stuck.
const MAX_CYCLES = 1_000_000

var roomRe = regexp.MustCompile(`[0-9]+`)

// Result is a decoded clue.
type Result struct {
	Text string // Everything the payload printed.
	Room int    // The room identifier extracted from Text.
}

// Decode loads payload text into a fresh machine, runs it to halt or
// cancellation, and extracts the first number from the output. kb may
// be nil for non-interactive decodes. The machine is discarded after
// the one run.
func Decode(payload io.Reader, kb cpu.Keyboard) (result Result, err error) {
	m := cpu.New()
	m.Keyboard = kb
	m.MaxCycles = MAX_CYCLES

	if err = m.Load(payload); err != nil {
		return
	}

	result.Text, err = m.Run()
	if err != nil {
		return
	}

	result.Room, err = Extract(result.Text)
	return
}

// Extract returns the first number a payload's output spells.
func Extract(text string) (room int, err error) {
	match := roomRe.FindString(text)
	if match == "" {
		err = ErrNoRoom
		return
	}

	// The pattern admits only digits.
	room, _ = strconv.Atoi(match)
	return
}
