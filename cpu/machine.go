package cpu

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

// Fixed machine addresses and interrupt lines.
const (
	STACK_INIT  = 0xF4 // initial stack pointer; the stack grows down
	KEY_ADDRESS = 0xF4 // last key pressed, written by the keyboard poll
	VECTOR_BASE = 0xF8 // interrupt vector table, one slot per line
	CANCEL_KEY  = 0x1B // ESC terminates the run

	INT_TIMER    = 0 // fires once per elapsed wall-clock second
	INT_KEYBOARD = 1 // fires when a key is pending
)

// Keyboard is the non-blocking keystroke capability the interrupt
// controller polls: return the pending character if one is buffered,
// else ok false. Poll must never block.
type Keyboard interface {
	Poll() (key uint8, ok bool)
}

// Machine is one LS-8 machine instance. Construct with New, populate
// memory with Load or LoadBytes, Run to halt or cancellation, discard.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Output   io.Writer        // PRN channel. Defaults to os.Stdout.
	Keyboard Keyboard         // Keystroke source. May be nil.
	Clock    func() time.Time // Timer source. Defaults to time.Now.

	// MaxCycles bounds the number of executed instructions; zero
	// means unbounded. Embedders running untrusted payloads should
	// set a bound.
	MaxCycles int

	Mem Memory
	Reg Registers
	Fl  Flags
	Pc  int

	intEnabled bool
	lastTick   time.Time
	cycles     int
	cancelled  bool
	out        strings.Builder
}

// New creates a machine in its initial state.
func New() (m *Machine) {
	m = &Machine{
		Output:     os.Stdout,
		Clock:      time.Now,
		intEnabled: true,
	}
	m.Reg[REG_SP] = STACK_INIT
	m.lastTick = time.Now()

	return
}

// String returns the current machine state.
func (m *Machine) String() (text string) {
	text = fmt.Sprintf("pc: %#02x fl: %03b\n", m.Pc, m.Fl)
	for n, value := range m.Reg {
		text += fmt.Sprintf("r%d: %08b\n", n, value)
	}

	return
}

// Run executes the loaded program until the halt condition or an
// external cancellation, and returns the accumulated PRA output.
// Cancellation is not an error; whatever the program printed so far
// is still returned.
func (m *Machine) Run() (output string, err error) {
	m.lastTick = m.Clock()

	for {
		var done bool
		done, err = m.Step()
		if done || err != nil {
			output = m.out.String()
			return
		}
	}
}

// Step runs one loop iteration: poll interrupts if enabled, evaluate
// the halt condition, then fetch and execute a single instruction.
func (m *Machine) Step() (done bool, err error) {
	if m.intEnabled {
		if err = m.poll(); err != nil {
			return
		}
		if m.cancelled {
			done = true
			return
		}
	}

	cell, err := m.Mem.Read(m.Pc)
	if err != nil {
		return
	}
	if cell.Kind != CELL_BYTE {
		// A Raw cell under the program counter is the halt signal.
		done = true
		return
	}

	if m.MaxCycles > 0 && m.cycles >= m.MaxCycles {
		err = ErrCycleLimit
		return
	}
	m.cycles++

	code, next, err := m.fetch()
	if err != nil {
		return
	}

	if m.Verbose {
		log.Printf("%02x: %v", m.Pc, code)
	}

	err = m.execute(code, next)
	return
}

// fetch decodes the instruction byte at the program counter and reads
// its operand bytes. next is the address one past the opcode and its
// operands, where execution resumes unless the operation manages the
// program counter itself.
func (m *Machine) fetch() (code Code, next int, err error) {
	b, err := m.Mem.ReadByte(m.Pc)
	if err != nil {
		return
	}

	op, ok := Lookup(b)
	if !ok || b != Encoding(op) {
		err = errors.Join(ErrDecode, ErrOpcodeByte(b))
		return
	}

	var operands [2]uint8
	count := operandCount(b)
	for n := 0; n < count; n++ {
		operands[n], err = m.Mem.ReadByte(m.Pc + 1 + n)
		if err != nil {
			err = errors.Join(ErrDecode, err)
			return
		}
	}

	code = Code{Op: op, Byte: b, A: operands[0], B: operands[1]}
	next = m.Pc + 1 + count
	return
}
