package cpu

import (
	"errors"
)

// Register roles. All eight slots remain ordinary general-purpose
// registers; r5 and r6 double as the interrupt mask and status
// registers, and r7 is the stack pointer.
const (
	REG_IM = 5 // interrupt mask
	REG_IS = 6 // interrupt status
	REG_SP = 7 // stack pointer
)

// Registers is the 8-slot register file. ALU results are truncated to
// 8 bits before storage, so a slot always holds a canonical byte.
type Registers [8]uint8

// Get returns the value of the register named by index.
func (r *Registers) Get(index uint8) (value uint8, err error) {
	if int(index) >= len(r) {
		err = errors.Join(ErrDecode, ErrRegister(index))
		return
	}

	value = r[index]
	return
}

// Set stores value in the register named by index.
func (r *Registers) Set(index uint8, value uint8) (err error) {
	if int(index) >= len(r) {
		err = errors.Join(ErrDecode, ErrRegister(index))
		return
	}

	r[index] = value
	return
}

// Flags is the 3-bit comparison state. Only CMP writes it; only the
// conditional branches read it.
type Flags uint8

const (
	FL_EQUAL   = Flags(1 << 0)
	FL_GREATER = Flags(1 << 1)
	FL_LESS    = Flags(1 << 2)
)

// Compare sets exactly one of Less, Greater, Equal from an unsigned
// comparison. No bit from a prior comparison survives.
func (fl *Flags) Compare(a, b uint8) {
	switch {
	case a < b:
		*fl = FL_LESS
	case a > b:
		*fl = FL_GREATER
	default:
		*fl = FL_EQUAL
	}
}

func (fl Flags) Equal() bool {
	return fl&FL_EQUAL != 0
}

func (fl Flags) Greater() bool {
	return fl&FL_GREATER != 0
}

func (fl Flags) Less() bool {
	return fl&FL_LESS != 0
}
