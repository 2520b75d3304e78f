package cpu

import (
	"fmt"
)

// CellKind tags the two representations a memory cell can hold.
type CellKind int

const (
	CELL_RAW  = CellKind(0) // raw
	CELL_BYTE = CellKind(1) // byte
)

// Cell is one addressable unit of memory. Program bytes, immediates,
// and ALU/load/store results are Byte cells. Raw cells hold machine
// bookkeeping: return addresses pushed by CALL, and the saved program
// counter and flags pushed by the interrupt controller. The zero value
// is Raw 0, so memory the loader never touched reads as Raw; a Raw
// cell under the program counter is the halt signal.
type Cell struct {
	Kind CellKind
	Byte uint8
	Raw  int64
}

// ByteCell returns a Byte cell holding value.
func ByteCell(value uint8) Cell {
	return Cell{Kind: CELL_BYTE, Byte: value}
}

// RawCell returns a Raw cell holding value.
func RawCell(value int64) Cell {
	return Cell{Kind: CELL_RAW, Raw: value}
}

// Value returns the cell's numeric value regardless of tag.
func (c Cell) Value() int {
	if c.Kind == CELL_BYTE {
		return int(c.Byte)
	}

	return int(c.Raw)
}

// String returns the cell rendered as tag:value.
func (c Cell) String() string {
	if c.Kind == CELL_BYTE {
		return fmt.Sprintf("byte:%08b", c.Byte)
	}

	return fmt.Sprintf("raw:%d", c.Raw)
}
