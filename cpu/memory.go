package cpu

import (
	"errors"
)

const (
	MEMORY_SIZE = 256 // Addressable cells.
)

// Memory is the machine's 256-cell address space.
type Memory struct {
	Cells [MEMORY_SIZE]Cell
}

// Read returns the cell at address. Every address the machine forms is
// derived from an 8-bit value; anything outside 0..255 reaching this
// layer is a defect in the caller and fails with ErrMemoryFault.
func (m *Memory) Read(address int) (cell Cell, err error) {
	if address < 0 || address >= MEMORY_SIZE {
		err = errors.Join(ErrMemoryFault, ErrAddress(address))
		return
	}

	cell = m.Cells[address]
	return
}

// Write stores a cell at address.
func (m *Memory) Write(address int, cell Cell) (err error) {
	if address < 0 || address >= MEMORY_SIZE {
		err = errors.Join(ErrMemoryFault, ErrAddress(address))
		return
	}

	m.Cells[address] = cell
	return
}

// ReadByte returns the Byte at address, failing with ErrRawCell when
// the cell holds machine bookkeeping instead of a program byte.
func (m *Memory) ReadByte(address int) (value uint8, err error) {
	cell, err := m.Read(address)
	if err != nil {
		return
	}

	if cell.Kind != CELL_BYTE {
		err = errors.Join(ErrRawCell, ErrAddress(address))
		return
	}

	value = cell.Byte
	return
}
