package cpu

import (
	"errors"
)

// push pre-decrements the stack pointer and writes the cell at the new
// top of stack. The stack pointer leaving 0..255 is a StackFault, not
// a wrap.
func (m *Machine) push(cell Cell) (err error) {
	sp := int(m.Reg[REG_SP]) - 1
	if sp < 0 {
		err = errors.Join(ErrStackFault, ErrAddress(sp))
		return
	}

	if err = m.Mem.Write(sp, cell); err != nil {
		return
	}
	m.Reg[REG_SP] = uint8(sp)
	return
}

// pop reads the cell at the top of stack and post-increments the stack
// pointer.
func (m *Machine) pop() (cell Cell, err error) {
	sp := int(m.Reg[REG_SP])
	if cell, err = m.Mem.Read(sp); err != nil {
		return
	}

	if sp+1 >= MEMORY_SIZE {
		err = errors.Join(ErrStackFault, ErrAddress(sp+1))
		return
	}
	m.Reg[REG_SP] = uint8(sp + 1)
	return
}
