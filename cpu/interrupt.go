package cpu

import (
	"math/bits"
	"time"
)

// poll checks the timer and keyboard sources, then services the
// lowest-numbered active interrupt line. Called once per loop
// iteration, only while interrupts are enabled.
func (m *Machine) poll() (err error) {
	now := m.Clock()
	if now.Sub(m.lastTick) >= time.Second {
		m.lastTick = now
		m.Reg[REG_IS] |= 1 << INT_TIMER
	}

	if m.Keyboard != nil {
		if key, ok := m.Keyboard.Poll(); ok {
			if key == CANCEL_KEY {
				m.cancelled = true
				return
			}
			if err = m.Mem.Write(KEY_ADDRESS, ByteCell(key)); err != nil {
				return
			}
			m.Reg[REG_IS] |= 1 << INT_KEYBOARD
		}
	}

	active := m.Reg[REG_IM] & m.Reg[REG_IS]
	if active == 0 {
		return
	}

	line := uint8(bits.TrailingZeros8(active))
	err = m.service(line, m.Pc)
	return
}

// service runs the interrupt entry sequence for a line: clear its
// pending bit, disable interrupts, save the program counter and flags
// as Raw cells, save and zero the general-purpose registers, and jump
// to the handler address held in the line's vector slot.
func (m *Machine) service(line uint8, ret int) (err error) {
	handler, err := m.Mem.ReadByte(VECTOR_BASE + int(line))
	if err != nil {
		return
	}

	m.Reg[REG_IS] &^= 1 << line
	m.intEnabled = false

	if err = m.push(RawCell(int64(ret))); err != nil {
		return
	}
	if err = m.push(RawCell(int64(m.Fl))); err != nil {
		return
	}
	for n := 0; n < REG_SP; n++ {
		if err = m.push(ByteCell(m.Reg[n])); err != nil {
			return
		}
		m.Reg[n] = 0
	}

	m.Pc = int(handler)
	return
}

// iret restores machine state in the exact inverse of the service
// order and re-enables interrupts.
func (m *Machine) iret() (err error) {
	var cell Cell
	for n := REG_SP - 1; n >= 0; n-- {
		if cell, err = m.pop(); err != nil {
			return
		}
		m.Reg[n] = uint8(cell.Value())
	}

	if cell, err = m.pop(); err != nil {
		return
	}
	m.Fl = Flags(cell.Value())

	if cell, err = m.pop(); err != nil {
		return
	}
	m.Pc = cell.Value()

	m.intEnabled = true
	return
}
