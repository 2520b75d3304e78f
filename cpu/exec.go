package cpu

import (
	"errors"
	"fmt"
)

// execute dispatches one decoded instruction. next is the address past
// the opcode and operands; operations that do not manage the program
// counter resume there.
func (m *Machine) execute(code Code, next int) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrCode(code), err)
		}
	}()

	if isALU(code.Byte) {
		if err = m.alu(code); err != nil {
			return
		}
		m.Pc = next
		return
	}

	if setsPC(code.Byte) {
		err = m.flow(code, next)
		return
	}

	err = m.core(code)
	if err != nil {
		return
	}
	m.Pc = next
	return
}

// core handles the load/store, stack, and print operations.
func (m *Machine) core(code Code) (err error) {
	switch code.Op {
	case OP_NOP:
	case OP_HLT:
		// A no-op: halting is driven by the Raw-cell condition at the
		// program counter, so a HLT followed by untouched memory
		// stops the machine.
	case OP_LDI:
		err = m.Reg.Set(code.A, code.B)
	case OP_LD:
		var address uint8
		if address, err = m.Reg.Get(code.B); err != nil {
			return
		}
		var value uint8
		if value, err = m.Mem.ReadByte(int(address)); err != nil {
			return
		}
		err = m.Reg.Set(code.A, value)
	case OP_ST:
		var address uint8
		if address, err = m.Reg.Get(code.A); err != nil {
			return
		}
		var value uint8
		if value, err = m.Reg.Get(code.B); err != nil {
			return
		}
		err = m.Mem.Write(int(address), ByteCell(value))
	case OP_PUSH:
		var value uint8
		if value, err = m.Reg.Get(code.A); err != nil {
			return
		}
		err = m.push(ByteCell(value))
	case OP_POP:
		sp := int(m.Reg[REG_SP])
		var value uint8
		if value, err = m.Mem.ReadByte(sp); err != nil {
			return
		}
		if err = m.Reg.Set(code.A, value); err != nil {
			return
		}
		_, err = m.pop()
	case OP_PRN:
		var value uint8
		if value, err = m.Reg.Get(code.A); err != nil {
			return
		}
		_, err = fmt.Fprintf(m.Output, "%d", value)
	case OP_PRA:
		var value uint8
		if value, err = m.Reg.Get(code.A); err != nil {
			return
		}
		m.out.WriteRune(rune(value))
	}

	return
}

// alu computes over register A (and B where binary) and writes the
// 8-bit-truncated result back into register A. CMP writes only the
// flags register.
func (m *Machine) alu(code Code) (err error) {
	a, err := m.Reg.Get(code.A)
	if err != nil {
		return
	}

	var b uint8
	if operandCount(code.Byte) == 2 {
		if b, err = m.Reg.Get(code.B); err != nil {
			return
		}
	}

	var result uint8
	switch code.Op {
	case OP_ADD:
		result = a + b
	case OP_SUB:
		result = a - b
	case OP_MUL:
		result = a * b
	case OP_DIV:
		// A right shift, not a quotient. Captured payloads rely on it.
		result = a >> b
	case OP_MOD:
		if b == 0 {
			err = ErrZeroModulus
			return
		}
		result = a % b
	case OP_INC:
		result = a + 1
	case OP_DEC:
		result = a - 1
	case OP_CMP:
		m.Fl.Compare(a, b)
		return
	case OP_AND:
		result = a & b
	case OP_NOT:
		result = ^a
	case OP_OR:
		result = a | b
	case OP_XOR:
		result = a ^ b
	case OP_SHL:
		result = a << b
	case OP_SHR:
		result = a >> b
	}

	err = m.Reg.Set(code.A, result)
	return
}

// flow handles the operations that manage the program counter.
func (m *Machine) flow(code Code, next int) (err error) {
	switch code.Op {
	case OP_JMP:
		m.Pc, err = m.branch(code.A, true, next)
	case OP_JEQ:
		m.Pc, err = m.branch(code.A, m.Fl.Equal(), next)
	case OP_JNE:
		m.Pc, err = m.branch(code.A, !m.Fl.Equal(), next)
	case OP_JGT:
		m.Pc, err = m.branch(code.A, m.Fl.Greater(), next)
	case OP_JGE:
		m.Pc, err = m.branch(code.A, m.Fl.Greater() || m.Fl.Equal(), next)
	case OP_JLT:
		m.Pc, err = m.branch(code.A, m.Fl.Less(), next)
	case OP_JLE:
		m.Pc, err = m.branch(code.A, m.Fl.Less() || m.Fl.Equal(), next)
	case OP_CALL:
		var target uint8
		if target, err = m.Reg.Get(code.A); err != nil {
			return
		}
		if err = m.push(RawCell(int64(next))); err != nil {
			return
		}
		m.Pc = int(target)
	case OP_RET:
		var cell Cell
		if cell, err = m.pop(); err != nil {
			return
		}
		m.Pc = cell.Value()
	case OP_INT:
		var line uint8
		if line, err = m.Reg.Get(code.A); err != nil {
			return
		}
		err = m.service(line, next)
	case OP_IRET:
		err = m.iret()
	}

	return
}

// branch jumps to the address held in the named register when take is
// set, else falls through to the next instruction.
func (m *Machine) branch(reg uint8, take bool, next int) (pc int, err error) {
	if !take {
		pc = next
		return
	}

	value, err := m.Reg.Get(reg)
	if err != nil {
		return
	}

	pc = int(value)
	return
}
