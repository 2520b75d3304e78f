package cpu

import (
	"fmt"
)

// Op is a decoded LS-8 operation.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_NOP = Op(0) // NOP
	OP_HLT = Op(1) // HLT
	OP_LDI = Op(2) // LDI
	OP_LD  = Op(3) // LD
	OP_ST  = Op(4) // ST

	OP_PUSH = Op(5) // PUSH
	OP_POP  = Op(6) // POP
	OP_PRN  = Op(7) // PRN
	OP_PRA  = Op(8) // PRA

	OP_ADD = Op(9)  // ADD
	OP_SUB = Op(10) // SUB
	OP_MUL = Op(11) // MUL
	OP_DIV = Op(12) // DIV
	OP_MOD = Op(13) // MOD
	OP_INC = Op(14) // INC
	OP_DEC = Op(15) // DEC
	OP_CMP = Op(16) // CMP
	OP_AND = Op(17) // AND
	OP_NOT = Op(18) // NOT
	OP_OR  = Op(19) // OR
	OP_XOR = Op(20) // XOR
	OP_SHL = Op(21) // SHL
	OP_SHR = Op(22) // SHR

	OP_CALL = Op(23) // CALL
	OP_RET  = Op(24) // RET
	OP_INT  = Op(25) // INT
	OP_IRET = Op(26) // IRET
	OP_JMP  = Op(27) // JMP
	OP_JEQ  = Op(28) // JEQ
	OP_JNE  = Op(29) // JNE
	OP_JGT  = Op(30) // JGT
	OP_JGE  = Op(31) // JGE
	OP_JLT  = Op(32) // JLT
	OP_JLE  = Op(33) // JLE
)

// Instruction byte layout: bits 7-6 operand count, bit 5 the ALU
// class, bit 4 set when the operation manages the program counter
// itself, bits 3-0 the op code scoped by the (ALU, sets-PC) namespace.

func operandCount(b uint8) int {
	return int(b >> 6)
}

func isALU(b uint8) bool {
	return b&0b00100000 != 0
}

func setsPC(b uint8) bool {
	return b&0b00010000 != 0
}

func opCode(b uint8) uint8 {
	return b & 0b00001111
}

// opKey scopes a 4-bit op code within its namespace. The same value
// means a different operation in each of the namespaces.
type opKey struct {
	alu    bool
	setsPC bool
	code   uint8
}

var opDefs = [...]struct {
	op   Op
	code uint8
}{
	{OP_NOP, 0b00000000},
	{OP_HLT, 0b00000001},
	{OP_LDI, 0b10000010},
	{OP_LD, 0b10000011},
	{OP_ST, 0b10000100},
	{OP_PUSH, 0b01000101},
	{OP_POP, 0b01000110},
	{OP_PRN, 0b01000111},
	{OP_PRA, 0b01001000},

	{OP_ADD, 0b10100000},
	{OP_SUB, 0b10100001},
	{OP_MUL, 0b10100010},
	{OP_DIV, 0b10100011},
	{OP_MOD, 0b10100100},
	{OP_INC, 0b01100101},
	{OP_DEC, 0b01100110},
	{OP_CMP, 0b10100111},
	{OP_AND, 0b10101000},
	{OP_NOT, 0b01101001},
	{OP_OR, 0b10101010},
	{OP_XOR, 0b10101011},
	{OP_SHL, 0b10101100},
	{OP_SHR, 0b10101101},

	{OP_CALL, 0b01010000},
	{OP_RET, 0b00010001},
	{OP_INT, 0b01010010},
	{OP_IRET, 0b00010011},
	{OP_JMP, 0b01010100},
	{OP_JEQ, 0b01010101},
	{OP_JNE, 0b01010110},
	{OP_JGT, 0b01010111},
	{OP_JLT, 0b01011000},
	{OP_JLE, 0b01011001},
	{OP_JGE, 0b01011010},
}

var opTable = map[opKey]Op{}
var opEncoding = map[Op]uint8{}
var opByName = map[string]Op{}

func init() {
	for _, def := range opDefs {
		opTable[opKey{isALU(def.code), setsPC(def.code), opCode(def.code)}] = def.op
		opEncoding[def.op] = def.code
		opByName[def.op.String()] = def.op
	}
}

// Lookup resolves an instruction byte to its operation. A miss means
// no handler exists for the (ALU, sets-PC, op code) triple.
func Lookup(b uint8) (op Op, ok bool) {
	op, ok = opTable[opKey{isALU(b), setsPC(b), opCode(b)}]
	return
}

// Encoding returns the canonical instruction byte for an operation.
func Encoding(op Op) uint8 {
	return opEncoding[op]
}

// Code is one fetched instruction: the instruction byte and its
// decoded operand slots. A names the primary register operand; B the
// secondary register operand, or the immediate for LDI.
type Code struct {
	Op   Op
	Byte uint8
	A    uint8
	B    uint8
}

// String returns the instruction in assembly form.
func (code Code) String() (out string) {
	switch operandCount(code.Byte) {
	case 2:
		out = fmt.Sprintf("%v %d,%d", code.Op, code.A, code.B)
	case 1:
		out = fmt.Sprintf("%v %d", code.Op, code.A)
	default:
		out = code.Op.String()
	}

	return
}
