package cpu

import (
	"errors"

	"github.com/wishingwell/ls8/translate"
)

var f = translate.From

var (
	// Loader errors
	ErrInvalidEncoding = errors.New(f("not an 8-bit binary literal"))
	ErrProgramTooLarge = errors.New(f("program exceeds memory"))

	// Machine errors
	ErrDecode      = errors.New(f("decode"))
	ErrStackFault  = errors.New(f("stack fault"))
	ErrMemoryFault = errors.New(f("memory fault"))
	ErrRawCell     = errors.New(f("raw cell where a byte is required"))
	ErrZeroModulus = errors.New(f("modulus of zero"))
	ErrCycleLimit  = errors.New(f("cycle limit exceeded"))

	// Assembler errors
	ErrEquateSyntax     = errors.New(f(".equ syntax"))
	ErrEquateDuplicate  = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate   = errors.New(f("label duplicated"))
	ErrDirectiveInvalid = errors.New(f("directive invalid"))
	ErrOpcodeMissing    = errors.New(f("opcode missing"))
	ErrOpcodeInvalid    = errors.New(f("opcode invalid"))
	ErrOperandCount     = errors.New(f("operand count"))
)

// ErrOpcodeByte reports an instruction byte with no handler for its
// (ALU, sets-PC, op code) triple.
type ErrOpcodeByte uint8

func (eo ErrOpcodeByte) Error() string {
	return f("bad opcode %#08b", uint8(eo))
}

func (eo ErrOpcodeByte) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcodeByte)
	return
}

// ErrCode reports the instruction whose execution failed.
type ErrCode Code

func (ec ErrCode) Error() string {
	return f("op %v", Code(ec).String())
}

func (ec ErrCode) Is(err error) (ok bool) {
	_, ok = err.(ErrCode)
	return
}

// ErrAddress reports an address outside 0..255.
type ErrAddress int

func (ea ErrAddress) Error() string {
	return f("address %#x", int(ea))
}

// ErrRegister reports a register index outside 0..7.
type ErrRegister uint8

func (er ErrRegister) Error() string {
	return f("register %d", uint8(er))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
