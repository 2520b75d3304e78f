package cpu

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assemble(t *testing.T, program string) (image []uint8) {
	asm := &Assembler{}
	image, err := asm.Parse(strings.NewReader(program))
	require.NoError(t, err)
	return
}

func testMachine(t *testing.T, program string) (m *Machine) {
	m = New()
	m.Output = io.Discard
	m.MaxCycles = 100000
	require.NoError(t, m.LoadBytes(assemble(t, program)))
	return
}

func runProgram(t *testing.T, program string) (m *Machine, output string) {
	m = testMachine(t, program)
	output, err := m.Run()
	require.NoError(t, err)
	return
}

// A program that loads five into r0 and prints it as a character
// leaves chr(5) in the accumulator.
func TestRun_PrintCharacter(t *testing.T) {
	assert := assert.New(t)

	_, output := runProgram(t, `
		LDI r0, 5
		PRA r0
		HLT
	`)
	assert.Equal("\x05", output)
}

// PRN writes decimal text to the caller-visible output channel, not
// the accumulator.
func TestRun_PrintNumber(t *testing.T) {
	assert := assert.New(t)

	m := New()
	m.MaxCycles = 1000
	prn := &bytes.Buffer{}
	m.Output = prn
	require.NoError(t, m.LoadBytes(assemble(t, `
		LDI r0, 5
		PRN r0
		HLT
	`)))

	output, err := m.Run()
	assert.NoError(err)
	assert.Equal("", output)
	assert.Equal("5", prn.String())
}

// Execution halts at the first Raw cell under the program counter:
// HLT is a no-op and the cell past it was never loaded.
func TestRun_HaltAtRawCell(t *testing.T) {
	assert := assert.New(t)

	m, output := runProgram(t, `
		LDI r1, 'x'
		PRA r1
	`)
	assert.Equal("x", output)
	assert.Equal(5, m.Pc)
}

func TestRun_PushPopRestores(t *testing.T) {
	assert := assert.New(t)

	m, _ := runProgram(t, `
		LDI r0, 0x5A
		PUSH r0
		LDI r0, 0
		POP r0
	`)
	assert.Equal(uint8(0x5A), m.Reg[0])
	assert.Equal(uint8(STACK_INIT), m.Reg[REG_SP])
}

// CALL pushes the address after itself; RET resumes there.
func TestRun_CallRet(t *testing.T) {
	assert := assert.New(t)

	_, output := runProgram(t, `
		LDI r0, func
		CALL r0
		LDI r1, 'B'
		PRA r1
		LDI r4, 0xFF
		JMP r4          # park on an untouched cell
	func:
		LDI r2, 'A'
		PRA r2
		RET
	`)
	assert.Equal("AB", output)
}

func TestRun_Branches(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		a, b   uint8
		branch string
		taken  bool
	}){
		{"jeq taken", 3, 3, "JEQ", true},
		{"jeq not", 3, 4, "JEQ", false},
		{"jne taken", 3, 4, "JNE", true},
		{"jne not", 3, 3, "JNE", false},
		{"jgt taken", 5, 4, "JGT", true},
		{"jgt not", 4, 4, "JGT", false},
		{"jge equal", 4, 4, "JGE", true},
		{"jge greater", 5, 4, "JGE", true},
		{"jge not", 3, 4, "JGE", false},
		{"jlt taken", 3, 4, "JLT", true},
		{"jlt not", 4, 3, "JLT", false},
		{"jle equal", 4, 4, "JLE", true},
		{"jle less", 2, 4, "JLE", true},
		{"jle not", 5, 4, "JLE", false},
	}

	for _, entry := range table {
		program := strings.NewReplacer(
			"$BR", entry.branch,
			"$A", string(rune('0'+entry.a)),
			"$B", string(rune('0'+entry.b)),
		).Replace(`
			LDI r0, $A
			LDI r1, $B
			CMP r0, r1
			LDI r2, taken
			$BR r2
			LDI r3, 'n'
			PRA r3
			LDI r4, 0xFF
			JMP r4
		taken:
			LDI r3, 'y'
			PRA r3
		`)

		_, output := runProgram(t, program)
		want := "n"
		if entry.taken {
			want = "y"
		}
		assert.Equal(want, output, entry.name)
	}
}

func TestRun_LoadStore(t *testing.T) {
	assert := assert.New(t)

	m, _ := runProgram(t, `
		LDI r0, 0xE0    # address
		LDI r1, 0x7E    # value
		ST r0, r1
		LDI r2, 0       # destination
		LD r2, r0
	`)
	assert.Equal(uint8(0x7E), m.Reg[2])

	value, err := m.Mem.ReadByte(0xE0)
	assert.NoError(err)
	assert.Equal(uint8(0x7E), value)
}

func TestStep_DecodeError(t *testing.T) {
	assert := assert.New(t)

	m := New()
	require.NoError(t, m.LoadBytes([]uint8{0b00001111}))
	_, err := m.Step()
	assert.True(errors.Is(err, ErrDecode))
	assert.True(errors.Is(err, ErrOpcodeByte(0)))
}

// An operand count that disagrees with the canonical encoding is a
// decode error, not a silent drift through memory.
func TestStep_BadOperandCount(t *testing.T) {
	assert := assert.New(t)

	m := New()
	// LDI with a one-operand count field.
	require.NoError(t, m.LoadBytes([]uint8{0b01000010, 0}))
	_, err := m.Step()
	assert.True(errors.Is(err, ErrDecode))
}

func TestRun_StackFault(t *testing.T) {
	assert := assert.New(t)

	// The third push would take the stack pointer below zero.
	m := testMachine(t, `
		LDI sp, 2
		PUSH r0
		PUSH r0
		PUSH r0
	`)
	_, err := m.Run()
	assert.True(errors.Is(err, ErrStackFault))
}

func TestRun_StackFault_Overflow(t *testing.T) {
	assert := assert.New(t)

	// Popping at the top of memory would take the stack pointer past
	// 255.
	m := testMachine(t, `
		LDI sp, 0xFF
		RET
	`)
	_, err := m.Run()
	assert.True(errors.Is(err, ErrStackFault))
}

func TestRun_CycleLimit(t *testing.T) {
	assert := assert.New(t)

	m := testMachine(t, `
	spin:
		LDI r0, spin
		JMP r0
	`)
	m.MaxCycles = 100
	_, err := m.Run()
	assert.True(errors.Is(err, ErrCycleLimit))
}

func TestMachine_String(t *testing.T) {
	assert := assert.New(t)

	m := New()
	text := m.String()
	assert.Contains(text, "pc:")
	assert.Contains(text, "r7: 11110100")
}
