package cpu

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishingwell/ls8/console"
)

// steppingClock advances a fixed amount on every reading.
func steppingClock(step time.Duration) func() time.Time {
	now := time.Unix(0, 0)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func TestInterrupt_Timer(t *testing.T) {
	assert := assert.New(t)

	m := testMachine(t, `
		LDI r0, VECTOR_BASE
		LDI r1, handler
		ST r0, r1
		LDI im, 1
	spin:
		LDI r2, spin
		JMP r2
	handler:
		LDI r3, 'T'
		PRA r3
		LDI r4, 0xFF
		JMP r4
	`)
	m.Clock = steppingClock(100 * time.Millisecond)

	output, err := m.Run()
	assert.NoError(err)
	assert.Equal("T", output)

	// The service sequence zeroed the registers the handler left
	// untouched.
	assert.Equal(uint8(0), m.Reg[0])
	assert.Equal(uint8(0), m.Reg[1])
	assert.Equal(uint8(0), m.Reg[2])
}

func TestInterrupt_Keyboard(t *testing.T) {
	assert := assert.New(t)

	m := testMachine(t, `
		LDI r0, $(VECTOR_BASE + 1)
		LDI r1, handler
		ST r0, r1
		LDI im, 2
	spin:
		LDI r2, spin
		JMP r2
	handler:
		LDI r0, KEY_ADDRESS
		LD r1, r0
		PRA r1
		LDI r2, 0xFF
		JMP r2
	`)
	m.Keyboard = &console.Buffer{Keys: []uint8{'K'}}

	output, err := m.Run()
	assert.NoError(err)
	assert.Equal("K", output)
}

// With IM = 0 no interrupt is ever serviced, regardless of pending
// status, elapsed time, or keyboard activity.
func TestInterrupt_Masked(t *testing.T) {
	assert := assert.New(t)

	m := testMachine(t, `
		LDI r0, 'A'
		PRA r0
	`)
	m.Clock = steppingClock(2 * time.Second)
	m.Keyboard = &console.Buffer{Keys: []uint8{'z'}}

	output, err := m.Run()
	assert.NoError(err)
	assert.Equal("A", output)
	// The lines went pending; nothing serviced them.
	assert.NotZero(m.Reg[REG_IS] & 0b11)
}

// IRET resumes the interrupted program with its state intact.
func TestInterrupt_TimerResume(t *testing.T) {
	assert := assert.New(t)

	m := testMachine(t, `
		LDI r0, VECTOR_BASE
		LDI r1, handler
		ST r0, r1
		LDI im, 1
		LDI r0, 0xE0    # flag cell, cleared before the wait loop
		LDI r1, 0
		ST r0, r1
	wait:
		LD r1, r0
		LDI r2, 1
		CMP r1, r2
		LDI r3, done
		JEQ r3
		LDI r3, wait
		JMP r3
	done:
		LDI r4, 'D'
		PRA r4
		LDI r4, 0xFF
		JMP r4
	handler:
		LDI r0, 'I'
		PRA r0
		LDI r0, 0xE0
		LDI r1, 1
		ST r0, r1
		IRET
	`)
	m.Clock = steppingClock(100 * time.Millisecond)

	output, err := m.Run()
	assert.NoError(err)
	assert.Equal("ID", output)
}

// A software INT vectors through the table and IRET resumes after it.
func TestInterrupt_SoftwareInt(t *testing.T) {
	assert := assert.New(t)

	_, output := runProgram(t, `
		LDI r0, $(VECTOR_BASE + 2)
		LDI r1, handler
		ST r0, r1
		LDI r2, 2
		INT r2
		LDI r3, 'b'
		PRA r3
		LDI r4, 0xFF
		JMP r4
	handler:
		LDI r0, 'a'
		PRA r0
		IRET
	`)
	assert.Equal("ab", output)
}

// State observed before service equals state restored by iret.
func TestServiceIret_Restores(t *testing.T) {
	assert := assert.New(t)

	m := New()
	require.NoError(t, m.Mem.Write(VECTOR_BASE+3, ByteCell(0x40)))
	m.Reg = Registers{1, 2, 3, 4, 5, 6, 7, STACK_INIT}
	m.Fl = FL_GREATER
	m.Pc = 0x21
	snapshot := m.Reg

	require.NoError(t, m.service(3, 0x21))
	assert.Equal(0x40, m.Pc)
	assert.False(m.intEnabled)
	assert.Equal(uint8(STACK_INIT-9), m.Reg[REG_SP])
	for n := 0; n < REG_SP; n++ {
		assert.Equal(uint8(0), m.Reg[n], "r%d", n)
	}

	require.NoError(t, m.iret())
	assert.Equal(snapshot, m.Reg)
	assert.Equal(FL_GREATER, m.Fl)
	assert.Equal(0x21, m.Pc)
	assert.True(m.intEnabled)
}

// ESC cancels the run without an error, returning whatever the
// accumulator holds.
func TestInterrupt_Cancel(t *testing.T) {
	assert := assert.New(t)

	m := testMachine(t, `
	spin:
		LDI r0, spin
		JMP r0
	`)
	m.Keyboard = &console.Buffer{Keys: []uint8{'x', CANCEL_KEY}}

	output, err := m.Run()
	assert.NoError(err)
	assert.Equal("", output)
}
