package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	var m Memory
	cell, err := m.Read(0)
	assert.NoError(err)
	assert.Equal(CELL_RAW, cell.Kind)

	assert.NoError(m.Write(0x10, ByteCell(0x42)))
	value, err := m.ReadByte(0x10)
	assert.NoError(err)
	assert.Equal(uint8(0x42), value)

	assert.NoError(m.Write(0xFF, RawCell(300)))
	cell, err = m.Read(0xFF)
	assert.NoError(err)
	assert.Equal(300, cell.Value())
}

func TestMemory_Fault(t *testing.T) {
	assert := assert.New(t)

	var m Memory
	_, err := m.Read(256)
	assert.True(errors.Is(err, ErrMemoryFault))
	_, err = m.Read(-1)
	assert.True(errors.Is(err, ErrMemoryFault))
	err = m.Write(1000, ByteCell(0))
	assert.True(errors.Is(err, ErrMemoryFault))
}

func TestMemory_ReadByte_Raw(t *testing.T) {
	assert := assert.New(t)

	var m Memory
	assert.NoError(m.Write(3, RawCell(7)))
	_, err := m.ReadByte(3)
	assert.True(errors.Is(err, ErrRawCell))
}
