package cpu

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

// FuzzStep executes one arbitrary instruction and checks that every
// failure surfaces as a known sentinel. Panics and silent corruption
// are the bugs this hunts for.
func FuzzStep(f *testing.F) {
	for _, def := range opDefs {
		f.Add(def.code, uint8(1), uint8(2))
		f.Add(def.code, uint8(7), uint8(0xff))
	}
	f.Add(uint8(0b00001111), uint8(0), uint8(0))
	f.Add(uint8(0b11111111), uint8(0xaa), uint8(0x55))

	f.Fuzz(func(t *testing.T, b, a, c uint8) {
		assert := assert.New(t)

		m := New()
		m.Output = io.Discard
		assert.NoError(m.LoadBytes([]uint8{b, a, c}))

		done, err := m.Step()
		if err == nil {
			if !done {
				assert.GreaterOrEqual(m.Pc, 0)
				assert.Less(m.Pc, MEMORY_SIZE)
			}
			return
		}

		known := []error{
			ErrDecode,
			ErrMemoryFault,
			ErrStackFault,
			ErrRawCell,
			ErrZeroModulus,
		}
		matched := false
		for _, sentinel := range known {
			if errors.Is(err, sentinel) {
				matched = true
				break
			}
		}
		assert.True(matched, "unclassified error: %v", err)
	})
}
