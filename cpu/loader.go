package cpu

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Load parses a clue payload: one binary literal of up to 8 digits per
// line, with #-introduced comments stripped and blank lines skipped.
// Parsed bytes land at consecutive addresses starting at 0. Nothing is
// written to memory unless the whole payload parses.
func (m *Machine) Load(r io.Reader) (err error) {
	var image []uint8
	lineno := 0

	lines := bufio.NewScanner(r)
	for lines.Scan() {
		lineno++
		line := lines.Text()
		if n := strings.IndexByte(line, '#'); n >= 0 {
			line = line[:n]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		value, perr := strconv.ParseUint(line, 2, 8)
		if perr != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: ErrInvalidEncoding}
			return
		}
		image = append(image, uint8(value))
	}
	if err = lines.Err(); err != nil {
		return
	}

	err = m.LoadBytes(image)
	return
}

// LoadBytes writes an assembled image to consecutive memory addresses
// starting at 0.
func (m *Machine) LoadBytes(image []uint8) (err error) {
	if len(image) > MEMORY_SIZE {
		err = ErrProgramTooLarge
		return
	}

	for n, b := range image {
		if err = m.Mem.Write(n, ByteCell(b)); err != nil {
			return
		}
	}

	return
}
