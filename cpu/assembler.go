package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Assembler is a two-pass assembler for the LS-8 instruction set.
// A line carries an optional `label:`, then a mnemonic or directive
// with comma- or space-separated operands; # introduces a comment.
// Directives: `.equ NAME value` and `.byte value...`. Operands may be
// registers (r0-r7, im, is, sp), numbers, 'c' character literals,
// labels, or $(...) compile-time expressions.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	Label  map[string]int    // Map of jump labels to addresses.
	Equate map[string]string // Map of equates.
}

type asmStmt struct {
	lineno int
	line   string
	op     Op
	words  []string // operand words
	data   []string // .byte operand words
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":      "0",
	"KEY_ADDRESS": fmt.Sprintf("%#v", KEY_ADDRESS),
	"VECTOR_BASE": fmt.Sprintf("%#v", VECTOR_BASE),
	"STACK_INIT":  fmt.Sprintf("%#v", STACK_INIT),
}

// dstMap is a map of register names to register file indexes.
var dstMap = map[string]uint8{
	"r0": 0,
	"r1": 1,
	"r2": 2,
	"r3": 3,
	"r4": 4,
	"r5": 5,
	"r6": 6,
	"r7": 7,
	"im": REG_IM,
	"is": REG_IS,
	"sp": REG_SP,
}

var charRe = regexp.MustCompile(`'\\?[^']'`)
var exprRe = regexp.MustCompile(`\$\([^\$]*\)`)
var identRe = regexp.MustCompile(`^[A-Za-z_]`)

// Parse assembles a listing into a memory image for LoadBytes.
func (asm *Assembler) Parse(r io.Reader) (image []uint8, err error) {
	asm.Label = make(map[string]int, 16)
	if asm.Equate == nil {
		asm.Equate = make(map[string]string, 16)
	}
	for key, value := range sysEquate {
		if _, ok := asm.Equate[key]; !ok {
			asm.Equate[key] = value
		}
	}

	var stmts []asmStmt
	address := 0

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		raw := scanner.Text()

		var words []string
		words, err = asm.parseLine(raw, lineno, address)
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: raw, Err: err}
			return
		}
		if len(words) == 0 {
			continue
		}

		stmt := asmStmt{lineno: lineno, line: raw}
		switch {
		case words[0] == ".byte":
			stmt.data = words[1:]
			address += len(stmt.data)
		case strings.HasPrefix(words[0], "."):
			err = ErrSyntax{LineNo: lineno, Line: raw, Err: ErrDirectiveInvalid}
			return
		default:
			op, ok := opByName[strings.ToUpper(words[0])]
			if !ok {
				err = ErrSyntax{LineNo: lineno, Line: raw, Err: ErrOpcodeInvalid}
				return
			}
			stmt.op = op
			stmt.words = words[1:]
			address += 1 + operandCount(Encoding(op))
		}
		stmts = append(stmts, stmt)
	}
	if err = scanner.Err(); err != nil {
		return
	}

	if address > MEMORY_SIZE {
		err = ErrProgramTooLarge
		return
	}

	for _, stmt := range stmts {
		var code []uint8
		code, err = asm.encode(stmt)
		if err != nil {
			err = ErrSyntax{LineNo: stmt.lineno, Line: stmt.line, Err: err}
			return
		}
		image = append(image, code...)
	}

	if asm.Verbose {
		log.Printf("asm: %d bytes, %d labels", len(image), len(asm.Label))
	}

	return
}

// parseLine expands character literals, $() expressions, equates, and
// labels, and returns the remaining words of a line.
func (asm *Assembler) parseLine(line string, lineno int, address int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	if n := strings.IndexByte(line, '#'); n >= 0 {
		line = line[:n]
	}

	// Do 'x' evaluations
	line = charRe.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "e":
				str = "\033"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	line = exprRe.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#v", value)
	})
	if err != nil {
		return
	}

	line = strings.ReplaceAll(line, ",", " ")
	words = strings.Fields(line)
	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		if _, ok := asm.Equate[words[1]]; ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = nil
		return
	}

	for n, word := range words {
		if equate, ok := asm.Equate[word]; ok {
			words[n] = equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := strings.TrimSuffix(words[0], ":")
		if _, ok := asm.Label[label]; ok {
			err = ErrLabelDuplicate
			return
		}
		asm.Label[label] = address
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	return
}

// parenEval does compile-time $(...) evaluations.
func (asm *Assembler) parenEval(expr string) (value uint8, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		value8, verr := asm.valueOf(str)
		if verr != nil {
			// Non-numeric equates may name registers or labels.
			continue
		}
		pred[key] = starlark.MakeInt(int(value8))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = uint8(st_int64)
	return
}

// encode emits the bytes for one statement.
func (asm *Assembler) encode(stmt asmStmt) (image []uint8, err error) {
	if stmt.data != nil {
		for _, word := range stmt.data {
			var value uint8
			if value, err = asm.resolve(word); err != nil {
				return
			}
			image = append(image, value)
		}
		return
	}

	b := Encoding(stmt.op)
	if len(stmt.words) != operandCount(b) {
		err = ErrOperandCount
		return
	}

	image = append(image, b)
	for n, word := range stmt.words {
		var value uint8
		if n == 1 && stmt.op == OP_LDI {
			// LDI's second operand is the immediate.
			value, err = asm.resolve(word)
		} else {
			value, err = asm.register(word)
		}
		if err != nil {
			return
		}
		image = append(image, value)
	}

	return
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value uint8, err error) {
	v64, perr := strconv.ParseUint(word, 0, 8)
	if perr != nil {
		err = ErrParseNumber(word)
		return
	}

	value = uint8(v64)
	return
}

// resolve returns the value of a label or a simple word.
func (asm *Assembler) resolve(word string) (value uint8, err error) {
	if address, ok := asm.Label[word]; ok {
		value = uint8(address)
		return
	}

	value, err = asm.valueOf(word)
	if err != nil && identRe.MatchString(word) {
		err = ErrLabelMissing(word)
	}
	return
}

// register returns the register file index a word names.
func (asm *Assembler) register(word string) (index uint8, err error) {
	index, ok := dstMap[strings.ToLower(word)]
	if !ok {
		err = ErrParseRegister(word)
	}
	return
}

// Listing renders a memory image as clue payload text, one binary
// literal per line.
func Listing(image []uint8) string {
	var sb strings.Builder
	for _, b := range image {
		fmt.Fprintf(&sb, "%08b\n", b)
	}

	return sb.String()
}
