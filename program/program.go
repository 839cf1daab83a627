package program

import (
	"io"
	"iter"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Program is a parsed, bracket-checked instruction list. It is never
// modified after Parse returns it.
type Program struct {
	code []Instruction
	jump []int // Jump target per pc, only meaningful for loop instructions.
}

// position of an instruction in the source text.
type position struct {
	lineNo int
	column int
}

// Parse converts source text to a program. Brackets must balance; on failure
// no program is returned.
func Parse(source string) (prog *Program, err error) {
	var code []Instruction
	var where []position
	var jump []int
	var stack Stack

	lineNo, column := 1, 0
	for n := 0; n < len(source); n++ {
		c := source[n]
		column++
		if c == '\n' {
			lineNo++
			column = 0
			continue
		}

		ins, ok := Decode(c)
		if !ok {
			continue
		}

		pc := len(code)
		code = append(code, ins)
		where = append(where, position{lineNo: lineNo, column: column})
		jump = append(jump, 0)

		switch ins {
		case SKIP_FORWARD:
			stack.Push(pc)
		case SKIP_BACKWARD:
			open, ok := stack.Pop()
			if !ok {
				err = ErrSyntax{LineNo: lineNo, Column: column, Err: ErrMissingOpen}
				return
			}
			jump[open] = pc + 1
			jump[pc] = open + 1
		}
	}

	if open, ok := stack.Peek(); ok {
		at := where[open]
		err = ErrSyntax{LineNo: at.lineNo, Column: at.column, Err: ErrMissingClose}
		return
	}

	prog = &Program{
		code: code,
		jump: jump,
	}

	return
}

// FromReader parses all of the text from a reader.
func FromReader(in io.Reader) (prog *Program, err error) {
	source, err := io.ReadAll(in)
	if err != nil {
		return
	}

	return Parse(string(source))
}

// FromFile parses the text of a file. Files ending in ".zst" are
// decompressed first.
func FromFile(path string) (prog *Program, err error) {
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	var in io.Reader = file
	if strings.HasSuffix(path, ".zst") {
		var decoder *zstd.Decoder
		decoder, err = zstd.NewReader(file)
		if err != nil {
			return
		}
		defer decoder.Close()
		in = decoder
	}

	return FromReader(in)
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.code)
}

// Get fetches the instruction at pc. Past the end of the program ok is false,
// which signals normal termination.
func (prog *Program) Get(pc int) (ins Instruction, ok bool) {
	if pc < 0 || pc >= len(prog.code) {
		return
	}

	return prog.code[pc], true
}

// Jump returns the pc to continue from when the loop instruction at pc is
// taken: one past the matching bracket.
func (prog *Program) Jump(pc int) (target int, ok bool) {
	ins, ok := prog.Get(pc)
	if !ok || !ins.IsJump() {
		ok = false
		return
	}

	return prog.jump[pc], true
}

// Instructions returns an iterator over the program counters and
// instructions of the program.
func (prog *Program) Instructions() iter.Seq2[int, Instruction] {
	return func(yield func(pc int, ins Instruction) bool) {
		for pc, ins := range prog.code {
			if !yield(pc, ins) {
				return
			}
		}
	}
}

// String returns the program as source text, with all comments removed.
func (prog *Program) String() string {
	var text strings.Builder
	for _, ins := range prog.code {
		text.WriteByte(byte(ins))
	}
	return text.String()
}
