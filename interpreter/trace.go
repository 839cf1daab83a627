package interpreter

import (
	"iter"

	"github.com/ezrec/brainfuck/program"
)

// Trace is an observation of the interpreter taken after a step.
type Trace struct {
	At          int                 // Program counter of the executed instruction.
	Instruction program.Instruction // Executed instruction.
	Pc          int                 // Program counter of the next instruction.
	Cycles      int                 // Instructions executed so far.
	Pointer     int                 // Tape pointer.
	Cell        byte                // Cell under the tape pointer.
}

// Vars returns an iterator over the trace fields, by lower case name.
// Integers are yielded as int, and the instruction as its source text.
func (trace Trace) Vars() iter.Seq2[string, any] {
	return func(yield func(name string, value any) bool) {
		vars := []struct {
			name  string
			value any
		}{
			{"at", trace.At},
			{"op", trace.Instruction.String()},
			{"pc", trace.Pc},
			{"cycles", trace.Cycles},
			{"ptr", trace.Pointer},
			{"cell", int(trace.Cell)},
		}
		for _, v := range vars {
			if !yield(v.name, v.value) {
				return
			}
		}
	}
}
