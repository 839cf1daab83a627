package interpreter

import (
	"github.com/ezrec/brainfuck/io"
	"github.com/ezrec/brainfuck/program"
	"github.com/ezrec/brainfuck/tape"
)

// Eval runs a program on a dynamic tape. A nil input is an empty stream, and
// a nil output discards everything written.
func Eval(prog *program.Program, input io.Source, output io.Sink) (err error) {
	in := NewInterpreter(prog, tape.STORAGE_DYNAMIC)
	if input != nil {
		in.Input = input
	}
	if output != nil {
		in.Output = output
	}

	return in.Run()
}

// EvalString parses source text and runs it.
func EvalString(source string, input io.Source, output io.Sink) (err error) {
	prog, err := program.Parse(source)
	if err != nil {
		return
	}

	return Eval(prog, input, output)
}

// EvalFile parses the program in a file and runs it.
func EvalFile(path string, input io.Source, output io.Sink) (err error) {
	prog, err := program.FromFile(path)
	if err != nil {
		return
	}

	return Eval(prog, input, output)
}
