package interpreter

import (
	"errors"

	"github.com/ezrec/brainfuck/program"
	"github.com/ezrec/brainfuck/translate"
)

var f = translate.From

var (
	// Interpreter errors
	ErrNoProgram  = errors.New(f("no program"))
	ErrCycleLimit = errors.New(f("cycle limit"))
	ErrIo         = errors.New(f("io"))

	// Decode errors
	ErrInstruction = errors.New(f("instruction invalid"))
	ErrJump        = errors.New(f("jump without matching bracket"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc          int
	Instruction program.Instruction
	Err         error
}

func (err *ErrRuntime) Error() string {
	return f("pc %d '%v' %v", err.Pc, err.Instruction, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
