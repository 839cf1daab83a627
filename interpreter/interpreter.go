// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package interpreter

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/brainfuck/io"
	"github.com/ezrec/brainfuck/program"
	"github.com/ezrec/brainfuck/tape"
)

const (
	CYCLE_LIMIT = 10_000_000 // Instructions a run may execute.
)

var _interpreter_defines = map[string]string{
	"TAPE_LENGTH": fmt.Sprintf("%v", tape.TAPE_LENGTH),
	"CYCLE_LIMIT": fmt.Sprintf("%v", CYCLE_LIMIT),
}

// Interpreter state. Program + Tape + IO endpoints.
type Interpreter struct {
	Verbose bool             // If set, enables verbose logging.
	Program *program.Program // Program being executed.
	Tape    tape.Tape        // Data tape.
	Input   io.Source        // Source for ',' instructions.
	Output  io.Sink          // Sink for '.' instructions.

	CycleLimit int // Maximum executed instructions; CYCLE_LIMIT if zero.

	Pc     int // Program counter.
	Cycles int // Executed instruction counter.

	state State
	err   error
	trace Trace
}

// NewInterpreter creates an interpreter for a program, with an empty tape of
// the requested storage. Input starts exhausted and output is discarded until
// the caller binds endpoints.
func NewInterpreter(prog *program.Program, storage tape.Storage) (in *Interpreter) {
	in = &Interpreter{
		Program: prog,
		Tape:    tape.New(storage),
		Input:   &io.Port{},
		Output:  &io.Port{},
	}

	return
}

// Defines returns an iterator over the interpreter constants.
func (in *Interpreter) Defines() iter.Seq2[string, string] {
	return maps.All(_interpreter_defines)
}

// Load replaces the program and resets the interpreter.
func (in *Interpreter) Load(prog *program.Program) {
	in.Program = prog
	in.Reset()
}

// Reset the interpreter to run the program again from the start, with an
// empty tape.
func (in *Interpreter) Reset() {
	if in.Verbose {
		log.Printf("interpreter: reset")
	}

	in.Pc = 0
	in.Cycles = 0
	in.state = READY
	in.err = nil
	in.trace = Trace{}
	if in.Tape != nil {
		in.Tape.Reset()
	}
}

// State returns the current run state.
func (in *Interpreter) State() State {
	return in.state
}

// Err returns the error that failed the run, if any.
func (in *Interpreter) Err() error {
	return in.err
}

// Trace returns the observation taken after the most recent step.
func (in *Interpreter) Trace() Trace {
	return in.trace
}

func (in *Interpreter) limit() int {
	if in.CycleLimit > 0 {
		return in.CycleLimit
	}
	return CYCLE_LIMIT
}

// Step executes a single instruction. done is set once the program has run
// past its last instruction, or a step has failed.
func (in *Interpreter) Step() (done bool, err error) {
	switch in.state {
	case HALTED:
		done = true
		return
	case FAILED:
		done = true
		err = in.err
		return
	}

	if in.Program == nil {
		err = ErrNoProgram
		in.fail(err)
		done = true
		return
	}

	pc := in.Pc
	ins, ok := in.Program.Get(pc)

	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, Instruction: ins, Err: err}
			in.fail(err)
			done = true
		}
	}()

	// Checked ahead of the end of program, so a run that uses up the
	// ceiling fails even when nothing is left to execute.
	if in.Cycles >= in.limit() {
		err = ErrCycleLimit
		return
	}

	if !ok {
		in.state = HALTED
		if in.Verbose {
			log.Printf("interpreter: halted after %d cycles", in.Cycles)
		}
		done = true
		return
	}

	in.state = RUNNING
	in.Cycles++

	err = in.Execute(ins)
	if err != nil {
		return
	}

	in.trace = Trace{
		At:          pc,
		Instruction: ins,
		Pc:          in.Pc,
		Cycles:      in.Cycles,
		Pointer:     in.Tape.Pointer(),
		Cell:        in.Tape.Current(),
	}

	if in.Verbose {
		log.Printf("%05d: %v ptr=%d cell=%d", pc, ins, in.trace.Pointer, in.trace.Cell)
	}

	return
}

// Execute applies one instruction at the current program counter, and
// advances the program counter.
func (in *Interpreter) Execute(ins program.Instruction) (err error) {
	if in.Program == nil {
		err = ErrNoProgram
		return
	}
	if in.Tape == nil {
		in.Tape = tape.New(tape.STORAGE_STATIC)
	}

	t := in.Tape

	switch ins {
	case program.INC_PTR:
		err = t.Advance()
	case program.DEC_PTR:
		err = t.Retreat()
	case program.INC_VAL:
		t.Increment()
	case program.DEC_VAL:
		t.Decrement()
	case program.OUTPUT:
		err = in.write(t.Current())
	case program.INPUT:
		var value byte
		value, err = in.read()
		if err == nil {
			t.Set(value)
		}
	case program.SKIP_FORWARD:
		if t.Current() == 0 {
			err = in.jump(ins)
			return
		}
	case program.SKIP_BACKWARD:
		if t.Current() != 0 {
			err = in.jump(ins)
			return
		}
	default:
		err = fmt.Errorf("%w: %v", ErrInstruction, ins)
	}

	if err != nil {
		return
	}

	in.Pc++
	return
}

// jump moves the program counter past the bracket matching the one at pc.
func (in *Interpreter) jump(ins program.Instruction) (err error) {
	at, _ := in.Program.Get(in.Pc)
	target, ok := in.Program.Jump(in.Pc)
	if !ok || at != ins {
		err = fmt.Errorf("%w: %v at pc %d holds %v", ErrJump, ins, in.Pc, at)
		return
	}

	in.Pc = target
	return
}

func (in *Interpreter) read() (value byte, err error) {
	if in.Input == nil {
		in.Input = &io.Port{}
	}

	value, err = in.Input.ReadByte()
	if err != nil {
		err = errors.Join(ErrIo, err)
	}

	return
}

func (in *Interpreter) write(value byte) (err error) {
	if in.Output == nil {
		return
	}

	err = in.Output.WriteByte(value)
	if err != nil {
		err = errors.Join(ErrIo, err)
	}

	return
}

func (in *Interpreter) fail(err error) {
	in.state = FAILED
	in.err = err
	if in.Verbose {
		log.Printf("interpreter: %v", err)
	}
}

// Run steps the interpreter until the program halts or fails.
func (in *Interpreter) Run() error {
	return in.RunWithCallback(nil)
}

// RunWithCallback steps the interpreter until the program halts or fails,
// calling hook with a Trace after every successful step. If hook returns
// false the run stops early without error, and can be resumed.
func (in *Interpreter) RunWithCallback(hook func(trace Trace) bool) (err error) {
	for {
		var done bool
		done, err = in.Step()
		if done || err != nil {
			return
		}
		if hook != nil && !hook(in.trace) {
			if in.Verbose {
				log.Printf("interpreter: stopped by callback at pc %d", in.Pc)
			}
			return
		}
	}
}
