package interpreter

import (
	"fmt"
)

// State of an interpreter run.
type State int

const (
	READY   = State(0) // Program loaded, pc at 0.
	RUNNING = State(1) // At least one instruction executed.
	HALTED  = State(2) // Ran past the end of the program.
	FAILED  = State(3) // Stopped by an error.
)

func (s State) String() string {
	switch s {
	case READY:
		return "ready"
	case RUNNING:
		return "running"
	case HALTED:
		return "halted"
	case FAILED:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal is true once no further step can change the outcome.
func (s State) Terminal() bool {
	return s == HALTED || s == FAILED
}
