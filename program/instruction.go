package program

// Instruction is one of the eight language instructions. Its value is the
// source character that denotes it.
type Instruction byte

const (
	INC_PTR       = Instruction('>') // Move the pointer one cell up.
	DEC_PTR       = Instruction('<') // Move the pointer one cell down.
	INC_VAL       = Instruction('+') // Increment the current cell.
	DEC_VAL       = Instruction('-') // Decrement the current cell.
	OUTPUT        = Instruction('.') // Write the current cell.
	INPUT         = Instruction(',') // Read into the current cell.
	SKIP_FORWARD  = Instruction('[') // Jump past the matching ']' if the cell is zero.
	SKIP_BACKWARD = Instruction(']') // Jump back into the loop if the cell is not zero.
)

// InstructionSet lists every instruction, in the order of the
// language description.
var InstructionSet = []Instruction{
	INC_PTR, DEC_PTR, INC_VAL, DEC_VAL, OUTPUT, INPUT, SKIP_FORWARD, SKIP_BACKWARD,
}

// Decode returns the instruction for a source character. Comment characters
// return ok == false.
func Decode(c byte) (ins Instruction, ok bool) {
	switch Instruction(c) {
	case INC_PTR, DEC_PTR, INC_VAL, DEC_VAL, OUTPUT, INPUT, SKIP_FORWARD, SKIP_BACKWARD:
		ins = Instruction(c)
		ok = true
	}
	return
}

// IsJump is true for the two loop instructions.
func (ins Instruction) IsJump() bool {
	return ins == SKIP_FORWARD || ins == SKIP_BACKWARD
}

func (ins Instruction) String() string {
	if _, ok := Decode(byte(ins)); !ok {
		return f("Instruction(%d)", int(ins))
	}
	return string(rune(ins))
}
