// Package tape implements the bounded byte memory of the interpreter.
//
// A tape is TAPE_LENGTH cells of one byte each, with a single pointer that
// starts at cell 0. Cell values wrap modulo 256 on increment and decrement.
// The pointer never wraps: moving it below cell 0 or past the last cell fails
// with ErrOverflow and leaves the tape untouched.
//
// Two storage strategies are provided. ArrayTape holds every cell in a fixed
// array, and SliceTape allocates cells on demand as the pointer advances.
// Both behave identically through the Tape interface.
package tape
