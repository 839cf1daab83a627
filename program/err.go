package program

import (
	"errors"

	"github.com/ezrec/brainfuck/translate"
)

var f = translate.From

var (
	// Parse errors
	ErrParse        = errors.New(f("parse"))
	ErrMissingOpen  = errors.New(f("']' without matching '['"))
	ErrMissingClose = errors.New(f("'[' without matching ']'"))
)

// ErrSyntax locates a parse failure in the source text.
type ErrSyntax struct {
	LineNo int
	Column int
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d column %d %v", err.LineNo, err.Column, err.Err)
}

func (err ErrSyntax) Unwrap() []error {
	return []error{ErrParse, err.Err}
}
