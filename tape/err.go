package tape

import (
	"errors"

	"github.com/ezrec/brainfuck/translate"
)

var f = translate.From

var (
	// Tape errors
	ErrOverflow = errors.New(f("tape pointer overflow"))
	ErrStorage  = errors.New(f("tape storage unknown"))
)
