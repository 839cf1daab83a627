package tape

import (
	"fmt"
)

const (
	TAPE_LENGTH = 30000 // Number of cells on a tape.
)

// Tape is the capability set shared by all tape storages.
type Tape interface {
	// Current returns the cell under the pointer.
	Current() byte
	// Set replaces the cell under the pointer.
	Set(value byte)
	// Increment adds one to the cell under the pointer, wrapping at 256.
	Increment()
	// Decrement subtracts one from the cell under the pointer, wrapping at 0.
	Decrement()
	// Advance moves the pointer one cell up.
	Advance() error
	// Retreat moves the pointer one cell down.
	Retreat() error
	// Pointer returns the index of the current cell.
	Pointer() int
	// Reset zeros all cells and returns the pointer to cell 0.
	Reset()
}

// Storage selects a tape implementation.
type Storage int

const (
	STORAGE_STATIC  = Storage(0) // static
	STORAGE_DYNAMIC = Storage(1) // dynamic
)

func (s Storage) String() string {
	switch s {
	case STORAGE_STATIC:
		return "static"
	case STORAGE_DYNAMIC:
		return "dynamic"
	default:
		return fmt.Sprintf("Storage(%d)", int(s))
	}
}

// ParseStorage converts a storage name back to a Storage.
func ParseStorage(name string) (storage Storage, err error) {
	switch name {
	case "static":
		storage = STORAGE_STATIC
	case "dynamic":
		storage = STORAGE_DYNAMIC
	default:
		err = fmt.Errorf("%w: %q", ErrStorage, name)
	}
	return
}

// New creates an empty tape with the requested storage.
func New(storage Storage) (tape Tape) {
	switch storage {
	case STORAGE_DYNAMIC:
		tape = NewSliceTape()
	default:
		tape = NewArrayTape()
	}

	return
}
