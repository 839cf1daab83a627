package tape

// ArrayTape keeps every cell in a statically sized array.
type ArrayTape struct {
	cells [TAPE_LENGTH]byte
	ptr   int
}

var _ Tape = (*ArrayTape)(nil)

// NewArrayTape creates a zeroed array tape.
func NewArrayTape() *ArrayTape {
	return &ArrayTape{}
}

func (at *ArrayTape) Current() byte {
	return at.cells[at.ptr]
}

func (at *ArrayTape) Set(value byte) {
	at.cells[at.ptr] = value
}

func (at *ArrayTape) Increment() {
	at.cells[at.ptr]++
}

func (at *ArrayTape) Decrement() {
	at.cells[at.ptr]--
}

func (at *ArrayTape) Advance() (err error) {
	if at.ptr+1 >= TAPE_LENGTH {
		err = ErrOverflow
		return
	}

	at.ptr++
	return
}

func (at *ArrayTape) Retreat() (err error) {
	if at.ptr == 0 {
		err = ErrOverflow
		return
	}

	at.ptr--
	return
}

func (at *ArrayTape) Pointer() int {
	return at.ptr
}

func (at *ArrayTape) Reset() {
	clear(at.cells[:])
	at.ptr = 0
}
