package tape

// SliceTape allocates cells as the pointer first reaches them. Its length
// never exceeds TAPE_LENGTH, so it is indistinguishable from ArrayTape.
type SliceTape struct {
	cells []byte
	ptr   int
}

var _ Tape = (*SliceTape)(nil)

// NewSliceTape creates a slice tape holding only cell 0.
func NewSliceTape() *SliceTape {
	return &SliceTape{
		cells: make([]byte, 1),
	}
}

func (st *SliceTape) Current() byte {
	return st.cells[st.ptr]
}

func (st *SliceTape) Set(value byte) {
	st.cells[st.ptr] = value
}

func (st *SliceTape) Increment() {
	st.cells[st.ptr]++
}

func (st *SliceTape) Decrement() {
	st.cells[st.ptr]--
}

func (st *SliceTape) Advance() (err error) {
	next := st.ptr + 1
	if next >= TAPE_LENGTH {
		err = ErrOverflow
		return
	}

	if next == len(st.cells) {
		st.cells = append(st.cells, 0)
	}
	st.ptr = next
	return
}

func (st *SliceTape) Retreat() (err error) {
	if st.ptr == 0 {
		err = ErrOverflow
		return
	}

	st.ptr--
	return
}

func (st *SliceTape) Pointer() int {
	return st.ptr
}

// Reset releases all but the first cell.
func (st *SliceTape) Reset() {
	st.cells = st.cells[:1]
	st.cells[0] = 0
	st.ptr = 0
}
