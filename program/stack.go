package program

// Stack holds the instruction indexes of the '[' still waiting for a ']'.
type Stack struct {
	Data []int
}

func (s *Stack) Push(value int) {
	s.Data = append(s.Data, value)
}

func (s *Stack) Pop() (value int, ok bool) {
	value, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Peek() (value int, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}
