package game

// Snake is the ordered body of the snake, head first
type Snake struct {
	Body []Cell
}

// NewSnake creates a one-cell snake
func NewSnake(head Cell) *Snake {
	return &Snake{Body: []Cell{head}}
}

func (s *Snake) Head() Cell {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// HitsBody reports whether c is on the body, the head excluded
func (s *Snake) HitsBody(c Cell) bool {
	for _, b := range s.Body[1:] {
		if b == c {
			return true
		}
	}
	return false
}

// Advance moves the head to c. When grow is false the tail is dropped
// so the length stays the same.
func (s *Snake) Advance(c Cell, grow bool) {
	s.Body = append([]Cell{c}, s.Body...)
	if !grow {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Occupied returns the body as a set
func (s *Snake) Occupied() map[Cell]struct{} {
	set := make(map[Cell]struct{}, len(s.Body))
	for _, c := range s.Body {
		set[c] = struct{}{}
	}
	return set
}

// Cells returns a copy of the body
func (s *Snake) Cells() []Cell {
	out := make([]Cell, len(s.Body))
	copy(out, s.Body)
	return out
}
