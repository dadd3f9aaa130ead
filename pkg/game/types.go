package game

import "fmt"

// Cell is a board position in grid units
type Cell struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Add returns the cell offset by the direction's unit vector
func (c Cell) Add(d Direction) Cell {
	dc, dr := d.Delta()
	return Cell{Col: c.Col + dc, Row: c.Row + dr}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Direction is the snake's heading
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit vector of the direction. Rows grow downward.
func (d Direction) Delta() (dc, dr int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reverse heading. DirNone has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirNone
}

// Valid reports whether d is one of the four movement directions
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirNone:
		return "none"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Status is the state machine state of a game
type Status int

const (
	StatusActive Status = iota
	StatusGameOver
)

func (s Status) String() string {
	if s == StatusGameOver {
		return "game_over"
	}
	return "active"
}

// Snapshot is a read-only copy of the game handed to renderers
type Snapshot struct {
	Snake     []Cell    `json:"snake"` // Head first
	Food      Cell      `json:"food"`
	Score     int       `json:"score"`
	Status    Status    `json:"status"`
	Direction Direction `json:"direction"`
	CellSize  int       `json:"cellSize"`
	Width     int       `json:"width"`  // Board width in pixels
	Height    int       `json:"height"` // Board height in pixels
	Tick      uint64    `json:"tick"`
	Crash     *Cell     `json:"crash,omitempty"` // Where the head went when the game ended
}

// Head returns the first snake cell
func (s Snapshot) Head() Cell {
	return s.Snake[0]
}

// GameOver reports whether the snapshot was taken after the game ended
func (s Snapshot) GameOver() bool {
	return s.Status == StatusGameOver
}
