package renderer

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/pipao1229/snake_go/pkg/config"
	"github.com/pipao1229/snake_go/pkg/game"
)

// TerminalRenderer draws snapshots as emoji frames
type TerminalRenderer struct {
	mu     sync.Mutex
	out    io.Writer
	board  [][]int
	buffer strings.Builder
}

// Cell types for the board
const (
	cellEmpty = iota
	cellWall
	cellHead
	cellBody
	cellFood
	cellCrash
)

// NewTerminalRenderer creates a renderer writing to out
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: out}
}

// ClearScreen clears the terminal using ANSI escape codes
func (r *TerminalRenderer) ClearScreen() {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprint(r.out, "\033[H\033[2J\033[3J")
}

// ShowCursor shows the cursor (call on exit)
func (r *TerminalRenderer) ShowCursor() {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprint(r.out, "\033[?25h")
}

// HideCursor hides the cursor (call on start)
func (r *TerminalRenderer) HideCursor() {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprint(r.out, "\033[?25l")
}

// Render redraws the whole screen from a snapshot
func (r *TerminalRenderer) Render(snap game.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	frame := r.frameLocked(snap)
	fmt.Fprint(r.out, "\033[H\033[2J"+frame)
}

// Frame returns the text of one frame without touching the terminal
func (r *TerminalRenderer) Frame(snap game.Snapshot) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frameLocked(snap)
}

// ensureBoard sizes the board to the playfield plus a wall ring
func (r *TerminalRenderer) ensureBoard(width, height int) {
	if len(r.board) == height && (height == 0 || len(r.board[0]) == width) {
		return
	}
	r.board = make([][]int, height)
	for i := range r.board {
		r.board[i] = make([]int, width)
	}
}

func (r *TerminalRenderer) frameLocked(snap game.Snapshot) string {
	grid := game.Grid{Width: snap.Width, Height: snap.Height, CellSize: snap.CellSize}
	width, height := grid.Cols()+2, grid.Rows()+2
	r.ensureBoard(width, height)
	r.buffer.Reset()

	for y := range r.board {
		for x := range r.board[y] {
			r.board[y][x] = cellEmpty
		}
	}

	// Draw walls
	for x := 0; x < width; x++ {
		r.board[0][x] = cellWall
		r.board[height-1][x] = cellWall
	}
	for y := 0; y < height; y++ {
		r.board[y][0] = cellWall
		r.board[y][width-1] = cellWall
	}

	// Playfield cells are shifted by one for the wall ring
	set := func(c game.Cell, kind int) {
		x, y := c.Col+1, c.Row+1
		if x >= 0 && x < width && y >= 0 && y < height {
			r.board[y][x] = kind
		}
	}

	set(snap.Food, cellFood)
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			set(snap.Snake[i], cellHead)
		} else {
			set(snap.Snake[i], cellBody)
		}
	}
	if snap.Crash != nil {
		set(*snap.Crash, cellCrash)
	}

	r.buffer.WriteString("\n  🐍 SNAKE GAME 🐍\n")
	r.buffer.WriteString(fmt.Sprintf("  Score: %d  |  Length: %d\n\n", snap.Score, len(snap.Snake)))

	for _, row := range r.board {
		r.buffer.WriteString("  ")
		for _, cell := range row {
			switch cell {
			case cellEmpty:
				r.buffer.WriteString(config.CharEmpty)
			case cellWall:
				r.buffer.WriteString(config.CharWall)
			case cellHead:
				r.buffer.WriteString(config.CharHead)
			case cellBody:
				r.buffer.WriteString(config.CharBody)
			case cellFood:
				r.buffer.WriteString(config.CharFood)
			case cellCrash:
				r.buffer.WriteString(config.CharCrash)
			}
		}
		r.buffer.WriteString("\n")
	}

	r.buffer.WriteString("\n  Use WASD or Arrow keys to move, Q to quit\n")

	switch {
	case snap.GameOver():
		r.buffer.WriteString(fmt.Sprintf("\n  💀 GAME OVER! Score: %d. Press R to play again or Q to quit\n", snap.Score))
	case snap.Direction == game.DirNone:
		r.buffer.WriteString("\n  Press a direction key to start\n")
	}

	return r.buffer.String()
}
