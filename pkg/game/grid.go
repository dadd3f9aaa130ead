package game

import "fmt"

// Grid maps a pixel board onto discrete cells
type Grid struct {
	Width    int // Pixels
	Height   int // Pixels
	CellSize int // Pixels per cell
}

// NewGrid validates the board dimensions
func NewGrid(width, height, cellSize int) (Grid, error) {
	if cellSize <= 0 {
		return Grid{}, fmt.Errorf("invalid cell size %d", cellSize)
	}
	if width < cellSize || height < cellSize {
		return Grid{}, fmt.Errorf("board %dx%d cannot hold a %d cell", width, height, cellSize)
	}
	return Grid{Width: width, Height: height, CellSize: cellSize}, nil
}

// Bounds returns the largest valid column and row
func (g Grid) Bounds() (maxCol, maxRow int) {
	return (g.Width - g.CellSize) / g.CellSize, (g.Height - g.CellSize) / g.CellSize
}

// Cols and Rows count the playable cells on each axis
func (g Grid) Cols() int {
	maxCol, _ := g.Bounds()
	return maxCol + 1
}

func (g Grid) Rows() int {
	_, maxRow := g.Bounds()
	return maxRow + 1
}

// Center is where a new snake starts
func (g Grid) Center() Cell {
	return Cell{Col: g.Width / g.CellSize / 2, Row: g.Height / g.CellSize / 2}
}

// Contains reports whether the cell lies fully on the board. In pixels a
// cell is out when x < 0 or x > width - cellSize, the same rule as Bounds.
func (g Grid) Contains(c Cell) bool {
	maxCol, maxRow := g.Bounds()
	return c.Col >= 0 && c.Col <= maxCol && c.Row >= 0 && c.Row <= maxRow
}

// Pixel returns the top-left pixel of a cell
func (g Grid) Pixel(c Cell) (x, y int) {
	return c.Col * g.CellSize, c.Row * g.CellSize
}

// CellAt returns the cell containing a pixel
func (g Grid) CellAt(x, y int) Cell {
	return Cell{Col: floorDiv(x, g.CellSize), Row: floorDiv(y, g.CellSize)}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
