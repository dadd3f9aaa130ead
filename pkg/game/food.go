package game

import (
	"errors"
	"time"

	"golang.org/x/exp/rand"

	"github.com/pipao1229/snake_go/pkg/config"
)

// ErrNoSpaceAvailable means every cell of the board is occupied
var ErrNoSpaceAvailable = errors.New("no free cell for food")

// Spawner picks the next food cell
type Spawner interface {
	Spawn(grid Grid, occupied map[Cell]struct{}) (Cell, error)
}

// FoodSpawner draws food cells uniformly at random
type FoodSpawner struct {
	rng         *rand.Rand
	maxAttempts int
}

// NewFoodSpawner creates a spawner. A zero seed uses the clock.
func NewFoodSpawner(seed uint64) *FoodSpawner {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &FoodSpawner{
		rng:         rand.New(rand.NewSource(seed)),
		maxAttempts: config.MaxSpawnAttempts,
	}
}

// Spawn returns a random cell of the grid that is not in occupied.
// Random draws are capped; after the cap the board is swept in order
// and ErrNoSpaceAvailable is returned only when no cell is free.
func (s *FoodSpawner) Spawn(grid Grid, occupied map[Cell]struct{}) (Cell, error) {
	maxCol, maxRow := grid.Bounds()

	for attempts := 0; attempts < s.maxAttempts; attempts++ {
		c := Cell{
			Col: s.rng.Intn(maxCol + 1),
			Row: s.rng.Intn(maxRow + 1),
		}
		if _, taken := occupied[c]; !taken {
			return c, nil
		}
	}

	// Crowded board: collect what is left and pick one of those
	var free []Cell
	for row := 0; row <= maxRow; row++ {
		for col := 0; col <= maxCol; col++ {
			c := Cell{Col: col, Row: row}
			if _, taken := occupied[c]; !taken {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return Cell{}, ErrNoSpaceAvailable
	}
	return free[s.rng.Intn(len(free))], nil
}
