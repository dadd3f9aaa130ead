package game

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Options configures a Controller. Zero values pick the defaults.
type Options struct {
	Spawner  Spawner      // Defaults to a FoodSpawner seeded with Seed
	Seed     uint64       // Food RNG seed, 0 means time based
	Observer Observer     // Receives score, game over and state notifications
	Logger   *slog.Logger // Defaults to discarding
}

// StepResult is what one tick produced
type StepResult struct {
	Events   []Event
	Snapshot Snapshot
}

// Controller owns the game state and advances it one tick at a time.
// It is safe for concurrent use; observers are called without the lock
// held, so they may call back into the controller.
type Controller struct {
	mu sync.Mutex

	grid   Grid
	snake  *Snake
	food   Cell
	score  int
	dir    Direction
	status Status
	tick   uint64
	crash  *Cell

	spawner  Spawner
	observer Observer
	log      *slog.Logger
}

// New creates a game with a centered one-cell snake and one food
func New(grid Grid, opts Options) (*Controller, error) {
	if _, err := NewGrid(grid.Width, grid.Height, grid.CellSize); err != nil {
		return nil, err
	}
	c := &Controller{
		grid:     grid,
		spawner:  opts.Spawner,
		observer: opts.Observer,
		log:      opts.Logger,
	}
	if c.spawner == nil {
		c.spawner = NewFoodSpawner(opts.Seed)
	}
	if c.observer == nil {
		c.observer = Nop
	}
	if c.log == nil {
		c.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c.mu.Lock()
	err := c.resetLocked()
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Step advances the simulation by one tick. It is a no-op unless the
// game is active and a direction is set. The returned error is non-nil
// only when food could not be respawned; the game is over in that case.
func (c *Controller) Step() (StepResult, error) {
	c.mu.Lock()
	events, err := c.stepLocked()
	snap := c.snapshotLocked()
	c.mu.Unlock()

	Dispatch(c.observer, events)
	return StepResult{Events: events, Snapshot: snap}, err
}

func (c *Controller) stepLocked() ([]Event, error) {
	if c.status != StatusActive || c.dir == DirNone {
		return nil, nil
	}
	c.tick++

	newHead := c.snake.Head().Add(c.dir)
	if !c.grid.Contains(newHead) {
		return c.endLocked(&newHead, "wall"), nil
	}
	if c.snake.HitsBody(newHead) {
		return c.endLocked(&newHead, "self"), nil
	}

	ate := newHead == c.food
	c.snake.Advance(newHead, ate)

	var events []Event
	if ate {
		c.score++
		events = append(events, Event{Kind: EventScoreChanged, Score: c.score})

		food, err := c.spawner.Spawn(c.grid, c.snake.Occupied())
		if err != nil {
			c.log.Error("food respawn failed", "err", err, "length", c.snake.Len())
			events = append(events, c.endLocked(nil, "board full")...)
			return events, fmt.Errorf("respawn food: %w", err)
		}
		c.food = food
	}

	events = append(events, Event{Kind: EventStateChanged, Score: c.score, Snapshot: c.snapshotLocked()})
	return events, nil
}

// endLocked moves the game to GameOver and returns the single game over event
func (c *Controller) endLocked(crash *Cell, reason string) []Event {
	c.status = StatusGameOver
	c.dir = DirNone
	c.crash = crash
	c.log.Info("game over", "reason", reason, "score", c.score, "length", c.snake.Len(), "tick", c.tick)
	return []Event{{Kind: EventGameOver, Score: c.score}}
}

// SetDirection changes the heading used by the next tick. It reports
// whether the direction changed; requests while the game is over,
// unknown directions and exact reversals are ignored.
func (c *Controller) SetDirection(d Direction) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status != StatusActive || !d.Valid() {
		return false
	}
	if d == c.dir.Opposite() {
		c.log.Debug("reverse ignored", "current", c.dir, "requested", d)
		return false
	}
	if d == c.dir {
		return false
	}
	c.dir = d
	return true
}

// OnDirection lets the controller act as an input DirectionHandler
func (c *Controller) OnDirection(d Direction) {
	c.SetDirection(d)
}

// Reset starts a new game. It may be called at any time.
func (c *Controller) Reset() error {
	c.mu.Lock()
	err := c.resetLocked()
	snap := c.snapshotLocked()
	c.mu.Unlock()

	if err != nil {
		return err
	}
	Dispatch(c.observer, []Event{
		{Kind: EventScoreChanged, Score: 0},
		{Kind: EventStateChanged, Score: 0, Snapshot: snap},
	})
	return nil
}

func (c *Controller) resetLocked() error {
	c.snake = NewSnake(c.grid.Center())
	c.score = 0
	c.dir = DirNone
	c.status = StatusActive
	c.tick = 0
	c.crash = nil

	food, err := c.spawner.Spawn(c.grid, c.snake.Occupied())
	if err != nil {
		c.status = StatusGameOver
		return fmt.Errorf("spawn initial food: %w", err)
	}
	c.food = food
	c.log.Info("game started", "head", c.snake.Head(), "food", c.food)
	return nil
}

// Snapshot returns a copy of the current state
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	snap := Snapshot{
		Snake:     c.snake.Cells(),
		Food:      c.food,
		Score:     c.score,
		Status:    c.status,
		Direction: c.dir,
		CellSize:  c.grid.CellSize,
		Width:     c.grid.Width,
		Height:    c.grid.Height,
		Tick:      c.tick,
	}
	if c.crash != nil {
		crash := *c.crash
		snap.Crash = &crash
	}
	return snap
}

// Status returns the state machine state
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Score returns the food eaten in this game
func (c *Controller) Score() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.score
}

// Grid returns the board geometry
func (c *Controller) Grid() Grid {
	return c.grid
}
