package config

import (
	"errors"
	"fmt"
	"time"
)

// Board dimensions in pixel units
const (
	BoardWidth  = 800
	BoardHeight = 600
	CellSize    = 20 // Size of one grid cell
)

// Tick settings
const (
	TickInterval = 100 * time.Millisecond // 10 Hz
)

// Food spawn settings
const (
	MaxSpawnAttempts = 1000 // Random draws before falling back to a board sweep
)

// Event stream settings
const (
	EventBuffer = 64
)

// Characters for rendering; each glyph is two columns wide
const (
	CharEmpty = "  "
	CharWall  = "⬜"
	CharHead  = "🟢"
	CharBody  = "🟩"
	CharFood  = "🔴"
	CharCrash = "💥"
)

// UI hosts
const (
	UITerminal  = "term"
	UIBubbleTea = "tea"
)

// Settings holds the runtime values a game session is started with.
type Settings struct {
	Width        int           // Board width in pixels
	Height       int           // Board height in pixels
	CellSize     int           // Cell size in pixels
	TickInterval time.Duration // Simulation step period
	Seed         uint64        // Food RNG seed, 0 means time based
	UI           string        // "term" or "tea"
	LogFile      string        // Empty discards logs
	Verbose      bool
}

// Default returns the standard settings.
func Default() Settings {
	return Settings{
		Width:        BoardWidth,
		Height:       BoardHeight,
		CellSize:     CellSize,
		TickInterval: TickInterval,
		UI:           UITerminal,
	}
}

// Validate reports the first invalid setting.
func (s Settings) Validate() error {
	if s.CellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %d", s.CellSize)
	}
	if s.Width < s.CellSize || s.Height < s.CellSize {
		return fmt.Errorf("board %dx%d is smaller than one %d cell", s.Width, s.Height, s.CellSize)
	}
	if s.TickInterval <= 0 {
		return errors.New("tick interval must be positive")
	}
	switch s.UI {
	case UITerminal, UIBubbleTea:
	default:
		return fmt.Errorf("unknown ui %q", s.UI)
	}
	return nil
}
