package input

import (
	"fmt"

	"github.com/eiannone/keyboard"

	"github.com/pipao1229/snake_go/pkg/game"
)

// KeyboardHandler handles keyboard input
type KeyboardHandler struct {
	inputChan chan KeyInput
}

// KeyInput represents a keyboard input event
type KeyInput struct {
	Char rune
	Key  keyboard.Key
}

// NewKeyboardHandler creates a new keyboard input handler
func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{
		inputChan: make(chan KeyInput),
	}
}

// Start puts the terminal in raw mode and begins listening for keys
func (h *KeyboardHandler) Start() error {
	if err := keyboard.Open(); err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}

	go func() {
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			h.inputChan <- KeyInput{Char: char, Key: key}
		}
	}()

	return nil
}

// Stop restores the terminal
func (h *KeyboardHandler) Stop() {
	_ = keyboard.Close()
}

// GetInputChan returns the input channel
func (h *KeyboardHandler) GetInputChan() <-chan KeyInput {
	return h.inputChan
}

// ParseDirection maps arrow keys and WASD to a direction
func ParseDirection(input KeyInput) (dir game.Direction, isValid bool) {
	switch input.Key {
	case keyboard.KeyArrowUp:
		return game.DirUp, true
	case keyboard.KeyArrowDown:
		return game.DirDown, true
	case keyboard.KeyArrowLeft:
		return game.DirLeft, true
	case keyboard.KeyArrowRight:
		return game.DirRight, true
	}

	switch input.Char {
	case 'w', 'W':
		return game.DirUp, true
	case 's', 'S':
		return game.DirDown, true
	case 'a', 'A':
		return game.DirLeft, true
	case 'd', 'D':
		return game.DirRight, true
	}

	return game.DirNone, false
}

// Forward hands a direction key to h and reports whether it was one
func Forward(input KeyInput, h game.DirectionHandler) bool {
	dir, ok := ParseDirection(input)
	if ok {
		h.OnDirection(dir)
	}
	return ok
}

// IsQuit checks if the input is a quit command
func IsQuit(input KeyInput) bool {
	return input.Char == 'q' || input.Char == 'Q' || input.Key == keyboard.KeyCtrlC || input.Key == keyboard.KeyEsc
}

// IsRestart checks if the input is the play again command
func IsRestart(input KeyInput) bool {
	return input.Char == 'r' || input.Char == 'R'
}
