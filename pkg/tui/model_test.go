package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pipao1229/snake_go/pkg/game"
)

func newModel(t *testing.T) Model {
	t.Helper()
	// 5x1 board; the snake starts in the middle
	grid, err := game.NewGrid(100, 20, 20)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	ctrl, err := game.New(grid, game.Options{Seed: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return New(ctrl, time.Millisecond, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_TicksUntilGameOver(t *testing.T) {
	m := newModel(t)
	if m.Init() == nil {
		t.Fatal("Init should schedule a tick")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.Snapshot().Direction != game.DirUp {
		t.Fatalf("direction=%s want up", m.Snapshot().Direction)
	}

	// One row board: moving up crashes immediately
	m, cmd := update(t, m, TickMsg(time.Now()))
	if !m.Snapshot().GameOver() {
		t.Fatalf("expected game over, got %s", m.Snapshot().Status)
	}
	if cmd != nil {
		t.Fatal("ticks should stop after game over")
	}

	m, cmd = update(t, m, keyRune('r'))
	if m.Snapshot().GameOver() || len(m.Snapshot().Snake) != 1 {
		t.Fatalf("reset failed: %+v", m.Snapshot())
	}
	if cmd == nil {
		t.Fatal("reset after game over should restart ticks")
	}
}

func TestModel_WASDAndIgnoredKeys(t *testing.T) {
	m := newModel(t)
	m, _ = update(t, m, keyRune('d'))
	if m.Snapshot().Direction != game.DirRight {
		t.Fatalf("direction=%s want right", m.Snapshot().Direction)
	}
	m, _ = update(t, m, keyRune('a')) // reverse, ignored
	m, _ = update(t, m, keyRune('x'))
	if m.Snapshot().Direction != game.DirRight {
		t.Fatalf("direction=%s want right", m.Snapshot().Direction)
	}

	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("active game should keep ticking")
	}
	if got := m.Snapshot().Head(); got != (game.Cell{Col: 3, Row: 0}) {
		t.Fatalf("head=%s want (3,0)", got)
	}
	if m.View() == "" {
		t.Fatal("empty view while playing")
	}
}

func TestModel_Quit(t *testing.T) {
	m := newModel(t)
	m, cmd := update(t, m, keyRune('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("quit command did not produce QuitMsg")
	}
	if m.View() != "" {
		t.Fatal("view should be empty after quitting")
	}
}
