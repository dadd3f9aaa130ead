// Package tui hosts the game in a Bubble Tea program. Ticks come from
// tea.Tick and keys from the program's own event loop.
package tui

import (
	"io"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pipao1229/snake_go/pkg/game"
	"github.com/pipao1229/snake_go/pkg/renderer"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a command that fires one TickMsg after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model is the Bubble Tea model wrapping a controller.
type Model struct {
	ctrl     *game.Controller
	render   *renderer.TerminalRenderer
	interval time.Duration
	log      *slog.Logger

	snap     game.Snapshot
	quitting bool
}

// New creates a model stepping ctrl every interval.
func New(ctrl *game.Controller, interval time.Duration, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return Model{
		ctrl:     ctrl,
		render:   renderer.NewTerminalRenderer(io.Discard),
		interval: interval,
		log:      logger,
		snap:     ctrl.Snapshot(),
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		res, err := m.ctrl.Step()
		if err != nil {
			m.log.Error("step failed", "err", err)
		}
		m.snap = res.Snapshot
		if m.snap.GameOver() {
			// No more ticks until the player restarts
			return m, nil
		}
		return m, tickCmd(m.interval)

	case tea.KeyMsg:
		switch strings.ToLower(msg.String()) {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "r":
			wasOver := m.snap.GameOver()
			if err := m.ctrl.Reset(); err != nil {
				m.log.Error("reset failed", "err", err)
				return m, nil
			}
			m.snap = m.ctrl.Snapshot()
			if wasOver {
				return m, tickCmd(m.interval)
			}
			return m, nil
		}

		if dir, ok := keyDirection(msg); ok {
			m.ctrl.SetDirection(dir)
			m.snap = m.ctrl.Snapshot()
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render.Frame(m.snap)
}

// Snapshot returns the state the model last drew
func (m Model) Snapshot() game.Snapshot {
	return m.snap
}

func keyDirection(msg tea.KeyMsg) (game.Direction, bool) {
	switch msg.Type {
	case tea.KeyUp:
		return game.DirUp, true
	case tea.KeyDown:
		return game.DirDown, true
	case tea.KeyLeft:
		return game.DirLeft, true
	case tea.KeyRight:
		return game.DirRight, true
	}
	switch strings.ToLower(msg.String()) {
	case "w":
		return game.DirUp, true
	case "s":
		return game.DirDown, true
	case "a":
		return game.DirLeft, true
	case "d":
		return game.DirRight, true
	}
	return game.DirNone, false
}

// Run blocks until the player quits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
