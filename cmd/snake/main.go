package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pipao1229/snake_go/pkg/config"
	"github.com/pipao1229/snake_go/pkg/game"
	"github.com/pipao1229/snake_go/pkg/input"
	"github.com/pipao1229/snake_go/pkg/renderer"
	"github.com/pipao1229/snake_go/pkg/tui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "snake:", err)
		os.Exit(1)
	}
}

func parseSettings(args []string) (config.Settings, error) {
	s := config.Default()
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.IntVar(&s.Width, "width", s.Width, "Board width in pixels")
	fs.IntVar(&s.Height, "height", s.Height, "Board height in pixels")
	fs.IntVar(&s.CellSize, "cell", s.CellSize, "Grid cell size in pixels")
	fs.DurationVar(&s.TickInterval, "tick", s.TickInterval, "Time between snake moves")
	fs.Uint64Var(&s.Seed, "seed", s.Seed, "Food RNG seed (0 = time based)")
	fs.StringVar(&s.UI, "ui", s.UI, "Front end: term (raw keyboard + ANSI) or tea (Bubble Tea)")
	fs.StringVar(&s.LogFile, "log", s.LogFile, "Write logs to this file (default: discard, the board owns the terminal)")
	fs.BoolVar(&s.Verbose, "v", s.Verbose, "Debug logging")
	if err := fs.Parse(args); err != nil {
		return s, err
	}
	return s, s.Validate()
}

// newLogger returns the session logger and a func closing its file
func newLogger(s config.Settings) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if s.Verbose {
		level = slog.LevelDebug
	}
	if s.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = f.Close() }, nil
}

func run(args []string) error {
	s, err := parseSettings(args)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(s)
	if err != nil {
		return err
	}
	defer closeLog()

	grid, err := game.NewGrid(s.Width, s.Height, s.CellSize)
	if err != nil {
		return err
	}
	logger.Info("starting", "ui", s.UI, "cols", grid.Cols(), "rows", grid.Rows(), "tick", s.TickInterval)

	if s.UI == config.UIBubbleTea {
		return runTea(s, grid, logger)
	}
	return runTerminal(s, grid, logger)
}

func runTea(s config.Settings, grid game.Grid, logger *slog.Logger) error {
	ctrl, err := game.New(grid, game.Options{
		Seed:   s.Seed,
		Logger: logger,
		Observer: game.ObserverFuncs{
			ScoreChanged: func(score int) { logger.Debug("score changed", "score", score) },
		},
	})
	if err != nil {
		return err
	}
	return tui.Run(tui.New(ctrl, s.TickInterval, logger))
}

func runTerminal(s config.Settings, grid game.Grid, logger *slog.Logger) error {
	// Initialize input handler
	inputHandler := input.NewKeyboardHandler()
	if err := inputHandler.Start(); err != nil {
		return err
	}
	defer inputHandler.Stop()

	render := renderer.NewTerminalRenderer(os.Stdout)
	render.HideCursor()
	defer render.ShowCursor()

	// Rendering happens here, off the tick goroutine
	stream := game.NewEventStream(config.EventBuffer)
	ctrl, err := game.New(grid, game.Options{Seed: s.Seed, Observer: stream, Logger: logger})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := game.NewLoop(ctrl, s.TickInterval)
	loopErr := make(chan error, 1)
	go func() { loopErr <- loop.Run(ctx) }()

	// Initial render
	render.Render(ctrl.Snapshot())

	inputChan := inputHandler.GetInputChan()
	for {
		select {
		case <-ctx.Done():
			<-loopErr
			return nil

		case ev := <-stream.Events():
			switch ev.Kind {
			case game.EventStateChanged:
				render.Render(ev.Snapshot)
			case game.EventGameOver:
				render.Render(ctrl.Snapshot())
			case game.EventScoreChanged:
				logger.Debug("score changed", "score", ev.Score)
			}

		case inputEvent := <-inputChan:
			if input.IsQuit(inputEvent) {
				stop()
				<-loopErr
				fmt.Println("\n  Thanks for playing! 👋")
				return nil
			}

			if input.IsRestart(inputEvent) {
				if err := loop.Reset(); err != nil {
					logger.Error("reset failed", "err", err)
				}
				continue
			}

			input.Forward(inputEvent, ctrl)
		}
	}
}
