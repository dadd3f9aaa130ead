package game

import (
	"context"
	"time"
)

// Loop drives a Controller at a fixed rate. Ticking stops when the game
// ends and starts again on Reset.
type Loop struct {
	ctrl     *Controller
	interval time.Duration
	resetCh  chan struct{}
}

// NewLoop creates a loop stepping ctrl every interval
func NewLoop(ctrl *Controller, interval time.Duration) *Loop {
	return &Loop{
		ctrl:     ctrl,
		interval: interval,
		resetCh:  make(chan struct{}, 1),
	}
}

// Run ticks until ctx is cancelled and returns ctx.Err()
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-l.resetCh:
			ticker.Reset(l.interval)

		case <-ticker.C:
			res, _ := l.ctrl.Step() // Spawn failures are logged by the controller
			if !res.Snapshot.GameOver() {
				continue
			}

			ticker.Stop()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-l.resetCh:
				ticker.Reset(l.interval)
			}
		}
	}
}

// Reset starts a new game and restarts the ticker
func (l *Loop) Reset() error {
	if err := l.ctrl.Reset(); err != nil {
		return err
	}
	select {
	case l.resetCh <- struct{}{}:
	default:
	}
	return nil
}

// Controller returns the driven controller
func (l *Loop) Controller() *Controller {
	return l.ctrl
}
