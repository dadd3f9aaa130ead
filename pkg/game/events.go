package game

import "sync/atomic"

// Observer receives the outbound notifications of a game
type Observer interface {
	OnScoreChanged(score int)
	OnGameOver(score int)
	OnStateChanged(snap Snapshot)
}

// ObserverFuncs adapts plain functions to Observer. Nil funcs are skipped.
type ObserverFuncs struct {
	ScoreChanged func(score int)
	GameOver     func(score int)
	StateChanged func(snap Snapshot)
}

func (o ObserverFuncs) OnScoreChanged(score int) {
	if o.ScoreChanged != nil {
		o.ScoreChanged(score)
	}
}

func (o ObserverFuncs) OnGameOver(score int) {
	if o.GameOver != nil {
		o.GameOver(score)
	}
}

func (o ObserverFuncs) OnStateChanged(snap Snapshot) {
	if o.StateChanged != nil {
		o.StateChanged(snap)
	}
}

// Nop ignores every notification
var Nop Observer = ObserverFuncs{}

// EventKind tags an Event
type EventKind int

const (
	EventScoreChanged EventKind = iota
	EventGameOver
	EventStateChanged
)

func (k EventKind) String() string {
	switch k {
	case EventScoreChanged:
		return "score_changed"
	case EventGameOver:
		return "game_over"
	case EventStateChanged:
		return "state_changed"
	}
	return "unknown"
}

// Event is one notification produced by a step or a reset
type Event struct {
	Kind     EventKind
	Score    int
	Snapshot Snapshot // Set for EventStateChanged
}

// Dispatch delivers events to an observer in order
func Dispatch(o Observer, events []Event) {
	for _, ev := range events {
		switch ev.Kind {
		case EventScoreChanged:
			o.OnScoreChanged(ev.Score)
		case EventGameOver:
			o.OnGameOver(ev.Score)
		case EventStateChanged:
			o.OnStateChanged(ev.Snapshot)
		}
	}
}

// EventStream is an Observer that publishes events on a channel.
// Sends never block; when the buffer is full the event is dropped
// and counted so the tick keeps its pace.
type EventStream struct {
	ch      chan Event
	dropped atomic.Int64
}

// NewEventStream creates a stream buffering up to size events
func NewEventStream(size int) *EventStream {
	return &EventStream{ch: make(chan Event, size)}
}

// Events returns the receive side of the stream
func (s *EventStream) Events() <-chan Event {
	return s.ch
}

// Dropped returns how many events were discarded
func (s *EventStream) Dropped() int64 {
	return s.dropped.Load()
}

func (s *EventStream) publish(ev Event) {
	select {
	case s.ch <- ev:
	default:
		s.dropped.Add(1)
	}
}

func (s *EventStream) OnScoreChanged(score int) {
	s.publish(Event{Kind: EventScoreChanged, Score: score})
}

func (s *EventStream) OnGameOver(score int) {
	s.publish(Event{Kind: EventGameOver, Score: score})
}

func (s *EventStream) OnStateChanged(snap Snapshot) {
	s.publish(Event{Kind: EventStateChanged, Score: snap.Score, Snapshot: snap})
}
