package runner

import (
	"context"

	"github.com/hupe1980/bhvtree/core"
)

// EventSource yields the events a reactive run consumes, one at a time.
// Next blocks until an event is available or the context is done; a false
// second return value means the source is exhausted.
type EventSource interface {
	Next(ctx context.Context) (core.Event, bool)
}

type sliceSource struct {
	events []core.Event
	pos    int
}

// SliceSource returns an EventSource that replays the given events in order.
func SliceSource(events ...core.Event) EventSource {
	return &sliceSource{events: events}
}

// Next implements EventSource.
func (s *sliceSource) Next(ctx context.Context) (core.Event, bool) {
	if ctx.Err() != nil || s.pos >= len(s.events) {
		return nil, false
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, true
}

type chanSource struct {
	ch <-chan core.Event
}

// ChanSource returns an EventSource fed from a channel. The source is
// exhausted when the channel is closed or the context is done.
func ChanSource(ch <-chan core.Event) EventSource {
	return &chanSource{ch: ch}
}

// Next implements EventSource.
func (s *chanSource) Next(ctx context.Context) (core.Event, bool) {
	select {
	case <-ctx.Done():
		return nil, false
	case ev, ok := <-s.ch:
		if !ok {
			return nil, false
		}
		return ev, true
	}
}

// RepeatSource yields the same event indefinitely, which is handy for
// driving reactive trees in tests the way a poll loop would.
func RepeatSource(ev core.Event) EventSource {
	return repeatSource{ev: ev}
}

type repeatSource struct {
	ev core.Event
}

// Next implements EventSource.
func (s repeatSource) Next(ctx context.Context) (core.Event, bool) {
	if ctx.Err() != nil {
		return nil, false
	}
	return s.ev, true
}
