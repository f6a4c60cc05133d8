package testutil

import "github.com/hupe1980/bhvtree/core"

// Stub is a scripted poll node. Each Tick pops the next status from the
// script; once the script is exhausted it keeps returning the last entry.
// It records every Tick and Reset so tests can assert on activation order
// and the reset discipline.
type Stub struct {
	script []core.Status
	pos    int

	Ticks  int
	Resets int
	// LastReset holds the status passed to the most recent Reset call.
	LastReset core.Status
}

// NewStub creates a stub that plays back the given statuses in order.
func NewStub(script ...core.Status) *Stub {
	return &Stub{script: script}
}

// Tick implements core.Node.
func (s *Stub) Tick(any) core.Status {
	s.Ticks++
	if len(s.script) == 0 {
		return core.StatusSuccess
	}
	st := s.script[s.pos]
	if s.pos < len(s.script)-1 {
		s.pos++
	}
	return st
}

// Reset implements core.Node, rewinding the script.
func (s *Stub) Reset(last core.Status) {
	s.Resets++
	s.LastReset = last
	s.pos = 0
}

// ReactiveStub is the reactive twin of Stub: it plays back a status script
// on React and can be pinned to a single event kind.
type ReactiveStub struct {
	script []core.Status
	pos    int
	kind   *core.Kind

	Reacts int
	// Seen collects the names of every event the stub reacted to.
	Seen []string
}

// NewReactiveStub creates a reactive stub interested in every event kind.
func NewReactiveStub(script ...core.Status) *ReactiveStub {
	return &ReactiveStub{script: script}
}

// NewGatedStub creates a reactive stub interested only in the given kind.
func NewGatedStub(kind core.Kind, script ...core.Status) *ReactiveStub {
	return &ReactiveStub{script: script, kind: &kind}
}

// InterestedIn implements core.ReactiveNode.
func (s *ReactiveStub) InterestedIn(kind core.Kind) bool {
	return s.kind == nil || *s.kind == kind
}

// React implements core.ReactiveNode.
func (s *ReactiveStub) React(event core.Event, _ any) core.Status {
	s.Reacts++
	s.Seen = append(s.Seen, event.Name())
	if len(s.script) == 0 {
		return core.StatusSuccess
	}
	st := s.script[s.pos]
	if s.pos < len(s.script)-1 {
		s.pos++
	}
	return st
}
