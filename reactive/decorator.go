package reactive

import "github.com/hupe1980/bhvtree/core"

// Invert reacts its child and inverts the terminal result; Running and the
// child's event interest pass through unchanged.
type Invert[C any] struct {
	child core.ReactiveNode[C]
}

// NewInvert wraps a reactive node in an inverter.
func NewInvert[C any](child core.ReactiveNode[C]) *Invert[C] { return &Invert[C]{child: child} }

// InterestedIn implements core.ReactiveNode.
func (d *Invert[C]) InterestedIn(kind core.Kind) bool { return d.child.InterestedIn(kind) }

// React implements core.ReactiveNode.
func (d *Invert[C]) React(event core.Event, ctx C) core.Status {
	switch d.child.React(event, ctx) {
	case core.StatusSuccess:
		return core.StatusFailure
	case core.StatusFailure:
		return core.StatusSuccess
	default:
		return core.StatusRunning
	}
}

// ForceSuccess rewrites any terminal result of its child to success.
type ForceSuccess[C any] struct {
	child core.ReactiveNode[C]
}

// NewForceSuccess wraps a reactive node so any terminal outcome reads as success.
func NewForceSuccess[C any](child core.ReactiveNode[C]) *ForceSuccess[C] {
	return &ForceSuccess[C]{child: child}
}

// InterestedIn implements core.ReactiveNode.
func (d *ForceSuccess[C]) InterestedIn(kind core.Kind) bool { return d.child.InterestedIn(kind) }

// React implements core.ReactiveNode.
func (d *ForceSuccess[C]) React(event core.Event, ctx C) core.Status {
	if s := d.child.React(event, ctx); s == core.StatusRunning {
		return s
	}
	return core.StatusSuccess
}

// ForceFailure rewrites any terminal result of its child to failure.
type ForceFailure[C any] struct {
	child core.ReactiveNode[C]
}

// NewForceFailure wraps a reactive node so any terminal outcome reads as failure.
func NewForceFailure[C any](child core.ReactiveNode[C]) *ForceFailure[C] {
	return &ForceFailure[C]{child: child}
}

// InterestedIn implements core.ReactiveNode.
func (d *ForceFailure[C]) InterestedIn(kind core.Kind) bool { return d.child.InterestedIn(kind) }

// React implements core.ReactiveNode.
func (d *ForceFailure[C]) React(event core.Event, ctx C) core.Status {
	if s := d.child.React(event, ctx); s == core.StatusRunning {
		return s
	}
	return core.StatusFailure
}

// WaitFor gates its child on a single event kind: it reports interest only
// in that kind and forwards matching events to the child untouched. Inside a
// list composite this blocks the gated child and every sibling after it
// until an event of the awaited kind arrives, making list order the
// scheduling primitive.
type WaitFor[C any] struct {
	child core.ReactiveNode[C]
	kind  core.Kind
}

// NewWaitFor gates the child on the given event kind.
func NewWaitFor[C any](kind core.Kind, child core.ReactiveNode[C]) *WaitFor[C] {
	return &WaitFor[C]{child: child, kind: kind}
}

// InterestedIn implements core.ReactiveNode, accepting only the gated kind.
func (d *WaitFor[C]) InterestedIn(kind core.Kind) bool { return kind == d.kind }

// React implements core.ReactiveNode, forwarding to the child.
func (d *WaitFor[C]) React(event core.Event, ctx C) core.Status {
	return d.child.React(event, ctx)
}

// RepeatUntilSuccess reacts its child on every event until it succeeds,
// propagating the success. Failure is swallowed and reported as Running so
// the child is retried on subsequent events.
type RepeatUntilSuccess[C any] struct {
	child core.ReactiveNode[C]
}

// NewRepeatUntilSuccess wraps a reactive node so it retries until success.
func NewRepeatUntilSuccess[C any](child core.ReactiveNode[C]) *RepeatUntilSuccess[C] {
	return &RepeatUntilSuccess[C]{child: child}
}

// InterestedIn implements core.ReactiveNode.
func (d *RepeatUntilSuccess[C]) InterestedIn(kind core.Kind) bool {
	return d.child.InterestedIn(kind)
}

// React implements core.ReactiveNode.
func (d *RepeatUntilSuccess[C]) React(event core.Event, ctx C) core.Status {
	if s := d.child.React(event, ctx); s == core.StatusSuccess {
		return s
	}
	return core.StatusRunning
}

// RepeatUntilFailure reacts its child on every event until it fails,
// propagating the failure. Success is swallowed and reported as Running so
// the child is retried on subsequent events.
type RepeatUntilFailure[C any] struct {
	child core.ReactiveNode[C]
}

// NewRepeatUntilFailure wraps a reactive node so it retries until failure.
func NewRepeatUntilFailure[C any](child core.ReactiveNode[C]) *RepeatUntilFailure[C] {
	return &RepeatUntilFailure[C]{child: child}
}

// InterestedIn implements core.ReactiveNode.
func (d *RepeatUntilFailure[C]) InterestedIn(kind core.Kind) bool {
	return d.child.InterestedIn(kind)
}

// React implements core.ReactiveNode.
func (d *RepeatUntilFailure[C]) React(event core.Event, ctx C) core.Status {
	if s := d.child.React(event, ctx); s == core.StatusFailure {
		return s
	}
	return core.StatusRunning
}
