package decorator

import "github.com/hupe1980/bhvtree/core"

// Repeat runs its child to completion a fixed number of times. The first
// count-1 completions are swallowed (the child is reset and the decorator
// yields Running); the final run's real status is surfaced unmodified.
//
// The counter starts at 1, so Repeat(child, 1) is a transparent
// pass-through: N completions total, the last one surfaced.
type Repeat[C any] struct {
	child   core.Node[C]
	count   uint
	current uint
}

// NewRepeat wraps a node so it runs to completion count times. A count of
// zero is treated as one.
func NewRepeat[C any](child core.Node[C], count uint) *Repeat[C] {
	if count == 0 {
		count = 1
	}
	return &Repeat[C]{child: child, count: count, current: 1}
}

// Tick implements core.Node.
func (d *Repeat[C]) Tick(ctx C) core.Status {
	if d.current >= d.count {
		return d.child.Tick(ctx)
	}
	if s := d.child.Tick(ctx); s.Terminal() {
		d.child.Reset(s)
		d.current++
	}
	return core.StatusRunning
}

// Reset implements core.Node, rearming the child and the counter.
func (d *Repeat[C]) Reset(last core.Status) {
	d.child.Reset(last)
	d.current = 1
}

// RepeatUntil re-runs its child until a context predicate holds. The
// predicate is evaluated at most once per child completion: after the child
// completes it is reset and the predicate checked; a true result surfaces
// success immediately, a false result arms a guard that suppresses further
// checks until the child completes again.
type RepeatUntil[C any] struct {
	child   core.Node[C]
	pred    func(C) bool
	checked bool
}

// NewRepeatUntil wraps a node so it repeats until the predicate holds.
func NewRepeatUntil[C any](child core.Node[C], pred func(C) bool) *RepeatUntil[C] {
	return &RepeatUntil[C]{child: child, pred: pred}
}

// Tick implements core.Node.
func (d *RepeatUntil[C]) Tick(ctx C) core.Status {
	if s := d.child.Tick(ctx); s.Terminal() {
		d.child.Reset(s)
		d.checked = false
	}

	if !d.checked {
		if d.pred(ctx) {
			return core.StatusSuccess
		}
		d.checked = true
	}

	return core.StatusRunning
}

// Reset implements core.Node.
func (d *RepeatUntil[C]) Reset(last core.Status) {
	d.child.Reset(last)
	d.checked = false
}
