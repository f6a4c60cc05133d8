package adapt

import "github.com/hupe1980/bhvtree/core"

// Cond adapts a predicate over the context into a leaf node, returning
// success if the predicate holds and failure otherwise.
type Cond[C any] struct {
	core.BaseNode
	pred func(C) bool
}

// NewCond wraps a predicate into a condition leaf.
func NewCond[C any](pred func(C) bool) *Cond[C] { return &Cond[C]{pred: pred} }

// Tick implements core.Node.
func (c *Cond[C]) Tick(ctx C) core.Status {
	if c.pred(ctx) {
		return core.StatusSuccess
	}
	return core.StatusFailure
}

// Action adapts a mutating function into a leaf node that performs its
// effect and always succeeds.
type Action[C any] struct {
	core.BaseNode
	fn func(C)
}

// NewAction wraps a function into an action leaf.
func NewAction[C any](fn func(C)) *Action[C] { return &Action[C]{fn: fn} }

// Tick implements core.Node.
func (a *Action[C]) Tick(ctx C) core.Status {
	a.fn(ctx)
	return core.StatusSuccess
}

// Step adapts a Status-returning function into a leaf node, permitting a
// single leaf to span multiple ticks by returning Running.
type Step[C any] struct {
	core.BaseNode
	fn func(C) core.Status
}

// NewStep wraps a Status-returning function into a leaf.
func NewStep[C any](fn func(C) core.Status) *Step[C] { return &Step[C]{fn: fn} }

// Tick implements core.Node.
func (s *Step[C]) Tick(ctx C) core.Status { return s.fn(ctx) }
