package reactive

import "github.com/hupe1980/bhvtree/core"

// Cond adapts a predicate over the context into a reactive leaf that reacts
// to any event, returning success if the predicate holds and failure
// otherwise.
type Cond[C any] struct {
	core.BaseReactiveNode
	pred func(C) bool
}

// NewCond wraps a predicate into a reactive condition leaf.
func NewCond[C any](pred func(C) bool) *Cond[C] { return &Cond[C]{pred: pred} }

// React implements core.ReactiveNode.
func (c *Cond[C]) React(_ core.Event, ctx C) core.Status {
	if c.pred(ctx) {
		return core.StatusSuccess
	}
	return core.StatusFailure
}

// Action adapts a mutating function into a reactive leaf that performs its
// effect on any event and always succeeds.
type Action[C any] struct {
	core.BaseReactiveNode
	fn func(C)
}

// NewAction wraps a function into a reactive action leaf.
func NewAction[C any](fn func(C)) *Action[C] { return &Action[C]{fn: fn} }

// React implements core.ReactiveNode.
func (a *Action[C]) React(_ core.Event, ctx C) core.Status {
	a.fn(ctx)
	return core.StatusSuccess
}

// Step adapts a Status-returning function into a reactive leaf, permitting
// a single leaf to consume several events before completing.
type Step[C any] struct {
	core.BaseReactiveNode
	fn func(C) core.Status
}

// NewStep wraps a Status-returning function into a reactive leaf.
func NewStep[C any](fn func(C) core.Status) *Step[C] { return &Step[C]{fn: fn} }

// React implements core.ReactiveNode.
func (s *Step[C]) React(_ core.Event, ctx C) core.Status { return s.fn(ctx) }

// Handler adapts a function that inspects the event itself, for leaves whose
// effect depends on the event's payload rather than only the shared context.
type Handler[C any] struct {
	core.BaseReactiveNode
	fn func(core.Event, C) core.Status
}

// NewHandler wraps an event-aware function into a reactive leaf.
func NewHandler[C any](fn func(core.Event, C) core.Status) *Handler[C] {
	return &Handler[C]{fn: fn}
}

// React implements core.ReactiveNode.
func (h *Handler[C]) React(event core.Event, ctx C) core.Status { return h.fn(event, ctx) }
