package reactive

import (
	"github.com/hupe1980/bhvtree/composite"
	"github.com/hupe1980/bhvtree/core"
)

// list is the generic engine shared by the reactive Sequence and Selector.
// Like its poll counterpart it keeps a cursor so completed children are not
// re-run on later events, but traversal is additionally gated by per-child
// event interest: the scan over remaining children stops at the first one
// not interested in the incoming event's kind, and that child and everything
// after it are not offered the event at all.
type list[C any] struct {
	core.BaseReactiveNode
	nodes  []core.ReactiveNode[C]
	cursor int
	cont   core.Status
}

// React offers the event to consecutive children starting at the cursor.
// A child returning the continue status hands the same event to the next
// willing child; Running consumes the event leaving the cursor in place;
// any other terminal status short-circuits. An uninterested child at the
// cursor yields Running without consuming the event for anyone after it.
// Completing a run rearms the cursor.
func (l *list[C]) React(event core.Event, ctx C) core.Status {
	kind := core.EventKind(event)

	for {
		if l.cursor >= len(l.nodes) {
			l.cursor = 0
			return l.cont
		}

		node := l.nodes[l.cursor]
		if !node.InterestedIn(kind) {
			return core.StatusRunning
		}

		s := node.React(event, ctx)
		if s == core.StatusRunning {
			return s
		}
		if s != l.cont {
			l.cursor = 0
			return s
		}

		l.cursor++
	}
}

// Sequence reacts children in order until one of them fails, in which case
// the sequence also fails. If every child has succeeded, it succeeds.
type Sequence[C any] struct{ list[C] }

// NewSequence creates a reactive sequence over the given children. Returns
// composite.ErrNoChildren for an empty child list.
func NewSequence[C any](children ...core.ReactiveNode[C]) (*Sequence[C], error) {
	if len(children) == 0 {
		return nil, composite.ErrNoChildren
	}
	return &Sequence[C]{list[C]{nodes: children, cont: core.StatusSuccess}}, nil
}

// Selector reacts children in order until one of them succeeds, in which
// case the selector also succeeds. If every child has failed, it fails.
type Selector[C any] struct{ list[C] }

// NewSelector creates a reactive selector over the given children. Returns
// composite.ErrNoChildren for an empty child list.
func NewSelector[C any](children ...core.ReactiveNode[C]) (*Selector[C], error) {
	if len(children) == 0 {
		return nil, composite.ErrNoChildren
	}
	return &Selector[C]{list[C]{nodes: children, cont: core.StatusFailure}}, nil
}
