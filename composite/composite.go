package composite

import (
	"errors"

	"github.com/hupe1980/bhvtree/core"
)

// ErrNoChildren is returned when a composite is constructed with an empty
// child list. Malformed tree shapes are rejected at build time, never at
// run time.
var ErrNoChildren = errors.New("composite requires at least one child")

// list is the generic engine shared by Sequence and Selector. The policy is
// fully captured by cont, the "continue" status: a child returning cont lets
// traversal advance, any other terminal status short-circuits, and reaching
// the end of the list yields cont.
//
// Invariant: between calls the cursor points at a child that has not yet
// produced the short-circuit outcome in this run; after a full run the
// cursor is back at 0 and every visited child has been reset.
type list[C any] struct {
	nodes  []core.Node[C]
	cursor int
	cont   core.Status
}

// Tick advances children from the cursor forward within a single call: a
// child returning the continue status hands over to the next child
// immediately, Running stops traversal leaving the cursor in place, and any
// other terminal status short-circuits. Completing a run (either way)
// rearms the composite before the result is returned.
func (l *list[C]) Tick(ctx C) core.Status {
	for {
		if l.cursor >= len(l.nodes) {
			l.rearm()
			return l.cont
		}

		s := l.nodes[l.cursor].Tick(ctx)
		if s == core.StatusRunning {
			return s
		}
		if s != l.cont {
			l.rearm()
			return s
		}

		l.cursor++
	}
}

// Reset implements core.Node, rearming a mid-run composite (for example one
// abandoned by its caller while Running).
func (l *list[C]) Reset(core.Status) { l.rearm() }

// rearm resets every visited child, passing the continue status, and moves
// the cursor back to the front.
func (l *list[C]) rearm() {
	count := min(l.cursor+1, len(l.nodes))
	for _, n := range l.nodes[:count] {
		n.Reset(l.cont)
	}
	l.cursor = 0
}

// Sequence runs its children in order until one of them fails, in which case
// the sequence also fails. If no child fails, the sequence succeeds. A
// sequence with a single child is a transparent pass-through.
type Sequence[C any] struct{ list[C] }

// NewSequence creates a sequence over the given children. Returns
// ErrNoChildren for an empty child list.
func NewSequence[C any](children ...core.Node[C]) (*Sequence[C], error) {
	if len(children) == 0 {
		return nil, ErrNoChildren
	}
	return &Sequence[C]{list[C]{nodes: children, cont: core.StatusSuccess}}, nil
}

// Selector runs its children in order until one of them succeeds, in which
// case the selector also succeeds. If no child succeeds, the selector fails.
// It is the exact dual of Sequence under outcome inversion.
type Selector[C any] struct{ list[C] }

// NewSelector creates a selector over the given children. Returns
// ErrNoChildren for an empty child list.
func NewSelector[C any](children ...core.Node[C]) (*Selector[C], error) {
	if len(children) == 0 {
		return nil, ErrNoChildren
	}
	return &Selector[C]{list[C]{nodes: children, cont: core.StatusFailure}}, nil
}
