package decorator

import "github.com/hupe1980/bhvtree/core"

// Invert runs its child until it is done and inverts the result: success
// becomes failure and failure becomes success. Running passes through.
type Invert[C any] struct {
	child core.Node[C]
}

// NewInvert wraps a node in an inverter.
func NewInvert[C any](child core.Node[C]) *Invert[C] { return &Invert[C]{child: child} }

// Tick implements core.Node.
func (d *Invert[C]) Tick(ctx C) core.Status {
	switch d.child.Tick(ctx) {
	case core.StatusSuccess:
		return core.StatusFailure
	case core.StatusFailure:
		return core.StatusSuccess
	default:
		return core.StatusRunning
	}
}

// Reset implements core.Node, forwarding to the child unchanged.
func (d *Invert[C]) Reset(last core.Status) { d.child.Reset(last) }

// ForceSuccess runs its child until it is done and then reports success
// regardless of the child's real outcome.
type ForceSuccess[C any] struct {
	child core.Node[C]
}

// NewForceSuccess wraps a node so any terminal outcome reads as success.
func NewForceSuccess[C any](child core.Node[C]) *ForceSuccess[C] {
	return &ForceSuccess[C]{child: child}
}

// Tick implements core.Node.
func (d *ForceSuccess[C]) Tick(ctx C) core.Status {
	if s := d.child.Tick(ctx); s == core.StatusRunning {
		return s
	}
	return core.StatusSuccess
}

// Reset implements core.Node.
func (d *ForceSuccess[C]) Reset(last core.Status) { d.child.Reset(last) }

// ForceFailure runs its child until it is done and then reports failure
// regardless of the child's real outcome.
type ForceFailure[C any] struct {
	child core.Node[C]
}

// NewForceFailure wraps a node so any terminal outcome reads as failure.
func NewForceFailure[C any](child core.Node[C]) *ForceFailure[C] {
	return &ForceFailure[C]{child: child}
}

// Tick implements core.Node.
func (d *ForceFailure[C]) Tick(ctx C) core.Status {
	if s := d.child.Tick(ctx); s == core.StatusRunning {
		return s
	}
	return core.StatusFailure
}

// Reset implements core.Node.
func (d *ForceFailure[C]) Reset(last core.Status) { d.child.Reset(last) }

// RunIf gates its child on a context predicate evaluated on every call:
// while the predicate holds the child's status passes through, otherwise
// the gate short-circuits with failure without touching the child.
type RunIf[C any] struct {
	child core.Node[C]
	pred  func(C) bool
}

// NewRunIf wraps a node in a predicate gate.
func NewRunIf[C any](pred func(C) bool, child core.Node[C]) *RunIf[C] {
	return &RunIf[C]{child: child, pred: pred}
}

// Tick implements core.Node.
func (d *RunIf[C]) Tick(ctx C) core.Status {
	if !d.pred(ctx) {
		return core.StatusFailure
	}
	return d.child.Tick(ctx)
}

// Reset implements core.Node.
func (d *RunIf[C]) Reset(last core.Status) { d.child.Reset(last) }
