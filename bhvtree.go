// Package bhvtree provides a high-level façade over the behavior tree
// engine: a Tree bundles an assembled root node with a configured driver so
// applications interact with one object. Most applications use this package
// by:
//  1. Assembling a tree bottom-up from the adapt, composite, decorator and
//     reactive packages (or declaratively via the loader package)
//  2. Wrapping the root in a Tree via New / NewReactive (optionally with a
//     logger, tick budget or pacing interval)
//  3. Calling Run with the shared context value until a verdict is produced
//
// Trees are immutable in shape once built; the shared context value is owned
// by the caller and mutated only through node execution.
package bhvtree

import (
	"context"

	"github.com/hupe1980/bhvtree/core"
	"github.com/hupe1980/bhvtree/runner"
)

// Must unwraps a (node, error) constructor result, panicking on error. Tree
// shapes are static, so a construction error is a programming mistake; Must
// keeps bottom-up assembly readable:
//
//	root := bhvtree.Must(composite.NewSequence[*State](
//		adapt.NewCond(ready),
//		adapt.NewAction(fire),
//	))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Tree bundles a poll-model root node with its driver.
type Tree[C any] struct {
	root   core.Node[C]
	runner *runner.Runner[C]
}

// New creates a Tree around the given root. Options configure the driver
// (logger, tick budget, pacing interval, run identifier).
func New[C any](root core.Node[C], optFns ...func(o *runner.Options)) *Tree[C] {
	return &Tree[C]{root: root, runner: runner.New(root, optFns...)}
}

// Root returns the root node, for callers composing the tree into a larger
// one.
func (t *Tree[C]) Root() core.Node[C] { return t.root }

// Run drives the tree until it produces a terminal status and returns it.
// The tree is reset afterwards and can be run again.
func (t *Tree[C]) Run(ctx context.Context, bb C) (core.Status, error) {
	return t.runner.Run(ctx, bb)
}

// Execute runs the tree to completion and reports whether it succeeded.
func (t *Tree[C]) Execute(ctx context.Context, bb C) (bool, error) {
	s, err := t.runner.Run(ctx, bb)
	if err != nil {
		return false, err
	}
	return s == core.StatusSuccess, nil
}

// ReactiveTree bundles a reactive root node with its driver.
type ReactiveTree[C any] struct {
	root   core.ReactiveNode[C]
	runner *runner.ReactiveRunner[C]
}

// NewReactive creates a ReactiveTree around the given root.
func NewReactive[C any](root core.ReactiveNode[C], optFns ...func(o *runner.Options)) *ReactiveTree[C] {
	return &ReactiveTree[C]{root: root, runner: runner.NewReactive(root, optFns...)}
}

// Root returns the root node.
func (t *ReactiveTree[C]) Root() core.ReactiveNode[C] { return t.root }

// Run consumes events from the source until the tree produces a verdict.
// A Running result with nil error means the run ended without one (source
// exhausted, or the root was not interested in an event).
func (t *ReactiveTree[C]) Run(ctx context.Context, src runner.EventSource, bb C) (core.Status, error) {
	return t.runner.Run(ctx, src, bb)
}
