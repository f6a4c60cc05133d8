package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/bhvtree/adapt"
	"github.com/hupe1980/bhvtree/composite"
	"github.com/hupe1980/bhvtree/core"
	"github.com/hupe1980/bhvtree/decorator"
	"github.com/hupe1980/bhvtree/exprleaf"
	"github.com/hupe1980/bhvtree/logging"
)

// Registry maps leaf names referenced in a tree document to Go functions.
// Registration methods return the registry for chaining.
type Registry[C any] struct {
	actions map[string]func(C)
	conds   map[string]func(C) bool
	steps   map[string]func(C) core.Status
}

// NewRegistry creates an empty leaf registry.
func NewRegistry[C any]() *Registry[C] {
	return &Registry[C]{
		actions: map[string]func(C){},
		conds:   map[string]func(C) bool{},
		steps:   map[string]func(C) core.Status{},
	}
}

// Action registers a mutating function under the given name.
func (r *Registry[C]) Action(name string, fn func(C)) *Registry[C] {
	r.actions[name] = fn
	return r
}

// Cond registers a predicate under the given name.
func (r *Registry[C]) Cond(name string, fn func(C) bool) *Registry[C] {
	r.conds[name] = fn
	return r
}

// Step registers a Status-returning function under the given name.
func (r *Registry[C]) Step(name string, fn func(C) core.Status) *Registry[C] {
	r.steps[name] = fn
	return r
}

// Options configures tree loading.
type Options struct {
	// Logger is handed to expression leaves for evaluation failures.
	Logger logging.Logger
}

// WithLogger sets the logger passed to expression leaves.
func WithLogger(l logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = l }
}

// treeSpec is the document root.
type treeSpec struct {
	Root *nodeSpec `yaml:"root"`
}

// nodeSpec is the one-of union for a single tree node. Exactly one field
// must be set.
type nodeSpec struct {
	Sequence     []nodeSpec       `yaml:"sequence,omitempty"`
	Selector     []nodeSpec       `yaml:"selector,omitempty"`
	Invert       *nodeSpec        `yaml:"invert,omitempty"`
	ForceSuccess *nodeSpec        `yaml:"force_success,omitempty"`
	ForceFailure *nodeSpec        `yaml:"force_failure,omitempty"`
	Repeat       *repeatSpec      `yaml:"repeat,omitempty"`
	RepeatUntil  *predicatedSpec  `yaml:"repeat_until,omitempty"`
	RunIf        *predicatedSpec  `yaml:"run_if,omitempty"`
	Action       string           `yaml:"action,omitempty"`
	Cond         string           `yaml:"cond,omitempty"`
	Step         string           `yaml:"step,omitempty"`
	Expr         string           `yaml:"expr,omitempty"`
}

// repeatSpec configures a fixed-count repetition decorator.
type repeatSpec struct {
	Count uint      `yaml:"count"`
	Node  *nodeSpec `yaml:"node"`
}

// predicatedSpec configures decorators gated on a predicate, given either as
// a registered condition name or as an expression string.
type predicatedSpec struct {
	Cond string    `yaml:"cond,omitempty"`
	Expr string    `yaml:"expr,omitempty"`
	Node *nodeSpec `yaml:"node"`
}

// Load parses a YAML tree document and builds the poll-model tree it
// describes, resolving named leaves against the registry.
func Load[C any](data []byte, reg *Registry[C], optFns ...func(o *Options)) (core.Node[C], error) {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	var doc treeSpec
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse tree document: %w", err)
	}
	if doc.Root == nil {
		return nil, fmt.Errorf("tree document has no root")
	}

	b := &builder[C]{reg: reg, opts: opts}
	return b.build(doc.Root, "root")
}

type builder[C any] struct {
	reg  *Registry[C]
	opts Options
}

func (b *builder[C]) build(spec *nodeSpec, path string) (core.Node[C], error) {
	if n := countSet(spec); n != 1 {
		return nil, fmt.Errorf("%s: node must set exactly one of sequence/selector/invert/force_success/force_failure/repeat/repeat_until/run_if/action/cond/step/expr (got %d)", path, n)
	}

	switch {
	case spec.Sequence != nil:
		children, err := b.buildList(spec.Sequence, path+".sequence")
		if err != nil {
			return nil, err
		}
		seq, err := composite.NewSequence(children...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return seq, nil

	case spec.Selector != nil:
		children, err := b.buildList(spec.Selector, path+".selector")
		if err != nil {
			return nil, err
		}
		sel, err := composite.NewSelector(children...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return sel, nil

	case spec.Invert != nil:
		child, err := b.build(spec.Invert, path+".invert")
		if err != nil {
			return nil, err
		}
		return decorator.NewInvert(child), nil

	case spec.ForceSuccess != nil:
		child, err := b.build(spec.ForceSuccess, path+".force_success")
		if err != nil {
			return nil, err
		}
		return decorator.NewForceSuccess(child), nil

	case spec.ForceFailure != nil:
		child, err := b.build(spec.ForceFailure, path+".force_failure")
		if err != nil {
			return nil, err
		}
		return decorator.NewForceFailure(child), nil

	case spec.Repeat != nil:
		if spec.Repeat.Node == nil {
			return nil, fmt.Errorf("%s.repeat: missing node", path)
		}
		child, err := b.build(spec.Repeat.Node, path+".repeat.node")
		if err != nil {
			return nil, err
		}
		return decorator.NewRepeat(child, spec.Repeat.Count), nil

	case spec.RepeatUntil != nil:
		child, pred, err := b.buildPredicated(spec.RepeatUntil, path+".repeat_until")
		if err != nil {
			return nil, err
		}
		return decorator.NewRepeatUntil(child, pred), nil

	case spec.RunIf != nil:
		child, pred, err := b.buildPredicated(spec.RunIf, path+".run_if")
		if err != nil {
			return nil, err
		}
		return decorator.NewRunIf(pred, child), nil

	case spec.Action != "":
		fn, ok := b.reg.actions[spec.Action]
		if !ok {
			return nil, fmt.Errorf("%s: unknown action %q", path, spec.Action)
		}
		return adapt.NewAction(fn), nil

	case spec.Cond != "":
		fn, ok := b.reg.conds[spec.Cond]
		if !ok {
			return nil, fmt.Errorf("%s: unknown cond %q", path, spec.Cond)
		}
		return adapt.NewCond(fn), nil

	case spec.Step != "":
		fn, ok := b.reg.steps[spec.Step]
		if !ok {
			return nil, fmt.Errorf("%s: unknown step %q", path, spec.Step)
		}
		return adapt.NewStep(fn), nil

	case spec.Expr != "":
		cond, err := exprleaf.NewCond[C](spec.Expr, exprleaf.WithLogger(b.opts.Logger))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return cond, nil
	}

	return nil, fmt.Errorf("%s: empty node", path)
}

func (b *builder[C]) buildList(specs []nodeSpec, path string) ([]core.Node[C], error) {
	nodes := make([]core.Node[C], 0, len(specs))
	for i := range specs {
		n, err := b.build(&specs[i], fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func (b *builder[C]) buildPredicated(spec *predicatedSpec, path string) (core.Node[C], func(C) bool, error) {
	if spec.Node == nil {
		return nil, nil, fmt.Errorf("%s: missing node", path)
	}
	if (spec.Cond == "") == (spec.Expr == "") {
		return nil, nil, fmt.Errorf("%s: exactly one of cond/expr required", path)
	}

	child, err := b.build(spec.Node, path+".node")
	if err != nil {
		return nil, nil, err
	}

	if spec.Cond != "" {
		fn, ok := b.reg.conds[spec.Cond]
		if !ok {
			return nil, nil, fmt.Errorf("%s: unknown cond %q", path, spec.Cond)
		}
		return child, fn, nil
	}

	cond, err := exprleaf.NewCond[C](spec.Expr, exprleaf.WithLogger(b.opts.Logger))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return child, func(ctx C) bool { return cond.Tick(ctx) == core.StatusSuccess }, nil
}

func countSet(spec *nodeSpec) int {
	n := 0
	if spec.Sequence != nil {
		n++
	}
	if spec.Selector != nil {
		n++
	}
	if spec.Invert != nil {
		n++
	}
	if spec.ForceSuccess != nil {
		n++
	}
	if spec.ForceFailure != nil {
		n++
	}
	if spec.Repeat != nil {
		n++
	}
	if spec.RepeatUntil != nil {
		n++
	}
	if spec.RunIf != nil {
		n++
	}
	if spec.Action != "" {
		n++
	}
	if spec.Cond != "" {
		n++
	}
	if spec.Step != "" {
		n++
	}
	if spec.Expr != "" {
		n++
	}
	return n
}
