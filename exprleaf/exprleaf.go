package exprleaf

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/hupe1980/bhvtree/core"
	"github.com/hupe1980/bhvtree/logging"
)

// Options configures expression leaves.
type Options struct {
	// Logger receives evaluation failures. Defaults to NoOpLogger.
	Logger logging.Logger
}

// WithLogger sets the logger used for evaluation failures.
func WithLogger(l logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = l }
}

// Cond is a condition leaf whose predicate is a compiled expr-lang boolean
// expression evaluated against the shared context.
//
// Compilation errors surface at construction time. A runtime evaluation
// error cannot be propagated through the status algebra, so it is logged
// and reported as failure, consistent with conditions being ordinary,
// expected failure points.
type Cond[C any] struct {
	core.BaseNode
	src     string
	program *vm.Program
	logger  logging.Logger
}

// NewCond compiles the expression into a condition leaf. The context type C
// is used as the expression environment, so fields (or map keys) of C are
// directly addressable in the expression:
//
//	cond, err := exprleaf.NewCond[*State]("Health < 20 && Ammo > 0")
func NewCond[C any](src string, optFns ...func(o *Options)) (*Cond[C], error) {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	var env C
	program, err := expr.Compile(src, expr.Env(env), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile condition %q: %w", src, err)
	}

	return &Cond[C]{src: src, program: program, logger: logging.OrNoOp(opts.Logger)}, nil
}

// Tick implements core.Node.
func (c *Cond[C]) Tick(ctx C) core.Status {
	out, err := expr.Run(c.program, ctx)
	if err != nil {
		c.logger.Warn("condition evaluation failed", "expr", c.src, "error", err)
		return core.StatusFailure
	}
	if b, ok := out.(bool); ok && b {
		return core.StatusSuccess
	}
	return core.StatusFailure
}

// String returns the source expression.
func (c *Cond[C]) String() string { return c.src }
