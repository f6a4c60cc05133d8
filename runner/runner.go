package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/bhvtree/core"
	"github.com/hupe1980/bhvtree/logging"
)

// ErrMaxTicks is returned when a run exceeds the configured tick budget
// without producing a terminal status.
var ErrMaxTicks = errors.New("tick budget exhausted")

// Options configures a Runner.
type Options struct {
	// Logger receives per-run lifecycle logs. Defaults to NoOpLogger.
	Logger logging.Logger
	// MaxTicks limits how many times the root is ticked in one run. Zero
	// means unlimited; set a budget when the tree is not guaranteed to make
	// bounded progress.
	MaxTicks int
	// Interval paces the loop, sleeping between ticks. Zero means no delay.
	Interval time.Duration
	// RunID identifies the run in logs. Defaults to a generated UUID.
	RunID string
}

// WithLogger sets the logger used for run lifecycle logs.
func WithLogger(l logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = l }
}

// WithMaxTicks sets the tick budget for one run.
func WithMaxTicks(n int) func(o *Options) {
	return func(o *Options) { o.MaxTicks = n }
}

// WithInterval sets the delay between ticks.
func WithInterval(d time.Duration) func(o *Options) {
	return func(o *Options) { o.Interval = d }
}

// WithRunID overrides the generated run identifier.
func WithRunID(id string) func(o *Options) {
	return func(o *Options) { o.RunID = id }
}

// Runner drives a poll-model tree to completion. The shared context value is
// owned by the caller and mutably borrowed by exactly one node at a time for
// the duration of each tick.
type Runner[C any] struct {
	root core.Node[C]
	opts Options
}

// New creates a runner for the given root node.
func New[C any](root core.Node[C], optFns ...func(o *Options)) *Runner[C] {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	opts.Logger = logging.OrNoOp(opts.Logger)
	if opts.RunID == "" {
		opts.RunID = uuid.NewString()
	}
	return &Runner[C]{root: root, opts: opts}
}

// Run ticks the root until it produces a terminal status, then resets it so
// the tree can be run again. It returns the terminal status, or Running
// together with an error when the run was cut short (cancellation or an
// exhausted tick budget). Abandoning a run this way leaves the root reset.
func (r *Runner[C]) Run(ctx context.Context, bb C) (core.Status, error) {
	log := r.opts.Logger
	log.Debug("run started", "run_id", r.opts.RunID)

	for ticks := 1; ; ticks++ {
		select {
		case <-ctx.Done():
			r.root.Reset(core.StatusFailure)
			return core.StatusRunning, ctx.Err()
		default:
		}

		if s := r.root.Tick(bb); s.Terminal() {
			r.root.Reset(s)
			log.Debug("run finished", "run_id", r.opts.RunID, "status", s.String(), "ticks", ticks)
			return s, nil
		}

		if r.opts.MaxTicks > 0 && ticks >= r.opts.MaxTicks {
			r.root.Reset(core.StatusFailure)
			log.Warn("run aborted", "run_id", r.opts.RunID, "ticks", ticks)
			return core.StatusRunning, fmt.Errorf("%w after %d ticks", ErrMaxTicks, ticks)
		}

		if r.opts.Interval > 0 {
			select {
			case <-ctx.Done():
				r.root.Reset(core.StatusFailure)
				return core.StatusRunning, ctx.Err()
			case <-time.After(r.opts.Interval):
			}
		}
	}
}

// Run is a convenience helper that builds a Runner and executes a single
// run, returning true if the tree succeeded.
func Run[C any](ctx context.Context, root core.Node[C], bb C, optFns ...func(o *Options)) (bool, error) {
	s, err := New(root, optFns...).Run(ctx, bb)
	if err != nil {
		return false, err
	}
	return s == core.StatusSuccess, nil
}
