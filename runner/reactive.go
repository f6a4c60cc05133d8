package runner

import (
	"context"

	"github.com/google/uuid"
	"github.com/hupe1980/bhvtree/core"
	"github.com/hupe1980/bhvtree/logging"
)

// ReactiveRunner drives a reactive tree by consuming events from a source.
type ReactiveRunner[C any] struct {
	root core.ReactiveNode[C]
	opts Options
}

// NewReactive creates a runner for the given reactive root node. MaxTicks
// bounds the number of consumed events; Interval is ignored (pacing comes
// from the event source itself).
func NewReactive[C any](root core.ReactiveNode[C], optFns ...func(o *Options)) *ReactiveRunner[C] {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	opts.Logger = logging.OrNoOp(opts.Logger)
	if opts.RunID == "" {
		opts.RunID = uuid.NewString()
	}
	return &ReactiveRunner[C]{root: root, opts: opts}
}

// Run consumes events until the root produces a terminal status, which is
// returned. The run ends without a verdict — returned as Running with a nil
// error — when the source is exhausted or the root declares no interest in
// an incoming event's kind ("still pending" from the caller's view).
func (r *ReactiveRunner[C]) Run(ctx context.Context, src EventSource, bb C) (core.Status, error) {
	log := r.opts.Logger
	log.Debug("reactive run started", "run_id", r.opts.RunID)

	for consumed := 1; ; consumed++ {
		ev, ok := src.Next(ctx)
		if !ok {
			if err := ctx.Err(); err != nil {
				return core.StatusRunning, err
			}
			log.Debug("event source exhausted", "run_id", r.opts.RunID, "events", consumed-1)
			return core.StatusRunning, nil
		}

		if !r.root.InterestedIn(core.EventKind(ev)) {
			log.Debug("root not interested, stopping", "run_id", r.opts.RunID, "event", ev.Name())
			return core.StatusRunning, nil
		}

		if s := r.root.React(ev, bb); s.Terminal() {
			log.Debug("reactive run finished", "run_id", r.opts.RunID, "status", s.String(), "events", consumed)
			return s, nil
		}

		if r.opts.MaxTicks > 0 && consumed >= r.opts.MaxTicks {
			log.Warn("reactive run aborted", "run_id", r.opts.RunID, "events", consumed)
			return core.StatusRunning, ErrMaxTicks
		}
	}
}

// RunEvents is a convenience helper that builds a ReactiveRunner and
// executes a single run, returning true if the tree succeeded.
func RunEvents[C any](ctx context.Context, root core.ReactiveNode[C], src EventSource, bb C, optFns ...func(o *Options)) (bool, error) {
	s, err := NewReactive(root, optFns...).Run(ctx, src, bb)
	if err != nil {
		return false, err
	}
	return s == core.StatusSuccess, nil
}
