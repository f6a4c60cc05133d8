package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hupe1980/bhvtree/core"
	"github.com/hupe1980/bhvtree/logging"
)

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", etc.
}

// Model is the minimal interface tree leaves need: single-turn text
// completion. The anthropic and openai subpackages implement it over the
// official SDK clients.
type Model interface {
	// Complete sends a single prompt and returns the model's text reply.
	Complete(ctx context.Context, prompt string) (string, error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a lightweight in-memory Model useful for tests & examples.
// Replies are consumed in order; the last one repeats once the script is
// exhausted.
type MockModel struct {
	Replies []string
	Err     error

	// Prompts records every prompt seen, for assertions.
	Prompts []string

	idx int
}

// Complete implements Model by replaying the scripted replies.
func (m *MockModel) Complete(_ context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)

	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Replies) == 0 {
		return "", nil
	}

	reply := m.Replies[m.idx]
	if m.idx < len(m.Replies)-1 {
		m.idx++
	}

	return reply, nil
}

// Info implements Model.
func (m *MockModel) Info() Info {
	return Info{Name: "mock", Provider: "mock"}
}

// Options configures model-backed leaves.
type Options struct {
	// Logger receives model errors and unparseable replies.
	Logger logging.Logger

	// Timeout bounds a single model call. Zero means no per-call deadline
	// beyond the caller's context.
	Timeout time.Duration
}

// WithLogger sets the leaf logger.
func WithLogger(l logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = l }
}

// WithTimeout bounds each model call with a deadline.
func WithTimeout(d time.Duration) func(o *Options) {
	return func(o *Options) { o.Timeout = d }
}

// Cond is a condition leaf that asks the model a yes/no question rendered
// from the shared context. A reply starting with "yes" (case-insensitive)
// succeeds, anything else fails. Model errors fail the tick.
type Cond[C any] struct {
	core.BaseNode

	model  Model
	prompt func(C) string
	opts   Options
}

// NewCond creates a model-backed condition. The prompt function renders the
// yes/no question from the current context; an instruction to answer with a
// single word is appended to keep replies parseable.
func NewCond[C any](model Model, prompt func(C) string, optFns ...func(o *Options)) *Cond[C] {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Cond[C]{model: model, prompt: prompt, opts: opts}
}

// Tick implements core.Node.
func (c *Cond[C]) Tick(ctx C) core.Status {
	prompt := c.prompt(ctx) + "\n\nAnswer with a single word: yes or no."

	reply, err := complete(c.model, prompt, c.opts)
	if err != nil {
		c.opts.Logger.Warn("model condition failed", "model", c.model.Info().Name, "error", err)
		return core.StatusFailure
	}

	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(reply)), "yes") {
		return core.StatusSuccess
	}

	return core.StatusFailure
}

// Action is an action leaf that sends a prompt rendered from the shared
// context and stores the reply back into it. Model errors fail the tick;
// otherwise it succeeds.
type Action[C any] struct {
	core.BaseNode

	model  Model
	prompt func(C) string
	store  func(C, string)
	opts   Options
}

// NewAction creates a model-backed action. The prompt function renders the
// request from the current context and store writes the reply back.
func NewAction[C any](model Model, prompt func(C) string, store func(C, string), optFns ...func(o *Options)) *Action[C] {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Action[C]{model: model, prompt: prompt, store: store, opts: opts}
}

// Tick implements core.Node.
func (a *Action[C]) Tick(ctx C) core.Status {
	reply, err := complete(a.model, a.prompt(ctx), a.opts)
	if err != nil {
		a.opts.Logger.Warn("model action failed", "model", a.model.Info().Name, "error", err)
		return core.StatusFailure
	}

	a.store(ctx, reply)

	return core.StatusSuccess
}

func complete(m Model, prompt string, opts Options) (string, error) {
	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	reply, err := m.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("complete: %w", err)
	}

	return reply, nil
}
