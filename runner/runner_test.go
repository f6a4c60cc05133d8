package runner

import (
	"context"
	"testing"

	"github.com/hupe1980/bhvtree/adapt"
	"github.com/hupe1980/bhvtree/composite"
	"github.com/hupe1980/bhvtree/core"
	"github.com/hupe1980/bhvtree/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_RunsToSuccess(t *testing.T) {
	i := 0
	seq, err := composite.NewSequence[*int](
		adapt.NewAction(func(i *int) { *i++ }),
		adapt.NewAction(func(i *int) { *i++ }),
	)
	require.NoError(t, err)

	ok, err := Run(context.Background(), core.Node[*int](seq), &i)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, i)
}

func TestRunner_LoopsWhileRunning(t *testing.T) {
	v := 3
	countdown := adapt.NewStep(func(i *int) core.Status {
		if *i == 0 {
			return core.StatusSuccess
		}
		*i--
		return core.StatusRunning
	})

	s, err := New(core.Node[*int](countdown)).Run(context.Background(), &v)
	require.NoError(t, err)
	assert.Equal(t, core.StatusSuccess, s)
	assert.Equal(t, 0, v)
}

func TestRunner_FailureIsAVerdict(t *testing.T) {
	ok, err := Run[any](context.Background(), testutil.NewStub(core.StatusFailure), nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRunner_ResetsRootAfterRun(t *testing.T) {
	root := testutil.NewStub(core.StatusRunning, core.StatusSuccess)
	r := New[any](root)

	s, err := r.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, core.StatusSuccess, s)
	assert.Equal(t, 1, root.Resets)

	// The reset rearmed the tree, so a second run replays the script.
	s, err = r.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, core.StatusSuccess, s)
	assert.Equal(t, 4, root.Ticks)
}

func TestRunner_MaxTicks(t *testing.T) {
	forever := testutil.NewStub(core.StatusRunning)

	s, err := New[any](forever, WithMaxTicks(10)).Run(context.Background(), nil)
	assert.ErrorIs(t, err, ErrMaxTicks)
	assert.Equal(t, core.StatusRunning, s)
	assert.Equal(t, 10, forever.Ticks)
	// The abandoned tree was reset on behalf of the caller.
	assert.Equal(t, 1, forever.Resets)
}

func TestRunner_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	forever := testutil.NewStub(core.StatusRunning)
	s, err := New[any](forever).Run(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, core.StatusRunning, s)
	assert.Equal(t, 0, forever.Ticks)
}

func TestRunner_SelectorScenario(t *testing.T) {
	// Selector over guarded branches: with v = 25 neither guard holds, so
	// the third branch runs.
	type state struct {
		v      int
		branch int
	}

	branch := func(lo, hi, id int) core.Node[*state] {
		seq, err := composite.NewSequence[*state](
			adapt.NewCond(func(s *state) bool { return s.v >= lo && s.v < hi }),
			adapt.NewAction(func(s *state) { s.branch = id }),
		)
		require.NoError(t, err)
		return seq
	}

	sel, err := composite.NewSelector[*state](
		branch(0, 5, 1),
		branch(5, 25, 2),
		adapt.NewAction(func(s *state) { s.branch = 3 }),
	)
	require.NoError(t, err)

	s := &state{v: 25}
	ok, err := Run(context.Background(), core.Node[*state](sel), s)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, s.branch)
}
