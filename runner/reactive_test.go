package runner

import (
	"context"
	"testing"

	"github.com/hupe1980/bhvtree/core"
	"github.com/hupe1980/bhvtree/internal/testutil"
	"github.com/hupe1980/bhvtree/reactive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tick = core.Signal("tick")
	exit = core.Signal("exit")
)

func TestReactiveRunner_TerminalVerdict(t *testing.T) {
	root := testutil.NewReactiveStub(core.StatusRunning, core.StatusSuccess)

	s, err := NewReactive[any](root).Run(context.Background(), SliceSource(tick, tick, tick), nil)
	require.NoError(t, err)
	assert.Equal(t, core.StatusSuccess, s)
	assert.Equal(t, 2, root.Reacts)
}

func TestReactiveRunner_SourceExhausted(t *testing.T) {
	root := testutil.NewReactiveStub(core.StatusRunning)

	s, err := NewReactive[any](root).Run(context.Background(), SliceSource(tick, tick), nil)
	require.NoError(t, err)
	// No verdict yet: the run is still pending.
	assert.Equal(t, core.StatusRunning, s)
}

func TestReactiveRunner_StopsWhenRootNotInterested(t *testing.T) {
	root := testutil.NewGatedStub(core.EventKind(exit), core.StatusSuccess)

	s, err := NewReactive[any](root).Run(context.Background(), SliceSource(tick, exit), nil)
	require.NoError(t, err)
	// The first event already stops the run; the gate never sees "exit".
	assert.Equal(t, core.StatusRunning, s)
	assert.Equal(t, 0, root.Reacts)
}

func TestReactiveRunner_EventGateScenario(t *testing.T) {
	i := 0
	seq, err := reactive.NewSequence[*int](
		reactive.NewAction(func(i *int) { *i++ }),
		reactive.NewAction(func(i *int) { *i++ }),
		reactive.NewWaitFor(core.EventKind(exit), core.ReactiveNode[*int](reactive.NewAction(func(*int) {}))),
	)
	require.NoError(t, err)

	events := SliceSource(tick, tick, tick, tick, tick, exit)

	ok, err := RunEvents(context.Background(), core.ReactiveNode[*int](seq), events, &i)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, i)
}

func TestReactiveRunner_ChanSource(t *testing.T) {
	ch := make(chan core.Event, 3)
	ch <- tick
	ch <- tick
	close(ch)

	root := testutil.NewReactiveStub(core.StatusRunning)
	s, err := NewReactive[any](root).Run(context.Background(), ChanSource(ch), nil)
	require.NoError(t, err)
	assert.Equal(t, core.StatusRunning, s)
	assert.Equal(t, 2, root.Reacts)
}

func TestReactiveRunner_MaxEvents(t *testing.T) {
	root := testutil.NewReactiveStub(core.StatusRunning)

	s, err := NewReactive[any](root, WithMaxTicks(5)).Run(context.Background(), RepeatSource(tick), nil)
	assert.ErrorIs(t, err, ErrMaxTicks)
	assert.Equal(t, core.StatusRunning, s)
	assert.Equal(t, 5, root.Reacts)
}
