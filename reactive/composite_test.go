package reactive

import (
	"testing"

	"github.com/hupe1980/bhvtree/composite"
	"github.com/hupe1980/bhvtree/core"
	"github.com/hupe1980/bhvtree/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tick = core.Signal("tick")
	exit = core.Signal("exit")
)

func TestNewSequence_RejectsEmpty(t *testing.T) {
	_, err := NewSequence[any]()
	assert.ErrorIs(t, err, composite.ErrNoChildren)

	_, err = NewSelector[any]()
	assert.ErrorIs(t, err, composite.ErrNoChildren)
}

func TestSequence_GatedChildBlocksSuffix(t *testing.T) {
	before := testutil.NewReactiveStub(core.StatusSuccess)
	gated := testutil.NewGatedStub(core.EventKind(exit), core.StatusSuccess)
	after := testutil.NewReactiveStub(core.StatusSuccess)

	seq, err := NewSequence[any](before, gated, after)
	require.NoError(t, err)

	// A non-matching event is consumed by the prefix only; the gated child
	// and everything after it never see it.
	assert.Equal(t, core.StatusRunning, seq.React(tick, nil))
	assert.Equal(t, 1, before.Reacts)
	assert.Equal(t, 0, gated.Reacts)
	assert.Equal(t, 0, after.Reacts)

	// Further non-matching events are dropped entirely.
	assert.Equal(t, core.StatusRunning, seq.React(tick, nil))
	assert.Equal(t, 1, before.Reacts)

	// The awaited kind unblocks the gate and the suffix in one call.
	assert.Equal(t, core.StatusSuccess, seq.React(exit, nil))
	assert.Equal(t, 1, gated.Reacts)
	assert.Equal(t, 1, after.Reacts)
	assert.Equal(t, []string{"exit"}, gated.Seen)
}

func TestSequence_ShortCircuitOnFailure(t *testing.T) {
	a := testutil.NewReactiveStub(core.StatusSuccess)
	b := testutil.NewReactiveStub(core.StatusFailure)
	c := testutil.NewReactiveStub(core.StatusSuccess)

	seq, err := NewSequence[any](a, b, c)
	require.NoError(t, err)

	assert.Equal(t, core.StatusFailure, seq.React(tick, nil))
	assert.Equal(t, 0, c.Reacts)

	// The short-circuit rearmed the cursor: the next event starts over.
	seq.React(tick, nil)
	assert.Equal(t, 2, a.Reacts)
}

func TestSequence_RunningChildConsumesEvent(t *testing.T) {
	a := testutil.NewReactiveStub(core.StatusSuccess)
	b := testutil.NewReactiveStub(core.StatusRunning, core.StatusSuccess)

	seq, err := NewSequence[any](a, b)
	require.NoError(t, err)

	assert.Equal(t, core.StatusRunning, seq.React(tick, nil))
	// The running child keeps the cursor; the first child is not re-run.
	assert.Equal(t, core.StatusSuccess, seq.React(tick, nil))
	assert.Equal(t, 1, a.Reacts)
	assert.Equal(t, 2, b.Reacts)
}

func TestSelector_TriesNextChildOnFailure(t *testing.T) {
	a := testutil.NewReactiveStub(core.StatusFailure)
	b := testutil.NewReactiveStub(core.StatusSuccess)

	sel, err := NewSelector[any](a, b)
	require.NoError(t, err)

	// Both children are tried within one event; the first success wins.
	assert.Equal(t, core.StatusSuccess, sel.React(tick, nil))
	assert.Equal(t, 1, a.Reacts)
	assert.Equal(t, 1, b.Reacts)
}

func TestSelector_AllFail(t *testing.T) {
	a := testutil.NewReactiveStub(core.StatusFailure)
	b := testutil.NewReactiveStub(core.StatusFailure)

	sel, err := NewSelector[any](a, b)
	require.NoError(t, err)

	assert.Equal(t, core.StatusFailure, sel.React(tick, nil))
}

func TestComposite_AlwaysInterested(t *testing.T) {
	gated := testutil.NewGatedStub(core.EventKind(exit), core.StatusSuccess)
	seq, err := NewSequence[any](gated)
	require.NoError(t, err)

	// The composite itself accepts every kind; interest filtering happens
	// per child during traversal.
	assert.True(t, seq.InterestedIn(core.EventKind(tick)))
	assert.True(t, seq.InterestedIn(core.EventKind(exit)))
}

func TestSequence_EndToEndEventGate(t *testing.T) {
	i := 0
	fired := false

	seq, err := NewSequence[*int](
		NewAction(func(i *int) { *i++ }),
		NewAction(func(i *int) { *i++ }),
		NewWaitFor(core.EventKind(exit), core.ReactiveNode[*int](NewAction(func(*int) { fired = true }))),
	)
	require.NoError(t, err)

	for n := 0; n < 5; n++ {
		assert.Equal(t, core.StatusRunning, seq.React(tick, &i))
		assert.False(t, fired)
	}

	assert.Equal(t, core.StatusSuccess, seq.React(exit, &i))
	assert.True(t, fired)
	assert.Equal(t, 2, i)
}
