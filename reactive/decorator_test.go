package reactive

import (
	"testing"

	"github.com/hupe1980/bhvtree/core"
	"github.com/hupe1980/bhvtree/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvert(t *testing.T) {
	inv := NewInvert[any](testutil.NewReactiveStub(core.StatusRunning, core.StatusSuccess))

	assert.Equal(t, core.StatusRunning, inv.React(tick, nil))
	assert.Equal(t, core.StatusFailure, inv.React(tick, nil))
}

func TestInvert_InterestForwarded(t *testing.T) {
	inv := NewInvert[any](testutil.NewGatedStub(core.EventKind(exit)))

	assert.False(t, inv.InterestedIn(core.EventKind(tick)))
	assert.True(t, inv.InterestedIn(core.EventKind(exit)))
}

func TestForceSuccess(t *testing.T) {
	d := NewForceSuccess[any](testutil.NewReactiveStub(core.StatusFailure))
	assert.Equal(t, core.StatusSuccess, d.React(tick, nil))
}

func TestForceFailure(t *testing.T) {
	d := NewForceFailure[any](testutil.NewReactiveStub(core.StatusSuccess))
	assert.Equal(t, core.StatusFailure, d.React(tick, nil))
}

func TestWaitFor_NeverReactsToOtherKinds(t *testing.T) {
	child := testutil.NewReactiveStub(core.StatusSuccess)
	gate := NewWaitFor[any](core.EventKind(exit), child)

	assert.False(t, gate.InterestedIn(core.EventKind(tick)))
	assert.True(t, gate.InterestedIn(core.EventKind(exit)))

	// Inside a composite the interest check guards React; a matching event
	// is forwarded untouched.
	assert.Equal(t, core.StatusSuccess, gate.React(exit, nil))
	assert.Equal(t, []string{"exit"}, child.Seen)
}

func TestRepeatUntilSuccess_SwallowsFailure(t *testing.T) {
	child := testutil.NewReactiveStub(core.StatusFailure, core.StatusFailure, core.StatusSuccess)
	d := NewRepeatUntilSuccess[any](child)

	assert.Equal(t, core.StatusRunning, d.React(tick, nil))
	assert.Equal(t, core.StatusRunning, d.React(tick, nil))
	assert.Equal(t, core.StatusSuccess, d.React(tick, nil))
	assert.Equal(t, 3, child.Reacts)
}

func TestRepeatUntilFailure_SwallowsSuccess(t *testing.T) {
	child := testutil.NewReactiveStub(core.StatusSuccess, core.StatusRunning, core.StatusFailure)
	d := NewRepeatUntilFailure[any](child)

	assert.Equal(t, core.StatusRunning, d.React(tick, nil))
	assert.Equal(t, core.StatusRunning, d.React(tick, nil))
	assert.Equal(t, core.StatusFailure, d.React(tick, nil))
}

func TestRepeatUntilSuccess_RetriesCompositeChild(t *testing.T) {
	// A sequence that fails while the counter is under 3: the retry
	// decorator swallows the failures until the sequence finally succeeds.
	i := 0
	seq, err := NewSequence[*int](
		NewAction(func(i *int) { *i++ }),
		NewCond(func(i *int) bool { return *i >= 3 }),
	)
	require.NoError(t, err)

	d := NewRepeatUntilSuccess[*int](seq)

	assert.Equal(t, core.StatusRunning, d.React(tick, &i))
	assert.Equal(t, core.StatusRunning, d.React(tick, &i))
	assert.Equal(t, core.StatusSuccess, d.React(tick, &i))
	assert.Equal(t, 3, i)
}
