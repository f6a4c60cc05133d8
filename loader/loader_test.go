package loader

import (
	"context"
	"testing"

	"github.com/hupe1980/bhvtree/core"
	"github.com/hupe1980/bhvtree/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type world struct {
	V      int
	Branch int
	Runs   int
}

func testRegistry() *Registry[*world] {
	return NewRegistry[*world]().
		Action("small", func(w *world) { w.Branch = 1 }).
		Action("medium", func(w *world) { w.Branch = 2 }).
		Action("fallback", func(w *world) { w.Branch = 3 }).
		Action("work", func(w *world) { w.Runs++ }).
		Cond("never", func(*world) bool { return false })
}

func TestLoad_GuardedSelector(t *testing.T) {
	doc := []byte(`
root:
  selector:
    - sequence:
        - expr: "V >= 0 && V < 5"
        - action: small
    - sequence:
        - expr: "V >= 5 && V < 25"
        - action: medium
    - action: fallback
`)

	tree, err := Load(doc, testRegistry())
	require.NoError(t, err)

	w := &world{V: 25}
	ok, err := runner.Run(context.Background(), tree, w)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, w.Branch)

	w = &world{V: 7}
	_, err = runner.Run(context.Background(), tree, w)
	require.NoError(t, err)
	assert.Equal(t, 2, w.Branch)
}

func TestLoad_Decorators(t *testing.T) {
	doc := []byte(`
root:
  sequence:
    - repeat:
        count: 3
        node: {action: work}
    - invert:
        cond: never
    - force_failure: {action: work}
`)

	tree, err := Load(doc, testRegistry())
	require.NoError(t, err)

	w := &world{}
	s, err := runner.New(tree).Run(context.Background(), w)
	require.NoError(t, err)
	// The forced failure ends the sequence with failure after all the work.
	assert.Equal(t, core.StatusFailure, s)
	assert.Equal(t, 4, w.Runs)
}

func TestLoad_RepeatUntilExpr(t *testing.T) {
	doc := []byte(`
root:
  repeat_until:
    expr: "Runs >= 3"
    node: {action: work}
`)

	tree, err := Load(doc, testRegistry())
	require.NoError(t, err)

	w := &world{}
	ok, err := runner.Run(context.Background(), tree, w)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, w.Runs)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"no root", `{}`, "no root"},
		{"unknown action", `{root: {action: nope}}`, `unknown action "nope"`},
		{"unknown cond", `{root: {cond: nope}}`, `unknown cond "nope"`},
		{"empty composite", `{root: {sequence: []}}`, "at least one child"},
		{"ambiguous node", `{root: {action: work, cond: never}}`, "exactly one"},
		{"bad expression", `{root: {expr: "V +"}}`, "compile condition"},
		{"repeat missing node", `{root: {repeat: {count: 2}}}`, "missing node"},
		{"run_if both predicates", `{root: {run_if: {cond: never, expr: "true", node: {action: work}}}}`, "exactly one of cond/expr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.doc), testRegistry())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
