// Package decorator provides poll-model single-child wrappers that transform
// a node's status or gate its execution:
//
//   - Invert, ForceSuccess, ForceFailure (outcome rewriting)
//   - Repeat (fixed-count repetition)
//   - RepeatUntil (predicate-gated repetition)
//   - RunIf (context-predicate gate, evaluated each call)
//
// Decorators interact with the reset discipline: wrappers that re-run their
// child reset it between completions, and forward their own Reset so an
// enclosing composite can rearm the whole chain. The reactive-only
// decorators (event gating, retry-until-outcome) live in package reactive.
package decorator
