// Package adapt wraps plain Go functions as poll-model tree leaves:
//
//   - Cond adapts a predicate (true ⇒ success, false ⇒ failure)
//   - Action adapts a mutating function (always succeeds)
//   - Step adapts a Status-returning function, letting a single leaf span
//     multiple ticks
//
// The reactive counterparts live in package reactive.
package adapt
