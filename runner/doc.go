// Package runner provides the execution drivers that feed a tree until it
// produces a verdict.
//
// The poll Runner calls the root's Tick in a loop. This busy-loops without
// yielding, so it is only appropriate when ticks are guaranteed to make
// bounded progress; use WithMaxTicks as a guard and WithInterval to pace
// calls when the tree polls external state.
//
// The reactive Runner consumes an EventSource one event at a time, stopping
// when the root produces a terminal status, when the root declares no
// interest in an event's kind, or when the source is exhausted — the latter
// two end the run without a verdict (the returned status is Running).
//
// Both drivers honor context cancellation between steps; there is no
// intrinsic cancellation signal inside a mid-flight node.
package runner
