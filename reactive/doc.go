// Package reactive provides the event-driven variant of the tree engine.
// Instead of being polled every tick, reactive nodes consume discrete
// external events one at a time and declare, per event kind, whether the
// event should reach them at all.
//
// The package contains:
//
//   - Sequence / Selector composites that traverse children in list order,
//     offering each event to consecutive willing children and stopping the
//     scan at the first uninterested one
//   - WaitFor, the event gate that makes ordering the scheduling primitive:
//     a gated node "waits" for its kind while everything after it in the
//     list is blocked for non-matching events
//   - RepeatUntilSuccess / RepeatUntilFailure retry decorators and the
//     status-rewriting decorators Invert, ForceSuccess and ForceFailure
//   - Cond / Action / Step leaf adaptors reacting to any event
//
// Poll and reactive nodes are never mixed in one tree.
package reactive
