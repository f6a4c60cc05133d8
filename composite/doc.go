// Package composite provides the poll-model composite nodes: Sequence
// (ordered-AND) and Selector (ordered-OR). Both are thin wrappers over a
// single generic list engine that runs children under a continuation policy
// and maintains the cursor-based resumption state across partial runs.
package composite
