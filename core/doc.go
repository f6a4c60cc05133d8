// Package core provides the foundational types and contracts of bhvtree. It
// defines the core abstractions for:
//
//   - Status (the three-valued outcome algebra shared by every node)
//   - Node / ReactiveNode (the poll and reactive execution contracts)
//   - Event / Kind (lightweight event identification for reactive dispatch)
//
// The package intentionally keeps implementation concerns (composites,
// decorators, leaf adaptors, drivers) out of scope, exposing small interfaces
// so trees can mix arbitrary node implementations. All exported identifiers
// include concise documentation to aid discoverability and external
// consumption.
package core
