package core

import (
	"reflect"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Kind is an opaque 64-bit fingerprint identifying an event's logical type.
// It is produced by hashing a stable textual identifier and compared only
// for equality; it is never used to reconstruct the event's payload.
//
// The fingerprint is a best-effort identity check, not a guarantee against
// collision: two distinct names hashing to the same Kind would be treated as
// the same kind. The probability is vanishingly small for realistic event
// vocabularies, but callers who cannot tolerate it should derive kinds from
// an explicitly managed name set instead of ad hoc strings.
type Kind uint64

// Event is any value a reactive tree can consume. Name returns the stable
// textual identifier the event's Kind is derived from: the declared name for
// value-dependent events, or the static type name for marker events.
type Event interface {
	Name() string
}

// Signal is a ready-made payload-free event whose name is its value.
//
//	runner.SliceSource(core.Signal("exit"))
type Signal string

// Name implements Event.
func (s Signal) Name() string { return string(s) }

// KindOf returns the kind fingerprint for a canonical event name.
func KindOf(name string) Kind { return Kind(xxhash.Sum64String(name)) }

// EventKind returns the kind fingerprint of an event.
func EventKind(e Event) Kind { return KindOf(e.Name()) }

var typeNames sync.Map // reflect.Type -> string

// TypeName returns the canonical name for a marker event type: its Go type
// path and name. The result is cached per type.
func TypeName[E any]() string {
	t := reflect.TypeOf((*E)(nil)).Elem()
	if n, ok := typeNames.Load(t); ok {
		return n.(string)
	}
	n := t.String()
	if pkg := t.PkgPath(); pkg != "" {
		n = pkg + "." + t.Name()
	}
	typeNames.Store(t, n)
	return n
}

// TypeKind returns the kind fingerprint for a marker event type, derived
// from its static type name. Use it to build gates for events whose identity
// does not depend on any payload:
//
//	type Exit struct{}
//	func (Exit) Name() string { return core.TypeName[Exit]() }
//
//	gate := reactive.NewWaitFor(core.TypeKind[Exit](), child)
func TypeKind[E any]() Kind { return KindOf(TypeName[E]()) }
