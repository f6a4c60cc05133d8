package core

// Node is the poll-model contract every tree element implements. The type
// parameter C is the shared context threaded through the whole tree; it is
// typically instantiated with a pointer or map type so nodes can mutate it.
//
// Tick advances the node by one step. Running means "call me again";
// Success/Failure are terminal for the run and must be followed, by the
// caller or an enclosing composite, with a Reset call before the node is
// ticked again. This reset discipline is what allows a tree to be run to
// completion repeatedly (for example inside a Repeat decorator) without
// leaking state from the previous run.
type Node[C any] interface {
	Tick(ctx C) Status
	Reset(last Status)
}

// BaseNode supplies the default no-op Reset for nodes without internal
// resumption state. Embed it in leaf implementations and supply a Tick
// method to satisfy the Node interface.
type BaseNode struct{}

// Reset implements Node with a no-op.
func (BaseNode) Reset(Status) {}

// ReactiveNode is the reactive-model contract: instead of being polled every
// tick, the node consumes discrete external events. A tree is built from
// nodes that all share one shape; poll and reactive nodes are never mixed in
// the same tree.
//
// InterestedIn reports whether the node should be offered events of the
// given kind. React runs the node in response to one event.
type ReactiveNode[C any] interface {
	InterestedIn(kind Kind) bool
	React(event Event, ctx C) Status
}

// BaseReactiveNode supplies the default always-interested InterestedIn.
// Embed it in reactive node implementations and supply a React method.
type BaseReactiveNode struct{}

// InterestedIn implements ReactiveNode, accepting every event kind.
func (BaseReactiveNode) InterestedIn(Kind) bool { return true }
