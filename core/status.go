package core

// Status represents the outcome of advancing a node by one step. It is the
// only runtime result channel in bhvtree: logical failure is an ordinary,
// expected value, not an error condition.
type Status int

const (
	// StatusRunning indicates the node has not finished and wants to be
	// advanced again (poll model) or offered another event (reactive model).
	StatusRunning Status = iota
	// StatusSuccess indicates the node completed successfully. Terminal for
	// the current run.
	StatusSuccess
	// StatusFailure indicates the node failed to complete. Terminal for the
	// current run.
	StatusFailure
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status ends the current run. A node that
// produced a terminal status must be Reset before it is stepped again.
func (s Status) Terminal() bool { return s != StatusRunning }
