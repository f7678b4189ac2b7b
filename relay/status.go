package relay

// State is the relay lifecycle: Starting -> Running -> Terminated
type State int32

const (
	StateStarting State = iota
	StateRunning
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	}

	return "unknown"
}

// Status describes why Run returned
type Status int

const (
	// StatusRunning is never returned by Run
	StatusRunning Status = iota

	// StatusLocalClosed means the local peer closed its end on a frame boundary
	StatusLocalClosed

	// StatusBusClosed means the subscription ended without a broker error
	StatusBusClosed

	// StatusCancelled means the context passed to Run was cancelled
	StatusCancelled

	StatusFault
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusLocalClosed:
		return "local side closed"
	case StatusBusClosed:
		return "bus side closed"
	case StatusCancelled:
		return "cancelled"
	case StatusFault:
		return "fault"
	}

	return "unknown"
}

// ExitCode maps a Status to a process exit code. A peer-initiated local close
// or a requested shutdown is a success; a lost bus needs a restart and is
// reported apart from faults.
func (s Status) ExitCode() int {
	switch s {
	case StatusLocalClosed, StatusCancelled:
		return 0
	case StatusBusClosed:
		return 2
	}

	return 1
}
