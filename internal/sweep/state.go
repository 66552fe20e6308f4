package sweep

// State represents the lifecycle state of one invocation.
//
// Transitions: Idle -> Launching -> Running -> {Succeeded, Failed}.
// Launching moves directly to Failed when the executable is missing or
// the process cannot be spawned; Running is never entered in that case.
// Terminal states are not re-entrant; a new request starts a fresh
// instance.
type State int

const (
	// StateIdle - The invocation has been created but not started.
	StateIdle State = iota

	// StateLaunching - The executable is being resolved and validated.
	StateLaunching

	// StateRunning - The external process is running.
	StateRunning

	// StateSucceeded - The process exited with code 0.
	StateSucceeded

	// StateFailed - The process exited non-zero, failed to spawn, or the
	// executable was missing.
	StateFailed
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLaunching:
		return "launching"
	case StateRunning:
		return "running"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal returns true for Succeeded and Failed.
func (s State) Terminal() bool {
	return s == StateSucceeded || s == StateFailed
}
