package sweep

import (
	"sync"
	"sync/atomic"

	"github.com/dshills/emojisweep/internal/process"
)

// eventKind discriminates run events.
type eventKind int

const (
	eventLine eventKind = iota
	eventExit
)

// runEvent is one message delivered to a run's event loop. Stream lines
// and the terminal exit notification flow through a single channel with
// a single consumer, so exit-after-drain ordering is structural rather
// than incidental.
type runEvent struct {
	kind   eventKind
	stream process.Stream
	line   string
	code   int
	err    error
}

// Outcome is the terminal, immutable result of one invocation.
type Outcome struct {
	// Code is the process exit code. -1 when the process never ran or
	// could not be waited on.
	Code int

	// Stdout holds the informational lines delivered, in order.
	Stdout []string

	// Stderr holds the warning lines delivered, in order.
	Stderr []string

	// Err is the spawn or wait error, if any.
	Err error
}

// Run is one end-to-end launch-to-exit lifecycle of the external tool.
// Each user request creates an independent Run; terminal states are not
// re-entrant and no state is shared between runs.
type Run struct {
	// ID uniquely identifies this invocation.
	ID string

	// Invocation is the built command line. Zero when the run failed
	// before the argument vector was constructed.
	Invocation Invocation

	state atomic.Int32

	// events feeds the run loop. Buffered so stream scanners rarely
	// block; the loop drains until the exit event.
	events chan runEvent

	// done is closed once the run reaches a terminal state and all
	// reporting and reconciliation for it has finished.
	done chan struct{}

	mu      sync.Mutex
	outcome Outcome
}

// newRun creates a run in StateIdle.
func newRun(id string) *Run {
	r := &Run{
		ID:     id,
		events: make(chan runEvent, 256),
		done:   make(chan struct{}),
	}
	r.state.Store(int32(StateIdle))
	r.outcome.Code = -1
	return r
}

// State returns the current lifecycle state.
func (r *Run) State() State {
	return State(r.state.Load())
}

// Finished returns true once the run reached a terminal state.
func (r *Run) Finished() bool {
	return r.State().Terminal()
}

// Done returns a channel closed when the run is terminal and fully
// reported.
func (r *Run) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the run finishes and returns its outcome.
func (r *Run) Wait() Outcome {
	<-r.done
	return r.Outcome()
}

// Outcome returns the result so far. Stable once Finished reports true.
func (r *Run) Outcome() Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := r.outcome
	out.Stdout = append([]string{}, r.outcome.Stdout...)
	out.Stderr = append([]string{}, r.outcome.Stderr...)
	return out
}

// setState advances the lifecycle.
func (r *Run) setState(s State) {
	r.state.Store(int32(s))
}

// markRunning moves Launching to Running. A no-op when the run already
// reached a terminal state, which can happen when the process exits
// before the launcher observes the successful spawn.
func (r *Run) markRunning() {
	r.state.CompareAndSwap(int32(StateLaunching), int32(StateRunning))
}

// recordLine appends a delivered line to the outcome.
func (r *Run) recordLine(stream process.Stream, line string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stream == process.Stdout {
		r.outcome.Stdout = append(r.outcome.Stdout, line)
	} else {
		r.outcome.Stderr = append(r.outcome.Stderr, line)
	}
}

// finish records the terminal outcome and state.
func (r *Run) finish(code int, err error) {
	r.mu.Lock()
	r.outcome.Code = code
	r.outcome.Err = err
	r.mu.Unlock()

	if code == 0 && err == nil {
		r.setState(StateSucceeded)
	} else {
		r.setState(StateFailed)
	}
}
