package process

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
	"syscall"
	"time"
)

// defaultScanBuffer is the maximum line length accepted from a stream.
const defaultScanBuffer = 64 * 1024

// State represents the lifecycle state of a process.
type State int

const (
	// StateCreated indicates the process has been created but not started.
	StateCreated State = iota
	// StateRunning indicates the process is currently running.
	StateRunning
	// StateExited indicates the process has exited normally or with an error.
	StateExited
	// StateKilled indicates the process was killed by a signal.
	StateKilled
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateRunning:
		return "running"
	case StateExited:
		return "exited"
	case StateKilled:
		return "killed"
	default:
		return fmt.Sprintf("unknown(%d)", s)
	}
}

// Stream identifies the source of an output line.
type Stream int

const (
	// Stdout is the standard output stream.
	Stdout Stream = iota
	// Stderr is the standard error stream.
	Stderr
)

// String returns the stream name.
func (s Stream) String() string {
	switch s {
	case Stdout:
		return "stdout"
	case Stderr:
		return "stderr"
	default:
		return "unknown"
	}
}

// LineHandler receives one output line, without its trailing newline.
// Lines from the same stream arrive in emission order; lines from
// different streams may interleave.
type LineHandler func(stream Stream, line string)

// ExitHandler receives the terminal outcome of a process: its exit code
// and any error from waiting on it. It is invoked exactly once, strictly
// after every line has been delivered.
type ExitHandler func(code int, err error)

// Process represents a managed child process with streamed output.
//
// Process is safe for concurrent use.
type Process struct {
	// ID is the unique identifier for this process.
	ID string

	// Name is a human-readable name for the process.
	Name string

	// Cmd is the underlying exec.Cmd.
	Cmd *exec.Cmd

	// Started is the time the process was started.
	Started time.Time

	onLine LineHandler
	onExit ExitHandler

	// done is closed after the exit handler returns.
	done chan struct{}

	// state tracks the current process state.
	state atomic.Int32

	// exitCode stores the exit code after the process exits.
	exitCode atomic.Int32

	// exitErr stores any error from Wait().
	exitErr error

	// mu protects exitErr.
	mu sync.RWMutex

	// waitOnce ensures the wait loop runs once.
	waitOnce sync.Once
}

// NewProcess creates a new Process wrapping the given command.
//
// The command must not be started before calling NewProcess. Use
// Supervisor.Start to launch it with stream and exit tracking. Either
// handler may be nil.
func NewProcess(id, name string, cmd *exec.Cmd, onLine LineHandler, onExit ExitHandler) *Process {
	p := &Process{
		ID:     id,
		Name:   name,
		Cmd:    cmd,
		onLine: onLine,
		onExit: onExit,
		done:   make(chan struct{}),
	}
	p.state.Store(int32(StateCreated))
	p.exitCode.Store(-1) // -1 indicates not exited
	return p
}

// State returns the current process state.
func (p *Process) State() State {
	return State(p.state.Load())
}

// ExitCode returns the process exit code.
// Returns -1 if the process has not exited.
func (p *Process) ExitCode() int {
	return int(p.exitCode.Load())
}

// ExitError returns any error from waiting on the process.
// Returns nil if the process exited successfully or hasn't exited.
func (p *Process) ExitError() error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.exitErr
}

// Done returns a channel that is closed after the process has exited and
// its exit handler has returned.
func (p *Process) Done() <-chan struct{} {
	return p.done
}

// IsRunning returns true if the process is currently running.
func (p *Process) IsRunning() bool {
	return p.State() == StateRunning
}

// HasExited returns true if the process has exited (normally or killed).
func (p *Process) HasExited() bool {
	state := p.State()
	return state == StateExited || state == StateKilled
}

// PID returns the process ID, or -1 if not started.
func (p *Process) PID() int {
	if p.Cmd.Process == nil {
		return -1
	}
	return p.Cmd.Process.Pid
}

// Signal sends a signal to the process.
// Returns an error if the process is not running.
func (p *Process) Signal(sig os.Signal) error {
	if !p.IsRunning() {
		return fmt.Errorf("process not running: %w", ErrProcessNotStarted)
	}

	if p.Cmd.Process == nil {
		return ErrProcessNotStarted
	}

	return p.Cmd.Process.Signal(sig)
}

// Kill sends SIGKILL to the process.
func (p *Process) Kill() error {
	return p.Signal(syscall.SIGKILL)
}

// Terminate sends SIGTERM to the process.
func (p *Process) Terminate() error {
	return p.Signal(syscall.SIGTERM)
}

// Runtime returns the duration the process has been running.
// If the process has exited, returns the total runtime.
func (p *Process) Runtime() time.Duration {
	if p.Started.IsZero() {
		return 0
	}
	return time.Since(p.Started)
}

// start pipes the command's output streams, launches it, and begins
// stream scanning and exit tracking. Called by the Supervisor.
func (p *Process) start() error {
	if p.State() != StateCreated {
		return ErrProcessAlreadyStarted
	}

	stdout, err := p.Cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("create stdout pipe: %w", err)
	}

	stderr, err := p.Cmd.StderrPipe()
	if err != nil {
		_ = stdout.Close()
		return fmt.Errorf("create stderr pipe: %w", err)
	}

	// Scanner goroutines must exist before Start so no early output is
	// lost, and must be counted before the wait loop runs so exit cannot
	// be observed before both streams are drained.
	var drained sync.WaitGroup
	drained.Add(2)

	if err := p.Cmd.Start(); err != nil {
		_ = stdout.Close()
		_ = stderr.Close()
		return fmt.Errorf("start process: %w", err)
	}

	p.Started = time.Now()
	p.state.Store(int32(StateRunning))

	go func() {
		defer drained.Done()
		p.scanStream(stdout, Stdout)
	}()
	go func() {
		defer drained.Done()
		p.scanStream(stderr, Stderr)
	}()

	go p.waitLoop(&drained)

	return nil
}

// scanStream delivers each line of r to the line handler.
func (p *Process) scanStream(r io.Reader, stream Stream) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, defaultScanBuffer), defaultScanBuffer)

	for scanner.Scan() {
		if p.onLine != nil {
			p.onLine(stream, scanner.Text())
		}
	}
	// Scanner errors (closed pipe, oversized line) end delivery for this
	// stream; the exit path still runs.
}

// waitLoop waits for stream drain and process exit, updates state, and
// fires the exit handler exactly once.
func (p *Process) waitLoop(drained *sync.WaitGroup) {
	p.waitOnce.Do(func() {
		// Drain both streams before Wait; Wait closes the pipes.
		drained.Wait()

		err := p.Cmd.Wait()

		p.mu.Lock()
		p.exitErr = err
		p.mu.Unlock()

		exitCode := 0
		state := StateExited

		if err != nil {
			if exitErr, ok := err.(*exec.ExitError); ok {
				exitCode = exitErr.ExitCode()
				if status, ok := exitErr.Sys().(syscall.WaitStatus); ok {
					if status.Signaled() {
						state = StateKilled
					}
				}
			} else {
				exitCode = -1
			}
		}

		p.exitCode.Store(int32(exitCode))
		p.state.Store(int32(state))

		if p.onExit != nil {
			p.onExit(exitCode, err)
		}
		close(p.done)
	})
}
