package process

import (
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Supervisor starts and tracks managed child processes.
//
// Supervisor is safe for concurrent use.
type Supervisor struct {
	mu        sync.RWMutex
	processes map[string]*Process

	// closed indicates the supervisor has been shut down.
	closed atomic.Bool
}

// NewSupervisor creates a new process supervisor.
func NewSupervisor() *Supervisor {
	return &Supervisor{
		processes: make(map[string]*Process),
	}
}

// Start launches a new managed process with a generated ID.
//
// The command's stdout and stderr are piped and delivered line by line to
// onLine. onExit fires exactly once, after both streams are drained.
// Returns ErrSupervisorShutdown if the supervisor has been shut down, or
// the spawn error if the process could not be started. A process that
// fails to start is not tracked and its exit handler never fires.
func (s *Supervisor) Start(name string, cmd *exec.Cmd, onLine LineHandler, onExit ExitHandler) (*Process, error) {
	return s.StartWithID(uuid.New().String(), name, cmd, onLine, onExit)
}

// StartWithID launches a new managed process with a specific ID.
// Useful for deterministic testing.
func (s *Supervisor) StartWithID(id, name string, cmd *exec.Cmd, onLine LineHandler, onExit ExitHandler) (*Process, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed.Load() {
		return nil, ErrSupervisorShutdown
	}

	proc := NewProcess(id, name, cmd, onLine, onExit)

	if err := proc.start(); err != nil {
		return nil, err
	}

	s.processes[id] = proc
	go s.monitorProcess(proc)

	return proc, nil
}

// monitorProcess removes a process from tracking once it exits.
func (s *Supervisor) monitorProcess(proc *Process) {
	<-proc.Done()

	s.mu.Lock()
	delete(s.processes, proc.ID)
	s.mu.Unlock()
}

// Get returns a process by ID, or nil if not found.
func (s *Supervisor) Get(id string) *Process {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.processes[id]
}

// List returns all tracked processes.
func (s *Supervisor) List() []*Process {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Process, 0, len(s.processes))
	for _, p := range s.processes {
		result = append(result, p)
	}
	return result
}

// Count returns the number of tracked processes.
func (s *Supervisor) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.processes)
}

// Shutdown terminates all tracked processes and stops accepting new ones.
//
// Processes receive SIGTERM and are given timeout to exit; stragglers are
// killed. Shutdown blocks until every tracked process has exited.
func (s *Supervisor) Shutdown(timeout time.Duration) {
	if s.closed.Swap(true) {
		return // Already shut down
	}

	s.mu.RLock()
	procs := make([]*Process, 0, len(s.processes))
	for _, p := range s.processes {
		procs = append(procs, p)
	}
	s.mu.RUnlock()

	if len(procs) == 0 {
		return
	}

	for _, p := range procs {
		if p.IsRunning() {
			_ = p.Terminate()
		}
	}

	done := make(chan struct{})
	go func() {
		for _, p := range procs {
			<-p.Done()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		for _, p := range procs {
			if p.IsRunning() {
				_ = p.Kill()
			}
		}
		<-done
	}
}

// IsShutdown returns true if the supervisor has been shut down.
func (s *Supervisor) IsShutdown() bool {
	return s.closed.Load()
}
