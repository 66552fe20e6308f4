package sweep

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/emojisweep/internal/host"
	"github.com/dshills/emojisweep/internal/process"
	"github.com/dshills/emojisweep/internal/watch"
)

// Runner launches and supervises invocations of the external emoji-clean
// tool on behalf of the host editor.
//
// Runner is safe for concurrent use. By default at most one invocation
// is in flight at a time; a second request while one is running is
// rejected with ErrInvocationInProgress and reported as a warning.
type Runner struct {
	workspace  host.Workspace
	reporter   host.Reporter
	supervisor *process.Supervisor

	installRoot     string
	toolPath        string
	allowConcurrent bool
	collectChanges  bool

	mu      sync.Mutex
	current *Run
}

// Option configures a Runner.
type Option func(*Runner)

// WithInstallRoot sets the plugin install root the tool is resolved
// under. Defaults to the workspace root.
func WithInstallRoot(root string) Option {
	return func(r *Runner) {
		r.installRoot = root
	}
}

// WithToolPath overrides tool resolution with an explicit executable
// path.
func WithToolPath(path string) Option {
	return func(r *Runner) {
		r.toolPath = path
	}
}

// WithConcurrentRuns allows multiple invocations in flight at once, with
// interleaved, unsynchronized output.
func WithConcurrentRuns() Option {
	return func(r *Runner) {
		r.allowConcurrent = true
	}
}

// WithChangeCollection controls whether a filesystem watcher records the
// files the tool touches, so reconciliation can reload exactly those.
// Enabled by default; when disabled (or when the watcher cannot start)
// the host is asked to rescan everything.
func WithChangeCollection(enabled bool) Option {
	return func(r *Runner) {
		r.collectChanges = enabled
	}
}

// NewRunner creates a runner bound to the given host capabilities.
func NewRunner(ws host.Workspace, rep host.Reporter, opts ...Option) *Runner {
	r := &Runner{
		workspace:      ws,
		reporter:       rep,
		supervisor:     process.NewSupervisor(),
		collectChanges: true,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.installRoot == "" {
		r.installRoot = ws.Root()
	}

	return r
}

// Running returns true while an invocation is in flight.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current != nil && !r.current.Finished()
}

// Shutdown terminates any in-flight tool process, waiting up to timeout.
func (r *Runner) Shutdown(timeout time.Duration) {
	r.supervisor.Shutdown(timeout)
}

// Run starts one invocation of the external tool and returns without
// blocking on its completion.
//
// Every failure is reported to the host exactly once through the
// Reporter before the error is returned; callers must not report the
// returned error again. The returned Run exposes Done and Wait for
// callers that need completion.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Run, error) {
	cfg = cfg.Clone()
	if err := cfg.Validate(); err != nil {
		r.reporter.Error(err.Error())
		return nil, err
	}

	run := newRun(uuid.New().String())

	r.mu.Lock()
	if !r.allowConcurrent && r.current != nil && !r.current.Finished() {
		r.mu.Unlock()
		r.reporter.Warn("emoji sweep already in progress; ignoring request")
		return nil, ErrInvocationInProgress
	}
	r.current = run
	r.mu.Unlock()

	run.setState(StateLaunching)

	exe := r.resolveTool()
	if !exe.IsExecutable() {
		run.finish(-1, ErrExecutableNotFound)
		close(run.done)
		r.clearCurrent(run)
		r.reporter.Error(fmt.Sprintf("emoji-clean tool not found or not executable: %s (build it with cargo build --release)", exe.Path))
		return run, ErrExecutableNotFound
	}

	run.Invocation = NewInvocation(exe, cfg)

	// The tool reads from disk; unsaved edits must be flushed first or
	// the tool and the editor race on the same files.
	if err := r.workspace.FlushAll(ctx); err != nil {
		run.finish(-1, err)
		close(run.done)
		r.clearCurrent(run)
		r.reporter.Error(fmt.Sprintf("emoji sweep aborted: saving modified files failed: %v", err))
		return run, fmt.Errorf("flush edits: %w", err)
	}

	// Best effort; a failed watcher just means a full rescan later.
	var collector *watch.Collector
	if r.collectChanges {
		collector, _ = watch.NewCollector(r.workspace.Root())
	}

	go r.runLoop(run, collector)

	cmd := exec.Command(run.Invocation.Path(), run.Invocation.Argv()...)
	cmd.Dir = r.workspace.Root()

	onLine := func(stream process.Stream, line string) {
		run.events <- runEvent{kind: eventLine, stream: stream, line: line}
	}
	onExit := func(code int, err error) {
		run.events <- runEvent{kind: eventExit, code: code, err: err}
	}

	if _, err := r.supervisor.StartWithID(run.ID, toolName, cmd, onLine, onExit); err != nil {
		// A spawn failure flows through the same terminal path as a
		// non-zero exit so it is never a silent, unreported condition.
		run.events <- runEvent{kind: eventExit, code: -1, err: err}
		return run, nil
	}

	run.markRunning()
	return run, nil
}

// resolveTool produces the candidate executable for this attempt. Never
// cached; the plugin may be moved or the tool rebuilt between runs.
func (r *Runner) resolveTool() ResolvedExecutable {
	if r.toolPath != "" {
		return ResolvedExecutable{Path: r.toolPath}
	}
	return ResolveTool(r.installRoot)
}

// runLoop is the single consumer of a run's events. Per-stream line
// order is preserved and the exit event arrives only after both streams
// are drained, so delivery here matches the order the tool produced.
func (r *Runner) runLoop(run *Run, collector *watch.Collector) {
	for ev := range run.events {
		switch ev.kind {
		case eventLine:
			if ev.line == "" {
				continue // empty lines are suppressed, not coalesced
			}
			run.recordLine(ev.stream, ev.line)
			if ev.stream == process.Stdout {
				r.reporter.Info(ev.line)
			} else {
				r.reporter.Warn(ev.line)
			}

		case eventExit:
			r.finishRun(run, collector, ev.code, ev.err)
			return
		}
	}
}

// finishRun reports the terminal outcome and reconciles host state.
func (r *Runner) finishRun(run *Run, collector *watch.Collector, code int, err error) {
	var changed []string
	if collector != nil {
		_ = collector.Close()
		changed = collector.Paths()
	}

	run.finish(code, err)

	if code == 0 && err == nil {
		r.reporter.Info("Emoji sweep complete.")
		// Fire and forget: reconciliation reports no further errors, and
		// it is detached from the launch context.
		_ = r.workspace.ReloadChanged(context.Background(), changed)
	} else {
		r.reporter.Error(failureMessage(code, err))
	}

	r.clearCurrent(run)
	close(run.done)
}

// failureMessage formats the single user-visible failure report. The
// numeric exit code is always surfaced verbatim; spawn errors carry the
// underlying cause as well.
func failureMessage(code int, err error) string {
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return fmt.Sprintf("emoji-clean failed with exit code %d: %v", code, err)
	}
	return fmt.Sprintf("emoji-clean failed with exit code %d", code)
}

// clearCurrent releases the single-flight guard if run still owns it.
func (r *Runner) clearCurrent(run *Run) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == run {
		r.current = nil
	}
}
