package host

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
)

// ConsoleReporter writes messages to an io.Writer pair, one line per
// message. It is the Reporter used when running outside a live editor.
type ConsoleReporter struct {
	mu  sync.Mutex
	out io.Writer
	err io.Writer
}

// NewConsoleReporter creates a reporter writing info to out and
// warnings/errors to errw. Nil writers default to stdout and stderr.
func NewConsoleReporter(out, errw io.Writer) *ConsoleReporter {
	if out == nil {
		out = os.Stdout
	}
	if errw == nil {
		errw = os.Stderr
	}
	return &ConsoleReporter{out: out, err: errw}
}

// Info reports an informational message.
func (r *ConsoleReporter) Info(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out, msg)
}

// Warn reports a non-fatal warning.
func (r *ConsoleReporter) Warn(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.err, "warning: "+msg)
}

// Error reports an error.
func (r *ConsoleReporter) Error(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.err, "error: "+msg)
}

// ConsoleWorkspace is a Workspace with no in-memory state. Flush and
// reload are no-ops; it exists so the orchestration can run headless.
type ConsoleWorkspace struct {
	root string
}

// NewConsoleWorkspace creates a workspace rooted at root.
func NewConsoleWorkspace(root string) *ConsoleWorkspace {
	return &ConsoleWorkspace{root: root}
}

// Root returns the workspace root.
func (w *ConsoleWorkspace) Root() string { return w.root }

// FlushAll is a no-op; a console host holds no unsaved edits.
func (w *ConsoleWorkspace) FlushAll(ctx context.Context) error { return nil }

// ReloadChanged is a no-op; a console host holds no open views.
func (w *ConsoleWorkspace) ReloadChanged(ctx context.Context, paths []string) error { return nil }

// Interface checks.
var (
	_ Reporter  = (*ConsoleReporter)(nil)
	_ Workspace = (*ConsoleWorkspace)(nil)
)
