package host

import "context"

// Workspace exposes the host editor's view of the files under its root.
//
// FlushAll and ReloadChanged are the only synchronization points between
// the editor's in-memory state and the filesystem. Both are best effort,
// not transactional.
type Workspace interface {
	// Root returns the absolute path of the workspace root.
	Root() string

	// FlushAll writes every pending in-memory edit to disk so an external
	// tool observes consistent file contents.
	FlushAll(ctx context.Context) error

	// ReloadChanged re-reads files whose on-disk contents changed behind
	// the editor's back. A nil or empty paths slice asks the host to
	// rescan all open files.
	ReloadChanged(ctx context.Context, paths []string) error
}

// Reporter presents user-visible messages. The host owns presentation;
// callers only choose the severity.
type Reporter interface {
	// Info reports an informational message.
	Info(msg string)

	// Warn reports a non-fatal warning.
	Warn(msg string)

	// Error reports an error.
	Error(msg string)
}
