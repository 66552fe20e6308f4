// Package sweep orchestrates the external emoji-clean tool.
//
// The package owns the full lifecycle of one tool invocation: resolving
// the bundled executable, building its argument vector from include and
// exclude glob patterns, flushing pending editor edits so the tool sees
// consistent file contents, launching the tool without blocking the host,
// forwarding its output to the host's message sinks, and reconciling the
// host's view of the filesystem when the tool exits.
//
// File contents are never touched directly; all mutation is delegated to
// the external process. The package only observes its text output and
// exit code.
package sweep
