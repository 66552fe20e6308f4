// Package process manages external child processes with line-oriented
// output streaming.
//
// A Process wraps an exec.Cmd with lifecycle state, exit tracking, and
// per-line stdout/stderr callbacks. The Supervisor starts and tracks
// processes and guarantees that a process's exit callback fires only after
// both of its output streams have been fully drained, so callers can treat
// "exit" as a terminal event that never races with late output.
package process
