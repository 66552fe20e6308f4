// Package host defines the narrow editor capabilities the sweep
// orchestration depends on.
//
// The orchestration core never reads or writes file contents itself; all
// mutation is delegated to the external tool. The host contributes exactly
// two things: a Workspace that can flush pending edits to disk and reload
// files changed behind its back, and a Reporter that presents messages to
// the user. Both are small interfaces so the core can be exercised with
// fakes, without a live editor runtime.
package host
