package sweep

import "errors"

// Sentinel errors for the sweep package.
var (
	// ErrExecutableNotFound is returned when the resolved tool path does
	// not exist or is not executable. No process is spawned.
	ErrExecutableNotFound = errors.New("emoji-clean executable not found")

	// ErrInvocationInProgress is returned when a run is requested while a
	// previous one is still in flight and concurrent runs are disabled.
	ErrInvocationInProgress = errors.New("emoji sweep already in progress")

	// ErrInvalidPattern is returned for a malformed glob pattern.
	ErrInvalidPattern = errors.New("invalid glob pattern")

	// ErrUnsupportedFormat is returned when a settings file has an
	// unrecognized extension.
	ErrUnsupportedFormat = errors.New("unsupported settings format")
)
