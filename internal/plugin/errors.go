package plugin

import "errors"

// Sentinel errors for the plugin package.
var (
	// ErrAlreadyInitialized is returned when Initialize is called twice.
	ErrAlreadyInitialized = errors.New("plugin system already initialized")

	// ErrNotInitialized is returned when operations require Initialize.
	ErrNotInitialized = errors.New("plugin system not initialized")

	// ErrUnknownCommand is returned when dispatching an unregistered command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrCommandExists is returned when registering a duplicate command ID.
	ErrCommandExists = errors.New("command already registered")

	// ErrMissingCommandID is returned for a command without an ID.
	ErrMissingCommandID = errors.New("command id is required")

	// ErrNilWorkspace is returned when the system is built without a workspace.
	ErrNilWorkspace = errors.New("workspace is required")

	// ErrNilReporter is returned when the system is built without a reporter.
	ErrNilReporter = errors.New("reporter is required")
)

// Manifest validation errors.
var (
	ErrMissingName    = errors.New("manifest: name is required")
	ErrInvalidName    = errors.New("manifest: name must be alphanumeric with hyphens")
	ErrMissingVersion = errors.New("manifest: version is required")
	ErrInvalidVersion = errors.New("manifest: version must be valid semver")
)
