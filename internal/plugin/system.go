package plugin

import (
	"context"
	"sync"
	"time"

	"github.com/dshills/emojisweep/internal/host"
	"github.com/dshills/emojisweep/internal/sweep"
)

// CommandSweep is the command ID contributed by this plugin.
const CommandSweep = "emoji.sweep"

// SystemConfig configures the plugin system.
type SystemConfig struct {
	// Workspace is the host workspace (required).
	Workspace host.Workspace

	// Reporter is the host message sink (required).
	Reporter host.Reporter

	// InstallRoot is the plugin's own install directory, used to resolve
	// the bundled tool. Defaults to the workspace root.
	InstallRoot string

	// ToolPath overrides tool resolution with an explicit path.
	ToolPath string

	// SettingsDir is probed for persisted include/exclude defaults.
	// Empty disables persisted settings.
	SettingsDir string

	// AllowConcurrent permits overlapping invocations.
	AllowConcurrent bool
}

// System coordinates the registry and runner and delivers the plugin's
// command surface to the host.
//
// Registration happens through an explicit one-time Initialize call
// guarded by initialization state, not a free-floating loaded flag.
type System struct {
	mu sync.RWMutex

	config   SystemConfig
	registry *Registry
	runner   *sweep.Runner

	// defaults are persisted settings applied under command options.
	defaults sweep.Config

	initialized bool
}

// NewSystem creates a plugin system. Call Initialize before use.
func NewSystem(config SystemConfig) *System {
	return &System{
		config:   config,
		registry: NewRegistry(),
	}
}

// Initialize performs one-time setup: builds the runner, loads persisted
// settings, and registers the sweep command. A second call returns
// ErrAlreadyInitialized and changes nothing.
func (s *System) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return ErrAlreadyInitialized
	}
	if s.config.Workspace == nil {
		return ErrNilWorkspace
	}
	if s.config.Reporter == nil {
		return ErrNilReporter
	}

	var opts []sweep.Option
	if s.config.InstallRoot != "" {
		opts = append(opts, sweep.WithInstallRoot(s.config.InstallRoot))
	}
	if s.config.ToolPath != "" {
		opts = append(opts, sweep.WithToolPath(s.config.ToolPath))
	}
	if s.config.AllowConcurrent {
		opts = append(opts, sweep.WithConcurrentRuns())
	}
	s.runner = sweep.NewRunner(s.config.Workspace, s.config.Reporter, opts...)

	if s.config.SettingsDir != "" {
		defaults, err := sweep.LoadSettingsDir(s.config.SettingsDir)
		if err != nil {
			// Bad settings never block the command; fall back to none.
			s.config.Reporter.Warn(err.Error())
		} else {
			s.defaults = defaults
		}
	}

	if err := s.registry.Register(Command{
		ID:      CommandSweep,
		Title:   "Remove Emoji From Files",
		Handler: s.handleSweep,
	}); err != nil {
		return err
	}

	s.initialized = true
	return nil
}

// Initialized returns true once Initialize has succeeded.
func (s *System) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialized
}

// Registry returns the command registry.
func (s *System) Registry() *Registry {
	return s.registry
}

// Execute dispatches a registered command by ID.
func (s *System) Execute(ctx context.Context, id string, opts CommandOptions) error {
	if !s.Initialized() {
		return ErrNotInitialized
	}
	return s.registry.Dispatch(ctx, id, opts)
}

// Sweep starts one invocation of the external tool, overlaying the
// command options on any persisted defaults.
func (s *System) Sweep(ctx context.Context, opts CommandOptions) (*sweep.Run, error) {
	s.mu.RLock()
	runner := s.runner
	defaults := s.defaults
	initialized := s.initialized
	s.mu.RUnlock()

	if !initialized {
		return nil, ErrNotInitialized
	}

	cfg := defaults.Merge(sweep.Config{Include: opts.Include, Exclude: opts.Exclude})
	return runner.Run(ctx, cfg)
}

// Running returns true while a sweep is in flight.
func (s *System) Running() bool {
	s.mu.RLock()
	runner := s.runner
	s.mu.RUnlock()

	return runner != nil && runner.Running()
}

// Shutdown terminates any in-flight tool process.
func (s *System) Shutdown(timeout time.Duration) {
	s.mu.RLock()
	runner := s.runner
	s.mu.RUnlock()

	if runner != nil {
		runner.Shutdown(timeout)
	}
}

// handleSweep is the registered handler for CommandSweep. The runner
// reports every failure to the host itself, so the error return exists
// only for programmatic callers.
func (s *System) handleSweep(ctx context.Context, opts CommandOptions) error {
	_, err := s.Sweep(ctx, opts)
	return err
}
