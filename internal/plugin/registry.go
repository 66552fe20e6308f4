package plugin

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// CommandOptions are the recognized options of a user-invoked command.
// Absent options default to empty sequences (no filtering).
type CommandOptions struct {
	// Include are glob patterns selecting files to process.
	Include []string

	// Exclude are glob patterns removing files from the selection.
	Exclude []string
}

// Handler executes a command with its parsed options.
type Handler func(ctx context.Context, opts CommandOptions) error

// Command binds a command ID to its handler.
type Command struct {
	// ID is the unique command identifier (e.g., "emoji.sweep").
	ID string

	// Title is the display title shown by the host.
	Title string

	// Handler executes the command.
	Handler Handler
}

// Registry manages command registration by exact command ID.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// Register adds a command. Registering a duplicate ID is an error.
func (r *Registry) Register(cmd Command) error {
	if cmd.ID == "" {
		return ErrMissingCommandID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.commands[cmd.ID]; exists {
		return fmt.Errorf("%w: %s", ErrCommandExists, cmd.ID)
	}
	r.commands[cmd.ID] = cmd
	return nil
}

// Unregister removes a command by ID.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.commands, id)
}

// Get returns the command for an ID.
func (r *Registry) Get(id string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.commands[id]
	return cmd, ok
}

// Has returns true if a command is registered for the ID.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.commands[id]
	return ok
}

// List returns all registered command IDs, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.commands))
	for id := range r.commands {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count returns the number of registered commands.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}

// Dispatch executes the command registered for id.
func (r *Registry) Dispatch(ctx context.Context, id string, opts CommandOptions) error {
	cmd, ok := r.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, id)
	}
	return cmd.Handler(ctx, opts)
}
