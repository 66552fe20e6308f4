package sweep

import (
	"fmt"
	"path/filepath"
)

// Config holds the filters for one tool invocation.
//
// Pattern order is preserved for deterministic argument ordering; it
// carries no semantic weight beyond reproducibility. A Config is treated
// as immutable once handed to the runner.
type Config struct {
	// Include are glob patterns selecting files to process. Empty means
	// the tool applies its own defaults.
	Include []string

	// Exclude are glob patterns removing files from the selection.
	Exclude []string
}

// Validate checks every pattern for glob syntax errors.
func (c Config) Validate() error {
	for _, p := range append(append([]string{}, c.Include...), c.Exclude...) {
		if _, err := filepath.Match(p, ""); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidPattern, p)
		}
	}
	return nil
}

// Clone returns a deep copy so the runner's view cannot be mutated by
// the caller after launch.
func (c Config) Clone() Config {
	clone := Config{}
	if len(c.Include) > 0 {
		clone.Include = append([]string{}, c.Include...)
	}
	if len(c.Exclude) > 0 {
		clone.Exclude = append([]string{}, c.Exclude...)
	}
	return clone
}

// Merge overlays non-empty fields of other on top of c. Used to apply
// command options over persisted settings.
func (c Config) Merge(other Config) Config {
	merged := c.Clone()
	if len(other.Include) > 0 {
		merged.Include = append([]string{}, other.Include...)
	}
	if len(other.Exclude) > 0 {
		merged.Exclude = append([]string{}, other.Exclude...)
	}
	return merged
}
