package sweep

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// settingsFile is the persisted settings schema. Both TOML and YAML use
// the same keys.
type settingsFile struct {
	Include []string `toml:"include" yaml:"include"`
	Exclude []string `toml:"exclude" yaml:"exclude"`
}

// settingsNames are the file names probed, in order, by LoadSettingsDir.
var settingsNames = []string{"emojisweep.toml", "emojisweep.yaml", "emojisweep.yml"}

// LoadSettings reads persisted include/exclude defaults from a TOML or
// YAML file, chosen by extension. A missing file is not an error and
// yields a zero Config.
func LoadSettings(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading settings file %s: %w", path, err)
	}

	var sf settingsFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &sf); err != nil {
			return Config{}, fmt.Errorf("parsing settings file %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &sf); err != nil {
			return Config{}, fmt.Errorf("parsing settings file %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	cfg := Config{Include: sf.Include, Exclude: sf.Exclude}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("settings file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadSettingsDir probes dir for a settings file and loads the first one
// found. Returns a zero Config when none exists.
func LoadSettingsDir(dir string) (Config, error) {
	for _, name := range settingsNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return LoadSettings(path)
	}
	return Config{}, nil
}
