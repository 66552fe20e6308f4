package sweep

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeSettings(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSettingsTOML(t *testing.T) {
	path := writeSettings(t, t.TempDir(), "emojisweep.toml", `
include = ["*.go", "*.rs"]
exclude = ["vendor/*"]
`)

	cfg, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Config{Include: []string{"*.go", "*.rs"}, Exclude: []string{"vendor/*"}}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("expected %+v, got %+v", want, cfg)
	}
}

func TestLoadSettingsYAML(t *testing.T) {
	path := writeSettings(t, t.TempDir(), "emojisweep.yaml", `
include:
  - "*.py"
exclude:
  - "build/*"
`)

	cfg, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Config{Include: []string{"*.py"}, Exclude: []string{"build/*"}}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("expected %+v, got %+v", want, cfg)
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	cfg, err := LoadSettings(filepath.Join(t.TempDir(), "emojisweep.toml"))
	if err != nil {
		t.Fatalf("missing file must not be an error, got %v", err)
	}
	if len(cfg.Include) != 0 || len(cfg.Exclude) != 0 {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestLoadSettingsUnsupportedFormat(t *testing.T) {
	path := writeSettings(t, t.TempDir(), "emojisweep.ini", "include=*.go")

	if _, err := LoadSettings(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoadSettingsInvalidPattern(t *testing.T) {
	path := writeSettings(t, t.TempDir(), "emojisweep.toml", `include = ["["]`)

	if _, err := LoadSettings(path); !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("expected ErrInvalidPattern, got %v", err)
	}
}

func TestLoadSettingsMalformed(t *testing.T) {
	path := writeSettings(t, t.TempDir(), "emojisweep.toml", "include = [")

	if _, err := LoadSettings(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadSettingsDir(t *testing.T) {
	dir := t.TempDir()
	writeSettings(t, dir, "emojisweep.yaml", `include: ["*.md"]`)

	cfg, err := LoadSettingsDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Include) != 1 || cfg.Include[0] != "*.md" {
		t.Errorf("expected include [*.md], got %+v", cfg)
	}
}

func TestLoadSettingsDirEmpty(t *testing.T) {
	cfg, err := LoadSettingsDir(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Include) != 0 || len(cfg.Exclude) != 0 {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestLoadSettingsDirPrefersTOML(t *testing.T) {
	dir := t.TempDir()
	writeSettings(t, dir, "emojisweep.toml", `include = ["*.toml-wins"]`)
	writeSettings(t, dir, "emojisweep.yaml", `include: ["*.yaml-loses"]`)

	cfg, err := LoadSettingsDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Include) != 1 || cfg.Include[0] != "*.toml-wins" {
		t.Errorf("expected TOML to win, got %+v", cfg)
	}
}
