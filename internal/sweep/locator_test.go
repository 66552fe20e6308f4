package sweep

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveToolFor(t *testing.T) {
	tests := []struct {
		name string
		goos string
		want string
	}{
		{"linux", "linux", filepath.Join("/plug", "target", "release", "emoji-clean")},
		{"darwin", "darwin", filepath.Join("/plug", "target", "release", "emoji-clean")},
		{"windows", "windows", filepath.Join("/plug", "target", "release", "emoji-clean.exe")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveToolFor("/plug", tt.goos)
			if got.Path != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got.Path)
			}
		})
	}
}

func TestIsExecutableFor(t *testing.T) {
	dir := t.TempDir()

	execPath := filepath.Join(dir, "runnable")
	if err := os.WriteFile(execPath, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	plainPath := filepath.Join(dir, "plain")
	if err := os.WriteFile(plainPath, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		goos string
		want bool
	}{
		{"executable file", execPath, "linux", true},
		{"plain file", plainPath, "linux", false},
		{"plain file on windows", plainPath, "windows", true},
		{"missing file", filepath.Join(dir, "missing"), "linux", false},
		{"directory", dir, "linux", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isExecutableFor(tt.path, tt.goos); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestResolvedFreshPerAttempt(t *testing.T) {
	// Resolution is pure path derivation; two attempts from the same
	// root agree even if the tool appears between them.
	before := ResolveTool("/plug")
	after := ResolveTool("/plug")
	if before.Path != after.Path {
		t.Errorf("expected stable resolution, got %q and %q", before.Path, after.Path)
	}
}
