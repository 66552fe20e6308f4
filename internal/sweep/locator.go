package sweep

import (
	"os"
	"path/filepath"
	"runtime"
)

// The bundled tool is built with cargo and ships inside the plugin's own
// install tree under the conventional release layout.
const toolName = "emoji-clean"

// ResolvedExecutable is the candidate path of the external tool for one
// invocation attempt. It is derived fresh each time and never cached, so
// the plugin can be moved or the tool rebuilt between runs. Existence is
// not verified at resolution time.
type ResolvedExecutable struct {
	// Path is the absolute path of the expected executable.
	Path string
}

// ResolveTool returns the expected tool path under installRoot.
func ResolveTool(installRoot string) ResolvedExecutable {
	return resolveToolFor(installRoot, runtime.GOOS)
}

// resolveToolFor resolves for an explicit GOOS, for testability.
func resolveToolFor(installRoot, goos string) ResolvedExecutable {
	name := toolName
	if goos == "windows" {
		name += ".exe"
	}
	return ResolvedExecutable{Path: filepath.Join(installRoot, "target", "release", name)}
}

// IsExecutable reports whether the resolved path exists and can be run.
func (e ResolvedExecutable) IsExecutable() bool {
	return isExecutableFor(e.Path, runtime.GOOS)
}

// isExecutableFor checks executability for an explicit GOOS. On Windows
// existence of a regular file is sufficient; elsewhere an execute bit is
// required.
func isExecutableFor(path, goos string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if goos == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
