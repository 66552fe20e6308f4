// Package main is a host-less driver for the emojisweep plugin: it runs
// the same orchestration the editor command uses, with console
// implementations of the host capabilities.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dshills/emojisweep/internal/host"
	"github.com/dshills/emojisweep/internal/plugin"
	"github.com/dshills/emojisweep/internal/sweep"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

// stringList is a repeatable string flag.
type stringList []string

// String returns the accumulated values.
func (s *stringList) String() string {
	return fmt.Sprintf("%v", []string(*s))
}

// Set appends one value.
func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func main() {
	os.Exit(run())
}

func run() int {
	var (
		include     stringList
		exclude     stringList
		root        string
		installRoot string
		toolPath    string
		showVersion bool
	)

	flag.Var(&include, "include", "glob pattern to include (repeatable)")
	flag.Var(&exclude, "exclude", "glob pattern to exclude (repeatable)")
	flag.StringVar(&root, "root", ".", "workspace root the tool runs in")
	flag.StringVar(&installRoot, "install-root", "", "plugin install root the tool is resolved under (default: the executable's directory)")
	flag.StringVar(&toolPath, "tool", "", "explicit path to the emoji-clean executable")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("emojisweep %s (%s)\n", version, commit)
		return 0
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid root: %v\n", err)
		return 1
	}

	if installRoot == "" {
		// The tool ships alongside the plugin; resolve relative to the
		// running executable when no override is given.
		exe, err := os.Executable()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot locate own executable: %v\n", err)
			return 1
		}
		installRoot = filepath.Dir(exe)
	}

	system := plugin.NewSystem(plugin.SystemConfig{
		Workspace:   host.NewConsoleWorkspace(absRoot),
		Reporter:    host.NewConsoleReporter(os.Stdout, os.Stderr),
		InstallRoot: installRoot,
		ToolPath:    toolPath,
		SettingsDir: absRoot,
	})
	if err := system.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer system.Shutdown(5 * time.Second)

	runHandle, err := system.Sweep(context.Background(), plugin.CommandOptions{
		Include: include,
		Exclude: exclude,
	})
	if err != nil {
		// The reporter already surfaced the failure.
		if errors.Is(err, sweep.ErrExecutableNotFound) {
			return 127
		}
		return 1
	}

	outcome := runHandle.Wait()
	if outcome.Code != 0 {
		if outcome.Code > 0 {
			return outcome.Code
		}
		return 1
	}
	return 0
}
