package sweep

// Invocation is the fully built command line for one run of the external
// tool.
type Invocation struct {
	// Executable is the resolved tool.
	Executable ResolvedExecutable

	// Args is the complete argument vector. Args[0] is the executable
	// path, followed by "--include" and each include pattern when any
	// are present, then "--exclude" and each exclude pattern likewise.
	Args []string
}

// NewInvocation builds the argument vector for cfg. Ordering is
// deterministic: pattern order is preserved and the include group always
// precedes the exclude group. Flags for an empty group are omitted
// entirely.
func NewInvocation(exe ResolvedExecutable, cfg Config) Invocation {
	args := make([]string, 0, 1+len(cfg.Include)+len(cfg.Exclude)+2)
	args = append(args, exe.Path)

	if len(cfg.Include) > 0 {
		args = append(args, "--include")
		args = append(args, cfg.Include...)
	}
	if len(cfg.Exclude) > 0 {
		args = append(args, "--exclude")
		args = append(args, cfg.Exclude...)
	}

	return Invocation{Executable: exe, Args: args}
}

// Path returns the executable path.
func (inv Invocation) Path() string {
	return inv.Args[0]
}

// Argv returns the arguments after the executable path.
func (inv Invocation) Argv() []string {
	return inv.Args[1:]
}
