package shell

// ResolveEnvironment exposes environment merging for white-box tests.
var ResolveEnvironment = resolveEnvironment

// NewRunnerWithEnviron creates a Runner with a fixed inherited environment.
func NewRunnerWithEnviron(env []string) *Runner {
	return &Runner{environ: func() []string { return env }}
}
