// Package shell provides the adapter that runs external tools.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"slices"
	"strings"

	"go.trai.ch/gemnix/internal/core/domain"
	"go.trai.ch/zerr"
)

// outputTailLimit caps how much captured output is attached to an error.
const outputTailLimit = 4096

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	environ func() []string
}

// NewRunner creates a Runner that inherits the process environment.
func NewRunner() *Runner {
	return &Runner{environ: os.Environ}
}

// Run executes the command and returns its standard output.
// Env overrides are applied to the child only; the process environment is never touched.
func (r *Runner) Run(ctx context.Context, c domain.Command) ([]byte, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.Name, c.Args...) //nolint:gosec // fixed nix tool names
	cmd.Env = resolveEnvironment(r.environ(), c.Env)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		wrapped := zerr.Wrap(err, domain.ErrExternalTool.Error())
		wrapped = zerr.With(wrapped, "command", c.String())
		wrapped = zerr.With(wrapped, "exit_code", exitCode)
		if out := tail(stdout.String() + stderr.String()); out != "" {
			wrapped = zerr.With(wrapped, "output", out)
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			wrapped = zerr.With(wrapped, "timeout", c.Timeout.String())
		}
		return nil, wrapped
	}

	return stdout.Bytes(), nil
}

func tail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= outputTailLimit {
		return s
	}
	return s[len(s)-outputTailLimit:]
}

// resolveEnvironment applies overrides on top of the inherited environment.
// The result is sorted so child environments are reproducible.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}

	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}
