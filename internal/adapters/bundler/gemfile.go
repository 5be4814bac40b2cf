package bundler

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/gemnix/internal/core/domain"
	"go.trai.ch/gemnix/internal/core/ports"
	"go.trai.ch/zerr"
)

// dependencyDump prints the Gemfile's dependencies with their groups and platforms as JSON.
const dependencyDump = `require "bundler"
require "json"
definition = Bundler::Definition.build(ENV.fetch("BUNDLE_GEMFILE"), ENV.fetch("GEMNIX_LOCKFILE"), nil)
deps = definition.dependencies.map do |dep|
  { name: dep.name, groups: dep.groups.map(&:to_s), platforms: dep.platforms.map(&:to_s) }
end
puts JSON.generate(deps)`

// GemfileLoader implements ports.ManifestLoader by asking Bundler to evaluate the Gemfile.
type GemfileLoader struct {
	runner  ports.CommandRunner
	logger  ports.Logger
	timeout time.Duration
}

// NewGemfileLoader creates a GemfileLoader.
func NewGemfileLoader(runner ports.CommandRunner, logger ports.Logger, timeout time.Duration) *GemfileLoader {
	return &GemfileLoader{runner: runner, logger: logger, timeout: timeout}
}

type dumpedDependency struct {
	Name      string   `json:"name"`
	Groups    []string `json:"groups"`
	Platforms []string `json:"platforms"`
}

// Load returns the Gemfile's explicit dependencies.
// When the Gemfile is absent or ruby cannot evaluate it, the lockfile DEPENDENCIES
// are used in the default group.
func (l *GemfileLoader) Load(ctx context.Context, gemfile string, lock *domain.Lockfile) ([]domain.ExplicitDependency, error) {
	abs, err := filepath.Abs(gemfile)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestLoadFailed.Error()), "gemfile", gemfile)
	}
	if _, err := os.Stat(abs); err != nil {
		l.logger.Warn(fmt.Sprintf("%s not found, using lockfile dependencies in the default group", gemfile))
		return FromLockfile(lock), nil
	}

	lockPath, err := filepath.Abs(lock.Path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestLoadFailed.Error()), "lockfile", lock.Path)
	}

	out, err := l.runner.Run(ctx, domain.Command{
		Name: "ruby",
		Args: []string{"-e", dependencyDump},
		Env: map[string]string{
			"BUNDLE_GEMFILE":  abs,
			"GEMNIX_LOCKFILE": lockPath,
		},
		Timeout: l.timeout,
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		l.logger.Warn(fmt.Sprintf("could not evaluate %s, using lockfile dependencies in the default group", gemfile))
		l.logger.Error(err)
		return FromLockfile(lock), nil
	}

	var dumped []dumpedDependency
	if err := json.Unmarshal(lastLine(out), &dumped); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestLoadFailed.Error()), "gemfile", abs)
	}

	deps := make([]domain.ExplicitDependency, 0, len(dumped))
	for _, d := range dumped {
		deps = append(deps, domain.ExplicitDependency{Name: d.Name, Groups: d.Groups, Platforms: d.Platforms})
	}
	return deps, nil
}

// FromLockfile turns the lockfile DEPENDENCIES into explicit dependencies of the default group.
func FromLockfile(lock *domain.Lockfile) []domain.ExplicitDependency {
	deps := make([]domain.ExplicitDependency, 0, len(lock.Dependencies))
	for _, name := range lock.Dependencies {
		deps = append(deps, domain.ExplicitDependency{Name: name, Groups: []string{domain.DefaultGroup}})
	}
	return deps
}

// lastLine skips whatever a Gemfile prints while being evaluated.
func lastLine(out []byte) []byte {
	trimmed := strings.TrimSpace(string(out))
	if i := strings.LastIndexByte(trimmed, '\n'); i >= 0 {
		trimmed = trimmed[i+1:]
	}
	return []byte(trimmed)
}
