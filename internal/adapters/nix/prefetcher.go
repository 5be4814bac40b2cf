// Package nix drives the Nix command line tools and reads and writes gemset expressions.
package nix

import (
	"context"
	"strings"
	"time"

	"go.trai.ch/gemnix/internal/core/domain"
	"go.trai.ch/gemnix/internal/core/ports"
)

// homelessShelter is the HOME nix-prefetch-git runs with, matching the Nix build sandbox.
const homelessShelter = "/homeless-shelter"

// Prefetcher implements ports.Prefetcher with nix-prefetch-url and nix-prefetch-git.
type Prefetcher struct {
	runner  ports.CommandRunner
	timeout time.Duration
}

// NewPrefetcher creates a Prefetcher. Every tool invocation is bounded by timeout.
func NewPrefetcher(runner ports.CommandRunner, timeout time.Duration) *Prefetcher {
	return &Prefetcher{runner: runner, timeout: timeout}
}

// PrefetchURL adds url to the store under name and returns the hash printed by the tool.
func (p *Prefetcher) PrefetchURL(ctx context.Context, url, name string) (string, error) {
	out, err := p.runner.Run(ctx, domain.Command{
		Name:    "nix-prefetch-url",
		Args:    []string{"--type", "sha256", "--name", name, url},
		Timeout: p.timeout,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// PrefetchGit fetches the revision of src and returns the tool output, which ends in a JSON summary.
func (p *Prefetcher) PrefetchGit(ctx context.Context, src domain.GitSource) (string, error) {
	args := []string{"--url", src.URL, "--rev", src.Revision, "--hash", "sha256"}
	if src.Submodules {
		args = append(args, "--fetch-submodules")
	}

	out, err := p.runner.Run(ctx, domain.Command{
		Name:    "nix-prefetch-git",
		Args:    args,
		Env:     map[string]string{"HOME": homelessShelter},
		Timeout: p.timeout,
	})
	if err != nil {
		return "", err
	}
	return string(out), nil
}
