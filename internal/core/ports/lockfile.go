package ports

import (
	"context"

	"go.trai.ch/gemnix/internal/core/domain"
)

// LockfileParser reads a Gemfile.lock.
//
//go:generate mockgen -source=lockfile.go -destination=mocks/mock_lockfile.go -package=mocks
type LockfileParser interface {
	// Parse reads and parses the lockfile at path.
	Parse(path string) (*domain.Lockfile, error)
}

// ManifestLoader evaluates the explicit top-level dependencies of a Gemfile.
type ManifestLoader interface {
	// Load returns every Gemfile dependency with its declared groups and platforms.
	Load(ctx context.Context, gemfile string, lock *domain.Lockfile) ([]domain.ExplicitDependency, error)
}
