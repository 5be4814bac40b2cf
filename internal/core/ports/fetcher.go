package ports

import (
	"context"

	"go.trai.ch/gemnix/internal/core/domain"
)

// SourceFetcher resolves a single locked gem into a hash-bearing source block.
//
//go:generate mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type SourceFetcher interface {
	// Fetch resolves spec, or fails with a resolution error.
	Fetch(ctx context.Context, spec domain.PackageSpec) (domain.FetchResult, error)
}

// Prefetcher drives the Nix prefetch tools.
type Prefetcher interface {
	// PrefetchURL adds the file at url to the store under name and returns the raw hash output.
	PrefetchURL(ctx context.Context, url, name string) (string, error)

	// PrefetchGit fetches a git revision and returns the combined tool output.
	PrefetchGit(ctx context.Context, src domain.GitSource) (string, error)
}

// HashFormatter converts raw digests into the canonical Nix base-32 form.
type HashFormatter interface {
	// Format returns the base-32 hash, or "" when the tool output has no canonical hash.
	Format(ctx context.Context, raw string) (string, error)
}

// RemoteIndex queries a gem server for the platforms a version was published for.
type RemoteIndex interface {
	// Variants returns the published platforms of name at version on remote, in index order.
	Variants(ctx context.Context, remote, name, version string) ([]domain.Platform, error)
}

// CredentialStore looks up Bundler credentials for a host.
type CredentialStore interface {
	// Lookup returns the user and password configured for host.
	Lookup(host string) (user, password string, ok bool)
}

// Downloader fetches remote artifacts into the download cache.
type Downloader interface {
	// Download returns the local path of the artifact at url, fetching it when not cached.
	Download(ctx context.Context, url string) (string, error)
}
