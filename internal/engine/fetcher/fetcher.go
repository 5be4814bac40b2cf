// Package fetcher resolves locked gems into hash-bearing gemset sources.
package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/gemnix/internal/core/domain"
	"go.trai.ch/gemnix/internal/core/ports"
	"go.trai.ch/zerr"
)

// summaryFragment matches the JSON object nix-prefetch-git prints last.
var summaryFragment = regexp.MustCompile(`(?s)(\{[^}]+\})\s*$`)

// Fetcher implements ports.SourceFetcher.
type Fetcher struct {
	prefetcher  ports.Prefetcher
	formatter   ports.HashFormatter
	index       ports.RemoteIndex
	downloader  ports.Downloader
	logger      ports.Logger
	localCaches []string
}

// New creates a Fetcher. localCaches are searched for packaged gems after each source's own caches.
func New(
	prefetcher ports.Prefetcher,
	formatter ports.HashFormatter,
	index ports.RemoteIndex,
	downloader ports.Downloader,
	logger ports.Logger,
	localCaches []string,
) *Fetcher {
	return &Fetcher{
		prefetcher:  prefetcher,
		formatter:   formatter,
		index:       index,
		downloader:  downloader,
		logger:      logger,
		localCaches: localCaches,
	}
}

// Fetch resolves spec into its emitted version and source block.
func (f *Fetcher) Fetch(ctx context.Context, spec domain.PackageSpec) (domain.FetchResult, error) {
	switch src := spec.Source.(type) {
	case domain.GemSource:
		return f.fetchGem(ctx, spec, src)
	case domain.GitSource:
		return f.fetchGit(ctx, spec, src)
	case domain.PathSource:
		return domain.FetchResult{
			Version: spec.Version,
			Source:  domain.SourceBlock{Type: domain.SourceTypePath, Path: src.Path},
		}, nil
	default:
		err := zerr.Wrap(domain.ErrUnknownSource, "cannot resolve source")
		err = zerr.With(err, "gem", spec.FullName())
		return domain.FetchResult{}, zerr.With(err, "source", fmt.Sprintf("%T", src))
	}
}

func (f *Fetcher) fetchGem(ctx context.Context, spec domain.PackageSpec, src domain.GemSource) (domain.FetchResult, error) {
	remotes := make([]string, 0, len(src.Remotes))
	for _, remote := range src.Remotes {
		remotes = append(remotes, strings.TrimRight(remote, "/"))
	}

	hash, platform, err := f.fetchLocal(ctx, spec, src)
	if err != nil {
		return domain.FetchResult{}, err
	}

	if hash == "" {
		for _, remote := range remotes {
			hash, platform, err = f.fetchRemote(ctx, spec, remote)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return domain.FetchResult{}, zerr.With(zerr.Wrap(ctxErr, "fetch cancelled"), "gem", spec.FullName())
				}
				f.logger.Warn(fmt.Sprintf("ignoring error during fetching %s from %s: %v", spec.FullName(), remote, err))
				continue
			}
			if hash != "" {
				// The record only lists the remote that served the artifact.
				remotes = []string{remote}
				break
			}
		}
	}

	if hash == "" {
		return domain.FetchResult{}, zerr.With(zerr.Wrap(domain.ErrResolution, "no source yielded a hash"), "gem", spec.FullName())
	}

	version := spec.Version
	if platform != "" && platform != domain.GenericPlatformName {
		version += "-" + platform
	}

	return domain.FetchResult{
		Version: version,
		Source: domain.SourceBlock{
			Type:    domain.SourceTypeGem,
			Remotes: remotes,
			SHA256:  hash,
		},
	}, nil
}

// fetchLocal hashes the first packaged gem found in the local caches.
// For platform gems the file name suffix must be covered by the locked platform; it becomes the emitted platform.
func (f *Fetcher) fetchLocal(ctx context.Context, spec domain.PackageSpec, src domain.GemSource) (hash, platform string, err error) {
	hasPlatform := !spec.Platform.IsGeneric()
	nameVersion := spec.Name + "-" + spec.Version
	pattern := nameVersion + ".gem"
	if hasPlatform {
		pattern = nameVersion + "-*.gem"
	}

	dirs := append(append([]string{}, src.Caches...), f.localCaches...)
	for _, dir := range dirs {
		matches, globErr := filepath.Glob(filepath.Join(dir, pattern))
		if globErr != nil {
			continue
		}
		for _, file := range matches {
			base := filepath.Base(file)
			platform = ""
			if hasPlatform {
				platform = strings.TrimSuffix(base, ".gem")[len(nameVersion)+1:]
				if !spec.Platform.MatchesString(platform) {
					continue
				}
			}

			abs, absErr := filepath.Abs(file)
			if absErr != nil {
				continue
			}
			hash, err = f.hashArtifact(ctx, "file://"+abs, base)
			if err != nil {
				if ctx.Err() != nil {
					return "", "", zerr.With(zerr.Wrap(ctx.Err(), "fetch cancelled"), "gem", spec.FullName())
				}
				f.logger.Warn(fmt.Sprintf("ignoring cached %s: %v", file, err))
				continue
			}
			if hash != "" {
				return hash, platform, nil
			}
		}
	}
	return "", "", nil
}

// fetchRemote downloads and hashes the gem from remote.
// Platform gems are looked up in the remote index first, since the published platform may be more specific.
func (f *Fetcher) fetchRemote(ctx context.Context, spec domain.PackageSpec, remote string) (hash, platform string, err error) {
	published := spec
	if !spec.Platform.IsGeneric() {
		variants, indexErr := f.index.Variants(ctx, remote, spec.Name, spec.Version)
		if indexErr != nil {
			return "", "", indexErr
		}
		published.Platform = pickVariant(variants, spec.Platform)
		platform = published.Platform.String()
	}

	url := remote + "/gems/" + published.FullName() + ".gem"
	file, err := f.downloader.Download(ctx, url)
	if err != nil {
		return "", "", err
	}

	hash, err = f.hashArtifact(ctx, "file://"+file, path.Base(url))
	if err != nil {
		return "", "", err
	}
	return hash, platform, nil
}

// pickVariant prefers the variant equal to the requested platform and falls back to the first one listed.
func pickVariant(variants []domain.Platform, requested domain.Platform) domain.Platform {
	for _, variant := range variants {
		if variant == requested {
			return variant
		}
	}
	if len(variants) == 0 {
		return requested
	}
	return variants[0]
}

// hashArtifact prefetches url and formats the digest. An empty hash means the output held none.
func (f *Fetcher) hashArtifact(ctx context.Context, url, name string) (string, error) {
	out, err := f.prefetcher.PrefetchURL(ctx, url, name)
	if err != nil {
		return "", err
	}
	raw := domain.MatchBase32Hash(out)
	if raw == "" {
		return "", nil
	}
	return f.formatter.Format(ctx, raw)
}

func (f *Fetcher) fetchGit(ctx context.Context, spec domain.PackageSpec, src domain.GitSource) (domain.FetchResult, error) {
	out, err := f.prefetcher.PrefetchGit(ctx, src)
	if err != nil {
		return domain.FetchResult{}, zerr.With(zerr.Wrap(err, domain.ErrResolution.Error()), "url", src.URL)
	}

	hash, err := ParseGitHash(out)
	if err != nil {
		return domain.FetchResult{}, zerr.With(zerr.With(err, "url", src.URL), "gem", spec.FullName())
	}

	return domain.FetchResult{
		Version: spec.Version,
		Source: domain.SourceBlock{
			Type:            domain.SourceTypeGit,
			URL:             src.URL,
			Rev:             src.Revision,
			SHA256:          hash,
			FetchSubmodules: src.Submodules,
		},
	}, nil
}

// ParseGitHash extracts the sha256 field of the JSON object that ends the nix-prefetch-git output.
// Anything printed before the object is ignored.
func ParseGitHash(out string) (string, error) {
	m := summaryFragment.FindStringSubmatch(out)
	if m == nil {
		return "", zerr.Wrap(domain.ErrResolution, "no hash summary in nix-prefetch-git output")
	}

	var summary struct {
		SHA256 string `json:"sha256"`
	}
	if err := json.Unmarshal([]byte(m[1]), &summary); err != nil {
		return "", zerr.Wrap(domain.ErrResolution, "invalid hash summary in nix-prefetch-git output")
	}
	if summary.SHA256 == "" {
		return "", zerr.Wrap(domain.ErrResolution, "hash summary has no sha256")
	}
	return summary.SHA256, nil
}
