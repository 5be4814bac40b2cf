package domain

// BundlerGemName is the bootstrap dependency every lockfile may reference without declaring.
const BundlerGemName = "bundler"

// Dependency is a single edge from a locked gem to another gem.
type Dependency struct {
	// Name is the gem being depended on.
	Name string
	// Requirement is the version constraint as written in the lockfile, e.g. "~> 1.2".
	Requirement string
}

// PackageSpec is one locked gem variant. Several specs may share a name across platforms.
type PackageSpec struct {
	// Name is the gem name.
	Name string

	// Version is the locked version without any platform suffix.
	Version string

	// Platform is the platform this variant was built for.
	Platform Platform

	// Dependencies lists the runtime dependencies in lockfile order.
	Dependencies []Dependency

	// Source is where the gem is fetched from.
	Source Source
}

// FullName returns name-version, suffixed with the platform for non-generic variants.
func (s PackageSpec) FullName() string {
	if s.Platform.IsGeneric() {
		return s.Name + "-" + s.Version
	}
	return s.Name + "-" + s.Version + "-" + s.Platform.String()
}

// DependencyNames returns the dependency names, leaving out the bundler bootstrap dependency.
func (s PackageSpec) DependencyNames() []string {
	names := make([]string, 0, len(s.Dependencies))
	for _, dep := range s.Dependencies {
		if dep.Name == BundlerGemName {
			continue
		}
		names = append(names, dep.Name)
	}
	return names
}

// Source is the closed set of places a gem can come from: GemSource, GitSource or PathSource.
type Source interface {
	isSource()
}

// GemSource fetches packaged .gem files from rubygems-compatible remotes.
type GemSource struct {
	// Remotes are registry base URLs in priority order.
	Remotes []string
	// Caches are local directories that may already hold the .gem file, e.g. vendor/cache.
	Caches []string
}

// GitSource fetches a revision of a git repository.
type GitSource struct {
	URL        string
	Revision   string
	Submodules bool
}

// PathSource points at a gem checked out on the local filesystem.
type PathSource struct {
	Path string
}

func (GemSource) isSource()  {}
func (GitSource) isSource()  {}
func (PathSource) isSource() {}
