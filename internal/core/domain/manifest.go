package domain

import "strings"

// SourceType names the kind of a resolved source block.
type SourceType string

const (
	// SourceTypeGem is a .gem file fetched from a remote.
	SourceTypeGem SourceType = "gem"
	// SourceTypeGit is a git revision.
	SourceTypeGit SourceType = "git"
	// SourceTypePath is a local checkout.
	SourceTypePath SourceType = "path"
)

// SourceBlock is the resolved, hash-bearing source of a gemset entry.
// Which fields are set depends on Type.
type SourceBlock struct {
	Type            SourceType `json:"type"`
	Remotes         []string   `json:"remotes,omitempty"`
	SHA256          string     `json:"sha256,omitempty"`
	URL             string     `json:"url,omitempty"`
	Rev             string     `json:"rev,omitempty"`
	Path            string     `json:"path,omitempty"`
	FetchSubmodules bool       `json:"fetchSubmodules,omitempty"`
}

// PlatformConstraint is one Ruby engine, optionally pinned to a language version.
type PlatformConstraint struct {
	Engine  string `json:"engine"`
	Version string `json:"version,omitempty"`
}

// ResolvedEntry is the gemset record emitted for one gem name.
// A record with no fields set marks a gem whose hash could not be resolved.
// A nil Platforms slice is left out of the gemset; an empty one renders as [].
type ResolvedEntry struct {
	Version        string               `json:"version,omitempty"`
	TargetPlatform string               `json:"target_platform,omitempty"`
	GemPlatform    string               `json:"gem_platform,omitempty"`
	Platforms      []PlatformConstraint `json:"platforms,omitempty"`
	Groups         []string             `json:"groups,omitempty"`
	Source         *SourceBlock         `json:"source,omitempty"`
	Dependencies   []string             `json:"dependencies,omitempty"`
}

// IsEmpty reports whether no field of the record is set.
func (e ResolvedEntry) IsEmpty() bool {
	return e.Version == "" && e.TargetPlatform == "" && e.GemPlatform == "" &&
		e.Platforms == nil && len(e.Groups) == 0 && e.Source == nil && len(e.Dependencies) == 0
}

// Manifest maps gem names to their resolved records.
type Manifest map[string]ResolvedEntry

// FetchResult is what resolving a single package yields: the emitted version and its source.
type FetchResult struct {
	// Version is the locked version, suffixed with the hashed platform when that is not generic.
	Version string
	Source  SourceBlock
}

// ConversionInput bundles everything a conversion needs for one target platform.
type ConversionInput struct {
	Lockfile   *Lockfile
	Attributes map[string]AttributeEntry
	Prior      Manifest
	Target     Platform
}

// platformEngines lists the engines each Bundler platform tag expands to.
var platformEngines = map[string][]string{
	"ruby":        {"ruby", "rbx", "maglev"},
	"mri":         {"ruby", "maglev"},
	"rbx":         {"rbx"},
	"jruby":       {"jruby"},
	"mswin":       {"mswin"},
	"mswin64":     {"mswin64"},
	"mingw":       {"mingw"},
	"truffleruby": {"ruby"},
	"x64_mingw":   {"mingw"},
}

var rubyVersions = []string{
	"1.8", "1.9", "2.0", "2.1", "2.2", "2.3", "2.4", "2.5", "2.6", "2.7",
	"3.0", "3.1", "3.2", "3.3", "3.4",
}

// PlatformMapping expands Bundler platform tags like "mri_25" into engine constraints.
var PlatformMapping = buildPlatformMapping()

func buildPlatformMapping() map[string][]PlatformConstraint {
	mapping := make(map[string][]PlatformConstraint)
	for tag, engines := range platformEngines {
		mapping[tag] = constraintsFor(engines, "")
		for _, version := range rubyVersions {
			suffix := strings.ReplaceAll(version, ".", "")
			mapping[tag+"_"+suffix] = constraintsFor(engines, version)
		}
	}
	return mapping
}

func constraintsFor(engines []string, version string) []PlatformConstraint {
	out := make([]PlatformConstraint, 0, len(engines))
	for _, engine := range engines {
		out = append(out, PlatformConstraint{Engine: engine, Version: version})
	}
	return out
}

// ExpandPlatformTags maps tags in order to their engine constraints. Unknown tags are dropped.
func ExpandPlatformTags(tags []string) []PlatformConstraint {
	out := make([]PlatformConstraint, 0, len(tags))
	for _, tag := range tags {
		out = append(out, PlatformMapping[tag]...)
	}
	return out
}
