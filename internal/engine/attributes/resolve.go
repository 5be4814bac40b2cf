// Package attributes propagates Bundler groups and platform tags across the locked dependency graph.
package attributes

import (
	"go.trai.ch/gemnix/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolve returns the propagated groups and platforms of every gem in lock.
//
// Explicit Gemfile dependencies seed their declared attributes and every other
// locked gem starts empty. Full passes over the lockfile then push the
// attributes of each gem into its dependencies until a pass changes nothing.
// A pass costs O(E) set operations and at most O(V) passes are needed, so the
// worst case is O(V·E); lockfiles hold hundreds of gems at most.
//
// A dependency that is neither locked nor declared aborts with ErrGraphIntegrity,
// except for the bundler bootstrap dependency which is assumed to be present.
func Resolve(
	lock *domain.Lockfile,
	explicit []domain.ExplicitDependency,
	lockfilePath string,
) (map[string]domain.AttributeEntry, error) {
	entries := seed(lock, explicit)

	for {
		changed := false
		for _, spec := range lock.Specs {
			parent := entries[spec.Name]
			for _, dep := range spec.Dependencies {
				child, ok := entries[dep.Name]
				if !ok {
					if dep.Name != domain.BundlerGemName {
						err := zerr.Wrap(domain.ErrGraphIntegrity, "lockfile references an undeclared gem")
						err = zerr.With(err, "dependency", dep.Name)
						return nil, zerr.With(err, "lockfile", lockfilePath)
					}
					child = emptyEntry(dep.Name)
					entries[dep.Name] = child
				}

				if !needsPropagation(parent, child) {
					continue
				}
				changed = true
				entries[dep.Name] = domain.AttributeEntry{
					Name:      dep.Name,
					Groups:    parent.Groups.Union(child.Groups),
					Platforms: parent.Platforms.Union(child.Platforms),
				}
			}
		}
		if !changed {
			return entries, nil
		}
	}
}

func seed(lock *domain.Lockfile, explicit []domain.ExplicitDependency) map[string]domain.AttributeEntry {
	entries := make(map[string]domain.AttributeEntry, len(lock.Specs)+len(explicit))
	for _, dep := range explicit {
		entries[dep.Name] = domain.AttributeEntry{
			Name:      dep.Name,
			Groups:    domain.NewSet(dep.Groups...),
			Platforms: domain.NewSet(dep.Platforms...),
		}
	}
	for _, spec := range lock.Specs {
		if _, ok := entries[spec.Name]; !ok {
			entries[spec.Name] = emptyEntry(spec.Name)
		}
	}
	return entries
}

func emptyEntry(name string) domain.AttributeEntry {
	return domain.AttributeEntry{Name: name, Groups: domain.NewSet(), Platforms: domain.NewSet()}
}

// needsPropagation reports whether parent carries a group other than default, or a platform, that child lacks.
func needsPropagation(parent, child domain.AttributeEntry) bool {
	missingGroups := parent.Groups.Minus(child.Groups).Minus(domain.NewSet(domain.DefaultGroup))
	return len(missingGroups) > 0 || !child.Platforms.ContainsAll(parent.Platforms)
}
