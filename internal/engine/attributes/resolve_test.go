package attributes_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gemnix/internal/core/domain"
	"go.trai.ch/gemnix/internal/engine/attributes"
	"go.trai.ch/zerr"
)

func spec(name string, deps ...string) domain.PackageSpec {
	s := domain.PackageSpec{Name: name, Version: "1.0.0", Source: domain.GemSource{}}
	for _, dep := range deps {
		s.Dependencies = append(s.Dependencies, domain.Dependency{Name: dep, Requirement: ">= 0"})
	}
	return s
}

func TestResolve_DevelopmentDependency(t *testing.T) {
	lock := &domain.Lockfile{Specs: []domain.PackageSpec{
		{Name: "a", Version: "1.2.3", Source: domain.GemSource{}},
		spec("b", "a"),
	}}
	explicit := []domain.ExplicitDependency{{Name: "b", Groups: []string{"development"}}}

	entries, err := attributes.Resolve(lock, explicit, "Gemfile.lock")
	require.NoError(t, err)

	assert.Equal(t, []string{"development"}, entries["a"].Groups.Sorted())
	assert.Equal(t, []string{"development"}, entries["b"].Groups.Sorted())
}

func TestResolve_TransitivePropagation(t *testing.T) {
	// rspec -> rspec-core -> rspec-support, declared out of order so several passes are needed.
	lock := &domain.Lockfile{Specs: []domain.PackageSpec{
		spec("rspec-support"),
		spec("rspec-core", "rspec-support"),
		spec("rspec", "rspec-core"),
		spec("pg"),
	}}
	explicit := []domain.ExplicitDependency{
		{Name: "rspec", Groups: []string{"test"}, Platforms: []string{"mri"}},
		{Name: "pg", Groups: []string{"default"}},
	}

	entries, err := attributes.Resolve(lock, explicit, "Gemfile.lock")
	require.NoError(t, err)

	for _, name := range []string{"rspec", "rspec-core", "rspec-support"} {
		assert.Equal(t, []string{"test"}, entries[name].Groups.Sorted(), name)
		assert.Equal(t, []string{"mri"}, entries[name].Platforms.Sorted(), name)
	}
	assert.Equal(t, []string{"default"}, entries["pg"].RenderedGroups())
}

func TestResolve_UnionOfDependents(t *testing.T) {
	lock := &domain.Lockfile{Specs: []domain.PackageSpec{
		spec("shared"),
		spec("web", "shared"),
		spec("cli", "shared"),
	}}
	explicit := []domain.ExplicitDependency{
		{Name: "web", Groups: []string{"production"}, Platforms: []string{"ruby"}},
		{Name: "cli", Groups: []string{"development"}, Platforms: []string{"jruby"}},
	}

	entries, err := attributes.Resolve(lock, explicit, "Gemfile.lock")
	require.NoError(t, err)

	assert.Equal(t, []string{"development", "production"}, entries["shared"].Groups.Sorted())
	assert.Equal(t, []string{"jruby", "ruby"}, entries["shared"].Platforms.Sorted())
}

func TestResolve_DefaultGroupDoesNotPropagate(t *testing.T) {
	lock := &domain.Lockfile{Specs: []domain.PackageSpec{
		spec("rack"),
		spec("rails", "rack"),
	}}
	explicit := []domain.ExplicitDependency{{Name: "rails", Groups: []string{"default"}}}

	entries, err := attributes.Resolve(lock, explicit, "Gemfile.lock")
	require.NoError(t, err)

	assert.Empty(t, entries["rack"].Groups)
	assert.Equal(t, []string{"default"}, entries["rack"].RenderedGroups())
}

func TestResolve_SubsetOfDependents(t *testing.T) {
	lock := &domain.Lockfile{Specs: []domain.PackageSpec{
		spec("leaf"),
		spec("mid", "leaf"),
		spec("top", "mid"),
		spec("other", "leaf"),
	}}
	explicit := []domain.ExplicitDependency{
		{Name: "top", Groups: []string{"test"}},
		{Name: "other", Groups: []string{"default"}},
	}

	entries, err := attributes.Resolve(lock, explicit, "Gemfile.lock")
	require.NoError(t, err)

	declared := domain.NewSet("top", "other")
	for _, s := range lock.Specs {
		if declared.Has(s.Name) {
			continue
		}
		allowed := domain.NewSet(domain.DefaultGroup)
		for _, parent := range lock.Specs {
			for _, dep := range parent.Dependencies {
				if dep.Name == s.Name {
					allowed = allowed.Union(entries[parent.Name].Groups)
				}
			}
		}
		assert.True(t, allowed.ContainsAll(entries[s.Name].Groups), s.Name)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	lock := &domain.Lockfile{Specs: []domain.PackageSpec{
		spec("c"),
		spec("b", "c"),
		spec("a", "b"),
	}}
	explicit := []domain.ExplicitDependency{{Name: "a", Groups: []string{"test"}, Platforms: []string{"mri_31"}}}

	first, err := attributes.Resolve(lock, explicit, "Gemfile.lock")
	require.NoError(t, err)

	// Feed the fixpoint back in as explicit declarations.
	again := make([]domain.ExplicitDependency, 0, len(first))
	for name, entry := range first {
		again = append(again, domain.ExplicitDependency{
			Name:      name,
			Groups:    entry.Groups.Sorted(),
			Platforms: entry.Platforms.Sorted(),
		})
	}

	second, err := attributes.Resolve(lock, again, "Gemfile.lock")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolve_BundlerIsTolerated(t *testing.T) {
	lock := &domain.Lockfile{Specs: []domain.PackageSpec{spec("rails", "bundler")}}
	explicit := []domain.ExplicitDependency{{Name: "rails", Groups: []string{"default"}}}

	entries, err := attributes.Resolve(lock, explicit, "Gemfile.lock")
	require.NoError(t, err)

	assert.Contains(t, entries, "bundler")
}

func TestResolve_MissingGem(t *testing.T) {
	lock := &domain.Lockfile{Specs: []domain.PackageSpec{spec("a", "missing-gem")}}

	_, err := attributes.Resolve(lock, nil, "/src/Gemfile.lock")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrGraphIntegrity))

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "missing-gem", zErr.Metadata()["dependency"])
	assert.Equal(t, "/src/Gemfile.lock", zErr.Metadata()["lockfile"])
}
