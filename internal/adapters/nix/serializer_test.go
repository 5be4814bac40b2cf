package nix_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gemnix/internal/adapters/nix"
	"go.trai.ch/gemnix/internal/core/domain"
)

func TestSerializer_Write(t *testing.T) {
	manifest := domain.Manifest{
		"actionpack": {
			Version:        "5.2.0",
			TargetPlatform: "ruby",
			GemPlatform:    "ruby",
			Platforms:      []domain.PlatformConstraint{},
			Groups:         []string{"default"},
			Source: &domain.SourceBlock{
				Type:    domain.SourceTypeGem,
				Remotes: []string{"https://rubygems.org"},
				SHA256:  testHash,
			},
			Dependencies: []string{"rack", "rack-test"},
		},
		"sorbet-static": {
			Version:        "0.4.4821-java-unknown",
			TargetPlatform: "java",
			GemPlatform:    "java-unknown",
			Platforms: []domain.PlatformConstraint{
				{Engine: "jruby"},
				{Engine: "ruby", Version: "2.5"},
			},
			Groups: []string{"development", "test"},
			Source: &domain.SourceBlock{
				Type:    domain.SourceTypeGem,
				Remotes: []string{"https://rubygems.org"},
				SHA256:  testHash,
			},
		},
		"rails-html": {
			Version:        "1.0.4",
			TargetPlatform: "ruby",
			GemPlatform:    "ruby",
			Platforms:      []domain.PlatformConstraint{},
			Groups:         []string{"default"},
			Source: &domain.SourceBlock{
				Type:            domain.SourceTypeGit,
				URL:             "https://github.com/rails/rails-html-sanitizer.git",
				Rev:             "4e1a1e0d",
				SHA256:          testHash,
				FetchSubmodules: false,
			},
		},
		"my_engine": {
			Version:        "0.1.0",
			TargetPlatform: "ruby",
			GemPlatform:    "ruby",
			Platforms:      []domain.PlatformConstraint{},
			Groups:         []string{"default"},
			Source: &domain.SourceBlock{
				Type: domain.SourceTypePath,
				Path: "engines/my_engine",
			},
		},
		"broken": {
			Dependencies: []string{"rack"},
		},
		"1password": {},
		"with": {
			Version: "${weird}\"quoted\"",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, nix.NewSerializer().Write(&buf, manifest))

	g := goldie.New(t)
	g.Assert(t, "gemset", buf.Bytes())
}

func TestSerializer_EmptyManifest(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, nix.NewSerializer().Write(&buf, domain.Manifest{}))
	assert.Equal(t, "{}\n", buf.String())
}

func TestSerializer_PathLiterals(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{path: ".", expected: "path = ./.;"},
		{path: "../shared/gem", expected: "path = ../shared/gem;"},
		{path: "./vendor/x/", expected: "path = ./vendor/x;"},
		{path: "/opt/gems/x", expected: "path = /opt/gems/x;"},
		{path: "gems/with space", expected: `path = (./. + "/gems/with space");`},
		{path: "/opt/with space", expected: `path = (/. + "/opt/with space");`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			manifest := domain.Manifest{
				"local": {Source: &domain.SourceBlock{Type: domain.SourceTypePath, Path: tt.path}},
			}
			var buf bytes.Buffer
			require.NoError(t, nix.NewSerializer().Write(&buf, manifest))
			assert.Contains(t, buf.String(), tt.expected)
		})
	}
}

func TestSerializer_UnknownSourceType(t *testing.T) {
	manifest := domain.Manifest{
		"odd": {Source: &domain.SourceBlock{Type: "svn"}},
	}
	var buf bytes.Buffer
	err := nix.NewSerializer().Write(&buf, manifest)
	require.ErrorIs(t, err, domain.ErrUnknownSource)
	assert.Empty(t, buf.String())
}
