package nix_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gemnix/internal/adapters/nix"
	"go.trai.ch/gemnix/internal/core/domain"
	"go.trai.ch/gemnix/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestGemsetLoader_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)

	loader := nix.NewGemsetLoader(runner, time.Minute)
	manifest, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "gemset.nix"))
	require.NoError(t, err)
	assert.Empty(t, manifest)
	assert.NotNil(t, manifest)
}

func TestGemsetLoader_EvaluatesExistingGemset(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)

	path := filepath.Join(t.TempDir(), "gemset.nix")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), domain.FilePerm))

	runner.EXPECT().Run(gomock.Any(), domain.Command{
		Name:    "nix-instantiate",
		Args:    []string{"--eval", "--json", "--strict", "-E", nix.GemsetExpression(path)},
		Timeout: time.Minute,
	}).Return([]byte(`{
		"rake": {
			"groups": ["default"],
			"platforms": [],
			"source": {"remotes": ["https://rubygems.org"], "sha256": "`+testHash+`", "type": "gem"},
			"target_platform": "ruby",
			"version": "13.0.6"
		},
		"local": {"source": {"path": "/src/local", "type": "path"}, "version": "0.1.0"},
		"engine": {"source": {"rev": "abc", "sha256": "x", "type": "git", "url": "u", "fetchSubmodules": true}}
	}`), nil)

	loader := nix.NewGemsetLoader(runner, time.Minute)
	manifest, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, manifest, 3)

	rake := manifest["rake"]
	assert.Equal(t, "13.0.6", rake.Version)
	assert.Equal(t, "ruby", rake.TargetPlatform)
	assert.Equal(t, []string{"default"}, rake.Groups)
	assert.NotNil(t, rake.Platforms)
	require.NotNil(t, rake.Source)
	assert.Equal(t, domain.SourceTypeGem, rake.Source.Type)
	assert.Equal(t, []string{"https://rubygems.org"}, rake.Source.Remotes)
	assert.Equal(t, testHash, rake.Source.SHA256)

	assert.Equal(t, "/src/local", manifest["local"].Source.Path)
	assert.True(t, manifest["engine"].Source.FetchSubmodules)
	assert.Equal(t, "abc", manifest["engine"].Source.Rev)
}

func TestGemsetLoader_Errors(t *testing.T) {
	t.Run("directory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		loader := nix.NewGemsetLoader(mocks.NewMockCommandRunner(ctrl), time.Minute)

		dir := t.TempDir()
		_, err := loader.Load(context.Background(), dir)
		require.ErrorIs(t, err, domain.ErrGemsetLoadFailed)
	})

	t.Run("evaluation fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mocks.NewMockCommandRunner(ctrl)
		runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, domain.ErrExternalTool)

		path := filepath.Join(t.TempDir(), "gemset.nix")
		require.NoError(t, os.WriteFile(path, []byte("{"), domain.FilePerm))

		loader := nix.NewGemsetLoader(runner, time.Minute)
		_, err := loader.Load(context.Background(), path)
		require.ErrorIs(t, err, domain.ErrExternalTool)
		assert.Contains(t, err.Error(), domain.ErrGemsetLoadFailed.Error())

		var zErr *zerr.Error
		require.ErrorAs(t, err, &zErr)
		assert.Equal(t, path, zErr.Metadata()["path"])
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mocks.NewMockCommandRunner(ctrl)
		runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return([]byte("not json"), nil)

		path := filepath.Join(t.TempDir(), "gemset.nix")
		require.NoError(t, os.WriteFile(path, []byte("{}"), domain.FilePerm))

		loader := nix.NewGemsetLoader(runner, time.Minute)
		_, err := loader.Load(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrGemsetLoadFailed.Error())
	})
}

func TestGemsetExpression(t *testing.T) {
	expr := nix.GemsetExpression(`/tmp/my "dir"/gemset.nix`)
	assert.Contains(t, expr, `(import (/. + "/tmp/my \"dir\"/gemset.nix"))`)
	assert.Contains(t, expr, "toString gem.source.path")
}
