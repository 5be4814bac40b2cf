package nix

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/gemnix/internal/core/domain"
	"go.trai.ch/gemnix/internal/core/ports"
	"go.trai.ch/zerr"
)

// gemsetExpression imports a gemset and turns path sources into strings,
// so evaluating it does not copy local checkouts into the store.
const gemsetExpression = `builtins.mapAttrs (_: gem:
  if gem ? source && gem.source ? path
  then gem // { source = gem.source // { path = toString gem.source.path; }; }
  else gem) (import (/. + %s))`

// GemsetLoader implements ports.GemsetLoader with nix-instantiate.
type GemsetLoader struct {
	runner  ports.CommandRunner
	timeout time.Duration
}

// NewGemsetLoader creates a GemsetLoader.
func NewGemsetLoader(runner ports.CommandRunner, timeout time.Duration) *GemsetLoader {
	return &GemsetLoader{runner: runner, timeout: timeout}
}

// Load evaluates the gemset at path to JSON. A missing file yields an empty manifest.
func (l *GemsetLoader) Load(ctx context.Context, path string) (domain.Manifest, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrGemsetLoadFailed.Error()), "path", path)
	}

	info, err := os.Stat(abs)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.Manifest{}, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrGemsetLoadFailed.Error()), "path", abs)
	}
	if info.IsDir() {
		return nil, zerr.With(zerr.Wrap(domain.ErrGemsetLoadFailed, "gemset path is a directory"), "path", abs)
	}

	out, err := l.runner.Run(ctx, domain.Command{
		Name:    "nix-instantiate",
		Args:    []string{"--eval", "--json", "--strict", "-E", GemsetExpression(abs)},
		Timeout: l.timeout,
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrGemsetLoadFailed.Error()), "path", abs)
	}

	manifest := domain.Manifest{}
	if err := json.Unmarshal(out, &manifest); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrGemsetLoadFailed.Error()), "path", abs)
	}
	return manifest, nil
}

// GemsetExpression returns the Nix expression that evaluates the gemset at the absolute path abs.
func GemsetExpression(abs string) string {
	return fmt.Sprintf(gemsetExpression, quoteString(abs))
}
