package ports

import (
	"context"
	"io"

	"go.trai.ch/gemnix/internal/core/domain"
)

// GemsetLoader reads a gemset written by a previous run.
//
//go:generate mockgen -source=gemset.go -destination=mocks/mock_gemset.go -package=mocks
type GemsetLoader interface {
	// Load evaluates the gemset at path. A missing file yields an empty manifest.
	Load(ctx context.Context, path string) (domain.Manifest, error)
}

// GemsetWriter renders a manifest as a Nix expression.
type GemsetWriter interface {
	// Write serializes manifest to w.
	Write(w io.Writer, manifest domain.Manifest) error
}
