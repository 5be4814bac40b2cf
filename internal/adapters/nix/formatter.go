package nix

import (
	"context"
	"time"

	"go.trai.ch/gemnix/internal/core/domain"
	"go.trai.ch/gemnix/internal/core/ports"
)

// Formatter implements ports.HashFormatter with nix-hash.
type Formatter struct {
	runner  ports.CommandRunner
	timeout time.Duration
}

// NewFormatter creates a Formatter.
func NewFormatter(runner ports.CommandRunner, timeout time.Duration) *Formatter {
	return &Formatter{runner: runner, timeout: timeout}
}

// Format converts raw into base-32. Output without a canonical hash yields "" and no error.
func (f *Formatter) Format(ctx context.Context, raw string) (string, error) {
	out, err := f.runner.Run(ctx, domain.Command{
		Name:    "nix-hash",
		Args:    []string{"--type", "sha256", "--to-base32", raw},
		Timeout: f.timeout,
	})
	if err != nil {
		return "", err
	}
	return domain.MatchBase32Hash(string(out)), nil
}
