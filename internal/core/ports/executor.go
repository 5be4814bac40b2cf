package ports

import (
	"context"

	"go.trai.ch/gemnix/internal/core/domain"
)

// CommandRunner runs external tools.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type CommandRunner interface {
	// Run executes cmd and returns its standard output.
	// A non-zero exit is reported as an error carrying the command line and captured output.
	Run(ctx context.Context, cmd domain.Command) ([]byte, error)
}
