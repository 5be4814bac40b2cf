package ports

import "go.trai.ch/gemnix/internal/core/domain"

// ConfigLoader defines the interface for loading the run configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the nearest config file at or above cwd and merges it over the defaults.
	// A missing config file is not an error.
	Load(cwd string) (domain.Config, error)
}
