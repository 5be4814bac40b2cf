// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/gemnix/internal/adapters/bundler"
	_ "go.trai.ch/gemnix/internal/adapters/cas"
	_ "go.trai.ch/gemnix/internal/adapters/config"
	_ "go.trai.ch/gemnix/internal/adapters/download"
	_ "go.trai.ch/gemnix/internal/adapters/linear"
	_ "go.trai.ch/gemnix/internal/adapters/logger"
	_ "go.trai.ch/gemnix/internal/adapters/nix"
	_ "go.trai.ch/gemnix/internal/adapters/rubygems"
	_ "go.trai.ch/gemnix/internal/adapters/shell"
	_ "go.trai.ch/gemnix/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/gemnix/internal/app"
	_ "go.trai.ch/gemnix/internal/engine/converter"
	_ "go.trai.ch/gemnix/internal/engine/fetcher"
)
