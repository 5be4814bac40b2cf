package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gemnix/internal/adapters/bundler" //nolint:depguard // Wired in app layer
	"go.trai.ch/gemnix/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/gemnix/internal/adapters/linear"  //nolint:depguard // Wired in app layer
	"go.trai.ch/gemnix/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/gemnix/internal/adapters/nix"     //nolint:depguard // Wired in app layer
	"go.trai.ch/gemnix/internal/core/domain"
	"go.trai.ch/gemnix/internal/core/ports"
	"go.trai.ch/gemnix/internal/engine/converter"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds what the command line needs after the graph is built.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			bundler.LockfileParserNodeID,
			bundler.GemfileLoaderNodeID,
			bundler.CredentialStoreNodeID,
			nix.GemsetLoaderNodeID,
			nix.SerializerNodeID,
			converter.NodeID,
			logger.NodeID,
			linear.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			lockfiles, err := graft.Dep[ports.LockfileParser](ctx)
			if err != nil {
				return nil, err
			}
			manifests, err := graft.Dep[ports.ManifestLoader](ctx)
			if err != nil {
				return nil, err
			}
			credentials, err := graft.Dep[ports.CredentialStore](ctx)
			if err != nil {
				return nil, err
			}
			gemsets, err := graft.Dep[ports.GemsetLoader](ctx)
			if err != nil {
				return nil, err
			}
			writer, err := graft.Dep[ports.GemsetWriter](ctx)
			if err != nil {
				return nil, err
			}
			conv, err := graft.Dep[*converter.Converter](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			renderer, err := graft.Dep[*linear.Renderer](ctx)
			if err != nil {
				return nil, err
			}

			a := New(cfg, lockfiles, manifests, gemsets, writer, conv, log).WithOutputs(renderer)
			if scoped, ok := credentials.(ProjectScoped); ok {
				a.WithProjectScoped(scoped)
			}
			return a, nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}
