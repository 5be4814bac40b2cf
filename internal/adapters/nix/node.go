package nix

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gemnix/internal/adapters/config"
	"go.trai.ch/gemnix/internal/adapters/shell"
	"go.trai.ch/gemnix/internal/core/domain"
	"go.trai.ch/gemnix/internal/core/ports"
)

const (
	// PrefetcherNodeID is the unique identifier for the prefetcher Graft node.
	PrefetcherNodeID graft.ID = "adapter.nix.prefetcher"
	// FormatterNodeID is the unique identifier for the hash formatter Graft node.
	FormatterNodeID graft.ID = "adapter.nix.formatter"
	// GemsetLoaderNodeID is the unique identifier for the gemset loader Graft node.
	GemsetLoaderNodeID graft.ID = "adapter.nix.gemset_loader"
	// SerializerNodeID is the unique identifier for the gemset writer Graft node.
	SerializerNodeID graft.ID = "adapter.nix.serializer"
)

func init() {
	graft.Register(graft.Node[ports.Prefetcher]{
		ID:        PrefetcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.Prefetcher, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewPrefetcher(runner, cfg.CommandTimeout), nil
		},
	})

	graft.Register(graft.Node[ports.HashFormatter]{
		ID:        FormatterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.HashFormatter, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewFormatter(runner, cfg.CommandTimeout), nil
		},
	})

	graft.Register(graft.Node[ports.GemsetLoader]{
		ID:        GemsetLoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.GemsetLoader, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewGemsetLoader(runner, cfg.CommandTimeout), nil
		},
	})

	graft.Register(graft.Node[ports.GemsetWriter]{
		ID:        SerializerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.GemsetWriter, error) {
			return NewSerializer(), nil
		},
	})
}
