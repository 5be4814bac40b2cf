package fetcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gemnix/internal/adapters/config"
	"go.trai.ch/gemnix/internal/adapters/download"
	"go.trai.ch/gemnix/internal/adapters/logger"
	"go.trai.ch/gemnix/internal/adapters/nix"
	"go.trai.ch/gemnix/internal/adapters/rubygems"
	"go.trai.ch/gemnix/internal/core/domain"
	"go.trai.ch/gemnix/internal/core/ports"
)

// NodeID is the unique identifier for the source fetcher Graft node.
const NodeID graft.ID = "engine.fetcher"

func init() {
	graft.Register(graft.Node[ports.SourceFetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			nix.PrefetcherNodeID,
			nix.FormatterNodeID,
			rubygems.NodeID,
			download.NodeID,
			logger.NodeID,
			config.SettingsNodeID,
		},
		Run: func(ctx context.Context) (ports.SourceFetcher, error) {
			prefetcher, err := graft.Dep[ports.Prefetcher](ctx)
			if err != nil {
				return nil, err
			}
			formatter, err := graft.Dep[ports.HashFormatter](ctx)
			if err != nil {
				return nil, err
			}
			index, err := graft.Dep[ports.RemoteIndex](ctx)
			if err != nil {
				return nil, err
			}
			downloader, err := graft.Dep[ports.Downloader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(prefetcher, formatter, index, downloader, log, cfg.LocalCaches), nil
		},
	})
}
