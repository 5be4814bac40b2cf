package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gemnix/internal/adapters/config"
	"go.trai.ch/gemnix/internal/core/domain"
	"go.trai.ch/gemnix/internal/core/ports"
)

// NodeID is the unique identifier for the artifact cache Graft node.
const NodeID graft.ID = "adapter.artifact_cache"

func init() {
	graft.Register(graft.Node[ports.ArtifactCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.ArtifactCache, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(cfg.CacheDir), nil
		},
	})
}
