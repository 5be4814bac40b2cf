package rubygems

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gemnix/internal/adapters/bundler"
	"go.trai.ch/gemnix/internal/adapters/config"
	"go.trai.ch/gemnix/internal/core/domain"
	"go.trai.ch/gemnix/internal/core/ports"
)

// NodeID is the unique identifier for the remote index Graft node.
const NodeID graft.ID = "adapter.rubygems.index"

func init() {
	graft.Register(graft.Node[ports.RemoteIndex]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{bundler.CredentialStoreNodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.RemoteIndex, error) {
			credentials, err := graft.Dep[ports.CredentialStore](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewIndex(credentials, cfg.HTTPTimeout), nil
		},
	})
}
