package download

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gemnix/internal/adapters/bundler"
	"go.trai.ch/gemnix/internal/adapters/cas"
	"go.trai.ch/gemnix/internal/adapters/config"
	"go.trai.ch/gemnix/internal/core/domain"
	"go.trai.ch/gemnix/internal/core/ports"
)

// NodeID is the unique identifier for the downloader Graft node.
const NodeID graft.ID = "adapter.downloader"

func init() {
	graft.Register(graft.Node[ports.Downloader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cas.NodeID, bundler.CredentialStoreNodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.Downloader, error) {
			cache, err := graft.Dep[ports.ArtifactCache](ctx)
			if err != nil {
				return nil, err
			}
			credentials, err := graft.Dep[ports.CredentialStore](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewDownloader(cache, credentials, cfg.HTTPTimeout), nil
		},
	})
}
