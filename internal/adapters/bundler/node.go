package bundler

import (
	"context"
	"os"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/gemnix/internal/adapters/config"
	"go.trai.ch/gemnix/internal/adapters/logger"
	"go.trai.ch/gemnix/internal/adapters/shell"
	"go.trai.ch/gemnix/internal/core/domain"
	"go.trai.ch/gemnix/internal/core/ports"
)

const (
	// LockfileParserNodeID is the unique identifier for the lockfile parser Graft node.
	LockfileParserNodeID graft.ID = "adapter.bundler.lockfile_parser"
	// GemfileLoaderNodeID is the unique identifier for the Gemfile loader Graft node.
	GemfileLoaderNodeID graft.ID = "adapter.bundler.gemfile_loader"
	// CredentialStoreNodeID is the unique identifier for the credential store Graft node.
	CredentialStoreNodeID graft.ID = "adapter.bundler.credentials"
)

func init() {
	graft.Register(graft.Node[ports.LockfileParser]{
		ID:        LockfileParserNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LockfileParser, error) {
			return NewLockfileParser(), nil
		},
	})

	graft.Register(graft.Node[ports.ManifestLoader]{
		ID:        GemfileLoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.ManifestLoader, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
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
			return NewGemfileLoader(runner, log, cfg.CommandTimeout), nil
		},
	})

	graft.Register(graft.Node[ports.CredentialStore]{
		ID:        CredentialStoreNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.CredentialStore, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			// A missing home only disables global settings.
			home, _ := os.UserHomeDir()
			return NewCredentialStore(log, filepath.Dir(cfg.Gemfile), home), nil
		},
	})
}
