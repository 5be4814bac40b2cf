package converter

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gemnix/internal/adapters/logger"
	"go.trai.ch/gemnix/internal/adapters/telemetry"
	"go.trai.ch/gemnix/internal/core/ports"
	"go.trai.ch/gemnix/internal/engine/fetcher"
)

// NodeID is the unique identifier for the converter Graft node.
const NodeID graft.ID = "engine.converter"

func init() {
	graft.Register(graft.Node[*Converter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fetcher.NodeID, logger.NodeID, telemetry.TracerNodeID},
		Run: func(ctx context.Context) (*Converter, error) {
			sourceFetcher, err := graft.Dep[ports.SourceFetcher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return New(sourceFetcher, log, tracer), nil
		},
	})
}
