package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gemnix/internal/adapters/linear"
	"go.trai.ch/gemnix/internal/core/ports"
)

// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{linear.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			renderer, err := graft.Dep[*linear.Renderer](ctx)
			if err != nil {
				return nil, err
			}
			tp := Setup(renderer)
			return NewOTelTracerFromProvider(tp, InstrumentationName).WithRenderer(renderer), nil
		},
	})
}
