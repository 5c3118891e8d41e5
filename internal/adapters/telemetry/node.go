package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/prj/internal/adapters/logger"
	"go.trai.ch/prj/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the tracer Graft node.
	NodeID graft.ID = "adapter.tracer"

	// InstrumentationName names the tracer that owns every span of the application.
	InstrumentationName = "prj"
)

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewOTelTracer(Setup(log), InstrumentationName), nil
		},
	})
}
