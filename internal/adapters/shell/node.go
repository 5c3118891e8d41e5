package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/prj/internal/adapters/logger"
	"go.trai.ch/prj/internal/core/ports"
)

// NodeID is the unique identifier for the workspace launcher Graft node.
const NodeID graft.ID = "adapter.workspace"

func init() {
	graft.Register(graft.Node[ports.Workspace]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Workspace, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLauncher(log), nil
		},
	})
}
