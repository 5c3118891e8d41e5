package catalog

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/prj/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/prj/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/prj/internal/adapters/store"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/prj/internal/core/ports"
)

// NodeID is the unique identifier for the catalog Graft node.
const NodeID graft.ID = "engine.catalog"

func init() {
	graft.Register(graft.Node[*Catalog]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			store.NodeID,
			fs.FileSystemNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Catalog, error) {
			s, err := graft.Dep[ports.Store](ctx)
			if err != nil {
				return nil, err
			}

			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(s, fsys, log), nil
		},
	})
}
