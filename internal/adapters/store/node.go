package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/prj/internal/core/ports"
)

// NodeID is the unique identifier for the key-value store Graft node.
const NodeID graft.ID = "adapter.store"

func init() {
	graft.Register(graft.Node[ports.Store]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Store, error) {
			s, err := NewStore()
			if err != nil {
				return nil, err
			}
			return s, nil
		},
	})
}
