package repository

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/prosa/internal/adapters/fs"
	"go.trai.ch/prosa/internal/core/ports"
)

// NodeID is the unique identifier for the repository opener Graft node.
const NodeID graft.ID = "adapter.repository"

func init() {
	graft.Register(graft.Node[ports.RepositoryOpener]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.ProbeNodeID},
		Run: func(ctx context.Context) (ports.RepositoryOpener, error) {
			probe, err := graft.Dep[ports.PathProbe](ctx)
			if err != nil {
				return nil, err
			}
			return NewOpener(probe), nil
		},
	})
}
