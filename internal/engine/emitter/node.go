package emitter

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/prosa/internal/adapters/fs"         //nolint:depguard // Wired in engine layer
	"go.trai.ch/prosa/internal/adapters/logger"     //nolint:depguard // Wired in engine layer
	"go.trai.ch/prosa/internal/adapters/repository" //nolint:depguard // Wired in engine layer
	"go.trai.ch/prosa/internal/core/ports"
	"go.trai.ch/prosa/internal/engine/options"
)

// NodeID is the unique identifier for the emitter Graft node.
const NodeID graft.ID = "engine.emitter"

func init() {
	graft.Register(graft.Node[*Emitter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			options.NodeID,
			fs.ProbeNodeID,
			repository.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Emitter, error) {
			resolver, err := graft.Dep[*options.Resolver](ctx)
			if err != nil {
				return nil, err
			}
			probe, err := graft.Dep[ports.PathProbe](ctx)
			if err != nil {
				return nil, err
			}
			repos, err := graft.Dep[ports.RepositoryOpener](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(resolver, probe, repos, log), nil
		},
	})
}
