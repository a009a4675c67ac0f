package options

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/prosa/internal/adapters/xmlconfig" //nolint:depguard // Wired in engine layer
	"go.trai.ch/prosa/internal/core/ports"
)

// NodeID is the unique identifier for the option resolver Graft node.
const NodeID graft.ID = "engine.options"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{xmlconfig.NodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			parser, err := graft.Dep[ports.ConfigParser](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(parser), nil
		},
	})
}
