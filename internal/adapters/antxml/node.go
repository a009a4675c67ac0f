package antxml

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/prosa/internal/core/ports"
)

// NodeID is the unique identifier for the script renderer Graft node.
const NodeID graft.ID = "adapter.antxml"

func init() {
	graft.Register(graft.Node[ports.ScriptRenderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ScriptRenderer, error) {
			return NewRenderer(), nil
		},
	})
}
