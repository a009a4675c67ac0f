package propfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/prosa/internal/core/ports"
)

// NodeID is the unique identifier for the property file renderer Graft node.
const NodeID graft.ID = "adapter.propfile"

func init() {
	graft.Register(graft.Node[ports.PropertiesRenderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PropertiesRenderer, error) {
			return NewRenderer(), nil
		},
	})
}
