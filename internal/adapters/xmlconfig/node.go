package xmlconfig

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/prosa/internal/core/ports"
)

// NodeID is the unique identifier for the configuration parser Graft node.
const NodeID graft.ID = "adapter.xmlconfig"

func init() {
	graft.Register(graft.Node[ports.ConfigParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigParser, error) {
			return NewParser(), nil
		},
	})
}
