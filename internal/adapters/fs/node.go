package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/prosa/internal/core/ports"
)

const (
	ProbeNodeID  graft.ID = "adapter.fs.probe"
	HasherNodeID graft.ID = "adapter.fs.hasher"
	WriterNodeID graft.ID = "adapter.fs.writer"
)

func init() {
	graft.Register(graft.Node[ports.PathProbe]{
		ID:        ProbeNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PathProbe, error) {
			return NewProbe(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.OutputWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.OutputWriter, error) {
			return NewWriter(), nil
		},
	})
}
