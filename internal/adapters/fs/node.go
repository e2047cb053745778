package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/mwleeds/gnome-builder/internal/core/ports"
)

// HasherNodeID is the unique identifier for the configuration hasher Graft node.
const HasherNodeID graft.ID = "adapter.fs.hasher"

func init() {
	graft.Register(graft.Node[ports.ConfigHasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigHasher, error) {
			return NewHasher(), nil
		},
	})
}
