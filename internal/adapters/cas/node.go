package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/mwleeds/gnome-builder/internal/core/ports"
)

// NodeID is the unique identifier for the build record store Graft node.
const NodeID graft.ID = "adapter.build_record_store"

func init() {
	graft.Register(graft.Node[ports.BuildRecordStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BuildRecordStore, error) {
			path, err := DefaultPath()
			if err != nil {
				return nil, err
			}
			return NewStore(path)
		},
	})
}
