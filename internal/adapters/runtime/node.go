package runtime

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"github.com/mwleeds/gnome-builder/internal/adapters/logger"
	"github.com/mwleeds/gnome-builder/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the runtime registry Graft node.
const NodeID graft.ID = "adapter.runtime_registry"

func init() {
	graft.Register(graft.Node[ports.RuntimeRegistry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.RuntimeRegistry, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			cacheDir, err := os.UserCacheDir()
			if err != nil {
				return nil, zerr.Wrap(err, "failed to locate cache directory")
			}
			return NewRegistry(cacheDir, log), nil
		},
	})
}
