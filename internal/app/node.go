package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/mwleeds/gnome-builder/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"github.com/mwleeds/gnome-builder/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/mwleeds/gnome-builder/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"github.com/mwleeds/gnome-builder/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/mwleeds/gnome-builder/internal/adapters/runtime"   //nolint:depguard // Wired in app layer
	"github.com/mwleeds/gnome-builder/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/mwleeds/gnome-builder/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"github.com/mwleeds/gnome-builder/internal/core/ports"
	"github.com/mwleeds/gnome-builder/internal/engine/buildtask"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			runtime.NodeID,
			fs.HasherNodeID,
			cas.NodeID,
			buildtask.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log, tracer), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	registry, err := graft.Dep[ports.RuntimeRegistry](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.ConfigHasher](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.BuildRecordStore](ctx)
	if err != nil {
		return nil, err
	}

	tasks, err := graft.Dep[*buildtask.Factory](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, registry, hasher, store, tasks, w, log), nil
}
