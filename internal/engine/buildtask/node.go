package buildtask

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/mwleeds/gnome-builder/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"github.com/mwleeds/gnome-builder/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"github.com/mwleeds/gnome-builder/internal/core/domain"
	"github.com/mwleeds/gnome-builder/internal/core/ports"
)

// NodeID is the unique identifier for the build task factory Graft node.
const NodeID graft.ID = "engine.buildtask"

// Factory creates build tasks sharing one tracer and logger.
type Factory struct {
	tracer ports.Tracer
	logger ports.Logger
}

// NewFactory creates a Factory.
func NewFactory(tracer ports.Tracer, logger ports.Logger) *Factory {
	return &Factory{tracer: tracer, logger: logger}
}

// New creates a task for cfg reporting to result.
func (f *Factory) New(cfg *domain.Configuration, result ports.BuildResult, opts ...Option) *Task {
	base := []Option{WithTracer(f.tracer), WithLogger(f.logger)}
	return New(cfg, result, append(base, opts...)...)
}

// Tracer returns the tracer handed to every task.
func (f *Factory) Tracer() ports.Tracer {
	return f.tracer
}

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewFactory(tracer, log), nil
		},
	})
}
