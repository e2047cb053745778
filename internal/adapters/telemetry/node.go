package telemetry

import (
	"context"
	"os"
	"strings"

	"github.com/grindlemire/graft"
	"github.com/mwleeds/gnome-builder/internal/adapters/logger"
	"github.com/mwleeds/gnome-builder/internal/adapters/telemetry/progrock"
	"github.com/mwleeds/gnome-builder/internal/core/ports"
	"go.trai.ch/zerr"
)

// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

// ModeEnv selects the tracer implementation.
const ModeEnv = "BUILDER_TELEMETRY"

// Tracer implementations selectable through ModeEnv.
const (
	ModeProgrock = "progrock"
	ModeOTel     = "otel"
	ModeNone     = "none"
)

// InstrumentationName names the tracer spans are created with.
const InstrumentationName = "gnome-builder"

// NewTracer returns the tracer for mode. An empty mode selects Progrock.
func NewTracer(mode string, log ports.Logger) (ports.Tracer, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModeProgrock:
		return progrock.New(log), nil
	case ModeOTel:
		return NewOTelTracer(InstrumentationName, NewLogBridge(log)), nil
	case ModeNone:
		return NewNoOpTracer(), nil
	default:
		return nil, zerr.With(zerr.New("unknown telemetry mode"), "mode", mode)
	}
}

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewTracer(os.Getenv(ModeEnv), log)
		},
	})
}
