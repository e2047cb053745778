package runtime

import (
	"strings"

	"github.com/mwleeds/gnome-builder/internal/core/domain"
	"github.com/mwleeds/gnome-builder/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RuntimeRegistry = (*Registry)(nil)

// Registry resolves runtime ids on demand.
type Registry struct {
	cacheDir string
	logger   ports.Logger
	host     *Host
}

// NewRegistry creates a registry keeping sandboxes below cacheDir.
func NewRegistry(cacheDir string, logger ports.Logger) *Registry {
	return &Registry{
		cacheDir: cacheDir,
		logger:   logger,
		host:     NewHost(),
	}
}

// Lookup returns the runtime for id. An empty id selects the host.
func (r *Registry) Lookup(id, project string) (ports.Runtime, error) {
	switch {
	case id == "" || id == HostID:
		return r.host, nil
	case strings.HasPrefix(id, FlatpakPrefix):
		return NewFlatpak(id, project, r.cacheDir, r.logger)
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrRuntimeNotFound, "cannot resolve runtime"), "runtime", id)
	}
}
