// Package runtime provides the runtimes build processes run in.
package runtime

import (
	"context"

	"github.com/mwleeds/gnome-builder/internal/adapters/subprocess"
	"github.com/mwleeds/gnome-builder/internal/core/domain"
	"github.com/mwleeds/gnome-builder/internal/core/ports"
)

// HostID is the id of the host runtime.
const HostID = "host"

var _ ports.Runtime = (*Host)(nil)

// Host runs processes directly on the host operating system.
type Host struct{}

// NewHost creates the host runtime.
func NewHost() *Host {
	return &Host{}
}

// ID returns "host".
func (h *Host) ID() string {
	return HostID
}

// DisplayName returns a human readable name.
func (h *Host) DisplayName() string {
	return "Host operating system"
}

// CreateLauncher returns a plain subprocess launcher.
func (h *Host) CreateLauncher() (ports.Launcher, error) {
	return subprocess.NewLauncher(), nil
}

// ContainsProgramInPath resolves name against the PATH of this process.
func (h *Host) ContainsProgramInPath(_ context.Context, name string) bool {
	_, err := subprocess.LookPath(name)
	return err == nil
}

// Prebuild does nothing on the host.
func (h *Host) Prebuild(_ context.Context) error {
	return nil
}

// PrepareConfiguration leaves the configuration untouched.
func (h *Host) PrepareConfiguration(_ *domain.Configuration) {}
