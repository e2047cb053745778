// Package fs fingerprints configurations so configure only reruns when needed.
package fs

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/mwleeds/gnome-builder/internal/core/domain"
	"github.com/mwleeds/gnome-builder/internal/core/ports"
)

var _ ports.ConfigHasher = (*Hasher)(nil)

// Hasher computes configuration fingerprints with XXHash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint hashes the parameters that end up in the configure invocation
// or its environment. Display name, parallelism and the command queues are
// left out since changing them never requires reconfiguring.
func (h *Hasher) Fingerprint(s domain.ConfigurationSnapshot) string {
	d := xxhash.New()

	writeField(d, s.DeviceID)
	writeField(d, s.RuntimeID)
	writeField(d, s.Prefix)
	writeField(d, s.ConfigOpts)
	writeField(d, strconv.FormatBool(s.Debug))
	_, _ = d.Write([]byte{0}) // Section separator

	h.hashEnvironment(d, s.Environment)

	if s.Flatpak != nil {
		writeField(d, s.Flatpak.Manifest)
		writeField(d, s.Flatpak.PrimaryModule)
		writeField(d, s.Flatpak.RepoDir)
		writeField(d, s.Flatpak.RepoName)
	}

	return fmt.Sprintf("%016x", d.Sum64())
}

// hashEnvironment hashes environment variables in a deterministic order.
func (h *Hasher) hashEnvironment(d *xxhash.Digest, env *domain.Environment) {
	if env == nil {
		_, _ = d.Write([]byte{0})
		return
	}

	keys := env.Keys()
	slices.Sort(keys)
	for _, k := range keys {
		v, _ := env.Get(k)
		_, _ = d.WriteString(k)
		_, _ = d.Write([]byte{'='})
		writeField(d, v)
	}
	_, _ = d.Write([]byte{0})
}

func writeField(d *xxhash.Digest, value string) {
	_, _ = d.WriteString(value)
	_, _ = d.Write([]byte{0})
}
