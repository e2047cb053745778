package ports

import "github.com/mwleeds/gnome-builder/internal/core/domain"

// ConfigHasher defines the interface for fingerprinting configurations.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type ConfigHasher interface {
	// Fingerprint hashes every parameter of the snapshot that influences configure.
	Fingerprint(snapshot domain.ConfigurationSnapshot) string
}
