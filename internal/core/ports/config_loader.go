package ports

import "github.com/mwleeds/gnome-builder/internal/core/domain"

// ConfigLoader defines the interface for reading and writing project configurations.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path.
	Load(path string) (*domain.ConfigurationSet, error)
	// Save writes set back to path.
	Save(path string, set *domain.ConfigurationSet) error
}
