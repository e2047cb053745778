package domain

import "go.trai.ch/zerr"

// ConfigurationSet holds the configurations declared for one project.
type ConfigurationSet struct {
	// Project is the project name used to namespace build directories.
	Project string
	// Default is the id of the configuration used when none is requested.
	Default string

	configurations []*Configuration
}

// NewConfigurationSet returns an empty set for project.
func NewConfigurationSet(project string) *ConfigurationSet {
	return &ConfigurationSet{Project: project}
}

// Add appends cfg. Ids must be unique within the set.
func (s *ConfigurationSet) Add(cfg *Configuration) error {
	for _, existing := range s.configurations {
		if existing.ID() == cfg.ID() {
			return zerr.With(zerr.Wrap(ErrDuplicateConfiguration, "cannot add configuration"), "configuration", cfg.ID())
		}
	}
	s.configurations = append(s.configurations, cfg)
	return nil
}

// Lookup returns the configuration with the given id.
// An empty id selects the default configuration, or the first one when no default is set.
func (s *ConfigurationSet) Lookup(id string) (*Configuration, error) {
	if id == "" {
		id = s.Default
	}
	if id == "" && len(s.configurations) > 0 {
		return s.configurations[0], nil
	}
	for _, cfg := range s.configurations {
		if cfg.ID() == id {
			return cfg, nil
		}
	}
	return nil, zerr.With(zerr.Wrap(ErrConfigurationNotFound, "cannot look up configuration"), "configuration", id)
}

// All returns the configurations in declaration order.
func (s *ConfigurationSet) All() []*Configuration {
	out := make([]*Configuration, len(s.configurations))
	copy(out, s.configurations)
	return out
}

// IDs returns the configuration ids in declaration order.
func (s *ConfigurationSet) IDs() []string {
	ids := make([]string, 0, len(s.configurations))
	for _, cfg := range s.configurations {
		ids = append(ids, cfg.ID())
	}
	return ids
}

// Duplicate copies the configuration named id and adds the copy to the set.
// Generated ids that collide with an existing configuration are skipped.
func (s *ConfigurationSet) Duplicate(id string, ids IDGenerator) (*Configuration, error) {
	src, err := s.Lookup(id)
	if err != nil {
		return nil, err
	}

	for {
		dup := src.Duplicate(ids)
		if err := s.Add(dup); err == nil {
			return dup, nil
		}
	}
}
