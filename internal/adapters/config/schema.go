package config

import (
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Builderfile represents the structure of the builder.yaml configuration file.
type Builderfile struct {
	Version        string             `yaml:"version"`
	Project        string             `yaml:"project,omitempty"`
	Default        string             `yaml:"default,omitempty"`
	Configurations []ConfigurationDTO `yaml:"configurations"`
}

// ConfigurationDTO represents one build configuration in the file.
type ConfigurationDTO struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name,omitempty"`
	Device      string         `yaml:"device,omitempty"`
	Runtime     string         `yaml:"runtime,omitempty"`
	Prefix      string         `yaml:"prefix,omitempty"`
	Parallelism *int           `yaml:"parallelism,omitempty"`
	Debug       *bool          `yaml:"debug,omitempty"`
	ConfigOpts  string         `yaml:"config-opts,omitempty"`
	Environment EnvironmentDTO `yaml:"environment,omitempty"`
	Prebuild    []string       `yaml:"prebuild,omitempty"`
	Postbuild   []string       `yaml:"postbuild,omitempty"`
	Flatpak     *FlatpakDTO    `yaml:"flatpak,omitempty"`
}

// FlatpakDTO represents the flatpak section of a configuration.
type FlatpakDTO struct {
	Manifest      string `yaml:"manifest,omitempty"`
	PrimaryModule string `yaml:"primary-module,omitempty"`
	RepoDir       string `yaml:"repo-dir,omitempty"`
	RepoName      string `yaml:"repo-name,omitempty"`
}

// EnvVar is a single environment entry.
type EnvVar struct {
	Key   string
	Value string
}

// EnvironmentDTO is an environment mapping that keeps its key order.
type EnvironmentDTO []EnvVar

// IsZero reports whether the mapping is empty, so omitempty drops it.
func (e EnvironmentDTO) IsZero() bool {
	return len(e) == 0
}

// UnmarshalYAML decodes a mapping node in document order.
func (e *EnvironmentDTO) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return zerr.With(zerr.New("environment must be a mapping"), "line", node.Line)
	}

	vars := make(EnvironmentDTO, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return zerr.With(zerr.New("environment values must be scalars"), "key", key.Value)
		}
		vars = append(vars, EnvVar{Key: key.Value, Value: value.Value})
	}
	*e = vars
	return nil
}

// MarshalYAML encodes the entries as a mapping node in order.
func (e EnvironmentDTO) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, v := range e {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.Value},
		)
	}
	return node, nil
}
