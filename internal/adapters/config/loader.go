// Package config reads and writes the project configuration file.
package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mwleeds/gnome-builder/internal/core/domain"
	"github.com/mwleeds/gnome-builder/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the configuration file looked up in the project directory.
const DefaultFileName = "builder.yaml"

// SupportedVersion is the only schema version understood by the loader.
const SupportedVersion = "1"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration file at path.
// The project name defaults to the name of the directory holding the file.
func (l *Loader) Load(path string) (*domain.ConfigurationSet, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigFileNotFound, "cannot load configurations"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file Builderfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	if file.Version != "" && file.Version != SupportedVersion {
		return nil, zerr.With(zerr.New("unsupported config version"), "version", file.Version)
	}

	project := file.Project
	if project == "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to resolve config path")
		}
		project = filepath.Base(filepath.Dir(abs))
	}

	set := domain.NewConfigurationSet(project)
	for i := range file.Configurations {
		cfg, err := toConfiguration(&file.Configurations[i])
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}
		if err := set.Add(cfg); err != nil {
			return nil, zerr.With(err, "path", path)
		}
	}

	if file.Default != "" {
		if _, err := set.Lookup(file.Default); err != nil {
			return nil, zerr.With(err, "path", path)
		}
		set.Default = file.Default
	}

	if len(file.Configurations) == 0 && l.Logger != nil {
		l.Logger.Warn("no configurations declared in " + path)
	}

	return set, nil
}

// Save writes set to path, replacing the previous file atomically.
func (l *Loader) Save(path string, set *domain.ConfigurationSet) error {
	file := Builderfile{
		Version: SupportedVersion,
		Project: set.Project,
		Default: set.Default,
	}
	for _, cfg := range set.All() {
		file.Configurations = append(file.Configurations, fromConfiguration(cfg))
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&file); err != nil {
		return zerr.Wrap(err, "failed to encode config file")
	}
	if err := enc.Close(); err != nil {
		return zerr.Wrap(err, "failed to encode config file")
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create temporary config file"), "path", path)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // removed after rename anyway

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, "failed to write config file"), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write config file"), "path", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to replace config file"), "path", path)
	}

	if l.Logger != nil {
		l.Logger.Info("saved " + path)
	}
	return nil
}

func toConfiguration(dto *ConfigurationDTO) (*domain.Configuration, error) {
	if dto.ID == "" {
		return nil, zerr.Wrap(domain.ErrInvalidOptionValue, "configuration id is required")
	}

	cfg := domain.NewConfiguration(dto.ID)
	if dto.Name != "" {
		cfg.SetDisplayName(dto.Name)
	}
	if dto.Device != "" {
		cfg.SetDeviceID(dto.Device)
	}
	if dto.Runtime != "" {
		cfg.SetRuntimeID(dto.Runtime)
	}
	cfg.SetPrefix(dto.Prefix)
	cfg.SetConfigOpts(dto.ConfigOpts)
	if dto.Debug != nil {
		cfg.SetDebug(*dto.Debug)
	}
	if dto.Parallelism != nil {
		if err := cfg.SetParallelism(*dto.Parallelism); err != nil {
			return nil, zerr.With(err, "configuration", dto.ID)
		}
	}

	env := domain.NewEnvironment()
	for _, v := range dto.Environment {
		env.Set(v.Key, v.Value)
	}
	cfg.SetEnvironment(env)

	cfg.SetPrebuild(domain.NewCommandQueue(dto.Prebuild...))
	cfg.SetPostbuild(domain.NewCommandQueue(dto.Postbuild...))

	if dto.Flatpak != nil {
		cfg.SetFlatpak(domain.FlatpakOptions{
			Manifest:      dto.Flatpak.Manifest,
			PrimaryModule: dto.Flatpak.PrimaryModule,
			RepoDir:       dto.Flatpak.RepoDir,
			RepoName:      dto.Flatpak.RepoName,
		})
	}

	// A freshly loaded configuration has nothing unsaved.
	cfg.SetDirty(false)
	return cfg, nil
}

func fromConfiguration(cfg *domain.Configuration) ConfigurationDTO {
	parallelism := cfg.Parallelism()
	debug := cfg.Debug()

	dto := ConfigurationDTO{
		ID:          cfg.ID(),
		Device:      cfg.DeviceID(),
		Runtime:     cfg.RuntimeID(),
		Prefix:      cfg.Prefix(),
		Parallelism: &parallelism,
		Debug:       &debug,
		ConfigOpts:  cfg.ConfigOpts(),
		Prebuild:    cfg.Prebuild().Commands(),
		Postbuild:   cfg.Postbuild().Commands(),
	}
	if name := cfg.DisplayName(); name != cfg.ID() {
		dto.Name = name
	}

	env := cfg.Environment()
	for _, key := range env.Keys() {
		value, _ := env.Get(key)
		dto.Environment = append(dto.Environment, EnvVar{Key: key, Value: value})
	}

	if opts, ok := cfg.Flatpak(); ok {
		dto.Flatpak = &FlatpakDTO{
			Manifest:      opts.Manifest,
			PrimaryModule: opts.PrimaryModule,
			RepoDir:       opts.RepoDir,
			RepoName:      opts.RepoName,
		}
	}
	return dto
}
