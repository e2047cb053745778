// Package cas stores what was last built for each configuration.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/mwleeds/gnome-builder/internal/core/domain"
	"github.com/mwleeds/gnome-builder/internal/core/ports"
	"go.trai.ch/zerr"
)

// FileName is the name of the record file below the cache directory.
const FileName = "records.json"

var _ ports.BuildRecordStore = (*Store)(nil)

// Store implements ports.BuildRecordStore using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.BuildRecord
}

// DefaultPath returns the record file below the user cache directory.
func DefaultPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", zerr.Wrap(err, "failed to locate cache directory")
	}
	return filepath.Join(dir, "gnome-builder", FileName), nil
}

// NewStore creates a new BuildRecordStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.BuildRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read build record store"), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to unmarshal build record store"), "path", s.path)
	}

	return nil
}

// save writes the cache to a temporary file and renames it into place.
// The caller must hold the write lock.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal build record store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for build record store"), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, FileName+".*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temporary build record file")
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write build record store")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to write build record store")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to replace build record store"), "path", s.path)
	}

	return nil
}

// Get retrieves the last record of a configuration.
func (s *Store) Get(configurationID string) (*domain.BuildRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.cache[configurationID]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the record and persists the store.
func (s *Store) Put(record domain.BuildRecord) error {
	if record.ConfigurationID == "" {
		return zerr.New("build record has no configuration id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[record.ConfigurationID] = record
	return s.save()
}
