package ports

import "github.com/mwleeds/gnome-builder/internal/core/domain"

// BuildRecordStore defines the interface for storing and retrieving build records.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildRecordStore interface {
	// Get retrieves the last record for a configuration id.
	// Returns nil, nil if not found.
	Get(configurationID string) (*domain.BuildRecord, error)

	// Put stores the record, replacing any previous record of the same configuration.
	Put(record domain.BuildRecord) error
}
