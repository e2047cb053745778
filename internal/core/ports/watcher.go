package ports

import (
	"context"
	"iter"
)

//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks

// WatchOp is the kind of file system change.
type WatchOp int

const (
	OpCreate WatchOp = iota + 1
	OpWrite
	OpRemove
	OpRename
)

// WatchEvent is a single file system change.
type WatchEvent struct {
	Path      string
	Operation WatchOp
}

// Watcher reports file system changes below a root directory.
type Watcher interface {
	// Start begins watching root recursively. Paths under any of ignore are not reported.
	Start(ctx context.Context, root string, ignore ...string) error
	// Stop releases the watcher.
	Stop() error
	// Events yields changes until the watcher stops.
	Events() iter.Seq[WatchEvent]
}
