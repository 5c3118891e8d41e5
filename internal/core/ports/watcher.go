package ports

import (
	"context"
	"iter"
)

// ConfigEvent reports that the settings file changed on disk.
type ConfigEvent struct {
	// Path is the settings file.
	Path string
	// Removed is set when the file no longer exists.
	Removed bool
}

// ConfigWatcher subscribes to changes of the settings file.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type ConfigWatcher interface {
	// Start begins watching the settings file at path.
	Start(ctx context.Context, path string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of change events. It ends when the watcher stops.
	Events() iter.Seq[ConfigEvent]
}
