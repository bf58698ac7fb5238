package driven

import "context"

// FileWatcher signals when a single file changes on disk.
type FileWatcher interface {
	// Watch starts watching path. The returned channel receives a value
	// after each debounced burst of writes and is closed when ctx ends.
	Watch(ctx context.Context, path string) (<-chan struct{}, error)
}
