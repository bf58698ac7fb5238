package tui

import "errors"

// ErrMissingBoardService is returned when the board service is not provided.
var ErrMissingBoardService = errors.New("tui: board service is required")

// ErrMissingSnapshotService is returned when the snapshot service is not provided.
var ErrMissingSnapshotService = errors.New("tui: snapshot service is required")

// ErrMissingWatcher is returned when watching is requested without a file watcher.
var ErrMissingWatcher = errors.New("tui: file watcher is required to watch")

// ErrWatchWithoutImport is returned when watching is requested without a file to import.
var ErrWatchWithoutImport = errors.New("tui: watching requires an import file")
