// Package tui provides an interactive terminal user interface for valuesort.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/valuesort/internal/core/ports/driven"
	"github.com/custodia-labs/valuesort/internal/core/ports/driving"
)

// Ports aggregates the services required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Board owns the lanes and the cursor.
	Board driving.BoardService

	// Snapshot renders, imports and exports the board.
	Snapshot driving.SnapshotService

	// Watcher signals changes to the imported file. Optional.
	Watcher driven.FileWatcher
}

// Options configures a TUI session.
type Options struct {
	// ImportPath is the CSV file the board was loaded from, if any.
	// The re-import key reloads it.
	ImportPath string

	// Watch re-imports ImportPath whenever it changes on disk.
	Watch bool
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Board == nil {
		return ErrMissingBoardService
	}
	if p.Snapshot == nil {
		return ErrMissingSnapshotService
	}
	return nil
}

// Validate checks the options against the available ports.
func (o Options) Validate(p *Ports) error {
	if !o.Watch {
		return nil
	}
	if o.ImportPath == "" {
		return ErrWatchWithoutImport
	}
	if p.Watcher == nil {
		return ErrMissingWatcher
	}
	return nil
}
