// Package file writes board snapshots to a local directory.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/valuesort/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.SnapshotWriter = (*Writer)(nil)

// Writer stores snapshots as files in a directory.
type Writer struct {
	dir string
}

// NewWriter creates a writer for dir. An empty dir means the working directory.
func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = "."
	}
	return &Writer{dir: dir}
}

// Write stores data in dir/name, creating dir if needed.
func (w *Writer) Write(name string, data []byte) (string, error) {
	if name == "" || filepath.Base(name) != name {
		return "", fmt.Errorf("invalid snapshot name %q", name)
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// Dir returns the export directory.
func (w *Writer) Dir() string {
	return w.dir
}
