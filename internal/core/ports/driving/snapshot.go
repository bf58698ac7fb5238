package driving

import (
	"io"

	"github.com/custodia-labs/valuesort/internal/core/domain"
)

// SnapshotService serialises the board and rebuilds it from tabular text.
type SnapshotService interface {
	// Report renders the board as human-readable preview text.
	Report() string

	// CSV renders the board as delimited tabular text.
	CSV() string

	// Render renders the board in the given format.
	Render(format domain.SnapshotFormat) (string, error)

	// Decode parses tabular text into lane buckets without touching the board.
	Decode(r io.Reader) (*domain.Buckets, error)

	// Import decodes tabular text and replaces the board wholesale.
	Import(r io.Reader) (*domain.ImportResult, error)

	// Export writes the board in the given format to a dated snapshot file
	// and returns its location.
	Export(format domain.SnapshotFormat) (string, error)
}
