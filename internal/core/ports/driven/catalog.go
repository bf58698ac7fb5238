package driven

import "github.com/custodia-labs/valuesort/internal/core/domain"

// CatalogSource provides the full catalog of known values.
type CatalogSource interface {
	// Values returns every known value in catalog order.
	// Returns domain.ErrEmptyCatalog if the source holds no values.
	Values() ([]domain.Card, error)

	// Origin describes where the values come from, for display.
	Origin() string
}
