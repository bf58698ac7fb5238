// Package domain defines the core business entities for valuesort.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Card: A named, described value being sorted
//   - LaneID: One bucket from the fixed, ordered lane catalog
//   - Board: The lane to card-sequence mapping
//   - Selection: The cursor identifying the current card
//   - Buckets: Lanes decoded from a tabular snapshot
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
