// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ConfigStore: Application configuration
//   - CatalogSource: The known values seeded into the inbox lane
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - SnapshotWriter: Writes export files. Without it, exports are preview only.
//   - FileWatcher: Signals changes to an imported file. Without it, re-import is manual.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
