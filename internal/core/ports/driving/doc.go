// Package driving holds the service interfaces the CLI and TUI call to
// read and change the board, its snapshots and the settings.
//
// internal/core/services implements them.
package driving
