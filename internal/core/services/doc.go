// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
//   - BoardService: lanes, selection cursor and every card movement
//   - SnapshotService: report and tabular encoding, tabular decoding
//   - SettingsService: typed access to the config store
//
// Services import only the standard library, the ports and the logger.
package services
