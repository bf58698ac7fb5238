// Package cli provides the valuesort command line interface.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/valuesort/internal/core/ports/driven"
	"github.com/custodia-labs/valuesort/internal/core/ports/driving"
	"github.com/custodia-labs/valuesort/internal/logger"
)

// Services bundles what the commands need.
type Services struct {
	// Settings manages the config file.
	Settings driving.SettingsService

	// Catalog provides the known values.
	Catalog driven.CatalogSource

	// Watcher signals changes to an imported file.
	Watcher driven.FileWatcher

	// OpenBoard deals a fresh board from the catalog and returns it with
	// a snapshot service bound to it.
	OpenBoard func() (driving.BoardService, driving.SnapshotService, error)

	// LogDir receives the TUI log file in verbose mode.
	LogDir string
}

// Builder assembles Services for a config directory. An empty directory
// selects the default location.
type Builder func(configDir string) (*Services, error)

var (
	version   = "dev"
	verbose   bool
	configDir string

	builder Builder
	deps    *Services
)

var rootCmd = &cobra.Command{
	Use:   "valuesort",
	Short: "Sort personal values into lanes",
	Long: `valuesort deals a deck of personal values into an inbox lane and lets
you sort each one into Core, Important, Nice to Have or Not Me.

Boards are saved as CSV and can be loaded back, converted or printed
as a report.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.valuesort)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBuilder sets the function that assembles services once flags are parsed.
func SetBuilder(b Builder) {
	builder = b
	deps = nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadServices builds the services on first use.
func loadServices() (*Services, error) {
	if deps != nil {
		return deps, nil
	}
	if builder == nil {
		return nil, errors.New("services not configured")
	}
	s, err := builder(configDir)
	if err != nil {
		return nil, fmt.Errorf("initialise: %w", err)
	}
	deps = s
	return deps, nil
}
