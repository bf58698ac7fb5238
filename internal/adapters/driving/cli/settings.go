package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/valuesort/internal/core/domain"
	"github.com/custodia-labs/valuesort/internal/core/ports/driving"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the settings stored in the config file.

Keys:
  board.seed    shuffle seed; 0 deals a different board every run
  catalog.path  TOML values file; empty uses the built-in values
  export.dir    directory that receives dated export files`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func settingsService() (driving.SettingsService, error) {
	s, err := loadServices()
	if err != nil {
		return nil, err
	}
	if s.Settings == nil {
		return nil, errors.New("settings service not configured")
	}
	return s.Settings, nil
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Board]")
	if settings.Board.Seed == 0 {
		cmd.Println("  Seed: 0 (random)")
	} else {
		cmd.Printf("  Seed: %d\n", settings.Board.Seed)
	}
	cmd.Println()

	cmd.Println("[Catalog]")
	if settings.Catalog.IsBuiltin() {
		cmd.Println("  Path: (built-in values)")
	} else {
		cmd.Printf("  Path: %s\n", settings.Catalog.Path)
	}
	cmd.Println()

	cmd.Println("[Export]")
	cmd.Printf("  Dir: %s\n", settings.Export.Dir)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	if err := svc.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrInvalidSetting) {
			cmd.PrintErrf("Valid keys: %s\n", strings.Join(svc.Keys(), ", "))
		}
		return err
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}
