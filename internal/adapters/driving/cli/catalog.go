package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the values that are dealt onto the board",
	Long: `Lists every value in the catalog with its description.

The catalog is built in unless catalog.path points at a TOML file of
[[values]] entries with name and desc keys.`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	s, err := loadServices()
	if err != nil {
		return err
	}
	if s.Catalog == nil {
		return errors.New("catalog not configured")
	}

	values, err := s.Catalog.Values()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("VALUE", "DESCRIPTION")
	for _, v := range values {
		t.Row(v.Name, v.Desc)
	}

	cmd.Printf("Catalog: %s (%d values)\n", s.Catalog.Origin(), len(values))
	cmd.Println(t.Render())
	return nil
}
