package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/valuesort/internal/core/domain"
	"github.com/custodia-labs/valuesort/internal/core/ports/driving"
)

var (
	reportSave  bool
	convertSave bool
)

var reportCmd = &cobra.Command{
	Use:   "report FILE",
	Short: "Print a saved board as report text",
	Long: `Loads a board CSV and prints every lane as a numbered list.

Rows are read by column name (lane, rank, name, description) and sorted
by rank within each lane. Rows naming an unknown lane are reported and
left out.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

var convertCmd = &cobra.Command{
	Use:   "convert FILE",
	Short: "Rewrite a saved board as canonical CSV",
	Long: `Loads a board CSV and prints it back in canonical form: lanes in
catalog order, ranks renumbered from 1 and every field quoted.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	reportCmd.Flags().BoolVar(&reportSave, "save", false, "also write a dated report file to the export directory")
	convertCmd.Flags().BoolVar(&convertSave, "save", false, "also write a dated CSV file to the export directory")
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(convertCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	return renderFile(cmd, args[0], domain.SnapshotText, reportSave)
}

func runConvert(cmd *cobra.Command, args []string) error {
	return renderFile(cmd, args[0], domain.SnapshotCSV, convertSave)
}

func renderFile(cmd *cobra.Command, path string, format domain.SnapshotFormat, save bool) error {
	s, err := loadServices()
	if err != nil {
		return err
	}
	_, snapshot, err := s.OpenBoard()
	if err != nil {
		return err
	}
	if _, err := importFile(cmd, snapshot, path); err != nil {
		return err
	}

	text, err := snapshot.Render(format)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if strings.HasSuffix(text, "\n") {
		_, err = fmt.Fprint(out, text)
	} else {
		_, err = fmt.Fprintln(out, text)
	}
	if err != nil {
		return err
	}

	if save {
		written, err := snapshot.Export(format)
		if err != nil {
			return err
		}
		cmd.PrintErrf("Saved %s\n", written)
	}
	return nil
}

// importFile replaces the board with the CSV at path and warns about rows
// in unknown lanes.
func importFile(cmd *cobra.Command, snapshot driving.SnapshotService, path string) (*domain.ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open board: %w", err)
	}
	defer f.Close()

	result, err := snapshot.Import(f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	if result.Skipped > 0 {
		cmd.PrintErrf("Warning: skipped %d cards in unknown lanes: %s\n",
			result.Skipped, strings.Join(result.UnknownLanes, ", "))
	}
	return result, nil
}
