package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/valuesort/internal/adapters/driving/tui"
	"github.com/custodia-labs/valuesort/internal/logger"
)

// tuiLogFile receives log output while the TUI owns the terminal.
const tuiLogFile = "tui.log"

// ErrNotTerminal is returned when the TUI is started without a terminal.
var ErrNotTerminal = errors.New("tui needs an interactive terminal")

var (
	tuiImport string
	tuiWatch  bool
)

// isTerminal reports whether stdin is attached to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive sorting board",
	Long: `Launch the interactive board.

Every value starts in the Unsorted lane. Send cards to a lane with a key
or drag them there with the mouse.

Controls:
  j/k        move cursor         J/K   move card up/down
  c/i/n/x/u  send to lane        C/I/N/X/U  jump to lane
  h/l        send left/right     H/L   carry left/right
  r          shuffle inbox       R     reset board
  e          preview export      s/t   save csv/txt
  o          re-import file      ?     help
  q          quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVarP(&tuiImport, "import", "i", "", "start from a saved board CSV")
	tuiCmd.Flags().BoolVarP(&tuiWatch, "watch", "w", false, "re-import the file whenever it changes")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if !isTerminal() {
		return ErrNotTerminal
	}
	if tuiWatch && tuiImport == "" {
		return errors.New("--watch needs --import FILE")
	}

	s, err := loadServices()
	if err != nil {
		return err
	}
	board, snapshot, err := s.OpenBoard()
	if err != nil {
		return err
	}
	if tuiImport != "" {
		if _, err := importFile(cmd, snapshot, tuiImport); err != nil {
			return err
		}
	}

	app, err := tui.NewApp(&tui.Ports{
		Board:    board,
		Snapshot: snapshot,
		Watcher:  s.Watcher,
	}, tui.Options{
		ImportPath: tuiImport,
		Watch:      tuiWatch,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	restore, err := redirectLogs(s.LogDir)
	if err != nil {
		return err
	}
	defer restore()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	app.WithContext(ctx)

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// redirectLogs keeps log lines off the alternate screen. In verbose mode
// they are appended to a file in dir; otherwise they are dropped.
func redirectLogs(dir string) (func(), error) {
	if !logger.IsVerbose() || dir == "" {
		prev := logger.SetOutput(io.Discard)
		return func() { logger.SetOutput(prev) }, nil
	}

	f, err := os.OpenFile(filepath.Join(dir, tuiLogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	prev := logger.SetOutput(f)
	return func() {
		logger.SetOutput(prev)
		_ = f.Close()
	}, nil
}
