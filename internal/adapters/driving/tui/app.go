package tui

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/valuesort/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/valuesort/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/valuesort/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/valuesort/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/valuesort/internal/adapters/driving/tui/views/board"
	"github.com/custodia-labs/valuesort/internal/adapters/driving/tui/views/help"
	"github.com/custodia-labs/valuesort/internal/adapters/driving/tui/views/preview"
	"github.com/custodia-labs/valuesort/internal/core/domain"
	"github.com/custodia-labs/valuesort/internal/logger"
)

// statusRows is the height reserved below every view for the status bar.
const statusRows = 1

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
//
// Board operations and snapshot imports run on the update loop only.
// Commands do file I/O and hand the bytes back as messages.
type App struct {
	ports *Ports
	opts  Options
	ctx   context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	boardView   *board.View
	previewView *preview.View
	helpView    *help.View
	statusBar   *status.Bar

	currentView messages.ViewType

	// changes is the running watch channel, nil when not watching.
	changes <-chan struct{}

	err    error
	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports, opts Options) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if err := opts.Validate(ports); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:       ports,
		opts:        opts,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		boardView:   board.NewView(s, km, ports.Board),
		previewView: preview.NewView(s, km, ports.Snapshot),
		helpView:    help.NewView(s, km),
		statusBar:   status.NewBar(s, km),
		currentView: messages.ViewBoard,
	}
	a.updateProgress()
	return a, nil
}

// WithContext sets the context for the app. The file watch ends with it.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle("valuesort")}
	if a.opts.Watch {
		cmds = append(cmds, a.startWatch())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		cmd = a.updateCurrentView(msg)

	case tea.MouseMsg:
		if a.currentView == messages.ViewBoard {
			a.boardView, cmd = a.boardView.Update(msg)
		}

	case messages.ViewChanged:
		a.switchView(msg.View)

	case messages.ExportRequested:
		a.export(msg.Format)

	case messages.ImportRequested:
		if a.opts.ImportPath == "" {
			a.statusBar.Notify(status.StateWarning, "Nothing to re-import; start with --import FILE")
			return a, nil
		}
		cmd = a.loadFile()

	case messages.FileLoaded:
		a.applyFile(msg)

	case messages.WatchStarted:
		if msg.Err != nil {
			a.fail(fmt.Errorf("watch %s: %w", a.opts.ImportPath, msg.Err))
			return a, nil
		}
		a.changes = msg.Changes
		logger.Debug("watching %s", a.opts.ImportPath)
		cmd = waitForChange(a.changes)

	case messages.FileChanged:
		cmd = tea.Batch(a.loadFile(), waitForChange(a.changes))

	case messages.BoardReset:
		a.statusBar.Notify(status.StateInfo, "Dealt a fresh board")

	case messages.ErrorOccurred:
		a.fail(msg.Err)

	case messages.Quit:
		return a, tea.Quit
	}

	a.updateProgress()
	return a, cmd
}

func (a *App) updateCurrentView(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewBoard:
		a.boardView, cmd = a.boardView.Update(msg)
	case messages.ViewPreview:
		a.previewView, cmd = a.previewView.Update(msg)
	case messages.ViewHelp:
		a.helpView, cmd = a.helpView.Update(msg)
	}
	return cmd
}

func (a *App) switchView(view messages.ViewType) {
	a.currentView = view
	switch view {
	case messages.ViewPreview:
		a.previewView.Open()
		a.statusBar.Notify(status.StatePreview, "")
	case messages.ViewHelp:
		a.statusBar.Notify(status.StateHelp, "")
	case messages.ViewBoard:
		a.statusBar.Clear()
	}
}

// export runs inline so the board is never read off the update loop.
func (a *App) export(format domain.SnapshotFormat) {
	path, err := a.ports.Snapshot.Export(format)
	if err != nil {
		a.fail(err)
		return
	}
	a.statusBar.Notify(status.StateInfo, "Saved "+path)
}

// loadFile reads the import file off the update loop.
func (a *App) loadFile() tea.Cmd {
	path := a.opts.ImportPath
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		return messages.FileLoaded{Path: path, Data: data, Err: err}
	}
}

func (a *App) applyFile(msg messages.FileLoaded) {
	if msg.Err != nil {
		a.fail(msg.Err)
		return
	}

	result, err := a.ports.Snapshot.Import(bytes.NewReader(msg.Data))
	if err != nil {
		a.fail(fmt.Errorf("import %s: %w", msg.Path, err))
		return
	}

	if a.currentView == messages.ViewPreview {
		a.previewView.Open()
	}
	state, text := importSummary(filepath.Base(msg.Path), result)
	a.statusBar.Notify(state, text)
}

func importSummary(name string, result *domain.ImportResult) (status.State, string) {
	text := fmt.Sprintf("Imported %d cards from %s", result.Cards, name)
	if result.Skipped == 0 {
		return status.StateInfo, text
	}
	return status.StateWarning, fmt.Sprintf("%s; skipped %d in unknown lanes: %s",
		text, result.Skipped, strings.Join(result.UnknownLanes, ", "))
}

func (a *App) startWatch() tea.Cmd {
	watcher, ctx, path := a.ports.Watcher, a.ctx, a.opts.ImportPath
	return func() tea.Msg {
		changes, err := watcher.Watch(ctx, path)
		return messages.WatchStarted{Changes: changes, Err: err}
	}
}

// waitForChange blocks until the watch channel fires. A closed channel
// ends the loop.
func waitForChange(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return messages.FileChanged{}
	}
}

func (a *App) fail(err error) {
	a.err = err
	a.statusBar.Notify(status.StateError, err.Error())
	logger.Warn("%v", err)
}

func (a *App) updateProgress() {
	b := a.ports.Board.Board()
	a.statusBar.SetProgress(b.Total()-b.Len(domain.InboxLane), b.Total())
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewPreview:
		body = a.previewView.View()
	case messages.ViewHelp:
		body = a.helpView.View()
	default:
		body = a.boardView.View()
	}
	return body + "\n" + a.statusBar.View()
}

// Run starts the TUI application with mouse support on the alternate screen.
func (a *App) Run() error {
	p := tea.NewProgram(a,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(a.ctx),
	)
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// Status returns the status bar, for inspection.
func (a *App) Status() *status.Bar {
	return a.statusBar
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	body := max(height-statusRows, 1)
	a.boardView.SetDimensions(width, body)
	a.previewView.SetDimensions(width, body)
	a.helpView.SetDimensions(width, body)
	a.statusBar.SetWidth(width)
}
