// Package preview provides the export preview view for the TUI.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/valuesort/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/valuesort/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/valuesort/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/valuesort/internal/core/domain"
	"github.com/custodia-labs/valuesort/internal/core/ports/driving"
)

// Rows used by the title and footer around the viewport.
const chromeRows = 4

// View shows the board as it would be exported.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	snapshot driving.SnapshotService

	viewport viewport.Model
	format   domain.SnapshotFormat
	content  string
	err      error
	width    int
	height   int
}

// NewView creates a new preview view.
func NewView(s *styles.Styles, km *keymap.KeyMap, snapshot driving.SnapshotService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:   s,
		keymap:   km,
		snapshot: snapshot,
		viewport: viewport.New(80, 24-chromeRows),
		format:   domain.SnapshotText,
		width:    80,
		height:   24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Open renders the current board and scrolls to the top.
func (v *View) Open() {
	v.refresh()
	v.viewport.GotoTop()
}

func (v *View) refresh() {
	content, err := v.snapshot.Render(v.format)
	v.err = err
	v.content = content
	v.viewport.SetContent(content)
}

// Update handles messages for the preview view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keymap.Back), key.Matches(msg, v.keymap.Preview):
			return v, emit(messages.ViewChanged{View: messages.ViewBoard})
		case key.Matches(msg, v.keymap.PreviewFormat):
			v.toggleFormat()
			return v, nil
		case key.Matches(msg, v.keymap.ExportCSV):
			return v, emit(messages.ExportRequested{Format: domain.SnapshotCSV})
		case key.Matches(msg, v.keymap.ExportText):
			return v, emit(messages.ExportRequested{Format: domain.SnapshotText})
		case key.Matches(msg, v.keymap.Quit):
			return v, emit(messages.Quit{})
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

func (v *View) toggleFormat() {
	if v.format == domain.SnapshotText {
		v.format = domain.SnapshotCSV
	} else {
		v.format = domain.SnapshotText
	}
	v.refresh()
	v.viewport.GotoTop()
}

// View renders the preview.
func (v *View) View() string {
	var b strings.Builder

	label := "Report"
	if v.format == domain.SnapshotCSV {
		label = "CSV"
	}
	b.WriteString(v.styles.Title.Render("Export preview"))
	b.WriteString(v.styles.Muted.Render(" · " + label))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err)))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(v.viewport.View())
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render(fmt.Sprintf(
		"[%3.f%%]  [tab] report/csv  [s/t] save  [esc] back",
		v.viewport.ScrollPercent()*100,
	)))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = width
	v.viewport.Height = max(height-chromeRows, 1)
}

// Format returns the format being previewed.
func (v *View) Format() domain.SnapshotFormat {
	return v.format
}

// Content returns the previewed text.
func (v *View) Content() string {
	return v.content
}

// Err returns the last render error.
func (v *View) Err() error {
	return v.err
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
