// Package board provides the lane board view for the TUI.
//
// The view draws one column per lane and translates keys and mouse
// gestures into board operations. Actions that leave the board (preview,
// help, export, import, quit) are emitted as messages for the app.
package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/custodia-labs/valuesort/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/valuesort/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/valuesort/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/valuesort/internal/core/domain"
	"github.com/custodia-labs/valuesort/internal/core/ports/driving"
)

// Screen geometry, in rows from the top of the view.
const (
	titleRows      = 2
	laneHeaderRows = 2
	detailRows     = 3
	minColumnWidth = 12
)

// View is the lane board view.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	board  driving.BoardService

	// offsets holds the first visible card index per lane.
	offsets [domain.NumLanes]int

	// dragging is the name of the card held by the mouse, if any.
	dragging string

	width  int
	height int
}

// NewView creates a new board view.
func NewView(s *styles.Styles, km *keymap.KeyMap, board driving.BoardService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles: s,
		keymap: km,
		board:  board,
		width:  80,
		height: 24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the board view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
	case tea.KeyMsg:
		cmd = v.handleKeyMsg(msg)
	case tea.MouseMsg:
		v.handleMouseMsg(msg)
	}

	v.ensureVisible()
	return v, cmd
}

//nolint:gocyclo // one case per binding
func (v *View) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	km := v.keymap

	switch {
	case key.Matches(msg, km.Up):
		v.board.MoveCursor(-1)
	case key.Matches(msg, km.Down):
		v.board.MoveCursor(1)
	case key.Matches(msg, km.ReorderUp):
		v.board.Reorder(-1)
	case key.Matches(msg, km.ReorderDown):
		v.board.Reorder(1)
	case key.Matches(msg, km.Top):
		v.board.SendToTop()
	case key.Matches(msg, km.Bottom):
		v.board.SendToBottom()
	case key.Matches(msg, km.Left):
		v.board.NeighborStay(-1)
	case key.Matches(msg, km.Right):
		v.board.NeighborStay(1)
	case key.Matches(msg, km.FollowLeft):
		v.board.NeighborFollow(-1)
	case key.Matches(msg, km.FollowRight):
		v.board.NeighborFollow(1)
	case key.Matches(msg, km.Shuffle):
		v.board.ShuffleInbox()
		v.offsets[domain.InboxLane] = 0
	case key.Matches(msg, km.Reset):
		v.board.Reset()
		v.offsets = [domain.NumLanes]int{}
		return emit(messages.BoardReset{})
	case key.Matches(msg, km.Preview):
		return emit(messages.ViewChanged{View: messages.ViewPreview})
	case key.Matches(msg, km.Help):
		return emit(messages.ViewChanged{View: messages.ViewHelp})
	case key.Matches(msg, km.ExportCSV):
		return emit(messages.ExportRequested{Format: domain.SnapshotCSV})
	case key.Matches(msg, km.ExportText):
		return emit(messages.ExportRequested{Format: domain.SnapshotText})
	case key.Matches(msg, km.Reimport):
		return emit(messages.ImportRequested{})
	case key.Matches(msg, km.Quit):
		return emit(messages.Quit{})
	default:
		if lane, ok := keymap.LaneFor(&km.Classify, msg.String()); ok {
			v.board.Classify(lane)
		} else if lane, ok := keymap.LaneFor(&km.Jump, msg.String()); ok {
			v.board.JumpFocus(lane)
		}
	}
	return nil
}

func (v *View) handleMouseMsg(msg tea.MouseMsg) {
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		lane, idx, ok := v.cardAt(msg.X, msg.Y)
		if !ok {
			return
		}
		name := v.board.Lane(lane)[idx].Name
		v.board.FocusCard(name)
		v.dragging = name

	case msg.Action == tea.MouseActionRelease:
		if v.dragging == "" {
			return
		}
		if lane, ok := v.laneAt(msg.X, msg.Y); ok {
			v.board.DropCard(v.dragging, lane)
		}
		v.dragging = ""

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelUp:
		v.board.MoveCursor(-1)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelDown:
		v.board.MoveCursor(1)
	}
}

// laneAt maps a screen cell to the lane column under it.
func (v *View) laneAt(x, y int) (domain.LaneID, bool) {
	if x < 0 || y < titleRows || y >= titleRows+laneHeaderRows+v.visibleRows() {
		return 0, false
	}
	lane := domain.LaneID(x / v.columnWidth())
	if !lane.IsValid() {
		return 0, false
	}
	return lane, true
}

// cardAt maps a screen cell to the card drawn there.
func (v *View) cardAt(x, y int) (domain.LaneID, int, bool) {
	lane, ok := v.laneAt(x, y)
	if !ok {
		return 0, 0, false
	}
	row := y - titleRows - laneHeaderRows
	if row < 0 {
		return 0, 0, false
	}
	idx := v.offsets[lane] + row
	if idx >= len(v.board.Lane(lane)) {
		return 0, 0, false
	}
	return lane, idx, true
}

// ensureVisible scrolls the cursor's lane so the selected card is drawn
// and clamps every other lane to its length.
func (v *View) ensureVisible() {
	rows := v.visibleRows()
	sel := v.board.Selection()

	for _, id := range domain.LaneOrder() {
		off := &v.offsets[id]
		if id == sel.Lane {
			if sel.Index < *off {
				*off = sel.Index
			}
			if sel.Index >= *off+rows {
				*off = sel.Index - rows + 1
			}
		}
		if maxOff := len(v.board.Lane(id)) - rows; *off > maxOff {
			*off = max(maxOff, 0)
		}
	}
}

func (v *View) visibleRows() int {
	return max(v.height-titleRows-laneHeaderRows-detailRows, 1)
}

func (v *View) columnWidth() int {
	return max(v.width/domain.NumLanes, minColumnWidth)
}

// View renders the board.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.renderTitle())
	b.WriteString("\n\n")

	columns := make([]string, 0, domain.NumLanes)
	for _, id := range domain.LaneOrder() {
		columns = append(columns, v.renderLane(id))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	b.WriteString("\n")
	b.WriteString(v.renderDetail())

	return b.String()
}

func (v *View) renderTitle() string {
	inbox := len(v.board.Lane(domain.InboxLane))
	title := v.styles.Title.Render("Values")
	hint := v.styles.Muted.Render(fmt.Sprintf("  %d left to sort · drag cards or press ? for keys", inbox))
	return title + hint
}

func (v *View) renderLane(id domain.LaneID) string {
	width := v.columnWidth()
	cards := v.board.Lane(id)
	sel := v.board.Selection()

	header := v.styles.LaneHeader[id]
	if sel.Lane == id {
		header = v.styles.FocusedHeader[id]
	}

	lines := make([]string, 0, laneHeaderRows+v.visibleRows())
	lines = append(lines,
		header.Render(ansi.Truncate(fmt.Sprintf("%s (%d)", id.Title(), len(cards)), width-1, "…")),
		v.styles.Muted.Render(strings.Repeat("─", width-1)),
	)

	end := min(v.offsets[id]+v.visibleRows(), len(cards))
	for i := v.offsets[id]; i < end; i++ {
		name := ansi.Truncate(cards[i].Name, width-2, "…")
		switch {
		case cards[i].Name == v.dragging:
			lines = append(lines, v.styles.Dragging.Render(name))
		case sel.Lane == id && sel.Index == i:
			lines = append(lines, v.styles.Selected.Render(name))
		default:
			lines = append(lines, v.styles.Normal.Render(name))
		}
	}

	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

func (v *View) renderDetail() string {
	card, ok := v.board.Current()
	if !ok {
		return v.styles.Muted.Render("No cards on the board. Press R to deal a fresh one.")
	}

	lane := v.board.Selection().Lane
	head := v.styles.Title.Render(card.Name) + v.styles.Muted.Render("  in "+lane.Title())
	desc := lipgloss.NewStyle().Width(max(v.width-2, minColumnWidth)).Render(v.styles.Normal.Render(card.Desc))
	return head + "\n" + desc
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ensureVisible()
}

// Dragging returns the name of the card held by the mouse.
func (v *View) Dragging() string {
	return v.dragging
}

// Offset returns the first visible card index of a lane.
func (v *View) Offset(id domain.LaneID) int {
	if !id.IsValid() {
		return 0
	}
	return v.offsets[id]
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
