// Package help provides the keybindings overlay for the TUI.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/valuesort/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/valuesort/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/valuesort/internal/adapters/driving/tui/styles"
)

// View lists every keybinding.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model
}

// NewView creates a new help view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	h := help.New()
	h.ShowAll = true
	return &View{
		styles: s,
		keymap: km,
		help:   h,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keymap.Back), key.Matches(msg, v.keymap.Help):
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewBoard} }
		case key.Matches(msg, v.keymap.Quit):
			return v, func() tea.Msg { return messages.Quit{} }
		}
	}
	return v, nil
}

// View renders the keybindings.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Keys"))
	b.WriteString("\n\n")
	b.WriteString(v.help.View(v.keymap))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("Drag a card with the mouse to drop it into another lane.  [esc] back"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, _ int) {
	v.help.Width = width
}
