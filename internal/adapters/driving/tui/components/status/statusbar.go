// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/valuesort/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/valuesort/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateReady   State = "ready"
	StateInfo    State = "info"
	StateWarning State = "warning"
	StateError   State = "error"
	StatePreview State = "preview"
	StateHelp    State = "help"
)

// Bar displays sorting progress, the last event and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	sorted  int
	total   int
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	progress := s.styles.Normal.Render(fmt.Sprintf("%d/%d sorted", s.sorted, s.total))

	var event string
	switch s.state {
	case StateError:
		if s.message != "" {
			event = s.styles.Error.Render("Error: " + s.message)
		} else {
			event = s.styles.Error.Render("Error")
		}
	case StateWarning:
		event = s.styles.Warning.Render(s.message)
	case StateInfo:
		event = s.styles.Success.Render(s.message)
	case StatePreview:
		event = s.styles.Normal.Render("Preview")
	case StateHelp:
		event = s.styles.Normal.Render("Help")
	case StateReady:
		event = s.styles.Muted.Render("Ready")
	}

	if event == "" {
		return progress
	}
	return progress + s.styles.Muted.Render(" · ") + event
}

func (s *Bar) renderRight() string {
	var bindings []key.Binding
	switch s.state {
	case StatePreview:
		bindings = []key.Binding{s.keymap.PreviewFormat, s.keymap.Back}
	case StateHelp:
		bindings = []key.Binding{s.keymap.Back}
	default:
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets the event message shown next to the progress.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// Notify sets state and message together.
func (s *Bar) Notify(state State, message string) {
	s.state = state
	s.message = message
}

// SetProgress sets how many of total cards have left the inbox.
func (s *Bar) SetProgress(sorted, total int) {
	s.sorted = sorted
	s.total = total
}

// Progress returns the sorted and total card counts.
func (s *Bar) Progress() (sorted, total int) {
	return s.sorted, s.total
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to its ready state. Progress is kept.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
}
