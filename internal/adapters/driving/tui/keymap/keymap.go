// Package keymap defines keybindings for the TUI.
package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/custodia-labs/valuesort/internal/core/domain"
)

// KeyMap defines all keybindings for the board.
type KeyMap struct {
	// Up and Down move the cursor within the focused lane.
	Up   key.Binding
	Down key.Binding

	// ReorderUp and ReorderDown swap the selected card with its neighbour.
	ReorderUp   key.Binding
	ReorderDown key.Binding

	// Top and Bottom send the selected card to either end of its lane.
	Top    key.Binding
	Bottom key.Binding

	// Classify sends the selected card to a lane without following it,
	// indexed by lane.
	Classify [domain.NumLanes]key.Binding

	// Jump moves the cursor to the top of a lane, indexed by lane.
	Jump [domain.NumLanes]key.Binding

	// Left and Right send the selected card to the adjacent lane.
	Left  key.Binding
	Right key.Binding

	// FollowLeft and FollowRight send the card and move the cursor with it.
	FollowLeft  key.Binding
	FollowRight key.Binding

	// Shuffle permutes the inbox.
	Shuffle key.Binding

	// Preview toggles the export preview.
	Preview key.Binding

	// PreviewFormat switches the preview between report and CSV.
	PreviewFormat key.Binding

	// ExportCSV and ExportText write a dated snapshot file.
	ExportCSV  key.Binding
	ExportText key.Binding

	// Reset deals a fresh board.
	Reset key.Binding

	// Reimport reloads the imported CSV file.
	Reimport key.Binding

	// Help toggles the help view.
	Help key.Binding

	// Back closes an overlay.
	Back key.Binding

	// Quit exits the application.
	Quit key.Binding
}

// Letters used for lane bindings, indexed by lane. Uppercase jumps.
var laneKeys = [domain.NumLanes]string{"u", "c", "i", "n", "x"}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	km := &KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		ReorderUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "move card up"),
		),
		ReorderDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "move card down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "send to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "send to bottom"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "send left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "send right"),
		),
		FollowLeft: key.NewBinding(
			key.WithKeys("H", "shift+left"),
			key.WithHelp("H", "carry left"),
		),
		FollowRight: key.NewBinding(
			key.WithKeys("L", "shift+right"),
			key.WithHelp("L", "carry right"),
		),
		Shuffle: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "shuffle inbox"),
		),
		Preview: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "preview"),
		),
		PreviewFormat: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "report/csv"),
		),
		ExportCSV: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save csv"),
		),
		ExportText: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "save txt"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset board"),
		),
		Reimport: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "re-import"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}

	for _, id := range domain.LaneOrder() {
		lower := laneKeys[id]
		upper := strings.ToUpper(lower)
		km.Classify[id] = key.NewBinding(
			key.WithKeys(lower),
			key.WithHelp(lower, "to "+id.Title()),
		)
		km.Jump[id] = key.NewBinding(
			key.WithKeys(upper),
			key.WithHelp(upper, "go to "+id.Title()),
		)
	}

	return km
}

// ShortHelp returns the bindings shown in the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Preview, k.ExportCSV, k.Help, k.Quit}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.ReorderUp, k.ReorderDown, k.Top, k.Bottom},
		k.Classify[:],
		k.Jump[:],
		{k.Left, k.Right, k.FollowLeft, k.FollowRight, k.Shuffle},
		{k.Preview, k.PreviewFormat, k.ExportCSV, k.ExportText, k.Reimport, k.Reset},
		{k.Help, k.Back, k.Quit},
	}
}

// LaneFor reports which lane a per-lane binding set maps keyStr to.
func LaneFor(bindings *[domain.NumLanes]key.Binding, keyStr string) (domain.LaneID, bool) {
	for _, id := range domain.LaneOrder() {
		if Matches(keyStr, bindings[id]) {
			return id, true
		}
	}
	return 0, false
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
