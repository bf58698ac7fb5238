// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/valuesort/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewBoard is the lane board.
	ViewBoard ViewType = iota
	// ViewPreview shows the export text.
	ViewPreview
	// ViewHelp is the keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewBoard:
		return "board"
	case ViewPreview:
		return "preview"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ExportRequested asks the app to write a snapshot file.
type ExportRequested struct {
	Format domain.SnapshotFormat
}

// Exported signals a snapshot file was written.
type Exported struct {
	Path   string
	Format domain.SnapshotFormat
	Err    error
}

// ImportRequested asks the app to reload the imported file.
type ImportRequested struct{}

// FileLoaded carries the raw contents of the imported file.
type FileLoaded struct {
	Path string
	Data []byte
	Err  error
}

// WatchStarted carries the change channel of a running file watch.
type WatchStarted struct {
	Changes <-chan struct{}
	Err     error
}

// FileChanged signals the watched file changed on disk.
type FileChanged struct{}

// BoardReset signals a fresh board was dealt.
type BoardReset struct{}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
