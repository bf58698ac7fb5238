package preview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/valuesort/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/valuesort/internal/core/domain"
	"github.com/custodia-labs/valuesort/internal/core/services"
)

func newTestView(t *testing.T, cards ...domain.Card) (*View, *services.BoardService) {
	t.Helper()
	board := services.NewBoardService(nil, services.WithSeed(1))
	board.Replace(map[domain.LaneID][]domain.Card{domain.LaneCore: cards})
	snapshot := services.NewSnapshotService(board, nil)

	v := NewView(nil, nil, snapshot)
	v.SetDimensions(100, 30)
	return v, board
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewView_StartsWithReport(t *testing.T) {
	v, _ := newTestView(t)

	require.NotNil(t, v)
	assert.Equal(t, domain.SnapshotText, v.Format())
	assert.Nil(t, v.Init())
	assert.Empty(t, v.Content(), "nothing is rendered until opened")
}

func TestOpen_RendersCurrentBoard(t *testing.T) {
	v, _ := newTestView(t, domain.Card{Name: "Honesty", Desc: "to be truthful"})

	v.Open()

	assert.Contains(t, v.Content(), "CORE\n1. Honesty — to be truthful")
	assert.NoError(t, v.Err())
	out := v.View()
	assert.Contains(t, out, "Export preview")
	assert.Contains(t, out, "Report")
	assert.Contains(t, out, "Honesty")
}

func TestOpen_PicksUpBoardChanges(t *testing.T) {
	v, board := newTestView(t, domain.Card{Name: "Honesty"})
	v.Open()

	board.Replace(map[domain.LaneID][]domain.Card{domain.LaneNot: {{Name: "Fame"}}})
	v.Open()

	assert.Contains(t, v.Content(), "NOT ME\n1. Fame")
	assert.NotContains(t, v.Content(), "Honesty")
}

func TestUpdate_TabTogglesFormat(t *testing.T) {
	v, _ := newTestView(t, domain.Card{Name: "Honesty", Desc: "to be truthful"})
	v.Open()

	v.Update(tea.KeyMsg{Type: tea.KeyTab})

	assert.Equal(t, domain.SnapshotCSV, v.Format())
	assert.True(t, strings.HasPrefix(v.Content(), "lane,rank,name,description\n"))
	assert.Contains(t, v.Content(), `"core","1","Honesty","to be truthful"`)
	assert.Contains(t, v.View(), "CSV")

	v.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, domain.SnapshotText, v.Format())
}

func TestUpdate_EmittedMessages(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want tea.Msg
	}{
		{"esc closes", tea.KeyMsg{Type: tea.KeyEsc}, messages.ViewChanged{View: messages.ViewBoard}},
		{"e closes", keyPress("e"), messages.ViewChanged{View: messages.ViewBoard}},
		{"s saves csv", keyPress("s"), messages.ExportRequested{Format: domain.SnapshotCSV}},
		{"t saves text", keyPress("t"), messages.ExportRequested{Format: domain.SnapshotText}},
		{"q quits", keyPress("q"), messages.Quit{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := newTestView(t)
			v.Open()

			_, cmd := v.Update(tt.msg)
			require.NotNil(t, cmd)
			assert.Equal(t, tt.want, cmd())
		})
	}
}

func TestUpdate_ScrollKeysGoToViewport(t *testing.T) {
	cards := make([]domain.Card, 0, 60)
	for i := range 60 {
		cards = append(cards, domain.Card{Name: strings.Repeat("v", i+1)})
	}
	v, _ := newTestView(t, cards...)
	v.Open()
	require.Equal(t, 0, v.viewport.YOffset)

	v.Update(keyPress("j"))

	assert.Equal(t, 1, v.viewport.YOffset)
}

func TestSetDimensions_ResizesViewport(t *testing.T) {
	v, _ := newTestView(t)

	v.Update(tea.WindowSizeMsg{Width: 60, Height: 20})

	assert.Equal(t, 60, v.viewport.Width)
	assert.Equal(t, 20-chromeRows, v.viewport.Height)
}
