package services

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/valuesort/internal/core/domain"
)

func testCards(names ...string) []domain.Card {
	out := make([]domain.Card, 0, len(names))
	for _, n := range names {
		out = append(out, domain.Card{Name: n, Desc: n + " desc"})
	}
	return out
}

func laneNames(cards []domain.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Name)
	}
	return out
}

// newTestBoard returns a board holding exactly lanes, with the cursor reset.
func newTestBoard(t *testing.T, lanes map[domain.LaneID][]string) *BoardService {
	t.Helper()
	s := NewBoardService(nil, WithSeed(1))
	replace := make(map[domain.LaneID][]domain.Card, len(lanes))
	for id, names := range lanes {
		replace[id] = testCards(names...)
	}
	s.Replace(replace)
	return s
}

func sortedNames(b domain.Board) []string {
	var out []string
	for _, lane := range b {
		out = append(out, laneNames(lane)...)
	}
	sort.Strings(out)
	return out
}

func assertSelectionValid(t *testing.T, s *BoardService) {
	t.Helper()
	b := s.Board()
	sel := s.Selection()
	if n := b.Len(sel.Lane); n > 0 {
		assert.GreaterOrEqual(t, sel.Index, 0)
		assert.Less(t, sel.Index, n)
		return
	}
	assert.Equal(t, 0, b.Total(), "selection points at empty lane on non-empty board")
	assert.Equal(t, 0, sel.Index)
}

func TestNewBoardService_SeedsInbox(t *testing.T) {
	catalog := testCards("A", "B", "C", "D", "E")

	s := NewBoardService(catalog, WithSeed(42))

	b := s.Board()
	assert.Len(t, b[domain.InboxLane], len(catalog))
	for _, id := range domain.LaneOrder()[1:] {
		assert.Empty(t, b[id])
	}
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, sortedNames(b))
	assert.Equal(t, domain.Selection{Lane: domain.InboxLane, Index: 0}, s.Selection())
}

func TestNewBoardService_DoesNotAliasCatalog(t *testing.T) {
	catalog := testCards("A", "B")

	s := NewBoardService(catalog, WithSeed(1))
	catalog[0].Name = "mutated"
	s.Reset()

	assert.ElementsMatch(t, []string{"A", "B"}, laneNames(s.Lane(domain.InboxLane)))
}

func TestBoardService_SeedIsReproducible(t *testing.T) {
	catalog := testCards("A", "B", "C", "D", "E", "F", "G", "H")

	a := NewBoardService(catalog, WithSeed(7))
	b := NewBoardService(catalog, WithSeed(7))

	assert.Equal(t, a.Lane(domain.InboxLane), b.Lane(domain.InboxLane))
}

func TestBoardService_WithRand(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	s := NewBoardService(testCards("A", "B", "C"), WithRand(rng), WithRand(nil))

	assert.Len(t, s.Lane(domain.InboxLane), 3)
}

func TestBoardService_Reset(t *testing.T) {
	s := NewBoardService(testCards("A", "B", "C"), WithSeed(5))
	s.Classify(domain.LaneCore)
	s.Classify(domain.LaneNot)
	require.Len(t, s.Lane(domain.InboxLane), 1)

	s.Reset()

	assert.Len(t, s.Lane(domain.InboxLane), 3)
	assert.Empty(t, s.Lane(domain.LaneCore))
	assert.Empty(t, s.Lane(domain.LaneNot))
	assert.Equal(t, domain.Selection{Lane: domain.InboxLane}, s.Selection())
}

func TestBoardService_Reset_EmptyCatalog(t *testing.T) {
	s := NewBoardService(nil)

	b := s.Board()
	assert.Equal(t, 0, b.Total())
	assert.Equal(t, domain.Selection{Lane: domain.InboxLane}, s.Selection())
	_, ok := s.Current()
	assert.False(t, ok)
}

func TestBoardService_MoveCursor(t *testing.T) {
	s := newTestBoard(t, map[domain.LaneID][]string{domain.LaneUnsorted: {"A", "B", "C"}})

	s.MoveCursor(1)
	assert.Equal(t, 1, s.Selection().Index)
	s.MoveCursor(1)
	s.MoveCursor(1)
	assert.Equal(t, 2, s.Selection().Index, "clamped at last card")
	s.MoveCursor(-1)
	assert.Equal(t, 1, s.Selection().Index)
	s.MoveCursor(-5)
	assert.Equal(t, 0, s.Selection().Index, "clamped at first card")

	assert.Equal(t, []string{"A", "B", "C"}, laneNames(s.Lane(domain.LaneUnsorted)))
}

func TestBoardService_Reorder(t *testing.T) {
	s := newTestBoard(t, map[domain.LaneID][]string{domain.LaneUnsorted: {"A", "B", "C"}})

	s.Reorder(1)
	assert.Equal(t, []string{"B", "A", "C"}, laneNames(s.Lane(domain.LaneUnsorted)))
	assert.Equal(t, 1, s.Selection().Index, "cursor follows the card")

	s.Reorder(1)
	assert.Equal(t, []string{"B", "C", "A"}, laneNames(s.Lane(domain.LaneUnsorted)))
	assert.Equal(t, 2, s.Selection().Index)

	s.Reorder(1)
	assert.Equal(t, []string{"B", "C", "A"}, laneNames(s.Lane(domain.LaneUnsorted)), "no-op at bottom")
	assert.Equal(t, 2, s.Selection().Index)

	s.Reorder(-1)
	assert.Equal(t, []string{"B", "A", "C"}, laneNames(s.Lane(domain.LaneUnsorted)))
	assert.Equal(t, 1, s.Selection().Index)
}

func TestBoardService_Reorder_TopBoundary(t *testing.T) {
	s := newTestBoard(t, map[domain.LaneID][]string{domain.LaneUnsorted: {"A", "B"}})

	s.Reorder(-1)

	assert.Equal(t, []string{"A", "B"}, laneNames(s.Lane(domain.LaneUnsorted)))
	assert.Equal(t, 0, s.Selection().Index)
}

func TestBoardService_SendToTop(t *testing.T) {
	s := newTestBoard(t, map[domain.LaneID][]string{domain.LaneUnsorted: {"A", "B", "C"}})
	s.MoveCursor(2)

	s.SendToTop()

	assert.Equal(t, []string{"C", "A", "B"}, laneNames(s.Lane(domain.LaneUnsorted)))
	assert.Equal(t, domain.Selection{Lane: domain.LaneUnsorted, Index: 0}, s.Selection())

	s.SendToTop()
	assert.Equal(t, []string{"C", "A", "B"}, laneNames(s.Lane(domain.LaneUnsorted)), "no-op at top")
}

func TestBoardService_SendToBottom(t *testing.T) {
	s := newTestBoard(t, map[domain.LaneID][]string{domain.LaneUnsorted: {"A", "B", "C"}})

	s.SendToBottom()

	assert.Equal(t, []string{"B", "C", "A"}, laneNames(s.Lane(domain.LaneUnsorted)))
	assert.Equal(t, domain.Selection{Lane: domain.LaneUnsorted, Index: 2}, s.Selection())

	s.SendToBottom()
	assert.Equal(t, []string{"B", "C", "A"}, laneNames(s.Lane(domain.LaneUnsorted)), "no-op at bottom")
}

func TestBoardService_Pluck(t *testing.T) {
	t.Run("keeps index when a card slides in", func(t *testing.T) {
		s := newTestBoard(t, map[domain.LaneID][]string{domain.LaneCore: {"A", "B", "C"}})
		s.MoveCursor(1)

		card, from, ok := s.Pluck()

		require.True(t, ok)
		assert.Equal(t, "B", card.Name)
		assert.Equal(t, "B desc", card.Desc)
		assert.Equal(t, domain.LaneCore, from)
		assert.Equal(t, []string{"A", "C"}, laneNames(s.Lane(domain.LaneCore)))
		assert.Equal(t, domain.Selection{Lane: domain.LaneCore, Index: 1}, s.Selection())
	})

	t.Run("steps back from the end", func(t *testing.T) {
		s := newTestBoard(t, map[domain.LaneID][]string{domain.LaneCore: {"A", "B", "C"}})
		s.MoveCursor(2)

		card, _, ok := s.Pluck()

		require.True(t, ok)
		assert.Equal(t, "C", card.Name)
		assert.Equal(t, domain.Selection{Lane: domain.LaneCore, Index: 1}, s.Selection())
	})

	t.Run("last card falls back to another lane", func(t *testing.T) {
		s := newTestBoard(t, map[domain.LaneID][]string{
			domain.LaneCore: {"A"},
			domain.LaneNot:  {"Z"},
		})

		_, _, ok := s.Pluck()

		require.True(t, ok)
		assert.Equal(t, domain.Selection{Lane: domain.LaneNot, Index: 0}, s.Selection())
	})

	t.Run("nothing to pluck on empty board", func(t *testing.T) {
		s := newTestBoard(t, nil)

		_, _, ok := s.Pluck()

		assert.False(t, ok)
		assert.Equal(t, domain.Selection{Lane: domain.InboxLane}, s.Selection())
	})
}

func TestBoardService_Classify(t *testing.T) {
	s := newTestBoard(t, map[domain.LaneID][]string{
		domain.LaneUnsorted: {"A", "B", "C"},
		domain.LaneCore:     {"X"},
	})

	s.Classify(domain.LaneCore)

	assert.Equal(t, []string{"B", "C"}, laneNames(s.Lane(domain.LaneUnsorted)))
	assert.Equal(t, []string{"X", "A"}, laneNames(s.Lane(domain.LaneCore)))
	assert.Equal(t, domain.Selection{Lane: domain.LaneUnsorted, Index: 0}, s.Selection())
}

func TestBoardService_Classify_SameLaneMovesToEnd(t *testing.T) {
	s := newTestBoard(t, map[domain.LaneID][]string{domain.LaneUnsorted: {"A", "B", "C"}})

	s.Classify(domain.LaneUnsorted)

	assert.Equal(t, []string{"B", "C", "A"}, laneNames(s.Lane(domain.LaneUnsorted)))
	assert.Equal(t, domain.Selection{Lane: domain.LaneUnsorted, Index: 0}, s.Selection())
}

func TestBoardService_Classify_InvalidTarget(t *testing.T) {
	s := newTestBoard(t, map[domain.LaneID][]string{domain.LaneUnsorted: {"A", "B"}})
	before := s.Board()

	s.Classify(domain.LaneID(17))

	assert.Equal(t, before, s.Board())
}

func TestBoardService_JumpFocus(t *testing.T) {
	s := newTestBoard(t, map[domain.LaneID][]string{
		domain.LaneUnsorted: {"A", "B"},
		domain.LaneNice:     {"N1", "N2"},
	})
	s.MoveCursor(1)
	before := s.Board()

	s.JumpFocus(domain.LaneNice)
	assert.Equal(t, domain.Selection{Lane: domain.LaneNice, Index: 0}, s.Selection())

	s.JumpFocus(domain.LaneCore)
	assert.Equal(t, domain.Selection{Lane: domain.LaneNice, Index: 0}, s.Selection(), "empty target is a no-op")

	s.JumpFocus(domain.LaneID(-2))
	assert.Equal(t, domain.Selection{Lane: domain.LaneNice, Index: 0}, s.Selection())

	assert.Equal(t, before, s.Board(), "no card moves")
}

func TestBoardService_NeighborStay(t *testing.T) {
	s := newTestBoard(t, map[domain.LaneID][]string{domain.LaneCore: {"A", "B"}})
	s.JumpFocus(domain.LaneCore)

	s.NeighborStay(1)

	assert.Equal(t, []string{"B"}, laneNames(s.Lane(domain.LaneCore)))
	assert.Equal(t, []string{"A"}, laneNames(s.Lane(domain.LaneImportant)))
	assert.Equal(t, domain.Selection{Lane: domain.LaneCore, Index: 0}, s.Selection())

	s.NeighborStay(-1)

	assert.Empty(t, s.Lane(domain.LaneCore))
	assert.Equal(t, []string{"B"}, laneNames(s.Lane(domain.LaneUnsorted)))
	assert.Equal(t, domain.Selection{Lane: domain.LaneUnsorted, Index: 0}, s.Selection())
}

func TestBoardService_NeighborFollow(t *testing.T) {
	s := newTestBoard(t, map[domain.LaneID][]string{
		domain.LaneCore:      {"A", "B"},
		domain.LaneImportant: {"I"},
	})
	s.JumpFocus(domain.LaneCore)

	s.NeighborFollow(1)

	assert.Equal(t, []string{"B"}, laneNames(s.Lane(domain.LaneCore)))
	assert.Equal(t, []string{"I", "A"}, laneNames(s.Lane(domain.LaneImportant)))
	assert.Equal(t, domain.Selection{Lane: domain.LaneImportant, Index: 1}, s.Selection())
}

func TestBoardService_NeighborBoundaryNoOps(t *testing.T) {
	tests := []struct {
		name   string
		lane   domain.LaneID
		offset int
		follow bool
	}{
		{"first lane stay left", domain.LaneUnsorted, -1, false},
		{"first lane follow left", domain.LaneUnsorted, -1, true},
		{"last lane stay right", domain.LaneNot, 1, false},
		{"last lane follow right", domain.LaneNot, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestBoard(t, map[domain.LaneID][]string{
				domain.LaneUnsorted: {"A", "B"},
				domain.LaneNot:      {"Y", "Z"},
			})
			s.JumpFocus(tt.lane)
			before := s.Board()
			sel := s.Selection()

			if tt.follow {
				s.NeighborFollow(tt.offset)
			} else {
				s.NeighborStay(tt.offset)
			}

			assert.Equal(t, before, s.Board())
			assert.Equal(t, sel, s.Selection())
		})
	}
}

func TestBoardService_ClassifyThenFollowScenario(t *testing.T) {
	s := newTestBoard(t, map[domain.LaneID][]string{domain.LaneUnsorted: {"A", "B"}})

	s.Classify(domain.LaneCore)

	assert.Equal(t, []string{"B"}, laneNames(s.Lane(domain.LaneUnsorted)))
	assert.Equal(t, []string{"A"}, laneNames(s.Lane(domain.LaneCore)))
	assert.Equal(t, domain.Selection{Lane: domain.LaneUnsorted, Index: 0}, s.Selection())
	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "B", current.Name)

	s.NeighborFollow(1)

	assert.Empty(t, s.Lane(domain.LaneUnsorted))
	assert.Equal(t, []string{"A", "B"}, laneNames(s.Lane(domain.LaneCore)))
	assert.Equal(t, domain.Selection{Lane: domain.LaneCore, Index: 1}, s.Selection())
}

func TestBoardService_ShuffleInbox(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}
	s := newTestBoard(t, map[domain.LaneID][]string{
		domain.LaneUnsorted: names,
		domain.LaneCore:     {"X", "Y"},
		domain.LaneNot:      {"Z"},
	})
	core := s.Lane(domain.LaneCore)
	not := s.Lane(domain.LaneNot)

	for range 20 {
		s.ShuffleInbox()
		assert.ElementsMatch(t, names, laneNames(s.Lane(domain.LaneUnsorted)))
		assert.Equal(t, core, s.Lane(domain.LaneCore))
		assert.Equal(t, not, s.Lane(domain.LaneNot))
	}
}

func TestBoardService_ShuffleInbox_CursorKeepsPosition(t *testing.T) {
	s := newTestBoard(t, map[domain.LaneID][]string{domain.LaneUnsorted: {"A", "B", "C", "D"}})
	s.MoveCursor(3)

	s.ShuffleInbox()

	assert.Equal(t, domain.Selection{Lane: domain.LaneUnsorted, Index: 3}, s.Selection())
}

func TestBoardService_ShuffleInbox_CursorElsewhere(t *testing.T) {
	s := newTestBoard(t, map[domain.LaneID][]string{
		domain.LaneUnsorted: {"A", "B", "C"},
		domain.LaneNice:     {"N1", "N2"},
	})
	s.JumpFocus(domain.LaneNice)
	s.MoveCursor(1)

	s.ShuffleInbox()

	assert.Equal(t, domain.Selection{Lane: domain.LaneNice, Index: 1}, s.Selection())
}

func TestBoardService_DropCard(t *testing.T) {
	s := newTestBoard(t, map[domain.LaneID][]string{
		domain.LaneUnsorted: {"A", "B", "C"},
		domain.LaneNice:     {"N"},
	})

	s.DropCard("B", domain.LaneNice)

	assert.Equal(t, []string{"A", "C"}, laneNames(s.Lane(domain.LaneUnsorted)))
	assert.Equal(t, []string{"N", "B"}, laneNames(s.Lane(domain.LaneNice)))
	assert.Equal(t, domain.Selection{Lane: domain.LaneNice, Index: 1}, s.Selection())
}

func TestBoardService_DropCard_NoOps(t *testing.T) {
	tests := []struct {
		name   string
		card   string
		target domain.LaneID
	}{
		{"already in target", "B", domain.LaneUnsorted},
		{"unknown card", "missing", domain.LaneCore},
		{"invalid target", "A", domain.LaneID(9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestBoard(t, map[domain.LaneID][]string{domain.LaneUnsorted: {"A", "B", "C"}})
			before := s.Board()

			s.DropCard(tt.card, tt.target)

			assert.Equal(t, before, s.Board())
			assert.Equal(t, domain.Selection{Lane: domain.LaneUnsorted, Index: 0}, s.Selection())
		})
	}
}

func TestBoardService_FocusCard(t *testing.T) {
	s := newTestBoard(t, map[domain.LaneID][]string{
		domain.LaneUnsorted:  {"A"},
		domain.LaneImportant: {"I1", "I2", "I3"},
	})

	s.FocusCard("I3")
	assert.Equal(t, domain.Selection{Lane: domain.LaneImportant, Index: 2}, s.Selection())

	s.FocusCard("missing")
	assert.Equal(t, domain.Selection{Lane: domain.LaneImportant, Index: 2}, s.Selection())
}

func TestBoardService_FindLaneAndLocate(t *testing.T) {
	s := newTestBoard(t, map[domain.LaneID][]string{
		domain.LaneCore: {"A", "Dup"},
		domain.LaneNot:  {"Dup", "Z"},
	})

	lane, ok := s.FindLane("Z")
	assert.True(t, ok)
	assert.Equal(t, domain.LaneNot, lane)

	lane, idx, ok := s.Locate("Dup")
	assert.True(t, ok)
	assert.Equal(t, domain.LaneCore, lane, "first match in lane order")
	assert.Equal(t, 1, idx)

	_, ok = s.FindLane("nope")
	assert.False(t, ok)
}

func TestBoardService_Replace(t *testing.T) {
	t.Run("prefers non-empty inbox", func(t *testing.T) {
		s := newTestBoard(t, map[domain.LaneID][]string{domain.LaneCore: {"A", "B"}})
		s.JumpFocus(domain.LaneCore)
		s.MoveCursor(1)

		s.Replace(map[domain.LaneID][]domain.Card{
			domain.LaneUnsorted: testCards("U"),
			domain.LaneNot:      testCards("N"),
		})

		assert.Equal(t, []string{"U"}, laneNames(s.Lane(domain.LaneUnsorted)))
		assert.Empty(t, s.Lane(domain.LaneCore), "absent lanes are emptied")
		assert.Equal(t, domain.Selection{Lane: domain.LaneUnsorted, Index: 0}, s.Selection())
	})

	t.Run("falls back to first non-empty lane", func(t *testing.T) {
		s := newTestBoard(t, nil)

		s.Replace(map[domain.LaneID][]domain.Card{
			domain.LaneNice: testCards("N"),
			domain.LaneNot:  testCards("X"),
		})

		assert.Equal(t, domain.Selection{Lane: domain.LaneNice, Index: 0}, s.Selection())
	})

	t.Run("empty mapping empties the board", func(t *testing.T) {
		s := NewBoardService(testCards("A", "B"), WithSeed(1))

		s.Replace(nil)

		b := s.Board()
		assert.Equal(t, 0, b.Total())
		assert.Equal(t, domain.Selection{Lane: domain.InboxLane, Index: 0}, s.Selection())
	})

	t.Run("ignores lanes outside the catalog", func(t *testing.T) {
		s := newTestBoard(t, nil)

		s.Replace(map[domain.LaneID][]domain.Card{domain.LaneID(40): testCards("Q")})

		b := s.Board()
		assert.Equal(t, 0, b.Total())
	})

	t.Run("does not alias caller slices", func(t *testing.T) {
		s := newTestBoard(t, nil)
		lane := testCards("A", "B")

		s.Replace(map[domain.LaneID][]domain.Card{domain.LaneCore: lane})
		lane[0].Name = "mutated"

		assert.Equal(t, []string{"A", "B"}, laneNames(s.Lane(domain.LaneCore)))
	})
}

func TestBoardService_ReadersReturnCopies(t *testing.T) {
	s := newTestBoard(t, map[domain.LaneID][]string{domain.LaneUnsorted: {"A", "B"}})

	b := s.Board()
	b[domain.LaneUnsorted][0].Name = "mutated"
	lane := s.Lane(domain.LaneUnsorted)
	lane[1].Name = "mutated"

	assert.Equal(t, []string{"A", "B"}, laneNames(s.Lane(domain.LaneUnsorted)))
	assert.Nil(t, s.Lane(domain.LaneID(-1)))
}

// TestBoardService_RandomWalk drives random operations and checks that cards
// are conserved, live in one lane only, and the cursor stays valid.
func TestBoardService_RandomWalk(t *testing.T) {
	catalog := testCards("A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L")
	want := laneNames(catalog)
	sort.Strings(want)

	s := NewBoardService(catalog, WithSeed(99))
	rng := rand.New(rand.NewPCG(11, 12))
	lanes := domain.LaneOrder()
	deltas := []int{-1, 1}

	ops := []func(){
		func() { s.MoveCursor(deltas[rng.IntN(2)]) },
		func() { s.Reorder(deltas[rng.IntN(2)]) },
		func() { s.SendToTop() },
		func() { s.SendToBottom() },
		func() { s.Classify(lanes[rng.IntN(len(lanes))]) },
		func() { s.JumpFocus(lanes[rng.IntN(len(lanes))]) },
		func() { s.NeighborStay(deltas[rng.IntN(2)]) },
		func() { s.NeighborFollow(deltas[rng.IntN(2)]) },
		func() { s.ShuffleInbox() },
		func() { s.DropCard(catalog[rng.IntN(len(catalog))].Name, lanes[rng.IntN(len(lanes))]) },
		func() { s.FocusCard(catalog[rng.IntN(len(catalog))].Name) },
	}

	for step := range 2000 {
		ops[rng.IntN(len(ops))]()

		b := s.Board()
		require.Equal(t, want, sortedNames(b), "step %d: cards not conserved", step)

		seen := make(map[string]domain.LaneID)
		for _, id := range lanes {
			for _, c := range b[id] {
				prev, dup := seen[c.Name]
				require.False(t, dup, "step %d: %s in %s and %s", step, c.Name, prev, id)
				seen[c.Name] = id
			}
		}
		assertSelectionValid(t, s)
	}
}
