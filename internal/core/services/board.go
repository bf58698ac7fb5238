package services

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/custodia-labs/valuesort/internal/core/domain"
	"github.com/custodia-labs/valuesort/internal/core/ports/driving"
	"github.com/custodia-labs/valuesort/internal/logger"
)

// Ensure BoardService implements the interface.
var _ driving.BoardService = (*BoardService)(nil)

// BoardService is the board store: lanes of cards plus the selection cursor.
//
// Cards are only ever moved by detaching them from one lane and then
// appending or inserting them into another, so no card is held by two
// lanes at once. BoardService is not safe for concurrent use.
type BoardService struct {
	catalog []domain.Card
	rng     *rand.Rand
	board   domain.Board
	sel     domain.Selection
}

// BoardOption configures a BoardService.
type BoardOption func(*BoardService)

// WithSeed makes every shuffle reproducible from seed.
func WithSeed(seed uint64) BoardOption {
	return func(s *BoardService) {
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand sets the random source used for shuffles.
func WithRand(rng *rand.Rand) BoardOption {
	return func(s *BoardService) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// NewBoardService creates a board seeded from catalog, as after Reset.
func NewBoardService(catalog []domain.Card, opts ...BoardOption) *BoardService {
	now := uint64(time.Now().UnixNano())
	s := &BoardService{
		catalog: slices.Clone(catalog),
		rng:     rand.New(rand.NewPCG(now, now>>1)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

// Reset re-seeds the inbox lane with a fresh permutation of the catalog.
func (s *BoardService) Reset() {
	s.board = domain.Board{}
	inbox := slices.Clone(s.catalog)
	s.shuffle(inbox)
	s.board[domain.InboxLane] = inbox
	s.sel = domain.Selection{Lane: domain.InboxLane, Index: 0}
	s.repair()
	logger.Debug("board reset: %d values in %s", len(inbox), domain.InboxLane)
}

// MoveCursor shifts the cursor within the current lane without moving cards.
func (s *BoardService) MoveCursor(delta int) {
	s.sel.Index += delta
	s.repair()
}

// Reorder swaps the selected card with the card delta positions away.
// Nothing changes when that position is outside the lane.
func (s *BoardService) Reorder(delta int) {
	defer s.repair()

	lane, idx, ok := s.selected()
	if !ok {
		return
	}
	to := idx + delta
	if to < 0 || to >= len(lane) {
		return
	}
	lane[idx], lane[to] = lane[to], lane[idx]
	s.sel.Index = to
}

// SendToTop moves the selected card to index 0 of its lane.
func (s *BoardService) SendToTop() {
	defer s.repair()

	_, idx, ok := s.selected()
	if !ok || idx == 0 {
		return
	}
	card := s.detach(s.sel.Lane, idx)
	s.board[s.sel.Lane] = slices.Insert(s.board[s.sel.Lane], 0, card)
	s.sel.Index = 0
}

// SendToBottom moves the selected card to the end of its lane.
func (s *BoardService) SendToBottom() {
	defer s.repair()

	lane, idx, ok := s.selected()
	if !ok || idx == len(lane)-1 {
		return
	}
	card := s.detach(s.sel.Lane, idx)
	s.board[s.sel.Lane] = append(s.board[s.sel.Lane], card)
	s.sel.Index = len(s.board[s.sel.Lane]) - 1
}

// Pluck detaches the selected card from its lane.
//
// The cursor keeps its index so it lands on the card that slid into the
// gap, or steps back to the new last card when the gap was at the end.
func (s *BoardService) Pluck() (domain.Card, domain.LaneID, bool) {
	defer s.repair()

	_, idx, ok := s.selected()
	if !ok {
		return domain.Card{}, 0, false
	}
	from := s.sel.Lane
	card := s.detach(from, idx)
	if idx >= len(s.board[from]) {
		s.sel.Index = len(s.board[from]) - 1
	}
	return card, from, true
}

// Classify sends the selected card to the end of target without following it.
func (s *BoardService) Classify(target domain.LaneID) {
	defer s.repair()

	if !target.IsValid() {
		return
	}
	card, _, ok := s.Pluck()
	if !ok {
		return
	}
	s.board[target] = append(s.board[target], card)
}

// JumpFocus moves the cursor to the top of target. Cards stay put.
func (s *BoardService) JumpFocus(target domain.LaneID) {
	if s.board.Len(target) == 0 {
		return
	}
	s.sel = domain.Selection{Lane: target, Index: 0}
	s.repair()
}

// NeighborStay sends the selected card to the lane offset positions away in
// lane order; the cursor stays in the origin lane.
func (s *BoardService) NeighborStay(offset int) {
	defer s.repair()

	target, ok := s.sel.Lane.Neighbor(offset)
	if !ok {
		return
	}
	card, _, ok := s.Pluck()
	if !ok {
		return
	}
	s.board[target] = append(s.board[target], card)
}

// NeighborFollow sends the selected card to the lane offset positions away
// and moves the cursor along with it.
func (s *BoardService) NeighborFollow(offset int) {
	defer s.repair()

	target, ok := s.sel.Lane.Neighbor(offset)
	if !ok {
		return
	}
	card, _, ok := s.Pluck()
	if !ok {
		return
	}
	s.board[target] = append(s.board[target], card)
	s.sel = domain.Selection{Lane: target, Index: len(s.board[target]) - 1}
}

// ShuffleInbox permutes the inbox lane. A cursor in the inbox keeps its
// position number, which now holds a different card.
func (s *BoardService) ShuffleInbox() {
	s.shuffle(s.board[domain.InboxLane])
	s.repair()
}

// DropCard moves the named card from wherever it is to the end of target
// and moves the cursor onto it. Nothing happens when the card is unknown
// or already in target.
func (s *BoardService) DropCard(name string, target domain.LaneID) {
	defer s.repair()

	if !target.IsValid() {
		return
	}
	from, idx, ok := s.Locate(name)
	if !ok || from == target {
		return
	}
	card := s.detach(from, idx)
	s.board[target] = append(s.board[target], card)
	s.sel = domain.Selection{Lane: target, Index: len(s.board[target]) - 1}
}

// FocusCard moves the cursor onto the named card, if it is on the board.
func (s *BoardService) FocusCard(name string) {
	lane, idx, ok := s.Locate(name)
	if !ok {
		return
	}
	s.sel = domain.Selection{Lane: lane, Index: idx}
	s.repair()
}

// FindLane returns the first lane in lane order holding the named card.
func (s *BoardService) FindLane(name string) (domain.LaneID, bool) {
	lane, _, ok := s.Locate(name)
	return lane, ok
}

// Locate returns the lane and index of the named card, scanning lanes in
// lane order and returning the first match.
func (s *BoardService) Locate(name string) (domain.LaneID, int, bool) {
	for _, id := range domain.LaneOrder() {
		idx := slices.IndexFunc(s.board[id], func(c domain.Card) bool {
			return c.Name == name
		})
		if idx >= 0 {
			return id, idx, true
		}
	}
	return 0, 0, false
}

// Replace discards the board and installs lanes as the new contents.
// Catalog lanes absent from lanes become empty; ids outside the catalog
// are ignored. The selection is reset as at start-up.
func (s *BoardService) Replace(lanes map[domain.LaneID][]domain.Card) {
	s.board = domain.Board{}
	for _, id := range domain.LaneOrder() {
		s.board[id] = slices.Clone(lanes[id])
	}
	s.sel = domain.Selection{Lane: domain.InboxLane, Index: 0}
	s.repair()
	logger.Debug("board replaced: %d cards", s.board.Total())
}

// Board returns a copy of every lane.
func (s *BoardService) Board() domain.Board {
	return s.board.Clone()
}

// Lane returns a copy of one lane.
func (s *BoardService) Lane(id domain.LaneID) []domain.Card {
	return slices.Clone(s.board.Lane(id))
}

// Selection returns the current cursor.
func (s *BoardService) Selection() domain.Selection {
	return s.sel
}

// Current returns the selected card.
func (s *BoardService) Current() (domain.Card, bool) {
	lane, idx, ok := s.selected()
	if !ok {
		return domain.Card{}, false
	}
	return lane[idx], true
}

// selected returns the lane under the cursor and the cursor index, or false
// when the cursor does not point at a card.
func (s *BoardService) selected() ([]domain.Card, int, bool) {
	lane := s.board.Lane(s.sel.Lane)
	idx := s.sel.Index
	if idx < 0 || idx >= len(lane) {
		return nil, 0, false
	}
	return lane, idx, true
}

// detach removes and returns the card at idx in lane id.
func (s *BoardService) detach(id domain.LaneID, idx int) domain.Card {
	card := s.board[id][idx]
	s.board[id] = slices.Delete(s.board[id], idx, idx+1)
	return card
}

func (s *BoardService) shuffle(cards []domain.Card) {
	s.rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

func (s *BoardService) repair() {
	s.sel = domain.RepairSelection(&s.board, s.sel)
}
