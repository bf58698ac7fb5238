package driving

import "github.com/custodia-labs/valuesort/internal/core/domain"

// BoardService owns the board and its selection cursor.
//
// Every mutating operation is total: invalid or boundary requests are
// no-ops, and the selection is repaired before the call returns.
type BoardService interface {
	// Reset re-seeds the inbox lane with a fresh permutation of the catalog
	// and empties every other lane.
	Reset()

	// MoveCursor shifts the selection within the current lane by delta.
	MoveCursor(delta int)

	// Reorder swaps the selected card with its neighbour delta positions away.
	Reorder(delta int)

	// SendToTop moves the selected card to index 0 of its lane.
	SendToTop()

	// SendToBottom moves the selected card to the end of its lane.
	SendToBottom()

	// Pluck detaches the selected card and returns it with its origin lane.
	// The boolean is false when there is nothing to pluck.
	Pluck() (domain.Card, domain.LaneID, bool)

	// Classify sends the selected card to the end of target; the cursor stays.
	Classify(target domain.LaneID)

	// JumpFocus moves the cursor to the top of target if it holds cards.
	JumpFocus(target domain.LaneID)

	// NeighborStay sends the selected card to the adjacent lane; the cursor stays.
	NeighborStay(offset int)

	// NeighborFollow sends the selected card to the adjacent lane and follows it.
	NeighborFollow(offset int)

	// ShuffleInbox permutes the inbox lane only.
	ShuffleInbox()

	// DropCard moves the named card to the end of target and follows it.
	DropCard(name string, target domain.LaneID)

	// FocusCard moves the cursor onto the named card.
	FocusCard(name string)

	// FindLane returns the lane holding the named card.
	FindLane(name string) (domain.LaneID, bool)

	// Locate returns the lane and index holding the named card.
	Locate(name string) (domain.LaneID, int, bool)

	// Replace discards every lane and installs lanes wholesale.
	// Catalog lanes missing from lanes become empty.
	Replace(lanes map[domain.LaneID][]domain.Card)

	// Board returns a copy of every lane.
	Board() domain.Board

	// Lane returns a copy of one lane.
	Lane(id domain.LaneID) []domain.Card

	// Selection returns the current cursor.
	Selection() domain.Selection

	// Current returns the selected card, if any.
	Current() (domain.Card, bool)
}
