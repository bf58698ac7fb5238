package domain

// Board maps every catalog lane to its ordered card sequence.
// Index 0 of a lane is its highest rank.
type Board [NumLanes][]Card

// Lane returns the sequence for id, or nil for ids outside the catalog.
func (b *Board) Lane(id LaneID) []Card {
	if !id.IsValid() {
		return nil
	}
	return b[id]
}

// Len returns the number of cards in lane id.
func (b *Board) Len(id LaneID) int {
	return len(b.Lane(id))
}

// Total returns the number of cards across all lanes.
func (b *Board) Total() int {
	n := 0
	for _, lane := range b {
		n += len(lane)
	}
	return n
}

// FirstNonEmpty returns the first lane in catalog order holding a card.
func (b *Board) FirstNonEmpty() (LaneID, bool) {
	for _, id := range LaneOrder() {
		if len(b[id]) > 0 {
			return id, true
		}
	}
	return 0, false
}

// Clone returns a deep copy whose lanes share no backing arrays with b.
func (b *Board) Clone() Board {
	var out Board
	for i, lane := range b {
		out[i] = append([]Card(nil), lane...)
	}
	return out
}
