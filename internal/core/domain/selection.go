package domain

// Selection is the cursor pointing at the current card.
type Selection struct {
	Lane  LaneID
	Index int
}

// RepairSelection returns sel corrected against b.
//
// A selection into a non-empty lane is clamped to [0, len). A selection into
// an empty lane falls back to the inbox if it has cards, then to the first
// non-empty lane in catalog order. When the whole board is empty the lane is
// kept and the index becomes 0.
func RepairSelection(b *Board, sel Selection) Selection {
	if n := b.Len(sel.Lane); n > 0 {
		if sel.Index < 0 {
			sel.Index = 0
		}
		if sel.Index >= n {
			sel.Index = n - 1
		}
		return sel
	}

	if b.Len(InboxLane) > 0 {
		return Selection{Lane: InboxLane}
	}
	if id, ok := b.FirstNonEmpty(); ok {
		return Selection{Lane: id}
	}
	if !sel.Lane.IsValid() {
		sel.Lane = InboxLane
	}
	sel.Index = 0
	return sel
}
