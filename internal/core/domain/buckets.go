package domain

// LastRank is the rank assigned to decoded rows whose rank is missing or
// not a number. Decoded ranks are capped one below it, so it sorts after
// every real rank.
const LastRank = 1<<31 - 1

// Buckets holds lanes decoded from a tabular snapshot.
//
// Lanes has an entry for every catalog lane. Rows naming a lane id outside
// the catalog are kept in Unknown so callers can still inspect them;
// UnknownOrder lists those ids in first-seen order.
type Buckets struct {
	Lanes        map[LaneID][]Card
	Unknown      map[string][]Card
	UnknownOrder []string
}

// NewBuckets returns Buckets with an empty entry for every catalog lane.
func NewBuckets() *Buckets {
	b := &Buckets{
		Lanes:   make(map[LaneID][]Card, NumLanes),
		Unknown: make(map[string][]Card),
	}
	for _, id := range LaneOrder() {
		b.Lanes[id] = []Card{}
	}
	return b
}

// Total returns the number of cards in catalog lanes.
func (b *Buckets) Total() int {
	n := 0
	for _, cards := range b.Lanes {
		n += len(cards)
	}
	return n
}

// UnknownTotal returns the number of cards in lanes outside the catalog.
func (b *Buckets) UnknownTotal() int {
	n := 0
	for _, cards := range b.Unknown {
		n += len(cards)
	}
	return n
}

// ImportResult summarises a wholesale board replacement from a snapshot.
type ImportResult struct {
	// Cards is the number of cards placed on the board.
	Cards int

	// PerLane counts placed cards per catalog lane.
	PerLane map[LaneID]int

	// UnknownLanes lists decoded lane ids outside the catalog, in first-seen order.
	UnknownLanes []string

	// Skipped is the number of cards in UnknownLanes, which the board cannot hold.
	Skipped int
}
