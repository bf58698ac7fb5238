package domain

// LaneID identifies one lane in the fixed lane catalog.
// The numeric order of the constants is the lane order.
type LaneID int

// Lane catalog, in lane order.
const (
	// LaneUnsorted is the inbox: seeded at reset, preferred by selection fallback.
	LaneUnsorted LaneID = iota
	// LaneCore holds core values.
	LaneCore
	// LaneImportant holds important values.
	LaneImportant
	// LaneNice holds nice-to-have values.
	LaneNice
	// LaneNot holds values that do not apply.
	LaneNot

	laneCount
)

// NumLanes is the number of lanes in the catalog.
const NumLanes = int(laneCount)

// InboxLane is the lane seeded at reset and preferred when selection falls back.
const InboxLane = LaneUnsorted

var laneIDs = [NumLanes]string{
	LaneUnsorted:  "unsorted",
	LaneCore:      "core",
	LaneImportant: "important",
	LaneNice:      "nice",
	LaneNot:       "not",
}

var laneTitles = [NumLanes]string{
	LaneUnsorted:  "Unsorted",
	LaneCore:      "Core",
	LaneImportant: "Important",
	LaneNice:      "Nice to Have",
	LaneNot:       "Not Me",
}

// LaneOrder returns every lane id in catalog order.
func LaneOrder() []LaneID {
	order := make([]LaneID, NumLanes)
	for i := range order {
		order[i] = LaneID(i)
	}
	return order
}

// IsValid returns true if the lane is part of the catalog.
func (l LaneID) IsValid() bool {
	return l >= 0 && l < laneCount
}

// String returns the lane id used in tabular snapshots.
func (l LaneID) String() string {
	if !l.IsValid() {
		return "unknown"
	}
	return laneIDs[l]
}

// Title returns the human-readable lane heading.
func (l LaneID) Title() string {
	if !l.IsValid() {
		return unknownDescription
	}
	return laneTitles[l]
}

// Neighbor returns the lane offset positions away in catalog order.
// The boolean is false when the result would fall off either end.
func (l LaneID) Neighbor(offset int) (LaneID, bool) {
	if !l.IsValid() {
		return 0, false
	}
	n := l + LaneID(offset)
	if !n.IsValid() {
		return 0, false
	}
	return n, true
}

// ParseLaneID maps a snapshot lane id back to its LaneID.
// Matching is exact; callers trim whitespace first.
func ParseLaneID(s string) (LaneID, bool) {
	for i, id := range laneIDs {
		if id == s {
			return LaneID(i), true
		}
	}
	return 0, false
}
