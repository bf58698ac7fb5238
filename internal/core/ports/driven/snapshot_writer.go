package driven

// SnapshotWriter persists serialised board snapshots.
type SnapshotWriter interface {
	// Write stores data under name and returns the location written.
	// An existing snapshot with the same name is overwritten.
	Write(name string, data []byte) (string, error)
}
