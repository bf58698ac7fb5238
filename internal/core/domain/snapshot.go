package domain

// SnapshotFormat identifies a serialised board form.
type SnapshotFormat string

// Available snapshot formats.
const (
	// SnapshotText is the human-readable report. It is never re-ingested.
	SnapshotText SnapshotFormat = "txt"

	// SnapshotCSV is the delimited tabular form accepted by import.
	SnapshotCSV SnapshotFormat = "csv"
)

// IsValid returns true if the format is recognised.
func (f SnapshotFormat) IsValid() bool {
	return f == SnapshotText || f == SnapshotCSV
}

// String returns the format's file extension.
func (f SnapshotFormat) String() string {
	return string(f)
}
