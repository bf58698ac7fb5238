package domain

// Card is a single value being sorted.
// Name is unique across the board by convention only; nothing enforces it.
type Card struct {
	Name string
	Desc string
}
