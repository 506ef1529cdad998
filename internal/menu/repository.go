package menu

import "errors"

var (
	ErrIndexOutOfRange = errors.New("menu item index out of range")
)

// Repository holds the ordered item sequence.
// Service depends ONLY on this interface.
type Repository interface {
	// Append adds an item to the end and returns its index.
	Append(item Item) int

	// RemoveByName deletes every item with the given name and
	// returns how many were removed.
	RemoveByName(name string) int

	// Replace overwrites the item at index.
	Replace(index int, item Item) error

	Get(index int) (Item, error)

	// List returns a copy of the sequence.
	List() []Item

	Len() int
}
