package inventory

import "errors"

// Error variables for inventory operations.
var (
	ErrFull               = errors.New("inventory is full")
	ErrNotFound           = errors.New("item not found")
	ErrNameRequired       = errors.New("name is required")
	ErrCategoryRequired   = errors.New("category is required")
	ErrNameTooLong        = errors.New("name too long")
	ErrCategoryTooLong    = errors.New("category too long")
	ErrInvalidCharacter   = errors.New("control characters are not allowed")
	ErrQuantityOutOfRange = errors.New("value out of range")
	ErrNotSortedByName    = errors.New("binary search requires the inventory sorted by name")
	ErrUnknownProfile     = errors.New("unknown profile")
	ErrInvalidCapacity    = errors.New("capacity out of range")
	ErrItemFileRead       = errors.New("cannot read item file")
	ErrItemFileInvalid    = errors.New("invalid item file")
)
