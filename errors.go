package portfolio

import "errors"

// Sentinel errors for library operations.
var (
	// ErrSectionNotFound indicates no content section matches a route type.
	ErrSectionNotFound = errors.New("section not found")

	// ErrItemNotFound indicates a directly requested document does not exist
	// or cannot be read.
	ErrItemNotFound = errors.New("content item not found")

	// ErrInvalidSettings indicates settings failed validation.
	ErrInvalidSettings = errors.New("invalid settings")
)
