package domain

import "errors"

// Sentinel errors for the fridge domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound is returned for a missing item and, on mutations, for
	// any store failure. Callers see one outcome; the cause stays wrapped for logs.
	ErrItemNotFound = errors.New("item not found")

	// ErrItemAlreadyExists indicates the store rejected a duplicate document id.
	ErrItemAlreadyExists = errors.New("item already exists")

	// ErrInvalidItem indicates the item fields violate domain constraints.
	ErrInvalidItem = errors.New("invalid item")

	// ErrSuggestionFailed indicates recipe suggestions could not be produced.
	ErrSuggestionFailed = errors.New("failed to generate suggestions")
)

// InvalidItemError carries the business rule an item broke. It matches
// ErrInvalidItem, and Reason is safe to show to clients.
type InvalidItemError struct {
	Reason string
}

// InvalidItem returns an InvalidItemError for reason.
func InvalidItem(reason string) error {
	return &InvalidItemError{Reason: reason}
}

func (e *InvalidItemError) Error() string {
	return ErrInvalidItem.Error() + ": " + e.Reason
}

func (e *InvalidItemError) Is(target error) bool {
	return target == ErrInvalidItem //nolint:errorlint // sentinel identity
}
