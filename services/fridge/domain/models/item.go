package models

import "time"

// Item is a perishable item tracked in the fridge. ID is assigned by the
// document store and never changes afterwards.
type Item struct {
	ID         string
	Name       string
	Quantity   float64
	Unit       string
	Category   string
	Tags       []string
	ExpiryDate time.Time
	Threshold  *float64 // low-stock trigger; nil when the stored document has none
	Deleted    bool

	// Status is derived at read time and never persisted. It stays nil on
	// views that do not classify expiry (trash, low-stock, mutation results).
	Status *Status
}

// WithStatus returns a copy of the item with Status computed against now.
func (i Item) WithStatus(now time.Time) *Item {
	s := ClassifyExpiry(i.ExpiryDate, now)
	i.Status = &s
	return &i
}

// IsLowStock reports whether a threshold is set and the quantity is at or below it.
func (i *Item) IsLowStock() bool {
	return i.Threshold != nil && i.Quantity <= *i.Threshold
}
