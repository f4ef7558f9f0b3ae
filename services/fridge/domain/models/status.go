package models

import (
	"math"
	"time"
)

// Status classifies an item by how close it is to its expiry date.
type Status string

const (
	StatusFresh    Status = "fresh"
	StatusExpiring Status = "expiring"
	StatusExpired  Status = "expired"
)

// ExpiringWindowDays is the number of whole days left at which an item
// stops being fresh.
const ExpiringWindowDays = 5

// DaysUntil returns the whole days between now and expiry, floored, so an
// item that expired one second ago is at -1.
func DaysUntil(expiry, now time.Time) int {
	return int(math.Floor(expiry.Sub(now).Hours() / 24))
}

// ClassifyExpiry derives the Status of an item expiring at expiry.
func ClassifyExpiry(expiry, now time.Time) Status {
	days := DaysUntil(expiry, now)
	switch {
	case days < 0:
		return StatusExpired
	case days <= ExpiringWindowDays:
		return StatusExpiring
	default:
		return StatusFresh
	}
}
