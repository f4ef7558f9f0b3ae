package services

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ghuser/fridgepal/services/fridge/domain/models"
)

const maxItemNameLength = 255

// ValidateItem enforces the business rules for an item about to be written,
// on top of the request schema checks:
//   - name is non-empty, not only whitespace, and free of control characters
//   - quantity is a finite, non-negative number
//   - threshold, when set, is finite and non-negative
//   - an expiry date is present
func ValidateItem(item *models.Item) error {
	if item == nil {
		return fmt.Errorf("item cannot be nil")
	}

	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("name must not be empty")
	}
	if utf8.RuneCountInString(item.Name) > maxItemNameLength {
		return fmt.Errorf("name must not exceed %d characters", maxItemNameLength)
	}
	for _, r := range item.Name {
		if unicode.IsControl(r) {
			return fmt.Errorf("name must not contain control characters")
		}
	}

	if math.IsNaN(item.Quantity) || math.IsInf(item.Quantity, 0) || item.Quantity < 0 {
		return fmt.Errorf("quantity must be a non-negative number")
	}

	if t := item.Threshold; t != nil && (math.IsNaN(*t) || math.IsInf(*t, 0) || *t < 0) {
		return fmt.Errorf("threshold must be a non-negative number")
	}

	if item.ExpiryDate.IsZero() {
		return fmt.Errorf("expiry_date must be set")
	}

	return nil
}

// ApplyDecrement subtracts amount from current. The item moves to the trash
// once nothing is left. A negative amount adds to the quantity.
func ApplyDecrement(current, amount float64) (remaining float64, trash bool) {
	remaining = current - amount
	return remaining, remaining <= 0
}
