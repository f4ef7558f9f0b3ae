package services

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/ghuser/fridgepal/services/fridge/domain/models"
)

func TestValidateItem(t *testing.T) {
	valid := func() *models.Item {
		threshold := 1.0
		return &models.Item{
			Name:       "Milk",
			Quantity:   2,
			Unit:       "l",
			Category:   "Dairy",
			ExpiryDate: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
			Threshold:  &threshold,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*models.Item)
		wantErr bool
	}{
		{"valid item", func(*models.Item) {}, false},
		{"zero quantity", func(i *models.Item) { i.Quantity = 0 }, false},
		{"no threshold", func(i *models.Item) { i.Threshold = nil }, false},
		{"empty name", func(i *models.Item) { i.Name = "" }, true},
		{"whitespace name", func(i *models.Item) { i.Name = "   " }, true},
		{"control characters", func(i *models.Item) { i.Name = "Milk\x00" }, true},
		{"name too long", func(i *models.Item) { i.Name = strings.Repeat("m", 256) }, true},
		{"multibyte name at limit", func(i *models.Item) { i.Name = strings.Repeat("é", 255) }, false},
		{"multibyte name over limit", func(i *models.Item) { i.Name = strings.Repeat("é", 256) }, true},
		{"negative quantity", func(i *models.Item) { i.Quantity = -1 }, true},
		{"NaN quantity", func(i *models.Item) { i.Quantity = math.NaN() }, true},
		{"negative threshold", func(i *models.Item) { v := -0.5; i.Threshold = &v }, true},
		{"missing expiry", func(i *models.Item) { i.ExpiryDate = time.Time{} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := valid()
			tt.mutate(item)
			err := ValidateItem(item)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateItem() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}

	t.Run("nil item", func(t *testing.T) {
		if err := ValidateItem(nil); err == nil {
			t.Fatal("expected error for nil item")
		}
	})
}

func TestApplyDecrement(t *testing.T) {
	tests := []struct {
		name          string
		current       float64
		amount        float64
		wantRemaining float64
		wantTrash     bool
	}{
		{"positive remainder", 5, 2, 3, false},
		{"exactly zero", 2, 2, 0, true},
		{"below zero", 1, 3, -2, true},
		{"negative amount restocks", 1, -2, 3, false},
		{"fractional", 1.5, 0.5, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remaining, trash := ApplyDecrement(tt.current, tt.amount)
			if remaining != tt.wantRemaining || trash != tt.wantTrash {
				t.Fatalf("ApplyDecrement(%v, %v) = (%v, %v), want (%v, %v)",
					tt.current, tt.amount, remaining, trash, tt.wantRemaining, tt.wantTrash)
			}
		})
	}
}
