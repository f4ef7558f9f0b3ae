package repositories

import (
	"slices"
	"testing"
	"time"

	"github.com/ghuser/fridgepal/services/fridge/domain/models"
)

func TestActiveAndTrashedFilters(t *testing.T) {
	if f := Active(); f.Deleted == nil || *f.Deleted {
		t.Fatalf("Active() must filter deleted=false, got %+v", f)
	}
	if f := Trashed(); f.Deleted == nil || !*f.Deleted {
		t.Fatalf("Trashed() must filter deleted=true, got %+v", f)
	}
}

func TestReplacePatch_RoundTrip(t *testing.T) {
	threshold := 1.0
	src := &models.Item{
		ID:         "keep-me",
		Name:       "Eggs",
		Quantity:   6,
		Unit:       "pcs",
		Category:   "Dairy",
		Tags:       []string{"breakfast"},
		ExpiryDate: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		Threshold:  &threshold,
		Deleted:    false,
	}

	dst := &models.Item{ID: "target", Name: "Old", Deleted: true}
	ReplacePatch(src).Apply(dst)

	if dst.ID != "target" {
		t.Errorf("ID must not be patched, got %q", dst.ID)
	}
	if dst.Name != "Eggs" || dst.Quantity != 6 || dst.Unit != "pcs" || dst.Category != "Dairy" {
		t.Errorf("unexpected fields: %+v", dst)
	}
	if !slices.Equal(dst.Tags, []string{"breakfast"}) {
		t.Errorf("unexpected tags: %v", dst.Tags)
	}
	if dst.Deleted {
		t.Error("replace must write deleted=false")
	}
	if dst.Threshold == nil || *dst.Threshold != 1 {
		t.Errorf("unexpected threshold: %v", dst.Threshold)
	}

	src.Tags[0] = "mutated"
	*src.Threshold = 99
	if dst.Tags[0] != "breakfast" || *dst.Threshold != 1 {
		t.Error("patched item must not alias the source")
	}
}

func TestReplacePatch_NilTagsBecomeEmpty(t *testing.T) {
	p := ReplacePatch(&models.Item{Name: "Milk"})
	if p.Tags == nil || *p.Tags == nil || len(*p.Tags) != 0 {
		t.Fatalf("expected empty tags, got %v", p.Tags)
	}
}

func TestQuantityPatch(t *testing.T) {
	t.Run("positive remainder leaves deleted untouched", func(t *testing.T) {
		item := &models.Item{Quantity: 5}
		QuantityPatch(3, false).Apply(item)
		if item.Quantity != 3 || item.Deleted {
			t.Fatalf("unexpected item: %+v", item)
		}
	})

	t.Run("trash sets deleted", func(t *testing.T) {
		item := &models.Item{Quantity: 1}
		QuantityPatch(0, true).Apply(item)
		if item.Quantity != 0 || !item.Deleted {
			t.Fatalf("unexpected item: %+v", item)
		}
	})
}

func TestDeletedPatch(t *testing.T) {
	item := &models.Item{Name: "Milk", Quantity: 1}
	DeletedPatch(true).Apply(item)
	if !item.Deleted || item.Name != "Milk" || item.Quantity != 1 {
		t.Fatalf("unexpected item: %+v", item)
	}
	DeletedPatch(false).Apply(item)
	if item.Deleted {
		t.Fatal("expected restore to clear deleted")
	}
}
