package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	fridgedomain "github.com/ghuser/fridgepal/services/fridge/domain"
	"github.com/ghuser/fridgepal/services/fridge/domain/models"
	"github.com/ghuser/fridgepal/services/fridge/domain/repositories"
)

func seed(t *testing.T, s *ItemStore, items ...models.Item) []*models.Item {
	t.Helper()
	out := make([]*models.Item, 0, len(items))
	for i := range items {
		created, err := s.Create(context.Background(), &items[i])
		if err != nil {
			t.Fatalf("create %q: %v", items[i].Name, err)
		}
		out = append(out, created)
	}
	return out
}

func names(items []*models.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestItemStore_CreateAssignsID(t *testing.T) {
	s := NewItemStore()
	created := seed(t, s, models.Item{ID: "client-chosen", Name: "Milk"})[0]

	if created.ID == "" || created.ID == "client-chosen" {
		t.Fatalf("expected store-assigned id, got %q", created.ID)
	}
	if created.Tags == nil {
		t.Fatal("expected tags to default to an empty slice")
	}
}

func TestItemStore_ListFilters(t *testing.T) {
	s := NewItemStore()
	items := seed(t, s,
		models.Item{Name: "Whole Milk", Category: "Dairy"},
		models.Item{Name: "Eggs", Category: "Dairy"},
		models.Item{Name: "Carrots", Category: "Veggies"},
		models.Item{Name: "Oat milk", Category: "Other"},
	)
	if _, err := s.Update(context.Background(), items[1].ID, repositories.DeletedPatch(true)); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	active := repositories.Active()
	tests := []struct {
		name   string
		filter repositories.Filter
		want   []string
	}{
		{"all", repositories.Filter{}, []string{"Whole Milk", "Eggs", "Carrots", "Oat milk"}},
		{"active", active, []string{"Whole Milk", "Carrots", "Oat milk"}},
		{"trashed", repositories.Trashed(), []string{"Eggs"}},
		{"active dairy", repositories.Filter{Deleted: active.Deleted, Category: "Dairy"}, []string{"Whole Milk"}},
		{"case-insensitive search", repositories.Filter{Deleted: active.Deleted, Search: "MILK"}, []string{"Whole Milk", "Oat milk"}},
		{"category is exact", repositories.Filter{Category: "dairy"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.List(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			gotNames := names(got)
			if len(gotNames) != len(tt.want) {
				t.Fatalf("got %v, want %v", gotNames, tt.want)
			}
			for i := range gotNames {
				if gotNames[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", gotNames, tt.want)
				}
			}
		})
	}
}

func TestItemStore_ReturnsCopies(t *testing.T) {
	s := NewItemStore()
	created := seed(t, s, models.Item{Name: "Milk", Tags: []string{"dairy"}})[0]

	created.Name = "Mutated"
	created.Tags[0] = "mutated"

	got, err := s.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Milk" || got.Tags[0] != "dairy" {
		t.Fatalf("store state leaked through returned item: %+v", got)
	}
}

func TestItemStore_UpdateAndDelete(t *testing.T) {
	s := NewItemStore()
	created := seed(t, s, models.Item{Name: "Milk", Quantity: 2, ExpiryDate: time.Now()})[0]
	ctx := context.Background()

	updated, err := s.Update(ctx, created.ID, repositories.QuantityPatch(0, true))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Quantity != 0 || !updated.Deleted {
		t.Fatalf("unexpected item after update: %+v", updated)
	}

	if err := s.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(ctx, created.ID); !errors.Is(err, fridgedomain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound after delete, got %v", err)
	}
	all, _ := s.List(ctx, repositories.Filter{})
	if len(all) != 0 {
		t.Fatalf("expected empty store, got %v", names(all))
	}
}

func TestItemStore_UnknownID(t *testing.T) {
	s := NewItemStore()
	ctx := context.Background()

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, fridgedomain.ErrItemNotFound) {
		t.Errorf("Get: expected ErrItemNotFound, got %v", err)
	}
	if _, err := s.Update(ctx, "missing", repositories.DeletedPatch(true)); !errors.Is(err, fridgedomain.ErrItemNotFound) {
		t.Errorf("Update: expected ErrItemNotFound, got %v", err)
	}
	if err := s.Delete(ctx, "missing"); !errors.Is(err, fridgedomain.ErrItemNotFound) {
		t.Errorf("Delete: expected ErrItemNotFound, got %v", err)
	}
}

func TestItemStore_DuplicateID(t *testing.T) {
	s := NewItemStore()
	s.newID = func() string { return "fixed" }
	seed(t, s, models.Item{Name: "Milk"})

	if _, err := s.Create(context.Background(), &models.Item{Name: "Eggs"}); !errors.Is(err, fridgedomain.ErrItemAlreadyExists) {
		t.Fatalf("expected ErrItemAlreadyExists, got %v", err)
	}
}
