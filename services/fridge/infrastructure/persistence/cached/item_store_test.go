package cached

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ghuser/fridgepal/pkg/cache"
	"github.com/ghuser/fridgepal/pkg/logger"
	"github.com/ghuser/fridgepal/services/fridge/domain/models"
	"github.com/ghuser/fridgepal/services/fridge/domain/repositories"
	"github.com/ghuser/fridgepal/services/fridge/infrastructure/persistence/memory"
)

type fakeListCache struct {
	gen    int64
	lists  map[string][]cache.CachedItem
	genErr error
	hits   int
	misses int
}

func newFakeListCache() *fakeListCache {
	return &fakeListCache{lists: make(map[string][]cache.CachedItem)}
}

func (f *fakeListCache) Generation(context.Context) (int64, error) {
	return f.gen, f.genErr
}

func (f *fakeListCache) Get(_ context.Context, gen int64, filter string) ([]cache.CachedItem, error) {
	items, ok := f.lists[fmt.Sprintf("%d:%s", gen, filter)]
	if !ok {
		f.misses++
		return nil, cache.ErrCacheMiss
	}
	f.hits++
	return items, nil
}

func (f *fakeListCache) Set(_ context.Context, gen int64, filter string, items []cache.CachedItem) error {
	f.lists[fmt.Sprintf("%d:%s", gen, filter)] = items
	return nil
}

func (f *fakeListCache) Invalidate(context.Context) error {
	f.gen++
	return nil
}

// countingStore counts List calls that reach the backing store.
type countingStore struct {
	repositories.DocumentStore
	lists int
}

func (c *countingStore) List(ctx context.Context, f repositories.Filter) ([]*models.Item, error) {
	c.lists++
	return c.DocumentStore.List(ctx, f)
}

func setup(t *testing.T) (*ItemStore, *countingStore, *fakeListCache, *models.Item) {
	t.Helper()
	inner := &countingStore{DocumentStore: memory.NewItemStore()}
	fc := newFakeListCache()
	s := NewItemStore(inner, fc, logger.Nop())

	created, err := s.Create(context.Background(), &models.Item{
		Name: "Milk", Quantity: 2, Unit: "L", Category: "Dairy", Tags: []string{},
		ExpiryDate: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return s, inner, fc, created
}

func TestItemStore_RepeatedListServedFromCache(t *testing.T) {
	s, inner, fc, created := setup(t)
	ctx := context.Background()

	for range 20 {
		got, err := s.List(ctx, repositories.Active())
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(got) != 1 || got[0].ID != created.ID {
			t.Fatalf("got %+v", got)
		}
	}
	if inner.lists != 1 {
		t.Fatalf("expected 1 backing list, got %d", inner.lists)
	}
	if fc.hits != 19 || fc.misses != 1 {
		t.Fatalf("hits=%d misses=%d, want 19/1", fc.hits, fc.misses)
	}
}

func TestItemStore_FiltersCachedSeparately(t *testing.T) {
	s, inner, _, _ := setup(t)
	ctx := context.Background()

	filters := []repositories.Filter{
		repositories.Active(),
		repositories.Trashed(),
		{Category: "Dairy"},
		{Search: "MILK"},
		{Search: "milk"},
	}
	for _, f := range filters {
		if _, err := s.List(ctx, f); err != nil {
			t.Fatalf("list: %v", err)
		}
	}
	// "MILK" and "milk" share an entry.
	if inner.lists != 4 {
		t.Fatalf("expected 4 backing lists, got %d", inner.lists)
	}
}

func TestItemStore_WritesInvalidate(t *testing.T) {
	tests := []struct {
		name  string
		write func(s *ItemStore, id string) error
		want  int
	}{
		{"create", func(s *ItemStore, _ string) error {
			_, err := s.Create(context.Background(), &models.Item{
				Name: "Eggs", Quantity: 6, Unit: "pcs", Category: "Dairy", Tags: []string{},
				ExpiryDate: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
			})
			return err
		}, 2},
		{"update", func(s *ItemStore, id string) error {
			_, err := s.Update(context.Background(), id, repositories.QuantityPatch(1, false))
			return err
		}, 1},
		{"delete", func(s *ItemStore, id string) error {
			return s.Delete(context.Background(), id)
		}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, inner, _, created := setup(t)
			ctx := context.Background()

			if _, err := s.List(ctx, repositories.Active()); err != nil {
				t.Fatalf("list: %v", err)
			}
			if err := tt.write(s, created.ID); err != nil {
				t.Fatalf("write: %v", err)
			}
			got, err := s.List(ctx, repositories.Active())
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(got) != tt.want {
				t.Fatalf("got %d items, want %d", len(got), tt.want)
			}
			if inner.lists != 2 {
				t.Fatalf("expected refetch after write, got %d backing lists", inner.lists)
			}
		})
	}
}

func TestItemStore_CacheErrorFallsBack(t *testing.T) {
	s, inner, fc, created := setup(t)
	fc.genErr = errors.New("connection refused")

	got, err := s.List(context.Background(), repositories.Active())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != created.ID || inner.lists != 1 {
		t.Fatalf("expected fallback read, got %+v (backing lists %d)", got, inner.lists)
	}
}

func TestFilterKey(t *testing.T) {
	deleted := true
	tests := []struct {
		name string
		f    repositories.Filter
		want string
	}{
		{"zero", repositories.Filter{}, `deleted=any,category="",search=""`},
		{"active", repositories.Active(), `deleted=false,category="",search=""`},
		{"trashed with search", repositories.Filter{Deleted: &deleted, Search: "Ham"}, `deleted=true,category="",search="ham"`},
		{"category with separator", repositories.Filter{Category: `a",b`}, `deleted=any,category="a\",b",search=""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilterKey(tt.f); got != tt.want {
				t.Fatalf("FilterKey() = %s, want %s", got, tt.want)
			}
		})
	}
}
