// Package cached decorates a DocumentStore with a Redis-backed list cache.
package cached

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ghuser/fridgepal/pkg/cache"
	"github.com/ghuser/fridgepal/pkg/logger"
	"github.com/ghuser/fridgepal/services/fridge/domain/models"
	"github.com/ghuser/fridgepal/services/fridge/domain/repositories"
)

// ListCache is the subset of cache.ListCache the store needs.
type ListCache interface {
	Generation(ctx context.Context) (int64, error)
	Get(ctx context.Context, gen int64, filter string) ([]cache.CachedItem, error)
	Set(ctx context.Context, gen int64, filter string, items []cache.CachedItem) error
	Invalidate(ctx context.Context) error
}

// ItemStore serves List from the cache when possible and invalidates every
// cached list on any write. Cache failures are logged and never fail the call.
type ItemStore struct {
	next  repositories.DocumentStore
	cache ListCache
	log   logger.Logger
}

// NewItemStore wraps next with c.
func NewItemStore(next repositories.DocumentStore, c ListCache, log logger.Logger) *ItemStore {
	return &ItemStore{next: next, cache: c, log: log}
}

func (s *ItemStore) List(ctx context.Context, f repositories.Filter) ([]*models.Item, error) {
	key := FilterKey(f)
	// The generation is read before the store so a write racing this call
	// lands the result under a generation that is already stale.
	gen, err := s.cache.Generation(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "item list cache unavailable", "filter", key, "error", err)
		return s.next.List(ctx, f)
	}

	hit, err := s.cache.Get(ctx, gen, key)
	switch {
	case err == nil:
		return fromCached(hit), nil
	case !errors.Is(err, cache.ErrCacheMiss):
		s.log.WarnContext(ctx, "item list cache read failed", "filter", key, "error", err)
	}

	items, err := s.next.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, gen, key, toCached(items)); err != nil {
		s.log.WarnContext(ctx, "item list cache write failed", "filter", key, "error", err)
	}
	return items, nil
}

func (s *ItemStore) Get(ctx context.Context, id string) (*models.Item, error) {
	return s.next.Get(ctx, id)
}

func (s *ItemStore) Create(ctx context.Context, item *models.Item) (*models.Item, error) {
	created, err := s.next.Create(ctx, item)
	s.invalidate(ctx)
	return created, err
}

func (s *ItemStore) Update(ctx context.Context, id string, p repositories.Patch) (*models.Item, error) {
	item, err := s.next.Update(ctx, id, p)
	s.invalidate(ctx)
	return item, err
}

func (s *ItemStore) Delete(ctx context.Context, id string) error {
	err := s.next.Delete(ctx, id)
	s.invalidate(ctx)
	return err
}

func (s *ItemStore) Ping(ctx context.Context) error {
	return s.next.Ping(ctx)
}

func (s *ItemStore) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.WarnContext(ctx, "item list cache invalidate failed", "error", err)
	}
}

// FilterKey renders f as a cache key. Search is lowered since every store
// matches it case-insensitively.
func FilterKey(f repositories.Filter) string {
	deleted := "any"
	if f.Deleted != nil {
		deleted = fmt.Sprint(*f.Deleted)
	}
	return fmt.Sprintf("deleted=%s,category=%q,search=%q", deleted, f.Category, strings.ToLower(f.Search))
}

func toCached(items []*models.Item) []cache.CachedItem {
	out := make([]cache.CachedItem, 0, len(items))
	for _, it := range items {
		out = append(out, cache.CachedItem{
			ID:         it.ID,
			Name:       it.Name,
			Quantity:   it.Quantity,
			Unit:       it.Unit,
			Category:   it.Category,
			Tags:       it.Tags,
			ExpiryDate: it.ExpiryDate,
			Threshold:  it.Threshold,
			Deleted:    it.Deleted,
		})
	}
	return out
}

func fromCached(hit []cache.CachedItem) []*models.Item {
	out := make([]*models.Item, 0, len(hit))
	for _, c := range hit {
		tags := c.Tags
		if tags == nil {
			tags = []string{}
		}
		out = append(out, &models.Item{
			ID:         c.ID,
			Name:       c.Name,
			Quantity:   c.Quantity,
			Unit:       c.Unit,
			Category:   c.Category,
			Tags:       tags,
			ExpiryDate: c.ExpiryDate,
			Threshold:  c.Threshold,
			Deleted:    c.Deleted,
		})
	}
	return out
}
