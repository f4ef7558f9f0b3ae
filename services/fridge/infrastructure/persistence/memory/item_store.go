// Package memory is a process-local DocumentStore for development and tests.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	fridgedomain "github.com/ghuser/fridgepal/services/fridge/domain"
	"github.com/ghuser/fridgepal/services/fridge/domain/models"
	"github.com/ghuser/fridgepal/services/fridge/domain/repositories"
)

// ItemStore keeps items in insertion order behind a mutex.
type ItemStore struct {
	mu    sync.RWMutex
	items map[string]*models.Item
	order []string
	newID func() string
}

// NewItemStore returns an empty store that assigns UUID ids.
func NewItemStore() *ItemStore {
	return &ItemStore{
		items: make(map[string]*models.Item),
		newID: uuid.NewString,
	}
}

func (s *ItemStore) List(_ context.Context, f repositories.Filter) ([]*models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(f.Search)
	out := make([]*models.Item, 0, len(s.order))
	for _, id := range s.order {
		it := s.items[id]
		if f.Deleted != nil && it.Deleted != *f.Deleted {
			continue
		}
		if f.Category != "" && it.Category != f.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(it.Name), search) {
			continue
		}
		out = append(out, clone(it))
	}
	return out, nil
}

func (s *ItemStore) Get(_ context.Context, id string) (*models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[id]
	if !ok {
		return nil, fridgedomain.ErrItemNotFound
	}
	return clone(it), nil
}

func (s *ItemStore) Create(_ context.Context, item *models.Item) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := clone(item)
	stored.ID = s.newID()
	stored.Status = nil
	if stored.Tags == nil {
		stored.Tags = []string{}
	}
	if _, exists := s.items[stored.ID]; exists {
		return nil, fridgedomain.ErrItemAlreadyExists
	}

	s.items[stored.ID] = stored
	s.order = append(s.order, stored.ID)
	return clone(stored), nil
}

func (s *ItemStore) Update(_ context.Context, id string, p repositories.Patch) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[id]
	if !ok {
		return nil, fridgedomain.ErrItemNotFound
	}
	p.Apply(it)
	return clone(it), nil
}

func (s *ItemStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return fridgedomain.ErrItemNotFound
	}
	delete(s.items, id)
	s.order = slices.DeleteFunc(s.order, func(v string) bool { return v == id })
	return nil
}

func (s *ItemStore) Ping(context.Context) error {
	return nil
}

func clone(it *models.Item) *models.Item {
	c := *it
	c.Tags = slices.Clone(it.Tags)
	if it.Threshold != nil {
		t := *it.Threshold
		c.Threshold = &t
	}
	c.Status = nil
	return &c
}
