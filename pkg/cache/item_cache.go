package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// ListCacheTTL bounds how long an item list may be served from Redis
	// after a write the cache did not observe.
	ListCacheTTL = 5 * time.Minute

	listCacheKeyPrefix = "fridge:items"
	generationKey      = listCacheKeyPrefix + ":gen"
)

// ErrCacheMiss is returned by Get when the key does not exist or has expired.
var ErrCacheMiss = errors.New("cache miss")

// CachedItem is the read model of a fridge item stored in a cached list.
// Threshold is nil when the item has none.
type CachedItem struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Quantity   float64   `json:"quantity"`
	Unit       string    `json:"unit"`
	Category   string    `json:"category"`
	Tags       []string  `json:"tags"`
	ExpiryDate time.Time `json:"expiry_date"`
	Threshold  *float64  `json:"threshold,omitempty"`
	Deleted    bool      `json:"deleted"`
}

// ListCache stores filtered item lists under a generation counter.
// Invalidate bumps the generation so every list written before it is
// unreachable and left to expire.
// Key format: "fridge:items:{generation}:{filter}"
type ListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListCache creates a ListCache backed by the given RedisClient.
func NewListCache(r *RedisClient) *ListCache {
	return &ListCache{client: r.Client(), ttl: ListCacheTTL}
}

// Generation returns the current list generation; zero when never bumped.
func (c *ListCache) Generation(ctx context.Context) (int64, error) {
	raw, err := c.client.Get(ctx, generationKey).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("cache generation: %w", err)
	}
	gen, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("cache parse generation: %w", err)
	}
	return gen, nil
}

// Get returns the list cached for filter at gen. Returns ErrCacheMiss when absent.
func (c *ListCache) Get(ctx context.Context, gen int64, filter string) ([]CachedItem, error) {
	raw, err := c.client.Get(ctx, ListKey(gen, filter)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	return decodeList(raw)
}

// Set stores items for filter at gen with the cache TTL.
func (c *ListCache) Set(ctx context.Context, gen int64, filter string, items []CachedItem) error {
	raw, err := encodeList(items)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, ListKey(gen, filter), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate bumps the generation.
func (c *ListCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

// ListKey builds the Redis key of a filtered list.
func ListKey(gen int64, filter string) string {
	return listCacheKeyPrefix + ":" + strconv.FormatInt(gen, 10) + ":" + filter
}

func encodeList(items []CachedItem) ([]byte, error) {
	if items == nil {
		items = []CachedItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("cache encode list: %w", err)
	}
	return raw, nil
}

func decodeList(raw []byte) ([]CachedItem, error) {
	items := []CachedItem{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("cache parse list: %w", err)
	}
	for i := range items {
		items[i].ExpiryDate = items[i].ExpiryDate.UTC()
		if items[i].Tags == nil {
			items[i].Tags = []string{}
		}
	}
	return items, nil
}
