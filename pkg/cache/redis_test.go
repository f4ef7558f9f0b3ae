package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"
)

func TestNewRedisClient_InvalidURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "not-a-valid-url")
	if err == nil {
		t.Fatal("expected error for invalid URL, got nil")
	}
}

func TestNewRedisClient_UnreachableHost(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "redis://localhost:19999")
	if err == nil {
		t.Fatal("expected error when Redis is unreachable, got nil")
	}
}

func TestListKey(t *testing.T) {
	if got := ListKey(7, "active"); got != "fridge:items:7:active" {
		t.Fatalf("ListKey() = %q", got)
	}
}

func TestEncodeDecodeList(t *testing.T) {
	threshold := 1.5
	tests := []struct {
		name  string
		items []CachedItem
	}{
		{"with threshold and tags", []CachedItem{{
			ID: "a1", Name: "Milk", Quantity: 2.25, Unit: "L", Category: "Dairy",
			Tags: []string{"organic"}, ExpiryDate: time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC),
			Threshold: &threshold,
		}}},
		{"no threshold, trashed", []CachedItem{{
			ID: "b2", Name: "Eggs", Quantity: 0, Unit: "pcs", Category: "Dairy",
			ExpiryDate: time.Date(2029, 12, 31, 0, 0, 0, 0, time.UTC), Deleted: true,
		}}},
		{"empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := encodeList(tt.items)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			got, err := decodeList(raw)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got == nil || len(got) != len(tt.items) {
				t.Fatalf("got %d items, want %d", len(got), len(tt.items))
			}
			for i, want := range tt.items {
				g := got[i]
				if g.ID != want.ID || g.Quantity != want.Quantity || g.Deleted != want.Deleted {
					t.Fatalf("got %+v, want %+v", g, want)
				}
				if !g.ExpiryDate.Equal(want.ExpiryDate) {
					t.Fatalf("expiry = %v, want %v", g.ExpiryDate, want.ExpiryDate)
				}
				if (g.Threshold == nil) != (want.Threshold == nil) {
					t.Fatalf("threshold = %v, want %v", g.Threshold, want.Threshold)
				}
				if g.Tags == nil {
					t.Fatal("expected non-nil tags")
				}
			}
		})
	}
}

func TestDecodeList_Corrupt(t *testing.T) {
	if _, err := decodeList([]byte(`{"id":`)); err == nil {
		t.Fatal("expected error for corrupt list")
	}
}

// Integration tests, skipped unless REDIS_URL is set.
func TestRedisIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}
	ctx := context.Background()

	rc, err := NewRedisClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close() //nolint:errcheck

	t.Run("Ping_Success", func(t *testing.T) {
		if err := rc.Ping(ctx); err != nil {
			t.Fatalf("Ping failed: %v", err)
		}
	})

	t.Run("ListCache_RoundTrip", func(t *testing.T) {
		c := NewListCache(rc)
		filter := "test-" + time.Now().Format("150405.000000")

		gen, err := c.Generation(ctx)
		if err != nil {
			t.Fatalf("generation: %v", err)
		}
		items := []CachedItem{{
			ID: "it-1", Name: "Milk", Quantity: 1, Unit: "L", Category: "Dairy",
			ExpiryDate: time.Now().UTC().Truncate(time.Second),
		}}
		if err := c.Set(ctx, gen, filter, items); err != nil {
			t.Fatalf("set: %v", err)
		}
		got, err := c.Get(ctx, gen, filter)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if len(got) != 1 || got[0].Name != "Milk" {
			t.Fatalf("got %+v", got)
		}

		if err := c.Invalidate(ctx); err != nil {
			t.Fatalf("invalidate: %v", err)
		}
		next, err := c.Generation(ctx)
		if err != nil {
			t.Fatalf("generation: %v", err)
		}
		if next <= gen {
			t.Fatalf("generation = %d, want > %d", next, gen)
		}
		if _, err := c.Get(ctx, next, filter); !errors.Is(err, ErrCacheMiss) {
			t.Fatalf("expected ErrCacheMiss, got %v", err)
		}
	})
}
