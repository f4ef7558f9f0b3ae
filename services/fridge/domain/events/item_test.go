package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/fridgepal/services/fridge/domain/events"
)

func TestNewItemEvent(t *testing.T) {
	at := time.Date(2025, 1, 15, 13, 0, 0, 0, time.FixedZone("CET", 3600))
	evt := events.NewItemEvent("abc", "Milk", at)

	if evt.EventID == uuid.Nil {
		t.Error("expected non-nil EventID")
	}
	if evt.Version != events.CurrentVersion {
		t.Errorf("Version: got %d, want %d", evt.Version, events.CurrentVersion)
	}
	if evt.ItemID != "abc" || evt.Name != "Milk" {
		t.Errorf("unexpected ids: %+v", evt)
	}
	if !evt.OccurredAt.Equal(at) || evt.OccurredAt.Location() != time.UTC {
		t.Errorf("OccurredAt must be the same instant in UTC, got %v", evt.OccurredAt)
	}

	other := events.NewItemEvent("abc", "Milk", at)
	if other.EventID == evt.EventID {
		t.Error("expected unique event ids")
	}
}

func TestItemEvent_JSONFieldNames(t *testing.T) {
	q := 0.5
	evt := events.NewItemEvent("abc", "Milk", time.Now())
	evt.Quantity = &q

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "item_id", "name", "quantity", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
	for _, field := range []string{"threshold", "status", "expiry_date"} {
		if _, ok := raw[field]; ok {
			t.Errorf("unset field %q must be omitted: %s", field, data)
		}
	}
}

func TestTopics_AreDistinct(t *testing.T) {
	topics := []string{
		events.TopicItemCreated, events.TopicItemUpdated, events.TopicItemTrashed,
		events.TopicItemRestored, events.TopicItemPurged, events.TopicItemLowStock,
		events.TopicItemExpiring,
	}
	seen := make(map[string]bool, len(topics))
	for _, topic := range topics {
		if topic == "" {
			t.Fatal("topic must not be empty")
		}
		if seen[topic] {
			t.Fatalf("duplicate topic %q", topic)
		}
		seen[topic] = true
	}
}
