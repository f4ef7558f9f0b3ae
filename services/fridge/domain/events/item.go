package events

import (
	"time"

	"github.com/google/uuid"
)

// Topics published by the inventory service. Consumers subscribe via
// EventBus.Subscribe(ctx, events.TopicItemTrashed, ...).
const (
	TopicItemCreated  = "fridge.item.created"
	TopicItemUpdated  = "fridge.item.updated"
	TopicItemTrashed  = "fridge.item.trashed"
	TopicItemRestored = "fridge.item.restored"
	TopicItemPurged   = "fridge.item.purged"
	TopicItemLowStock = "fridge.item.low_stock"
	TopicItemExpiring = "fridge.item.expiring"
)

// CurrentVersion is the schema version stamped on every ItemEvent.
const CurrentVersion = 1

// ItemEvent is the payload of every fridge item topic. Quantity, Threshold,
// Status and ExpiryDate are filled where the topic makes them meaningful.
type ItemEvent struct {
	EventID    uuid.UUID  `json:"event_id"` // unique per publish, for deduplication
	Version    int        `json:"version"`
	ItemID     string     `json:"item_id"`
	Name       string     `json:"name"`
	Quantity   *float64   `json:"quantity,omitempty"`
	Threshold  *float64   `json:"threshold,omitempty"`
	Status     string     `json:"status,omitempty"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// NewItemEvent stamps a fresh event id, the current version and occurredAt.
func NewItemEvent(itemID, name string, occurredAt time.Time) ItemEvent {
	return ItemEvent{
		EventID:    uuid.New(),
		Version:    CurrentVersion,
		ItemID:     itemID,
		Name:       name,
		OccurredAt: occurredAt.UTC(),
	}
}
