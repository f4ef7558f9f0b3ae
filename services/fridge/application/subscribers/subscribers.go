// Package subscribers holds the worker's handlers for fridge domain events.
package subscribers

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/fridgepal/pkg/logger"
	"github.com/ghuser/fridgepal/services/fridge/domain/events"
)

// Handler processes one message. Returning an error makes the bus retry it.
type Handler func(context.Context, *message.Message) error

// Subscriber is the subscribe side of the event bus. *events.EventBus
// satisfies it.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler func(context.Context, *message.Message) error) (<-chan error, error)
}

// Invalidator drops every cached item list. *cache.ListCache satisfies it.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// Handlers builds the topic handlers of the worker.
type Handlers struct {
	cache Invalidator
	log   logger.Logger
}

// New returns Handlers. cache may be nil when Redis is not configured; the
// invalidation handlers are then left out of Routes. They cover writes made
// by API instances that publish events but run without Redis.
func New(cache Invalidator, log logger.Logger) *Handlers {
	return &Handlers{cache: cache, log: log}
}

// Routes maps every subscribed topic to its handler.
func (h *Handlers) Routes() map[string]Handler {
	routes := map[string]Handler{
		events.TopicItemLowStock: h.alert("low stock alert"),
		events.TopicItemExpiring: h.alert("expiry alert"),
	}
	if h.cache != nil {
		for _, topic := range []string{
			events.TopicItemCreated,
			events.TopicItemUpdated,
			events.TopicItemTrashed,
			events.TopicItemRestored,
			events.TopicItemPurged,
		} {
			routes[topic] = h.invalidate
		}
	}
	return routes
}

// alert writes a structured alert line for the event.
func (h *Handlers) alert(msg string) Handler {
	return func(ctx context.Context, m *message.Message) error {
		evt, ok := h.decode(ctx, m)
		if !ok {
			return nil
		}
		args := []any{"item_id", evt.ItemID, "name", evt.Name, "event_id", evt.EventID}
		if evt.Quantity != nil {
			args = append(args, "quantity", *evt.Quantity)
		}
		if evt.Threshold != nil {
			args = append(args, "threshold", *evt.Threshold)
		}
		if evt.Status != "" {
			args = append(args, "status", evt.Status)
		}
		if evt.ExpiryDate != nil {
			args = append(args, "expiry_date", evt.ExpiryDate.Format("2006-01-02"))
		}
		h.log.WarnContext(ctx, msg, args...)
		return nil
	}
}

// invalidate bumps the list cache generation. Redelivery only costs an
// extra refetch.
func (h *Handlers) invalidate(ctx context.Context, m *message.Message) error {
	evt, ok := h.decode(ctx, m)
	if !ok {
		return nil
	}
	if err := h.cache.Invalidate(ctx); err != nil {
		return fmt.Errorf("invalidate lists for item %s: %w", evt.ItemID, err)
	}
	h.log.DebugContext(ctx, "item lists invalidated", "item_id", evt.ItemID)
	return nil
}

// decode parses the payload. Malformed messages are logged and acked, since
// retrying them cannot succeed.
func (h *Handlers) decode(ctx context.Context, m *message.Message) (events.ItemEvent, bool) {
	var evt events.ItemEvent
	if err := json.Unmarshal(m.Payload, &evt); err != nil {
		h.log.ErrorContext(ctx, "dropping malformed event", "message_uuid", m.UUID, "error", err)
		return evt, false
	}
	if evt.ItemID == "" {
		h.log.ErrorContext(ctx, "dropping event without item_id", "message_uuid", m.UUID)
		return evt, false
	}
	return evt, true
}

// Register subscribes every route on sub and drains each error channel into
// the log until it is closed.
func Register(ctx context.Context, sub Subscriber, routes map[string]Handler, log logger.Logger) error {
	topics := make([]string, 0, len(routes))
	for topic := range routes {
		topics = append(topics, topic)
	}
	slices.Sort(topics)

	for _, topic := range topics {
		errCh, err := sub.Subscribe(ctx, topic, routes[topic])
		if err != nil {
			return err
		}
		go func() {
			for err := range errCh {
				log.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}()
	}

	log.Info("event subscribers registered", "topics", topics)
	return nil
}
