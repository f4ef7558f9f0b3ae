package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/fridgepal/pkg/logger"
	"github.com/ghuser/fridgepal/pkg/telemetry"
	fridgedomain "github.com/ghuser/fridgepal/services/fridge/domain"
	"github.com/ghuser/fridgepal/services/fridge/domain/events"
	"github.com/ghuser/fridgepal/services/fridge/domain/models"
	"github.com/ghuser/fridgepal/services/fridge/domain/repositories"
	domainsvcs "github.com/ghuser/fridgepal/services/fridge/domain/services"
)

const instrumentationName = "github.com/ghuser/fridgepal/services/fridge"

// Publisher delivers domain events. *events.EventBus satisfies it.
type Publisher interface {
	PublishJSON(ctx context.Context, topic string, payload any) error
}

// Suggestions is the result of SuggestRecipes.
type Suggestions struct {
	AvailableIngredients []string
	Recipes              []models.Recipe
}

// SweepResult summarizes one expiry sweep.
type SweepResult struct {
	Checked  int `json:"checked"`
	Expiring int `json:"expiring"`
	Expired  int `json:"expired"`
}

// InventoryService implements the fridge inventory operations on top of a
// DocumentStore. Mutations publish events best-effort after the store write.
type InventoryService struct {
	store  repositories.DocumentStore
	events Publisher
	log    logger.Logger
	tracer trace.Tracer
	ops    metric.Int64Counter
	dur    metric.Float64Histogram
	now    func() time.Time
}

// NewInventoryService wires the service. pub may be nil to disable events.
func NewInventoryService(store repositories.DocumentStore, pub Publisher, log logger.Logger) *InventoryService {
	meter := otel.Meter(instrumentationName)
	ops, err := meter.Int64Counter(telemetry.OperationsMetric,
		metric.WithDescription("Inventory operations by name and outcome"),
		metric.WithUnit("{operation}"))
	if err != nil {
		log.Warn("failed to create inventory counter", "error", err)
	}
	dur, err := meter.Float64Histogram(telemetry.OperationDurationMetric,
		metric.WithDescription("Inventory operation latency by name and outcome"),
		metric.WithUnit("s"))
	if err != nil {
		log.Warn("failed to create inventory histogram", "error", err)
	}
	return &InventoryService{
		store:  store,
		events: pub,
		log:    log,
		tracer: otel.Tracer(instrumentationName),
		ops:    ops,
		dur:    dur,
		now:    time.Now,
	}
}

// ListActive returns non-trashed items in store order with their expiry
// status computed. Empty category or search means no constraint.
func (s *InventoryService) ListActive(ctx context.Context, category, search string) (items []*models.Item, err error) {
	ctx, end := s.begin(ctx, "list_active")
	defer func() { end(err) }()

	f := repositories.Active()
	f.Category = category
	f.Search = search

	stored, err := s.store.List(ctx, f)
	if err != nil {
		s.log.ErrorContext(ctx, "list items failed", "category", category, "search", search, "error", err)
		return nil, fmt.Errorf("list items: %w", err)
	}

	now := s.now()
	items = make([]*models.Item, len(stored))
	for i, it := range stored {
		items[i] = it.WithStatus(now)
	}
	return items, nil
}

// ListTrash returns trashed items. Status is left nil.
func (s *InventoryService) ListTrash(ctx context.Context) (items []*models.Item, err error) {
	ctx, end := s.begin(ctx, "list_trash")
	defer func() { end(err) }()

	items, err = s.store.List(ctx, repositories.Trashed())
	if err != nil {
		s.log.ErrorContext(ctx, "list trash failed", "error", err)
		return nil, fmt.Errorf("list trash: %w", err)
	}
	return items, nil
}

// Add validates item and creates it. The store assigns the id.
func (s *InventoryService) Add(ctx context.Context, item *models.Item) (created *models.Item, err error) {
	ctx, end := s.begin(ctx, "add")
	defer func() { end(err) }()

	if err := domainsvcs.ValidateItem(item); err != nil {
		return nil, fridgedomain.InvalidItem(err.Error())
	}

	in := *item
	in.ID = ""
	in.Status = nil
	in.ExpiryDate = in.ExpiryDate.UTC()
	if in.Tags == nil {
		in.Tags = []string{}
	}

	created, err = s.store.Create(ctx, &in)
	if err != nil {
		s.log.ErrorContext(ctx, "create item failed", "name", in.Name, "error", err)
		return nil, fmt.Errorf("create item: %w", err)
	}

	s.publish(ctx, events.TopicItemCreated, itemEvent(created, s.now()))
	return created, nil
}

// Update replaces every editable field of the item, including deleted.
func (s *InventoryService) Update(ctx context.Context, id string, item *models.Item) (updated *models.Item, err error) {
	ctx, end := s.begin(ctx, "update")
	defer func() { end(err) }()

	if err := domainsvcs.ValidateItem(item); err != nil {
		return nil, fridgedomain.InvalidItem(err.Error())
	}

	updated, err = s.store.Update(ctx, id, repositories.ReplacePatch(item))
	if err != nil {
		s.log.ErrorContext(ctx, "update failed", "item_id", id, "error", err)
		return nil, notFound(err)
	}

	s.publish(ctx, events.TopicItemUpdated, itemEvent(updated, s.now()))
	return updated, nil
}

// SoftDelete moves the item to the trash.
func (s *InventoryService) SoftDelete(ctx context.Context, id string) (err error) {
	ctx, end := s.begin(ctx, "soft_delete")
	defer func() { end(err) }()

	trashed, err := s.store.Update(ctx, id, repositories.DeletedPatch(true))
	if err != nil {
		s.log.ErrorContext(ctx, "soft delete failed", "item_id", id, "error", err)
		return notFound(err)
	}

	s.publish(ctx, events.TopicItemTrashed, itemEvent(trashed, s.now()))
	return nil
}

// Decrement subtracts amount from the item's quantity. A remainder at or
// below zero also moves the item to the trash. The read and the write are
// two separate store calls; concurrent decrements of one item can interleave.
func (s *InventoryService) Decrement(ctx context.Context, id string, amount float64) (updated *models.Item, err error) {
	ctx, end := s.begin(ctx, "decrement")
	defer func() { end(err) }()

	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, fridgedomain.InvalidItem("amount must be a finite number")
	}

	current, err := s.store.Get(ctx, id)
	if err != nil {
		s.log.ErrorContext(ctx, "decrement read failed", "item_id", id, "error", err)
		return nil, notFound(err)
	}

	remaining, trash := domainsvcs.ApplyDecrement(current.Quantity, amount)
	updated, err = s.store.Update(ctx, id, repositories.QuantityPatch(remaining, trash))
	if err != nil {
		s.log.ErrorContext(ctx, "decrement failed", "item_id", id, "amount", amount, "error", err)
		return nil, notFound(err)
	}

	now := s.now()
	switch {
	case trash:
		s.publish(ctx, events.TopicItemTrashed, itemEvent(updated, now))
	case !updated.Deleted && updated.IsLowStock():
		s.publish(ctx, events.TopicItemLowStock, itemEvent(updated, now))
	default:
		s.publish(ctx, events.TopicItemUpdated, itemEvent(updated, now))
	}
	return updated, nil
}

// LowStock returns active items whose quantity is at or below their threshold.
func (s *InventoryService) LowStock(ctx context.Context) (low []*models.Item, err error) {
	ctx, end := s.begin(ctx, "low_stock")
	defer func() { end(err) }()

	items, err := s.store.List(ctx, repositories.Active())
	if err != nil {
		s.log.ErrorContext(ctx, "low stock query failed", "error", err)
		return nil, fmt.Errorf("list items: %w", err)
	}

	low = make([]*models.Item, 0, len(items))
	for _, it := range items {
		if it.IsLowStock() {
			low = append(low, it)
		}
	}
	return low, nil
}

// SuggestRecipes normalizes the names of active items and returns every
// catalog recipe whose ingredients are all available.
func (s *InventoryService) SuggestRecipes(ctx context.Context) (out *Suggestions, err error) {
	ctx, end := s.begin(ctx, "suggest_recipes")
	defer func() { end(err) }()

	items, err := s.store.List(ctx, repositories.Active())
	if err != nil {
		s.log.ErrorContext(ctx, "recipe suggestion failed", "error", err)
		return nil, fmt.Errorf("%w: %w", fridgedomain.ErrSuggestionFailed, err)
	}

	available := domainsvcs.NormalizeIngredients(items)
	return &Suggestions{
		AvailableIngredients: available,
		Recipes:              domainsvcs.MatchRecipes(available),
	}, nil
}

// Restore takes the item out of the trash.
func (s *InventoryService) Restore(ctx context.Context, id string) (restored *models.Item, err error) {
	ctx, end := s.begin(ctx, "restore")
	defer func() { end(err) }()

	restored, err = s.store.Update(ctx, id, repositories.DeletedPatch(false))
	if err != nil {
		s.log.ErrorContext(ctx, "restore failed", "item_id", id, "error", err)
		return nil, notFound(err)
	}

	s.publish(ctx, events.TopicItemRestored, itemEvent(restored, s.now()))
	return restored, nil
}

// PermanentDelete removes the item from the store. It cannot be undone.
func (s *InventoryService) PermanentDelete(ctx context.Context, id string) (err error) {
	ctx, end := s.begin(ctx, "permanent_delete")
	defer func() { end(err) }()

	if err := s.store.Delete(ctx, id); err != nil {
		s.log.ErrorContext(ctx, "permanent delete failed", "item_id", id, "error", err)
		return notFound(err)
	}

	evt := events.NewItemEvent(id, "", s.now())
	s.publish(ctx, events.TopicItemPurged, evt)
	return nil
}

// SweepExpiry classifies every active item and publishes an expiring event
// for each item that is expiring or already expired.
func (s *InventoryService) SweepExpiry(ctx context.Context) (res SweepResult, err error) {
	ctx, end := s.begin(ctx, "sweep_expiry")
	defer func() { end(err) }()

	items, err := s.store.List(ctx, repositories.Active())
	if err != nil {
		s.log.ErrorContext(ctx, "expiry sweep failed", "error", err)
		return SweepResult{}, fmt.Errorf("list items: %w", err)
	}

	now := s.now()
	for _, it := range items {
		res.Checked++
		status := models.ClassifyExpiry(it.ExpiryDate, now)
		switch status {
		case models.StatusExpiring:
			res.Expiring++
		case models.StatusExpired:
			res.Expired++
		default:
			continue
		}
		evt := itemEvent(it, now)
		evt.Status = string(status)
		s.publish(ctx, events.TopicItemExpiring, evt)
	}

	s.log.InfoContext(ctx, "expiry sweep finished",
		"checked", res.Checked, "expiring", res.Expiring, "expired", res.Expired)
	return res, nil
}

// Ping reports whether the backing store is reachable.
func (s *InventoryService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// begin starts a span for op and returns a func that records the outcome.
func (s *InventoryService) begin(ctx context.Context, op string) (context.Context, func(error)) {
	ctx, span := s.tracer.Start(ctx, "inventory."+op)
	start := time.Now()
	return ctx, func(err error) {
		outcome := "ok"
		if err != nil {
			outcome = "error"
			span.RecordError(err)
		}
		attrs := metric.WithAttributes(
			attribute.String("operation", op),
			attribute.String("outcome", outcome),
		)
		if s.ops != nil {
			s.ops.Add(ctx, 1, attrs)
		}
		if s.dur != nil {
			s.dur.Record(ctx, time.Since(start).Seconds(), attrs)
		}
		span.End()
	}
}

func (s *InventoryService) publish(ctx context.Context, topic string, evt events.ItemEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishJSON(ctx, topic, evt); err != nil {
		s.log.WarnContext(ctx, "event publish failed", "topic", topic, "item_id", evt.ItemID, "error", err)
	}
}

// notFound collapses a mutation failure into ErrItemNotFound, keeping the
// cause in the chain for logs.
func notFound(err error) error {
	if err == fridgedomain.ErrItemNotFound { //nolint:errorlint // exact sentinel needs no extra wrap
		return err
	}
	return fmt.Errorf("%w: %w", fridgedomain.ErrItemNotFound, err)
}

func itemEvent(it *models.Item, now time.Time) events.ItemEvent {
	evt := events.NewItemEvent(it.ID, it.Name, now)
	q := it.Quantity
	evt.Quantity = &q
	if it.Threshold != nil {
		t := *it.Threshold
		evt.Threshold = &t
	}
	expiry := it.ExpiryDate.UTC()
	evt.ExpiryDate = &expiry
	return evt
}
