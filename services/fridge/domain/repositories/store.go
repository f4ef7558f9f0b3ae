package repositories

import (
	"context"
	"slices"
	"time"

	"github.com/ghuser/fridgepal/services/fridge/domain/models"
)

// Filter narrows a List call. Zero values mean "no constraint".
type Filter struct {
	Deleted  *bool  // match the soft-delete flag when set
	Category string // exact category match
	Search   string // case-insensitive substring of the name
}

// Active returns the filter for items that are not in the trash.
func Active() Filter {
	deleted := false
	return Filter{Deleted: &deleted}
}

// Trashed returns the filter for items in the trash.
func Trashed() Filter {
	deleted := true
	return Filter{Deleted: &deleted}
}

// Patch is a partial document update. Nil fields are left untouched.
type Patch struct {
	Name       *string
	Quantity   *float64
	Unit       *string
	Category   *string
	Tags       *[]string
	ExpiryDate *time.Time
	Threshold  *float64
	Deleted    *bool
}

// ReplacePatch sets every editable field of item. ID and Status are not editable.
func ReplacePatch(item *models.Item) Patch {
	tags := slices.Clone(item.Tags)
	if tags == nil {
		tags = []string{}
	}
	name, quantity, unit, category := item.Name, item.Quantity, item.Unit, item.Category
	expiry := item.ExpiryDate.UTC()
	deleted := item.Deleted
	p := Patch{
		Name:       &name,
		Quantity:   &quantity,
		Unit:       &unit,
		Category:   &category,
		Tags:       &tags,
		ExpiryDate: &expiry,
		Deleted:    &deleted,
	}
	if item.Threshold != nil {
		threshold := *item.Threshold
		p.Threshold = &threshold
	}
	return p
}

// DeletedPatch flips the soft-delete flag.
func DeletedPatch(deleted bool) Patch {
	return Patch{Deleted: &deleted}
}

// QuantityPatch sets the quantity and, when trash is true, also moves the
// item to the trash.
func QuantityPatch(quantity float64, trash bool) Patch {
	p := Patch{Quantity: &quantity}
	if trash {
		deleted := true
		p.Deleted = &deleted
	}
	return p
}

// Apply writes the set fields of p onto item.
func (p Patch) Apply(item *models.Item) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
	if p.Unit != nil {
		item.Unit = *p.Unit
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Tags != nil {
		item.Tags = slices.Clone(*p.Tags)
	}
	if p.ExpiryDate != nil {
		item.ExpiryDate = p.ExpiryDate.UTC()
	}
	if p.Threshold != nil {
		threshold := *p.Threshold
		item.Threshold = &threshold
	}
	if p.Deleted != nil {
		item.Deleted = *p.Deleted
	}
}

// DocumentStore is the persistence interface for fridge items. The domain
// layer owns this interface; infrastructure implements it against a
// document database.
//
// Get, Update and Delete return domain.ErrItemNotFound for unknown ids.
type DocumentStore interface {
	// List returns items matching f in the store's natural order.
	List(ctx context.Context, f Filter) ([]*models.Item, error)
	Get(ctx context.Context, id string) (*models.Item, error)

	// Create persists item and returns it with the store-assigned ID.
	Create(ctx context.Context, item *models.Item) (*models.Item, error)

	// Update applies p to the item and returns the stored result.
	Update(ctx context.Context, id string, p Patch) (*models.Item, error)

	// Delete removes the item permanently.
	Delete(ctx context.Context, id string) error

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}
