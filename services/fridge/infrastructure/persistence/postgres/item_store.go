package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/fridgepal/pkg/database"
	fridgedomain "github.com/ghuser/fridgepal/services/fridge/domain"
	"github.com/ghuser/fridgepal/services/fridge/domain/models"
	"github.com/ghuser/fridgepal/services/fridge/domain/repositories"
)

const itemColumns = `id, name, quantity, unit, category, tags, expiry_date, threshold, deleted`

const (
	listItemsSQL = `SELECT ` + itemColumns + `
FROM fridge_items
WHERE ($1::boolean IS NULL OR deleted = $1)
  AND ($2::text = '' OR category = $2)
  AND ($3::text = '' OR name ILIKE '%' || $3 || '%' ESCAPE '\')
ORDER BY created_at, id`

	getItemSQL = `SELECT ` + itemColumns + ` FROM fridge_items WHERE id = $1`

	insertItemSQL = `INSERT INTO fridge_items (id, name, quantity, unit, category, tags, expiry_date, threshold, deleted)
VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7, $8, $9)
RETURNING ` + itemColumns

	updateItemSQL = `UPDATE fridge_items SET
    name        = COALESCE($2::text, name),
    quantity    = COALESCE($3::double precision, quantity),
    unit        = COALESCE($4::text, unit),
    category    = COALESCE($5::text, category),
    tags        = COALESCE($6::jsonb, tags),
    expiry_date = COALESCE($7::timestamptz, expiry_date),
    threshold   = COALESCE($8::double precision, threshold),
    deleted     = COALESCE($9::boolean, deleted),
    updated_at  = now()
WHERE id = $1
RETURNING ` + itemColumns

	deleteItemSQL = `DELETE FROM fridge_items WHERE id = $1`
)

// Postgres error codes mapped to domain errors.
const (
	pgUniqueViolation = "23505"
	pgInvalidText     = "22P02"
)

// ItemStore implements repositories.DocumentStore on the fridge_items table.
type ItemStore struct {
	db *database.Database
}

// NewItemStore returns an ItemStore backed by the given connection pool.
func NewItemStore(db *database.Database) *ItemStore {
	return &ItemStore{db: db}
}

// List returns items matching f ordered by creation time.
func (s *ItemStore) List(ctx context.Context, f repositories.Filter) ([]*models.Item, error) {
	var deleted sql.NullBool
	if f.Deleted != nil {
		deleted = sql.NullBool{Bool: *f.Deleted, Valid: true}
	}

	rows, err := s.db.DB().QueryContext(ctx, listItemsSQL, deleted, f.Category, escapeLike(f.Search))
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	items := make([]*models.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

// Get retrieves an item by id. Returns ErrItemNotFound if not found.
func (s *ItemStore) Get(ctx context.Context, id string) (*models.Item, error) {
	it, err := scanItem(s.db.DB().QueryRowContext(ctx, getItemSQL, id))
	if err != nil {
		return nil, mapError("get item", err)
	}
	return it, nil
}

// Create inserts item under a new UUID.
func (s *ItemStore) Create(ctx context.Context, item *models.Item) (*models.Item, error) {
	tags, err := marshalTags(item.Tags)
	if err != nil {
		return nil, err
	}

	row := s.db.DB().QueryRowContext(ctx, insertItemSQL,
		uuid.NewString(),
		item.Name,
		item.Quantity,
		item.Unit,
		item.Category,
		tags,
		item.ExpiryDate.UTC(),
		nullFloat(item.Threshold),
		item.Deleted,
	)
	created, err := scanItem(row)
	if err != nil {
		return nil, mapError("insert item", err)
	}
	return created, nil
}

// Update applies the set fields of p in a single statement.
func (s *ItemStore) Update(ctx context.Context, id string, p repositories.Patch) (*models.Item, error) {
	var tags sql.NullString
	if p.Tags != nil {
		raw, err := marshalTags(*p.Tags)
		if err != nil {
			return nil, err
		}
		tags = sql.NullString{String: raw, Valid: true}
	}

	var expiry sql.NullTime
	if p.ExpiryDate != nil {
		expiry = sql.NullTime{Time: p.ExpiryDate.UTC(), Valid: true}
	}

	row := s.db.DB().QueryRowContext(ctx, updateItemSQL,
		id,
		nullString(p.Name),
		nullFloat(p.Quantity),
		nullString(p.Unit),
		nullString(p.Category),
		tags,
		expiry,
		nullFloat(p.Threshold),
		nullBool(p.Deleted),
	)
	updated, err := scanItem(row)
	if err != nil {
		return nil, mapError("update item", err)
	}
	return updated, nil
}

// Delete removes an item permanently.
func (s *ItemStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.DB().ExecContext(ctx, deleteItemSQL, id)
	if err != nil {
		return mapError("delete item", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if n == 0 {
		return fridgedomain.ErrItemNotFound
	}
	return nil
}

// Ping checks the database connection health.
func (s *ItemStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*models.Item, error) {
	var (
		it        models.Item
		tags      []byte
		expiry    time.Time
		threshold sql.NullFloat64
	)
	if err := row.Scan(
		&it.ID, &it.Name, &it.Quantity, &it.Unit, &it.Category,
		&tags, &expiry, &threshold, &it.Deleted,
	); err != nil {
		return nil, err
	}

	it.Tags = []string{}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &it.Tags); err != nil {
			return nil, fmt.Errorf("decode tags of %s: %w", it.ID, err)
		}
	}
	it.ExpiryDate = expiry.UTC()
	if threshold.Valid {
		v := threshold.Float64
		it.Threshold = &v
	}
	return &it, nil
}

// mapError translates driver errors into domain errors.
func mapError(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fridgedomain.ErrItemNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fridgedomain.ErrItemAlreadyExists
		case pgInvalidText:
			return fmt.Errorf("%s: %w: %s", op, fridgedomain.ErrInvalidItem, pgErr.Message)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// escapeLike escapes LIKE wildcards so search terms match literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func marshalTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encode tags: %w", err)
	}
	return string(raw), nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func nullBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}
