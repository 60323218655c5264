package poquery

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// MaxListLimit caps unpaginated listings to prevent huge responses.
const MaxListLimit = 1000

// Query is one pagination request after boundary validation: a pure value,
// so every Paginate call is a function of (Query, store contents) only.
type Query struct {
	Filter    Filter
	SortBy    string
	SortOrder string
	// Cursor is the encoded token from the previous page's meta, or empty
	// for the first page.
	Cursor   string
	PageSize int
}

// Meta is the pagination metadata accompanying one page.
type Meta struct {
	// Cursor is the token for the next page; nil when HasNext is false.
	Cursor  *string `json:"cursor"`
	HasNext bool    `json:"has_next"`
	// HasPrev reports whether a cursor was supplied on THIS request. It is
	// a presence check, not a lookbehind: it cannot detect that the first
	// page was also the only page.
	HasPrev  bool `json:"has_prev"`
	PageSize int  `json:"page_size"`
}

// Page is one bounded batch of query results plus continuation metadata.
type Page struct {
	Data []PurchaseOrder `json:"data"`
	Meta Meta            `json:"meta"`
}

// Engine orchestrates filtering, sorting and cursor continuation into
// single-round-trip page reads. It holds only the injected store handle:
// no shared mutable state, safe for concurrent use.
type Engine struct {
	db *gorm.DB
}

func NewEngine(db *gorm.DB) *Engine {
	return &Engine{db: db}
}

// Paginate returns one page of purchase orders for q.
//
// The read fetches PageSize+1 rows under the resolved ordering; the extra
// row only signals that a next page exists and is trimmed before returning.
// A supplied cursor that fails to decode is rejected with ErrInvalidCursor.
// Store failures surface unchanged: either a full valid page or an error,
// never a partial page.
func (e *Engine) Paginate(ctx context.Context, q Query) (*Page, error) {
	if e == nil || e.db == nil {
		return nil, fmt.Errorf("cannot paginate: nil engine")
	}

	size := NormalizePageSize(q.PageSize)
	key, dir := ResolveSort(q.SortBy, q.SortOrder)
	orderings := key.Orderings(dir)
	if err := orderings.validate(); err != nil {
		return nil, fmt.Errorf("cannot paginate: %w", err)
	}

	cursor, err := DecodeCursor(q.Cursor)
	if err != nil {
		return nil, err
	}

	db := e.db.WithContext(ctx).Model(&PurchaseOrder{})
	db = q.Filter.Apply(db)
	db = orderings.Apply(db)
	db = cursor.Apply(db, dir)

	// Fetch one extra record to determine whether there is a next page.
	var rows []PurchaseOrder
	if err := db.Limit(size + 1).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetch purchase orders page: %w", err)
	}

	hasNext := len(rows) > size
	if hasNext {
		rows = rows[:size]
	}

	meta := Meta{
		HasNext:  hasNext,
		HasPrev:  !cursor.IsEmpty(),
		PageSize: size,
	}
	if hasNext && len(rows) > 0 {
		token := NewCursor(rows[len(rows)-1], key).String()
		meta.Cursor = &token
	}

	return &Page{Data: rows, Meta: meta}, nil
}

// Get returns a single purchase order by id. A missing row yields an error
// wrapping ErrNotFound.
func (e *Engine) Get(ctx context.Context, id uint) (*PurchaseOrder, error) {
	if e == nil || e.db == nil {
		return nil, fmt.Errorf("cannot get purchase order: nil engine")
	}

	var order PurchaseOrder
	err := e.db.WithContext(ctx).First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	} else if err != nil {
		return nil, fmt.Errorf("fetch purchase order %d: %w", id, err)
	}

	return &order, nil
}

// List returns up to limit purchase orders in id order without pagination
// metadata. Non-positive or oversized limits take MaxListLimit.
func (e *Engine) List(ctx context.Context, limit int) ([]PurchaseOrder, error) {
	if e == nil || e.db == nil {
		return nil, fmt.Errorf("cannot list purchase orders: nil engine")
	}

	if limit <= 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}

	var rows []PurchaseOrder
	err := e.db.WithContext(ctx).
		Order("id ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}

	return rows, nil
}
