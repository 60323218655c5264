package poquery

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Request is the transport-agnostic parameter bag for the query operation.
// It is intended for API payloads; all fields are optional. For proper code
// generation, inline it:
//
//	type ListOrdersRequest struct {
//	    poquery.Request `json:",inline"`
//	}
//
// Request is the strict boundary: Decode rejects out-of-range and
// unrecognized values with ErrInvalidParameter before anything reaches the
// engine, which is deliberately lenient (unknown sort keys fall back to id
// there).
type Request struct {
	Cursor    string `json:"cursor,omitempty"`
	PageSize  int    `json:"page_size,omitempty"`
	SortBy    string `json:"sort_by,omitempty"`
	SortOrder string `json:"sort_order,omitempty"`

	Search   string `json:"search,omitempty"`
	Status   string `json:"status,omitempty"`
	Category string `json:"category,omitempty"`
	Vendor   string `json:"vendor,omitempty"`

	MinPrice *float64 `json:"min_price,omitempty"`
	MaxPrice *float64 `json:"max_price,omitempty"`

	// Dates are calendar days in "2006-01-02" form.
	MinDate string `json:"min_date,omitempty"`
	MaxDate string `json:"max_date,omitempty"`
}

// Validate applies strict boundary validation. Every violation wraps
// ErrInvalidParameter.
func (r Request) Validate() error {
	if r.PageSize != 0 {
		if _, ok := IsNormalizedPageSize(r.PageSize, MaxPageSize); !ok {
			return fmt.Errorf("%w: page_size must be between %d and %d", ErrInvalidParameter, MinPageSize, MaxPageSize)
		}
	}

	if r.SortBy != "" {
		if _, ok := ParseSortKey(r.SortBy); !ok {
			return fmt.Errorf("%w: unknown sort_by '%s'. closest: '%s'", ErrInvalidParameter, r.SortBy, closestSortKey(r.SortBy))
		}
	}

	if r.SortOrder != "" &&
		!strings.EqualFold(r.SortOrder, "asc") &&
		!strings.EqualFold(r.SortOrder, "desc") {
		return fmt.Errorf("%w: sort_order must be 'asc' or 'desc'", ErrInvalidParameter)
	}

	if r.Status != "" && !Status(r.Status).Valid() {
		return fmt.Errorf("%w: unknown status '%s'", ErrInvalidParameter, r.Status)
	}

	if r.MinPrice != nil && *r.MinPrice < 0 {
		return fmt.Errorf("%w: min_price must be non-negative", ErrInvalidParameter)
	}
	if r.MaxPrice != nil && *r.MaxPrice < 0 {
		return fmt.Errorf("%w: max_price must be non-negative", ErrInvalidParameter)
	}

	for _, date := range []struct{ name, value string }{
		{"min_date", r.MinDate},
		{"max_date", r.MaxDate},
	} {
		if date.value == "" {
			continue
		}
		if _, err := time.Parse(time.DateOnly, date.value); err != nil {
			return fmt.Errorf("%w: %s must be a '2006-01-02' date", ErrInvalidParameter, date.name)
		}
	}

	return nil
}

// Decode validates the request and converts it into an engine Query.
func (r Request) Decode() (Query, error) {
	if err := r.Validate(); err != nil {
		return Query{}, err
	}

	return Query{
		Filter: Filter{
			Search:   r.Search,
			Status:   Status(r.Status),
			Category: r.Category,
			Vendor:   r.Vendor,
			MinPrice: r.MinPrice,
			MaxPrice: r.MaxPrice,
			MinDate:  parseDate(r.MinDate),
			MaxDate:  parseDate(r.MaxDate),
		},
		SortBy:    r.SortBy,
		SortOrder: r.SortOrder,
		Cursor:    r.Cursor,
		PageSize:  r.PageSize,
	}, nil
}

// parseDate assumes Validate already ran; malformed input degrades to nil.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil
	}

	return lo.ToPtr(t)
}

// closestSortKey suggests the supported sort key nearest to input by edit
// distance, for boundary error messages.
func closestSortKey(input string) SortKey {
	minDist := math.MaxInt
	closest := SortByID

	for _, key := range SortKeys() {
		dist := levenshtein([]rune(string(key)), []rune(input))
		if dist < minDist {
			minDist = dist
			closest = key
		}
	}

	return closest
}
