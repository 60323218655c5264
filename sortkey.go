package poquery

import (
	"strconv"
	"time"
)

// SortKey is the closed set of fields a caller may sort by. It replaces a
// string-keyed column lookup: every member resolves through exhaustive
// switches below, and anything outside the set falls back to SortByID.
type SortKey string

const (
	SortByID           SortKey = "id"
	SortByOrderDate    SortKey = "order_date"
	SortByDeliveryDate SortKey = "delivery_date"
	SortByTotalPrice   SortKey = "total_price"
	SortByItemName     SortKey = "item_name"
	SortByStatus       SortKey = "status"
	SortByQuantity     SortKey = "quantity"
	SortByUnitPrice    SortKey = "unit_price"
)

// SortKeys lists every supported sort key in declaration order.
func SortKeys() []SortKey {
	return []SortKey{
		SortByID,
		SortByOrderDate,
		SortByDeliveryDate,
		SortByTotalPrice,
		SortByItemName,
		SortByStatus,
		SortByQuantity,
		SortByUnitPrice,
	}
}

// ParseSortKey resolves a requested sort key name. The second return value
// reports whether the name named a supported key; callers that want strict
// validation (the request boundary) check it, callers that want the lenient
// engine behavior ignore it and take the SortByID fallback.
func ParseSortKey(s string) (SortKey, bool) {
	for _, key := range SortKeys() {
		if s == string(key) {
			return key, true
		}
	}

	return SortByID, false
}

// ResolveSort maps the raw (sort_by, sort_order) request pair to a concrete
// key and direction. It never errors: unknown keys resolve to id, unknown
// orders to ascending.
func ResolveSort(sortBy, sortOrder string) (SortKey, Direction) {
	key, _ := ParseSortKey(sortBy)
	return key, ParseDirection(sortOrder)
}

// Column returns the store column the key orders by.
func (k SortKey) Column() string {
	switch k {
	case SortByID:
		return "id"
	case SortByOrderDate:
		return "order_date"
	case SortByDeliveryDate:
		return "delivery_date"
	case SortByTotalPrice:
		return "total_price"
	case SortByItemName:
		return "item_name"
	case SortByStatus:
		return "status"
	case SortByQuantity:
		return "quantity"
	case SortByUnitPrice:
		return "unit_price"
	default:
		// Documented fallback: never let an unmapped key reach SQL.
		return "id"
	}
}

// Orderings returns the effective ordering for the key: the key's column
// composed with id as a secondary key in the same direction. The id
// tie-break guarantees a strict total order even when the primary column
// has duplicate values, which is what keeps cursors stable.
func (k SortKey) Orderings(dir Direction) Orderings {
	if k == SortByID {
		return Orderings{{Column: "id", Direction: dir}}
	}

	return Orderings{
		{Column: k.Column(), Direction: dir},
		{Column: "id", Direction: dir},
	}
}

// ValueOf renders the record's value for the key as a string, the form a
// cursor carries it in.
func (k SortKey) ValueOf(o PurchaseOrder) string {
	switch k {
	case SortByOrderDate:
		return o.OrderDate.Format(time.DateOnly)
	case SortByDeliveryDate:
		return o.DeliveryDate.Format(time.DateOnly)
	case SortByTotalPrice:
		return strconv.FormatFloat(o.TotalPrice, 'f', -1, 64)
	case SortByItemName:
		return o.ItemName
	case SortByStatus:
		return string(o.Status)
	case SortByQuantity:
		return strconv.Itoa(o.Quantity)
	case SortByUnitPrice:
		return strconv.FormatFloat(o.UnitPrice, 'f', -1, 64)
	case SortByID:
		fallthrough
	default:
		return strconv.FormatUint(uint64(o.ID), 10)
	}
}
