package poquery

import "errors"

var (
	// ErrInvalidCursor marks a continuation token that failed structural
	// decoding. Client input error: the request is rejected instead of
	// silently restarting from the first page.
	ErrInvalidCursor = errors.New("invalid cursor")

	// ErrInvalidParameter marks a request parameter rejected by strict
	// boundary validation (page size out of range, unknown enumerated
	// value, malformed scalar).
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNotFound marks a lookup of a purchase order that does not exist.
	ErrNotFound = errors.New("purchase order not found")
)
