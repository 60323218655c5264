package poquery

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

var _encoder = base64.RawURLEncoding

// _cursorVersion is the wire version of the token structure. Bump it when
// the structure changes; decoding any other version fails structurally
// instead of misreading fields.
const _cursorVersion = 1

// Cursor is the pagination token anchoring the next page to the last-seen
// record. It is opaque to clients: a reversible URL-safe encoding, not a
// security boundary. A nil cursor means the start of the dataset.
//
// The token carries the sort key and the anchor's value for it alongside
// the id so a decoded cursor is self-describing, but continuation itself
// compares only the id (see Apply).
type Cursor struct {
	ID        uint    `json:"id"`
	SortKey   SortKey `json:"sort_field"`
	SortValue string  `json:"sort_value"`
}

// NewCursor builds the cursor for the page that ends at last, carrying the
// active sort key and last's value for it.
func NewCursor(last PurchaseOrder, key SortKey) *Cursor {
	return &Cursor{
		ID:        last.ID,
		SortKey:   key,
		SortValue: key.ValueOf(last),
	}
}

// DecodeCursor attempts to parse an encoded token back into a *Cursor.
// Empty input yields (nil, nil). Any structural failure - undecodable
// base64, malformed JSON, unsupported version, non-positive id, unknown
// sort key - yields an error wrapping ErrInvalidCursor; the caller rejects
// the request rather than silently restarting pagination.
//
// The codec never checks that the anchor record still exists; a deleted
// anchor simply leaves no rows on its side of the id comparison.
func DecodeCursor(token string) (*Cursor, error) {
	if len(token) == 0 {
		return nil, nil
	}

	jsonData, err := _encoder.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: undecodable token: %w", ErrInvalidCursor, err)
	}

	var envelope struct {
		Version int `json:"v"`
		Cursor
	}
	if err = json.Unmarshal(jsonData, &envelope); err != nil {
		return nil, fmt.Errorf("%w: malformed token structure: %w", ErrInvalidCursor, err)
	}

	if envelope.Version != _cursorVersion {
		return nil, fmt.Errorf("%w: unsupported token version %d", ErrInvalidCursor, envelope.Version)
	}
	if envelope.ID == 0 {
		return nil, fmt.Errorf("%w: token without a record anchor", ErrInvalidCursor)
	}
	if _, ok := ParseSortKey(string(envelope.SortKey)); !ok {
		return nil, fmt.Errorf("%w: unknown sort key '%s'", ErrInvalidCursor, envelope.SortKey)
	}

	return &envelope.Cursor, nil
}

// String - implements fmt.Stringer. Returns the encoded token form.
func (c *Cursor) String() string {
	if c.IsEmpty() {
		return ""
	}

	jTok, err := json.Marshal(struct {
		Version int `json:"v"`
		Cursor
	}{
		Version: _cursorVersion,
		Cursor:  *c,
	})
	if err != nil {
		panic(fmt.Errorf("cannot marshal cursor value: %w", err))
	}

	return _encoder.EncodeToString(jTok)
}

// IsEmpty reports whether the cursor denotes the start of the dataset.
func (c *Cursor) IsEmpty() bool {
	return c == nil || c.ID == 0
}

// Apply adds the continuation predicate to the query: id > anchor when
// ascending, id < anchor when descending.
//
// Only the id component of the token participates; the sort value does not.
// Because every effective ordering is id-tie-broken this is exact when
// sorting by id, and an approximation for other sort keys whose values are
// not monotonic with id.
func (c *Cursor) Apply(db *gorm.DB, dir Direction) *gorm.DB {
	if c.IsEmpty() {
		return db
	}

	cond := condition{
		Column:   "id",
		Operator: dir.ForOperator(),
		Value:    c.ID,
	}

	return db.Clauses(cond.toGORMExpression())
}

var _ fmt.Stringer = (*Cursor)(nil)
