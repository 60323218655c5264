// Package poquery exposes a purchase-order catalog through a single query
// operation: optional filters, substring search, multi-field sorting and
// cursor-based pagination over a relational store accessed via GORM.
//
// Overview
//
// The package is built from four cooperating parts:
//   - Filter: translates the optional criteria (search term, status,
//     category, vendor, price and date ranges) into one composed predicate.
//   - SortKey: a closed set of eight sortable fields; every resolved
//     ordering is tie-broken by id in the same direction, so the effective
//     order is always strict and total.
//   - Cursor: an opaque continuation token anchoring the next page to the
//     last-seen record. Tokens are versioned, URL-safe and decodable only
//     by this package.
//   - Engine: runs the combined query with a one-row lookahead and emits a
//     page of records plus the metadata needed to fetch the next one.
//
// The Engine is stateless and reentrant; each Paginate call is a single
// read-only round-trip against the injected *gorm.DB.
//
// See examples/ for runnable usage.
package poquery
