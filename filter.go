package poquery

import (
	"database/sql/driver"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// _searchColumns are the columns the free-text search term is matched
// against. A record matches when ANY of them contains the term.
var _searchColumns = []string{"item_name", "description", "vendor", "category"}

// Filter is the set of optional criteria applied to the purchase-order
// catalog. The zero value imposes no constraint. All criteria are combined
// with AND; the search term alone expands to an OR group across
// _searchColumns.
//
// Inputs are assumed to be already-validated scalars (see Request.Validate);
// Filter itself has no error paths.
type Filter struct {
	// Search matches case-insensitively as a substring.
	Search string
	// Status, Category and Vendor are exact-match equality filters.
	Status   Status
	Category string
	Vendor   string
	// Price bounds are inclusive on total_price; one-sided ranges allowed.
	MinPrice *float64
	MaxPrice *float64
	// Date bounds are inclusive on order_date; one-sided ranges allowed.
	MinDate *time.Time
	MaxDate *time.Time
}

// Apply composes the filter's predicate onto the query. Criteria are added
// as separate WHERE conditions, so they AND together naturally.
func (f Filter) Apply(db *gorm.DB) *gorm.DB {
	for _, exp := range f.expressions() {
		db = db.Clauses(exp)
	}

	return db
}

// ToSQL returns the string representation of the filter as an SQL expression
// with placeholder values.
//
// Usage:
//
//	query := fmt.Sprintf("SELECT * FROM purchase_orders WHERE %s", clause)
func (f Filter) ToSQL() (string, []driver.Value) {
	clauses := make([]string, 0)
	values := make([]driver.Value, 0)

	if f.Search != "" {
		sqlClause, orValues := f.searchGroup().toSQLClause()
		clauses = append(clauses, sqlClause)
		values = append(values, orValues...)
	}
	for _, cond := range f.conditions() {
		sqlClause, value := cond.toSQLClause()
		clauses = append(clauses, sqlClause)
		values = append(values, value)
	}

	if len(clauses) == 0 {
		return "TRUE", nil
	}

	return strings.Join(clauses, " AND "), values
}

func (f Filter) expressions() []clause.Expression {
	exps := make([]clause.Expression, 0)

	if f.Search != "" {
		exps = append(exps, f.searchGroup().toGORMExpression())
	}
	for _, cond := range f.conditions() {
		exps = append(exps, cond.toGORMExpression())
	}

	return exps
}

// searchGroup builds the OR group for the search term. LOWER(col) LIKE with
// a lowercased pattern keeps the match case-insensitive on every supported
// dialect (ILIKE is postgres-only).
func (f Filter) searchGroup() disjunction {
	pattern := "%" + strings.ToLower(f.Search) + "%"

	group := make(disjunction, 0, len(_searchColumns))
	for _, column := range _searchColumns {
		group = append(group, condition{
			Column:   "LOWER(" + column + ")",
			Operator: operatorLike,
			Value:    pattern,
		})
	}

	return group
}

func (f Filter) conditions() []condition {
	conds := make([]condition, 0)

	if f.Status != "" {
		conds = append(conds, condition{Column: "status", Operator: operatorEq, Value: string(f.Status)})
	}
	if f.Category != "" {
		conds = append(conds, condition{Column: "category", Operator: operatorEq, Value: f.Category})
	}
	if f.Vendor != "" {
		conds = append(conds, condition{Column: "vendor", Operator: operatorEq, Value: f.Vendor})
	}
	if f.MinPrice != nil {
		conds = append(conds, condition{Column: "total_price", Operator: operatorGte, Value: *f.MinPrice})
	}
	if f.MaxPrice != nil {
		conds = append(conds, condition{Column: "total_price", Operator: operatorLte, Value: *f.MaxPrice})
	}
	if f.MinDate != nil {
		conds = append(conds, condition{Column: "order_date", Operator: operatorGte, Value: *f.MinDate})
	}
	if f.MaxDate != nil {
		conds = append(conds, condition{Column: "order_date", Operator: operatorLte, Value: *f.MaxDate})
	}

	return conds
}
