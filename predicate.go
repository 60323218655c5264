package poquery

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"gorm.io/gorm/clause"
)

type (
	// condition is a single comparison of the form Operator(Column, Value).
	condition struct {
		Column   string
		Operator Operator
		Value    any
	}

	// disjunction is a group of conditions joined by OR. The filter layer
	// uses exactly one of these for the multi-column search term; everything
	// else it produces is a standalone condition joined by AND.
	disjunction []condition
)

// toGORMExpression converts a condition of the form Operator(Column, Value)
// into an SQL condition "Column Operator Value" represented as a clause.Expression.
//
// IMPORTANT: The method uses the SQL placeholder "?".
//
// Example:
//
//	condition = { Column: "id", Operator: ">", Value: 123}
//
// Result:
//
//	"id > 123"
func (c condition) toGORMExpression() clause.Expression {
	sqlClause, arg := c.toSQLClause()

	return clause.Expr{
		SQL:  sqlClause,
		Vars: []any{arg},
	}
}

// toSQLClause converts a condition to an SQL fragment of the form
// "Column Operator ?" with a corresponding value. Returns the SQL string and
// the value for the placeholder.
//
// Example:
//
//	condition = { Column: "total_price", Operator: ">=", Value: 100.0}
//
// Result:
//
//	("total_price >= ?", 100.0)
func (c condition) toSQLClause() (string, driver.Value) {
	return fmt.Sprintf("%s %s ?", c.Column, c.Operator), c.Value
}

// toGORMExpression converts a disjunction (K1, K2, K3) into a gorm
// expression "(K1 OR K2 OR K3)" where each Ki is expanded via
// condition.toGORMExpression.
func (d disjunction) toGORMExpression() clause.Expression {
	orExpressions := make([]clause.Expression, 0, len(d))
	for _, cond := range d {
		orExpressions = append(orExpressions, cond.toGORMExpression())
	}

	if len(orExpressions) == 1 {
		return orExpressions[0]
	} else if len(orExpressions) > 1 {
		return clause.Or(orExpressions...)
	}

	return nil
}

// toSQLClause converts a disjunction (K1, K2, K3) into an SQL condition
// "(K1 OR K2 OR K3)" with corresponding values. Returns the SQL string and
// the list of values for placeholders.
//
// Example:
//
//	disjunction = {
//		{Column: "vendor", Operator: "=", Value: "ACME"},
//		{Column: "category", Operator: "=", Value: "ACME"},
//	}
//
// Result:
//
//	("(vendor = ? OR category = ?)", ["ACME", "ACME"])
func (d disjunction) toSQLClause() (string, []driver.Value) {
	orClauses := make([]string, 0, len(d))
	orValues := make([]driver.Value, 0, len(d))

	for _, cond := range d {
		orClause, orValue := cond.toSQLClause()
		orClauses = append(orClauses, orClause)
		orValues = append(orValues, orValue)
	}

	if len(orClauses) >= 1 {
		return fmt.Sprintf("(%s)", strings.Join(orClauses, " OR ")), orValues
	}

	return "", nil
}
