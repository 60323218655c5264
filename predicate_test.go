package poquery

import (
	"database/sql/driver"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_condition_toSQLClause(t *testing.T) {
	tests := []struct {
		name       string
		cond       condition
		wantClause string
		wantValue  driver.Value
	}{
		{
			name:       "equality",
			cond:       condition{Column: "status", Operator: operatorEq, Value: "pending"},
			wantClause: "status = ?",
			wantValue:  "pending",
		},
		{
			name:       "inclusive lower bound",
			cond:       condition{Column: "total_price", Operator: operatorGte, Value: 100.0},
			wantClause: "total_price >= ?",
			wantValue:  100.0,
		},
		{
			name:       "continuation comparison",
			cond:       condition{Column: "id", Operator: OperatorGT, Value: uint(5)},
			wantClause: "id > ?",
			wantValue:  uint(5),
		},
		{
			name:       "pattern match on lowered column",
			cond:       condition{Column: "LOWER(vendor)", Operator: operatorLike, Value: "%acme%"},
			wantClause: "LOWER(vendor) LIKE ?",
			wantValue:  "%acme%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, value := tt.cond.toSQLClause()
			require.Equal(t, tt.wantClause, clause)
			require.Equal(t, tt.wantValue, value)
		})
	}
}

func Test_disjunction_toSQLClause(t *testing.T) {
	tests := []struct {
		name       string
		disjunct   disjunction
		wantClause string
		wantValues []driver.Value
	}{
		{
			name:       "empty group renders nothing",
			disjunct:   disjunction{},
			wantClause: "",
			wantValues: nil,
		},
		{
			name: "single condition still parenthesized",
			disjunct: disjunction{
				{Column: "vendor", Operator: operatorEq, Value: "ACME"},
			},
			wantClause: "(vendor = ?)",
			wantValues: []driver.Value{"ACME"},
		},
		{
			name: "conditions joined by OR",
			disjunct: disjunction{
				{Column: "LOWER(item_name)", Operator: operatorLike, Value: "%hub%"},
				{Column: "LOWER(vendor)", Operator: operatorLike, Value: "%hub%"},
			},
			wantClause: "(LOWER(item_name) LIKE ? OR LOWER(vendor) LIKE ?)",
			wantValues: []driver.Value{"%hub%", "%hub%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, values := tt.disjunct.toSQLClause()
			require.Equal(t, tt.wantClause, clause)
			if len(tt.wantValues) == 0 {
				require.Empty(t, values)
			} else {
				require.Equal(t, tt.wantValues, values)
			}
		})
	}
}

func Test_disjunction_toGORMExpression(t *testing.T) {
	if got := (disjunction{}).toGORMExpression(); got != nil {
		t.Errorf("empty disjunction: expected nil expression, got %#v", got)
	}
	if got := (disjunction{{Column: "a", Operator: operatorEq, Value: 1}}).toGORMExpression(); got == nil {
		t.Error("single condition: expected expression")
	}
}
