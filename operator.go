package poquery

// Operator defines a comparison operator for filtering by column.
// Used in pagination continuation and filter conditions.
type Operator string

const (
	OperatorGT Operator = ">"
	OperatorLT Operator = "<"

	// The remaining operators are private because they are used ONLY while
	// building filter conditions; cursors never carry them.
	operatorEq   Operator = "="
	operatorGte  Operator = ">="
	operatorLte  Operator = "<="
	operatorLike Operator = "LIKE"
)

func (o Operator) Valid() bool {
	return o == OperatorLT || o == OperatorGT
}
