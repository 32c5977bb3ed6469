// Package ops defines the operator semantics table for scalar automatic differentiation.
//
// Each arithmetic operator provides:
//   - Forward rule: the value of x op y
//   - Backward rule: the adjoint pushed to each operand given the node's adjoint
//
// Supported operators:
//   - Add: x + y (d/dx = 1, d/dy = 1)
//   - Sub: x - y (d/dx = 1, d/dy = -1)
//   - Mul: x * y (d/dx = y, d/dy = x)
//   - Div: x / y (d/dx = 1/y, d/dy = -x/y²)
//   - Assign: a = b, structural, handled by the expression node
//   - Sequence: (a, b), structural, handled by the expression node
package ops

import "fmt"

// Float is a constraint for the element types an expression can carry.
type Float interface {
	~float32 | ~float64
}

// BinaryOp identifies a binary operator in an expression tree.
type BinaryOp int

// Supported binary operators.
const (
	Sequence BinaryOp = iota // (a, b): evaluate a then b, value of b
	Assign                   // a = b
	Add
	Sub
	Mul
	Div
)

// String returns the operator symbol used in expression traces.
func (op BinaryOp) String() string {
	switch op {
	case Sequence:
		return ","
	case Assign:
		return "="
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	default:
		return fmt.Sprintf("BinaryOp(%d)", int(op))
	}
}

// IsArithmetic reports whether op has a forward and backward rule in this table.
// Assign and Sequence are structural and return false.
func (op BinaryOp) IsArithmetic() bool {
	return op >= Add && op <= Div
}

// Forward computes x op y.
// Panics if op is not arithmetic.
func Forward[T Float](op BinaryOp, x, y T) T {
	switch op {
	case Add:
		return addForward(x, y)
	case Sub:
		return subForward(x, y)
	case Mul:
		return mulForward(x, y)
	case Div:
		return divForward(x, y)
	default:
		panic(fmt.Sprintf("ops: no forward rule for operator %q", op))
	}
}

// Backward computes the adjoints pushed to the left and right operands of x op y,
// given adj, the adjoint of the result.
// Panics if op is not arithmetic.
//
// Example for Mul:
//
//	adj: d(out)/d(x*y)
//	returns: adj*y, adj*x
func Backward[T Float](op BinaryOp, adj, x, y T) (gradX, gradY T) {
	switch op {
	case Add:
		return addBackward(adj, x, y)
	case Sub:
		return subBackward(adj, x, y)
	case Mul:
		return mulBackward(adj, x, y)
	case Div:
		return divBackward(adj, x, y)
	default:
		panic(fmt.Sprintf("ops: no backward rule for operator %q", op))
	}
}
