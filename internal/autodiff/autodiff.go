// Package autodiff implements scalar reverse-mode automatic differentiation.
//
// Expressions are trees of Node values built at the call site. The tree itself
// is the tape: there is no separate recording step.
//
// Architecture:
//   - Cell: a (value, adjoint) pair owned by every Variable and every Binary node
//   - Node: Constant, Variable occurrence, Binary (Add, Sub, Mul, Div, Assign, Sequence)
//   - ops: the operator table with forward and backward rules
//   - EvaluateValueAndAdjoint: forward pass, seed the root with 1, backward pass
//
// Usage:
//
//	x := autodiff.NewVariable(6.0)
//	y := autodiff.NewVariable(3.0)
//	res := autodiff.NewVariable(0.0)
//
//	// res = x*x - y
//	autodiff.EvaluateValueAndAdjoint(res.Assign(x.Mul(x).Sub(y)), res)
//	fmt.Println(x.Adjoint()) // d(res)/dx = 2x = 12
//	fmt.Println(y.Adjoint()) // d(res)/dy = -1
package autodiff

import "github.com/born-ml/adjoint/internal/autodiff/ops"

// Float is the element type constraint shared by every node of an expression.
type Float = ops.Float

// Node is one node of an expression tree.
//
// The protocol is two passes, each run exactly once per evaluation:
//   - EvaluateValue, bottom-up: operands are evaluated before their parent
//   - SetAdjoint then EvaluateAdjoint, top-down: a parent sets a child's adjoint
//     and immediately asks it to propagate
type Node[T Float] interface {
	// EvaluateValue computes, caches and returns the node value.
	EvaluateValue() T

	// SetAdjoint overwrites the node's incoming adjoint.
	SetAdjoint(adj T)

	// EvaluateAdjoint propagates the adjoint set via SetAdjoint to the operands.
	EvaluateAdjoint()

	// Value returns the value cached by the last EvaluateValue.
	Value() T

	// Adjoint returns the node's current adjoint.
	Adjoint() T

	// String renders the node in trace format.
	String() string
}

// Operand is anything that can be composed into an expression.
//
// Constants and Binary nodes are their own node. A Variable returns a new
// occurrence on every call so that a variable used twice gets two nodes
// sharing one Cell.
type Operand[T Float] interface {
	Node() Node[T]
}

// Add returns the expression a + b.
func Add[T Float](a, b Operand[T]) *Binary[T] {
	return newBinary(ops.Add, a.Node(), b.Node())
}

// Sub returns the expression a - b.
func Sub[T Float](a, b Operand[T]) *Binary[T] {
	return newBinary(ops.Sub, a.Node(), b.Node())
}

// Mul returns the expression a * b.
func Mul[T Float](a, b Operand[T]) *Binary[T] {
	return newBinary(ops.Mul, a.Node(), b.Node())
}

// Div returns the expression a / b.
func Div[T Float](a, b Operand[T]) *Binary[T] {
	return newBinary(ops.Div, a.Node(), b.Node())
}

// Assign returns the statement target = expr.
// Panics if target is nil.
func Assign[T Float](target *Variable[T], expr Operand[T]) *Binary[T] {
	if target == nil {
		panic("autodiff: assignment to nil variable")
	}
	return newBinary(ops.Assign, Node[T](target.occurrence()), expr.Node())
}

// Seq chains statements like the comma operator: (first, second, rest...).
//
// Statements are evaluated left to right and the value is that of the last one.
// During the backward pass the last statement propagates first. More than two
// statements nest to the left: Seq(a, b, c) is ((a, b), c).
func Seq[T Float](first, second Operand[T], rest ...Operand[T]) *Binary[T] {
	b := newBinary(ops.Sequence, first.Node(), second.Node())
	for _, next := range rest {
		b = newBinary(ops.Sequence, Node[T](b), next.Node())
	}
	return b
}
