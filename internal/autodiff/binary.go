package autodiff

import (
	"fmt"

	"github.com/born-ml/adjoint/internal/autodiff/ops"
)

// Binary is an operator node with two operands.
//
// Arithmetic operators (Add, Sub, Mul, Div) dispatch to the ops table.
// Assign and Sequence are structural:
//   - Assign (a = b): forward stores b's value into a's Cell; backward fetches
//     a's accumulated adjoint and pushes it into b
//   - Sequence (a, b): forward evaluates a then b; backward runs b then a, so the
//     last statement of a straight-line program propagates first
type Binary[T Float] struct {
	op    ops.BinaryOp
	left  Node[T]
	right Node[T]
	cell  Cell[T]
}

// assignTarget is the left operand of an assignment.
type assignTarget[T Float] interface {
	Node[T]
	AdjointFetch() T
	store(x T)
}

func newBinary[T Float](op ops.BinaryOp, left, right Node[T]) *Binary[T] {
	if op == ops.Assign {
		if _, ok := left.(assignTarget[T]); !ok {
			panic(fmt.Sprintf("autodiff: cannot assign to %T", left))
		}
	}
	return &Binary[T]{op: op, left: left, right: right}
}

// Node returns b itself.
func (b *Binary[T]) Node() Node[T] { return b }

// Op returns the operator tag.
func (b *Binary[T]) Op() ops.BinaryOp { return b.op }

// Left returns the left operand.
func (b *Binary[T]) Left() Node[T] { return b.left }

// Right returns the right operand.
func (b *Binary[T]) Right() Node[T] { return b.right }

// EvaluateValue evaluates both operands left to right, then applies the operator.
func (b *Binary[T]) EvaluateValue() T {
	switch b.op {
	case ops.Assign:
		v := b.right.EvaluateValue()
		b.left.(assignTarget[T]).store(v)
		b.cell.value = v
	case ops.Sequence:
		b.left.EvaluateValue()
		b.cell.value = b.right.EvaluateValue()
	default:
		x := b.left.EvaluateValue()
		y := b.right.EvaluateValue()
		b.cell.value = ops.Forward(b.op, x, y)
	}
	return b.cell.value
}

// SetAdjoint overwrites the node's adjoint.
func (b *Binary[T]) SetAdjoint(adj T) { b.cell.adjoint = adj }

// EvaluateAdjoint propagates the node's adjoint to its operands.
// Operand values must already be cached by EvaluateValue.
func (b *Binary[T]) EvaluateAdjoint() {
	switch b.op {
	case ops.Assign:
		adj := b.left.(assignTarget[T]).AdjointFetch()
		b.right.SetAdjoint(adj)
		b.right.EvaluateAdjoint()
	case ops.Sequence:
		b.right.EvaluateAdjoint()
		b.left.EvaluateAdjoint()
	default:
		gradX, gradY := ops.Backward(b.op, b.cell.adjoint, b.left.Value(), b.right.Value())
		b.left.SetAdjoint(gradX)
		b.left.EvaluateAdjoint()
		b.right.SetAdjoint(gradY)
		b.right.EvaluateAdjoint()
	}
}

// Value returns the cached result.
func (b *Binary[T]) Value() T { return b.cell.value }

// Adjoint returns the node's adjoint.
func (b *Binary[T]) Adjoint() T { return b.cell.adjoint }

// String renders b as [op:value](left,right).
func (b *Binary[T]) String() string {
	return "[" + b.op.String() + ":" + formatFloat(b.cell.value) + "](" +
		b.left.String() + "," + b.right.String() + ")"
}

// Add returns b + o.
func (b *Binary[T]) Add(o Operand[T]) *Binary[T] { return Add[T](b, o) }

// Sub returns b - o.
func (b *Binary[T]) Sub(o Operand[T]) *Binary[T] { return Sub[T](b, o) }

// Mul returns b * o.
func (b *Binary[T]) Mul(o Operand[T]) *Binary[T] { return Mul[T](b, o) }

// Div returns b / o.
func (b *Binary[T]) Div(o Operand[T]) *Binary[T] { return Div[T](b, o) }
