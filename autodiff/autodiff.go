// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// Expressions are composed from Variables, Constants and the operators
// Add, Sub, Mul, Div, Assign and Seq. A single call to EvaluateValueAndAdjoint
// computes the value of the expression and the adjoint (partial derivative of
// the output) of every Variable it touches.
//
// Example:
//
//	import "github.com/born-ml/adjoint/autodiff"
//
//	func main() {
//	    x := autodiff.NewVariable(6.0)
//	    y := autodiff.NewVariable(3.0)
//	    z := autodiff.NewArray[float64](2)
//	    res := autodiff.NewVariable(0.0)
//
//	    // z0 = x*x, z1 = z0*(x+y), res = z1/y
//	    autodiff.EvaluateValueAndAdjoint(autodiff.Seq(
//	        z.At(0).Assign(x.Mul(x)),
//	        z.At(1).Assign(z.At(0).Mul(x.Add(y))),
//	        res.Assign(z.At(1).Div(y)),
//	    ), res)
//
//	    fmt.Println(x.Adjoint(), y.Adjoint()) // 48 -24
//	}
//
// Adjoints accumulate across evaluations that reuse the same Variables.
// Reset them with ResetAdjoint, or create Variables through a Scope and
// evaluate with Scope.Evaluate.
package autodiff

import (
	"github.com/born-ml/adjoint/internal/autodiff"
	"github.com/born-ml/adjoint/internal/autodiff/ops"
	"github.com/born-ml/adjoint/internal/parallel"
)

// Float is the element type constraint (float32, float64 and types defined over them).
type Float = ops.Float

// BinaryOp identifies an operator node.
type BinaryOp = ops.BinaryOp

// Operators.
const (
	OpSequence = ops.Sequence
	OpAssign   = ops.Assign
	OpAdd      = ops.Add
	OpSub      = ops.Sub
	OpMul      = ops.Mul
	OpDiv      = ops.Div
)

// Node is one node of an expression tree.
type Node[T Float] = autodiff.Node[T]

// Operand is anything that can be composed into an expression.
type Operand[T Float] = autodiff.Operand[T]

// Variable is an input or temporary whose adjoint is accumulated.
type Variable[T Float] = autodiff.Variable[T]

// Constant is an immutable literal.
type Constant[T Float] = autodiff.Constant[T]

// Binary is an operator node.
type Binary[T Float] = autodiff.Binary[T]

// Array is a growable collection of Variables.
type Array[T Float] = autodiff.Array[T]

// Scope owns a set of Variables and resets them between evaluations.
type Scope[T Float] = autodiff.Scope[T]

// Formula builds an expression for EvaluateBatch.
type Formula[T Float] = autodiff.Formula[T]

// Result is the value and input gradient of one batch evaluation.
type Result[T Float] = autodiff.Result[T]

// ParallelConfig controls how EvaluateBatch fans out.
type ParallelConfig = parallel.Config

// NewVariable creates a Variable with initial value v and zero adjoint.
func NewVariable[T Float](v T) *Variable[T] {
	return autodiff.NewVariable(v)
}

// Const creates a constant node.
func Const[T Float](v T) *Constant[T] {
	return autodiff.Const(v)
}

// NewArray creates an Array of n zero-valued Variables.
func NewArray[T Float](n int) *Array[T] {
	return autodiff.NewArray[T](n)
}

// NewScope creates an empty Scope.
func NewScope[T Float]() *Scope[T] {
	return autodiff.NewScope[T]()
}

// Add returns a + b.
func Add[T Float](a, b Operand[T]) *Binary[T] { return autodiff.Add(a, b) }

// Sub returns a - b.
func Sub[T Float](a, b Operand[T]) *Binary[T] { return autodiff.Sub(a, b) }

// Mul returns a * b.
func Mul[T Float](a, b Operand[T]) *Binary[T] { return autodiff.Mul(a, b) }

// Div returns a / b.
func Div[T Float](a, b Operand[T]) *Binary[T] { return autodiff.Div(a, b) }

// Assign returns the statement target = expr.
func Assign[T Float](target *Variable[T], expr Operand[T]) *Binary[T] {
	return autodiff.Assign(target, expr)
}

// Seq chains statements like the comma operator.
func Seq[T Float](first, second Operand[T], rest ...Operand[T]) *Binary[T] {
	return autodiff.Seq(first, second, rest...)
}

// EvaluateValueAndAdjoint runs the forward pass, seeds rootVar with 1 and runs
// the backward pass. It returns the value of root.
//
// Example:
//
//	x := autodiff.NewVariable(6.0)
//	y := autodiff.NewVariable(3.0)
//	res := autodiff.NewVariable(0.0)
//	autodiff.EvaluateValueAndAdjoint(res.Assign(x.Mul(x).Sub(y)), res) // 33
//	x.Adjoint() // 12
//	y.Adjoint() // -1
func EvaluateValueAndAdjoint[T Float](root Operand[T], rootVar *Variable[T]) T {
	return autodiff.EvaluateValueAndAdjoint(root, rootVar)
}

// EvaluateBatch evaluates f at every point, each with its own Variables.
func EvaluateBatch[T Float](points [][]T, f Formula[T], cfg ParallelConfig) []Result[T] {
	return autodiff.EvaluateBatch(points, f, cfg)
}

// DefaultParallelConfig returns batch defaults based on CPU count.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}
