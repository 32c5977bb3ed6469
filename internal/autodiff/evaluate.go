package autodiff

import "k8s.io/klog/v2"

// EvaluateValueAndAdjoint runs one full evaluation of root and returns its value.
//
// Algorithm:
//  1. Forward pass: root.EvaluateValue() caches every node value bottom-up
//  2. Seed: rootVar.SetAsRoot(), or the root node's adjoint when rootVar is nil
//  3. Backward pass: root.EvaluateAdjoint() propagates top-down, accumulating
//     into every Variable reached
//
// rootVar is the Variable designated as the output (typically the target of the
// last assignment). It may be nil when root is a plain arithmetic expression.
// Exactly one of the two is seeded, so EvaluateValueAndAdjoint(x, x) leaves
// x.Adjoint() at 1.
//
// Adjoints are not reset first: evaluating twice with the same Variables
// accumulates twice. Use ResetAdjoint or Scope.Evaluate for independent runs.
//
// Example:
//
//	x := NewVariable(3.0)
//	r := NewVariable(0.0)
//	EvaluateValueAndAdjoint(r.Assign(x.Mul(x)), r)
//	grad := x.Adjoint() // 2x = 6
func EvaluateValueAndAdjoint[T Float](root Operand[T], rootVar *Variable[T]) T {
	node := root.Node()

	value := node.EvaluateValue()

	if rootVar != nil {
		rootVar.SetAsRoot()
	} else {
		node.SetAdjoint(1)
	}

	node.EvaluateAdjoint()

	if klog.V(5).Enabled() {
		klog.InfoS("autodiff: evaluated expression", "value", float64(value), "trace", node.String())
	}
	return value
}
