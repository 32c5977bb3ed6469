package ops

// addForward computes x + y.
func addForward[T Float](x, y T) T {
	return x + y
}

// addBackward computes operand adjoints for addition.
// Since d(x+y)/dx = d(x+y)/dy = 1, the adjoint flows unchanged to both operands.
func addBackward[T Float](adj, _, _ T) (gradX, gradY T) {
	return adj, adj
}
