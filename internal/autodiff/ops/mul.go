package ops

// mulForward computes x * y.
func mulForward[T Float](x, y T) T {
	return x * y
}

// mulBackward computes operand adjoints for multiplication.
//   - d(x*y)/dx = y, so gradX = adj * y
//   - d(x*y)/dy = x, so gradY = adj * x
//
// Both x and y must be the values cached by the forward pass.
func mulBackward[T Float](adj, x, y T) (gradX, gradY T) {
	return adj * y, adj * x
}
