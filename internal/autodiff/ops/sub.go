package ops

// subForward computes x - y.
func subForward[T Float](x, y T) T {
	return x - y
}

// subBackward computes operand adjoints for subtraction.
//   - d(x-y)/dx = 1, so gradX = adj
//   - d(x-y)/dy = -1, so gradY = -adj
func subBackward[T Float](adj, _, _ T) (gradX, gradY T) {
	return adj, -adj
}
