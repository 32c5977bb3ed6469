package ops

// divForward computes x / y.
// Division by zero is not checked and yields ±Inf or NaN.
func divForward[T Float](x, y T) T {
	return x / y
}

// divBackward computes operand adjoints for division.
//   - d(x/y)/dx = 1/y, so gradX = adj / y
//   - d(x/y)/dy = -x/y², so gradY = adj * (-x / (y*y))
func divBackward[T Float](adj, x, y T) (gradX, gradY T) {
	gradX = adj / y
	gradY = adj * (-x / (y * y))
	return gradX, gradY
}
