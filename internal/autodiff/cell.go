package autodiff

// Cell is the smallest unit of mutable state: a value and its adjoint.
// A fresh Cell has a zero adjoint.
type Cell[T Float] struct {
	value   T
	adjoint T
}

// Value returns the stored value.
func (c *Cell[T]) Value() T {
	return c.value
}

// Adjoint returns the stored adjoint.
func (c *Cell[T]) Adjoint() T {
	return c.adjoint
}

// SetAdjoint overwrites the stored adjoint.
func (c *Cell[T]) SetAdjoint(adj T) {
	c.adjoint = adj
}
