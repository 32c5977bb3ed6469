package autodiff

// Constant is an immutable literal. It has no adjoint accumulation target,
// so the backward pass stops here. A Constant is never written after Const
// returns and may be shared between concurrent evaluations.
type Constant[T Float] struct {
	value T
}

// Const creates a constant node holding v.
func Const[T Float](v T) *Constant[T] {
	return &Constant[T]{value: v}
}

// Node returns c itself.
func (c *Constant[T]) Node() Node[T] { return c }

// EvaluateValue returns the literal.
func (c *Constant[T]) EvaluateValue() T { return c.value }

// SetAdjoint discards adj.
func (c *Constant[T]) SetAdjoint(T) {}

// EvaluateAdjoint is a no-op.
func (c *Constant[T]) EvaluateAdjoint() {}

// Value returns the literal.
func (c *Constant[T]) Value() T { return c.value }

// Adjoint is always zero.
func (c *Constant[T]) Adjoint() T { return 0 }

func (c *Constant[T]) String() string { return formatFloat(c.value) }

// Add returns c + o.
func (c *Constant[T]) Add(o Operand[T]) *Binary[T] { return Add[T](c, o) }

// Sub returns c - o.
func (c *Constant[T]) Sub(o Operand[T]) *Binary[T] { return Sub[T](c, o) }

// Mul returns c * o.
func (c *Constant[T]) Mul(o Operand[T]) *Binary[T] { return Mul[T](c, o) }

// Div returns c / o.
func (c *Constant[T]) Div(o Operand[T]) *Binary[T] { return Div[T](c, o) }
