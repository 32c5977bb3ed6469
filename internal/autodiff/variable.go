package autodiff

// Variable is a named input or temporary of a computation.
//
// A Variable owns one Cell. Every time it is composed into an expression a new
// occurrence node is created; all occurrences share the Variable's Cell and
// add their adjoint contributions into it during the backward pass. This is
// what makes x*x differentiate to 2x.
//
// Adjoints are never reset automatically. Call ResetAdjoint (or use a Scope)
// between independent evaluations that reuse the same Variable, otherwise
// contributions from earlier evaluations are still included.
type Variable[T Float] struct {
	cell Cell[T]
}

// NewVariable creates a variable with initial value v and zero adjoint.
func NewVariable[T Float](v T) *Variable[T] {
	return &Variable[T]{cell: Cell[T]{value: v}}
}

// Node returns a new occurrence of v.
func (v *Variable[T]) Node() Node[T] {
	return v.occurrence()
}

func (v *Variable[T]) occurrence() *occurrence[T] {
	return &occurrence[T]{shared: &v.cell}
}

// Value returns the current value.
func (v *Variable[T]) Value() T { return v.cell.value }

// Adjoint returns the accumulated adjoint.
func (v *Variable[T]) Adjoint() T { return v.cell.adjoint }

// SetAdjoint overwrites the accumulated adjoint.
func (v *Variable[T]) SetAdjoint(adj T) { v.cell.adjoint = adj }

// SetAsRoot seeds the adjoint with 1: d(output)/d(output) = 1.
func (v *Variable[T]) SetAsRoot() { v.cell.adjoint = 1 }

// ResetAdjoint zeroes the accumulated adjoint.
func (v *Variable[T]) ResetAdjoint() { v.cell.adjoint = 0 }

// Set assigns a plain value outside of any expression.
func (v *Variable[T]) Set(x T) *Variable[T] {
	v.cell.value = x
	return v
}

// AddValue adds x to the current value.
func (v *Variable[T]) AddValue(x T) *Variable[T] {
	v.cell.value += x
	return v
}

// SubValue subtracts x from the current value.
func (v *Variable[T]) SubValue(x T) *Variable[T] {
	v.cell.value -= x
	return v
}

// MulValue multiplies the current value by x.
func (v *Variable[T]) MulValue(x T) *Variable[T] {
	v.cell.value *= x
	return v
}

// DivValue divides the current value by x.
func (v *Variable[T]) DivValue(x T) *Variable[T] {
	v.cell.value /= x
	return v
}

// Assign returns the statement v = expr.
func (v *Variable[T]) Assign(expr Operand[T]) *Binary[T] { return Assign(v, expr) }

// Add returns v + o.
func (v *Variable[T]) Add(o Operand[T]) *Binary[T] { return Add[T](v, o) }

// Sub returns v - o.
func (v *Variable[T]) Sub(o Operand[T]) *Binary[T] { return Sub[T](v, o) }

// Mul returns v * o.
func (v *Variable[T]) Mul(o Operand[T]) *Binary[T] { return Mul[T](v, o) }

// Div returns v / o.
func (v *Variable[T]) Div(o Operand[T]) *Binary[T] { return Div[T](v, o) }

// String renders v as (value,adjoint).
func (v *Variable[T]) String() string {
	return "(" + formatFloat(v.cell.value) + "," + formatFloat(v.cell.adjoint) + ")"
}

// occurrence is one appearance of a Variable inside an expression tree.
// adjoint is scratch for this occurrence only; shared is the Variable's Cell.
type occurrence[T Float] struct {
	shared  *Cell[T]
	value   T
	adjoint T
}

// EvaluateValue reads the shared value and caches it for the backward pass.
func (o *occurrence[T]) EvaluateValue() T {
	o.value = o.shared.value
	return o.value
}

func (o *occurrence[T]) SetAdjoint(adj T) { o.adjoint = adj }

// EvaluateAdjoint adds this occurrence's contribution into the shared accumulator.
func (o *occurrence[T]) EvaluateAdjoint() {
	o.shared.adjoint += o.adjoint
}

// AdjointFetch copies the shared accumulator into the local adjoint and returns it.
func (o *occurrence[T]) AdjointFetch() T {
	o.adjoint = o.shared.adjoint
	return o.adjoint
}

// store writes x into the shared cell; used by assignment.
func (o *occurrence[T]) store(x T) {
	o.shared.value = x
	o.value = x
}

func (o *occurrence[T]) Value() T   { return o.value }
func (o *occurrence[T]) Adjoint() T { return o.adjoint }

func (o *occurrence[T]) String() string {
	return "(" + formatFloat(o.value) + "," + formatFloat(o.adjoint) + ")"
}
