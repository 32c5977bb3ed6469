package autodiff

// Scope owns the Variables of a computation that is evaluated repeatedly.
//
// Variables created through the scope are tracked, and Evaluate resets all of
// their adjoints before running the two passes, so each call is independent.
//
// Usage:
//
//	s := NewScope[float64]()
//	x := s.Var(6)
//	res := s.Var(0)
//	for _, v := range inputs {
//	    x.Set(v)
//	    s.Evaluate(res.Assign(x.Mul(x)), res)
//	    // x.Adjoint() holds d(res)/dx for this input only
//	}
//
// A Scope is not safe for concurrent use.
type Scope[T Float] struct {
	vars []*Variable[T]
}

// NewScope creates an empty scope.
func NewScope[T Float]() *Scope[T] {
	return &Scope[T]{
		vars: make([]*Variable[T], 0, 8),
	}
}

// Var creates and tracks a Variable with initial value v.
func (s *Scope[T]) Var(v T) *Variable[T] {
	nv := NewVariable(v)
	s.vars = append(s.vars, nv)
	return nv
}

// Array creates an Array of n Variables and tracks every element.
// Elements appended to the array later are not tracked; use Track for them.
func (s *Scope[T]) Array(n int) *Array[T] {
	a := NewArray[T](n)
	s.vars = append(s.vars, a.vars...)
	return a
}

// Track adds existing Variables to the scope.
func (s *Scope[T]) Track(vars ...*Variable[T]) {
	s.vars = append(s.vars, vars...)
}

// NumVars returns the number of tracked Variables.
func (s *Scope[T]) NumVars() int {
	return len(s.vars)
}

// ResetAdjoints zeroes the adjoint of every tracked Variable.
func (s *Scope[T]) ResetAdjoints() {
	for _, v := range s.vars {
		v.ResetAdjoint()
	}
}

// Evaluate resets every tracked adjoint, then runs EvaluateValueAndAdjoint.
func (s *Scope[T]) Evaluate(root Operand[T], rootVar *Variable[T]) T {
	s.ResetAdjoints()
	return EvaluateValueAndAdjoint(root, rootVar)
}

// Gradient returns the adjoints of vars, in order.
func (s *Scope[T]) Gradient(vars ...*Variable[T]) []T {
	grads := make([]T, len(vars))
	for i, v := range vars {
		grads[i] = v.Adjoint()
	}
	return grads
}
