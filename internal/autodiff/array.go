package autodiff

import (
	"fmt"
	"strings"
)

// Array is an indexable, growable collection of Variables, used when a
// computation needs several temporaries such as z[0] = x*x, z[1] = z[0]*y.
//
// Elements are stored by pointer, so occurrences created from At(i) stay valid
// after Append grows the array.
type Array[T Float] struct {
	vars []*Variable[T]
}

// NewArray creates an array of n zero-valued Variables.
func NewArray[T Float](n int) *Array[T] {
	if n < 0 {
		panic(fmt.Sprintf("autodiff: negative array length %d", n))
	}
	a := &Array[T]{vars: make([]*Variable[T], n)}
	for i := range a.vars {
		a.vars[i] = NewVariable[T](0)
	}
	return a
}

// At returns the i-th Variable.
// Panics if i is out of range.
func (a *Array[T]) At(i int) *Variable[T] {
	if i < 0 || i >= len(a.vars) {
		panic(fmt.Sprintf("autodiff: index %d out of range [0,%d)", i, len(a.vars)))
	}
	return a.vars[i]
}

// Len returns the number of Variables.
func (a *Array[T]) Len() int {
	return len(a.vars)
}

// Append adds a new Variable with value v and returns it.
func (a *Array[T]) Append(v T) *Variable[T] {
	nv := NewVariable(v)
	a.vars = append(a.vars, nv)
	return nv
}

// Variables returns the underlying Variables in index order.
// The slice is shared with the array; do not modify it.
func (a *Array[T]) Variables() []*Variable[T] {
	return a.vars
}

// ResetAdjoints zeroes the adjoint of every element.
func (a *Array[T]) ResetAdjoints() {
	for _, v := range a.vars {
		v.ResetAdjoint()
	}
}

// String renders the elements as [(value,adjoint) ...].
func (a *Array[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a.vars {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
