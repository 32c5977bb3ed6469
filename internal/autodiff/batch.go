package autodiff

import "github.com/born-ml/adjoint/internal/parallel"

// Formula builds one expression over the given input Variables.
// It returns the root to evaluate and the output Variable to seed
// (nil when root is a plain arithmetic expression).
//
// Temporaries should be created through s so they are private to the evaluation.
type Formula[T Float] func(s *Scope[T], in []*Variable[T]) (root Operand[T], out *Variable[T])

// Result holds the value and input gradient of one evaluation.
type Result[T Float] struct {
	Value    T
	Gradient []T // Gradient[i] is d(output)/d(input i)
}

// EvaluateBatch evaluates f at every point and returns one Result per point.
//
// Each point gets its own Scope and input Variables, so evaluations share no
// adjoint state and may run concurrently according to cfg. f may capture
// Constants, which are never written. It must not capture Variables or Binary
// nodes from outside the scope it is given.
func EvaluateBatch[T Float](points [][]T, f Formula[T], cfg parallel.Config) []Result[T] {
	return parallel.Map(len(points), func(i int) Result[T] {
		return evaluatePoint(points[i], f)
	}, cfg)
}

func evaluatePoint[T Float](point []T, f Formula[T]) Result[T] {
	s := NewScope[T]()
	in := make([]*Variable[T], len(point))
	for j, v := range point {
		in[j] = s.Var(v)
	}

	root, out := f(s, in)
	value := s.Evaluate(root, out)

	return Result[T]{
		Value:    value,
		Gradient: s.Gradient(in...),
	}
}
