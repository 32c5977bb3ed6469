package ops_test

import (
	"math"
	"testing"

	"github.com/born-ml/adjoint/internal/autodiff/ops"
)

// Helper to check floats are equal within epsilon.
func floatEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

// TestForward tests the forward rule of every arithmetic operator.
func TestForward(t *testing.T) {
	tests := []struct {
		op   ops.BinaryOp
		x, y float64
		want float64
	}{
		{ops.Add, 6, 3, 9},
		{ops.Sub, 6, 3, 3},
		{ops.Mul, 6, 3, 18},
		{ops.Div, 6, 3, 2},
		{ops.Div, -1.5, 0.5, -3},
	}

	for _, tt := range tests {
		got := ops.Forward(tt.op, tt.x, tt.y)
		if !floatEqual(got, tt.want, 1e-12) {
			t.Errorf("Forward(%s, %v, %v) = %v, want %v", tt.op, tt.x, tt.y, got, tt.want)
		}
	}
}

// TestBackward tests the adjoint pushed to each operand.
func TestBackward(t *testing.T) {
	tests := []struct {
		name         string
		op           ops.BinaryOp
		adj, x, y    float64
		wantX, wantY float64
	}{
		// grad_x = grad_y = adj
		{"add", ops.Add, 2, 6, 3, 2, 2},
		// grad_x = adj, grad_y = -adj
		{"sub", ops.Sub, 2, 6, 3, 2, -2},
		// grad_x = adj*y, grad_y = adj*x
		{"mul", ops.Mul, 2, 6, 3, 6, 12},
		// grad_x = adj/y, grad_y = adj*(-x/y²) = 2*(-6/9)
		{"div", ops.Div, 2, 6, 3, 2.0 / 3.0, -4.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gx, gy := ops.Backward(tt.op, tt.adj, tt.x, tt.y)
			if !floatEqual(gx, tt.wantX, 1e-12) {
				t.Errorf("grad_x: got %v, want %v", gx, tt.wantX)
			}
			if !floatEqual(gy, tt.wantY, 1e-12) {
				t.Errorf("grad_y: got %v, want %v", gy, tt.wantY)
			}
		})
	}
}

// TestBackward_Float32 tests the rules instantiate for float32.
func TestBackward_Float32(t *testing.T) {
	gx, gy := ops.Backward[float32](ops.Mul, 1, 4, 5)
	if gx != 5 || gy != 4 {
		t.Errorf("Mul backward float32: got (%v, %v), want (5, 4)", gx, gy)
	}
}

// TestDiv_ByZero tests that division by zero follows IEEE-754 instead of failing.
func TestDiv_ByZero(t *testing.T) {
	v := ops.Forward(ops.Div, 1.0, 0.0)
	if !math.IsInf(v, 1) {
		t.Errorf("1/0 = %v, want +Inf", v)
	}

	gx, gy := ops.Backward(ops.Div, 1.0, 1.0, 0.0)
	if !math.IsInf(gx, 1) {
		t.Errorf("grad_x = %v, want +Inf", gx)
	}
	if !math.IsInf(gy, -1) {
		t.Errorf("grad_y = %v, want -Inf", gy)
	}

	nan := ops.Forward(ops.Div, 0.0, 0.0)
	if !math.IsNaN(nan) {
		t.Errorf("0/0 = %v, want NaN", nan)
	}
}

// TestBinaryOp_String tests trace symbols.
func TestBinaryOp_String(t *testing.T) {
	want := map[ops.BinaryOp]string{
		ops.Sequence: ",",
		ops.Assign:   "=",
		ops.Add:      "+",
		ops.Sub:      "-",
		ops.Mul:      "*",
		ops.Div:      "/",
	}
	for op, s := range want {
		if op.String() != s {
			t.Errorf("%d.String() = %q, want %q", int(op), op.String(), s)
		}
	}
	if got := ops.BinaryOp(42).String(); got != "BinaryOp(42)" {
		t.Errorf("unknown op String() = %q", got)
	}
}

// TestBinaryOp_IsArithmetic tests structural operators are excluded from the table.
func TestBinaryOp_IsArithmetic(t *testing.T) {
	if ops.Sequence.IsArithmetic() || ops.Assign.IsArithmetic() {
		t.Error("Sequence and Assign must not be arithmetic")
	}
	for _, op := range []ops.BinaryOp{ops.Add, ops.Sub, ops.Mul, ops.Div} {
		if !op.IsArithmetic() {
			t.Errorf("%s should be arithmetic", op)
		}
	}
}

// TestStructuralOp_Panics tests the table rejects Assign and Sequence.
func TestStructuralOp_Panics(t *testing.T) {
	for _, op := range []ops.BinaryOp{ops.Sequence, ops.Assign} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Forward(%s) did not panic", op)
				}
			}()
			ops.Forward(op, 1.0, 2.0)
		}()
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Backward(%s) did not panic", op)
				}
			}()
			ops.Backward(op, 1.0, 1.0, 2.0)
		}()
	}
}
