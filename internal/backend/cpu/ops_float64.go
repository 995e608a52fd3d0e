package cpu

import (
	"github.com/born-ml/lazygraph/internal/tensor"
	"gonum.org/v1/gonum/floats"
)

// Float64 fast path: contiguous float64 operands go through gonum's
// vectorised floats routines instead of the generic element loop.

type float64BinaryOp func(dst, s, t []float64) []float64

type float64ScalarOp func(c float64, dst []float64)

var (
	addTo float64BinaryOp = floats.AddTo
	subTo float64BinaryOp = floats.SubTo
	mulTo float64BinaryOp = floats.MulTo
	divTo float64BinaryOp = floats.DivTo

	addConst float64ScalarOp = floats.AddConst
	scale    float64ScalarOp = floats.Scale
)

// float64Binary applies op when T is float64 and both operands are
// contiguous. It reports false when the fast path does not apply.
func float64Binary[T tensor.DType](x, y *tensor.Tensor[T], op float64BinaryOp) (*tensor.Tensor[T], bool) {
	xd, xok := x.ContiguousData()
	yd, yok := y.ContiguousData()
	if !xok || !yok {
		return nil, false
	}
	xs, ok := any(xd).([]float64)
	if !ok {
		return nil, false
	}
	ys := any(yd).([]float64)

	dst := make([]float64, len(xs))
	op(dst, xs, ys)
	return wrapFloat64[T](dst, x.Shape())
}

// float64Scalar applies an in-place scalar op to a copy of x when T is
// float64 and x is contiguous.
func float64Scalar[T tensor.DType](x *tensor.Tensor[T], s T, op float64ScalarOp) (*tensor.Tensor[T], bool) {
	xd, ok := x.ContiguousData()
	if !ok {
		return nil, false
	}
	xs, ok := any(xd).([]float64)
	if !ok {
		return nil, false
	}

	dst := make([]float64, len(xs))
	copy(dst, xs)
	op(any(s).(float64), dst)
	return wrapFloat64[T](dst, x.Shape())
}

func wrapFloat64[T tensor.DType](dst []float64, shape tensor.Shape) (*tensor.Tensor[T], bool) {
	out, err := tensor.FromBuffer(any(dst).([]T), shape)
	if err != nil {
		return nil, false
	}
	return out, true
}
