package cpu

import (
	"fmt"

	"github.com/born-ml/lazygraph/internal/tensor"
)

// Scalar operations - element-wise operations with a scalar value.
// LH variants put the scalar on the left of the operator, RH on the right.

// AddScalar computes s + x for every element.
func (b *Backend[T, N]) AddScalar(s T, x *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if out, ok := float64Scalar(x, s, addConst); ok {
		return out, nil
	}
	return b.mapUnary(x, func(v T) T {
		return b.num.Add(s, v)
	})
}

// SubScalarLH computes s - x for every element.
func (b *Backend[T, N]) SubScalarLH(s T, x *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return b.mapUnary(x, func(v T) T {
		return b.num.Sub(s, v)
	})
}

// SubScalarRH computes x - s for every element.
func (b *Backend[T, N]) SubScalarRH(x *tensor.Tensor[T], s T) (*tensor.Tensor[T], error) {
	return b.mapUnary(x, func(v T) T {
		return b.num.Sub(v, s)
	})
}

// MulScalar computes s * x for every element.
func (b *Backend[T, N]) MulScalar(s T, x *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if out, ok := float64Scalar(x, s, scale); ok {
		return out, nil
	}
	return b.mapUnary(x, func(v T) T {
		return b.num.Mul(s, v)
	})
}

// DivScalarLH computes s / x for every element.
// Integer kinds fail with ErrDivideByZero if any element is zero.
func (b *Backend[T, N]) DivScalarLH(s T, x *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if b.num.Integral() {
		if err := b.checkNoZeros("div_scalar_lh", x); err != nil {
			return nil, err
		}
	}
	return b.mapUnary(x, func(v T) T {
		return b.num.Div(s, v)
	})
}

// DivScalarRH computes x / s for every element.
// Integer kinds fail with ErrDivideByZero if s is zero.
func (b *Backend[T, N]) DivScalarRH(x *tensor.Tensor[T], s T) (*tensor.Tensor[T], error) {
	if b.num.Integral() && b.num.IsZero(s) {
		return nil, fmt.Errorf("div_scalar_rh: %w", ErrDivideByZero)
	}
	return b.mapUnary(x, func(v T) T {
		return b.num.Div(v, s)
	})
}
