package cpu

import (
	"github.com/born-ml/lazygraph/internal/tensor"
)

// Abs computes element-wise absolute value.
func (b *Backend[T, N]) Abs(x *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return b.mapUnary(x, b.num.Abs)
}

// Neg computes element-wise negation.
// Unsigned kinds fail with an *UnsupportedError.
func (b *Backend[T, N]) Neg(x *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if !b.num.Signed() {
		return nil, &UnsupportedError{Op: "neg", DType: x.DType()}
	}
	return b.mapUnary(x, b.num.Neg)
}

// Relu computes max(0, x) element-wise.
// NaN inputs map to zero.
func (b *Backend[T, N]) Relu(x *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	zero := b.num.Zero()
	return b.mapUnary(x, func(v T) T {
		if b.num.Less(zero, v) {
			return v
		}
		return zero
	})
}
