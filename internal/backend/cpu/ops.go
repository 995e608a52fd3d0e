package cpu

import (
	"fmt"

	"github.com/born-ml/lazygraph/internal/parallel"
	"github.com/born-ml/lazygraph/internal/tensor"
)

// Add performs element-wise addition. Shapes must match exactly.
func (b *Backend[T, N]) Add(x, y *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if err := checkSameShape("add", x, y); err != nil {
		return nil, err
	}
	if out, ok := float64Binary(x, y, addTo); ok {
		return out, nil
	}
	return b.mapBinary(x, y, b.num.Add)
}

// Sub performs element-wise subtraction x - y. Shapes must match exactly.
func (b *Backend[T, N]) Sub(x, y *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if err := checkSameShape("sub", x, y); err != nil {
		return nil, err
	}
	if out, ok := float64Binary(x, y, subTo); ok {
		return out, nil
	}
	return b.mapBinary(x, y, b.num.Sub)
}

// Mul performs element-wise multiplication. Shapes must match exactly.
func (b *Backend[T, N]) Mul(x, y *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if err := checkSameShape("mul", x, y); err != nil {
		return nil, err
	}
	if out, ok := float64Binary(x, y, mulTo); ok {
		return out, nil
	}
	return b.mapBinary(x, y, b.num.Mul)
}

// Div performs element-wise division x / y. Shapes must match exactly.
// Integer kinds fail with ErrDivideByZero if any divisor is zero.
func (b *Backend[T, N]) Div(x, y *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if err := checkSameShape("div", x, y); err != nil {
		return nil, err
	}
	if b.num.Integral() {
		if err := b.checkNoZeros("div", y); err != nil {
			return nil, err
		}
	}
	if out, ok := float64Binary(x, y, divTo); ok {
		return out, nil
	}
	return b.mapBinary(x, y, b.num.Div)
}

func checkSameShape[T tensor.DType](op string, x, y *tensor.Tensor[T]) error {
	xs, ys := x.Shape(), y.Shape()
	if !xs.Equal(ys) {
		return &ShapeMismatchError{Op: op, Left: xs, Right: ys}
	}
	return nil
}

func (b *Backend[T, N]) checkNoZeros(op string, x *tensor.Tensor[T]) error {
	for pos, v := range x.All() {
		if b.num.IsZero(v) {
			return fmt.Errorf("%s: %w at %v", op, ErrDivideByZero, pos)
		}
	}
	return nil
}

// mapUnary applies f to every element of x into a fresh contiguous tensor.
// Contiguous inputs are read straight from the buffer.
func (b *Backend[T, N]) mapUnary(x *tensor.Tensor[T], f func(T) T) (*tensor.Tensor[T], error) {
	n := x.NumElements()
	dst := make([]T, n)

	if src, ok := x.ContiguousData(); ok {
		parallel.ForChunks(n, func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = f(src[i])
			}
		}, b.cfg)
	} else {
		parallel.For(n, func(i int) {
			dst[i] = f(x.AtFlat(i))
		}, b.cfg)
	}

	return tensor.FromBuffer(dst, x.Shape())
}

// mapBinary applies f pairwise over two tensors of equal shape.
func (b *Backend[T, N]) mapBinary(x, y *tensor.Tensor[T], f func(T, T) T) (*tensor.Tensor[T], error) {
	n := x.NumElements()
	dst := make([]T, n)

	xs, xok := x.ContiguousData()
	ys, yok := y.ContiguousData()
	if xok && yok {
		parallel.ForChunks(n, func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = f(xs[i], ys[i])
			}
		}, b.cfg)
	} else {
		parallel.For(n, func(i int) {
			dst[i] = f(x.AtFlat(i), y.AtFlat(i))
		}, b.cfg)
	}

	return tensor.FromBuffer(dst, x.Shape())
}
