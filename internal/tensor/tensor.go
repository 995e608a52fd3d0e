package tensor

import (
	"fmt"
	"iter"
	"slices"
)

// Tensor is a read-only strided view over a shared immutable buffer.
//
// A view is the tuple (buffer, shape, stride, offset): the element at
// position p lives at buffer index stride·p + offset. Slicing, reshaping
// contiguous data and broadcasting only produce new tuples over the same
// buffer, so many tensors may alias one allocation.
//
// Example:
//
//	t, _ := tensor.FromSlice([]float32{0, 1, 2, 3, 4, 5}, tensor.Shape{2, 3})
//	col, _ := t.Slice(tensor.All(), tensor.Only(1)) // [[1], [4]], zero-copy
type Tensor[T DType] struct {
	buf    *tensorBuffer[T]
	shape  Shape
	stride Stride
	offset int
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape.Clone()
}

// Stride returns a copy of the tensor's element strides.
func (t *Tensor[T]) Stride() Stride {
	return t.stride.Clone()
}

// Offset returns the buffer index of the first element.
func (t *Tensor[T]) Offset() int {
	return t.offset
}

// Rank returns the number of dimensions.
func (t *Tensor[T]) Rank() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return t.shape.NumElements()
}

// DType returns the tensor's data type.
func (t *Tensor[T]) DType() DataType {
	return DataTypeOf[T]()
}

// index maps an in-bounds position to its buffer index.
func (t *Tensor[T]) index(pos Position) int {
	idx := t.offset
	for i, coord := range pos {
		idx += coord * t.stride[i]
	}
	return idx
}

// Get returns the element at pos.
func (t *Tensor[T]) Get(pos Position) (T, error) {
	var zero T
	if len(pos) != len(t.shape) {
		return zero, fmt.Errorf("%w: position %v for shape %v", ErrRankMismatch, pos, t.shape)
	}
	if !pos.WithinBounds(t.shape) {
		return zero, fmt.Errorf("%w: %v for shape %v", ErrOutOfBounds, pos, t.shape)
	}
	return t.buf.data[t.index(pos)], nil
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
//
// Example:
//
//	value := t.At(1, 2) // Row 1, column 2
func (t *Tensor[T]) At(indices ...int) T {
	v, err := t.Get(Position(indices))
	if err != nil {
		panic(err)
	}
	return v
}

// AtFlat returns the i-th element in row-major iteration order.
// Panics if i is out of range.
func (t *Tensor[T]) AtFlat(i int) T {
	n := t.NumElements()
	if i < 0 || i >= n {
		panic(fmt.Sprintf("flat index %d out of range for %d elements", i, n))
	}

	idx := t.offset
	for d := len(t.shape) - 1; d >= 0; d-- {
		dim := t.shape[d]
		idx += (i % dim) * t.stride[d]
		i /= dim
	}
	return t.buf.data[idx]
}

// Slice returns a view of the region selected by intervals, one per leading
// dimension. The view shares the buffer: its offset moves to the region's
// first element and only the shape changes. A step k multiplies the
// dimension's stride by k.
//
// Example:
//
//	t, _ := tensor.FromSlice([]int32{0, 1, 2, 3, 4, 5, 6, 7, 8}, tensor.Shape{3, 3})
//	sub, _ := t.Slice(tensor.From(1), tensor.To(2)) // [[3, 4], [6, 7]]
func (t *Tensor[T]) Slice(intervals ...Interval) (*Tensor[T], error) {
	s, err := NewSlice(t.shape, intervals...)
	if err != nil {
		return nil, fmt.Errorf("slice: %w", err)
	}

	stride := t.stride.Clone()
	for i, iv := range s.intervals {
		stride[i] *= iv.Step()
	}

	shape := s.InferredShape()
	offset := t.offset
	if shape.NumElements() > 0 {
		start, err := s.Start().TensorIndex(t.stride)
		if err != nil {
			return nil, fmt.Errorf("slice: %w", err)
		}
		offset += start
	}

	return &Tensor[T]{buf: t.buf, shape: shape, stride: stride, offset: offset}, nil
}

// IsContiguous reports whether the view's stride is the row-major default
// stride for its shape.
func (t *Tensor[T]) IsContiguous() bool {
	return t.stride.Equal(DefaultStride(t.shape))
}

// Reshape returns the tensor relabelled with shape. Contiguous views are
// reshaped without copying; other views are materialized first.
func (t *Tensor[T]) Reshape(shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("reshape: %w", err)
	}
	if shape.NumElements() != t.NumElements() {
		return nil, fmt.Errorf("reshape %v to %v: %w (%d vs %d)",
			t.shape, shape, ErrElementCountMismatch, t.NumElements(), shape.NumElements())
	}

	if t.IsContiguous() {
		return &Tensor[T]{buf: t.buf, shape: shape.Clone(), stride: DefaultStride(shape), offset: t.offset}, nil
	}
	return FromBuffer(t.ToSlice(), shape)
}

// BroadcastSplice inserts virtual dimensions of the given sizes before
// dimension pos. The new dimensions have stride 0, so iterating them
// repeats existing elements without allocating.
//
// Example:
//
//	row, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3})
//	grid, _ := row.BroadcastSplice(0, 4) // Shape: [4, 3], every row is [1, 2, 3]
func (t *Tensor[T]) BroadcastSplice(pos int, sizes ...int) (*Tensor[T], error) {
	if pos < 0 || pos > len(t.shape) {
		return nil, fmt.Errorf("%w: %d for rank %d", ErrInvalidBroadcast, pos, len(t.shape))
	}
	if err := Shape(sizes).Validate(); err != nil {
		return nil, fmt.Errorf("broadcast: %w", err)
	}

	shape := slices.Insert(t.shape.Clone(), pos, sizes...)
	stride := slices.Insert(t.stride.Clone(), pos, make([]int, len(sizes))...)

	return &Tensor[T]{buf: t.buf, shape: shape, stride: stride, offset: t.offset}, nil
}

// BroadcastTo returns a view of the tensor expanded to shape using NumPy
// broadcasting rules. Size-1 and missing leading dimensions get stride 0.
func (t *Tensor[T]) BroadcastTo(shape Shape) (*Tensor[T], error) {
	out, err := BroadcastShapes(t.shape, shape)
	if err != nil {
		return nil, err
	}
	if !out.Equal(shape) {
		return nil, fmt.Errorf("%w: %v cannot expand to %v", ErrNotBroadcastable, t.shape, shape)
	}

	lead := len(shape) - len(t.shape)
	stride := make(Stride, len(shape))
	for i, dim := range t.shape {
		if dim == 1 && shape[lead+i] != 1 {
			continue
		}
		stride[lead+i] = t.stride[i]
	}

	return &Tensor[T]{buf: t.buf, shape: shape.Clone(), stride: stride, offset: t.offset}, nil
}

// Squeeze drops every dimension of size 1 without copying.
func (t *Tensor[T]) Squeeze() *Tensor[T] {
	shape := make(Shape, 0, len(t.shape))
	stride := make(Stride, 0, len(t.stride))
	for i, dim := range t.shape {
		if dim == 1 {
			continue
		}
		shape = append(shape, dim)
		stride = append(stride, t.stride[i])
	}
	return &Tensor[T]{buf: t.buf, shape: shape, stride: stride, offset: t.offset}
}

// Materialize returns a contiguous copy backed by a fresh buffer.
func (t *Tensor[T]) Materialize() *Tensor[T] {
	shape := t.shape.Clone()
	return &Tensor[T]{
		buf:    newTensorBuffer(t.ToSlice()),
		shape:  shape,
		stride: DefaultStride(shape),
	}
}

// Values returns the elements in row-major order.
// The sequence is finite and can be ranged over any number of times.
func (t *Tensor[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range t.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// All returns (position, element) pairs in row-major order, walking from
// Shape.First to Shape.Last. Yielded positions are fresh copies.
func (t *Tensor[T]) All() iter.Seq2[Position, T] {
	return func(yield func(Position, T) bool) {
		n := t.NumElements()
		if n == 0 {
			return
		}
		pos := t.shape.First()
		for k := 0; k < n; k++ {
			if !yield(pos.Clone(), t.buf.data[t.index(pos)]) {
				return
			}
			if k < n-1 {
				_ = pos.Advance(t.shape, 1)
			}
		}
	}
}

// ContiguousData returns the view's elements as a slice of the shared
// buffer when the view is contiguous. The slice must not be modified.
func (t *Tensor[T]) ContiguousData() ([]T, bool) {
	if !t.IsContiguous() {
		return nil, false
	}
	end := t.offset + t.NumElements()
	return t.buf.data[t.offset:end:end], true
}

// ToSlice returns a row-major copy of the elements.
func (t *Tensor[T]) ToSlice() []T {
	if data, ok := t.ContiguousData(); ok {
		return slices.Clone(data)
	}
	out := make([]T, 0, t.NumElements())
	for v := range t.Values() {
		out = append(out, v)
	}
	return out
}

// Equal reports structural equality: same shape and pointwise-equal elements
// in iteration order, regardless of stride or offset.
func (t *Tensor[T]) Equal(other *Tensor[T]) bool {
	if t == nil || other == nil {
		return t == other
	}
	if !t.shape.Equal(other.shape) {
		return false
	}

	a, aok := t.ContiguousData()
	b, bok := other.ContiguousData()
	if aok && bok {
		return slices.Equal(a, b)
	}

	for i := range t.NumElements() {
		if t.AtFlat(i) != other.AtFlat(i) {
			return false
		}
	}
	return true
}

// SharesBuffer reports whether both views alias the same buffer.
func (t *Tensor[T]) SharesBuffer(other *Tensor[T]) bool {
	return t.buf == other.buf
}

// String returns a human-readable representation of the tensor.
// Small tensors include their elements.
func (t *Tensor[T]) String() string {
	if t.NumElements() <= 32 {
		return fmt.Sprintf("Tensor[%s]%v %v", t.DType(), t.shape, t.ToSlice())
	}
	return fmt.Sprintf("Tensor[%s]%v", t.DType(), t.shape)
}
