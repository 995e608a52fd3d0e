// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"iter"

	"github.com/born-ml/lazygraph/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor element types.
// Supported types: float32, float64, int32, int64, uint8, float16.Float16.
type DType = tensor.DType

// DataType represents the runtime element type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Float16 DataType = tensor.Float16
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Stride holds the buffer step of each dimension.
type Stride = tensor.Stride

// Position is a coordinate tuple into a tensor.
type Position = tensor.Position

// Interval selects a half-open, optionally stepped range of one dimension.
type Interval = tensor.Interval

// Slice binds one interval per dimension to the shape it selects from.
type Slice = tensor.Slice

// SliceIter walks the positions selected by a Slice.
type SliceIter = tensor.SliceIter

// Tensor is an immutable strided view over a shared buffer.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
//	row, _ := x.Slice(tensor.Only(1))  // [[3 4]]
type Tensor[T DType] = tensor.Tensor[T]

// Common errors.
var (
	ErrInvalidShape          = tensor.ErrInvalidShape
	ErrRankMismatch          = tensor.ErrRankMismatch
	ErrOutOfBounds           = tensor.ErrOutOfBounds
	ErrPositionOverflow      = tensor.ErrPositionOverflow
	ErrElementCountMismatch  = tensor.ErrElementCountMismatch
	ErrInvalidInterval       = tensor.ErrInvalidInterval
	ErrInvalidBroadcast      = tensor.ErrInvalidBroadcast
	ErrNotBroadcastable      = tensor.ErrNotBroadcastable
	ErrDataLengthMismatch    = tensor.ErrDataLengthMismatch
	ErrInvalidBFloat16Buffer = tensor.ErrInvalidBFloat16Buffer
)

// Interval constructors

// All selects a whole dimension.
func All() Interval {
	return tensor.All()
}

// To selects [0, end).
func To(end int) Interval {
	return tensor.To(end)
}

// From selects [start, size).
func From(start int) Interval {
	return tensor.From(start)
}

// Between selects [start, end).
func Between(start, end int) Interval {
	return tensor.Between(start, end)
}

// BetweenStep selects every step-th index of [start, end).
func BetweenStep(start, end, step int) Interval {
	return tensor.BetweenStep(start, end, step)
}

// Only selects the single index i, keeping the dimension.
func Only(i int) Interval {
	return tensor.Only(i)
}

// NewSlice validates intervals against shape.
func NewSlice(shape Shape, intervals ...Interval) (Slice, error) {
	return tensor.NewSlice(shape, intervals...)
}

// Creation functions

// FromSlice creates a contiguous tensor holding a copy of data.
//
// Example:
//
//	x, err := tensor.FromSlice([]int32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func FromSlice[T DType](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape)
}

// FromSeq creates a contiguous tensor from exactly shape.NumElements() values of seq.
func FromSeq[T DType](seq iter.Seq[T], shape Shape) (*Tensor[T], error) {
	return tensor.FromSeq(seq, shape)
}

// Full creates a tensor filled with value.
func Full[T DType](shape Shape, value T) (*Tensor[T], error) {
	return tensor.Full(shape, value)
}

// Scalar creates a rank-0 tensor.
func Scalar[T DType](value T) *Tensor[T] {
	return tensor.Scalar(value)
}

// FromBFloat16 decodes little-endian bfloat16 values into a float32 tensor.
func FromBFloat16(raw []byte, shape Shape) (*Tensor[float32], error) {
	return tensor.FromBFloat16(raw, shape)
}

// ToBFloat16 encodes t as little-endian bfloat16 values.
func ToBFloat16(t *Tensor[float32]) []byte {
	return tensor.ToBFloat16(t)
}

// BroadcastShapes returns the shape two operands broadcast to.
func BroadcastShapes(a, b Shape) (Shape, error) {
	return tensor.BroadcastShapes(a, b)
}

// DataTypeOf returns the DataType of T.
func DataTypeOf[T DType]() DataType {
	return tensor.DataTypeOf[T]()
}
