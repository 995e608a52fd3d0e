package tensor

import (
	"fmt"
	"iter"
	"slices"

	"github.com/d4l3k/go-bfloat16"
)

// FromSlice creates a contiguous tensor from a Go slice.
// The slice is copied into the tensor's memory.
//
// Example:
//
//	t, err := tensor.FromSlice([]float32{0, 1, 2, 3}, tensor.Shape{2, 2})
func FromSlice[T DType](data []T, shape Shape) (*Tensor[T], error) {
	return FromBuffer(slices.Clone(data), shape)
}

// FromBuffer creates a contiguous tensor that takes ownership of data.
// The caller must not modify data afterwards.
func FromBuffer[T DType](data []T, shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrDataLengthMismatch, shape, shape.NumElements(), len(data))
	}

	shape = shape.Clone()
	return &Tensor[T]{
		buf:    newTensorBuffer(data),
		shape:  shape,
		stride: DefaultStride(shape),
	}, nil
}

// FromSeq collects exactly shape.NumElements() values from seq.
func FromSeq[T DType](seq iter.Seq[T], shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	n := shape.NumElements()
	data := make([]T, 0, n)
	overflow := false
	for v := range seq {
		if len(data) == n {
			overflow = true
			break
		}
		data = append(data, v)
	}
	if overflow || len(data) != n {
		return nil, fmt.Errorf("%w: shape %v requires %d elements", ErrDataLengthMismatch, shape, n)
	}

	return FromBuffer(data, shape)
}

// Full creates a tensor filled with value.
//
// Example:
//
//	t := tensor.Full[float32](tensor.Shape{3, 3}, 3.14)
func Full[T DType](shape Shape, value T) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	data := make([]T, shape.NumElements())
	for i := range data {
		data[i] = value
	}
	return FromBuffer(data, shape)
}

// Scalar creates a rank-0 tensor holding value.
func Scalar[T DType](value T) *Tensor[T] {
	return &Tensor[T]{
		buf:    newTensorBuffer([]T{value}),
		shape:  Shape{},
		stride: Stride{},
	}
}

// FromBFloat16 decodes little-endian bfloat16 bytes, as stored in
// safetensors and GGUF files, into a float32 tensor.
func FromBFloat16(raw []byte, shape Shape) (*Tensor[float32], error) {
	if len(raw)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidBFloat16Buffer, len(raw))
	}
	return FromBuffer(bfloat16.DecodeFloat32(raw), shape)
}

// ToBFloat16 encodes the elements of t in row-major order as little-endian
// bfloat16 bytes. Precision beyond bfloat16's 8-bit mantissa is truncated.
func ToBFloat16(t *Tensor[float32]) []byte {
	return bfloat16.EncodeFloat32(t.ToSlice())
}
