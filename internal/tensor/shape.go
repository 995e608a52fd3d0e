package tensor

import "fmt"

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that no dimension is negative.
// Zero-sized dimensions are allowed and describe empty tensors.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension %d is %d", ErrInvalidShape, i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// First returns the all-zero coordinate.
func (s Shape) First() Position {
	return make(Position, len(s))
}

// Last returns the coordinate whose every component is dim-1.
// The result is only meaningful when NumElements() > 0.
func (s Shape) Last() Position {
	last := make(Position, len(s))
	for i, dim := range s {
		last[i] = dim - 1
	}
	return last
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() Stride {
	strides := make(Stride, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Stride is the per-dimension element step of a strided view.
type Stride []int

// DefaultStride returns the row-major stride for shape.
func DefaultStride(shape Shape) Stride {
	return shape.ComputeStrides()
}

// Equal checks if two strides are equal.
func (s Stride) Equal(other Stride) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the stride.
func (s Stride) Clone() Stride {
	clone := make(Stride, len(s))
	copy(clone, s)
	return clone
}

// BroadcastShapes implements NumPy-style broadcasting rules.
//
// Rules:
// 1. Compare shapes element-wise from right to left
// 2. Dimensions are compatible if:
//   - They are equal, OR
//   - One of them is 1
//
// 3. Missing dimensions are treated as 1
//
// Kernels never call this: broadcasting is only reachable through the
// explicit Tensor.BroadcastTo view.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5), nil
//	(1, 5) + (3, 5) → (3, 5), nil
//	(3, 4) + (3, 5) → nil, Error
func BroadcastShapes(a, b Shape) (Shape, error) {
	maxLen := max(len(a), len(b))
	result := make(Shape, maxLen)

	for i := 0; i < maxLen; i++ {
		aIdx := len(a) - 1 - i
		bIdx := len(b) - 1 - i

		aDim := 1
		if aIdx >= 0 {
			aDim = a[aIdx]
		}

		bDim := 1
		if bIdx >= 0 {
			bDim = b[bIdx]
		}

		switch {
		case aDim == bDim:
			result[maxLen-1-i] = aDim
		case aDim == 1:
			result[maxLen-1-i] = bDim
		case bDim == 1:
			result[maxLen-1-i] = aDim
		default:
			return nil, fmt.Errorf("%w: %v vs %v (dimension %d: %d vs %d)",
				ErrNotBroadcastable, a, b, maxLen-1-i, aDim, bDim)
		}
	}

	return result, nil
}
