package tensor

import "fmt"

// Position is a coordinate tuple into a tensor.
type Position []int

// TensorIndex returns the dot product of the position with stride.
func (p Position) TensorIndex(stride Stride) (int, error) {
	if len(p) != len(stride) {
		return 0, fmt.Errorf("%w: position has %d dimensions, stride has %d", ErrRankMismatch, len(p), len(stride))
	}
	index := 0
	for i, coord := range p {
		index += coord * stride[i]
	}
	return index, nil
}

// IncDec returns a copy of p moved by off positions in row-major order.
// A negative off moves backwards. The receiver is left untouched.
func (p Position) IncDec(bounds Shape, off int) (Position, error) {
	next := p.Clone()
	if err := next.Advance(bounds, off); err != nil {
		return nil, err
	}
	return next, nil
}

// Advance moves p in place by off positions in row-major order.
//
// Each dimension, starting from the rightmost, absorbs the running carry with
// Euclidean modulo and hands the Euclidean quotient to the next dimension on
// its left. A carry left over past dimension 0 means the move leaves the
// shape; p then holds the wrapped coordinate and ErrPositionOverflow is
// returned.
func (p Position) Advance(bounds Shape, off int) error {
	if len(p) != len(bounds) {
		return fmt.Errorf("%w: position has %d dimensions, bounds have %d", ErrRankMismatch, len(p), len(bounds))
	}

	carry := off
	for i := len(bounds) - 1; i >= 0; i-- {
		bound := bounds[i]
		if bound <= 0 {
			return fmt.Errorf("%w: cannot advance through dimension %d of size %d", ErrOutOfBounds, i, bound)
		}
		carry += p[i]
		p[i], carry = modEuclid(carry, bound), divEuclid(carry, bound)
	}

	if carry != 0 {
		return fmt.Errorf("%w: offset %d", ErrPositionOverflow, off)
	}
	return nil
}

// WithinBounds reports whether every coordinate is inside bounds.
func (p Position) WithinBounds(bounds Shape) bool {
	if len(p) != len(bounds) {
		return false
	}
	for i, coord := range p {
		if coord < 0 || coord >= bounds[i] {
			return false
		}
	}
	return true
}

// Add returns the component-wise sum of two positions.
func (p Position) Add(other Position) (Position, error) {
	if len(p) != len(other) {
		return nil, fmt.Errorf("%w: %d vs %d dimensions", ErrRankMismatch, len(p), len(other))
	}
	sum := make(Position, len(p))
	for i := range p {
		sum[i] = p[i] + other[i]
	}
	return sum, nil
}

// Equal checks if two positions are equal.
func (p Position) Equal(other Position) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the position.
func (p Position) Clone() Position {
	clone := make(Position, len(p))
	copy(clone, p)
	return clone
}

func divEuclid(a, b int) int {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

func modEuclid(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
