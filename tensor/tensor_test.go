// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"errors"
	"testing"

	"github.com/born-ml/lazygraph/tensor"
)

// TestFromSliceAPI verifies the Tensor alias exposes the view API.
func TestFromSliceAPI(t *testing.T) {
	x, err := tensor.FromSlice([]float32{0, 1, 2, 3, 4, 5, 6, 7, 8}, tensor.Shape{3, 3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	if !x.Shape().Equal(tensor.Shape{3, 3}) {
		t.Errorf("Shape() = %v, want [3 3]", x.Shape())
	}
	if !x.Stride().Equal(tensor.Stride{3, 1}) {
		t.Errorf("Stride() = %v, want [3 1]", x.Stride())
	}
	if x.DType() != tensor.Float32 {
		t.Errorf("DType() = %v, want float32", x.DType())
	}
	if n := x.NumElements(); n != 9 {
		t.Errorf("NumElements() = %d, want 9", n)
	}
	if !x.IsContiguous() {
		t.Error("IsContiguous() = false, want true")
	}
}

// TestSliceAPI verifies slicing through the public interval constructors.
func TestSliceAPI(t *testing.T) {
	x, err := tensor.FromSlice([]float32{0, 1, 2, 3, 4, 5, 6, 7, 8}, tensor.Shape{3, 3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	v, err := x.Slice(tensor.Between(1, 3), tensor.To(2))
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	if !v.Shape().Equal(tensor.Shape{2, 2}) {
		t.Errorf("Shape() = %v, want [2 2]", v.Shape())
	}
	if v.Offset() != 3 {
		t.Errorf("Offset() = %d, want 3", v.Offset())
	}
	if !v.SharesBuffer(x) {
		t.Error("SharesBuffer() = false, want true")
	}

	want := []float32{3, 4, 6, 7}
	got := v.ToSlice()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ToSlice()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	stepped, err := x.Slice(tensor.All(), tensor.BetweenStep(0, 3, 2))
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	if !stepped.Shape().Equal(tensor.Shape{3, 2}) {
		t.Errorf("stepped Shape() = %v, want [3 2]", stepped.Shape())
	}

	_, err = x.Slice(tensor.From(4))
	if !errors.Is(err, tensor.ErrInvalidInterval) {
		t.Errorf("Slice(From(4)) error = %v, want ErrInvalidInterval", err)
	}
}

// TestNewSliceIter verifies the slice iterator yields every selected position.
func TestNewSliceIter(t *testing.T) {
	s, err := tensor.NewSlice(tensor.Shape{4, 4}, tensor.Only(2), tensor.From(1))
	if err != nil {
		t.Fatalf("NewSlice failed: %v", err)
	}

	it := s.Iter()
	count := 0
	for pos, ok := it.Next(); ok; pos, ok = it.Next() {
		if pos[0] != 2 {
			t.Errorf("position %v outside row 2", pos)
		}
		count++
	}
	if count != 3 {
		t.Errorf("iterated %d positions, want 3", count)
	}
}

// TestCreationFunctions verifies the creation helpers.
func TestCreationFunctions(t *testing.T) {
	full, err := tensor.Full(tensor.Shape{2, 2}, int32(7))
	if err != nil {
		t.Fatalf("Full failed: %v", err)
	}
	for v := range full.Values() {
		if v != 7 {
			t.Errorf("Full value = %d, want 7", v)
		}
	}

	s := tensor.Scalar(2.5)
	if s.Rank() != 0 || s.NumElements() != 1 {
		t.Errorf("Scalar rank %d with %d elements, want rank 0 with 1", s.Rank(), s.NumElements())
	}

	_, err = tensor.FromSlice([]uint8{1, 2, 3}, tensor.Shape{2, 2})
	if !errors.Is(err, tensor.ErrDataLengthMismatch) {
		t.Errorf("FromSlice error = %v, want ErrDataLengthMismatch", err)
	}

	if dt := tensor.DataTypeOf[int64](); dt != tensor.Int64 {
		t.Errorf("DataTypeOf[int64]() = %v, want int64", dt)
	}
}

// TestBroadcastShapes verifies shape broadcasting.
func TestBroadcastShapes(t *testing.T) {
	got, err := tensor.BroadcastShapes(tensor.Shape{3, 1}, tensor.Shape{3, 4})
	if err != nil {
		t.Fatalf("BroadcastShapes failed: %v", err)
	}
	if !got.Equal(tensor.Shape{3, 4}) {
		t.Errorf("BroadcastShapes() = %v, want [3 4]", got)
	}

	_, err = tensor.BroadcastShapes(tensor.Shape{2}, tensor.Shape{3})
	if !errors.Is(err, tensor.ErrNotBroadcastable) {
		t.Errorf("BroadcastShapes error = %v, want ErrNotBroadcastable", err)
	}
}

// TestBFloat16RoundTrip verifies bfloat16 encoding of exactly representable values.
func TestBFloat16RoundTrip(t *testing.T) {
	x, err := tensor.FromSlice([]float32{1, -2, 0.5, 256}, tensor.Shape{4})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	y, err := tensor.FromBFloat16(tensor.ToBFloat16(x), tensor.Shape{4})
	if err != nil {
		t.Fatalf("FromBFloat16 failed: %v", err)
	}
	if !x.Equal(y) {
		t.Errorf("round trip = %v, want %v", y, x)
	}
}
