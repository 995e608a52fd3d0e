// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides immutable, strided n-dimensional tensors.
//
// # Overview
//
// A Tensor is a view over a shared flat buffer described by a shape, a
// stride per dimension and an offset. Slicing, reshaping a contiguous
// tensor and broadcasting are zero-copy: they return new views over the
// same buffer. Tensors never change after construction, so views and the
// lazy graph can share them freely.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/lazygraph/tensor"
//	)
//
//	func main() {
//	    x, _ := tensor.FromSlice([]float32{0, 1, 2, 3, 4, 5, 6, 7, 8}, tensor.Shape{3, 3})
//
//	    // Rows 1..2, columns 0..1: [[3 4] [6 7]]
//	    v, _ := x.Slice(tensor.Between(1, 3), tensor.To(2))
//
//	    for pos, value := range v.All() {
//	        fmt.Println(pos, value)
//	    }
//	}
//
// # Supported Data Types
//
// The DType constraint admits float32, float64, int32, int64, uint8 and
// float16.Float16. Tensors only store values; arithmetic is provided by a
// backend such as backend/cpu.
//
// # Addressing
//
// The element at position p lives at Offset() + sum(p[i] * Stride()[i]).
// A broadcast dimension has stride 0. Intervals are half-open and may carry
// a step; the extent of [start, end) with step s is ceil((end-start)/s).
package tensor
