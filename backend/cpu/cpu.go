// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides pure Go CPU kernels for the lazy graph.
//
// # Overview
//
// Every kernel is element-wise and pure: operands are never modified and
// each call returns a new contiguous tensor. Binary kernels require
// operands of identical shape and never broadcast implicitly. Large inputs
// are split across goroutines according to the LAZYGRAPH_PARALLEL,
// LAZYGRAPH_NUM_THREADS and LAZYGRAPH_MIN_CHUNK environment variables.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/lazygraph/backend/cpu"
//	    "github.com/born-ml/lazygraph/graph"
//	)
//
//	func main() {
//	    g := graph.New[float32](cpu.Float32())
//	    a := g.CreateRoot(x)
//	    b := g.Relu(g.SubScalarRH(a, 1))
//	    err := g.NonPopulatingEval(b)
//	}
//
// # Thread Safety
//
// A Backend holds no mutable state and is safe for concurrent use.
package cpu

import (
	"github.com/born-ml/lazygraph/graph"
	internalcpu "github.com/born-ml/lazygraph/internal/backend/cpu"
	"github.com/born-ml/lazygraph/internal/parallel"
	"github.com/born-ml/lazygraph/tensor"
	"github.com/x448/float16"
)

// Backend represents the CPU kernel set for element kind T, with arithmetic
// supplied by the Numeric capability N.
type Backend[T tensor.DType, N Numeric[T]] = internalcpu.Backend[T, N]

// Numeric supplies the arithmetic a Backend needs for one element kind.
type Numeric[T any] = internalcpu.Numeric[T]

// Signed is the Numeric capability of the built-in signed kinds.
type Signed[T float32 | float64 | int32 | int64] = internalcpu.Signed[T]

// Unsigned8 is the Numeric capability of uint8.
type Unsigned8 = internalcpu.Unsigned8

// Half is the Numeric capability of float16.Float16.
type Half = internalcpu.Half

// Option configures a Backend.
type Option = internalcpu.Option

// ParallelConfig holds the element-loop parallelism settings.
type ParallelConfig = parallel.Config

// Kernel errors.
var (
	ErrShapeMismatch = internalcpu.ErrShapeMismatch
	ErrDivideByZero  = internalcpu.ErrDivideByZero
	ErrUnsupported   = internalcpu.ErrUnsupported
)

// ShapeMismatchError reports the operand shapes of a failed binary kernel.
type ShapeMismatchError = internalcpu.ShapeMismatchError

// UnsupportedError reports an operation undefined for an element kind.
type UnsupportedError = internalcpu.UnsupportedError

// Compile-time checks that every backend implements graph.Engine.
var (
	_ graph.Engine[float32]         = (*Backend[float32, Signed[float32]])(nil)
	_ graph.Engine[float64]         = (*Backend[float64, Signed[float64]])(nil)
	_ graph.Engine[int32]           = (*Backend[int32, Signed[int32]])(nil)
	_ graph.Engine[int64]           = (*Backend[int64, Signed[int64]])(nil)
	_ graph.Engine[uint8]           = (*Backend[uint8, Unsigned8])(nil)
	_ graph.Engine[float16.Float16] = (*Backend[float16.Float16, Half])(nil)
)

// New creates a CPU backend for element kind T.
//
// Example:
//
//	b := cpu.New[float32, cpu.Signed[float32]]()
func New[T tensor.DType, N Numeric[T]](opts ...Option) *Backend[T, N] {
	return internalcpu.New[T, N](opts...)
}

// WithParallel overrides the element-loop parallelism settings.
func WithParallel(cfg ParallelConfig) Option {
	return internalcpu.WithParallel(cfg)
}

// DefaultParallelConfig returns the settings derived from the environment.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// Float32 creates a float32 backend.
func Float32(opts ...Option) *Backend[float32, Signed[float32]] {
	return internalcpu.Float32(opts...)
}

// Float64 creates a float64 backend.
func Float64(opts ...Option) *Backend[float64, Signed[float64]] {
	return internalcpu.Float64(opts...)
}

// Int32 creates an int32 backend.
func Int32(opts ...Option) *Backend[int32, Signed[int32]] {
	return internalcpu.Int32(opts...)
}

// Int64 creates an int64 backend.
func Int64(opts ...Option) *Backend[int64, Signed[int64]] {
	return internalcpu.Int64(opts...)
}

// Uint8 creates a uint8 backend. Neg is unsupported.
func Uint8(opts ...Option) *Backend[uint8, Unsigned8] {
	return internalcpu.Uint8(opts...)
}

// Float16 creates a float16 backend. Arithmetic is carried out in float32.
func Float16(opts ...Option) *Backend[float16.Float16, Half] {
	return internalcpu.Float16(opts...)
}
