// Package cpu implements the element-wise kernels the graph binds to its
// edges, for every supported element kind.
package cpu

import (
	"github.com/born-ml/lazygraph/internal/parallel"
	"github.com/born-ml/lazygraph/internal/tensor"
	"github.com/x448/float16"
)

// Backend implements the graph kernel set on the CPU for element kind T,
// with arithmetic supplied by the Numeric capability N.
//
// Kernels are pure: they never modify their operands and always return a
// freshly allocated contiguous tensor.
type Backend[T tensor.DType, N Numeric[T]] struct {
	num N
	cfg parallel.Config
}

// Option configures a Backend.
type Option func(*config)

type config struct {
	parallel parallel.Config
}

// WithParallel overrides the element-loop parallelism settings.
func WithParallel(cfg parallel.Config) Option {
	return func(c *config) {
		c.parallel = cfg
	}
}

// New creates a CPU backend for element kind T.
//
// Example:
//
//	b := cpu.New[float32, cpu.Signed[float32]]()
func New[T tensor.DType, N Numeric[T]](opts ...Option) *Backend[T, N] {
	c := config{parallel: parallel.DefaultConfig()}
	for _, opt := range opts {
		opt(&c)
	}
	var num N
	return &Backend[T, N]{num: num, cfg: c.parallel}
}

// Float32 creates a float32 backend.
func Float32(opts ...Option) *Backend[float32, Signed[float32]] {
	return New[float32, Signed[float32]](opts...)
}

// Float64 creates a float64 backend.
func Float64(opts ...Option) *Backend[float64, Signed[float64]] {
	return New[float64, Signed[float64]](opts...)
}

// Int32 creates an int32 backend.
func Int32(opts ...Option) *Backend[int32, Signed[int32]] {
	return New[int32, Signed[int32]](opts...)
}

// Int64 creates an int64 backend.
func Int64(opts ...Option) *Backend[int64, Signed[int64]] {
	return New[int64, Signed[int64]](opts...)
}

// Uint8 creates a uint8 backend.
func Uint8(opts ...Option) *Backend[uint8, Unsigned8] {
	return New[uint8, Unsigned8](opts...)
}

// Float16 creates a half precision backend.
func Float16(opts ...Option) *Backend[float16.Float16, Half] {
	return New[float16.Float16, Half](opts...)
}

// Name returns the backend name.
func (b *Backend[T, N]) Name() string {
	return "CPU"
}

// DType returns the element kind the backend computes on.
func (b *Backend[T, N]) DType() tensor.DataType {
	return tensor.DataTypeOf[T]()
}

// Parallel returns the element-loop parallelism settings.
func (b *Backend[T, N]) Parallel() parallel.Config {
	return b.cfg
}

// Zeros creates a tensor of the given shape filled with zero.
func (b *Backend[T, N]) Zeros(shape tensor.Shape) (*tensor.Tensor[T], error) {
	return tensor.Full(shape, b.num.Zero())
}

// Ones creates a tensor of the given shape filled with one.
func (b *Backend[T, N]) Ones(shape tensor.Shape) (*tensor.Tensor[T], error) {
	return tensor.Full(shape, b.num.One())
}
