// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph provides a lazy tensor computation graph.
//
// # Overview
//
// A Graph owns its nodes and hands out Handle values that refer to them.
// Operation constructors record work without running it; evaluation
// computes a target and everything it depends on in topological order.
//
// Two evaluation modes are available:
//   - PopulatingEval stores every intermediate in its node, so later
//     evaluations reuse them.
//   - NonPopulatingEval holds an intermediate only until its last consumer
//     has been computed and stores only the target.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/lazygraph/backend/cpu"
//	    "github.com/born-ml/lazygraph/graph"
//	    "github.com/born-ml/lazygraph/tensor"
//	)
//
//	func main() {
//	    x, _ := tensor.FromSlice([]float32{0, 1, 2, 3}, tensor.Shape{2, 2})
//
//	    g := graph.New[float32](cpu.Float32())
//	    a := g.CreateRoot(x)
//	    b := g.CreateRoot(x)
//	    c := g.DivScalarRH(g.Add(a, b), 2)
//
//	    if err := g.PopulatingEval(c); err != nil {
//	        log.Fatal(err)
//	    }
//	    out, _ := g.Result(c) // [[0 1] [2 3]]
//	}
//
// # Errors
//
// Handles that do not resolve report ErrNodeDoesNotExist. Kernel failures
// are wrapped in *ComputationError, which matches ErrComputation and
// unwraps to the kernel's own error.
package graph

import (
	"log/slog"

	"github.com/born-ml/lazygraph/internal/graph"
	"github.com/born-ml/lazygraph/tensor"
)

// Graph is an arena of lazily evaluated tensor nodes. It is not safe for
// concurrent use.
type Graph[T tensor.DType] = graph.Graph[T]

// Handle refers to one node of one Graph.
type Handle = graph.Handle

// Engine supplies the kernels bound by the operation constructors.
// Every cpu.Backend implements Engine.
type Engine[T tensor.DType] = graph.Engine[T]

// Edge describes how a node's tensor is derived from its parents.
type Edge[T tensor.DType] = graph.Edge[T]

// Kernel function types.
type (
	UnaryKernel[T tensor.DType]    = graph.UnaryKernel[T]
	ScalarKernel[T tensor.DType]   = graph.ScalarKernel[T]
	ScalarKernelRH[T tensor.DType] = graph.ScalarKernelRH[T]
	BinaryKernel[T tensor.DType]   = graph.BinaryKernel[T]
)

// Op identifies the operation an Edge performs.
type Op = graph.Op

// Operations.
const (
	OpRoot        = graph.OpRoot
	OpAbs         = graph.OpAbs
	OpNeg         = graph.OpNeg
	OpRelu        = graph.OpRelu
	OpAddScalar   = graph.OpAddScalar
	OpSubScalarLH = graph.OpSubScalarLH
	OpSubScalarRH = graph.OpSubScalarRH
	OpMulScalar   = graph.OpMulScalar
	OpDivScalarLH = graph.OpDivScalarLH
	OpDivScalarRH = graph.OpDivScalarRH
	OpAdd         = graph.OpAdd
	OpSub         = graph.OpSub
	OpMul         = graph.OpMul
	OpDiv         = graph.OpDiv
)

// Mode selects the memory policy of an evaluation.
type Mode = graph.Mode

// Evaluation modes.
const (
	Populating = graph.Populating
	Streaming  = graph.Streaming
)

// EvalStats describes the most recent evaluation of a graph.
type EvalStats = graph.EvalStats

// Option configures a Graph.
type Option = graph.Option

// Error types.
type (
	NodeError        = graph.NodeError
	ComputationError = graph.ComputationError
)

// Sentinel errors.
var (
	ErrNodeDoesNotExist      = graph.ErrNodeDoesNotExist
	ErrRootNodeNotComputed   = graph.ErrRootNodeNotComputed
	ErrNodeNotComputed       = graph.ErrNodeNotComputed
	ErrParentNodeNotComputed = graph.ErrParentNodeNotComputed
	ErrRootNodeIsChild       = graph.ErrRootNodeIsChild
	ErrCannotClearRoot       = graph.ErrCannotClearRoot
	ErrComputation           = graph.ErrComputation
	ErrNilKernel             = graph.ErrNilKernel
	ErrInvalidMode           = graph.ErrInvalidMode
	ErrNilResult             = graph.ErrNilResult
)

// New creates an empty graph whose operation constructors bind the kernels
// of engine.
//
// Example:
//
//	g := graph.New[float64](cpu.Float64(), graph.WithLogger(logger))
func New[T tensor.DType](engine Engine[T], opts ...Option) *Graph[T] {
	return graph.New(engine, opts...)
}

// WithLogger sets the logger evaluation summaries are written to.
func WithLogger(logger *slog.Logger) Option {
	return graph.WithLogger(logger)
}

// ParseMode parses "populating", "streaming" or "non-populating".
func ParseMode(s string) (Mode, error) {
	return graph.ParseMode(s)
}

// Edge constructors for CreateNode with custom kernels.

// RootEdge returns the edge of a source node.
func RootEdge[T tensor.DType]() Edge[T] { return graph.RootEdge[T]() }

// AbsEdge returns an edge computing |a|.
func AbsEdge[T tensor.DType](a Handle, k UnaryKernel[T]) Edge[T] { return graph.AbsEdge(a, k) }

// NegEdge returns an edge computing -a.
func NegEdge[T tensor.DType](a Handle, k UnaryKernel[T]) Edge[T] { return graph.NegEdge(a, k) }

// ReluEdge returns an edge computing max(0, a).
func ReluEdge[T tensor.DType](a Handle, k UnaryKernel[T]) Edge[T] { return graph.ReluEdge(a, k) }

// AddScalarEdge returns an edge computing s + a.
func AddScalarEdge[T tensor.DType](s T, a Handle, k ScalarKernel[T]) Edge[T] {
	return graph.AddScalarEdge(s, a, k)
}

// SubScalarLHEdge returns an edge computing s - a.
func SubScalarLHEdge[T tensor.DType](s T, a Handle, k ScalarKernel[T]) Edge[T] {
	return graph.SubScalarLHEdge(s, a, k)
}

// SubScalarRHEdge returns an edge computing a - s.
func SubScalarRHEdge[T tensor.DType](a Handle, s T, k ScalarKernelRH[T]) Edge[T] {
	return graph.SubScalarRHEdge(a, s, k)
}

// MulScalarEdge returns an edge computing s * a.
func MulScalarEdge[T tensor.DType](s T, a Handle, k ScalarKernel[T]) Edge[T] {
	return graph.MulScalarEdge(s, a, k)
}

// DivScalarLHEdge returns an edge computing s / a.
func DivScalarLHEdge[T tensor.DType](s T, a Handle, k ScalarKernel[T]) Edge[T] {
	return graph.DivScalarLHEdge(s, a, k)
}

// DivScalarRHEdge returns an edge computing a / s.
func DivScalarRHEdge[T tensor.DType](a Handle, s T, k ScalarKernelRH[T]) Edge[T] {
	return graph.DivScalarRHEdge(a, s, k)
}

// AddEdge returns an edge computing a + b.
func AddEdge[T tensor.DType](a, b Handle, k BinaryKernel[T]) Edge[T] { return graph.AddEdge(a, b, k) }

// SubEdge returns an edge computing a - b.
func SubEdge[T tensor.DType](a, b Handle, k BinaryKernel[T]) Edge[T] { return graph.SubEdge(a, b, k) }

// MulEdge returns an edge computing a * b.
func MulEdge[T tensor.DType](a, b Handle, k BinaryKernel[T]) Edge[T] { return graph.MulEdge(a, b, k) }

// DivEdge returns an edge computing a / b.
func DivEdge[T tensor.DType](a, b Handle, k BinaryKernel[T]) Edge[T] { return graph.DivEdge(a, b, k) }
