package graph

import (
	"github.com/born-ml/lazygraph/internal/tensor"
)

// Op identifies the operation an Edge performs.
type Op int

// Supported operations. The zero Op is Root.
const (
	OpRoot Op = iota
	OpAbs
	OpNeg
	OpRelu
	OpAddScalar
	OpSubScalarLH
	OpSubScalarRH
	OpMulScalar
	OpDivScalarLH
	OpDivScalarRH
	OpAdd
	OpSub
	OpMul
	OpDiv
)

var opNames = [...]string{
	OpRoot:        "root",
	OpAbs:         "abs",
	OpNeg:         "neg",
	OpRelu:        "relu",
	OpAddScalar:   "add_scalar",
	OpSubScalarLH: "sub_scalar_lh",
	OpSubScalarRH: "sub_scalar_rh",
	OpMulScalar:   "mul_scalar",
	OpDivScalarLH: "div_scalar_lh",
	OpDivScalarRH: "div_scalar_rh",
	OpAdd:         "add",
	OpSub:         "sub",
	OpMul:         "mul",
	OpDiv:         "div",
}

// String returns the operation name.
func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return "unknown"
	}
	return opNames[op]
}

// Arity returns the number of parents an edge with this operation has.
func (op Op) Arity() int {
	switch {
	case op == OpRoot:
		return 0
	case op >= OpAdd && op <= OpDiv:
		return 2
	case op > OpRoot && op < OpAdd:
		return 1
	}
	return 0
}

// Kernel function types bound to edges at construction time.
// Kernels must not modify their operands.
type (
	// UnaryKernel computes f(a).
	UnaryKernel[T tensor.DType] func(a *tensor.Tensor[T]) (*tensor.Tensor[T], error)
	// ScalarKernel computes s op a, with the scalar on the left.
	ScalarKernel[T tensor.DType] func(s T, a *tensor.Tensor[T]) (*tensor.Tensor[T], error)
	// ScalarKernelRH computes a op s, with the scalar on the right.
	ScalarKernelRH[T tensor.DType] func(a *tensor.Tensor[T], s T) (*tensor.Tensor[T], error)
	// BinaryKernel computes a op b.
	BinaryKernel[T tensor.DType] func(a, b *tensor.Tensor[T]) (*tensor.Tensor[T], error)
)

// Edge describes how a node's tensor is derived from its parents.
// The zero Edge is a root edge.
type Edge[T tensor.DType] struct {
	op     Op
	a, b   Handle
	scalar T

	unary    UnaryKernel[T]
	scalarLH ScalarKernel[T]
	scalarRH ScalarKernelRH[T]
	binary   BinaryKernel[T]
}

// RootEdge returns the edge of a source node.
func RootEdge[T tensor.DType]() Edge[T] {
	return Edge[T]{}
}

// AbsEdge returns an Abs edge over a.
func AbsEdge[T tensor.DType](a Handle, k UnaryKernel[T]) Edge[T] {
	return Edge[T]{op: OpAbs, a: a, unary: k}
}

// NegEdge returns a Neg edge over a.
func NegEdge[T tensor.DType](a Handle, k UnaryKernel[T]) Edge[T] {
	return Edge[T]{op: OpNeg, a: a, unary: k}
}

// ReluEdge returns a Relu edge over a.
func ReluEdge[T tensor.DType](a Handle, k UnaryKernel[T]) Edge[T] {
	return Edge[T]{op: OpRelu, a: a, unary: k}
}

// AddScalarEdge returns an edge computing s + a.
func AddScalarEdge[T tensor.DType](s T, a Handle, k ScalarKernel[T]) Edge[T] {
	return Edge[T]{op: OpAddScalar, a: a, scalar: s, scalarLH: k}
}

// SubScalarLHEdge returns an edge computing s - a.
func SubScalarLHEdge[T tensor.DType](s T, a Handle, k ScalarKernel[T]) Edge[T] {
	return Edge[T]{op: OpSubScalarLH, a: a, scalar: s, scalarLH: k}
}

// SubScalarRHEdge returns an edge computing a - s.
func SubScalarRHEdge[T tensor.DType](a Handle, s T, k ScalarKernelRH[T]) Edge[T] {
	return Edge[T]{op: OpSubScalarRH, a: a, scalar: s, scalarRH: k}
}

// MulScalarEdge returns an edge computing s * a.
func MulScalarEdge[T tensor.DType](s T, a Handle, k ScalarKernel[T]) Edge[T] {
	return Edge[T]{op: OpMulScalar, a: a, scalar: s, scalarLH: k}
}

// DivScalarLHEdge returns an edge computing s / a.
func DivScalarLHEdge[T tensor.DType](s T, a Handle, k ScalarKernel[T]) Edge[T] {
	return Edge[T]{op: OpDivScalarLH, a: a, scalar: s, scalarLH: k}
}

// DivScalarRHEdge returns an edge computing a / s.
func DivScalarRHEdge[T tensor.DType](a Handle, s T, k ScalarKernelRH[T]) Edge[T] {
	return Edge[T]{op: OpDivScalarRH, a: a, scalar: s, scalarRH: k}
}

// AddEdge returns an edge computing a + b.
func AddEdge[T tensor.DType](a, b Handle, k BinaryKernel[T]) Edge[T] {
	return Edge[T]{op: OpAdd, a: a, b: b, binary: k}
}

// SubEdge returns an edge computing a - b.
func SubEdge[T tensor.DType](a, b Handle, k BinaryKernel[T]) Edge[T] {
	return Edge[T]{op: OpSub, a: a, b: b, binary: k}
}

// MulEdge returns an edge computing a * b.
func MulEdge[T tensor.DType](a, b Handle, k BinaryKernel[T]) Edge[T] {
	return Edge[T]{op: OpMul, a: a, b: b, binary: k}
}

// DivEdge returns an edge computing a / b.
func DivEdge[T tensor.DType](a, b Handle, k BinaryKernel[T]) Edge[T] {
	return Edge[T]{op: OpDiv, a: a, b: b, binary: k}
}

// Op returns the edge's operation.
func (e Edge[T]) Op() Op {
	return e.op
}

// IsRoot reports whether the edge belongs to a source node.
func (e Edge[T]) IsRoot() bool {
	return e.op == OpRoot
}

// Scalar returns the embedded scalar of a scalar-family edge.
func (e Edge[T]) Scalar() T {
	return e.scalar
}

// Nodes returns the edge's parents in kernel argument order. Binary edges
// over the same handle list it twice.
func (e Edge[T]) Nodes() []Handle {
	switch e.op.Arity() {
	case 1:
		return []Handle{e.a}
	case 2:
		return []Handle{e.a, e.b}
	}
	return nil
}

// hasKernel reports whether the kernel field matching the edge's
// operation is set.
func (e Edge[T]) hasKernel() bool {
	switch e.op {
	case OpAbs, OpNeg, OpRelu:
		return e.unary != nil
	case OpAddScalar, OpSubScalarLH, OpMulScalar, OpDivScalarLH:
		return e.scalarLH != nil
	case OpSubScalarRH, OpDivScalarRH:
		return e.scalarRH != nil
	case OpAdd, OpSub, OpMul, OpDiv:
		return e.binary != nil
	}
	return false
}

// resolveFunc returns the tensor held for a parent handle.
type resolveFunc[T tensor.DType] func(Handle) (*tensor.Tensor[T], error)

// computeTensor resolves each parent once and applies the edge's kernel.
// Kernel errors are returned as *ComputationError; resolve errors are
// returned unchanged.
func (e Edge[T]) computeTensor(self Handle, resolve resolveFunc[T]) (*tensor.Tensor[T], error) {
	if e.IsRoot() {
		return nil, &NodeError{Handle: self, Err: ErrRootNodeNotComputed}
	}
	if !e.hasKernel() {
		return nil, &NodeError{Handle: self, Err: ErrNilKernel}
	}

	a, err := resolve(e.a)
	if err != nil {
		return nil, err
	}

	var out *tensor.Tensor[T]
	switch e.op {
	case OpAbs, OpNeg, OpRelu:
		out, err = e.unary(a)
	case OpAddScalar, OpSubScalarLH, OpMulScalar, OpDivScalarLH:
		out, err = e.scalarLH(e.scalar, a)
	case OpSubScalarRH, OpDivScalarRH:
		out, err = e.scalarRH(a, e.scalar)
	default:
		var b *tensor.Tensor[T]
		if b, err = resolve(e.b); err != nil {
			return nil, err
		}
		out, err = e.binary(a, b)
	}

	if err == nil && out == nil {
		err = ErrNilResult
	}
	if err != nil {
		return nil, &ComputationError{Handle: self, Op: e.op, Err: err}
	}
	return out, nil
}
