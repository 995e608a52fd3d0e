// Package graph implements a lazy tensor computation graph.
//
// Nodes live in an arena owned by the Graph and are addressed by Handle
// values. Building a graph never computes anything: each operation
// constructor records an Edge naming its parents and the kernel that will
// produce its tensor. Evaluating a target walks its dependencies in
// topological order, either keeping every intermediate (PopulatingEval) or
// discarding intermediates as soon as all their consumers are done
// (NonPopulatingEval).
//
// A Graph is not safe for concurrent use. Tensors it returns are
// immutable and may be shared freely.
package graph

import (
	"log/slog"

	"github.com/born-ml/lazygraph/internal/tensor"
	"github.com/google/uuid"
)

// Engine supplies the kernels bound by the operation constructors.
type Engine[T tensor.DType] interface {
	Abs(a *tensor.Tensor[T]) (*tensor.Tensor[T], error)
	Neg(a *tensor.Tensor[T]) (*tensor.Tensor[T], error)
	Relu(a *tensor.Tensor[T]) (*tensor.Tensor[T], error)

	AddScalar(s T, a *tensor.Tensor[T]) (*tensor.Tensor[T], error)
	SubScalarLH(s T, a *tensor.Tensor[T]) (*tensor.Tensor[T], error)
	SubScalarRH(a *tensor.Tensor[T], s T) (*tensor.Tensor[T], error)
	MulScalar(s T, a *tensor.Tensor[T]) (*tensor.Tensor[T], error)
	DivScalarLH(s T, a *tensor.Tensor[T]) (*tensor.Tensor[T], error)
	DivScalarRH(a *tensor.Tensor[T], s T) (*tensor.Tensor[T], error)

	Add(a, b *tensor.Tensor[T]) (*tensor.Tensor[T], error)
	Sub(a, b *tensor.Tensor[T]) (*tensor.Tensor[T], error)
	Mul(a, b *tensor.Tensor[T]) (*tensor.Tensor[T], error)
	Div(a, b *tensor.Tensor[T]) (*tensor.Tensor[T], error)
}

// node is an arena slot. It is computed iff tensor is non-nil.
type node[T tensor.DType] struct {
	tensor *tensor.Tensor[T]
	edge   Edge[T]
}

// Graph is an arena of nodes addressed by generation-checked handles.
type Graph[T tensor.DType] struct {
	id         uuid.UUID
	generation uint64
	nodes      []node[T]
	engine     Engine[T]
	logger     *slog.Logger
	stats      EvalStats
}

// Option configures a Graph.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger evaluation summaries are written to.
// A nil logger selects slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New creates an empty graph whose operation constructors bind the
// kernels of engine. A nil engine leaves only CreateRoot and CreateNode
// with custom edges usable; the built-in constructors then record edges
// without kernels, which fail evaluation with ErrNilKernel.
//
// Example:
//
//	g := graph.New[float32](cpu.Float32())
//	a := g.CreateRoot(x)
//	b := g.MulScalar(2, a)
//	err := g.PopulatingEval(b)
func New[T tensor.DType](engine Engine[T], opts ...Option) *Graph[T] {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return &Graph[T]{
		id:         uuid.New(),
		generation: 1,
		nodes:      make([]node[T], 0, 64),
		engine:     engine,
		logger:     o.logger,
	}
}

// CreateRoot adds a source node holding t.
func (g *Graph[T]) CreateRoot(t *tensor.Tensor[T]) Handle {
	return g.insert(node[T]{tensor: t})
}

// CreateNode adds an uncomputed node derived by edge. Edges may only name
// handles this graph has already issued.
func (g *Graph[T]) CreateNode(edge Edge[T]) Handle {
	return g.insert(node[T]{edge: edge})
}

func (g *Graph[T]) insert(n node[T]) Handle {
	h := Handle{graph: g.id, index: len(g.nodes), generation: g.generation}
	g.nodes = append(g.nodes, n)
	return h
}

// Len returns the number of nodes in the graph.
func (g *Graph[T]) Len() int {
	return len(g.nodes)
}

// Reset removes every node. Handles issued before Reset no longer resolve.
func (g *Graph[T]) Reset() {
	g.nodes = g.nodes[:0:0]
	g.generation++
	g.stats = EvalStats{}
}

// lookup returns the node h refers to.
func (g *Graph[T]) lookup(h Handle) (*node[T], error) {
	if h.graph != g.id || h.generation != g.generation || h.index < 0 || h.index >= len(g.nodes) {
		return nil, &NodeError{Handle: h, Err: ErrNodeDoesNotExist}
	}
	return &g.nodes[h.index], nil
}

// Op returns the operation of the node h refers to.
func (g *Graph[T]) Op(h Handle) (Op, error) {
	n, err := g.lookup(h)
	if err != nil {
		return OpRoot, err
	}
	return n.edge.Op(), nil
}

// Parents returns the parents of the node h refers to, in kernel order.
func (g *Graph[T]) Parents(h Handle) ([]Handle, error) {
	n, err := g.lookup(h)
	if err != nil {
		return nil, err
	}
	return n.edge.Nodes(), nil
}

// IsComputed reports whether the node h refers to holds a tensor.
// Invalid handles report false.
func (g *Graph[T]) IsComputed(h Handle) bool {
	n, err := g.lookup(h)
	return err == nil && n.tensor != nil
}

// Tensor returns the tensor held by the node h refers to, if any.
func (g *Graph[T]) Tensor(h Handle) (*tensor.Tensor[T], bool) {
	n, err := g.lookup(h)
	if err != nil || n.tensor == nil {
		return nil, false
	}
	return n.tensor, true
}

// Result is like Tensor but reports why no tensor is available.
func (g *Graph[T]) Result(h Handle) (*tensor.Tensor[T], error) {
	n, err := g.lookup(h)
	if err != nil {
		return nil, err
	}
	if n.tensor == nil {
		return nil, &NodeError{Handle: h, Err: ErrNodeNotComputed}
	}
	return n.tensor, nil
}

// ClearTensor drops the cached tensor of a derived node so that the next
// evaluation recomputes it. Root tensors cannot be cleared.
func (g *Graph[T]) ClearTensor(h Handle) error {
	n, err := g.lookup(h)
	if err != nil {
		return err
	}
	if n.edge.IsRoot() {
		return &NodeError{Handle: h, Err: ErrCannotClearRoot}
	}
	n.tensor = nil
	return nil
}
