package graph

// Operation constructors. Each records one node in O(1) and computes
// nothing; the engine's kernel is bound to the edge now and invoked during
// evaluation.

// Abs records |a|.
func (g *Graph[T]) Abs(a Handle) Handle {
	var k UnaryKernel[T]
	if g.engine != nil {
		k = g.engine.Abs
	}
	return g.CreateNode(AbsEdge(a, k))
}

// Neg records -a.
func (g *Graph[T]) Neg(a Handle) Handle {
	var k UnaryKernel[T]
	if g.engine != nil {
		k = g.engine.Neg
	}
	return g.CreateNode(NegEdge(a, k))
}

// Relu records max(0, a).
func (g *Graph[T]) Relu(a Handle) Handle {
	var k UnaryKernel[T]
	if g.engine != nil {
		k = g.engine.Relu
	}
	return g.CreateNode(ReluEdge(a, k))
}

// AddScalar records s + a.
func (g *Graph[T]) AddScalar(s T, a Handle) Handle {
	var k ScalarKernel[T]
	if g.engine != nil {
		k = g.engine.AddScalar
	}
	return g.CreateNode(AddScalarEdge(s, a, k))
}

// SubScalarLH records s - a.
func (g *Graph[T]) SubScalarLH(s T, a Handle) Handle {
	var k ScalarKernel[T]
	if g.engine != nil {
		k = g.engine.SubScalarLH
	}
	return g.CreateNode(SubScalarLHEdge(s, a, k))
}

// SubScalarRH records a - s.
func (g *Graph[T]) SubScalarRH(a Handle, s T) Handle {
	var k ScalarKernelRH[T]
	if g.engine != nil {
		k = g.engine.SubScalarRH
	}
	return g.CreateNode(SubScalarRHEdge(a, s, k))
}

// MulScalar records s * a.
func (g *Graph[T]) MulScalar(s T, a Handle) Handle {
	var k ScalarKernel[T]
	if g.engine != nil {
		k = g.engine.MulScalar
	}
	return g.CreateNode(MulScalarEdge(s, a, k))
}

// DivScalarLH records s / a.
func (g *Graph[T]) DivScalarLH(s T, a Handle) Handle {
	var k ScalarKernel[T]
	if g.engine != nil {
		k = g.engine.DivScalarLH
	}
	return g.CreateNode(DivScalarLHEdge(s, a, k))
}

// DivScalarRH records a / s.
func (g *Graph[T]) DivScalarRH(a Handle, s T) Handle {
	var k ScalarKernelRH[T]
	if g.engine != nil {
		k = g.engine.DivScalarRH
	}
	return g.CreateNode(DivScalarRHEdge(a, s, k))
}

// Add records a + b. Operand shapes are checked by the kernel.
func (g *Graph[T]) Add(a, b Handle) Handle {
	var k BinaryKernel[T]
	if g.engine != nil {
		k = g.engine.Add
	}
	return g.CreateNode(AddEdge(a, b, k))
}

// Sub records a - b.
func (g *Graph[T]) Sub(a, b Handle) Handle {
	var k BinaryKernel[T]
	if g.engine != nil {
		k = g.engine.Sub
	}
	return g.CreateNode(SubEdge(a, b, k))
}

// Mul records a * b.
func (g *Graph[T]) Mul(a, b Handle) Handle {
	var k BinaryKernel[T]
	if g.engine != nil {
		k = g.engine.Mul
	}
	return g.CreateNode(MulEdge(a, b, k))
}

// Div records a / b.
func (g *Graph[T]) Div(a, b Handle) Handle {
	var k BinaryKernel[T]
	if g.engine != nil {
		k = g.engine.Div
	}
	return g.CreateNode(DivEdge(a, b, k))
}
