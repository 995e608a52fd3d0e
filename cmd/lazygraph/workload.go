package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/born-ml/lazygraph/backend/cpu"
	"github.com/born-ml/lazygraph/graph"
	"github.com/born-ml/lazygraph/tensor"
)

// baseValues seeds every workload root.
var baseValues = []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}

var baseShape = tensor.Shape{3, 3}

// runResult summarizes one workload evaluation.
type runResult struct {
	Name  string
	Nodes int
	Stats graph.EvalStats
	// OK reports whether the target matched the closed-form result.
	OK bool
}

// runChain evaluates x / x applied ops times to a 3x3 root. Every step
// after the first yields ones.
func runChain(ctx context.Context, logger *slog.Logger, ops int, mode graph.Mode) (runResult, error) {
	if ops < 1 {
		return runResult{}, fmt.Errorf("chain: ops must be at least 1, got %d", ops)
	}

	g := graph.New[float64](cpu.Float64(), graph.WithLogger(logger))
	x, err := tensor.FromSlice(baseValues, baseShape)
	if err != nil {
		return runResult{}, err
	}

	out := g.CreateRoot(x)
	for range ops {
		out = g.Div(out, out)
	}

	want, err := tensor.Full(baseShape, 1.0)
	if err != nil {
		return runResult{}, err
	}
	return evaluate(ctx, g, out, mode, fmt.Sprintf("chain/%d", ops), want)
}

// runReduce sums leaves copies of a 3x3 root with pairwise Add nodes. An
// odd node at the end of a level is carried to the next level unchanged.
func runReduce(ctx context.Context, logger *slog.Logger, leaves int, mode graph.Mode) (runResult, error) {
	if leaves < 1 {
		return runResult{}, fmt.Errorf("reduce: leaves must be at least 1, got %d", leaves)
	}

	g := graph.New[float64](cpu.Float64(), graph.WithLogger(logger))
	level := make([]graph.Handle, leaves)
	for i := range level {
		x, err := tensor.FromSlice(baseValues, baseShape)
		if err != nil {
			return runResult{}, err
		}
		level[i] = g.CreateRoot(x)
	}
	for len(level) > 1 {
		next := make([]graph.Handle, 0, (len(level)+1)/2)
		for i := 0; i+1 < len(level); i += 2 {
			next = append(next, g.Add(level[i], level[i+1]))
		}
		if len(level)%2 == 1 {
			next = append(next, level[len(level)-1])
		}
		level = next
	}

	expected := make([]float64, len(baseValues))
	for i, v := range baseValues {
		expected[i] = v * float64(leaves)
	}
	want, err := tensor.FromSlice(expected, baseShape)
	if err != nil {
		return runResult{}, err
	}
	return evaluate(ctx, g, level[0], mode, fmt.Sprintf("reduce/%d", leaves), want)
}

func evaluate(ctx context.Context, g *graph.Graph[float64], target graph.Handle, mode graph.Mode, name string, want *tensor.Tensor[float64]) (runResult, error) {
	if err := ctx.Err(); err != nil {
		return runResult{}, err
	}
	if err := g.Evaluate(target, mode); err != nil {
		return runResult{}, fmt.Errorf("%s: %w", name, err)
	}
	got, err := g.Result(target)
	if err != nil {
		return runResult{}, fmt.Errorf("%s: %w", name, err)
	}
	return runResult{
		Name:  name,
		Nodes: g.Len(),
		Stats: g.LastStats(),
		OK:    got.Equal(want),
	}, nil
}
