// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package graph_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/born-ml/lazygraph/backend/cpu"
	"github.com/born-ml/lazygraph/graph"
	"github.com/born-ml/lazygraph/tensor"
)

// TestPublicAPI verifies the facade builds and evaluates a graph end to end.
func TestPublicAPI(t *testing.T) {
	x, err := tensor.FromSlice([]float32{0, 1, 2, 3}, tensor.Shape{2, 2})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	for _, mode := range []graph.Mode{graph.Populating, graph.Streaming} {
		g := graph.New[float32](cpu.Float32())
		a := g.CreateRoot(x)
		b := g.CreateRoot(x)
		c := g.DivScalarRH(g.Add(a, b), 2)

		if err := g.Evaluate(c, mode); err != nil {
			t.Fatalf("%v: Evaluate failed: %v", mode, err)
		}
		out, err := g.Result(c)
		if err != nil {
			t.Fatalf("%v: Result failed: %v", mode, err)
		}
		if !out.Equal(x) {
			t.Errorf("%v: result = %v, want %v", mode, out, x)
		}
	}
}

// TestComputationErrorAPI verifies kernel errors are reachable through the facade.
func TestComputationErrorAPI(t *testing.T) {
	x, _ := tensor.FromSlice([]int32{1, 0}, tensor.Shape{2})

	g := graph.New[int32](cpu.Int32())
	a := g.CreateRoot(x)
	b := g.DivScalarLH(1, a)

	err := g.PopulatingEval(b)
	if !errors.Is(err, graph.ErrComputation) {
		t.Fatalf("error = %v, want ErrComputation", err)
	}
	if !errors.Is(err, cpu.ErrDivideByZero) {
		t.Errorf("error = %v, want ErrDivideByZero", err)
	}
	var ce *graph.ComputationError
	if !errors.As(err, &ce) || ce.Op != graph.OpDivScalarLH {
		t.Errorf("ComputationError = %+v, want op div_scalar_lh", ce)
	}
}

// TestCustomEdge verifies CreateNode with a caller-supplied kernel.
func TestCustomEdge(t *testing.T) {
	x, _ := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{3})

	g := graph.New[float64](nil)
	a := g.CreateRoot(x)
	sq := g.CreateNode(graph.MulEdge[float64](a, a, cpu.Float64().Mul))

	if err := g.NonPopulatingEval(sq); err != nil {
		t.Fatalf("NonPopulatingEval failed: %v", err)
	}
	out, _ := g.Result(sq)
	want := []float64{1, 4, 9}
	for i, v := range out.ToSlice() {
		if v != want[i] {
			t.Errorf("result[%d] = %v, want %v", i, v, want[i])
		}
	}

	if _, err := graph.ParseMode("lazy"); !errors.Is(err, graph.ErrInvalidMode) {
		t.Errorf("ParseMode error = %v, want ErrInvalidMode", err)
	}
}

func Example() {
	x, _ := tensor.FromSlice([]float32{0, 1, 2, 3}, tensor.Shape{2, 2})

	g := graph.New[float32](cpu.Float32())
	a := g.CreateRoot(x)
	b := g.CreateRoot(x)
	c := g.DivScalarRH(g.Add(a, b), 2)

	if err := g.NonPopulatingEval(c); err != nil {
		fmt.Println(err)
		return
	}
	out, _ := g.Result(c)
	fmt.Println(out.ToSlice())
	// Output: [0 1 2 3]
}
