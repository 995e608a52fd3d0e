package graph

import (
	"github.com/emirpasic/gods/v2/sets/hashset"
	"github.com/emirpasic/gods/v2/stacks/arraystack"
)

// dependencies is the part of the graph a target depends on.
type dependencies struct {
	target Handle
	// sources hold tensors before the walk starts: roots and derived
	// nodes with a cached tensor. Sources are not expanded further.
	sources []Handle
	// children maps each parent to its distinct discovered children.
	children map[Handle][]Handle
}

// discover walks backwards from target with an explicit stack, visiting
// every node at most once, so arbitrarily deep chains and heavily shared
// subgraphs cost time linear in the number of distinct nodes.
func (g *Graph[T]) discover(target Handle) (*dependencies, error) {
	deps := &dependencies{
		target:   target,
		children: make(map[Handle][]Handle),
	}

	stack := arraystack.New[Handle]()
	visited := hashset.New[Handle]()
	stack.Push(target)
	visited.Add(target)

	for !stack.Empty() {
		h, _ := stack.Pop()
		n, err := g.lookup(h)
		if err != nil {
			return nil, err
		}

		if n.edge.IsRoot() {
			if n.tensor == nil {
				return nil, &NodeError{Handle: h, Err: ErrRootNodeNotComputed}
			}
			deps.sources = append(deps.sources, h)
			continue
		}
		if n.tensor != nil {
			deps.sources = append(deps.sources, h)
			continue
		}

		parents := n.edge.Nodes()
		for i, p := range parents {
			if i == 1 && p == parents[0] {
				continue
			}
			deps.children[p] = append(deps.children[p], h)
			if !visited.Contains(p) {
				visited.Add(p)
				stack.Push(p)
			}
		}
	}

	return deps, nil
}
