package graph

import (
	"fmt"
	"strings"
	"time"

	"github.com/born-ml/lazygraph/internal/logutil"
	"github.com/born-ml/lazygraph/internal/tensor"
	"github.com/emirpasic/gods/v2/sets/hashset"
	"github.com/emirpasic/gods/v2/stacks/arraystack"
)

// Mode selects the memory policy of an evaluation.
type Mode int

const (
	// Populating keeps every computed intermediate in its node, so later
	// evaluations that share them cost nothing.
	Populating Mode = iota
	// Streaming keeps intermediates only until their last consumer has been
	// computed. Only the target's tensor is stored in the graph.
	Streaming
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Populating:
		return "populating"
	case Streaming:
		return "streaming"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses a mode name. "non-populating" is accepted for Streaming.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "populating":
		return Populating, nil
	case "streaming", "non-populating":
		return Streaming, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// EvalStats describes the most recent evaluation of a graph.
type EvalStats struct {
	Mode   Mode
	Target Handle
	// Sources is the number of nodes that already held a tensor.
	Sources int
	// Computed is the number of kernel invocations.
	Computed int
	// Evicted is the number of intermediates dropped by Streaming mode.
	Evicted int
	// PeakLive is the largest number of intermediates held at once.
	PeakLive int
	Duration time.Duration
}

// LastStats returns statistics for the most recent evaluation, including
// a failed one.
func (g *Graph[T]) LastStats() EvalStats {
	return g.stats
}

// PopulatingEval computes target and every node it depends on, storing
// each result in its node. Nodes that already hold a tensor are not
// recomputed. If a kernel fails, results computed before the failure stay
// stored.
func (g *Graph[T]) PopulatingEval(target Handle) error {
	return g.Evaluate(target, Populating)
}

// NonPopulatingEval computes target while holding only the intermediates
// that still have uncomputed consumers. Only target's result is stored in
// the graph, and nothing is stored if evaluation fails.
func (g *Graph[T]) NonPopulatingEval(target Handle) error {
	return g.Evaluate(target, Streaming)
}

// Evaluate computes target using the given mode.
func (g *Graph[T]) Evaluate(target Handle, mode Mode) error {
	start := time.Now()

	if mode != Populating && mode != Streaming {
		return fmt.Errorf("%w: %v", ErrInvalidMode, mode)
	}

	deps, err := g.discover(target)
	if err != nil {
		g.stats = EvalStats{Mode: mode, Target: target, Duration: time.Since(start)}
		return fmt.Errorf("%s eval: %w", mode, err)
	}

	var store tensorStore[T] = &permanentStore[T]{g: g}
	if mode == Streaming {
		store = newEvictingStore(g, deps)
	}

	stats, err := g.walk(deps, store)
	stats.Mode = mode
	stats.Duration = time.Since(start)
	g.stats = stats

	if err != nil {
		g.logger.Debug("evaluation failed", "mode", mode, "target", target, "computed", stats.Computed, "error", err)
		return fmt.Errorf("%s eval: %w", mode, err)
	}

	g.logger.Debug("evaluated graph",
		"mode", mode,
		"target", target,
		"sources", stats.Sources,
		"computed", stats.Computed,
		"evicted", stats.Evicted,
		"peak_live", stats.PeakLive,
		"duration", stats.Duration,
	)
	return nil
}

// walk runs Kahn's algorithm over deps. A node is pushed once all its
// parents hold tensors, so every kernel sees computed operands. Results
// go through store, which decides what is kept.
func (g *Graph[T]) walk(deps *dependencies, store tensorStore[T]) (EvalStats, error) {
	stats := EvalStats{Target: deps.target, Sources: len(deps.sources)}
	trace := logutil.TraceEnabled(g.logger)

	open := arraystack.New[Handle]()
	done := hashset.New[Handle]()
	queued := hashset.New[Handle]()
	for _, s := range deps.sources {
		done.Add(s)
		queued.Add(s)
		open.Push(s)
	}

	for !open.Empty() {
		h, _ := open.Pop()

		if !done.Contains(h) {
			n, err := g.lookup(h)
			if err != nil {
				return stats, err
			}
			out, err := n.edge.computeTensor(h, store.get)
			if err != nil {
				return stats, err
			}

			store.put(h, out)
			stats.Computed++
			stats.PeakLive = max(stats.PeakLive, store.live())
			done.Add(h)
			store.release(h, distinctParents(n.edge))
			stats.Evicted = store.evicted()

			if trace {
				logutil.Trace(g.logger, "computed node", "handle", h, "op", n.edge.Op(), "shape", out.Shape(), "live", store.live())
			}
		}

		for _, c := range deps.children[h] {
			cn, err := g.lookup(c)
			if err != nil {
				return stats, err
			}
			if cn.edge.IsRoot() {
				return stats, &NodeError{Handle: c, Err: ErrRootNodeIsChild}
			}
			if queued.Contains(c) || !parentsDone(cn.edge, done) {
				continue
			}
			queued.Add(c)
			open.Push(c)
		}
	}

	store.commit(deps.target)
	return stats, nil
}

func parentsDone[T tensor.DType](e Edge[T], done *hashset.Set[Handle]) bool {
	for _, p := range e.Nodes() {
		if !done.Contains(p) {
			return false
		}
	}
	return true
}

func distinctParents[T tensor.DType](e Edge[T]) []Handle {
	parents := e.Nodes()
	if len(parents) == 2 && parents[0] == parents[1] {
		return parents[:1]
	}
	return parents
}

// tensorStore holds the tensors produced during one evaluation.
type tensorStore[T tensor.DType] interface {
	// get resolves a parent operand.
	get(h Handle) (*tensor.Tensor[T], error)
	put(h Handle, t *tensor.Tensor[T])
	// release is called once child has been computed from parents.
	release(child Handle, parents []Handle)
	// live returns the number of intermediates currently held.
	live() int
	evicted() int
	// commit runs after a successful walk.
	commit(target Handle)
}

// permanentStore writes every result into its node.
type permanentStore[T tensor.DType] struct {
	g     *Graph[T]
	count int
}

func (s *permanentStore[T]) get(h Handle) (*tensor.Tensor[T], error) {
	n, err := s.g.lookup(h)
	if err != nil {
		return nil, err
	}
	if n.tensor == nil {
		return nil, &NodeError{Handle: h, Err: ErrParentNodeNotComputed}
	}
	return n.tensor, nil
}

func (s *permanentStore[T]) put(h Handle, t *tensor.Tensor[T]) {
	s.g.nodes[h.index].tensor = t
	s.count++
}

func (s *permanentStore[T]) release(Handle, []Handle) {}
func (s *permanentStore[T]) live() int { return s.count }
func (s *permanentStore[T]) evicted() int { return 0 }
func (s *permanentStore[T]) commit(Handle) {}

// evictingStore keeps results in a transient cache and drops a parent as
// soon as its last discovered child has been computed. The target is
// never dropped and is the only entry written back to the graph.
type evictingStore[T tensor.DType] struct {
	g       *Graph[T]
	target  Handle
	cache   map[Handle]*tensor.Tensor[T]
	pending map[Handle]int
	dropped int
}

// newEvictingStore records how many children each parent must serve.
func newEvictingStore[T tensor.DType](g *Graph[T], deps *dependencies) *evictingStore[T] {
	s := &evictingStore[T]{
		g:       g,
		target:  deps.target,
		cache:   make(map[Handle]*tensor.Tensor[T]),
		pending: make(map[Handle]int, len(deps.children)),
	}
	for p, children := range deps.children {
		s.pending[p] = len(children)
	}
	return s
}

func (s *evictingStore[T]) get(h Handle) (*tensor.Tensor[T], error) {
	if t, ok := s.cache[h]; ok {
		return t, nil
	}
	n, err := s.g.lookup(h)
	if err != nil {
		return nil, err
	}
	if n.tensor == nil {
		return nil, &NodeError{Handle: h, Err: ErrParentNodeNotComputed}
	}
	return n.tensor, nil
}

func (s *evictingStore[T]) put(h Handle, t *tensor.Tensor[T]) {
	s.cache[h] = t
}

func (s *evictingStore[T]) release(_ Handle, parents []Handle) {
	for _, p := range parents {
		s.pending[p]--
		if s.pending[p] > 0 || p == s.target {
			continue
		}
		if _, ok := s.cache[p]; ok {
			delete(s.cache, p)
			s.dropped++
		}
	}
}

func (s *evictingStore[T]) live() int { return len(s.cache) }
func (s *evictingStore[T]) evicted() int { return s.dropped }

func (s *evictingStore[T]) commit(target Handle) {
	if t, ok := s.cache[target]; ok {
		s.g.nodes[target.index].tensor = t
	}
}
