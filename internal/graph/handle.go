package graph

import (
	"fmt"

	"github.com/google/uuid"
)

// Handle is a stable reference to a node of one Graph.
//
// Handles are comparable values and may be copied and stored freely. A
// handle only resolves against the graph that issued it and only until
// that graph is Reset; any other use reports ErrNodeDoesNotExist.
// The zero Handle never resolves.
type Handle struct {
	graph      uuid.UUID
	index      int
	generation uint64
}

// Index returns the node's position in issue order.
func (h Handle) Index() int {
	return h.index
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool {
	return h == Handle{}
}

// String returns a short human-readable form such as "n3@1a2b3c4d/1".
func (h Handle) String() string {
	if h.IsZero() {
		return "n<nil>"
	}
	return fmt.Sprintf("n%d@%s/%d", h.index, h.graph.String()[:8], h.generation)
}
