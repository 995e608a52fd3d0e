package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and evaluation.
var (
	// ErrNodeDoesNotExist indicates a handle issued by another graph, by
	// this graph before Reset, or the zero handle.
	ErrNodeDoesNotExist = errors.New("node does not exist")

	// ErrRootNodeNotComputed indicates a root node without a tensor.
	ErrRootNodeNotComputed = errors.New("root node has no tensor")

	// ErrNodeNotComputed indicates a node whose tensor was requested before
	// it was evaluated.
	ErrNodeNotComputed = errors.New("node not computed")

	// ErrParentNodeNotComputed indicates a parent that had no tensor when its
	// child was computed. Topological order rules this out, so it signals a
	// broken evaluation.
	ErrParentNodeNotComputed = errors.New("parent node not computed")

	// ErrRootNodeIsChild indicates a root node wired as the child of another
	// node.
	ErrRootNodeIsChild = errors.New("root node is a child")

	// ErrCannotClearRoot indicates an attempt to clear a root node's tensor.
	ErrCannotClearRoot = errors.New("cannot clear root node")

	// ErrComputation is matched by every *ComputationError.
	ErrComputation = errors.New("computation failed")

	// ErrNilKernel indicates a non-root edge built without a kernel.
	ErrNilKernel = errors.New("edge has no kernel")

	// ErrInvalidMode indicates an unknown evaluation mode.
	ErrInvalidMode = errors.New("invalid evaluation mode")

	// ErrNilResult indicates a kernel that returned neither a tensor nor
	// an error.
	ErrNilResult = errors.New("kernel returned a nil tensor")
)

// NodeError associates an error with the node it concerns.
type NodeError struct {
	Handle Handle
	Err    error
}

// Error implements the error interface.
func (e *NodeError) Error() string {
	return fmt.Sprintf("node %v: %v", e.Handle, e.Err)
}

// Unwrap returns the underlying error.
func (e *NodeError) Unwrap() error {
	return e.Err
}

// ComputationError wraps an error returned by a kernel.
//
// Unwrap yields the kernel error unchanged, so callers can match kernel
// error types with errors.As. errors.Is(err, ErrComputation) also holds.
type ComputationError struct {
	Handle Handle
	Op     Op
	Err    error
}

// Error implements the error interface.
func (e *ComputationError) Error() string {
	return fmt.Sprintf("node %v (%s): %v: %v", e.Handle, e.Op, ErrComputation, e.Err)
}

// Unwrap returns the kernel error.
func (e *ComputationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrComputation.
func (e *ComputationError) Is(target error) bool {
	return target == ErrComputation
}
