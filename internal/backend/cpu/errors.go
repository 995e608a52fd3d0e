package cpu

import (
	"errors"
	"fmt"

	"github.com/born-ml/lazygraph/internal/tensor"
)

// Sentinel errors for kernel failures.
var (
	// ErrShapeMismatch indicates binary operands whose shapes differ.
	// Kernels never broadcast implicitly.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrDivideByZero indicates integer division by zero.
	ErrDivideByZero = errors.New("integer divide by zero")

	// ErrUnsupported indicates an operation undefined for an element kind.
	ErrUnsupported = errors.New("operation not supported for element kind")
)

// ShapeMismatchError reports the operand shapes of a failed binary kernel.
type ShapeMismatchError struct {
	Op    string
	Left  tensor.Shape
	Right tensor.Shape
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s: %v: %v vs %v", e.Op, ErrShapeMismatch, e.Left, e.Right)
}

// Unwrap returns ErrShapeMismatch.
func (e *ShapeMismatchError) Unwrap() error {
	return ErrShapeMismatch
}

// UnsupportedError reports an operation applied to an element kind that
// cannot represent its result.
type UnsupportedError struct {
	Op    string
	DType tensor.DataType
}

// Error implements the error interface.
func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Op, ErrUnsupported, e.DType)
}

// Unwrap returns ErrUnsupported.
func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}
