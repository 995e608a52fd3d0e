// Package tensor provides the strided tensor views and addressing primitives
// that the lazy computation graph resolves operands through.
package tensor

import "github.com/x448/float16"

// DType is a constraint for supported tensor element kinds.
// Tensors are storage only; arithmetic lives in the backend's Numeric capability.
type DType interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8 | float16.Float16
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
	Uint8
	Float16
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Float16:
		return 2
	case Uint8:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Float16:
		return "float16"
	default:
		return "unknown"
	}
}

// DataTypeOf infers the DataType for the element kind T.
func DataTypeOf[T DType]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case float16.Float16:
		return Float16
	default:
		panic("unsupported type")
	}
}
