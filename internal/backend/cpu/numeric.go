package cpu

import (
	"github.com/x448/float16"
)

// Numeric is the arithmetic capability of one element kind.
//
// Kernels are instantiated with a concrete Numeric type parameter, so every
// call below is resolved statically and inlined into the element loop.
type Numeric[T any] interface {
	Zero() T
	One() T
	Abs(a T) T
	Neg(a T) T
	Less(a, b T) bool
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Div(a, b T) T
	IsZero(a T) bool

	// Signed reports whether Neg is defined for the kind.
	Signed() bool
	// Integral reports whether division truncates and traps on zero.
	Integral() bool
}

// Signed implements Numeric for the built-in signed kinds.
type Signed[T float32 | float64 | int32 | int64] struct{}

func (Signed[T]) Zero() T { return 0 }
func (Signed[T]) One() T { return 1 }
func (Signed[T]) Neg(a T) T { return -a }
func (Signed[T]) Less(a, b T) bool { return a < b }
func (Signed[T]) Add(a, b T) T { return a + b }
func (Signed[T]) Sub(a, b T) T { return a - b }
func (Signed[T]) Mul(a, b T) T { return a * b }
func (Signed[T]) Div(a, b T) T { return a / b }
func (Signed[T]) IsZero(a T) bool { return a == 0 }
func (Signed[T]) Signed() bool { return true }

// Abs returns |a|. Negative zero maps to positive zero.
func (Signed[T]) Abs(a T) T {
	if a < 0 {
		return -a
	}
	return a + 0
}

// Integral reports true for int32 and int64.
func (Signed[T]) Integral() bool {
	var zero T
	switch any(zero).(type) {
	case int32, int64:
		return true
	}
	return false
}

// Unsigned8 implements Numeric for uint8. Arithmetic wraps modulo 256.
type Unsigned8 struct{}

func (Unsigned8) Zero() uint8 { return 0 }
func (Unsigned8) One() uint8 { return 1 }
func (Unsigned8) Abs(a uint8) uint8 { return a }
func (Unsigned8) Neg(a uint8) uint8 { return -a }
func (Unsigned8) Less(a, b uint8) bool { return a < b }
func (Unsigned8) Add(a, b uint8) uint8 { return a + b }
func (Unsigned8) Sub(a, b uint8) uint8 { return a - b }
func (Unsigned8) Mul(a, b uint8) uint8 { return a * b }
func (Unsigned8) Div(a, b uint8) uint8 { return a / b }
func (Unsigned8) IsZero(a uint8) bool { return a == 0 }
func (Unsigned8) Signed() bool { return false }
func (Unsigned8) Integral() bool { return true }

// Half implements Numeric for IEEE 754 half precision. Arithmetic is
// carried out in float32 and rounded back to nearest-even.
type Half struct{}

const halfSignBit = 0x8000

func (Half) Zero() float16.Float16 { return float16.Fromfloat32(0) }
func (Half) One() float16.Float16 { return float16.Fromfloat32(1) }

func (Half) Abs(a float16.Float16) float16.Float16 {
	return float16.Frombits(a.Bits() &^ halfSignBit)
}

func (Half) Neg(a float16.Float16) float16.Float16 {
	return float16.Frombits(a.Bits() ^ halfSignBit)
}

func (Half) Less(a, b float16.Float16) bool {
	return a.Float32() < b.Float32()
}

func (Half) Add(a, b float16.Float16) float16.Float16 {
	return float16.Fromfloat32(a.Float32() + b.Float32())
}

func (Half) Sub(a, b float16.Float16) float16.Float16 {
	return float16.Fromfloat32(a.Float32() - b.Float32())
}

func (Half) Mul(a, b float16.Float16) float16.Float16 {
	return float16.Fromfloat32(a.Float32() * b.Float32())
}

func (Half) Div(a, b float16.Float16) float16.Float16 {
	return float16.Fromfloat32(a.Float32() / b.Float32())
}

func (Half) IsZero(a float16.Float16) bool { return a.Float32() == 0 }
func (Half) Signed() bool { return true }
func (Half) Integral() bool { return false }
