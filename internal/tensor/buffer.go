package tensor

// tensorBuffer is the shared backing store of one or more tensor views.
// It is never written after construction, so views alias it freely across
// goroutines; the garbage collector reclaims it once the last view is gone.
type tensorBuffer[T DType] struct {
	data []T
}

// newTensorBuffer wraps data without copying it.
func newTensorBuffer[T DType](data []T) *tensorBuffer[T] {
	return &tensorBuffer[T]{data: data}
}

// len returns the number of stored elements.
func (tb *tensorBuffer[T]) len() int {
	return len(tb.data)
}
