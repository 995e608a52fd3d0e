package tensor

import (
	"fmt"
	"iter"
)

// Interval selects a range along one dimension. Unset bounds default to
// 0 (start), the dimension size (end) and 1 (step).
type Interval struct {
	start, end, step          int
	hasStart, hasEnd, hasStep bool
}

// All selects the whole dimension.
func All() Interval {
	return Interval{}
}

// To selects [0, end).
func To(end int) Interval {
	return Interval{end: end, hasEnd: true}
}

// From selects [start, dim).
func From(start int) Interval {
	return Interval{start: start, hasStart: true}
}

// Between selects [start, end).
func Between(start, end int) Interval {
	return Interval{start: start, end: end, hasStart: true, hasEnd: true}
}

// BetweenStep selects every step-th index of [start, end).
func BetweenStep(start, end, step int) Interval {
	return Interval{start: start, end: end, step: step, hasStart: true, hasEnd: true, hasStep: true}
}

// Only selects the single index i, keeping the dimension with size 1.
func Only(i int) Interval {
	return Between(i, i+1)
}

// StartIndex returns the first selected index.
func (iv Interval) StartIndex() int {
	if iv.hasStart {
		return iv.start
	}
	return 0
}

// EndIndex returns the exclusive end for a dimension of size dim.
func (iv Interval) EndIndex(dim int) int {
	if iv.hasEnd {
		return iv.end
	}
	return dim
}

// Step returns the step between selected indices.
func (iv Interval) Step() int {
	if iv.hasStep {
		return iv.step
	}
	return 1
}

// Len returns the number of indices selected in a dimension of size dim.
func (iv Interval) Len(dim int) int {
	span := iv.EndIndex(dim) - iv.StartIndex()
	if span <= 0 {
		return 0
	}
	step := iv.Step()
	return (span + step - 1) / step
}

func (iv Interval) validate(dim int) error {
	start, end, step := iv.StartIndex(), iv.EndIndex(dim), iv.Step()
	switch {
	case step < 1:
		return fmt.Errorf("%w: step %d must be at least 1", ErrInvalidInterval, step)
	case start < 0 || start > end:
		return fmt.Errorf("%w: start %d not within [0, %d]", ErrInvalidInterval, start, end)
	case end > dim:
		return fmt.Errorf("%w: end %d exceeds dimension size %d", ErrInvalidInterval, end, dim)
	}
	return nil
}

// String formats the interval in start:end:step notation.
func (iv Interval) String() string {
	s := ""
	if iv.hasStart {
		s = fmt.Sprint(iv.start)
	}
	s += ":"
	if iv.hasEnd {
		s += fmt.Sprint(iv.end)
	}
	if iv.hasStep {
		s += fmt.Sprintf(":%d", iv.step)
	}
	return s
}

// Slice binds one interval per dimension to the shape it selects from.
type Slice struct {
	intervals []Interval
	shape     Shape
}

// NewSlice validates intervals against shape. Dimensions without an
// interval are selected whole.
func NewSlice(shape Shape, intervals ...Interval) (Slice, error) {
	if len(intervals) > len(shape) {
		return Slice{}, fmt.Errorf("%w: %d intervals for shape %v", ErrRankMismatch, len(intervals), shape)
	}

	full := make([]Interval, len(shape))
	copy(full, intervals)
	for i := len(intervals); i < len(shape); i++ {
		full[i] = All()
	}

	for i, iv := range full {
		if err := iv.validate(shape[i]); err != nil {
			return Slice{}, fmt.Errorf("dimension %d: %w", i, err)
		}
	}

	return Slice{intervals: full, shape: shape.Clone()}, nil
}

// Intervals returns the per-dimension intervals.
func (s Slice) Intervals() []Interval {
	return append([]Interval(nil), s.intervals...)
}

// InferredShape returns the shape of the selected region.
func (s Slice) InferredShape() Shape {
	inferred := make(Shape, len(s.intervals))
	for i, iv := range s.intervals {
		inferred[i] = iv.Len(s.shape[i])
	}
	return inferred
}

// NumElements returns the number of selected positions.
func (s Slice) NumElements() int {
	return s.InferredShape().NumElements()
}

// Start returns the absolute coordinate of the first selected position.
func (s Slice) Start() Position {
	start := make(Position, len(s.intervals))
	for i, iv := range s.intervals {
		start[i] = iv.StartIndex()
	}
	return start
}

// Last returns the absolute coordinate of the last selected position.
// Only meaningful when NumElements() > 0.
func (s Slice) Last() Position {
	last := make(Position, len(s.intervals))
	for i, iv := range s.intervals {
		last[i] = iv.StartIndex() + (iv.Len(s.shape[i])-1)*iv.Step()
	}
	return last
}

// absolute maps a coordinate of the selected region back into the source shape.
func (s Slice) absolute(rel Position) Position {
	abs := make(Position, len(rel))
	for i, iv := range s.intervals {
		abs[i] = iv.StartIndex() + rel[i]*iv.Step()
	}
	return abs
}

// Iter returns a pull iterator over the selected absolute coordinates.
func (s Slice) Iter() *SliceIter {
	it := &SliceIter{slice: s, shape: s.InferredShape()}
	it.Reset()
	return it
}

// Positions returns the selected absolute coordinates in row-major order.
// The sequence can be ranged over any number of times.
func (s Slice) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		it := s.Iter()
		for {
			pos, ok := it.Next()
			if !ok || !yield(pos) {
				return
			}
		}
	}
}

// SliceIter walks the selected region of a Slice. It yields exactly
// InferredShape().NumElements() positions.
type SliceIter struct {
	slice     Slice
	shape     Shape
	rel       Position
	remaining int
}

// Reset rewinds the iterator to the first position.
func (it *SliceIter) Reset() {
	it.rel = it.shape.First()
	it.remaining = it.shape.NumElements()
}

// Next returns the next absolute position, or false once exhausted.
func (it *SliceIter) Next() (Position, bool) {
	if it.remaining == 0 {
		return nil, false
	}
	out := it.slice.absolute(it.rel)
	it.remaining--
	if it.remaining > 0 {
		// Cannot overflow: remaining > 0 means rel is not the last position.
		_ = it.rel.Advance(it.shape, 1)
	}
	return out, true
}
