package tensor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalLen(t *testing.T) {
	tests := []struct {
		name string
		iv   Interval
		dim  int
		want int
	}{
		{"all", All(), 7, 7},
		{"to", To(3), 7, 3},
		{"from", From(5), 7, 2},
		{"between", Between(2, 4), 7, 2},
		{"only", Only(6), 7, 1},
		{"empty", Between(3, 3), 7, 0},
		{"step exact", BetweenStep(0, 6, 2), 7, 3},
		{"step ceil", BetweenStep(1, 8, 3), 10, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.iv.Len(tt.dim))
		})
	}
}

func TestIntervalString(t *testing.T) {
	assert.Equal(t, ":", All().String())
	assert.Equal(t, "1:8:3", BetweenStep(1, 8, 3).String())
	assert.Equal(t, ":4", To(4).String())
}

func TestNewSliceErrors(t *testing.T) {
	shape := Shape{4, 4}

	_, err := NewSlice(shape, All(), All(), All())
	require.ErrorIs(t, err, ErrRankMismatch)

	_, err = NewSlice(shape, To(5))
	require.ErrorIs(t, err, ErrInvalidInterval)

	_, err = NewSlice(shape, Between(3, 2))
	require.ErrorIs(t, err, ErrInvalidInterval)

	_, err = NewSlice(shape, BetweenStep(0, 4, 0))
	require.ErrorIs(t, err, ErrInvalidInterval)
}

// TestSliceIterMatchesNestedLoops compares the iterator against explicit
// nested loops over each dimension's selected range.
func TestSliceIterMatchesNestedLoops(t *testing.T) {
	shape := Shape{6, 5, 4, 3, 2}
	s, err := NewSlice(shape, All(), Between(2, 4), To(2), From(1), Only(1))
	require.NoError(t, err)

	assert.Equal(t, Shape{6, 2, 2, 2, 1}, s.InferredShape())
	assert.Equal(t, 48, s.NumElements())
	assert.Equal(t, Position{0, 2, 0, 1, 1}, s.Start())
	assert.Equal(t, Position{5, 3, 1, 2, 1}, s.Last())

	var want []Position
	for a := 0; a < 6; a++ {
		for b := 2; b < 4; b++ {
			for c := 0; c < 2; c++ {
				for d := 1; d < 3; d++ {
					want = append(want, Position{a, b, c, d, 1})
				}
			}
		}
	}

	var got []Position
	for pos := range s.Positions() {
		got = append(got, pos)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
}

func TestSliceIterStep(t *testing.T) {
	s, err := NewSlice(Shape{10}, BetweenStep(1, 8, 3))
	require.NoError(t, err)

	var got []Position
	for pos := range s.Positions() {
		got = append(got, pos)
	}
	assert.Equal(t, []Position{{1}, {4}, {7}}, got)
	assert.Equal(t, Position{7}, s.Last())
}

func TestSliceIterReset(t *testing.T) {
	s, err := NewSlice(Shape{3, 3}, From(1), To(2))
	require.NoError(t, err)

	it := s.Iter()
	var first []Position
	for pos, ok := it.Next(); ok; pos, ok = it.Next() {
		first = append(first, pos)
	}
	require.Len(t, first, 4)

	_, ok := it.Next()
	assert.False(t, ok)

	it.Reset()
	var second []Position
	for pos, ok := it.Next(); ok; pos, ok = it.Next() {
		second = append(second, pos)
	}
	assert.Equal(t, first, second)
}

func TestSliceIterEmpty(t *testing.T) {
	s, err := NewSlice(Shape{4, 4}, Between(2, 2))
	require.NoError(t, err)

	_, ok := s.Iter().Next()
	assert.False(t, ok)
}

func TestSliceIterRankZero(t *testing.T) {
	s, err := NewSlice(Shape{})
	require.NoError(t, err)

	var got []Position
	for pos := range s.Positions() {
		got = append(got, pos)
	}
	require.Len(t, got, 1)
	assert.Empty(t, got[0])
}

func TestSliceMissingTrailingIntervals(t *testing.T) {
	s, err := NewSlice(Shape{4, 3, 2}, Only(2))
	require.NoError(t, err)
	assert.Equal(t, Shape{1, 3, 2}, s.InferredShape())
}
