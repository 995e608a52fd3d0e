package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{2, 3, 4}, 24},
		{Shape{2, 0, 4}, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.shape.NumElements(), "shape %v", tt.shape)
	}
}

func TestShapeFirstLast(t *testing.T) {
	s := Shape{3, 5, 2}
	assert.Equal(t, Position{0, 0, 0}, s.First())
	assert.Equal(t, Position{2, 4, 1}, s.Last())
}

func TestShapeValidate(t *testing.T) {
	require.NoError(t, Shape{2, 0, 3}.Validate())
	require.ErrorIs(t, Shape{2, -1}.Validate(), ErrInvalidShape)
}

func TestDefaultStride(t *testing.T) {
	tests := []struct {
		shape Shape
		want  Stride
	}{
		{Shape{1}, Stride{1}},
		{Shape{20, 50, 4}, Stride{200, 4, 1}},
		{Shape{}, Stride{}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DefaultStride(tt.shape), "shape %v", tt.shape)
	}
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Shape
		want    Shape
		wantErr bool
	}{
		{"column", Shape{3, 1}, Shape{3, 5}, Shape{3, 5}, false},
		{"row", Shape{1, 5}, Shape{3, 5}, Shape{3, 5}, false},
		{"leading", Shape{5}, Shape{2, 3, 5}, Shape{2, 3, 5}, false},
		{"same", Shape{3, 5}, Shape{3, 5}, Shape{3, 5}, false},
		{"incompatible", Shape{3, 4}, Shape{3, 5}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BroadcastShapes(tt.a, tt.b)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrNotBroadcastable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDataTypeOf(t *testing.T) {
	assert.Equal(t, Float32, DataTypeOf[float32]())
	assert.Equal(t, Int64, DataTypeOf[int64]())
	assert.Equal(t, "uint8", DataTypeOf[uint8]().String())
	assert.Equal(t, 8, Float64.Size())
}
