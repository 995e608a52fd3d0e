package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arange(t *testing.T, shape Shape) *Tensor[int32] {
	t.Helper()
	data := make([]int32, shape.NumElements())
	for i := range data {
		data[i] = int32(i)
	}
	out, err := FromSlice(data, shape)
	require.NoError(t, err)
	return out
}

func TestTensorGet(t *testing.T) {
	m := arange(t, Shape{3, 3})

	v, err := m.Get(Position{1, 2})
	require.NoError(t, err)
	assert.Equal(t, int32(5), v)

	_, err = m.Get(Position{3, 0})
	require.ErrorIs(t, err, ErrOutOfBounds)

	_, err = m.Get(Position{1})
	require.ErrorIs(t, err, ErrRankMismatch)

	assert.Equal(t, int32(7), m.At(2, 1))
	assert.Panics(t, func() { m.At(9, 9) })
}

func TestTensorSlice(t *testing.T) {
	m := arange(t, Shape{3, 3})

	sub, err := m.Slice(From(1), To(2))
	require.NoError(t, err)

	assert.Equal(t, Shape{2, 2}, sub.Shape())
	assert.Equal(t, Stride{3, 1}, sub.Stride())
	assert.Equal(t, 3, sub.Offset())
	assert.True(t, sub.SharesBuffer(m))
	assert.False(t, sub.IsContiguous())
	assert.Equal(t, []int32{3, 4, 6, 7}, sub.ToSlice())
}

func TestTensorNestedSlice(t *testing.T) {
	m := arange(t, Shape{4, 4})

	outer, err := m.Slice(From(1), From(1))
	require.NoError(t, err)
	inner, err := outer.Slice(From(1), Only(1))
	require.NoError(t, err)

	assert.Equal(t, Shape{2, 1}, inner.Shape())
	assert.Equal(t, []int32{10, 14}, inner.ToSlice())
	assert.Equal(t, 10, inner.Offset())
}

func TestTensorStepSlice(t *testing.T) {
	v := arange(t, Shape{10})

	stepped, err := v.Slice(BetweenStep(1, 8, 3))
	require.NoError(t, err)
	assert.Equal(t, Stride{3}, stepped.Stride())
	assert.Equal(t, []int32{1, 4, 7}, stepped.ToSlice())
}

func TestTensorEmptySlice(t *testing.T) {
	m := arange(t, Shape{3, 3})

	empty, err := m.Slice(Between(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.NumElements())
	assert.Empty(t, empty.ToSlice())

	_, err = m.Slice(To(4))
	require.ErrorIs(t, err, ErrInvalidInterval)
}

func TestTensorReshape(t *testing.T) {
	m := arange(t, Shape{2, 6})

	r, err := m.Reshape(Shape{3, 4})
	require.NoError(t, err)
	assert.True(t, r.SharesBuffer(m), "contiguous reshape must not copy")
	assert.Equal(t, int32(5), r.At(1, 1))

	sub, err := m.Slice(All(), To(4))
	require.NoError(t, err)
	r2, err := sub.Reshape(Shape{8})
	require.NoError(t, err)
	assert.False(t, r2.SharesBuffer(m))
	assert.Equal(t, []int32{0, 1, 2, 3, 6, 7, 8, 9}, r2.ToSlice())

	_, err = m.Reshape(Shape{5})
	require.ErrorIs(t, err, ErrElementCountMismatch)
}

func TestTensorBroadcastSplice(t *testing.T) {
	row := arange(t, Shape{3})

	grid, err := row.BroadcastSplice(0, 4)
	require.NoError(t, err)
	assert.Equal(t, Shape{4, 3}, grid.Shape())
	assert.Equal(t, Stride{0, 1}, grid.Stride())
	assert.Equal(t, int32(2), grid.At(3, 2))
	assert.True(t, grid.SharesBuffer(row))

	_, err = row.BroadcastSplice(2, 4)
	require.ErrorIs(t, err, ErrInvalidBroadcast)
}

func TestTensorBroadcastTo(t *testing.T) {
	col := arange(t, Shape{3, 1})

	b, err := col.BroadcastTo(Shape{2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, Stride{0, 1, 0}, b.Stride())
	assert.Equal(t, int32(2), b.At(1, 2, 3))

	_, err = col.BroadcastTo(Shape{3})
	require.ErrorIs(t, err, ErrNotBroadcastable)
}

func TestTensorSqueeze(t *testing.T) {
	m := arange(t, Shape{1, 3, 1})
	s := m.Squeeze()
	assert.Equal(t, Shape{3}, s.Shape())
	assert.Equal(t, []int32{0, 1, 2}, s.ToSlice())
}

func TestTensorEqual(t *testing.T) {
	m := arange(t, Shape{3, 3})
	sub, err := m.Slice(All(), Only(1))
	require.NoError(t, err)

	want, err := FromSlice([]int32{1, 4, 7}, Shape{3, 1})
	require.NoError(t, err)

	assert.True(t, sub.Equal(want), "equality ignores stride and offset")
	assert.True(t, sub.Materialize().Equal(want))
	assert.True(t, sub.Materialize().IsContiguous())

	other, err := FromSlice([]int32{1, 4, 7}, Shape{1, 3})
	require.NoError(t, err)
	assert.False(t, sub.Equal(other), "shapes differ")

	var nilTensor *Tensor[int32]
	assert.False(t, sub.Equal(nilTensor))
}

func TestTensorAll(t *testing.T) {
	m := arange(t, Shape{2, 2})

	var positions []Position
	var values []int32
	for pos, v := range m.All() {
		positions = append(positions, pos)
		values = append(values, v)
	}
	assert.Equal(t, []Position{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, positions)
	assert.Equal(t, []int32{0, 1, 2, 3}, values)
}

func TestTensorScalar(t *testing.T) {
	s := Scalar[float64](2.5)
	assert.Equal(t, 0, s.Rank())
	assert.Equal(t, 1, s.NumElements())
	assert.Equal(t, 2.5, s.At())
	assert.Equal(t, []float64{2.5}, s.ToSlice())
	assert.Equal(t, Float64, s.DType())
}

func TestTensorString(t *testing.T) {
	m := arange(t, Shape{2, 2})
	assert.Equal(t, "Tensor[int32][2 2] [0 1 2 3]", m.String())
}
