package structs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVector(t *testing.T) {

	v := NewVector[uint32](4)
	require.Equal(t, 4, v.Size())

	for i := 0; i < v.Size(); i++ {
		v.Set(i, uint32(i+1))
	}
	require.Equal(t, uint32(3), v.Get(2))

	c := v.Clone()
	require.True(t, v.Equal(c))
	c.Set(0, 7)
	require.False(t, v.Equal(c))
	require.Equal(t, uint32(1), v.Get(0))

	w := NewVector[uint32](2)
	w.Copy(v)
	require.Equal(t, Vector[uint32]{1, 2}, w)
}

func TestBuffers(t *testing.T) {

	t.Run("New", func(t *testing.T) {
		b := NewBuffers[uint16](3, 5)
		require.Equal(t, 3, b.N())
		require.Equal(t, 5, b.Size())

		b.Fill(1, 9)
		require.Equal(t, []uint16{0, 0, 0, 0, 0}, b.Get(0))
		require.Equal(t, []uint16{9, 9, 9, 9, 9}, b.Get(1))
		require.Equal(t, []uint16{0, 0, 0, 0, 0}, b.Get(2))

		// Rows are capped and do not overlap.
		row := append(b.Get(0), 1)
		require.Len(t, row, 6)
		require.Equal(t, uint16(9), b.Get(1)[0])

		c := b.Clone()
		require.True(t, b.Equal(c))
		c.Copy(2, []uint16{1, 2, 3, 4, 5})
		require.False(t, b.Equal(c))

		b.Zero()
		require.Equal(t, []uint16{0, 0, 0, 0, 0}, b.Get(1))
	})

	t.Run("From", func(t *testing.T) {
		rows := [][]uint64{{1, 2}, {3, 4}}
		b, err := NewBuffersFrom(rows)
		require.NoError(t, err)
		require.Equal(t, 2, b.N())
		require.Equal(t, 2, b.Size())

		b.Fill(0, 0)
		require.Equal(t, []uint64{0, 0}, rows[0])

		_, err = NewBuffersFrom([][]uint64{{1, 2}, {3}})
		require.Error(t, err)
	})
}
