package structs

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// Buffers is a plane of N() rows of Size() elements each.
// Rows are either carved out of a single contiguous allocation
// (see [NewBuffers]) or owned by the caller (see [NewBuffersFrom]).
type Buffers[T any] struct {
	size int
	mem  [][]T
}

// NewBuffers allocates a new zeroed plane of n rows of size elements.
func NewBuffers[T any](n, size int) *Buffers[T] {
	buf := make([]T, n*size)
	mem := make([][]T, n)
	for i := range mem {
		mem[i] = buf[i*size : (i+1)*size : (i+1)*size]
	}
	return &Buffers[T]{size: size, mem: mem}
}

// NewBuffersFrom wraps the given rows in a plane without copying them.
// All rows must have the same length.
func NewBuffersFrom[T any](rows [][]T) (*Buffers[T], error) {

	var size int
	if len(rows) != 0 {
		size = len(rows[0])
	}

	for i := range rows {
		if len(rows[i]) != size {
			return nil, fmt.Errorf("invalid row: len(rows[%d])=%d != len(rows[0])=%d", i, len(rows[i]), size)
		}
	}

	return &Buffers[T]{size: size, mem: rows}, nil
}

// N returns the number of rows.
func (b *Buffers[T]) N() int {
	return len(b.mem)
}

// Size returns the number of elements per row.
func (b *Buffers[T]) Size() int {
	return b.size
}

// Get returns the i-th row.
func (b *Buffers[T]) Get(i int) []T {
	return b.mem[i]
}

// Mem returns all the rows.
func (b *Buffers[T]) Mem() [][]T {
	return b.mem
}

// Copy copies src into the i-th row.
func (b *Buffers[T]) Copy(i int, src []T) {
	copy(b.mem[i], src)
}

// Fill sets all the elements of the i-th row to v.
func (b *Buffers[T]) Fill(i int, v T) {
	row := b.mem[i]
	for j := range row {
		row[j] = v
	}
}

// Zero sets all the elements of the plane to the zero value.
func (b *Buffers[T]) Zero() {
	for i := range b.mem {
		clear(b.mem[i])
	}
}

// Clone returns a deep copy of the plane, backed by a contiguous allocation.
func (b *Buffers[T]) Clone() *Buffers[T] {
	c := NewBuffers[T](b.N(), b.Size())
	for i := range b.mem {
		c.Copy(i, b.mem[i])
	}
	return c
}

// Equal performs a deep equal.
func (b *Buffers[T]) Equal(other *Buffers[T]) bool {
	return b.size == other.size && cmp.Equal(b.mem, other.mem)
}
