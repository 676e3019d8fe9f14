// Package structs implements the containers the ring operations act on:
// fixed-size vectors and planes of equal-length buffers.
package structs

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// Vector is a struct wrapping a slice of components of type T.
// Its size is fixed at creation.
type Vector[T any] []T

// NewVector allocates a new zeroed [Vector] of the given size.
func NewVector[T any](size int) Vector[T] {
	return make([]T, size)
}

// Size returns the size of the receiver.
func (v Vector[T]) Size() int {
	return len(v)
}

// Get returns the i-th component of the receiver.
func (v Vector[T]) Get(i int) T {
	return v[i]
}

// Set sets the i-th component of the receiver to x.
func (v Vector[T]) Set(i int, x T) {
	v[i] = x
}

// Copy copies the operand on the receiver, up to the
// maximum available size between the two.
func (v Vector[T]) Copy(other Vector[T]) {
	copy(v, other)
}

// Clone returns a deep copy of the object.
func (v Vector[T]) Clone() (vcpy Vector[T]) {
	vcpy = make([]T, len(v))
	copy(vcpy, v)
	return
}

// Equal performs a deep equal.
func (v Vector[T]) Equal(other Vector[T]) bool {
	return cmp.Equal([]T(v), []T(other))
}

// String implements [fmt.Stringer].
func (v Vector[T]) String() string {
	return fmt.Sprintf("%v", []T(v))
}
