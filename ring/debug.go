package ring

import (
	"fmt"
)

// assertElement panics if a is not in [0, N).
// It is a no-op unless built with the ringdebug tag.
func assertElement[T Element](r *RingModN[T], a T) {
	if debug && !r.Check(a) {
		panic(fmt.Errorf("invalid element: %d not in [0, %d)", a, r.card))
	}
}

func assertLen(want int, got ...int) {
	if !debug {
		return
	}
	for _, n := range got {
		if n < want {
			panic(fmt.Errorf("invalid buffer length: %d < %d", n, want))
		}
	}
}

func assertShape(n, size int, planes ...interface {
	N() int
	Size() int
}) {
	if !debug {
		return
	}
	for _, p := range planes {
		if p.N() != n || p.Size() != size {
			panic(fmt.Errorf("invalid plane shape: [%d][%d] != [%d][%d]", p.N(), p.Size(), n, size))
		}
	}
}
