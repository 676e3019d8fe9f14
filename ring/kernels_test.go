package ring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Pro7ech/nttec/utils/sampling"
)

func TestKernelsConformance(t *testing.T) {

	for _, card := range []uint16{3, 17, Fermat3, 65521} {
		testKernelsConformance(t, card)
	}

	for _, card := range []uint32{Fermat4, BabyBear, 4294967291} {
		testKernelsConformance(t, card)
	}
}

func testKernelsConformance[T narrow](t *testing.T, card T) {

	var generic, unrolled Kernels[T] = genericKernels[T]{card: card}, newUnrolledKernels(card)

	source := sampling.NewSource(testSeed)

	random := func(n int) []T {
		x := make([]T, n)
		for i := range x {
			x[i] = T(source.Uint64N(uint64(card)))
		}
		// Edge values.
		if n > 1 {
			x[0], x[1] = 0, card-1
		}
		return x
	}

	clone := func(x []T) []T {
		return append([]T{}, x...)
	}

	for _, n := range []int{0, 1, 7, 8, 9, 16, 63, 100} {

		t.Run(fmt.Sprintf("card=%d/T=%T/n=%d", card, card, n), func(t *testing.T) {

			x, y := random(n), random(n)
			c := T(source.Uint64N(uint64(card)))

			a, b := clone(x), clone(x)
			generic.Neg(a)
			unrolled.Neg(b)
			require.Equal(t, a, b, "Neg")

			a, b = make([]T, n), make([]T, n)
			generic.MulCoef(c, x, a)
			unrolled.MulCoef(c, x, b)
			require.Equal(t, a, b, "MulCoef")

			a, b = clone(y), clone(y)
			generic.Add(x, a)
			unrolled.Add(x, b)
			require.Equal(t, a, b, "Add")

			a, b = make([]T, n), make([]T, n)
			generic.Sub(x, y, a)
			unrolled.Sub(x, y, b)
			require.Equal(t, a, b, "Sub")

			p0, q0, p1, q1 := clone(x), clone(y), clone(x), clone(y)
			generic.ButterflyCT(c, p0, q0)
			unrolled.ButterflyCT(c, p1, q1)
			require.Equal(t, p0, p1, "ButterflyCT")
			require.Equal(t, q0, q1, "ButterflyCT")

			p0, q0, p1, q1 = clone(x), clone(y), clone(x), clone(y)
			generic.ButterflyGS(c, p0, q0)
			unrolled.ButterflyGS(c, p1, q1)
			require.Equal(t, p0, p1, "ButterflyGS")
			require.Equal(t, q0, q1, "ButterflyGS")

			a, b = clone(x), clone(x)
			generic.HadamardMul(a, y)
			unrolled.HadamardMul(b, y)
			require.Equal(t, a, b, "HadamardMul")

			a, b = clone(x), clone(x)
			generic.HadamardMulDoubled(a, y)
			unrolled.HadamardMulDoubled(b, y)
			require.Equal(t, a, b, "HadamardMulDoubled")

			a, b = clone(x), clone(x)
			generic.AddDoubled(a, y)
			unrolled.AddDoubled(b, y)
			require.Equal(t, a, b, "AddDoubled")
		})
	}
}

func TestSelectKernels(t *testing.T) {

	r := newTestRing(t, uint16(Fermat3), WithKernels(KernelsGeneric))
	require.Equal(t, "generic", r.Kernels())

	r = newTestRing(t, uint16(Fermat3), WithKernels(KernelsUnrolled))
	require.Equal(t, "unrolled", r.Kernels())

	r64 := newTestRing(t, uint64(Fermat4), WithKernels(KernelsUnrolled))
	require.Equal(t, "generic", r64.Kernels())

	r = newTestRing(t, uint16(Fermat3))
	if HasVectorUnit() {
		require.Equal(t, "unrolled", r.Kernels())
	} else {
		require.Equal(t, "generic", r.Kernels())
	}

	type word uint32
	rw := newTestRing(t, word(Fermat4), WithKernels(KernelsUnrolled))
	require.Equal(t, "generic", rw.Kernels())
}
