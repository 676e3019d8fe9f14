package ring

import (
	"testing"
)

func BenchmarkRingModN(b *testing.B) {
	for _, mode := range []KernelMode{KernelsGeneric, KernelsUnrolled} {
		benchRingModN(b, newTestRing(b, uint16(Fermat3), WithKernels(mode)))
		benchRingModN(b, newTestRing(b, uint32(Fermat4), WithKernels(mode)))
	}
	benchRingModN(b, newTestRing(b, Goldilocks))
}

func benchRingModN[T Element](b *testing.B, r *RingModN[T]) {

	const size = 1 << 12

	x := randomVector(r, size)
	y := randomVector(r, size)
	c := r.WeakRand()

	b.Run(testString("Mul", r), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			x[i%size] = r.Mul(x[i%size], y[i%size])
		}
	})

	b.Run(testString("Inv", r), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			r.Inv(c)
		}
	})

	b.Run(testString("MulCoefToBuf", r), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			r.MulCoefToBuf(c, x, y)
		}
	})

	b.Run(testString("AddTwoBufs", r), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			r.AddTwoBufs(x, y)
		}
	})

	b.Run(testString("ButterflyCT", r), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			r.ButterflyCT(c, x, y)
		}
	})

	b.Run(testString("ButterflyGS", r), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			r.ButterflyGS(c, x, y)
		}
	})

	b.Run(testString("HadamardMul", r), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			r.HadamardMul(x, y)
		}
	})
}
