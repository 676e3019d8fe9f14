package fft

import (
	"fmt"
	"math/bits"

	"github.com/sirupsen/logrus"

	"github.com/Pro7ech/nttec/ring"
	"github.com/Pro7ech/nttec/utils/structs"
)

// Radix2 is the iterative radix-2 transform, defined for sizes that are
// powers of two dividing the order of the multiplicative group.
//
// The forward transform permutes its input in bit-reversed order then
// applies log(n) stages of Cooley-Tukey butterflies. The inverse applies
// log(n) stages of Gentleman-Sande butterflies on its input in natural
// order then permutes the result in bit-reversed order.
type Radix2[T ring.Element] struct {
	*Base[T]
	LogN int

	// W[i] = w^i and WInv[i] = w^-i for i < n.
	W, WInv structs.Vector[T]
}

// NewRadix2 creates a new [Radix2] transform of size n.
func NewRadix2[T ring.Element](r ring.Arithmetic[T], n int, opts ...Option) (*Radix2[T], error) {

	if n < 1 || n&(n-1) != 0 {
		return nil, fmt.Errorf("invalid transform size: n=%d is not a power of two", n)
	}

	base, err := NewBase(r, n, opts...)
	if err != nil {
		return nil, err
	}

	if err = base.checkOrder(); err != nil {
		return nil, err
	}

	w := r.NthRoot(T(n))

	t := &Radix2[T]{
		Base: base,
		LogN: bits.Len64(uint64(n)) - 1,
		W:    structs.NewVector[T](n),
		WInv: structs.NewVector[T](n),
	}

	if err = r.ComputeOmegasCached(t.W, n, w); err != nil {
		return nil, err
	}

	if err = r.ComputeOmegasCached(t.WInv, n, r.Inv(w)); err != nil {
		return nil, err
	}

	base.logger.WithFields(logrus.Fields{"n": n, "w": w}).Debug("radix-2 transform created")

	return t, nil
}

func (t *Radix2[T]) bitReverse(i int) int {
	return int(bits.Reverse64(uint64(i)) >> (64 - t.LogN))
}

// FFT implements [Transform]. out and in can be the same vector.
func (t *Radix2[T]) FFT(out, in structs.Vector[T]) {

	t.checkVector(out, in)

	out.Copy(in)

	if t.N == 1 {
		return
	}

	for i := 0; i < t.N; i++ {
		if j := t.bitReverse(i); i < j {
			out[i], out[j] = out[j], out[i]
		}
	}

	r := t.Ring

	t.cooleyTukey(func(c T, i, j int) {
		a, b := out[i], r.Mul(c, out[j])
		out[i], out[j] = r.Add(a, b), r.Sub(a, b)
	})
}

// IFFT implements [Transform]. out and in can be the same vector.
func (t *Radix2[T]) IFFT(out, in structs.Vector[T]) {

	t.checkVector(out, in)

	out.Copy(in)

	if t.N == 1 {
		return
	}

	r := t.Ring

	t.gentlemanSande(func(c T, i, j int) {
		a, b := out[i], out[j]
		out[i], out[j] = r.Add(a, b), r.Mul(c, r.Sub(a, b))
	})

	for i := 0; i < t.N; i++ {
		if j := t.bitReverse(i); i < j {
			out[i], out[j] = out[j], out[i]
		}
	}
}

// FFTInv implements [Transform]. out and in can be the same vector.
func (t *Radix2[T]) FFTInv(out, in structs.Vector[T]) {
	t.IFFT(out, in)
	t.Scale(out)
}

// FFTBuffers implements [BufferTransform]. out and in can be the same plane.
func (t *Radix2[T]) FFTBuffers(out, in *structs.Buffers[T]) {

	t.checkBuffers(out, in)

	copyBuffers(out, in)

	if t.N == 1 {
		return
	}

	t.bitReverseBuffers(out)

	t.cooleyTukey(func(c T, i, j int) {
		t.Ring.ButterflyCT(c, out.Get(i), out.Get(j))
	})
}

// IFFTBuffers implements [BufferTransform]. out and in can be the same plane.
func (t *Radix2[T]) IFFTBuffers(out, in *structs.Buffers[T]) {

	t.checkBuffers(out, in)

	copyBuffers(out, in)

	if t.N == 1 {
		return
	}

	t.gentlemanSande(func(c T, i, j int) {
		t.Ring.ButterflyGS(c, out.Get(i), out.Get(j))
	})

	t.bitReverseBuffers(out)
}

// FFTInvBuffers implements [BufferTransform]. out and in can be the same plane.
func (t *Radix2[T]) FFTInvBuffers(out, in *structs.Buffers[T]) {
	t.IFFTBuffers(out, in)
	t.ScaleBuffers(out)
}

// cooleyTukey schedules the decimation-in-time stages, from the
// butterflies of span 1 to the butterflies of span n/2.
func (t *Radix2[T]) cooleyTukey(butterfly func(c T, i, j int)) {
	n := t.N
	for m := 2; m <= n; m <<= 1 {
		half, step := m>>1, n/m
		for k := 0; k < n; k += m {
			for j := 0; j < half; j++ {
				butterfly(t.W[j*step], k+j, k+j+half)
			}
		}
	}
}

// gentlemanSande schedules the decimation-in-frequency stages, from the
// butterflies of span n/2 to the butterflies of span 1.
func (t *Radix2[T]) gentlemanSande(butterfly func(c T, i, j int)) {
	n := t.N
	for m := n; m >= 2; m >>= 1 {
		half, step := m>>1, n/m
		for k := 0; k < n; k += m {
			for j := 0; j < half; j++ {
				butterfly(t.WInv[j*step], k+j, k+j+half)
			}
		}
	}
}

func (t *Radix2[T]) bitReverseBuffers(p *structs.Buffers[T]) {
	tmp := make([]T, p.Size())
	for i := 0; i < t.N; i++ {
		if j := t.bitReverse(i); i < j {
			copy(tmp, p.Get(i))
			p.Copy(i, p.Get(j))
			p.Copy(j, tmp)
		}
	}
}

func copyBuffers[T ring.Element](out, in *structs.Buffers[T]) {
	if out == in {
		return
	}
	for i := 0; i < in.N(); i++ {
		out.Copy(i, in.Get(i))
	}
}
