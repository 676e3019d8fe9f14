package fft

import (
	"github.com/sirupsen/logrus"

	"github.com/Pro7ech/nttec/ring"
	"github.com/Pro7ech/nttec/utils/structs"
)

// Naive is the quadratic-time transform, defined for any size
// dividing the order of the multiplicative group.
type Naive[T ring.Element] struct {
	*Base[T]
	W, WInv structs.Vector[T]
}

// NewNaive creates a new [Naive] transform of size n.
func NewNaive[T ring.Element](r ring.Arithmetic[T], n int, opts ...Option) (*Naive[T], error) {

	base, err := NewBase(r, n, opts...)
	if err != nil {
		return nil, err
	}

	if err = base.checkOrder(); err != nil {
		return nil, err
	}

	w := r.NthRoot(T(n))

	t := &Naive[T]{
		Base: base,
		W:    structs.NewVector[T](n),
		WInv: structs.NewVector[T](n),
	}

	if err = r.ComputeOmegasCached(t.W, n, w); err != nil {
		return nil, err
	}

	if err = r.ComputeOmegasCached(t.WInv, n, r.Inv(w)); err != nil {
		return nil, err
	}

	base.logger.WithFields(logrus.Fields{"n": n, "w": w}).Debug("naive transform created")

	return t, nil
}

// FFT implements [Transform]. out and in must not overlap.
func (t *Naive[T]) FFT(out, in structs.Vector[T]) {
	t.checkVector(out, in)
	t.dft(out, in, t.W)
}

// IFFT implements [Transform]. out and in must not overlap.
func (t *Naive[T]) IFFT(out, in structs.Vector[T]) {
	t.checkVector(out, in)
	t.dft(out, in, t.WInv)
}

// FFTInv implements [Transform]. out and in must not overlap.
func (t *Naive[T]) FFTInv(out, in structs.Vector[T]) {
	t.IFFT(out, in)
	t.Scale(out)
}

func (t *Naive[T]) dft(out, in, W structs.Vector[T]) {
	r, n := t.Ring, t.N
	for k := 0; k < n; k++ {
		var acc T
		for j := 0; j < n; j++ {
			acc = r.Add(acc, r.Mul(in[j], W[j*k%n]))
		}
		out[k] = acc
	}
}

// FFTBuffers implements [BufferTransform]. out and in must not overlap.
func (t *Naive[T]) FFTBuffers(out, in *structs.Buffers[T]) {
	t.checkBuffers(out, in)
	t.dftBuffers(out, in, t.W)
}

// IFFTBuffers implements [BufferTransform]. out and in must not overlap.
func (t *Naive[T]) IFFTBuffers(out, in *structs.Buffers[T]) {
	t.checkBuffers(out, in)
	t.dftBuffers(out, in, t.WInv)
}

// FFTInvBuffers implements [BufferTransform]. out and in must not overlap.
func (t *Naive[T]) FFTInvBuffers(out, in *structs.Buffers[T]) {
	t.IFFTBuffers(out, in)
	t.ScaleBuffers(out)
}

func (t *Naive[T]) dftBuffers(out, in *structs.Buffers[T], W structs.Vector[T]) {

	r, n := t.Ring, t.N

	tmp := make([]T, in.Size())

	for k := 0; k < n; k++ {
		out.Fill(k, 0)
		for j := 0; j < n; j++ {
			r.MulCoefToBuf(W[j*k%n], in.Get(j), tmp)
			r.AddTwoBufs(tmp, out.Get(k))
		}
	}
}
