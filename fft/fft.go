// Package fft defines the contract of the number-theoretic transforms over a
// [ring.RingModN] and implements it with a radix-2 and a quadratic algorithm.
//
// A transform of size n maps a vector of n ring elements, or a plane of n
// rows, to its evaluations at the powers of an n-th root of unity w:
//
//	FFT(x)[k] = sum_j x[j] * w^(j*k)
//
// IFFT evaluates the same sum at the powers of w^-1, so that IFFT(FFT(x)) = n*x,
// and FFTInv scales the result of IFFT by n^-1 so that FFTInv(FFT(x)) = x.
//
// Over a plane, the transform is applied independently to each column:
// row k of the output is a linear combination of the rows of the input.
package fft

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Pro7ech/nttec/ring"
	"github.com/Pro7ech/nttec/utils/arith"
	"github.com/Pro7ech/nttec/utils/structs"
)

// Transform is a number-theoretic transform over vectors.
// Implementations are read-only after construction and can
// be shared between goroutines.
type Transform[T ring.Element] interface {
	// Len returns the size of the transform.
	Len() int
	// FFT evaluates the forward transform of in on out.
	FFT(out, in structs.Vector[T])
	// IFFT evaluates the inverse transform of in on out, scaled by Len().
	IFFT(out, in structs.Vector[T])
	// FFTInv evaluates the inverse transform of in on out.
	FFTInv(out, in structs.Vector[T])
}

// BufferTransform is a [Transform] that can also act on planes of buffers.
type BufferTransform[T ring.Element] interface {
	Transform[T]
	FFTBuffers(out, in *structs.Buffers[T])
	IFFTBuffers(out, in *structs.Buffers[T])
	FFTInvBuffers(out, in *structs.Buffers[T])
}

// Option configures a transform.
type Option func(*options)

type options struct {
	logger logrus.FieldLogger
}

// WithLogger sets the logger of the transform.
// Defaults to [logrus.StandardLogger].
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Base is the state shared by all the transforms: the ring, the size n
// of the transform and n^-1 mod N.
type Base[T ring.Element] struct {
	Ring ring.Arithmetic[T]
	N    int
	InvN T

	logger logrus.FieldLogger
}

// NewBase creates a new [Base].
// It returns an error if n is not invertible in the ring.
func NewBase[T ring.Element](r ring.Arithmetic[T], n int, opts ...Option) (*Base[T], error) {

	o := options{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	if n < 1 {
		return nil, fmt.Errorf("invalid transform size: n=%d < 1", n)
	}

	card := uint64(r.Card())

	nModN := uint64(n) % card

	if nModN == 0 || arith.GCD(nModN, card) != 1 {
		return nil, fmt.Errorf("invalid transform size: n=%d is not invertible mod %d", n, card)
	}

	return &Base[T]{
		Ring:   r,
		N:      n,
		InvN:   r.Inv(T(nModN)),
		logger: o.logger,
	}, nil
}

// Len returns the size of the transform.
func (b *Base[T]) Len() int {
	return b.N
}

// checkOrder returns an error if n does not divide the order of the multiplicative group.
func (b *Base[T]) checkOrder() error {
	if h := uint64(b.Ring.CardMinusOne()); h%uint64(b.N) != 0 {
		return fmt.Errorf("invalid transform size: n=%d does not divide card-1=%d", b.N, h)
	}
	return nil
}

// Scale multiplies v by n^-1.
func (b *Base[T]) Scale(v structs.Vector[T]) {
	b.Ring.MulCoefToBuf(b.InvN, v, v)
}

// ScaleBuffers multiplies every row of p by n^-1.
func (b *Base[T]) ScaleBuffers(p *structs.Buffers[T]) {
	for i := 0; i < p.N(); i++ {
		b.Ring.MulCoefToBuf(b.InvN, p.Get(i), p.Get(i))
	}
}

func (b *Base[T]) checkVector(out, in structs.Vector[T]) {
	if out.Size() != b.N || in.Size() != b.N {
		panic(fmt.Errorf("invalid vector size: len(out)=%d len(in)=%d != n=%d", out.Size(), in.Size(), b.N))
	}
}

func (b *Base[T]) checkBuffers(out, in *structs.Buffers[T]) {
	if out.N() != b.N || in.N() != b.N || out.Size() != in.Size() {
		panic(fmt.Errorf("invalid plane shape: out=[%d][%d] in=[%d][%d] n=%d", out.N(), out.Size(), in.N(), in.Size(), b.N))
	}
}
