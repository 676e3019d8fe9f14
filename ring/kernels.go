package ring

import (
	"github.com/Pro7ech/nttec/utils/arith"
)

// Kernels is the contract of the batched buffer operations of a ring.
// All implementations are bit-exact: they differ only in throughput.
// Operands are in [0, card) and buffers are at least len(x) long,
// where x is the first buffer argument.
type Kernels[T Element] interface {
	// Name returns the name of the implementation.
	Name() string
	// Neg evaluates x[i] = -x[i].
	Neg(x []T)
	// MulCoef evaluates dst[i] = a * src[i].
	MulCoef(a T, src, dst []T)
	// Add evaluates dst[i] = src[i] + dst[i].
	Add(src, dst []T)
	// Sub evaluates res[i] = a[i] - b[i].
	Sub(a, b, res []T)
	// ButterflyCT evaluates p[i], q[i] = p[i] + c*q[i], p[i] - c*q[i].
	ButterflyCT(c T, p, q []T)
	// ButterflyGS evaluates p[i], q[i] = p[i] + q[i], c*(p[i] - q[i]).
	ButterflyGS(c T, p, q []T)
	// HadamardMul evaluates x[i] = x[i] * y[i].
	HadamardMul(x, y []T)
	// HadamardMulDoubled evaluates x[i] = x[i] * y[i] and
	// x[i+len(x)/2] = x[i+len(x)/2] * y[i] for i < len(x)/2.
	HadamardMulDoubled(x, y []T)
	// AddDoubled evaluates x[i] = x[i] + y[i] and
	// x[i+len(x)/2] = x[i+len(x)/2] + y[i] for i < len(x)/2.
	AddDoubled(x, y []T)
}

func addMod[T Element](a, b, q T) T {
	c := a + b
	if c >= q || c < a {
		c -= q
	}
	return c
}

func subMod[T Element](a, b, q T) T {
	if a >= b {
		return a - b
	}
	return q - (b - a)
}

// genericKernels implements [Kernels] with scalar loops, for any element type.
type genericKernels[T Element] struct {
	card T
}

func (k genericKernels[T]) Name() string {
	return "generic"
}

func (k genericKernels[T]) Neg(x []T) {
	for i := range x {
		x[i] = subMod(0, x[i], k.card)
	}
}

func (k genericKernels[T]) MulCoef(a T, src, dst []T) {
	dst = dst[:len(src)]
	for i := range src {
		dst[i] = arith.MulMod(a, src[i], k.card)
	}
}

func (k genericKernels[T]) Add(src, dst []T) {
	dst = dst[:len(src)]
	for i := range src {
		dst[i] = addMod(src[i], dst[i], k.card)
	}
}

func (k genericKernels[T]) Sub(a, b, res []T) {
	b, res = b[:len(a)], res[:len(a)]
	for i := range a {
		res[i] = subMod(a[i], b[i], k.card)
	}
}

func (k genericKernels[T]) ButterflyCT(c T, p, q []T) {
	q = q[:len(p)]
	for i := range p {
		a := p[i]
		b := arith.MulMod(c, q[i], k.card)
		p[i] = addMod(a, b, k.card)
		q[i] = subMod(a, b, k.card)
	}
}

func (k genericKernels[T]) ButterflyGS(c T, p, q []T) {
	q = q[:len(p)]
	for i := range p {
		a, b := p[i], q[i]
		p[i] = addMod(a, b, k.card)
		q[i] = arith.MulMod(c, subMod(a, b, k.card), k.card)
	}
}

func (k genericKernels[T]) HadamardMul(x, y []T) {
	y = y[:len(x)]
	for i := range x {
		x[i] = arith.MulMod(x[i], y[i], k.card)
	}
}

func (k genericKernels[T]) HadamardMulDoubled(x, y []T) {
	half := len(x) / 2
	k.HadamardMul(x[:half], y)
	k.HadamardMul(x[half:2*half], y)
}

func (k genericKernels[T]) AddDoubled(x, y []T) {
	half := len(x) / 2
	k.Add(y[:half], x[:half])
	k.Add(y[:half], x[half:2*half])
}
