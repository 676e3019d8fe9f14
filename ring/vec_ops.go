package ring

import (
	"github.com/Pro7ech/nttec/utils/structs"
)

// MulCoefToBuf evaluates dst[i] = a * src[i] for i < len(src).
func (r *RingModN[T]) MulCoefToBuf(a T, src, dst []T) {
	assertElement(r, a)
	assertLen(len(src), len(dst))
	r.kernels.MulCoef(a, src, dst)
}

// AddTwoBufs evaluates dst[i] = src[i] + dst[i] for i < len(src).
func (r *RingModN[T]) AddTwoBufs(src, dst []T) {
	assertLen(len(src), len(dst))
	r.kernels.Add(src, dst)
}

// SubTwoBufs evaluates res[i] = a[i] - b[i] for i < len(a).
func (r *RingModN[T]) SubTwoBufs(a, b, res []T) {
	assertLen(len(a), len(b), len(res))
	r.kernels.Sub(a, b, res)
}

// NegBuf evaluates x[i] = -x[i].
func (r *RingModN[T]) NegBuf(x []T) {
	r.kernels.Neg(x)
}

// MulVecToVecp scales the i-th row of src by u[i] and writes it on the i-th row of dst.
// The coefficients 0, 1 and N-1 are special-cased to avoid multiplications.
func (r *RingModN[T]) MulVecToVecp(u structs.Vector[T], src, dst *structs.Buffers[T]) {

	assertShape(u.Size(), src.Size(), src, dst)

	h := r.CardMinusOne()

	for i := 0; i < u.Size(); i++ {
		switch c := u.Get(i); c {
		case 0:
			dst.Fill(i, 0)
		case 1:
			dst.Copy(i, src.Get(i))
		case h:
			dst.Copy(i, src.Get(i))
			r.kernels.Neg(dst.Get(i))
		default:
			r.MulCoefToBuf(c, src.Get(i), dst.Get(i))
		}
	}
}

// AddVecpToVecp evaluates dst = src + dst row by row.
func (r *RingModN[T]) AddVecpToVecp(src, dst *structs.Buffers[T]) {
	assertShape(src.N(), src.Size(), dst)
	for i := 0; i < src.N(); i++ {
		r.kernels.Add(src.Get(i), dst.Get(i))
	}
}

// SubVecpToVecp evaluates res = a - b row by row.
func (r *RingModN[T]) SubVecpToVecp(a, b, res *structs.Buffers[T]) {
	assertShape(a.N(), a.Size(), b, res)
	for i := 0; i < a.N(); i++ {
		r.kernels.Sub(a.Get(i), b.Get(i), res.Get(i))
	}
}

// NegBuffers negates every row of the plane.
func (r *RingModN[T]) NegBuffers(b *structs.Buffers[T]) {
	for i := 0; i < b.N(); i++ {
		r.kernels.Neg(b.Get(i))
	}
}

// HadamardMul evaluates x[i] = x[i] * y[i].
func (r *RingModN[T]) HadamardMul(x, y []T) {
	assertLen(len(x), len(y))
	r.kernels.HadamardMul(x, y)
}

// HadamardMulDoubled multiplies both halves of x by y, element-wise.
func (r *RingModN[T]) HadamardMulDoubled(x, y []T) {
	assertLen(len(x)/2, len(y))
	r.kernels.HadamardMulDoubled(x, y)
}

// AddDoubled adds y to both halves of x, element-wise.
func (r *RingModN[T]) AddDoubled(x, y []T) {
	assertLen(len(x)/2, len(y))
	r.kernels.AddDoubled(x, y)
}

// ButterflyCT evaluates the Cooley-Tukey butterfly in place:
//
//	P[i] = P[i] + c * Q[i]
//	Q[i] = P[i] - c * Q[i]
func (r *RingModN[T]) ButterflyCT(c T, P, Q []T) {
	assertElement(r, c)
	assertLen(len(P), len(Q))
	r.kernels.ButterflyCT(c, P, Q)
}

// ButterflyGS evaluates the Gentleman-Sande butterfly in place:
//
//	P[i] = P[i] + Q[i]
//	Q[i] = c * (P[i] - Q[i])
func (r *RingModN[T]) ButterflyGS(c T, P, Q []T) {
	assertElement(r, c)
	assertLen(len(P), len(Q))
	r.kernels.ButterflyGS(c, P, Q)
}
