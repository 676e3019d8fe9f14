package ring

import (
	"github.com/Pro7ech/nttec/utils/structs"
)

// Arithmetic is the arithmetic contract a transform needs from a ring.
// It is implemented by [RingModN].
type Arithmetic[T Element] interface {
	Card() T
	CardMinusOne() T
	Check(a T) bool

	Neg(a T) T
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Div(a, b T) T
	Inv(a T) T
	Exp(a, b T) T
	Log(a, b T) (T, error)

	PrimitiveRoot() T
	Order(x T) T
	NthRoot(n T) T
	CodeLen(n T) T
	CodeLenHighlyComposite(n T) T

	MulCoefToBuf(a T, src, dst []T)
	AddTwoBufs(src, dst []T)
	SubTwoBufs(a, b, res []T)
	NegBuf(x []T)
	MulVecToVecp(u structs.Vector[T], src, dst *structs.Buffers[T])
	AddVecpToVecp(src, dst *structs.Buffers[T])
	SubVecpToVecp(a, b, res *structs.Buffers[T])
	NegBuffers(b *structs.Buffers[T])
	HadamardMul(x, y []T)
	HadamardMulDoubled(x, y []T)
	AddDoubled(x, y []T)
	ButterflyCT(c T, P, Q []T)
	ButterflyGS(c T, P, Q []T)

	ComputeOmegas(W structs.Vector[T], n int, w T)
	ComputeOmegasCached(W structs.Vector[T], n int, w T) error
}

var (
	_ Arithmetic[uint16] = (*RingModN[uint16])(nil)
	_ Arithmetic[uint32] = (*RingModN[uint32])(nil)
	_ Arithmetic[uint64] = (*RingModN[uint64])(nil)
)
