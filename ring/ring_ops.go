package ring

import (
	"fmt"

	"github.com/Pro7ech/nttec/utils/arith"
)

// Card returns the cardinality N of the ring.
func (r *RingModN[T]) Card() T {
	return r.card
}

// CardMinusOne returns N-1, the order of the multiplicative group.
func (r *RingModN[T]) CardMinusOne() T {
	return r.card - 1
}

// Check returns true if a is in [0, N).
func (r *RingModN[T]) Check(a T) bool {
	return a < r.card
}

// Neg returns -a mod N.
func (r *RingModN[T]) Neg(a T) T {
	assertElement(r, a)
	return r.Sub(0, a)
}

// Add returns a + b mod N.
func (r *RingModN[T]) Add(a, b T) T {
	assertElement(r, a)
	assertElement(r, b)
	return addMod(a, b, r.card)
}

// Sub returns a - b mod N.
func (r *RingModN[T]) Sub(a, b T) T {
	assertElement(r, a)
	assertElement(r, b)
	return subMod(a, b, r.card)
}

// Mul returns a * b mod N.
// The product is computed on twice the width of T.
func (r *RingModN[T]) Mul(a, b T) T {
	assertElement(r, a)
	assertElement(r, b)
	return arith.MulMod(a, b, r.card)
}

// Div returns a * b^-1 mod N.
func (r *RingModN[T]) Div(a, b T) T {
	assertElement(r, a)
	assertElement(r, b)
	return r.Mul(a, r.Inv(b))
}

// Inv returns a^-1 mod N, computed with the Bezout coefficients of (a, N).
// The result is meaningless if gcd(a, N) != 1.
func (r *RingModN[T]) Inv(a T) T {
	assertElement(r, a)
	return arith.InvMod(a, r.card)
}

// Exp returns a^b mod N.
func (r *RingModN[T]) Exp(a, b T) T {
	assertElement(r, a)
	return r.ExpQuick(a, b)
}

// ExpQuick returns a^b mod N by recursive squaring.
func (r *RingModN[T]) ExpQuick(a, b T) T {

	if b == 0 {
		return 1
	}

	if b == 1 {
		return a
	}

	tmp := r.ExpQuick(a, b/2)
	res := r.Mul(tmp, tmp)
	if b&1 == 1 {
		res = r.Mul(res, a)
	}
	return res
}

// ExpNaive returns a^b mod N with b-1 multiplications.
func (r *RingModN[T]) ExpNaive(a, b T) T {

	if b == 0 {
		return 1
	}

	res := a
	for i := T(1); i < b; i++ {
		res = r.Mul(res, a)
	}
	return res
}

// Log returns the smallest e in [1, N) such that a^e = b mod N.
// It returns an error wrapping [ErrNoSolution] if there is none.
func (r *RingModN[T]) Log(a, b T) (T, error) {
	assertElement(r, a)
	return r.LogNaive(a, b)
}

// LogNaive is the exhaustive search behind [RingModN.Log].
// Its cost is linear in N.
func (r *RingModN[T]) LogNaive(a, b T) (T, error) {
	for e := T(1); e < r.card; e++ {
		if r.Exp(a, e) == b {
			return e, nil
		}
	}
	return 0, fmt.Errorf("log_%d(%d) mod %d: %w", a, b, r.card, ErrNoSolution)
}

// IsQuadraticResidue returns true if q = x^2 mod N for some x.
func (r *RingModN[T]) IsQuadraticResidue(q T) bool {
	for x := T(0); x < r.card; x++ {
		if r.Mul(x, x) == q {
			return true
		}
	}
	return false
}

// WeakRand returns a uniform element of [1, N) drawn from the ring's source.
// The source is not synchronized: concurrent callers must use distinct rings
// or serialize their calls.
func (r *RingModN[T]) WeakRand() T {
	return T(r.source.Uint64N(uint64(r.card-1))) + 1
}

// Replicate returns the representation of a in the packed form of the ring.
// Elements of a [RingModN] are not packed, so it returns a.
func (r *RingModN[T]) Replicate(a T) T {
	return a
}
