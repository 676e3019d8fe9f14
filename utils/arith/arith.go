// Package arith implements the integer helpers the ring arithmetic is built on:
// double-width modular products, greatest common divisors, Bezout coefficients
// and the divisor sets derived from a prime factorization.
package arith

import (
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"

	"github.com/Pro7ech/nttec/utils/bignum"
)

// Word is the set of unsigned machine words a ring element can be stored in.
type Word interface {
	~uint16 | ~uint32 | ~uint64
}

// IsWide returns true if T is a 64-bit word, in which case a product of two
// elements does not fit in a uint64 and must be computed on 128 bits.
func IsWide[T Word]() bool {
	return uint64(^T(0)) == math.MaxUint64
}

// MulMod returns a*b mod m.
// a and b must be in [0, m), which guarantees that the high word of
// the 128-bit product is smaller than m.
func MulMod[T Word](a, b, m T) T {
	if IsWide[T]() {
		hi, lo := bits.Mul64(uint64(a), uint64(b))
		_, rem := bits.Div64(hi, lo, uint64(m))
		return T(rem)
	}
	return T(uint64(a) * uint64(b) % uint64(m))
}

// GCD returns the greatest common divisor of a and b.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ExtendedGCD returns g = gcd(a, b) along with the Bezout coefficients
// x and y such that a*x + b*y = g.
func ExtendedGCD[T constraints.Signed](a, b T) (g, x, y T) {
	x0, x1 := T(1), T(0)
	y0, y1 := T(0), T(1)
	for b != 0 {
		q := a / b
		a, b = b, a-q*b
		x0, x1 = x1, x0-q*x1
		y0, y1 = y1, y0-q*y1
	}
	return a, x0, y0
}

// InvMod returns the Bezout coefficient of a modulo m, normalized in [0, m).
// It is the inverse of a if gcd(a, m) = 1.
//
// Coefficients are computed on signed double-width integers: int64 for
// words of at most 32 bits and *big.Int for 64-bit words.
func InvMod[T Word](a, m T) T {

	if IsWide[T]() {
		_, x, _ := bignum.ExtendedGCD(bignum.NewInt(uint64(a)), bignum.NewInt(uint64(m)))
		if x.Sign() < 0 {
			x.Add(x, bignum.NewInt(uint64(m)))
		}
		return T(x.Uint64())
	}

	_, x, _ := ExtendedGCD(int64(a), int64(m))
	if x < 0 {
		x += int64(m)
	}
	return T(x)
}

// ExpandFactors returns the multiset of prime factors, each prime being
// repeated according to its exponent.
func ExpandFactors[T Word](primes []T, exponents []int) (factors []T) {
	for i, p := range primes {
		for j := 0; j < exponents[i]; j++ {
			factors = append(factors, p)
		}
	}
	return
}

// ProperDivisors returns {h/p : p in primes}.
func ProperDivisors[T Word](h T, primes []T) (divisors []T) {
	divisors = make([]T, len(primes))
	for i, p := range primes {
		divisors[i] = h / p
	}
	return
}

// CodeLen returns the smallest divisor of order that is at least n.
// The caller must ensure that n <= order.
func CodeLen[T Word](order, n T) T {
	if n == 0 {
		n = 1
	}
	d := n
	for ; d < order; d++ {
		if order%d == 0 {
			break
		}
	}
	return d
}

// CodeLenHighlyComposite returns the smallest product of the leading
// elements of factors that is at least n. factors is expected in ascending
// order, so that the result has as many small prime factors as possible.
// The caller must ensure that the product of all factors is at least n.
func CodeLenHighlyComposite[T Word](factors []T, n T) T {
	d := T(1)
	for _, p := range factors {
		if d >= n {
			break
		}
		d *= p
	}
	return d
}
