package ring

import (
	"fmt"
	"slices"

	"github.com/Pro7ech/nttec/utils/arith"
	"github.com/Pro7ech/nttec/utils/factorization"
)

// computeFactorsOfOrder factors h = N-1, unless the factors were given,
// and derives the expanded prime factors and the proper divisors of h.
func (r *RingModN[T]) computeFactorsOfOrder() {

	h := r.CardMinusOne()

	if r.primes == nil {
		r.primes, r.exponents = factorization.Factor(h)
	}

	r.allPrimeFactors = arith.ExpandFactors(r.primes, r.exponents)
	slices.Sort(r.allPrimeFactors)

	r.properDivisors = arith.ProperDivisors(h, r.primes)
}

// IsPrimitiveRoot returns true if x^d != 1 for every proper divisor
// d = (N-1)/p of the order of the multiplicative group.
//
// If the order of x were a proper divisor y of N-1, then y would divide
// (N-1)/p for some prime p and x^((N-1)/p) would be 1.
func (r *RingModN[T]) IsPrimitiveRoot(x T) bool {
	for _, d := range r.properDivisors {
		if r.Exp(x, d) == 1 {
			return false
		}
	}
	return true
}

// findPrimitiveRoot sets the root to the smallest primitive root in [2, N-1].
// It does nothing if the root is already set.
func (r *RingModN[T]) findPrimitiveRoot() {

	if r.root != 0 {
		return
	}

	h := r.CardMinusOne()

	if h == 1 {
		r.root = 1
		return
	}

	for x := T(2); x <= h; x++ {
		if r.IsPrimitiveRoot(x) {
			r.root = x
			return
		}
	}

	err := fmt.Errorf("cannot find primitive root: card=%d primes=%v exponents=%v", r.card, r.primes, r.exponents)
	r.logger.Error(err)
	panic(err)
}

// PrimitiveRoot returns the smallest generator of the multiplicative group.
func (r *RingModN[T]) PrimitiveRoot() T {
	return r.root
}

// Primes returns the distinct prime factors of N-1, in ascending order.
func (r *RingModN[T]) Primes() []T {
	return slices.Clone(r.primes)
}

// Exponents returns the multiplicities of the prime factors of N-1.
func (r *RingModN[T]) Exponents() []int {
	return slices.Clone(r.exponents)
}

// PrimeFactors returns the prime factors of N-1, each repeated according to its exponent.
func (r *RingModN[T]) PrimeFactors() []T {
	return slices.Clone(r.allPrimeFactors)
}

// ProperDivisors returns {(N-1)/p : p prime factor of N-1}.
func (r *RingModN[T]) ProperDivisors() []T {
	return slices.Clone(r.properDivisors)
}

// Order returns the multiplicative order of x, that is the smallest
// divisor d of N-1 such that x^d = 1. Order(0) = Order(1) = 1.
func (r *RingModN[T]) Order(x T) T {

	if x == 0 || x == 1 {
		return 1
	}

	return r.orderStep(x, r.CardMinusOne(), slices.Clone(r.primes), slices.Clone(r.exponents))
}

// orderStep pops the last (p, e) pair: if x^(h/p) = 1 the order divides
// h/p and the search continues from h/p with (p, e-1), otherwise p^e
// divides the order and p is discarded.
func (r *RingModN[T]) orderStep(x, h T, primes []T, exponents []int) T {

	for len(primes) != 0 {

		last := len(primes) - 1

		p, e := primes[last], exponents[last]
		primes, exponents = primes[:last], exponents[:last]

		y := h / p

		if r.Exp(x, y) != 1 {
			continue
		}

		if e > 1 {
			primes = append(primes, p)
			exponents = append(exponents, e-1)
		}

		return r.orderStep(x, y, primes, exponents)
	}

	return h
}

// CheckPrimitiveRoot returns true if the order of x is N-1.
func (r *RingModN[T]) CheckPrimitiveRoot(x T) bool {
	return r.Order(x) == r.CardMinusOne()
}

// CheckOrderNaive returns true if x^order = 1 and x^i != 1 for all 0 < i < order-1.
func (r *RingModN[T]) CheckOrderNaive(x, order T) bool {

	if r.Exp(x, order) != 1 {
		return false
	}

	tmp := x
	for i := T(1); i+1 < order; i++ {
		if tmp == 1 {
			return false
		}
		tmp = r.Mul(tmp, x)
	}

	return true
}

// NthRoot returns root^((N-1)/gcd(n, N-1)), an element of order gcd(n, N-1).
// It is a primitive n-th root of unity if n divides N-1.
func (r *RingModN[T]) NthRoot(n T) T {
	h := r.CardMinusOne()
	return r.Exp(r.root, h/arith.GCD(n, h))
}

// CodeLen returns the smallest divisor of N-1 that is at least n.
// It panics if n > N-1.
func (r *RingModN[T]) CodeLen(n T) T {
	r.assertCodeLen(n)
	return arith.CodeLen(r.CardMinusOne(), n)
}

// CodeLenHighlyComposite returns the smallest divisor of N-1 that is at least n
// and is a product of the smallest prime factors of N-1.
// It panics if n > N-1.
func (r *RingModN[T]) CodeLenHighlyComposite(n T) T {
	r.assertCodeLen(n)
	return arith.CodeLenHighlyComposite(r.allPrimeFactors, n)
}

func (r *RingModN[T]) assertCodeLen(n T) {
	if h := r.CardMinusOne(); h < n {
		err := fmt.Errorf("invalid code length: n=%d > card-1=%d", n, h)
		r.logger.Error(err)
		panic(err)
	}
}
