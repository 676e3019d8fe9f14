// Package factorization implements the prime factorization of machine words,
// with multiplicities, as required to compute multiplicative orders.
package factorization

import (
	"slices"
	"sync"

	"github.com/bits-and-blooms/bitset"

	"github.com/Pro7ech/nttec/utils/arith"
	"github.com/Pro7ech/nttec/utils/bignum"
)

// sieveBound is the bound below which trial division is done with
// the sieved primes.
const sieveBound = 1 << 16

var (
	sieveOnce   sync.Once
	smallPrimes []uint64
)

// SmallPrimes returns all the primes smaller than 2^16.
func SmallPrimes() []uint64 {
	sieveOnce.Do(func() {
		composite := bitset.New(sieveBound)
		composite.Set(0).Set(1)
		for i := uint(2); i*i < sieveBound; i++ {
			if composite.Test(i) {
				continue
			}
			for j := i * i; j < sieveBound; j += i {
				composite.Set(j)
			}
		}
		for i, ok := composite.NextClear(0); ok && i < sieveBound; i, ok = composite.NextClear(i + 1) {
			smallPrimes = append(smallPrimes, uint64(i))
		}
	})
	return smallPrimes
}

// IsPrime applies the Baillie-PSW test, which is 100% accurate for numbers
// smaller than 2^64.
func IsPrime[T arith.Word](x T) bool {
	return bignum.NewInt(uint64(x)).ProbablyPrime(0)
}

// Factor returns the distinct prime factors of m in ascending order along with
// their multiplicities, such that m = prod primes[i]^exponents[i].
// Factor(0) and Factor(1) return empty slices.
func Factor[T arith.Word](m T) (primes []T, exponents []int) {

	if m < 2 {
		return
	}

	x := uint64(m)

	for _, p := range SmallPrimes() {

		if p*p > x {
			break
		}

		if x%p != 0 {
			continue
		}

		var e int
		for x%p == 0 {
			x /= p
			e++
		}

		primes = append(primes, T(p))
		exponents = append(exponents, e)
	}

	if x == 1 {
		return
	}

	// Remaining cofactor has no factor smaller than 2^16, so it is either
	// a prime or a product of at most three large primes.
	factors := map[uint64]int{}
	splitLarge(x, factors)

	large := make([]uint64, 0, len(factors))
	for p := range factors {
		large = append(large, p)
	}
	slices.Sort(large)

	for _, p := range large {
		primes = append(primes, T(p))
		exponents = append(exponents, factors[p])
	}

	return
}

func splitLarge(x uint64, factors map[uint64]int) {

	if x == 1 {
		return
	}

	if IsPrime(x) {
		factors[x]++
		return
	}

	d := pollardRho(x)
	splitLarge(d, factors)
	splitLarge(x/d, factors)
}

// pollardRho returns a non-trivial factor of the composite x.
func pollardRho(x uint64) uint64 {

	if x%2 == 0 {
		return 2
	}

	for c := uint64(1); ; c++ {

		f := func(y uint64) uint64 {
			return addMod(arith.MulMod(y, y, x), c, x)
		}

		a, b, d := uint64(2), uint64(2), uint64(1)

		for d == 1 {
			a = f(a)
			b = f(f(b))
			if a > b {
				d = arith.GCD(a-b, x)
			} else {
				d = arith.GCD(b-a, x)
			}
		}

		if d != x {
			return d
		}
	}
}

// addMod returns a+b mod m for a < m and b < m, without overflow.
func addMod(a, b, m uint64) uint64 {
	if a >= m-b {
		return a - (m - b)
	}
	return a + b
}
