// Package bignum implements helpers over *big.Int for the arithmetic that
// does not fit in a machine word.
package bignum

import (
	"fmt"
	"math/big"
)

// NewInt allocates a new *big.Int.
// Accepted types are: string, uint, uint64, uint32, uint16, int64, int or *big.Int.
func NewInt(x interface{}) (y *big.Int) {

	y = new(big.Int)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case string:
		y.SetString(x, 0)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case uint32:
		y.SetUint64(uint64(x))
	case uint16:
		y.SetUint64(uint64(x))
	case int64:
		y.SetInt64(x)
	case int:
		y.SetInt64(int64(x))
	case *big.Int:
		y.Set(x)
	default:
		panic(fmt.Sprintf("cannot NewInt: accepted types are string, uint, uint64, uint32, uint16, int, int64 and *big.Int, but is %T", x))
	}

	return
}

// ExtendedGCD returns g = gcd(a, b) along with the Bezout coefficients
// x and y such that a*x + b*y = g. The coefficients can be negative.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	x = new(big.Int)
	y = new(big.Int)
	g = new(big.Int).GCD(x, y, a, b)
	return
}
