package ring

import (
	"github.com/consensys/gnark-crypto/field/goldilocks"
)

const (
	// Fermat3 is the Fermat prime 2^8+1.
	Fermat3 = 257
	// Fermat4 is the Fermat prime 2^16+1.
	Fermat4 = 65537
	// BabyBear is the prime 15 * 2^27 + 1.
	BabyBear = 2013265921
)

// Goldilocks is the prime 2^64 - 2^32 + 1.
var Goldilocks = goldilocks.Modulus().Uint64()
