package ring

import (
	"testing"

	"github.com/consensys/gnark-crypto/field/goldilocks"
	"github.com/stretchr/testify/require"
	lattigo "github.com/tuneinsight/lattigo/v6/ring"
)

// TestGoldilocksOracle checks the 64-bit arithmetic against gnark-crypto.
func TestGoldilocksOracle(t *testing.T) {

	r := newTestRing(t, Goldilocks)

	values := sample(r, 128)

	for i := 0; i+1 < len(values); i++ {

		a, b := values[i], values[i+1]

		var x, y, z goldilocks.Element
		x.SetUint64(a)
		y.SetUint64(b)

		require.Equal(t, z.Add(&x, &y).Uint64(), r.Add(a, b))
		require.Equal(t, z.Sub(&x, &y).Uint64(), r.Sub(a, b))
		require.Equal(t, z.Mul(&x, &y).Uint64(), r.Mul(a, b))
		require.Equal(t, z.Neg(&x).Uint64(), r.Neg(a))

		if a != 0 {
			require.Equal(t, z.Inverse(&x).Uint64(), r.Inv(a))
		}
	}
}

// TestLattigoOracle checks the primitive roots and the exponentiation against lattigo.
func TestLattigoOracle(t *testing.T) {

	for _, card := range []uint64{17, 97, Fermat3, Fermat4, BabyBear, 0x1fffffffffe00001} {

		r := newTestRing(t, card)

		g, factors, err := lattigo.PrimitiveRoot(card, nil)
		require.NoError(t, err)

		// lattigo searches from 3 upward, both roots must be valid.
		require.True(t, r.CheckPrimitiveRoot(g))
		require.NoError(t, CheckPrimitiveRoot(r.PrimitiveRoot(), card, factors))
		require.ElementsMatch(t, factors, r.Primes())

		for _, a := range sample(r, 16) {
			for _, e := range []uint64{0, 1, 2, 255, card - 2, card - 1} {
				require.Equal(t, lattigo.ModExp(a, e, card), r.Exp(a, e))
			}
		}
	}
}
