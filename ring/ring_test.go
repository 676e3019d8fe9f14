package ring

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Pro7ech/nttec/utils/sampling"
)

var testSeed = [32]byte{'r', 'i', 'n', 'g'}

func testString[T Element](opname string, r *RingModN[T]) string {
	return fmt.Sprintf("%s/card=%d/T=%T/kernels=%s", opname, r.Card(), r.Card(), r.Kernels())
}

func newTestRing[T Element](t testing.TB, card T, opts ...Option) *RingModN[T] {
	r, err := New(card, append([]Option{WithSource(sampling.NewSource(testSeed))}, opts...)...)
	require.NoError(t, err)
	return r
}

func TestRingModN(t *testing.T) {

	for _, card := range []uint16{2, 3, 5, 17, 97, Fermat3, 65521} {
		testRingModN(t, newTestRing(t, card))
	}

	for _, card := range []uint32{Fermat4, BabyBear, 4294967291} {
		testRingModN(t, newTestRing(t, card))
	}

	for _, card := range []uint64{Goldilocks, 1<<61 - 1} {
		testRingModN(t, newTestRing(t, card))
	}
}

func testRingModN[T Element](t *testing.T, r *RingModN[T]) {
	testArithmetic(t, r)
	testExp(t, r)
	testPrimitiveRoot(t, r)
	testNthRoot(t, r)
	testLiteral(t, r)
	testWeakRand(t, r)
}

// sample returns n elements of the ring, including the edge values.
func sample[T Element](r *RingModN[T], n int) (values []T) {
	values = append(values, 0, r.CardMinusOne())
	if r.Card() > 2 {
		values = append(values, 1, r.CardMinusOne()-1)
	}
	for len(values) < n {
		values = append(values, r.WeakRand())
	}
	return
}

func testArithmetic[T Element](t *testing.T, r *RingModN[T]) {

	values := sample(r, 64)

	t.Run(testString("Arithmetic/Closure", r), func(t *testing.T) {
		for _, a := range values {
			for _, b := range values[:16] {
				require.True(t, r.Check(r.Add(a, b)))
				require.True(t, r.Check(r.Sub(a, b)))
				require.True(t, r.Check(r.Mul(a, b)))
			}
		}
	})

	t.Run(testString("Arithmetic/Inverses", r), func(t *testing.T) {
		for _, a := range values {
			require.Equal(t, T(0), r.Add(a, r.Neg(a)))
			require.Equal(t, a, r.Sub(r.Add(a, a), a))
			if a != 0 {
				require.Equal(t, T(1), r.Mul(a, r.Inv(a)))
				require.Equal(t, T(1), r.Div(a, a))
			}
		}
	})

	t.Run(testString("Arithmetic/Distributivity", r), func(t *testing.T) {
		for i := 0; i+2 < len(values); i++ {
			a, b, c := values[i], values[i+1], values[i+2]
			require.Equal(t, r.Add(r.Mul(a, b), r.Mul(a, c)), r.Mul(a, r.Add(b, c)))
		}
	})
}

func testExp[T Element](t *testing.T, r *RingModN[T]) {
	t.Run(testString("Exp/NaiveQuick", r), func(t *testing.T) {
		for _, a := range sample(r, 16) {
			for b := T(0); b < 64 && b < r.Card(); b++ {
				require.Equal(t, r.ExpNaive(a, b), r.ExpQuick(a, b))
			}
			require.Equal(t, r.ExpQuick(a, r.CardMinusOne()), r.Exp(a, r.CardMinusOne()))
		}
	})
}

func testPrimitiveRoot[T Element](t *testing.T, r *RingModN[T]) {
	t.Run(testString("PrimitiveRoot", r), func(t *testing.T) {

		g := r.PrimitiveRoot()
		h := r.CardMinusOne()

		require.NotZero(t, g)
		require.Equal(t, h, r.Order(g))
		require.True(t, r.CheckPrimitiveRoot(g))
		require.True(t, r.IsPrimitiveRoot(g))
		require.Equal(t, T(1), r.Exp(g, h))

		for _, d := range r.ProperDivisors() {
			require.NotEqual(t, T(1), r.Exp(g, d))
		}

		// g is the smallest primitive root.
		for x := T(2); x < g; x++ {
			require.False(t, r.IsPrimitiveRoot(x))
		}

		prod := T(1)
		for _, p := range r.PrimeFactors() {
			prod *= p
		}
		require.Equal(t, h, prod)

		require.Equal(t, T(1), r.Order(0))
		require.Equal(t, T(1), r.Order(1))
	})
}

func testNthRoot[T Element](t *testing.T, r *RingModN[T]) {
	t.Run(testString("NthRoot", r), func(t *testing.T) {

		h := r.CardMinusOne()

		divisors := append([]T{1, h}, r.ProperDivisors()...)
		divisors = append(divisors, r.Primes()...)

		for _, n := range divisors {

			w := r.NthRoot(n)

			require.Equal(t, T(1), r.Exp(w, n))
			require.Equal(t, n, r.Order(w))

			if n > 1 {
				for _, p := range r.Primes() {
					if n%p == 0 {
						require.NotEqual(t, T(1), r.Exp(w, n/p))
					}
				}
			}
		}
	})
}

func testLiteral[T Element](t *testing.T, r *RingModN[T]) {
	t.Run(testString("Literal", r), func(t *testing.T) {

		data, err := json.Marshal(r)
		require.NoError(t, err)

		var lit Literal[T]
		require.NoError(t, json.Unmarshal(data, &lit))
		require.Equal(t, r.Literal(), lit)

		r2, err := NewFromLiteral(lit)
		require.NoError(t, err)
		require.Equal(t, r.PrimitiveRoot(), r2.PrimitiveRoot())
		require.Equal(t, r.PrimeFactors(), r2.PrimeFactors())
		require.Equal(t, r.ProperDivisors(), r2.ProperDivisors())
	})
}

func testWeakRand[T Element](t *testing.T, r *RingModN[T]) {
	t.Run(testString("WeakRand", r), func(t *testing.T) {

		r2 := newTestRing(t, r.Card())

		for i := 0; i < 128; i++ {
			a := r2.WeakRand()
			require.GreaterOrEqual(t, a, T(1))
			require.Less(t, a, r.Card())
		}

		r3 := newTestRing(t, r.Card())
		r4 := newTestRing(t, r.Card())
		for i := 0; i < 32; i++ {
			require.Equal(t, r3.WeakRand(), r4.WeakRand())
		}
	})
}

func TestCard17(t *testing.T) {

	r := newTestRing(t, uint32(17))

	require.Equal(t, []uint32{2}, r.Primes())
	require.Equal(t, []int{4}, r.Exponents())
	require.Equal(t, []uint32{2, 2, 2, 2}, r.PrimeFactors())
	require.Equal(t, []uint32{8}, r.ProperDivisors())

	g := r.PrimitiveRoot()
	require.Equal(t, uint32(3), g)
	require.NotEqual(t, uint32(1), r.Exp(g, 8))
	require.Equal(t, uint32(1), r.Exp(g, 16))

	w := r.NthRoot(4)
	require.Equal(t, uint32(1), r.Exp(w, 4))
	require.NotEqual(t, uint32(1), r.Exp(w, 2))
	require.True(t, r.CheckOrderNaive(w, 4))
	require.False(t, r.CheckOrderNaive(w, 2))
	require.True(t, r.CheckOrderNaive(g, 16))
	require.False(t, r.CheckOrderNaive(r.Mul(g, g), 16))

	require.Equal(t, uint32(4), r.Order(4))
	require.Equal(t, uint32(2), r.Order(16))
	require.Equal(t, uint32(8), r.Order(9))

	require.True(t, r.IsQuadraticResidue(2))
	require.True(t, r.IsQuadraticResidue(13))
	require.False(t, r.IsQuadraticResidue(3))
	require.False(t, r.IsQuadraticResidue(5))
}

func TestLog(t *testing.T) {

	r := newTestRing(t, uint16(5))

	t.Run("SmallestExponent", func(t *testing.T) {
		e, err := r.Log(2, 1)
		require.NoError(t, err)
		require.Equal(t, uint16(4), e)

		e, err = r.Log(2, 3)
		require.NoError(t, err)
		require.Equal(t, uint16(3), e)

		e, err = r.Log(1, 1)
		require.NoError(t, err)
		require.Equal(t, uint16(1), e)
	})

	t.Run("NoSolution", func(t *testing.T) {
		_, err := r.Log(4, 2)
		require.ErrorIs(t, err, ErrNoSolution)

		_, err = r.Log(0, 1)
		require.ErrorIs(t, err, ErrNoSolution)
	})

	t.Run("LogExp", func(t *testing.T) {
		r := newTestRing(t, uint16(Fermat3))
		g := r.PrimitiveRoot()
		for e := uint16(1); e < r.CardMinusOne(); e += 7 {
			got, err := r.LogNaive(g, r.Exp(g, e))
			require.NoError(t, err)
			require.Equal(t, e, got)
		}
	})
}

func TestCodeLen(t *testing.T) {

	r := newTestRing(t, uint32(97))

	require.Equal(t, []uint32{2, 2, 2, 2, 2, 3}, r.PrimeFactors())

	require.Equal(t, uint32(6), r.CodeLen(5))
	require.Equal(t, uint32(8), r.CodeLenHighlyComposite(5))
	require.Equal(t, uint32(12), r.CodeLen(9))
	require.Equal(t, uint32(16), r.CodeLenHighlyComposite(9))
	require.Equal(t, uint32(96), r.CodeLen(96))
	require.Equal(t, uint32(96), r.CodeLenHighlyComposite(33))

	require.Panics(t, func() { r.CodeLen(97) })
	require.Panics(t, func() { r.CodeLenHighlyComposite(97) })
}

func TestNew(t *testing.T) {

	t.Run("InvalidCardinality", func(t *testing.T) {
		_, err := New(uint16(1))
		require.Error(t, err)
	})

	t.Run("Literal", func(t *testing.T) {

		r, err := NewFromLiteral(Literal[uint32]{
			Cardinality:   Fermat4,
			Primes:        []uint32{2},
			Exponents:     []int{16},
			PrimitiveRoot: 5,
		})
		require.NoError(t, err)
		require.Equal(t, uint32(5), r.PrimitiveRoot())

		// Composite factor.
		_, err = NewFromLiteral(Literal[uint32]{Cardinality: 97, Primes: []uint32{4, 3}, Exponents: []int{2, 1}})
		require.Error(t, err)

		// Incomplete factorization.
		_, err = NewFromLiteral(Literal[uint32]{Cardinality: 97, Primes: []uint32{2}, Exponents: []int{5}})
		require.Error(t, err)

		// Not a primitive root: 4 has order 4 mod 17.
		_, err = NewFromLiteral(Literal[uint32]{Cardinality: 17, PrimitiveRoot: 4})
		require.Error(t, err)

		_, err = NewFromLiteral(Literal[uint32]{Cardinality: 17, PrimitiveRoot: 17})
		require.Error(t, err)
	})

	t.Run("CheckFactors", func(t *testing.T) {
		require.NoError(t, CheckFactors[uint64](96, []uint64{2, 3}, []int{5, 1}))
		require.Error(t, CheckFactors[uint64](96, []uint64{2, 3}, []int{6, 1}))
		require.Error(t, CheckFactors[uint64](96, []uint64{2, 3}, []int{5}))
	})

	t.Run("CheckPrimitiveRoot", func(t *testing.T) {
		require.NoError(t, CheckPrimitiveRoot[uint64](3, 17, []uint64{2}))
		require.Error(t, CheckPrimitiveRoot[uint64](2, 17, []uint64{2}))
	})

	t.Run("Replicate", func(t *testing.T) {
		r := newTestRing(t, uint16(17))
		require.Equal(t, uint16(5), r.Replicate(5))
	})
}
