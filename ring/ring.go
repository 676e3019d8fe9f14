// Package ring implements the arithmetic of the ring of integers modulo N
// for machine-word cardinalities: element arithmetic, primitive roots and
// multiplicative orders, batched buffer operations and the butterfly kernels
// number-theoretic transforms are built on.
package ring

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/Pro7ech/nttec/cache"
	"github.com/Pro7ech/nttec/utils/arith"
	"github.com/Pro7ech/nttec/utils/factorization"
	"github.com/Pro7ech/nttec/utils/sampling"
)

// Element is the set of types a ring element can be stored in.
type Element interface {
	~uint16 | ~uint32 | ~uint64
}

// ErrNoSolution is returned when a discrete logarithm does not exist.
var ErrNoSolution = errors.New("no solution")

// RingModN is the ring Z/NZ for a cardinality N.
// All elements are in [0, N).
//
// A RingModN is immutable after [New] returns and can be shared
// between goroutines, with the exception of [RingModN.WeakRand].
type RingModN[T Element] struct {
	card T

	// Generator of the multiplicative group of order card-1.
	root T

	// card-1 = prod primes[i]^exponents[i]
	primes    []T
	exponents []int

	// primes repeated according to their exponent, in ascending order
	allPrimeFactors []T

	// {(card-1)/p : p in primes}
	properDivisors []T

	kernels Kernels[T]
	source  *sampling.Source
	store   cache.Store
	logger  logrus.FieldLogger
}

// Literal is a struct to store the minimum information
// to uniquely identify a [RingModN] and be able to reconstruct it efficiently.
// If Primes and Exponents are set, the factorization of Cardinality-1 is
// skipped. If PrimitiveRoot is set as well, the search for the root is skipped.
type Literal[T Element] struct {
	Cardinality   T
	Primes        []T   `json:",omitempty"`
	Exponents     []int `json:",omitempty"`
	PrimitiveRoot T     `json:",omitempty"`
}

// New creates a new [RingModN] of the given cardinality.
// The returned ring is fully initialized: card-1 is factored
// and the primitive root is found.
//
// New panics if the multiplicative group has no generator,
// which can only happen if card is not prime.
func New[T Element](card T, opts ...Option) (r *RingModN[T], err error) {
	return NewFromLiteral(Literal[T]{Cardinality: card}, opts...)
}

// NewFromLiteral creates a new [RingModN] from a [Literal].
// The factors and the primitive root of the literal, if given,
// are checked before being used.
func NewFromLiteral[T Element](lit Literal[T], opts ...Option) (r *RingModN[T], err error) {

	if lit.Cardinality < 2 {
		return nil, fmt.Errorf("invalid cardinality: %d < 2", lit.Cardinality)
	}

	o := newOptions(opts)

	r = &RingModN[T]{
		card:   lit.Cardinality,
		source: o.source,
		store:  o.store,
		logger: o.logger,
	}

	r.kernels = selectKernels(o.kernels, r.card, r.logger)

	if lit.Primes != nil || lit.Exponents != nil {
		if err = CheckFactors(lit.Cardinality-1, lit.Primes, lit.Exponents); err != nil {
			return nil, fmt.Errorf("invalid literal: %w", err)
		}
		r.primes = slices.Clone(lit.Primes)
		r.exponents = slices.Clone(lit.Exponents)
	}

	if err = r.init(lit.PrimitiveRoot); err != nil {
		return nil, fmt.Errorf("invalid literal: %w", err)
	}

	return
}

// init computes the factors of the order then finds the primitive root.
// A non-zero root is checked and used instead of searching one.
func (r *RingModN[T]) init(root T) (err error) {

	r.computeFactorsOfOrder()

	if root != 0 {
		if err = CheckPrimitiveRoot(root, r.card, r.primes); err != nil {
			return
		}
		r.root = root
	}

	r.findPrimitiveRoot()

	r.logger.WithFields(logrus.Fields{
		"card":    r.card,
		"root":    r.root,
		"primes":  r.primes,
		"kernels": r.kernels.Name(),
	}).Debug("ring initialized")

	return
}

// Literal returns the [Literal] of the ring.
func (r *RingModN[T]) Literal() Literal[T] {
	return Literal[T]{
		Cardinality:   r.card,
		Primes:        slices.Clone(r.primes),
		Exponents:     slices.Clone(r.exponents),
		PrimitiveRoot: r.root,
	}
}

// MarshalJSON encodes the [Literal] of the ring.
func (r *RingModN[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Literal())
}

// CheckFactors checks that the given primes are prime and that
// m = prod primes[i]^exponents[i].
func CheckFactors[T Element](m T, primes []T, exponents []int) (err error) {

	if len(primes) != len(exponents) {
		return fmt.Errorf("len(primes)=%d != len(exponents)=%d", len(primes), len(exponents))
	}

	for i, p := range primes {

		if !factorization.IsPrime(p) {
			return fmt.Errorf("composite factor %d", p)
		}

		for j := 0; j < exponents[i]; j++ {
			if m%p != 0 {
				return fmt.Errorf("invalid exponent for factor %d", p)
			}
			m /= p
		}
	}

	if m != 1 {
		return fmt.Errorf("incomplete factor list")
	}

	return
}

// CheckPrimitiveRoot checks that g is a valid primitive root mod card,
// given the distinct prime factors of card-1.
func CheckPrimitiveRoot[T Element](g, card T, primes []T) (err error) {

	if g == 0 || g >= card {
		return fmt.Errorf("invalid primitive root: %d not in [1, %d)", g, card)
	}

	h := card - 1

	for _, p := range primes {
		if modExp(g, h/p, card) == 1 {
			return fmt.Errorf("invalid primitive root: %d^(%d/%d) = 1 mod %d", g, h, p, card)
		}
	}

	return
}

// modExp returns x^e mod q by square and multiply.
func modExp[T Element](x, e, q T) (y T) {
	y = 1 % q
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			y = arith.MulMod(y, x, q)
		}
		x = arith.MulMod(x, x, q)
	}
	return
}
