package ring

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Pro7ech/nttec/utils/structs"
)

// ComputeOmegas sets W[i] = w^i for i < n.
func (r *RingModN[T]) ComputeOmegas(W structs.Vector[T], n int, w T) {

	if n == 0 {
		return
	}

	assertLen(n, W.Size())

	W.Set(0, 1%r.card)
	for i := 1; i < n; i++ {
		W.Set(i, r.Mul(W.Get(i-1), w))
	}
}

// ComputeOmegasCached sets W[i] = w^i for i < n, reading the table from
// the store of the ring if it holds it, and recording it otherwise.
// Tables are keyed by the cardinality of the ring, so a store can be
// shared between rings.
// Without store, it is equivalent to [RingModN.ComputeOmegas].
func (r *RingModN[T]) ComputeOmegasCached(W structs.Vector[T], n int, w T) (err error) {

	if r.store == nil {
		r.ComputeOmegas(W, n, w)
		return
	}

	values, ok, err := r.store.Load(uint64(r.card), n, uint64(w))
	if err != nil {
		return fmt.Errorf("cache.Store.Load: %w", err)
	}

	if ok {
		for i := 0; i < n; i++ {
			W.Set(i, T(values[i]))
		}
		return
	}

	r.ComputeOmegas(W, n, w)

	values = make([]uint64, n)
	for i := range values {
		values[i] = uint64(W.Get(i))
	}

	if err = r.store.Save(uint64(r.card), uint64(w), values); err != nil {
		r.logger.WithFields(logrus.Fields{"card": r.card, "n": n, "w": w}).WithError(err).Warn("cannot save omegas")
	}

	return nil
}
