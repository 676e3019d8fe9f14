package ring

import (
	"fmt"
	"math/bits"
)

// GroupedValues is a packed group of values along with per-value flags.
// Values stores several lanes of a ring element each. When the i-th bit of
// Flag is set, the i-th lane holds 0 and the true value is card-1, which
// does not fit in a lane.
type GroupedValues[T Element] struct {
	Values T
	Flag   uint32
}

// IsFermat returns true if card = 2^k + 1 for some k > 0.
func IsFermat[T Element](card T) bool {
	h := card - 1
	return card > 2 && h&(h-1) == 0
}

// laneBits returns k for card = 2^k + 1.
func laneBits[T Element](card T) int {
	return bits.Len64(uint64(card-1)) - 1
}

// GroupSize returns the number of lanes of a [GroupedValues] of a
// Fermat ring of the given cardinality, or 0 if card is not of the
// form 2^k+1.
func GroupSize[T Element](card T) int {
	if !IsFermat(card) {
		return 0
	}
	return min(64/laneBits(card), 32)
}

// PackGrouped packs the elements of a Fermat ring card = 2^k + 1 in lanes
// of k bits, lane i holding lanes[i]. The value card-1 = 2^k is stored as
// 0 with the i-th bit of the flag set.
func PackGrouped[T Element](card T, lanes []T) (g GroupedValues[uint64], err error) {

	if !IsFermat(card) {
		return g, fmt.Errorf("invalid cardinality: %d is not of the form 2^k+1", card)
	}

	k := laneBits(card)

	if len(lanes) > GroupSize(card) {
		return g, fmt.Errorf("invalid number of lanes: %d > %d", len(lanes), GroupSize(card))
	}

	for i, v := range lanes {

		if v >= card {
			return g, fmt.Errorf("invalid element: lanes[%d]=%d >= %d", i, v, card)
		}

		if v == card-1 {
			g.Flag |= 1 << i
			continue
		}

		g.Values |= uint64(v) << (i * k)
	}

	return
}

// UnpackGrouped returns the n first lanes of a group packed with [PackGrouped].
func UnpackGrouped[T Element](card T, g GroupedValues[uint64], n int) (lanes []T) {

	k := laneBits(card)
	mask := uint64(1)<<k - 1

	lanes = make([]T, n)
	for i := range lanes {
		if g.Flag>>i&1 == 1 {
			lanes[i] = card - 1
			continue
		}
		lanes[i] = T(g.Values >> (i * k) & mask)
	}

	return
}
