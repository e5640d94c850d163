package utils

import "math/bits"

// RoundUp2 - Rounds the given minimum capacity up to the nearest power of two and returns it together
// with the exponent of that power. A minimum capacity that is zero or negative, or so large that no
// power of two within the positive int64 range can cover it, results in both return values being zero.
//   - minCapacity is the lowest capacity the returned power of two must cover
//
// It returns:
//   - capacity is the smallest power of two that is equal to or higher than minCapacity
//   - exponent is the power of two exponent, i.e. capacity == 1 << exponent
func RoundUp2(minCapacity int64) (capacity, exponent int64) {
	if minCapacity <= 0 || minCapacity > 1<<62 {
		return
	}

	exponent = int64(bits.Len64(uint64(minCapacity - 1)))
	capacity = int64(1) << exponent

	return
}
