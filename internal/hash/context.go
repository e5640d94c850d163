package hash

import (
	"github.com/gostonefire/hashprobe/crt"
	"math"
)

// Context - Holds the constants derived from a table capacity that the hash functions need.
// The multiplier is the golden ratio conjugate scaled to the capacity, which spreads sequential or
// otherwise clustered keys over the slots with low correlation regardless of table size.
type Context struct {
	capacity   int64
	exp        int64
	multiplier uint64
	mask       uint64
}

// NewContext - Returns a new Context derived from a table capacity and its power of two exponent
//   - capacity is the table capacity, it has to be a power of two
//   - exponent is the power of two exponent, i.e. capacity == 1 << exponent
func NewContext(capacity, exponent int64) Context {
	if capacity <= 0 {
		return Context{}
	}

	return Context{
		capacity:   capacity,
		exp:        exponent,
		multiplier: uint64(float64(capacity) * (math.Sqrt(5) - 1) / 2),
		mask:       uint64(capacity - 1),
	}
}

// Capacity - Returns the capacity the context was derived from
func (C Context) Capacity() int64 {
	return C.capacity
}

// Multiplier - Returns the Fibonacci multiplier derived from the capacity
func (C Context) Multiplier() uint64 {
	return C.multiplier
}

// Hash1 - Returns the home slot for key under the given hash scheme, in the range 0 to capacity - 1.
// The key bit pattern is treated as unsigned, so negative keys hash without any sign dependent behavior.
func (C Context) Hash1(scheme int, key int64) int64 {
	switch scheme {
	case crt.ModuloHashing:
		return int64(uint64(key) & C.mask)
	case crt.FoldingHashing:
		return int64(C.fold(uint64(key)) & C.mask)
	default:
		return int64((uint64(key) * C.multiplier) >> (64 - uint64(C.exp)))
	}
}

// Hash2 - Returns the probe step for key used by double hashing.
// The fold over the key is forced odd. An odd step can never be zero and is coprime with the power of
// two capacity, so the probe sequence visits every slot of the table before any slot repeats.
func (C Context) Hash2(key int64) int64 {
	return int64(C.fold(uint64(key)) | 1)
}

// fold - Accumulates the key in exponent sized bit windows.
// A capacity of one slot gives a zero wide window, in which case the fold is defined as zero.
func (C Context) fold(key uint64) uint64 {
	if C.exp == 0 {
		return 0
	}

	var acc uint64
	for shift := int64(0); shift < 64; shift += C.exp {
		acc += (key >> uint64(shift)) & C.mask
	}

	return acc
}
