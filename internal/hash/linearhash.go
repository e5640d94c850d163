package hash

import (
	"github.com/gostonefire/hashprobe/hashfunc"
	"github.com/gostonefire/hashprobe/internal/utils"
)

// LinearProbingHashAlgorithm - The internally used slot selection algorithm for the Linear Probing
// Collision Resolution Technique. The home slot is derived from the key using the configured hash
// scheme, and a collision is resolved by probing one slot at a time from the home slot, wrapping
// around at the end of the table.
type LinearProbingHashAlgorithm struct {
	tableSize int64
	scheme    int
	ctx       Context
}

// NewLinearProbingHashAlgorithm - Returns a pointer to a new LinearProbingHashAlgorithm instance
//   - tableSize is the number of slots the table will address, it is rounded up to the nearest power of two
//   - scheme is the crt hash scheme constant to derive home slots with
func NewLinearProbingHashAlgorithm(tableSize int64, scheme int) *LinearProbingHashAlgorithm {
	ha := &LinearProbingHashAlgorithm{scheme: scheme}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to the nearest bigger exponent of 2 of the requested table size.
func (L *LinearProbingHashAlgorithm) SetTableSize(tableSize int64) {
	capacity, exponent := utils.RoundUp2(tableSize)
	L.tableSize = capacity
	L.ctx = NewContext(capacity, exponent)
}

// HashFunc1 - Given key it generates an index (slot) between 0 and table size - 1
func (L *LinearProbingHashAlgorithm) HashFunc1(key int64) int64 {
	return L.ctx.Hash1(L.scheme, key)
}

// HashFunc2 - Not used in linear probing collision resolution techniques, returns a dummy value
func (L *LinearProbingHashAlgorithm) HashFunc2(key int64) int64 {
	return 0
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (L *LinearProbingHashAlgorithm) GetTableSize() int64 {
	return L.tableSize
}

// ProbeIteration - Implements Linear Probing
func (L *LinearProbingHashAlgorithm) ProbeIteration(pc *hashfunc.ProbeContext, iteration int64) int64 {
	probe := pc.Primary() + iteration
	if probe >= L.tableSize {
		probe -= L.tableSize
	}

	return probe
}
