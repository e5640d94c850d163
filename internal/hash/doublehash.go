package hash

import (
	"github.com/gostonefire/hashprobe/hashfunc"
	"github.com/gostonefire/hashprobe/internal/utils"
)

// DoubleHashAlgorithm - The internally used slot selection algorithm for the Double Hashing Collision
// Resolution Technique. The home slot is derived from the key using the configured hash scheme, and a
// collision is resolved by repeatedly stepping an offset derived from a second, folding, hash over the key.
type DoubleHashAlgorithm struct {
	tableSize int64
	scheme    int
	mask      uint64
	ctx       Context
}

// NewDoubleHashAlgorithm - Returns a pointer to a new DoubleHashAlgorithm instance
//   - tableSize is the number of slots the table will address, it is rounded up to the nearest power of two
//   - scheme is the crt hash scheme constant to derive home slots with
func NewDoubleHashAlgorithm(tableSize int64, scheme int) *DoubleHashAlgorithm {
	ha := &DoubleHashAlgorithm{scheme: scheme}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to the nearest bigger exponent of 2 of the requested
// table size. The probe step from HashFunc2 is always odd, hence coprime with the power of two table
// size, which lets the probing visit the entirety of the tables slots once and only once.
func (D *DoubleHashAlgorithm) SetTableSize(tableSize int64) {
	capacity, exponent := utils.RoundUp2(tableSize)
	D.tableSize = capacity
	D.mask = uint64(capacity - 1)
	D.ctx = NewContext(capacity, exponent)
}

// HashFunc1 - Given key it generates an index (slot) between 0 and table size - 1
func (D *DoubleHashAlgorithm) HashFunc1(key int64) int64 {
	return D.ctx.Hash1(D.scheme, key)
}

// HashFunc2 - Given key it generates an offset probing value that will be used together with the value
// from HashFunc1 in probe iterations. The value is the key folded in capacity exponent sized windows,
// forced odd, and is therefore never zero.
func (D *DoubleHashAlgorithm) HashFunc2(key int64) int64 {
	return D.ctx.Hash2(key)
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (D *DoubleHashAlgorithm) GetTableSize() int64 {
	return D.tableSize
}

// ProbeIteration - Implements Double Hashing.
// The first iteration goes straight to the home slot without touching the secondary hash, iterations
// after that fetch it from the probe context where it is computed once and cached for the operation.
func (D *DoubleHashAlgorithm) ProbeIteration(pc *hashfunc.ProbeContext, iteration int64) int64 {
	if iteration == 0 {
		return pc.Primary()
	}

	return int64((uint64(pc.Primary()) + uint64(iteration)*uint64(pc.Secondary())) & D.mask)
}
