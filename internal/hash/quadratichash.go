package hash

import (
	"github.com/gostonefire/hashprobe/hashfunc"
	"github.com/gostonefire/hashprobe/internal/utils"
)

// QuadraticProbingHashAlgorithm - The internally used slot selection algorithm for the Quadratic Probing
// Collision Resolution Technique. The home slot is derived from the key using the configured hash
// scheme, and a collision is resolved by stepping away from the home slot a distance that grows with
// the square of the attempt number.
type QuadraticProbingHashAlgorithm struct {
	tableSize int64
	scheme    int
	mask      uint64
	ctx       Context
}

// NewQuadraticProbingHashAlgorithm - Returns a pointer to a new QuadraticProbingHashAlgorithm instance
//   - tableSize is the number of slots the table will address, it is rounded up to the nearest power of two
//   - scheme is the crt hash scheme constant to derive home slots with
func NewQuadraticProbingHashAlgorithm(tableSize int64, scheme int) *QuadraticProbingHashAlgorithm {
	ha := &QuadraticProbingHashAlgorithm{scheme: scheme}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to the nearest bigger exponent of 2 of the requested table size.
func (Q *QuadraticProbingHashAlgorithm) SetTableSize(tableSize int64) {
	capacity, exponent := utils.RoundUp2(tableSize)
	Q.tableSize = capacity
	Q.mask = uint64(capacity - 1)
	Q.ctx = NewContext(capacity, exponent)
}

// HashFunc1 - Given key it generates an index (slot) between 0 and table size - 1
func (Q *QuadraticProbingHashAlgorithm) HashFunc1(key int64) int64 {
	return Q.ctx.Hash1(Q.scheme, key)
}

// HashFunc2 - Not used in quadratic probing collision resolution techniques, returns a dummy value
func (Q *QuadraticProbingHashAlgorithm) HashFunc2(key int64) int64 {
	return 0
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (Q *QuadraticProbingHashAlgorithm) GetTableSize() int64 {
	return Q.tableSize
}

// ProbeIteration - Implements Quadratic Probing.
// The probe distance follows the triangular numbers with probing constant two, where both integer
// divisions truncate on odd iterations. The sequence is not guaranteed to reach every slot of a power
// of two sized table, so the table may report full while free slots remain.
func (Q *QuadraticProbingHashAlgorithm) ProbeIteration(pc *hashfunc.ProbeContext, iteration int64) int64 {
	i := uint64(iteration)
	return int64((uint64(pc.Primary()) + i/2 + i*i/2) & Q.mask)
}
