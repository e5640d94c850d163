package hashprobe

import (
	"fmt"
	"github.com/gostonefire/hashprobe/crt"
	"github.com/gostonefire/hashprobe/hashfunc"
	"github.com/gostonefire/hashprobe/internal/hash"
	"github.com/gostonefire/hashprobe/internal/model"
	"github.com/gostonefire/hashprobe/internal/utils"
)

// TableInfo - Information structure containing some information about the hash table created
//   - CollisionResolutionTechnique is the crt constant the table resolves collisions with
//   - HashScheme is the crt constant home slots are derived with
//   - RequestedCapacity is the minimum capacity given when the table was created
//   - Capacity is the actual number of slots after rounding up to the nearest power of two
//   - CapacityExponent is the power of two exponent, i.e. Capacity == 1 << CapacityExponent, it is zero
//     if a custom hash algorithm chose a capacity that is not a power of two
//   - InternalAlgorithm is true if the table uses one of the internal hash algorithms
type TableInfo struct {
	CollisionResolutionTechnique int
	HashScheme                   int
	RequestedCapacity            int64
	Capacity                     int64
	CapacityExponent             int64
	InternalAlgorithm            bool
}

// Table - The main implementation struct.
// It owns a contiguous slot array together with occupancy and collision counters, and resolves
// colliding insertions by probing the slots with the chosen collision resolution technique.
type Table struct {
	slots                        []model.Entry
	capacity                     int64
	exponent                     int64
	entries                      int64
	collisions                   int64
	hashAlgorithm                hashfunc.HashAlgorithm
	internalAlgorithm            bool
	collisionResolutionTechnique int
	hashScheme                   int
	requestedCapacity            int64
}

// NewTable - Returns a new in-memory hash table prepared to cover at least minCapacity entries, with
// home slots derived through Fibonacci hashing.
//   - minCapacity is the lowest number of slots the table must hold, the actual capacity is rounded up to the nearest power of two
//   - collisionResolutionTechnique is one of the crt constants LinearProbing, QuadraticProbing or DoubleHashing
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface, nil selects the internal one
//
// It returns:
//   - table is a pointer to a Table struct
//   - tableInfo is a TableInfo struct containing some data regarding the hash table created
//   - err is a normal Go error which should be nil if everything went ok
func NewTable(minCapacity int64, collisionResolutionTechnique int, hashAlgorithm hashfunc.HashAlgorithm) (
	table *Table,
	tableInfo TableInfo,
	err error,
) {
	return newTable(minCapacity, collisionResolutionTechnique, crt.FibonacciHashing, hashAlgorithm)
}

// NewTableWithScheme - Returns a new in-memory hash table like NewTable does, but with the hash scheme
// deriving home slots selectable. It always uses the internal hash algorithm for the chosen technique.
//   - minCapacity is the lowest number of slots the table must hold, the actual capacity is rounded up to the nearest power of two
//   - collisionResolutionTechnique is one of the crt constants LinearProbing, QuadraticProbing or DoubleHashing
//   - hashScheme is one of the crt constants FibonacciHashing, ModuloHashing or FoldingHashing
//
// It returns:
//   - table is a pointer to a Table struct
//   - tableInfo is a TableInfo struct containing some data regarding the hash table created
//   - err is a normal Go error which should be nil if everything went ok
func NewTableWithScheme(minCapacity int64, collisionResolutionTechnique, hashScheme int) (
	table *Table,
	tableInfo TableInfo,
	err error,
) {
	return newTable(minCapacity, collisionResolutionTechnique, hashScheme, nil)
}

// newTable - Creates the table after validating input and selecting the hash algorithm
func newTable(minCapacity int64, collisionResolutionTechnique, hashScheme int, hashAlgorithm hashfunc.HashAlgorithm) (
	table *Table,
	tableInfo TableInfo,
	err error,
) {
	// Check if minCapacity is valid
	if minCapacity <= 0 {
		err = fmt.Errorf("minCapacity must be a positive value higher than 0 (zero)")
		return
	}

	// Check if the collision resolution technique is valid
	switch collisionResolutionTechnique {
	case crt.LinearProbing, crt.QuadraticProbing, crt.DoubleHashing:
	default:
		err = fmt.Errorf("unknown collision resolution technique: %d", collisionResolutionTechnique)
		return
	}

	// Check if the hash scheme is valid
	switch hashScheme {
	case crt.FibonacciHashing, crt.ModuloHashing, crt.FoldingHashing:
	default:
		err = fmt.Errorf("unknown hash scheme: %d", hashScheme)
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if hashAlgorithm == nil {
		switch collisionResolutionTechnique {
		case crt.LinearProbing:
			hashAlgorithm = hash.NewLinearProbingHashAlgorithm(minCapacity, hashScheme)
		case crt.QuadraticProbing:
			hashAlgorithm = hash.NewQuadraticProbingHashAlgorithm(minCapacity, hashScheme)
		case crt.DoubleHashing:
			hashAlgorithm = hash.NewDoubleHashAlgorithm(minCapacity, hashScheme)
		}
		internalAlg = true
	} else {
		hashAlgorithm.SetTableSize(minCapacity)
	}

	// The algorithm owns the actual table size, the internal ones cover minCapacity with a power of
	// two and report zero if no representable power of two can do that.
	capacity := hashAlgorithm.GetTableSize()
	if capacity <= 0 {
		err = crt.InvalidCapacity{}
		return
	}

	// Exponent stays zero if a custom algorithm chose a capacity that is not a power of two
	var exponent int64
	if rounded, e := utils.RoundUp2(capacity); rounded == capacity {
		exponent = e
	}

	table = &Table{
		slots:                        make([]model.Entry, capacity),
		capacity:                     capacity,
		exponent:                     exponent,
		hashAlgorithm:                hashAlgorithm,
		internalAlgorithm:            internalAlg,
		collisionResolutionTechnique: collisionResolutionTechnique,
		hashScheme:                   hashScheme,
		requestedCapacity:            minCapacity,
	}

	tableInfo = table.Info()

	return
}

// Info - Returns a TableInfo struct describing the table
func (T *Table) Info() TableInfo {
	return TableInfo{
		CollisionResolutionTechnique: T.collisionResolutionTechnique,
		HashScheme:                   T.hashScheme,
		RequestedCapacity:            T.requestedCapacity,
		Capacity:                     T.capacity,
		CapacityExponent:             T.exponent,
		InternalAlgorithm:            T.internalAlgorithm,
	}
}
