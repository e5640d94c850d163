package hashfunc

// HashAlgorithm - Interface that permits an implementation using the hash table to supply a custom slot
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when creating a new table. Hence, if a custom hash algorithm is supplied that implements
	// this interface and the instance is already having a table size, it will be overwritten by the minimum
	// capacity that is supplied when creating the table.
	//   - tableSize is the number of slots the table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (slot) between 0 and table size - 1.
	// Any number returned outside the table size (0 -> table size - 1) will be skipped by the probing loop,
	// which costs extra iterations and may end the operation with an error if it never gets in range.
	HashFunc1(key int64) int64

	// HashFunc2 - Given key it generates an offset probing value that will be used together with the value
	// from HashFunc1 in probe iterations. The function is only used for the Double Hashing Collision
	// Resolution Technique and the value must never be zero, a zero step would collapse the probe sequence
	// to the home slot for every attempt. A returned zero is treated by the ProbeContext as not yet
	// computed, so the function would just be called again on the next probe iteration.
	HashFunc2(key int64) int64

	// GetTableSize - Returns the table size the implemented hash functions are supporting.
	// It is very important that this function return the actual table size and not just the table size given
	// in a call to SetTableSize. Some algorithms are implemented by rounding up to nearest 2 to the power of x,
	// and if such operations are built in the implementation of this interface it must be covered in the
	// GetTableSize.
	GetTableSize() int64

	// ProbeIteration - Returns a candidate slot index given the probe context over a key in iteration.
	// Since this function will be called repeatedly in a collision resolution situation, and the actual hash
	// values over the key are the same throughout iterations, the function takes a ProbeContext carrying them
	// rather than the key itself. The secondary hash is first computed when an implementation asks the
	// context for it, so algorithms that never need it never pay for it.
	// For some probing algorithms it may be that they return a probing value outside the hash table slot
	// range, that is alright, the internal loop will then just increment the iteration by one and call this
	// function again.
	ProbeIteration(pc *ProbeContext, iteration int64) int64
}
