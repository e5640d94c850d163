package hashprobe

import (
	"fmt"
	"github.com/gostonefire/hashprobe/crt"
	"github.com/gostonefire/hashprobe/hashfunc"
	"github.com/gostonefire/hashprobe/internal/model"
)

// Insert - Inserts key in the first free slot along its probe sequence.
// Duplicate keys are not detected, inserting the same key twice occupies two slots.
//   - key is the key to insert
//
// It returns:
//   - collisions is the number of occupied slots the probing encountered before a free one was found
//   - err is of type crt.TableFull if no free slot was found, in which case the key was dropped and the
//     number of entries left unchanged, or crt.ProbingAlgorithm if the probing misbehaved
func (T *Table) Insert(key int64) (collisions int64, err error) {
	if T.slots == nil {
		err = fmt.Errorf("table has been freed and can not take more entries")
		return
	}

	var slot int64
	slot, collisions, err = T.probingForInsert(key)
	T.collisions += collisions
	if err != nil {
		collisions = 0
		return
	}

	T.slots[slot] = model.Entry{Exists: true, Value: key}
	T.entries++

	return
}

// InsertAll - Inserts a batch of keys in order, one at a time.
// Insertion stops at the first key that can not be inserted, with the error from that insertion. Keys
// after that one are not attempted.
//   - keys are the keys to insert
//
// It returns:
//   - totalCollisions is the sum of collisions encountered over the inserted keys
//   - err is the error from the first failing insertion, e.g. crt.TableFull once the table is saturated
func (T *Table) InsertAll(keys []int64) (totalCollisions int64, err error) {
	var collisions int64

	for _, key := range keys {
		collisions, err = T.Insert(key)
		if err != nil {
			return
		}
		totalCollisions += collisions
	}

	return
}

// Lookup - Returns the slot index holding key.
// An empty slot along the probe sequence means the key was never inserted, so probing stops there.
//   - key is the key to search for
//
// It returns:
//   - slot is the index of the slot holding key
//   - err is of type crt.NoEntryFound if the key is not in the table, or crt.ProbingAlgorithm if the
//     probing misbehaved
func (T *Table) Lookup(key int64) (slot int64, err error) {
	if T.slots == nil {
		err = fmt.Errorf("table has been freed and can not be searched")
		return
	}

	slot, err = T.probingForLookup(key)

	return
}

// LoadFactor - Returns the table utilization as a percentage between 0 and 100
func (T *Table) LoadFactor() float64 {
	return float64(T.entries) / float64(T.capacity) * 100
}

// Capacity - Returns the number of slots in the table
func (T *Table) Capacity() int64 {
	return T.capacity
}

// Entries - Returns the number of occupied slots
func (T *Table) Entries() int64 {
	return T.entries
}

// Collisions - Returns the cumulative number of probe attempts that hit an occupied slot over all
// insertions, including insertions that were dropped because the table was full
func (T *Table) Collisions() int64 {
	return T.collisions
}

// Free - Releases the slot array.
// The table is invalid after this call, operations on it will return an error while the counters stay
// readable for reporting.
func (T *Table) Free() {
	T.slots = nil
}

// probingForInsert - Is the Probing Collision Resolution Technique algorithm for finding a free slot
// to take a new key.
func (T *Table) probingForInsert(key int64) (slot, collisions int64, err error) {
	var probe int64

	pc := hashfunc.NewProbeContext(T.hashAlgorithm, key)

	iMax := T.capacity * 10 // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe = T.hashAlgorithm.ProbeIteration(pc, i)
		if probe < T.capacity && probe >= 0 {
			if !T.slots[probe].Exists {
				slot = probe
				return
			}

			// Relies on the underlying probing function to distinctively go through the entire set of slots
			collisions++
			if collisions >= T.capacity {
				err = crt.TableFull{}
				return
			}
		}
	}

	// When we have traversed long enough we just have to give up
	// This is just a failsafe, should (with emphasis on should) never occur
	err = crt.ProbingAlgorithm{}
	return
}

// probingForLookup - Is the Probing Collision Resolution Technique algorithm for finding the slot
// holding a key.
func (T *Table) probingForLookup(key int64) (slot int64, err error) {
	var probe, n int64

	pc := hashfunc.NewProbeContext(T.hashAlgorithm, key)

	iMax := T.capacity * 10 // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe = T.hashAlgorithm.ProbeIteration(pc, i)
		if probe < T.capacity && probe >= 0 {
			if !T.slots[probe].Exists {
				err = crt.NoEntryFound{}
				return
			}

			if T.slots[probe].Value == key {
				slot = probe
				return
			}

			// Relies on the underlying probing function to distinctively go through the entire set of slots
			n++
			if n >= T.capacity {
				err = crt.NoEntryFound{}
				return
			}
		}
	}

	// When we have traversed long enough we just have to give up
	// This is just a failsafe, should (with emphasis on should) never occur
	err = crt.ProbingAlgorithm{}
	return
}
