package chained

import (
	"fmt"
	"github.com/gostonefire/hashprobe/crt"
	"github.com/segmentio/fasthash/fnv1a"
)

// node - A single line in a bucket chain.
type node struct {
	line string
	next *node
}

// Table - Implements an in-memory hash table over text lines using separate chaining.
// Each line hashes to one of a fixed number of buckets and every bucket holds a linked
// chain of the distinct lines that landed in it, in insertion order.
type Table struct {
	buckets         []*node
	numberOfBuckets int64
	records         int64
}

// NewTable - Returns a pointer to a new Table struct.
//
// It returns:
//   - table is a pointer to a Table struct
//   - err is a standard Go error
func NewTable(numberOfBuckets int64) (table *Table, err error) {
	if numberOfBuckets <= 0 {
		err = fmt.Errorf("numberOfBuckets must be a positive value higher than 0 (zero)")
		return
	}

	table = &Table{
		buckets:         make([]*node, numberOfBuckets),
		numberOfBuckets: numberOfBuckets,
	}

	return
}

// bucketNo - Returns the bucket number a given line belongs to.
func (C *Table) bucketNo(line string) int64 {
	return int64(fnv1a.HashString64(line) % uint64(C.numberOfBuckets))
}

// Add - Adds a line to the table unless an equal line is already present.
// New lines go to the end of their bucket chain, hence a chain preserves insertion order.
//
// It returns:
//   - duplicate is true if an equal line was already present, in which case nothing was added
func (C *Table) Add(line string) (duplicate bool) {
	bucket := C.bucketNo(line)

	var last *node
	for n := C.buckets[bucket]; n != nil; n = n.next {
		if n.line == line {
			duplicate = true
			return
		}
		last = n
	}

	if last == nil {
		C.buckets[bucket] = &node{line: line}
	} else {
		last.next = &node{line: line}
	}
	C.records++

	return
}

// Contains - Returns whether an equal line is present in the table.
func (C *Table) Contains(line string) bool {
	for n := C.buckets[C.bucketNo(line)]; n != nil; n = n.next {
		if n.line == line {
			return true
		}
	}

	return false
}

// Records - Returns the number of distinct lines in the table.
func (C *Table) Records() int64 {
	return C.records
}

// NumberOfBuckets - Returns the number of buckets in the table.
func (C *Table) NumberOfBuckets() int64 {
	return C.numberOfBuckets
}

// Chain - Returns a ChainIterator over the lines in a given bucket, in insertion order.
//
// It returns:
//   - iterator is a pointer to a ChainIterator struct
//   - err is a standard Go error
func (C *Table) Chain(bucketNo int64) (iterator *ChainIterator, err error) {
	if bucketNo < 0 || bucketNo >= C.numberOfBuckets {
		err = fmt.Errorf("bucketNo is outside permitted range")
		return
	}

	iterator = &ChainIterator{next: C.buckets[bucketNo]}

	return
}

// LongestChain - Returns the bucket number and length of the longest chain in the table.
// If several buckets share the longest length the first of them is returned.
func (C *Table) LongestChain() (bucketNo, length int64) {
	for b := int64(0); b < C.numberOfBuckets; b++ {
		var n int64
		for chain := C.buckets[b]; chain != nil; chain = chain.next {
			n++
		}
		if n > length {
			bucketNo = b
			length = n
		}
	}

	return
}

// ChainIterator - Is used to iterate over the lines in a bucket chain one by one.
type ChainIterator struct {
	next *node
}

// HasNext - Returns true if there are more lines to be fetched from a call to Next.
func (I *ChainIterator) HasNext() bool {
	return I.next != nil
}

// Next - Returns line.
// It returns:
//   - line is the next line in the chain.
//   - err is an error of type crt.NoEntryFound if there are no more lines when calling this function.
func (I *ChainIterator) Next() (line string, err error) {
	if I.next == nil {
		err = crt.NoEntryFound{}
		return
	}

	line = I.next.line
	I.next = I.next.next

	return
}
