package model

// Entry - Represents one slot in a hash table.
// A zero value Entry is an empty slot, there are no tombstones since entries are never deleted.
type Entry struct {
	Exists bool
	Value  int64
}
