package crt

// InvalidCapacity - Custom error to inform that a requested capacity can not be covered by a power of two
type InvalidCapacity struct {
	msg string
}

// Error - Used to notify that the requested capacity is invalid
func (I InvalidCapacity) Error() string {
	if I.msg == "" {
		return "invalid capacity"
	}
	return I.msg
}

// TableFull - Custom error to inform that the hash table is full and can't take more entries
type TableFull struct {
	msg string
}

// Error - Used to notify that the hash table is full
func (T TableFull) Error() string {
	if T.msg == "" {
		return "hash table full"
	}
	return T.msg
}

// NoEntryFound - Custom error to inform that no entry was found
type NoEntryFound struct {
	msg string
}

// Error - Used to notify that no entry was found
func (N NoEntryFound) Error() string {
	if N.msg == "" {
		return "no entry found"
	}
	return N.msg
}

// ProbingAlgorithm - Custom error to inform that something went wrong concerning a probing algorithm
type ProbingAlgorithm struct {
	msg string
}

// Error - Used to notify that a probing algorithm misbehaved
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "probing algorithm exhausted"
	}
	return P.msg
}
