package hashfunc

// ProbeContext - Carries the hash state over one key through the probe iterations of a single table
// operation. The primary hash is computed once up front while the secondary hash is computed first
// when some probing algorithm asks for it, and is then cached for the remainder of the operation.
type ProbeContext struct {
	algorithm HashAlgorithm
	key       int64
	hf1Value  int64
	hf2Value  int64
}

// NewProbeContext - Returns a pointer to a new ProbeContext over key with the primary hash computed
//   - algorithm is the hash algorithm to fetch hash values from
//   - key is the key under probing
func NewProbeContext(algorithm HashAlgorithm, key int64) *ProbeContext {
	return &ProbeContext{
		algorithm: algorithm,
		key:       key,
		hf1Value:  algorithm.HashFunc1(key),
	}
}

// Key - Returns the key under probing
func (P *ProbeContext) Key() int64 {
	return P.key
}

// Primary - Returns the primary hash value over the key
func (P *ProbeContext) Primary() int64 {
	return P.hf1Value
}

// Secondary - Returns the secondary hash value over the key.
// The value is fetched from the hash algorithm on first use and then cached, where zero means not yet
// computed. The internal algorithms can never produce a zero since their secondary hash is forced odd.
func (P *ProbeContext) Secondary() int64 {
	if P.hf2Value == 0 {
		P.hf2Value = P.algorithm.HashFunc2(P.key)
	}

	return P.hf2Value
}
