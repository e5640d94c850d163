package keygen

import "math/rand"

// UniqueInts - Returns a slice of n distinct pseudo random integers in the range 0 to n - 1.
// The same seed always yields the same sequence, which keeps benchmark runs repeatable.
//   - n is the number of integers to generate
//   - seed is the seed for the random source
func UniqueInts(n, seed int64) []int64 {
	r := rand.New(rand.NewSource(seed))

	keys := make([]int64, n)
	for i, v := range r.Perm(int(n)) {
		keys[i] = int64(v)
	}

	return keys
}
