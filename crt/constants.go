package crt

import (
	"fmt"
	"strings"
)

// Collision Resolution Techniques to choose from when creating a new hash table.
const (
	// LinearProbing - Collision Resolution Technique where probing is done one slot at a time from the
	// home slot, wrapping around at the end of the table. Simple but prone to primary clustering.
	LinearProbing = iota + 1
	// QuadraticProbing - Collision Resolution Technique where the probe distance from the home slot grows
	// with the square of the attempt number, which breaks up primary clustering.
	QuadraticProbing
	// DoubleHashing - Collision Resolution Technique where the probe step is derived from a second hash
	// function over the key, giving each key its own probe sequence.
	DoubleHashing
)

// Hash schemes to derive the home slot of a key with.
const (
	// FibonacciHashing - Multiplicative hashing with a multiplier derived from the golden ratio scaled to
	// the table capacity. This is the default scheme.
	FibonacciHashing = iota + 1
	// ModuloHashing - The key taken modulo the table capacity.
	ModuloHashing
	// FoldingHashing - The key folded in capacity exponent sized bit windows.
	FoldingHashing
)

// TechniqueName - Returns a printable name for a collision resolution technique
func TechniqueName(technique int) string {
	switch technique {
	case LinearProbing:
		return "linear"
	case QuadraticProbing:
		return "quadratic"
	case DoubleHashing:
		return "double"
	default:
		return "unknown"
	}
}

// SchemeName - Returns a printable name for a hash scheme
func SchemeName(scheme int) string {
	switch scheme {
	case FibonacciHashing:
		return "fibonacci"
	case ModuloHashing:
		return "modulo"
	case FoldingHashing:
		return "folding"
	default:
		return "unknown"
	}
}

// ParseTechnique - Returns the collision resolution technique constant corresponding to name, as
// produced by TechniqueName
func ParseTechnique(name string) (technique int, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear":
		technique = LinearProbing
	case "quadratic":
		technique = QuadraticProbing
	case "double":
		technique = DoubleHashing
	default:
		err = fmt.Errorf("unknown collision resolution technique: %s", name)
	}

	return
}

// ParseScheme - Returns the hash scheme constant corresponding to name, as produced by SchemeName
func ParseScheme(name string) (scheme int, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fibonacci":
		scheme = FibonacciHashing
	case "modulo":
		scheme = ModuloHashing
	case "folding":
		scheme = FoldingHashing
	default:
		err = fmt.Errorf("unknown hash scheme: %s", name)
	}

	return
}
