//go:build integration

package hashprobe

import (
	"errors"
	"github.com/gostonefire/hashprobe/crt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNewTable(t *testing.T) {
	t.Run("rounds the capacity up to the nearest power of two", func(t *testing.T) {
		// Execute
		table, tableInfo, err := NewTable(10, crt.LinearProbing, nil)

		// Check
		assert.NoError(t, err, "create new table")
		assert.NotNil(t, table, "table is returned")
		assert.Equal(t, int64(10), tableInfo.RequestedCapacity, "requested capacity is preserved")
		assert.Equal(t, int64(16), tableInfo.Capacity, "capacity is rounded up")
		assert.Equal(t, int64(4), tableInfo.CapacityExponent, "exponent matches capacity")
		assert.Equal(t, crt.LinearProbing, tableInfo.CollisionResolutionTechnique, "technique is preserved")
		assert.Equal(t, crt.FibonacciHashing, tableInfo.HashScheme, "fibonacci hashing is the default scheme")
		assert.True(t, tableInfo.InternalAlgorithm, "internal hash algorithm is used")

		table.Free()
	})

	t.Run("each technique constructs a working table", func(t *testing.T) {
		for _, technique := range []int{crt.LinearProbing, crt.QuadraticProbing, crt.DoubleHashing} {
			// Prepare
			table, tableInfo, err := NewTable(100, technique, nil)
			assert.NoErrorf(t, err, "create new table for %s", crt.TechniqueName(technique))
			assert.Equal(t, int64(128), tableInfo.Capacity, "capacity is rounded up")

			// Execute
			_, err = table.Insert(4711)

			// Check
			assert.NoErrorf(t, err, "insert works for %s", crt.TechniqueName(technique))
			assert.Equal(t, int64(1), table.Entries(), "one entry in table")

			table.Free()
		}
	})

	t.Run("minCapacity has to be a positive value", func(t *testing.T) {
		// Execute
		_, _, err := NewTable(0, crt.LinearProbing, nil)
		assert.Error(t, err, "zero capacity is rejected")

		_, _, err = NewTable(-10, crt.LinearProbing, nil)

		// Check
		assert.Error(t, err, "negative capacity is rejected")
	})

	t.Run("capacity beyond the highest power of two is invalid", func(t *testing.T) {
		// Execute
		_, _, err := NewTable(1<<62+1, crt.LinearProbing, nil)

		// Check
		assert.True(t, errors.Is(err, crt.InvalidCapacity{}), "invalid capacity error")
	})

	t.Run("unknown collision resolution technique is rejected", func(t *testing.T) {
		// Execute
		_, _, err := NewTable(10, 47, nil)

		// Check
		assert.Error(t, err, "unknown technique is rejected")
	})
}

func TestNewTableWithScheme(t *testing.T) {
	t.Run("selects the hash scheme for home slots", func(t *testing.T) {
		// Execute
		table, tableInfo, err := NewTableWithScheme(10, crt.LinearProbing, crt.ModuloHashing)

		// Check
		assert.NoError(t, err, "create new table")
		assert.Equal(t, crt.ModuloHashing, tableInfo.HashScheme, "scheme is preserved")
		assert.True(t, tableInfo.InternalAlgorithm, "internal hash algorithm is used")

		table.Free()
	})

	t.Run("every scheme constructs a working table", func(t *testing.T) {
		for _, scheme := range []int{crt.FibonacciHashing, crt.ModuloHashing, crt.FoldingHashing} {
			// Prepare
			table, _, err := NewTableWithScheme(100, crt.DoubleHashing, scheme)
			assert.NoErrorf(t, err, "create new table for %s", crt.SchemeName(scheme))

			// Execute
			_, err = table.Insert(4711)

			// Check
			assert.NoErrorf(t, err, "insert works for %s", crt.SchemeName(scheme))

			table.Free()
		}
	})

	t.Run("unknown hash scheme is rejected", func(t *testing.T) {
		// Execute
		_, _, err := NewTableWithScheme(10, crt.LinearProbing, 47)

		// Check
		assert.Error(t, err, "unknown scheme is rejected")
	})
}

func TestTable_Info(t *testing.T) {
	t.Run("info stays stable over table operations", func(t *testing.T) {
		// Prepare
		table, tableInfo, err := NewTableWithScheme(1000, crt.DoubleHashing, crt.FoldingHashing)
		assert.NoError(t, err, "create new table")

		// Execute
		for key := int64(0); key < 100; key++ {
			_, err = table.Insert(key)
			assert.NoError(t, err, "insert key")
		}

		// Check
		assert.Equal(t, tableInfo, table.Info(), "info unchanged by insertions")
		assert.Equal(t, int64(1024), table.Info().Capacity, "capacity is rounded up")
		assert.Equal(t, int64(10), table.Info().CapacityExponent, "exponent matches capacity")

		table.Free()
	})
}
