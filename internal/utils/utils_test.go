//go:build unit

package utils

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestRoundUp2(t *testing.T) {
	t.Run("rounds up to nearest power of two", func(t *testing.T) {
		// Prepare
		r2u := []int64{1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048, 4096, 8192, 16384, 262144, 16777216, 1073741824}
		exps := []int64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 18, 24, 30}
		input := []int64{1, 2, 3, 5, 9, 30, 50, 100, 129, 512, 1020, 1500, 3000, 7123, 9000, 200000, 16000000, 536870913}

		// Execute and Check
		for i := 0; i < len(input); i++ {
			capacity, exponent := RoundUp2(input[i])
			assert.Equal(t, r2u[i], capacity, "rounds upp correct")
			assert.Equal(t, exps[i], exponent, "exponent matches capacity")
		}
	})

	t.Run("capacity is one shifted by exponent", func(t *testing.T) {
		// Execute and Check
		for i := int64(1); i < 10000; i++ {
			capacity, exponent := RoundUp2(i)
			assert.Equal(t, int64(1)<<exponent, capacity, "capacity is a power of two")
			assert.GreaterOrEqual(t, capacity, i, "capacity covers the minimum")
			if capacity > 1 {
				assert.Less(t, capacity/2, i, "capacity is the smallest covering power of two")
			}
		}
	})

	t.Run("highest possible capacity is preserved", func(t *testing.T) {
		// Execute
		capacity, exponent := RoundUp2(1 << 62)

		// Check
		assert.Equal(t, int64(1)<<62, capacity, "rounds upp correct")
		assert.Equal(t, int64(62), exponent, "exponent matches capacity")
	})

	t.Run("degenerate input gives zero capacity", func(t *testing.T) {
		// Prepare
		input := []int64{0, -1, -512, 1<<62 + 1}

		// Execute and Check
		for _, v := range input {
			capacity, exponent := RoundUp2(v)
			assert.Equal(t, int64(0), capacity, "no capacity for degenerate input")
			assert.Equal(t, int64(0), exponent, "no exponent for degenerate input")
		}
	})
}
