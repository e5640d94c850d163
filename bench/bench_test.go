//go:build unit

package bench

import (
	"bytes"
	"github.com/gostonefire/hashprobe/crt"
	"github.com/stretchr/testify/assert"
	"github.com/sugawarayuuta/sonnet"
	"strings"
	"testing"
	"time"
)

func TestRun(t *testing.T) {
	t.Run("produces one result per technique and fill ratio", func(t *testing.T) {
		// Prepare
		cfg := Config{
			TableSize:  1024,
			FillRatios: []float64{0.25, 0.5},
			Techniques: []int{crt.LinearProbing, crt.DoubleHashing},
		}

		// Execute
		results, err := Run(cfg)

		// Check
		assert.NoError(t, err, "run benchmark suite")
		assert.Equal(t, 4, len(results), "one result per technique and ratio")

		assert.Equal(t, "linear", results[0].Technique, "techniques in given order")
		assert.Equal(t, "linear", results[1].Technique, "techniques in given order")
		assert.Equal(t, "double", results[2].Technique, "techniques in given order")
		assert.Equal(t, "double", results[3].Technique, "techniques in given order")

		for _, result := range results {
			assert.Equal(t, int64(1024), result.Capacity, "capacity is rounded up")
			assert.Equal(t, int64(float64(result.Capacity)*result.FillRatio), result.Entries, "entries match fill ratio")
			assert.False(t, result.Saturated, "linear and double probing always fit the keys")
			assert.InDelta(t, result.FillRatio*100, result.LoadFactor, 0.0001, "load factor matches fill ratio")
		}
	})

	t.Run("defaults fill in when config is sparse", func(t *testing.T) {
		// Execute
		results, err := Run(Config{TableSize: 256})

		// Check
		assert.NoError(t, err, "run benchmark suite")
		assert.Equal(t, 15, len(results), "three techniques times five default ratios")

		for _, result := range results {
			assert.Equal(t, int64(256), result.Capacity, "capacity is rounded up")
			assert.Equal(t, "fibonacci", result.HashScheme, "fibonacci hashing is the default scheme")
			assert.Greater(t, result.Entries, int64(0), "at least some keys fit")
			assert.LessOrEqual(t, result.Entries, result.Capacity, "entries never exceed capacity")
		}
	})

	t.Run("equal seeds give equal collision counts", func(t *testing.T) {
		// Prepare
		cfg := Config{
			TableSize:  512,
			FillRatios: []float64{0.75},
			Techniques: []int{crt.LinearProbing, crt.QuadraticProbing, crt.DoubleHashing},
			Seed:       4711,
		}

		// Execute
		first, err := Run(cfg)
		assert.NoError(t, err, "first run")

		second, err := Run(cfg)
		assert.NoError(t, err, "second run")

		// Check
		assert.Equal(t, len(first), len(second), "equal number of results")
		for i := range first {
			assert.Equal(t, first[i].Collisions, second[i].Collisions, "collision counts are reproducible")
			assert.Equal(t, first[i].Entries, second[i].Entries, "entry counts are reproducible")
		}
	})

	t.Run("fill ratio has to be above zero and at most one", func(t *testing.T) {
		// Execute
		_, err := Run(Config{TableSize: 16, FillRatios: []float64{1.5}})
		assert.Error(t, err, "ratio above one is rejected")

		_, err = Run(Config{TableSize: 16, FillRatios: []float64{0}})
		assert.Error(t, err, "zero ratio is rejected")

		_, err = Run(Config{TableSize: 16, FillRatios: []float64{-0.5}})

		// Check
		assert.Error(t, err, "negative ratio is rejected")
	})
}

func TestParseFillRatios(t *testing.T) {
	t.Run("parses a comma separated list", func(t *testing.T) {
		// Execute
		ratios, err := ParseFillRatios("0.25, 0.5,1.0")

		// Check
		assert.NoError(t, err, "parse fill ratios")
		assert.Equal(t, []float64{0.25, 0.5, 1.0}, ratios, "ratios in given order")
	})

	t.Run("a part that is not a number is rejected", func(t *testing.T) {
		// Execute
		_, err := ParseFillRatios("0.25,abc,0.5")

		// Check
		assert.Error(t, err, "unparsable ratio is rejected")
	})
}

func TestWriteText(t *testing.T) {
	t.Run("renders a header and one line per result", func(t *testing.T) {
		// Prepare
		results := []Result{
			{Technique: "linear", HashScheme: "fibonacci", FillRatio: 0.5, Capacity: 16, Entries: 8, Collisions: 3, LoadFactor: 50, Elapsed: 1234 * time.Nanosecond},
			{Technique: "quadratic", HashScheme: "fibonacci", FillRatio: 1.0, Capacity: 16, Entries: 11, Collisions: 160, LoadFactor: 68.75, Saturated: true, Elapsed: 2345 * time.Nanosecond},
		}

		buf := bytes.Buffer{}

		// Execute
		err := WriteText(&buf, results)

		// Check
		assert.NoError(t, err, "write text report")
		assert.Equal(t, 3, strings.Count(buf.String(), "\n"), "header plus one line per result")
		assert.Contains(t, buf.String(), "TECHNIQUE", "header present")
		assert.Contains(t, buf.String(), "linear", "technique present")
		assert.Contains(t, buf.String(), "quadratic", "technique present")
	})
}

func TestWriteJSON(t *testing.T) {
	t.Run("results round trip through json", func(t *testing.T) {
		// Prepare
		results := []Result{
			{Technique: "double", HashScheme: "modulo", FillRatio: 0.9, Capacity: 1024, Entries: 921, Collisions: 1305, LoadFactor: 89.94, Elapsed: 98765 * time.Nanosecond},
		}

		buf := bytes.Buffer{}

		// Execute
		err := WriteJSON(&buf, results)
		assert.NoError(t, err, "write json report")

		var decoded []Result
		err = sonnet.Unmarshal(buf.Bytes(), &decoded)

		// Check
		assert.NoError(t, err, "decode json report")
		assert.Equal(t, results, decoded, "results survive the round trip")
		assert.Contains(t, buf.String(), "elapsed_ns", "elapsed time kept in nanoseconds")
	})
}
