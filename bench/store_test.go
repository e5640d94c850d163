//go:build integration

package bench

import (
	"github.com/stretchr/testify/assert"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveResults(t *testing.T) {
	t.Run("results round trip through the database", func(t *testing.T) {
		// Prepare
		path := filepath.Join(t.TempDir(), "results.db")

		results := []Result{
			{Technique: "linear", HashScheme: "fibonacci", FillRatio: 0.5, Capacity: 1024, Entries: 512, Collisions: 218, LoadFactor: 50, Elapsed: 123456 * time.Nanosecond},
			{Technique: "quadratic", HashScheme: "fibonacci", FillRatio: 1.0, Capacity: 1024, Entries: 700, Collisions: 10240, LoadFactor: 68.36, Saturated: true, Elapsed: 234567 * time.Nanosecond},
		}

		// Execute
		err := SaveResults(path, results)
		assert.NoError(t, err, "save results")

		loaded, err := LoadResults(path)

		// Check
		assert.NoError(t, err, "load results")
		assert.Equal(t, results, loaded, "results survive the round trip")
	})

	t.Run("saving again appends to earlier results", func(t *testing.T) {
		// Prepare
		path := filepath.Join(t.TempDir(), "results.db")

		result := Result{Technique: "double", HashScheme: "folding", FillRatio: 0.25, Capacity: 64, Entries: 16, Collisions: 3, LoadFactor: 25, Elapsed: 999 * time.Nanosecond}

		// Execute
		err := SaveResults(path, []Result{result})
		assert.NoError(t, err, "first save")

		err = SaveResults(path, []Result{result})
		assert.NoError(t, err, "second save")

		loaded, err := LoadResults(path)

		// Check
		assert.NoError(t, err, "load results")
		assert.Equal(t, 2, len(loaded), "both rows present")
	})
}
