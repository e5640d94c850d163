package bench

import (
	"errors"
	"fmt"
	"github.com/gostonefire/hashprobe"
	"github.com/gostonefire/hashprobe/crt"
	"github.com/gostonefire/hashprobe/internal/conf"
	"github.com/gostonefire/hashprobe/internal/keygen"
	"go.uber.org/zap"
	"time"
)

// Config - Holds the parameters for a benchmark suite.
//   - TableSize is the minimum capacity of every table, zero selects the default
//   - FillRatios are the fractions of capacity to fill tables to, empty selects the defaults
//   - Techniques are the collision resolution techniques to run, empty selects all of them
//   - Scheme is the hash scheme for home slot calculation, zero selects fibonacci hashing
//   - Seed is the seed for key generation, zero selects the default
//   - Logger is used for progress logging, nil disables logging
type Config struct {
	TableSize  int64
	FillRatios []float64
	Techniques []int
	Scheme     int
	Seed       int64
	Logger     *zap.Logger
}

// Result - Holds the outcome of one benchmark run, i.e. one table filled to one fill ratio
// using one collision resolution technique.
type Result struct {
	Technique  string        `json:"technique"`
	HashScheme string        `json:"hash_scheme"`
	FillRatio  float64       `json:"fill_ratio"`
	Capacity   int64         `json:"capacity"`
	Entries    int64         `json:"entries"`
	Collisions int64         `json:"collisions"`
	LoadFactor float64       `json:"load_factor"`
	Saturated  bool          `json:"saturated"`
	Elapsed    time.Duration `json:"elapsed_ns"`
}

// Run - Runs one benchmark per technique and fill ratio in the given Config and collects the outcomes.
// Every run gets a fresh table and a deterministic set of unique keys, so runs are comparable
// between techniques and repeatable between invocations.
//
// It returns:
//   - results is a slice of Result structs, one per technique and fill ratio combination
//   - err is a standard Go error
func Run(cfg Config) (results []Result, err error) {
	if cfg.TableSize == 0 {
		cfg.TableSize = conf.DefaultTableSize
	}
	if len(cfg.FillRatios) == 0 {
		cfg.FillRatios, err = ParseFillRatios(conf.DefaultFillRatios)
		if err != nil {
			return
		}
	}
	if len(cfg.Techniques) == 0 {
		cfg.Techniques = []int{crt.LinearProbing, crt.QuadraticProbing, crt.DoubleHashing}
	}
	if cfg.Scheme == 0 {
		cfg.Scheme = crt.FibonacciHashing
	}
	if cfg.Seed == 0 {
		cfg.Seed = conf.DefaultSeed
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	for _, ratio := range cfg.FillRatios {
		if ratio <= 0 || ratio > 1 {
			err = fmt.Errorf("fill ratio must be a value higher than 0 (zero) and at most 1: %f", ratio)
			return
		}
	}

	var result Result
	for _, technique := range cfg.Techniques {
		for _, ratio := range cfg.FillRatios {
			result, err = runOne(technique, ratio, cfg)
			if err != nil {
				err = fmt.Errorf("error while benchmarking %s: %s", crt.TechniqueName(technique), err)
				return
			}

			results = append(results, result)
		}
	}

	return
}

// runOne - Fills one fresh table to the given ratio and measures the outcome.
// A table that runs full before all keys are inserted is reported as saturated rather
// than as an error, quadratic probing is known to do so at high fill ratios.
func runOne(technique int, ratio float64, cfg Config) (result Result, err error) {
	table, tableInfo, err := hashprobe.NewTableWithScheme(cfg.TableSize, technique, cfg.Scheme)
	if err != nil {
		return
	}
	defer table.Free()

	keys := keygen.UniqueInts(int64(float64(tableInfo.Capacity)*ratio), cfg.Seed)

	start := time.Now()
	_, err = table.InsertAll(keys)
	elapsed := time.Since(start)

	saturated := false
	if err != nil {
		if !errors.Is(err, crt.TableFull{}) {
			return
		}
		saturated = true
		err = nil
	}

	result = Result{
		Technique:  crt.TechniqueName(technique),
		HashScheme: crt.SchemeName(cfg.Scheme),
		FillRatio:  ratio,
		Capacity:   tableInfo.Capacity,
		Entries:    table.Entries(),
		Collisions: table.Collisions(),
		LoadFactor: table.LoadFactor(),
		Saturated:  saturated,
		Elapsed:    elapsed,
	}

	cfg.Logger.Info("benchmark run done",
		zap.String("technique", result.Technique),
		zap.String("scheme", result.HashScheme),
		zap.Float64("fillRatio", result.FillRatio),
		zap.Int64("capacity", result.Capacity),
		zap.Int64("entries", result.Entries),
		zap.Int64("collisions", result.Collisions),
		zap.Float64("loadFactor", result.LoadFactor),
		zap.Bool("saturated", result.Saturated),
		zap.Duration("elapsed", result.Elapsed),
	)

	return
}
