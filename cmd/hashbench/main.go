package main

import (
	"fmt"
	"github.com/alexflint/go-arg"
	"github.com/gostonefire/hashprobe/bench"
	"github.com/gostonefire/hashprobe/crt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"os"
	"strings"
)

type benchArgs struct {
	TableSize  int64  `arg:"--table_size,help:minimum capacity of every table" default:"65536"`
	FillRatios string `arg:"--fill_ratios,help:comma separated fill ratios to run" default:"0.25,0.5,0.75,0.9,1.0"`
	Technique  string `arg:"--technique,help:collision resolution technique (linear quadratic double or all)" default:"all"`
	Scheme     string `arg:"--scheme,help:hash scheme for home slots (fibonacci modulo or folding)" default:"fibonacci"`
	Seed       int64  `arg:"--seed,help:seed for the unique key generator" default:"1"`
	JSON       bool   `arg:"--json,help:write results as json instead of text"`
	DB         string `arg:"--db,help:sqlite file to append results to"`
	Dev        bool   `arg:"--dev,help:development flavored logging"`
}

func main() {
	var flags benchArgs
	arg.MustParse(&flags)

	logger, err := setupLogger(flags.Dev)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	if err = run(flags, logger); err != nil {
		logger.Fatal("benchmark failed", zap.Error(err))
	}
}

// setupLogger - Creates a structured logger, a development flavored one when dev is true.
func setupLogger(dev bool) (logger *zap.Logger, err error) {
	if dev {
		logger, err = zap.NewDevelopment()
	} else {
		config := zap.NewProductionConfig()
		config.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
		logger, err = config.Build(
			zap.AddCaller(),
			zap.AddStacktrace(zap.ErrorLevel),
		)
	}
	if err != nil {
		err = fmt.Errorf("failed to construct logger: %v", err)
	}

	return
}

// run - Translates command line flags to a benchmark Config, runs the suite and writes
// the results to stdout and, when asked for, to an sqlite database.
func run(flags benchArgs, logger *zap.Logger) (err error) {
	ratios, err := bench.ParseFillRatios(flags.FillRatios)
	if err != nil {
		return
	}

	var techniques []int
	if strings.ToLower(strings.TrimSpace(flags.Technique)) != "all" {
		var technique int
		technique, err = crt.ParseTechnique(flags.Technique)
		if err != nil {
			return
		}
		techniques = []int{technique}
	}

	scheme, err := crt.ParseScheme(flags.Scheme)
	if err != nil {
		return
	}

	results, err := bench.Run(bench.Config{
		TableSize:  flags.TableSize,
		FillRatios: ratios,
		Techniques: techniques,
		Scheme:     scheme,
		Seed:       flags.Seed,
		Logger:     logger,
	})
	if err != nil {
		return
	}

	if flags.JSON {
		err = bench.WriteJSON(os.Stdout, results)
	} else {
		err = bench.WriteText(os.Stdout, results)
	}
	if err != nil {
		return
	}

	if flags.DB != "" {
		err = bench.SaveResults(flags.DB, results)
		if err != nil {
			return
		}
		logger.Info("results saved", zap.String("db", flags.DB), zap.Int("rows", len(results)))
	}

	return
}
