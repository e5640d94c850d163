package main

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/alexflint/go-arg"
	"github.com/gostonefire/hashprobe/chained"
	"io"
	"os"
	"strings"
)

type dedupArgs struct {
	Path    string `arg:"positional,required,help:text file to deduplicate"`
	Buckets int64  `arg:"--buckets,help:number of buckets in the hash table" default:"42069"`
	Stats   bool   `arg:"--stats,help:print table statistics instead of the deduplicated lines"`
}

func main() {
	var flags dedupArgs
	arg.MustParse(&flags)

	if err := run(flags); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

// run - Reads the input file line by line and prints every line the first time it is seen,
// dropping later duplicates. With the stats flag it prints table statistics instead.
func run(flags dedupArgs) (err error) {
	table, err := chained.NewTable(flags.Buckets)
	if err != nil {
		return
	}

	f, err := os.Open(flags.Path)
	if err != nil {
		err = fmt.Errorf("error while opening input file: %s", err)
		return
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	out := bufio.NewWriter(os.Stdout)

	var line string
	fr := bufio.NewReader(f)

	for {
		line, err = fr.ReadString('\n')
		eof := errors.Is(err, io.EOF)
		if err != nil && !eof {
			err = fmt.Errorf("error while reading input file: %s", err)
			return
		}
		err = nil

		line = strings.TrimRight(line, "\n\r")

		// A file ending without a newline still has its last line processed here.
		if line != "" || !eof {
			if !table.Add(line) && !flags.Stats {
				_, err = fmt.Fprintln(out, line)
				if err != nil {
					return
				}
			}
		}

		if eof {
			break
		}
	}

	if flags.Stats {
		bucketNo, length := table.LongestChain()
		_, err = fmt.Fprintf(out, "records: %d\nbuckets: %d\nlongest chain: %d lines in bucket %d\naverage chain: %.2f\n",
			table.Records(), table.NumberOfBuckets(), length, bucketNo,
			float64(table.Records())/float64(table.NumberOfBuckets()))
		if err != nil {
			return
		}
	}

	err = out.Flush()

	return
}
