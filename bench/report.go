package bench

import (
	"fmt"
	"github.com/sugawarayuuta/sonnet"
	"io"
	"strconv"
	"strings"
)

// ParseFillRatios - Parses a comma separated list of fill ratios, e.g. "0.25,0.5,1.0".
//
// It returns:
//   - ratios is a slice of the parsed ratios in given order
//   - err is a standard Go error
func ParseFillRatios(s string) (ratios []float64, err error) {
	var ratio float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)

		ratio, err = strconv.ParseFloat(part, 64)
		if err != nil {
			err = fmt.Errorf("error while parsing fill ratio %s: %s", part, err)
			return
		}

		ratios = append(ratios, ratio)
	}

	return
}

// WriteText - Writes benchmark results as an aligned text table.
func WriteText(w io.Writer, results []Result) (err error) {
	_, err = fmt.Fprintf(w, "%-12s %-10s %6s %10s %10s %12s %8s %5s %14s\n",
		"TECHNIQUE", "SCHEME", "FILL", "CAPACITY", "ENTRIES", "COLLISIONS", "LOAD", "FULL", "ELAPSED")
	if err != nil {
		return
	}

	for _, result := range results {
		full := "no"
		if result.Saturated {
			full = "yes"
		}

		_, err = fmt.Fprintf(w, "%-12s %-10s %6.2f %10d %10d %12d %7.2f%% %5s %14s\n",
			result.Technique, result.HashScheme, result.FillRatio, result.Capacity,
			result.Entries, result.Collisions, result.LoadFactor, full, result.Elapsed)
		if err != nil {
			return
		}
	}

	return
}

// WriteJSON - Writes benchmark results as indented json.
func WriteJSON(w io.Writer, results []Result) (err error) {
	data, err := sonnet.MarshalIndent(results, "", "  ")
	if err != nil {
		err = fmt.Errorf("error while encoding results to json: %s", err)
		return
	}

	_, err = w.Write(append(data, '\n'))

	return
}
